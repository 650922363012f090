package models

type Category string

const (
	FICTION    Category = "FICTION"
	NONFICTION Category = "NONFICTION"
	SCIFI      Category = "SCIFI"
	CHILDREN   Category = "CHILDREN"
	ADULT      Category = "ADULT"
)

// Categories lists every category in schema order.
var Categories = []Category{FICTION, NONFICTION, SCIFI, CHILDREN, ADULT}

// BookInput is a book as supplied by a caller: every field is optional.
type BookInput struct {
	Title      *string    `json:"title,omitempty"`
	Author     *string    `json:"author,omitempty"`
	Pages      *int       `json:"pages,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	CheckedOut *bool      `json:"checkedOut,omitempty"`
}

// Book is a stored book annotated with the id the library assigned to it.
type Book struct {
	Id         Id         `json:"id"`
	Title      *string    `json:"title,omitempty"`
	Author     *string    `json:"author,omitempty"`
	Pages      *int       `json:"pages,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	CheckedOut *bool      `json:"checkedOut,omitempty"`
}

// WithId returns a deep copy of the input as a Book carrying id.
func (input BookInput) WithId(id Id) *Book {
	return &Book{
		Id:         id,
		Title:      copyString(input.Title),
		Author:     copyString(input.Author),
		Pages:      copyInt(input.Pages),
		Categories: copyCategories(input.Categories),
		CheckedOut: copyBool(input.CheckedOut),
	}
}

// Input strips the id off the book.
func (book *Book) Input() BookInput {
	return BookInput{
		Title:      copyString(book.Title),
		Author:     copyString(book.Author),
		Pages:      copyInt(book.Pages),
		Categories: copyCategories(book.Categories),
		CheckedOut: copyBool(book.CheckedOut),
	}
}

// Copy returns a deep copy, so callers never share state with a stored book.
func (book *Book) Copy() *Book {
	return book.Input().WithId(book.Id)
}

func (book *Book) HasCategory(category Category) bool {
	for _, c := range book.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (book *Book) IsCheckedOut() bool {
	return book.CheckedOut != nil && *book.CheckedOut
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func copyCategories(categories []Category) []Category {
	if categories == nil {
		return nil
	}
	c := make([]Category, len(categories))
	copy(c, categories)
	return c
}
