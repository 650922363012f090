package schema

import (
	"fmt"
	"github.com/graphql-go/graphql"
	"librarygql/library"
	"librarygql/models"
)

type resolvers struct {
	service library.Service
}

func (r resolvers) books(p graphql.ResolveParams) (interface{}, error) {
	return r.service.Books(p.Context)
}

func (r resolvers) book(p graphql.ResolveParams) (interface{}, error) {
	return r.service.Book(p.Context, idArg(p))
}

func (r resolvers) booksByAuthor(p graphql.ResolveParams) (interface{}, error) {
	var author *string
	if v, ok := p.Args["author"].(string); ok {
		author = &v
	}
	return r.service.BooksByAuthor(p.Context, author)
}

func (r resolvers) booksByCategory(p graphql.ResolveParams) (interface{}, error) {
	var category *models.Category
	if v, ok := p.Args["category"]; ok && v != nil {
		c, err := decodeCategory(v)
		if err != nil {
			return nil, err
		}
		category = &c
	}
	return r.service.BooksByCategory(p.Context, category)
}

func (r resolvers) add(p graphql.ResolveParams) (interface{}, error) {
	raw, _ := p.Args["books"].([]interface{})
	inputs := make([]models.BookInput, 0, len(raw))
	for _, v := range raw {
		input, err := decodeBookInput(v)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return r.service.Add(p.Context, inputs)
}

func (r resolvers) checkoutBook(p graphql.ResolveParams) (interface{}, error) {
	return r.service.CheckoutBook(p.Context, idArg(p))
}

func (r resolvers) returnBook(p graphql.ResolveParams) (interface{}, error) {
	return r.service.ReturnBook(p.Context, idArg(p))
}

func (r resolvers) remove(p graphql.ResolveParams) (interface{}, error) {
	return r.service.Remove(p.Context, idArg(p))
}

func idArg(p graphql.ResolveParams) models.Id {
	return models.Id(fmt.Sprint(p.Args["id"]))
}

func decodeBookInput(v interface{}) (models.BookInput, error) {
	var input models.BookInput
	fields, ok := v.(map[string]interface{})
	if !ok {
		return input, fmt.Errorf("BookInput must be an object, got %T", v)
	}

	if title, ok := fields["title"].(string); ok {
		input.Title = &title
	}
	if author, ok := fields["author"].(string); ok {
		input.Author = &author
	}
	if pages, ok := fields["pages"].(int); ok {
		input.Pages = &pages
	}
	if checkedOut, ok := fields["checkedOut"].(bool); ok {
		input.CheckedOut = &checkedOut
	}
	if raw, ok := fields["categories"].([]interface{}); ok {
		input.Categories = make([]models.Category, 0, len(raw))
		for _, c := range raw {
			category, err := decodeCategory(c)
			if err != nil {
				return input, err
			}
			input.Categories = append(input.Categories, category)
		}
	}

	return input, nil
}

func decodeCategory(v interface{}) (models.Category, error) {
	switch c := v.(type) {
	case models.Category:
		return c, nil
	case string:
		for _, category := range models.Categories {
			if string(category) == c {
				return category, nil
			}
		}
	}
	return "", fmt.Errorf("invalid Category %v", v)
}
