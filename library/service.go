// Package library implements the book queries and mutations on top of a
// models.Library.
package library

import (
	"context"
	"librarygql/models"
)

type Service interface {
	Books(ctx context.Context) ([]*models.Book, error)
	Book(ctx context.Context, id models.Id) (*models.Book, error)
	// BooksByAuthor matches author exactly. A nil author matches books without one.
	BooksByAuthor(ctx context.Context, author *string) ([]*models.Book, error)
	// BooksByCategory returns books whose categories contain category. A nil
	// category matches nothing.
	BooksByCategory(ctx context.Context, category *models.Category) ([]*models.Book, error)

	Add(ctx context.Context, books []models.BookInput) ([]*models.Book, error)
	CheckoutBook(ctx context.Context, id models.Id) (*models.Book, error)
	ReturnBook(ctx context.Context, id models.Id) (*models.Book, error)
	Remove(ctx context.Context, id models.Id) (*models.Book, error)

	Stats(ctx context.Context) (models.StoreStats, error)
}

type service struct {
	books models.Library
}

func NewService(books models.Library) Service {
	return &service{books: books}
}

func (s *service) Books(ctx context.Context) ([]*models.Book, error) {
	return s.books.All(ctx)
}

func (s *service) Book(ctx context.Context, id models.Id) (*models.Book, error) {
	return s.books.GetById(ctx, id)
}

func (s *service) BooksByAuthor(ctx context.Context, author *string) ([]*models.Book, error) {
	return s.filter(ctx, func(book *models.Book) bool {
		if author == nil || book.Author == nil {
			return author == nil && book.Author == nil
		}
		return *author == *book.Author
	})
}

func (s *service) BooksByCategory(ctx context.Context, category *models.Category) ([]*models.Book, error) {
	return s.filter(ctx, func(book *models.Book) bool {
		return category != nil && book.HasCategory(*category)
	})
}

func (s *service) filter(ctx context.Context, keep func(*models.Book) bool) ([]*models.Book, error) {
	books, err := s.Books(ctx)
	if err != nil {
		return nil, err
	}

	matching := []*models.Book{}
	for _, book := range books {
		if keep(book) {
			matching = append(matching, book)
		}
	}
	return matching, nil
}

func (s *service) Add(ctx context.Context, inputs []models.BookInput) ([]*models.Book, error) {
	books := make([]*models.Book, 0, len(inputs))
	for _, input := range inputs {
		book, err := s.books.Create(ctx, input)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

func (s *service) CheckoutBook(ctx context.Context, id models.Id) (*models.Book, error) {
	return s.books.SetCheckedOut(ctx, id, true)
}

func (s *service) ReturnBook(ctx context.Context, id models.Id) (*models.Book, error) {
	return s.books.SetCheckedOut(ctx, id, false)
}

func (s *service) Remove(ctx context.Context, id models.Id) (*models.Book, error) {
	return s.books.Delete(ctx, id)
}

// Stats counts books and distinct authors. Books without an author are not
// counted as an author.
func (s *service) Stats(ctx context.Context) (models.StoreStats, error) {
	books, err := s.Books(ctx)
	if err != nil {
		return models.StoreStats{}, err
	}

	authors := map[string]struct{}{}
	for _, book := range books {
		if book.Author != nil {
			authors[*book.Author] = struct{}{}
		}
	}

	return models.StoreStats{NumberOfBooks: len(books), NumberOfAuthors: len(authors)}, nil
}
