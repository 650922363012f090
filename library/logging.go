package library

import (
	"context"
	"github.com/go-kit/log"
	"librarygql/models"
	"time"
)

type loggingService struct {
	logger log.Logger
	Service
}

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{logger, s}
}

func (s *loggingService) Books(ctx context.Context) (books []*models.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Log("method", "books", "count", len(books), "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.Books(ctx)
}

func (s *loggingService) Book(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Log("method", "book", "id", id, "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.Book(ctx, id)
}

func (s *loggingService) BooksByAuthor(ctx context.Context, author *string) (books []*models.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Log("method", "books_by_author", "author", stringValue(author), "count", len(books), "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.BooksByAuthor(ctx, author)
}

func (s *loggingService) BooksByCategory(ctx context.Context, category *models.Category) (books []*models.Book, err error) {
	defer func(begin time.Time) {
		var c string
		if category != nil {
			c = string(*category)
		}
		s.logger.Log("method", "books_by_category", "category", c, "count", len(books), "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.BooksByCategory(ctx, category)
}

func (s *loggingService) Add(ctx context.Context, inputs []models.BookInput) (books []*models.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Log("method", "add", "books", len(inputs), "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.Add(ctx, inputs)
}

func (s *loggingService) CheckoutBook(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Log("method", "checkout_book", "id", id, "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.CheckoutBook(ctx, id)
}

func (s *loggingService) ReturnBook(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Log("method", "return_book", "id", id, "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.ReturnBook(ctx, id)
}

func (s *loggingService) Remove(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Log("method", "remove", "id", id, "took", time.Since(begin), "err", err)
	}(time.Now())
	return s.Service.Remove(ctx, id)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
