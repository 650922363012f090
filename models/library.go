package models

import (
	"context"
	"errors"
)

type Id string

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("book not found")

type NotFoundError struct {
	Id Id
}

func (e *NotFoundError) Error() string {
	return "No book exists with id " + string(e.Id)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Library owns every book. Implementations hand out copies only.
type Library interface {
	Create(ctx context.Context, book BookInput) (*Book, error)
	GetById(ctx context.Context, id Id) (*Book, error)
	SetCheckedOut(ctx context.Context, id Id, checkedOut bool) (*Book, error)
	Delete(ctx context.Context, id Id) (*Book, error)
	All(ctx context.Context) ([]*Book, error)
}
