package db

import (
	"context"
	"librarygql/models"
	"sync"
)

// MemoryLibrary keeps books in process memory. Enumeration follows insertion order.
type MemoryLibrary struct {
	mtx   sync.RWMutex
	books map[models.Id]*models.Book
	order []models.Id
	newId func() models.Id
}

func NewMemoryLibrary() *MemoryLibrary {
	return &MemoryLibrary{
		books: make(map[models.Id]*models.Book),
		newId: NewId,
	}
}

func (library *MemoryLibrary) Create(_ context.Context, input models.BookInput) (*models.Book, error) {
	library.mtx.Lock()
	defer library.mtx.Unlock()

	id := library.newId()
	book := input.WithId(id)
	library.books[id] = book
	library.order = append(library.order, id)

	return book.Copy(), nil
}

func (library *MemoryLibrary) GetById(_ context.Context, id models.Id) (*models.Book, error) {
	library.mtx.RLock()
	defer library.mtx.RUnlock()

	book, ok := library.books[id]
	if !ok {
		return nil, &models.NotFoundError{Id: id}
	}

	return book.Copy(), nil
}

func (library *MemoryLibrary) SetCheckedOut(_ context.Context, id models.Id, checkedOut bool) (*models.Book, error) {
	library.mtx.Lock()
	defer library.mtx.Unlock()

	book, ok := library.books[id]
	if !ok {
		return nil, &models.NotFoundError{Id: id}
	}
	book.CheckedOut = &checkedOut

	return book.Copy(), nil
}

func (library *MemoryLibrary) Delete(_ context.Context, id models.Id) (*models.Book, error) {
	library.mtx.Lock()
	defer library.mtx.Unlock()

	book, ok := library.books[id]
	if !ok {
		return nil, &models.NotFoundError{Id: id}
	}
	delete(library.books, id)
	for i, stored := range library.order {
		if stored == id {
			library.order = append(library.order[:i], library.order[i+1:]...)
			break
		}
	}

	return book, nil
}

func (library *MemoryLibrary) All(_ context.Context) ([]*models.Book, error) {
	library.mtx.RLock()
	defer library.mtx.RUnlock()

	books := make([]*models.Book, 0, len(library.order))
	for _, id := range library.order {
		books = append(books, library.books[id].Copy())
	}

	return books, nil
}
