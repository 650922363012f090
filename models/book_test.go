package models

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestWithIdCopiesInput(t *testing.T) {
	title := "Dune"
	input := BookInput{Title: &title, Categories: []Category{SCIFI}}

	book := input.WithId("abc")
	title = "Changed"
	input.Categories[0] = CHILDREN

	assert.Equal(t, Id("abc"), book.Id)
	assert.Equal(t, "Dune", *book.Title)
	assert.Equal(t, []Category{SCIFI}, book.Categories)
}

func TestCopyIsIndependent(t *testing.T) {
	checkedOut := false
	book := &Book{Id: "abc", CheckedOut: &checkedOut, Categories: []Category{ADULT}}

	c := book.Copy()
	*c.CheckedOut = true
	c.Categories = append(c.Categories, FICTION)

	assert.False(t, book.IsCheckedOut())
	assert.Equal(t, []Category{ADULT}, book.Categories)
	assert.True(t, c.IsCheckedOut())
}

func TestHasCategory(t *testing.T) {
	book := &Book{Categories: []Category{SCIFI, ADULT}}

	assert.True(t, book.HasCategory(SCIFI))
	assert.True(t, book.HasCategory(ADULT))
	assert.False(t, book.HasCategory(CHILDREN))
	assert.False(t, (&Book{}).HasCategory(SCIFI))
}

func TestNotFoundError(t *testing.T) {
	var err error = &NotFoundError{Id: "42"}

	assert.EqualError(t, err, "No book exists with id 42")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(errors.New("other"), ErrNotFound))
}
