package db

import (
	"context"
	"encoding/json"
	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
	"librarygql/models"
)

const INDEX_NAME = "books"

// MAX_BOOKS bounds a single enumeration of the index.
const MAX_BOOKS = 10000

// ElasticLibrary stores each book as a document whose _id is the book id.
// Writes refresh the index so that a following read observes them.
type ElasticLibrary struct {
	IndexName     string
	ElasticClient *elastic.Client
	newId         func() models.Id
}

func NewElasticLibrary(indexName string, elasticClient *elastic.Client) *ElasticLibrary {
	if indexName == "" {
		indexName = INDEX_NAME
	}
	return &ElasticLibrary{indexName, elasticClient, NewId}
}

func (library *ElasticLibrary) Create(ctx context.Context, input models.BookInput) (*models.Book, error) {
	id := library.newId()

	_, err := library.ElasticClient.
		Index().
		Index(library.IndexName).
		Id(string(id)).
		BodyJson(input).
		Refresh("true").
		Do(ctx)

	if err != nil {
		return nil, errors.Wrapf(err, "indexing book %s", id)
	}

	return input.WithId(id), nil
}

func (library *ElasticLibrary) GetById(ctx context.Context, id models.Id) (*models.Book, error) {
	doc, err := library.ElasticClient.
		Get().
		Index(library.IndexName).
		Id(string(id)).
		Do(ctx)

	if elastic.IsNotFound(err) || (err == nil && !doc.Found) {
		return nil, &models.NotFoundError{Id: id}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "getting book %s", id)
	}

	return decodeBook(id, doc.Source)
}

func (library *ElasticLibrary) SetCheckedOut(ctx context.Context, id models.Id, checkedOut bool) (*models.Book, error) {
	_, err := library.ElasticClient.
		Update().
		Index(library.IndexName).
		Id(string(id)).
		Doc(map[string]interface{}{"checkedOut": checkedOut}).
		Refresh("true").
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil, &models.NotFoundError{Id: id}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "updating book %s", id)
	}

	return library.GetById(ctx, id)
}

func (library *ElasticLibrary) Delete(ctx context.Context, id models.Id) (*models.Book, error) {
	book, err := library.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = library.ElasticClient.
		Delete().
		Index(library.IndexName).
		Id(string(id)).
		Refresh("true").
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil, &models.NotFoundError{Id: id}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "deleting book %s", id)
	}

	return book, nil
}

func (library *ElasticLibrary) All(ctx context.Context) ([]*models.Book, error) {
	result, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Query(elastic.NewMatchAllQuery()).
		Size(MAX_BOOKS).
		Do(ctx)

	// The index only comes into existence with the first book.
	if elastic.IsNotFound(err) {
		return []*models.Book{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "searching books")
	}

	books := make([]*models.Book, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		book, err := decodeBook(models.Id(hit.Id), hit.Source)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, nil
}

func decodeBook(id models.Id, source json.RawMessage) (*models.Book, error) {
	var input models.BookInput
	if err := json.Unmarshal(source, &input); err != nil {
		return nil, errors.Wrapf(err, "decoding book %s", id)
	}
	return input.WithId(id), nil
}
