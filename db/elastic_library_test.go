package db

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"librarygql/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeElastic answers the handful of document APIs the library uses.
type fakeElastic struct {
	mtx  sync.Mutex
	docs map[string]map[string]interface{}
	ids  []string
}

func (f *fakeElastic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	w.Header().Set("Content-Type", "application/json")
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 {
		writeJSON(w, http.StatusOK, map[string]interface{}{"version": map[string]interface{}{"number": "7.17.0"}})
		return
	}
	index, op := parts[0], parts[1]
	id := ""
	if len(parts) > 2 {
		id = parts[2]
	}

	switch {
	case op == "_search":
		hits := []map[string]interface{}{}
		for _, docId := range f.ids {
			hits = append(hits, map[string]interface{}{"_index": index, "_id": docId, "_source": f.docs[docId]})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"hits": map[string]interface{}{
				"total": map[string]interface{}{"value": len(hits), "relation": "eq"},
				"hits":  hits,
			},
		})
	case op == "_doc" && (r.Method == http.MethodPut || r.Method == http.MethodPost):
		var doc map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&doc)
		if _, ok := f.docs[id]; !ok {
			f.ids = append(f.ids, id)
		}
		f.docs[id] = doc
		writeJSON(w, http.StatusCreated, map[string]interface{}{"_index": index, "_id": id, "result": "created"})
	case op == "_doc" && r.Method == http.MethodGet:
		doc, ok := f.docs[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{"_index": index, "_id": id, "found": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"_index": index, "_id": id, "found": true, "_source": doc})
	case op == "_doc" && r.Method == http.MethodDelete:
		if _, ok := f.docs[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{"_index": index, "_id": id, "result": "not_found"})
			return
		}
		delete(f.docs, id)
		for i, stored := range f.ids {
			if stored == id {
				f.ids = append(f.ids[:i], f.ids[i+1:]...)
				break
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"_index": index, "_id": id, "result": "deleted"})
	case op == "_update":
		doc, ok := f.docs[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error":  map[string]interface{}{"type": "document_missing_exception", "reason": "document missing"},
				"status": http.StatusNotFound,
			})
			return
		}
		var body struct {
			Doc map[string]interface{} `json:"doc"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		for k, v := range body.Doc {
			doc[k] = v
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"_index": index, "_id": id, "result": "updated"})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "unsupported " + r.Method + " " + r.URL.Path})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newElasticLibrary(t *testing.T) *ElasticLibrary {
	server := httptest.NewServer(&fakeElastic{docs: map[string]map[string]interface{}{}})
	t.Cleanup(server.Close)

	client, err := elastic.NewClient(
		elastic.SetURL(server.URL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	require.NoError(t, err)

	return NewElasticLibrary("", client)
}

func TestElasticLibraryCreateThenGet(t *testing.T) {
	ctx := context.Background()
	library := newElasticLibrary(t)
	assert.Equal(t, INDEX_NAME, library.IndexName)

	input := models.BookInput{
		Title:      stringPtr("Dune"),
		Author:     stringPtr("Frank Herbert"),
		Pages:      intPtr(412),
		Categories: []models.Category{models.SCIFI, models.ADULT},
		CheckedOut: boolPtr(false),
	}
	created, err := library.Create(ctx, input)
	require.NoError(t, err)

	got, err := library.GetById(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, input.WithId(created.Id), got)
}

func TestElasticLibraryUnknownId(t *testing.T) {
	ctx := context.Background()
	library := newElasticLibrary(t)

	_, err := library.GetById(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrNotFound))
	_, err = library.SetCheckedOut(ctx, "missing", true)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	_, err = library.Delete(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestElasticLibraryCheckoutAndDelete(t *testing.T) {
	ctx := context.Background()
	library := newElasticLibrary(t)
	book, err := library.Create(ctx, models.BookInput{Title: stringPtr("Dune")})
	require.NoError(t, err)

	updated, err := library.SetCheckedOut(ctx, book.Id, true)
	require.NoError(t, err)
	assert.True(t, updated.IsCheckedOut())

	removed, err := library.Delete(ctx, book.Id)
	require.NoError(t, err)
	assert.True(t, removed.IsCheckedOut())

	books, err := library.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestElasticLibraryAll(t *testing.T) {
	ctx := context.Background()
	library := newElasticLibrary(t)
	first, err := library.Create(ctx, models.BookInput{Author: stringPtr("Jane Doe")})
	require.NoError(t, err)
	second, err := library.Create(ctx, models.BookInput{Author: stringPtr("jane doe")})
	require.NoError(t, err)

	books, err := library.All(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, first.Id, books[0].Id)
	assert.Equal(t, second.Id, books[1].Id)
	assert.Equal(t, "jane doe", *books[1].Author)
}
