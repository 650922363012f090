// Package schema exposes a library.Service as a GraphQL schema.
package schema

import (
	"github.com/graphql-go/graphql"
	"librarygql/library"
	"librarygql/models"
)

func categoryEnum() *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, category := range models.Categories {
		values[string(category)] = &graphql.EnumValueConfig{Value: category}
	}
	return graphql.NewEnum(graphql.EnumConfig{
		Name:   "Category",
		Values: values,
	})
}

// New builds the library schema:
//
//	type Query {
//	    books: [Book]
//	    book(id: ID!): Book
//	    booksByAuthor(author: String): [Book]
//	    booksByCategory(category: Category): [Book]
//	}
//
//	type Mutation {
//	    add(books: [BookInput!]): [Book]
//	    checkoutBook(id: ID!): Book
//	    returnBook(id: ID!): Book
//	    remove(id: ID!): Book
//	}
func New(s library.Service) (graphql.Schema, error) {
	category := categoryEnum()

	bookInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "BookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"author":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"pages":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"categories": &graphql.InputObjectFieldConfig{Type: graphql.NewList(category)},
			"checkedOut": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	book := graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":      &graphql.Field{Type: graphql.String},
			"author":     &graphql.Field{Type: graphql.String},
			"pages":      &graphql.Field{Type: graphql.Int},
			"categories": &graphql.Field{Type: graphql.NewList(category)},
			"checkedOut": &graphql.Field{Type: graphql.Boolean},
		},
	})

	idArgs := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	r := resolvers{s}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"books": &graphql.Field{
				Type:    graphql.NewList(book),
				Resolve: r.books,
			},
			"book": &graphql.Field{
				Type:    book,
				Args:    idArgs,
				Resolve: r.book,
			},
			"booksByAuthor": &graphql.Field{
				Type: graphql.NewList(book),
				Args: graphql.FieldConfigArgument{
					"author": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.booksByAuthor,
			},
			"booksByCategory": &graphql.Field{
				Type: graphql.NewList(book),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: category},
				},
				Resolve: r.booksByCategory,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"add": &graphql.Field{
				Type: graphql.NewList(book),
				Args: graphql.FieldConfigArgument{
					"books": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(bookInput))},
				},
				Resolve: r.add,
			},
			"checkoutBook": &graphql.Field{
				Type:    book,
				Args:    idArgs,
				Resolve: r.checkoutBook,
			},
			"returnBook": &graphql.Field{
				Type:    book,
				Args:    idArgs,
				Resolve: r.returnBook,
			},
			"remove": &graphql.Field{
				Type:    book,
				Args:    idArgs,
				Resolve: r.remove,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
