package schema

import (
	"context"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// Request is the standard GraphQL over HTTP request body.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

func Execute(ctx context.Context, schema graphql.Schema, request Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  request.Query,
		VariableValues: request.Variables,
		OperationName:  request.OperationName,
		Context:        ctx,
	})
}

// Operations lists the top level fields of every operation in query as
// "<operation>.<field>", e.g. "mutation.add". Unparseable queries yield nil.
func Operations(query string) []string {
	document, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return nil
	}

	var operations []string
	for _, definition := range document.Definitions {
		operation, ok := definition.(*ast.OperationDefinition)
		if !ok || operation.SelectionSet == nil {
			continue
		}
		for _, selection := range operation.SelectionSet.Selections {
			if field, ok := selection.(*ast.Field); ok && field.Name != nil {
				operations = append(operations, operation.Operation+"."+field.Name.Value)
			}
		}
	}
	return operations
}
