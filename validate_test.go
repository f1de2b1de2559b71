package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphql "github.com/shyptr/graphql"
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
)

func nm(v string) ast.Name { return ast.Name{Value: v} }
func named(n string) *ast.NamedType { return &ast.NamedType{Name: nm(n)} }

func querySchema() *ast.TypeSystemDocument {
	return &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.ObjectTypeDefinition{
				Name: nm("Query"),
				Fields: []*ast.FieldDefinition{
					{Name: nm("name"), Type: named("String")},
				},
			},
		},
	}
}

func TestValidateAcceptsAWellFormedDocument(t *testing.T) {
	doc := &ast.ExecutableDocument{Definitions: []ast.ExecutableDefinition{
		&ast.OperationDefinition{
			Operation:    ast.Query,
			SelectionSet: []ast.Selection{&ast.Field{Name: nm("name")}},
		},
	}}

	got, errs := graphql.Validate(doc, querySchema())
	require.Nil(t, errs)
	assert.Same(t, doc, got)
}

func TestValidateReportsAndDoesNotMutateOnFailure(t *testing.T) {
	doc := &ast.ExecutableDocument{Definitions: []ast.ExecutableDefinition{
		&ast.OperationDefinition{
			Operation:    ast.Query,
			SelectionSet: []ast.Selection{&ast.Field{Name: nm("nope")}},
		},
	}}

	got, errs := graphql.Validate(doc, querySchema())
	require.True(t, errs.HasErrors())
	assert.Same(t, doc, got)

	var kinds []errors.Kind
	for _, e := range errs {
		kinds = append(kinds, e.Kind)
	}
	assert.Contains(t, kinds, errors.KindMissingField)
}

func TestValidateSurfacesDuplicateSchemaDefinition(t *testing.T) {
	schemaDoc := querySchema()
	schemaDoc.Schemas = []*ast.SchemaDefinition{
		{RootOps: []*ast.RootOperationTypeDefinition{{Operation: ast.Query, Type: named("Query")}}},
		{RootOps: []*ast.RootOperationTypeDefinition{{Operation: ast.Query, Type: named("Query")}}},
	}
	doc := &ast.ExecutableDocument{Definitions: []ast.ExecutableDefinition{
		&ast.OperationDefinition{Operation: ast.Query, SelectionSet: []ast.Selection{&ast.Field{Name: nm("name")}}},
	}}

	_, errs := graphql.Validate(doc, schemaDoc)
	require.True(t, errs.HasErrors())
	assert.Equal(t, errors.KindDuplicateSchemaDefinition, errs[0].Kind)
}
