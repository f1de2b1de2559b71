package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/schema"
)

func named(n string) *ast.NamedType { return &ast.NamedType{Name: ast.Name{Value: n}} }

func buildSchema(t *testing.T, doc *ast.TypeSystemDocument) *schema.Context {
	t.Helper()
	ctx, errs := schema.NewContext(doc)
	require.False(t, errs.HasErrors(), "%v", errs)
	return ctx
}

func TestNewContextSynthesizesBuiltinScalars(t *testing.T) {
	ctx := buildSchema(t, &ast.TypeSystemDocument{})
	for _, n := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		_, ok := ctx.FindTypeDef(n)
		assert.True(t, ok, "expected builtin scalar %s", n)
		assert.True(t, ctx.IsLeaf(n))
	}
}

func TestNewContextRejectsMultipleSchemaDefinitions(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Schemas: []*ast.SchemaDefinition{
			{RootOps: []*ast.RootOperationTypeDefinition{{Operation: ast.Query, Type: named("Query")}}},
			{RootOps: []*ast.RootOperationTypeDefinition{{Operation: ast.Query, Type: named("Query")}}},
		},
	}
	_, errs := schema.NewContext(doc)
	require.True(t, errs.HasErrors())
	assert.Equal(t, errors.KindDuplicateSchemaDefinition, errs[0].Kind)
}

func TestFieldDefFindsOwnFieldBeforeInterface(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.InterfaceTypeDefinition{
				Name:   ast.Name{Value: "Pet"},
				Fields: []*ast.FieldDefinition{{Name: ast.Name{Value: "name"}, Type: named("String")}},
			},
			&ast.ObjectTypeDefinition{
				Name:       ast.Name{Value: "Dog"},
				Interfaces: []*ast.NamedType{named("Pet")},
				Fields:     []*ast.FieldDefinition{{Name: ast.Name{Value: "barkVolume"}, Type: named("Int")}},
			},
		},
	}
	ctx := buildSchema(t, doc)

	f, ok := ctx.FieldDef("Dog", "barkVolume")
	require.True(t, ok)
	assert.Equal(t, "barkVolume", f.Name.Value)

	f, ok = ctx.FieldDef("Dog", "name")
	require.True(t, ok, "expected Dog to inherit name through Pet")
	assert.Equal(t, "name", f.Name.Value)

	_, ok = ctx.FieldDef("Dog", "nope")
	assert.False(t, ok)
}

func TestFieldDefWalksUnionMembers(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.ObjectTypeDefinition{
				Name:   ast.Name{Value: "Cat"},
				Fields: []*ast.FieldDefinition{{Name: ast.Name{Value: "meowVolume"}, Type: named("Int")}},
			},
			&ast.UnionTypeDefinition{Name: ast.Name{Value: "CatOrDog"}, Types: []*ast.NamedType{named("Cat")}},
		},
	}
	ctx := buildSchema(t, doc)
	f, ok := ctx.FieldDef("CatOrDog", "meowVolume")
	require.True(t, ok, "a union has no fields of its own; the lookup finds meowVolume on its member Cat")
	assert.Equal(t, "meowVolume", f.Name.Value)
}

func TestCovariantAcrossInterfaceAndUnion(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.InterfaceTypeDefinition{Name: ast.Name{Value: "Pet"}},
			&ast.ObjectTypeDefinition{Name: ast.Name{Value: "Dog"}, Interfaces: []*ast.NamedType{named("Pet")}},
			&ast.ObjectTypeDefinition{Name: ast.Name{Value: "Human"}},
			&ast.UnionTypeDefinition{Name: ast.Name{Value: "CatOrDog"}, Types: []*ast.NamedType{named("Dog")}},
		},
	}
	ctx := buildSchema(t, doc)

	assert.True(t, ctx.Covariant("Dog", "Dog"))
	assert.True(t, ctx.Covariant("Dog", "Pet"))
	assert.True(t, ctx.Covariant("Dog", "CatOrDog"))
	assert.False(t, ctx.Covariant("Human", "Pet"))
	assert.False(t, ctx.Covariant("Human", "CatOrDog"))
}

func TestIsInputAndOutputType(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.ObjectTypeDefinition{Name: ast.Name{Value: "Dog"}},
			&ast.InputObjectTypeDefinition{Name: ast.Name{Value: "DogInput"}},
		},
	}
	ctx := buildSchema(t, doc)

	assert.True(t, ctx.IsOutputType(named("Dog")))
	assert.False(t, ctx.IsInputType(named("Dog")))
	assert.True(t, ctx.IsInputType(named("DogInput")))
	assert.False(t, ctx.IsOutputType(named("DogInput")))
	assert.True(t, ctx.IsInputType(named("String")))
}

func TestHasSubfields(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.ObjectTypeDefinition{Name: ast.Name{Value: "Dog"}},
		},
	}
	ctx := buildSchema(t, doc)
	assert.True(t, ctx.HasSubfields(named("Dog")))
	assert.False(t, ctx.HasSubfields(named("String")))
	assert.False(t, ctx.HasSubfields(&ast.NonNullType{Type: named("String")}))
}

func TestOpRootTypeFallsBackToConventionalNames(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.ObjectTypeDefinition{Name: ast.Name{Value: "Query"}},
		},
	}
	ctx := buildSchema(t, doc)
	root, ok := ctx.OpRootType(ast.Query)
	require.True(t, ok)
	assert.Equal(t, "Query", root.Name.Value)

	_, ok = ctx.OpRootType(ast.Mutation)
	assert.False(t, ok)
}

func TestFieldNamesAndDirectiveNames(t *testing.T) {
	doc := &ast.TypeSystemDocument{
		Types: []ast.TypeDefinition{
			&ast.ObjectTypeDefinition{
				Name: ast.Name{Value: "Dog"},
				Fields: []*ast.FieldDefinition{
					{Name: ast.Name{Value: "name"}, Type: named("String")},
					{Name: ast.Name{Value: "barkVolume"}, Type: named("Int")},
				},
			},
		},
		Directives: []*ast.DirectiveDefinition{
			{Name: ast.Name{Value: "include"}, Locations: []string{"FIELD"}},
		},
	}
	ctx := buildSchema(t, doc)
	assert.ElementsMatch(t, []string{"name", "barkVolume"}, ctx.FieldNames("Dog"))
	assert.Nil(t, ctx.FieldNames("String"))
	assert.Equal(t, []string{"include"}, ctx.DirectiveNames())
}
