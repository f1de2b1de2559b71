package validator_test

import (
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/schema"
)

// dogSchema builds the canonical GraphQL-annex "dog" schema (spec §8:
// "the seeded schema is the canonical GraphQL dog schema used in the
// specification annex"), grounded on the fixture
// system/validation/validate_test.go builds at runtime via
// schemabuilder against Go structs (Dog, Cat, Human, ...); this
// reconstructs the same shape directly as a TypeSystemDocument, since
// this module's schema layer reads parsed type-system documents
// instead of reflecting over Go types.
func dogSchema() *schema.Context {
	doc := &ast.TypeSystemDocument{
		Directives: []*ast.DirectiveDefinition{
			directiveDef("include", false, []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
				&ast.InputValueDefinition{Name: name("if"), Type: nonNull(namedType("Boolean"))}),
			directiveDef("skip", false, []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
				&ast.InputValueDefinition{Name: name("if"), Type: nonNull(namedType("Boolean"))}),
			directiveDef("deprecated", false, []string{"FIELD_DEFINITION", "ENUM_VALUE"},
				&ast.InputValueDefinition{Name: name("reason"), Type: namedType("String")}),
			directiveDef("cacheControl", false, []string{"QUERY", "FRAGMENT_DEFINITION", "FIELD"},
				&ast.InputValueDefinition{Name: name("maxAge"), Type: namedType("Int")}),
		},
		Types: []ast.TypeDefinition{
			enumType("DogCommand", "SIT", "DOWN", "HEEL"),
			iface("Pet", field("name", nonNull(namedType("String")))),
			object("Human", []string{"Pet"},
				field("name", nonNull(namedType("String"))),
				field("pets", listOf(namedType("Pet"))),
			),
			object("Cat", []string{"Pet"},
				field("name", nonNull(namedType("String"))),
				field("meowVolume", namedType("Int")),
			),
			object("Dog", []string{"Pet"},
				field("name", nonNull(namedType("String"))),
				field("nickname", namedType("String")),
				field("barkVolume", namedType("Int")),
				field("doesKnowCommand", nonNull(namedType("Boolean")), arg("dogCommand", nonNull(namedType("DogCommand")))),
				field("owner", namedType("Human")),
			),
			object("Message",
				nil,
				field("body", namedType("String")),
				field("sender", namedType("String")),
			),
			object("Query", nil, field("dog", namedType("Dog"), arg("id", namedType("ID")))),
			object("Mutation", nil, field("noop", namedType("Boolean"))),
			object("Subscription", nil,
				field("newMessage", namedType("Message")),
				field("other", namedType("String")),
			),
		},
		Schemas: []*ast.SchemaDefinition{{
			RootOps: []*ast.RootOperationTypeDefinition{
				{Operation: ast.Query, Type: namedType("Query")},
				{Operation: ast.Mutation, Type: namedType("Mutation")},
				{Operation: ast.Subscription, Type: namedType("Subscription")},
			},
		}},
	}

	ctx, errs := schema.NewContext(doc)
	if errs.HasErrors() {
		panic(errs.Error())
	}
	return ctx
}
