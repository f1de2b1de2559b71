// Package kinds holds the string tags every AST node reports through
// GetKind, mirroring the teacher's system/kinds package (referenced
// throughout system/ast but absent from the retrieved checkout).
package kinds

const (
	Name = "Name"

	NamedType   = "NamedType"
	ListType    = "ListType"
	NonNullType = "NonNullType"

	Variable     = "Variable"
	IntValue     = "IntValue"
	FloatValue   = "FloatValue"
	StringValue  = "StringValue"
	BooleanValue = "BooleanValue"
	NullValue    = "NullValue"
	EnumValue    = "EnumValue"
	ListValue    = "ListValue"
	ObjectValue  = "ObjectValue"
	ObjectField  = "ObjectField"

	Argument  = "Argument"
	Directive = "Directive"

	InputValueDefinition  = "InputValueDefinition"
	FieldDefinition       = "FieldDefinition"
	DirectiveDefinition   = "DirectiveDefinition"
	RootOperationTypeDef  = "RootOperationTypeDefinition"
	SchemaDefinition      = "SchemaDefinition"
	ScalarTypeDefinition  = "ScalarTypeDefinition"
	ObjectTypeDefinition  = "ObjectTypeDefinition"
	InterfaceTypeDef      = "InterfaceTypeDefinition"
	UnionTypeDefinition   = "UnionTypeDefinition"
	EnumValueDefinition   = "EnumValueDefinition"
	EnumTypeDefinition    = "EnumTypeDefinition"
	InputObjectTypeDef    = "InputObjectTypeDefinition"
	TypeSystemDocument    = "TypeSystemDocument"

	SelectionSet    = "SelectionSet"
	Field           = "Field"
	FragmentSpread  = "FragmentSpread"
	InlineFragment  = "InlineFragment"

	VariableDefinition    = "VariableDefinition"
	OperationDefinition   = "OperationDefinition"
	FragmentDefinition    = "FragmentDefinition"
	ExecutableDocument    = "ExecutableDocument"
)
