package validator_test

import "github.com/shyptr/graphql/ast"

// Small AST-literal builders kept local to the validator tests: there
// is no lexer/parser in this module (spec §1 "Out of scope"), so
// fixtures are built directly as Go values instead of parsed from
// source text.

func name(v string) ast.Name { return ast.Name{Value: v} }

func namedType(n string) *ast.NamedType { return &ast.NamedType{Name: name(n)} }

func nonNull(t ast.Type) *ast.NonNullType { return &ast.NonNullType{Type: t} }

func listOf(t ast.Type) *ast.ListType { return &ast.ListType{Type: t} }

func field(n string, t ast.Type, args ...*ast.InputValueDefinition) *ast.FieldDefinition {
	return &ast.FieldDefinition{Name: name(n), Type: t, Arguments: args}
}

func arg(n string, t ast.Type) *ast.InputValueDefinition {
	return &ast.InputValueDefinition{Name: name(n), Type: t}
}

func object(n string, interfaces []string, fields ...*ast.FieldDefinition) *ast.ObjectTypeDefinition {
	ifaces := make([]*ast.NamedType, 0, len(interfaces))
	for _, i := range interfaces {
		ifaces = append(ifaces, namedType(i))
	}
	return &ast.ObjectTypeDefinition{Name: name(n), Interfaces: ifaces, Fields: fields}
}

func iface(n string, fields ...*ast.FieldDefinition) *ast.InterfaceTypeDefinition {
	return &ast.InterfaceTypeDefinition{Name: name(n), Fields: fields}
}

func union(n string, members ...string) *ast.UnionTypeDefinition {
	types := make([]*ast.NamedType, 0, len(members))
	for _, m := range members {
		types = append(types, namedType(m))
	}
	return &ast.UnionTypeDefinition{Name: name(n), Types: types}
}

func enumType(n string, values ...string) *ast.EnumTypeDefinition {
	vals := make([]*ast.EnumValueDefinition, 0, len(values))
	for _, v := range values {
		vals = append(vals, &ast.EnumValueDefinition{Name: name(v)})
	}
	return &ast.EnumTypeDefinition{Name: name(n), Values: vals}
}

func directiveDef(n string, repeatable bool, locs []string, args ...*ast.InputValueDefinition) *ast.DirectiveDefinition {
	return &ast.DirectiveDefinition{Name: name(n), Repeatable: repeatable, Locations: locs, Arguments: args}
}

func sel(selections ...ast.Selection) []ast.Selection { return selections }

func selField(n string, children ...ast.Selection) *ast.Field {
	return &ast.Field{Name: name(n), SelectionSet: children}
}

func selFieldArgs(n string, args []*ast.Argument, children ...ast.Selection) *ast.Field {
	return &ast.Field{Name: name(n), Arguments: args, SelectionSet: children}
}

func argVal(n string, v ast.Value) *ast.Argument {
	return &ast.Argument{Name: name(n), Value: v}
}

func directive(n string, args ...*ast.Argument) *ast.Directive {
	return &ast.Directive{Name: name(n), Arguments: args}
}

func intVal(v int64) *ast.IntValue { return &ast.IntValue{Value: v} }

func varRef(n string) *ast.Variable { return &ast.Variable{Name: name(n)} }

func spread(n string) *ast.FragmentSpread { return &ast.FragmentSpread{Name: name(n)} }

func inlineFrag(on string, children ...ast.Selection) *ast.InlineFragment {
	var tc *ast.NamedType
	if on != "" {
		tc = namedType(on)
	}
	return &ast.InlineFragment{TypeCondition: tc, SelectionSet: children}
}

func operation(n string, op ast.OperationType, sels []ast.Selection, varDefs ...*ast.VariableDefinition) *ast.OperationDefinition {
	var opName *ast.Name
	if n != "" {
		nn := name(n)
		opName = &nn
	}
	return &ast.OperationDefinition{Name: opName, Operation: op, SelectionSet: sels, VariableDefinitions: varDefs}
}

// operationDirectives is operation with directives attached directly
// to the OperationDefinition itself, rather than to a selection inside
// it — used to exercise directive-location and directive-argument
// validation at the operation level.
func operationDirectives(n string, op ast.OperationType, dirs []*ast.Directive, sels []ast.Selection, varDefs ...*ast.VariableDefinition) *ast.OperationDefinition {
	o := operation(n, op, sels, varDefs...)
	o.Directives = dirs
	return o
}

func varDef(n string, t ast.Type) *ast.VariableDefinition {
	return &ast.VariableDefinition{Variable: name(n), Type: t}
}

func fragment(n, on string, sels []ast.Selection) *ast.FragmentDefinition {
	return &ast.FragmentDefinition{Name: name(n), On: *namedType(on), SelectionSet: sels}
}

// fragmentDirectives is fragment with directives attached directly to
// the FragmentDefinition itself (spec §3.5 "FRAGMENT_DEFINITION"
// location), rather than to the fragment spread that references it.
func fragmentDirectives(n, on string, dirs []*ast.Directive, sels []ast.Selection) *ast.FragmentDefinition {
	f := fragment(n, on, sels)
	f.Directives = dirs
	return f
}

func execDoc(defs ...ast.ExecutableDefinition) *ast.ExecutableDocument {
	return &ast.ExecutableDocument{Definitions: defs}
}
