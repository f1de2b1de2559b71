package validator

import (
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
)

// validateArguments implements spec §4.7 against the args actually
// supplied at a call site (a field selection or a directive) and
// argDefs, the definitions declared for that site. owner names the
// site in diagnostics ("field Dog.doesKnowCommand", "directive
// @include").
func (c *context) validateArguments(args []*ast.Argument, argDefs []*ast.InputValueDefinition, owner string) {
	seen := make(map[string]bool)
	for _, a := range args {
		if seen[a.Name.Value] {
			c.addErrNames(errors.KindDuplicateArgument, []string{a.Name.Value},
				"There can be only one argument named %q on %s.", a.Name.Value, owner)
			continue
		}
		seen[a.Name.Value] = true

		def := findArgDef(argDefs, a.Name.Value)
		if def == nil {
			c.addErrNames(errors.KindUnknownArgument, []string{a.Name.Value},
				"Unknown argument %q on %s.", a.Name.Value, owner)
			continue
		}
		c.validateValue(a.Value, def.Type, c.varHandler())
	}

	for _, def := range argDefs {
		if _, isNonNull := def.Type.(*ast.NonNullType); !isNonNull || def.DefaultValue != nil {
			continue
		}
		if ast.GetArgument(args, def.Name.Value) == nil {
			c.addErrNames(errors.KindMissingArgument, []string{def.Name.Value},
				"Argument %q of type %q is required on %s but not provided.", def.Name.Value, def.Type.String(), owner)
		}
	}
}

func findArgDef(defs []*ast.InputValueDefinition, name string) *ast.InputValueDefinition {
	for _, d := range defs {
		if d.Name.Value == name {
			return d
		}
	}
	return nil
}
