package validator

import (
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/suggest"
)

// validateDirectives implements spec §4.9: every directive's
// definition must list loc among its legal locations, and a
// non-repeatable directive must not appear twice on the same entity.
func (c *context) validateDirectives(dirs []*ast.Directive, loc string) {
	seen := make(map[string]bool)
	for _, d := range dirs {
		def, ok := c.schema.DirectiveDef(d.Name.Value)
		if !ok {
			e := errors.New(errors.KindMissingDefinition, "Unknown directive %q.", d.Name.Value)
			e.Names = []string{d.Name.Value}
			e.Hint = suggest.For(d.Name.Value, c.schema.DirectiveNames())
			c.errs = append(c.errs, e)
			continue
		}

		if !def.HasLocation(loc) {
			e := errors.New(errors.KindInvalidLocation,
				"Directive %q may not be used on %s.", d.Name.Value, loc)
			e.Names = []string{d.Name.Value}
			c.errs = append(c.errs, e)
		}

		if seen[d.Name.Value] && !def.Repeatable {
			c.addErrNames(errors.KindInvalidLocation, []string{d.Name.Value},
				"The directive %q can only be used once at this location.", d.Name.Value)
		}
		seen[d.Name.Value] = true

		c.validateArguments(d.Arguments, def.Arguments, "directive @"+d.Name.Value)
	}
}
