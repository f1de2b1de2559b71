// Package validator implements the twelve rule groups of spec §4.5
// over a schema.Context and a document.Context, phase-gated so that
// phase 2 (operations) only runs once phase 1 (fragments) has fully
// validated (spec §4.5). It generalizes
// system/validation/validate.go's context/addErr/validateSelectionSet
// family from the teacher's runtime-reflected schema to the
// schema.Context built from a parsed type-system document.
package validator

import (
	"github.com/jensneuse/abstractlogger"

	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/document"
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/schema"
)

// context threads the two read-only indices and the accumulating
// error list through every pass, replacing the teacher's "given
// Context" implicit-parameter pattern with an explicit pointer passed
// to every function (spec §9 "Context sharing").
type context struct {
	schema *schema.Context
	doc    *document.Context
	errs   errors.List
	log    abstractlogger.Logger

	// currentOp and inFragmentBody together select the varHandler mode
	// (validator/value.go) for any value encountered while walking a
	// selection set: set to the enclosing operation during Phase 2,
	// set inFragmentBody during Phase 1's per-fragment walk, and left
	// at their zero values anywhere else (default-value context).
	currentOp      *ast.OperationDefinition
	inFragmentBody bool
}

func (c *context) varHandler() varHandler {
	if c.currentOp != nil {
		return varHandler{op: c.currentOp}
	}
	return varHandler{fragmentBody: c.inFragmentBody}
}

func (c *context) addErr(kind errors.Kind, format string, a ...interface{}) {
	c.errs = append(c.errs, errors.New(kind, format, a...))
}

func (c *context) addErrNames(kind errors.Kind, names []string, format string, a ...interface{}) {
	e := errors.New(kind, format, a...)
	e.Names = names
	c.errs = append(c.errs, e)
}

// Option configures the validator, matching schema.Option/document.Option.
type Option func(*context)

func WithLogger(l abstractlogger.Logger) Option {
	return func(c *context) { c.log = l }
}

// nameSet records the names a uniqueness check has already seen (spec
// invariants 1 and 2); every later occurrence of a seen name is
// reported, with the name itself as payload.
type nameSet map[string]bool

// checkUnique reports, via kind, every occurrence in names of a name
// that already appeared earlier in names.
func checkUnique(c *context, kind errors.Kind, names []string, what string) {
	seen := make(nameSet)
	for _, n := range names {
		if seen[n] {
			c.addErrNames(kind, []string{n}, "There can be only one %s named %q.", what, n)
			continue
		}
		seen[n] = true
	}
}
