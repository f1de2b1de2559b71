// Package document implements the executable-document query layer
// (spec §4.2): an index built once per ExecutableDocument that
// collects operation and fragment definitions, the transitive set of
// fragment names reachable from each operation, the fragment
// dependency graph, and per-operation variable requirements. It
// generalizes the bookkeeping maps the teacher's validate.go builds
// inline (ctx.fragments, ctx.usedVars, ctx.fieldMap) into a standalone,
// queryable index that the validator passes consult rather than
// recompute.
package document

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jensneuse/abstractlogger"

	"github.com/shyptr/graphql/ast"
)

// Context is built once per executable document (spec §5: callers may
// validate concurrently provided each goroutine uses its own Context).
type Context struct {
	doc *ast.ExecutableDocument

	opDefs   []*ast.OperationDefinition
	fragDefs map[string]*ast.FragmentDefinition
	fragList []*ast.FragmentDefinition

	fragSpreads map[string]map[string]bool // op name (or "" for the sole anonymous op) -> fragment names reachable
	fragDeps    map[string]map[string]bool // fragment name -> fragment names it spreads
	varReqs     map[string]map[string]bool // op name -> variable names referenced

	log abstractlogger.Logger
}

type Option func(*Context)

func WithLogger(l abstractlogger.Logger) Option {
	return func(c *Context) { c.log = l }
}

// NewContext builds a Context by walking every operation and fragment
// selection tree with an explicit stack (spec §5: must tolerate at
// least 1,024 levels without stack overflow). Selection nesting never
// recurses natively; the first spread of each fragment starts one
// nested walk of that fragment's selection set, so call depth grows
// only with the length of a fragment spread chain.
func NewContext(doc *ast.ExecutableDocument, opts ...Option) *Context {
	c := &Context{
		doc:         doc,
		fragDefs:    make(map[string]*ast.FragmentDefinition),
		fragSpreads: make(map[string]map[string]bool),
		fragDeps:    make(map[string]map[string]bool),
		varReqs:     make(map[string]map[string]bool),
		log:         abstractlogger.Noop{},
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			c.opDefs = append(c.opDefs, d)
		case *ast.FragmentDefinition:
			c.fragList = append(c.fragList, d)
			if _, exists := c.fragDefs[d.Name.Value]; !exists {
				c.fragDefs[d.Name.Value] = d
			}
		}
	}

	for _, f := range c.fragList {
		c.fragDeps[f.Name.Value] = collectFragmentSpreads(f.SelectionSet)
	}

	for _, op := range c.opDefs {
		key := opKey(op)
		spreads, vars := c.collectOpClosure(op)
		c.fragSpreads[key] = spreads
		c.varReqs[key] = vars
	}

	c.log.Debug("document.NewContext built", abstractlogger.Int("operations", len(c.opDefs)), abstractlogger.Int("fragments", len(c.fragList)))

	return c
}

// opKey is the internal lookup key for an operation: its name, or ""
// for the (necessarily sole, per §5.2.2.1) anonymous operation.
func opKey(op *ast.OperationDefinition) string {
	if op.IsAnonymous() {
		return ""
	}
	return op.Name.Value
}

// OperationDefinitions returns every operation in declared order.
func (c *Context) OperationDefinitions() []*ast.OperationDefinition { return c.opDefs }

// FragmentDefinitions returns every fragment in declared order.
func (c *Context) FragmentDefinitions() []*ast.FragmentDefinition { return c.fragList }

// FragmentDef looks up a fragment definition by name.
func (c *Context) FragmentDef(name string) (*ast.FragmentDefinition, bool) {
	f, ok := c.fragDefs[name]
	return f, ok
}

// FragmentDeps returns the fragment-dependency graph: for each
// fragment name, the set of fragment names it spreads directly
// (through nested fields and inline fragments, not recursively
// expanded — that expansion is topsort's job).
func (c *Context) FragmentDeps() map[string]map[string]bool { return c.fragDeps }

// FragmentSpreads returns the set of fragment names transitively
// reachable from op's selection tree (spec §4.2's fragSpreads).
func (c *Context) FragmentSpreads(op *ast.OperationDefinition) map[string]bool {
	return c.fragSpreads[opKey(op)]
}

// VarReqs returns every variable name referenced by op's selection
// tree, including variables reached transitively through fragment
// spreads (spec §4.2's varReqs).
func (c *Context) VarReqs(op *ast.OperationDefinition) map[string]bool {
	return c.varReqs[opKey(op)]
}

// VarDef looks up one of op's declared variables by name.
func (c *Context) VarDef(op *ast.OperationDefinition, name string) (*ast.VariableDefinition, bool) {
	v := op.VariableDefinitionByName(name)
	return v, v != nil
}

// collectOpClosure walks op's selection tree with an explicit stack,
// collecting both the transitive fragment-name closure and the
// variable names referenced. Each spread fragment is expanded once, by
// walking its definition (its own directives and its selection set),
// so a variable used only inside a spread fragment still counts as
// used by the operation (spec §4.2, §3.5 invariant 5).
func (c *Context) collectOpClosure(op *ast.OperationDefinition) (map[string]bool, map[string]bool) {
	spreads := make(map[string]bool)
	vars := make(map[string]bool)

	collectVarsFromValues(op.Directives, vars)

	var walkSelections func(sels []ast.Selection)
	visitedFrags := make(map[string]bool)

	walkSelections = func(sels []ast.Selection) {
		stack := append([]ast.Selection(nil), sels...)
		for len(stack) > 0 {
			n := len(stack) - 1
			sel := stack[n]
			stack = stack[:n]

			switch s := sel.(type) {
			case *ast.Field:
				collectVarsFromArgs(s.Arguments, vars)
				collectVarsFromValues(s.Directives, vars)
				stack = append(stack, s.SelectionSet...)
			case *ast.InlineFragment:
				collectVarsFromValues(s.Directives, vars)
				stack = append(stack, s.SelectionSet...)
			case *ast.FragmentSpread:
				collectVarsFromValues(s.Directives, vars)
				spreads[s.Name.Value] = true
				if !visitedFrags[s.Name.Value] {
					visitedFrags[s.Name.Value] = true
					if frag, ok := c.fragDefs[s.Name.Value]; ok {
						collectVarsFromValues(frag.Directives, vars)
						walkSelections(frag.SelectionSet)
					}
				}
			}
		}
	}
	walkSelections(op.SelectionSet)

	return spreads, vars
}

// collectFragmentSpreads returns the set of fragment names spread
// directly within sels (through nested fields and inline fragments),
// via an explicit stack rather than recursion.
func collectFragmentSpreads(sels []ast.Selection) map[string]bool {
	deps := make(map[string]bool)
	stack := append([]ast.Selection(nil), sels...)
	for len(stack) > 0 {
		n := len(stack) - 1
		sel := stack[n]
		stack = stack[:n]

		switch s := sel.(type) {
		case *ast.Field:
			stack = append(stack, s.SelectionSet...)
		case *ast.InlineFragment:
			stack = append(stack, s.SelectionSet...)
		case *ast.FragmentSpread:
			deps[s.Name.Value] = true
		}
	}
	return deps
}

// Dump renders a debug snapshot of the indexed operation and fragment
// names, backed by go-spew in place of a hand-rolled %#v dump.
func (c *Context) Dump() string {
	names := make([]string, 0, len(c.opDefs)+len(c.fragList))
	for _, op := range c.opDefs {
		names = append(names, "op:"+opKey(op))
	}
	for _, f := range c.fragList {
		names = append(names, "frag:"+f.Name.Value)
	}
	return fmt.Sprintf("document.Context{definitions: %s}", spew.Sdump(names))
}

func collectVarsFromArgs(args []*ast.Argument, vars map[string]bool) {
	for _, a := range args {
		collectVarsFromValue(a.Value, vars)
	}
}

func collectVarsFromValues(dirs []*ast.Directive, vars map[string]bool) {
	for _, d := range dirs {
		collectVarsFromArgs(d.Arguments, vars)
	}
}

func collectVarsFromValue(v ast.Value, vars map[string]bool) {
	switch val := v.(type) {
	case *ast.Variable:
		vars[val.Name.Value] = true
	case *ast.ListValue:
		for _, e := range val.Values {
			collectVarsFromValue(e, vars)
		}
	case *ast.ObjectValue:
		for _, f := range val.Fields {
			collectVarsFromValue(f.Value, vars)
		}
	}
}
