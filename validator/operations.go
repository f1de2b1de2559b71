package validator

import (
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
)

// validateOperationDefinitions is Phase 2 (spec §4.5): operation name
// uniqueness, the lone-anonymous-operation rule, and per-operation
// directive/variable/selection-set validation. Runs only once Phase 1
// has validated every fragment.
func (c *context) validateOperationDefinitions() {
	ops := c.doc.OperationDefinitions()

	var named []string
	var anonymous int
	for _, op := range ops {
		if op.IsAnonymous() {
			anonymous++
			continue
		}
		named = append(named, op.Name.Value)
	}
	checkUnique(c, errors.KindNameNotUnique, named, "operation")

	if anonymous > 0 && (anonymous > 1 || len(named) > 0) {
		c.addErr(errors.KindAnonymousQueryNotAlone,
			"This anonymous operation must be the only defined operation.")
	}

	for _, op := range ops {
		c.validateOperationDefinition(op)
	}

	c.validateSubscriptionsHaveSingleRoot(ops)
}

func (c *context) validateOperationDefinition(op *ast.OperationDefinition) {
	// Set before validating the operation's own directives: a variable
	// used in one of their arguments (e.g. `@cacheControl(maxAge: $ttl)`
	// at QUERY location) is declared by this very operation and must be
	// checked in operation context, not mistaken for a default-value
	// reference.
	c.currentOp = op
	c.inFragmentBody = false

	loc := operationLocation(op.Operation)
	c.validateDirectives(op.Directives, loc)
	c.validateVariableDefinitions(op)

	root, ok := c.schema.OpRootType(op.Operation)
	if !ok {
		c.addErr(errors.KindMissingTypeDefinition,
			"No root %s type is defined in the schema.", op.Operation)
		c.currentOp = nil
		return
	}

	c.validateSelectionSet(op.SelectionSet, root.Name.Value)
	c.currentOp = nil
}

func operationLocation(op ast.OperationType) string {
	switch op {
	case ast.Mutation:
		return "MUTATION"
	case ast.Subscription:
		return "SUBSCRIPTION"
	default:
		return "QUERY"
	}
}

func (c *context) validateVariableDefinitions(op *ast.OperationDefinition) {
	names := make([]string, 0, len(op.VariableDefinitions))
	for _, v := range op.VariableDefinitions {
		names = append(names, v.Variable.Value)
	}
	checkUnique(c, errors.KindNameNotUnique, names, "variable")

	reqs := c.doc.VarReqs(op)
	for name := range reqs {
		if _, ok := c.doc.VarDef(op, name); !ok {
			c.addErrNames(errors.KindMissingVariableDefinition, []string{name},
				"Variable %q is not defined by operation %q.", name, opDisplayName(op))
		}
	}
	for _, v := range op.VariableDefinitions {
		if !reqs[v.Variable.Value] {
			c.addErrNames(errors.KindUnusedDefinition, []string{v.Variable.Value},
				"Variable %q is never used in operation %q.", v.Variable.Value, opDisplayName(op))
		}

		if !c.schema.IsInputType(v.Type) {
			c.addErrNames(errors.KindInvalidType, []string{v.Variable.Value},
				"Variable %q has non-input type %q.", v.Variable.Value, v.Type.String())
		}

		// A directive argument on the variable definition itself may
		// reference a sibling variable of the same operation, so it is
		// validated in operation context, not default-value context.
		c.currentOp = op
		c.inFragmentBody = false
		c.validateDirectives(v.Directives, "VARIABLE_DEFINITION")

		if v.DefaultValue != nil {
			c.currentOp = nil
			c.inFragmentBody = false
			c.validateValue(v.DefaultValue, v.Type, varHandler{})
		}
	}
}

func opDisplayName(op *ast.OperationDefinition) string {
	if op.IsAnonymous() {
		return ""
	}
	return op.Name.Value
}

// validateSubscriptionsHaveSingleRoot implements spec §5.2.3.1: a
// subscription's selection set must resolve to exactly one root
// field, accounting for the inline-fragment and fragment-spread
// indirections a single selection may hide behind.
func (c *context) validateSubscriptionsHaveSingleRoot(ops []*ast.OperationDefinition) {
	for _, op := range ops {
		if op.Operation != ast.Subscription {
			continue
		}
		if !c.hasSingleRootField(op.SelectionSet) {
			c.addErr(errors.KindSubscriptionMultipleRoots,
				"Subscription %q must select exactly one top-level field.", opDisplayName(op))
		}
	}
}

func (c *context) hasSingleRootField(sels []ast.Selection) bool {
	if len(sels) != 1 {
		return false
	}
	switch s := sels[0].(type) {
	case *ast.Field:
		return true
	case *ast.InlineFragment:
		return len(s.SelectionSet) == 1
	case *ast.FragmentSpread:
		frag, ok := c.doc.FragmentDef(s.Name.Value)
		if !ok {
			return false
		}
		return len(frag.SelectionSet) == 1
	}
	return false
}
