package validator

import (
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/topsort"
)

// validateFragmentDefinitions is Phase 1 (spec §4.5): fragment name
// uniqueness, unused-fragment detection, dependency resolution, cycle
// detection, and a per-fragment type-condition + selection-set check.
// Phase 2 only runs if this reports no errors.
func (c *context) validateFragmentDefinitions() {
	frags := c.doc.FragmentDefinitions()

	names := make([]string, 0, len(frags))
	for _, f := range frags {
		names = append(names, f.Name.Value)
	}
	checkUnique(c, errors.KindNameNotUnique, names, "fragment")

	used := make(map[string]bool)
	for _, op := range c.doc.OperationDefinitions() {
		for name := range c.doc.FragmentSpreads(op) {
			used[name] = true
		}
	}
	for _, f := range frags {
		if !used[f.Name.Value] {
			c.addErrNames(errors.KindUnusedDefinition, []string{f.Name.Value},
				"Fragment %q is never used.", f.Name.Value)
		}
	}

	deps := c.doc.FragmentDeps()
	for name, ds := range deps {
		for dep := range ds {
			if _, ok := c.doc.FragmentDef(dep); !ok {
				c.addErrNames(errors.KindMissingDefinition, []string{dep},
					"Fragment %q, spread by fragment %q, is not defined.", dep, name)
			}
		}
	}

	result := topsort.Sort(deps, names)
	if result.HasCycles() {
		for _, cycle := range result.Cycles {
			c.addErrNames(errors.KindCyclesDetected, cycle,
				"Fragment definitions form a cycle: %v.", cycle)
		}
	}

	for _, f := range frags {
		c.validateFragmentDefinition(f)
	}
}

func (c *context) validateFragmentDefinition(f *ast.FragmentDefinition) {
	target := f.On.Name.Value
	if !c.schema.CanBeFragmentType(target) {
		c.addErrNames(errors.KindInvalidNamedType, []string{target},
			"Fragment %q cannot condition on non-composite type %q.", f.Name.Value, target)
	}

	// Set before validating the fragment's own directives: a variable
	// referenced in one of their arguments is only meaningful once this
	// fragment is placed in a concrete operation (see value.go's
	// fragmentBody strategy), the same as a variable inside the
	// fragment's selection set.
	c.inFragmentBody = true
	c.currentOp = nil
	c.validateDirectives(f.Directives, "FRAGMENT_DEFINITION")
	c.validateSelectionSet(f.SelectionSet, target)
	c.inFragmentBody = false
}
