package validator

import (
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/suggest"
)

// frontierEntry is one pending (parentType, selection) pair in the
// selection-set worklist (spec §4.6). Using an explicit stack instead
// of recursion keeps walk depth bounded by heap, not goroutine stack.
type frontierEntry struct {
	parent    string
	selection ast.Selection
}

// validateSelectionSet walks sels with parent as the starting type,
// via an explicit stack (spec §5's bounded-recursion requirement).
func (c *context) validateSelectionSet(sels []ast.Selection, parent string) {
	stack := make([]frontierEntry, 0, len(sels))
	for _, s := range sels {
		stack = append(stack, frontierEntry{parent: parent, selection: s})
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		e := stack[n]
		stack = stack[:n]

		switch sel := e.selection.(type) {
		case *ast.Field:
			stack = append(stack, c.validateFieldSelection(sel, e.parent)...)
		case *ast.InlineFragment:
			stack = append(stack, c.validateInlineFragment(sel, e.parent)...)
		case *ast.FragmentSpread:
			c.validateFragmentSpread(sel, e.parent)
		}
	}
}

func (c *context) validateFieldSelection(f *ast.Field, parent string) []frontierEntry {
	def, ok := c.schema.FieldDef(parent, f.Name.Value)
	if !ok {
		e := errors.New(errors.KindMissingField, "Cannot query field %q on type %q.", f.Name.Value, parent)
		e.Names = []string{f.Name.Value}
		e.Type = parent
		e.Hint = suggest.For(f.Name.Value, c.schema.FieldNames(parent))
		c.errs = append(c.errs, e)
		c.validateDirectives(f.Directives, "FIELD")
		return nil
	}

	c.validateDirectives(f.Directives, "FIELD")
	c.validateArguments(f.Arguments, def.Arguments, "field \""+parent+"."+f.Name.Value+"\"")

	named := ast.NamedOf(def.Type)
	if named == nil {
		c.addErr(errors.KindInvalidType, "Field %q has an unresolvable type.", f.Name.Value)
		return nil
	}

	resultDef, ok := c.schema.FindTypeDef(named.Name.Value)
	if !ok {
		c.addErrNames(errors.KindMissingTypeDefinition, []string{named.Name.Value},
			"Unknown type %q.", named.Name.Value)
		return nil
	}

	switch resultDef.(type) {
	case *ast.ScalarTypeDefinition, *ast.EnumTypeDefinition:
		if len(f.SelectionSet) > 0 {
			c.addErrNames(errors.KindInvalidSelection, []string{f.Name.Value},
				"Field %q of leaf type %q must not have a selection set.", f.Name.Value, named.Name.Value)
		}
		return nil
	default:
		if len(f.SelectionSet) == 0 {
			c.addErrNames(errors.KindMissingSelection, []string{f.Name.Value},
				"Field %q of composite type %q must have a selection set.", f.Name.Value, named.Name.Value)
			return nil
		}
		entries := make([]frontierEntry, 0, len(f.SelectionSet))
		for _, child := range f.SelectionSet {
			entries = append(entries, frontierEntry{parent: named.Name.Value, selection: child})
		}
		return entries
	}
}

func (c *context) validateInlineFragment(f *ast.InlineFragment, parent string) []frontierEntry {
	target := parent
	if f.TypeCondition != nil {
		target = f.TypeCondition.Name.Value
		if !c.schema.CanBeFragmentType(target) {
			c.addErrNames(errors.KindInvalidNamedType, []string{target},
				"Fragment cannot condition on non-composite type %q.", target)
			c.validateDirectives(f.Directives, "INLINE_FRAGMENT")
			return nil
		}
		if target != parent && !c.schema.Covariant(parent, target) && !c.schema.Covariant(target, parent) {
			c.addErrNames(errors.KindInvalidFragment, []string{target},
				"Fragment cannot be spread here as type %q is not compatible with %q.", target, parent)
		}
	} else if !c.schema.CanBeFragmentType(parent) {
		c.addErrNames(errors.KindInvalidNamedType, []string{parent},
			"Inline fragment's enclosing type %q is not a composite type.", parent)
		c.validateDirectives(f.Directives, "INLINE_FRAGMENT")
		return nil
	}

	c.validateDirectives(f.Directives, "INLINE_FRAGMENT")

	entries := make([]frontierEntry, 0, len(f.SelectionSet))
	for _, child := range f.SelectionSet {
		entries = append(entries, frontierEntry{parent: target, selection: child})
	}
	return entries
}

func (c *context) validateFragmentSpread(s *ast.FragmentSpread, parent string) {
	c.validateDirectives(s.Directives, "FRAGMENT_SPREAD")

	frag, ok := c.doc.FragmentDef(s.Name.Value)
	if !ok {
		c.addErrNames(errors.KindMissingDefinition, []string{s.Name.Value},
			"Unknown fragment %q.", s.Name.Value)
		return
	}

	target := frag.On.Name.Value
	if target != parent && !c.schema.Covariant(parent, target) && !c.schema.Covariant(target, parent) {
		c.addErrNames(errors.KindInvalidFragment, []string{s.Name.Value},
			"Fragment %q cannot be spread here as type %q is not compatible with %q.", s.Name.Value, target, parent)
	}
}
