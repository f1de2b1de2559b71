package validator

import (
	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
)

// varHandler resolves a Variable value encountered while type-checking
// a value against an expected type (spec §4.8's two varHandler
// strategies, plus a third this module adds for fragment bodies).
type varHandler struct {
	// op is the enclosing operation, for the "operation context"
	// strategy: the variable's declared type is checked against
	// expected. Nil selects one of the two remaining strategies below.
	op *ast.OperationDefinition

	// fragmentBody is set while walking a FragmentDefinition's own
	// selection set (Phase 1), which is validated independent of any
	// one operation (a fragment may be spread from several operations
	// with different variable declarations). A variable used there is
	// syntactically legal but its type compatibility is only meaningful
	// once the fragment is placed in a concrete operation, which this
	// validator does not check; it is accepted unchecked rather than
	// misreported as a default-value violation.
	fragmentBody bool
}

// validateValue implements spec §4.8, driven by the structure of
// expectedType. It never returns early on the first problem within a
// composite value — it keeps descending so independent field/element
// problems are all reported (spec §7 per-pass accumulation).
func (c *context) validateValue(v ast.Value, expected ast.Type, vh varHandler) {
	if vv, ok := v.(*ast.Variable); ok {
		c.validateVariableUsage(vv, expected, vh)
		return
	}

	if nn, ok := expected.(*ast.NonNullType); ok {
		if ast.IsNull(v) {
			c.addErr(errors.KindTypeMismatch, "Expected non-null value of type %q, found null.", expected.String())
			return
		}
		c.validateValue(v, nn.Type, vh)
		return
	}

	if ast.IsNull(v) {
		return
	}

	switch t := expected.(type) {
	case *ast.ListType:
		if lv, ok := v.(*ast.ListValue); ok {
			for _, elem := range lv.Values {
				c.validateValue(elem, t.Type, vh)
			}
			return
		}
		// A single value is accepted in a list position (GraphQL input coercion).
		c.validateValue(v, t.Type, vh)

	case *ast.NamedType:
		c.validateNamedValue(v, t.Name.Value, vh)

	default:
		c.addErr(errors.KindInvalidType, "Unrecognized type %q.", expected.String())
	}
}

func (c *context) validateNamedValue(v ast.Value, typeName string, vh varHandler) {
	def, ok := c.schema.FindTypeDef(typeName)
	if !ok {
		c.addErrNames(errors.KindMissingTypeDefinition, []string{typeName}, "Unknown type %q.", typeName)
		return
	}

	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		if !validateScalarLiteral(v, typeName) {
			c.addErr(errors.KindTypeMismatch, "Value %s is not a valid %q.", describeValue(v), typeName)
		}

	case *ast.EnumTypeDefinition:
		ev, ok := v.(*ast.EnumValue)
		if !ok || !d.HasValue(ev.Value.Value) {
			c.addErr(errors.KindTypeMismatch, "Value %s is not a valid value of enum %q.", describeValue(v), typeName)
		}

	case *ast.InputObjectTypeDefinition:
		ov, ok := v.(*ast.ObjectValue)
		if !ok {
			c.addErr(errors.KindTypeMismatch, "Expected input object %q, found %s.", typeName, describeValue(v))
			return
		}
		c.validateInputObjectFields(ov, d, vh)

	default:
		c.addErrNames(errors.KindInvalidNamedType, []string{typeName},
			"Type %q is not an input type.", typeName)
	}
}

func (c *context) validateInputObjectFields(ov *ast.ObjectValue, def *ast.InputObjectTypeDefinition, vh varHandler) {
	seen := make(map[string]bool)
	for _, f := range ov.Fields {
		if seen[f.Name.Value] {
			c.addErrNames(errors.KindDuplicateArgument, []string{f.Name.Value},
				"There can be only one input field named %q.", f.Name.Value)
			continue
		}
		seen[f.Name.Value] = true

		fieldDef := findInputField(def.Fields, f.Name.Value)
		if fieldDef == nil {
			c.addErrNames(errors.KindUnknownArgument, []string{f.Name.Value},
				"Unknown field %q on input type %q.", f.Name.Value, def.Name.Value)
			continue
		}
		c.validateValue(f.Value, fieldDef.Type, vh)
	}

	for _, fieldDef := range def.Fields {
		if _, ok := fieldDef.Type.(*ast.NonNullType); !ok || fieldDef.DefaultValue != nil {
			continue
		}
		if !seen[fieldDef.Name.Value] {
			c.addErrNames(errors.KindMissingArgument, []string{fieldDef.Name.Value},
				"Input field %q of type %q is required but not provided.", fieldDef.Name.Value, fieldDef.Type.String())
		}
	}
}

func findInputField(fields []*ast.InputValueDefinition, name string) *ast.InputValueDefinition {
	for _, f := range fields {
		if f.Name.Value == name {
			return f
		}
	}
	return nil
}

// validateVariableUsage implements spec §4.8's two varHandler
// strategies: operation context compares the variable's declared type
// to expected structurally (plus the one documented nullability
// widening — see SPEC_FULL.md §4); default-value context forbids
// variables outright.
func (c *context) validateVariableUsage(v *ast.Variable, expected ast.Type, vh varHandler) {
	if vh.op == nil {
		if vh.fragmentBody {
			return
		}
		c.addErrNames(errors.KindInvalidLocation, []string{v.Name.Value},
			"Variable %q is not allowed in a default value.", v.Name.Value)
		return
	}

	def := vh.op.VariableDefinitionByName(v.Name.Value)
	if def == nil {
		c.addErrNames(errors.KindMissingVariableDefinition, []string{v.Name.Value},
			"Variable %q is not defined.", v.Name.Value)
		return
	}

	declared := def.Type
	if _, isNonNull := declared.(*ast.NonNullType); !isNonNull && def.DefaultValue != nil {
		declared = &ast.NonNullType{Type: declared}
	}

	if !typeCanBeUsedAs(declared, expected) {
		c.addErrNames(errors.KindTypeMismatch, []string{v.Name.Value},
			"Variable %q of type %q used in position expecting type %q.", v.Name.Value, def.Type.String(), expected.String())
	}
}

// typeCanBeUsedAs reports whether a value of type t may be used where
// as is expected: structural equality, with a non-null type usable
// where its nullable form is expected (but not vice versa) — spec
// §4.8, §9's "floor" of exact equality plus the one default-value
// widening already folded into declared above.
func typeCanBeUsedAs(t, as ast.Type) bool {
	tNN, tIsNN := t.(*ast.NonNullType)
	if tIsNN {
		t = tNN.Type
	}
	asNN, asIsNN := as.(*ast.NonNullType)
	if asIsNN {
		as = asNN.Type
		if !tIsNN {
			return false
		}
	}

	switch tt := t.(type) {
	case *ast.NamedType:
		at, ok := as.(*ast.NamedType)
		return ok && tt.Name.Value == at.Name.Value
	case *ast.ListType:
		at, ok := as.(*ast.ListType)
		return ok && typeCanBeUsedAs(tt.Type, at.Type)
	case *ast.NonNullType:
		return typeCanBeUsedAs(tt.Type, as)
	}
	return false
}

func validateScalarLiteral(v ast.Value, scalarName string) bool {
	switch scalarName {
	case "Int":
		_, ok := v.(*ast.IntValue)
		return ok
	case "Float":
		switch v.(type) {
		case *ast.FloatValue, *ast.IntValue:
			return true
		}
		return false
	case "String":
		_, ok := v.(*ast.StringValue)
		return ok
	case "Boolean":
		_, ok := v.(*ast.BooleanValue)
		return ok
	case "ID":
		switch v.(type) {
		case *ast.StringValue, *ast.IntValue:
			return true
		}
		return false
	default:
		// Custom scalar: accept any non-null scalar literal (spec §4.8).
		switch v.(type) {
		case *ast.IntValue, *ast.FloatValue, *ast.StringValue, *ast.BooleanValue,
			*ast.EnumValue:
			return true
		}
		return false
	}
}

func describeValue(v ast.Value) string {
	switch vv := v.(type) {
	case *ast.StringValue:
		return "\"" + vv.Value + "\""
	case *ast.EnumValue:
		return vv.Value.Value
	default:
		return v.GetKind()
	}
}
