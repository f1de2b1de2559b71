package ast

import (
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/kinds"
)

// Selection is the sum Field | InlineFragment | FragmentSpread (spec
// §3.4): one entry of a braced selection set.
type Selection interface {
	Node
	isSelection()
}

var _ Selection = (*Field)(nil)
var _ Selection = (*InlineFragment)(nil)
var _ Selection = (*FragmentSpread)(nil)

// Field is a single selected field, optionally aliased, with its own
// arguments, directives, and (for composite result types) a nested
// selection set.
type Field struct {
	Kind         string          `json:"kind"`
	Alias        *Name           `json:"alias,omitempty"`
	Name         Name            `json:"name"`
	Arguments    []*Argument     `json:"arguments"`
	Directives   []*Directive    `json:"directives"`
	SelectionSet []Selection     `json:"selectionSet"`
	Loc          errors.Location `json:"loc"`
}

func (f *Field) isSelection() {}
func (f *Field) GetKind() string { return kinds.Field }
func (f *Field) Location() errors.Location { return f.Loc }

// ResponseName is the name this field will occupy in the response
// shape: its alias if aliased, its name otherwise.
func (f *Field) ResponseName() string {
	if f.Alias != nil {
		return f.Alias.Value
	}
	return f.Name.Value
}

// InlineFragment is an anonymous type-conditioned selection, `... on
// T { ... }`. TypeCondition is nil when the `on T` clause is omitted,
// in which case the fragment's parent type carries through unchanged
// (spec §4.6).
type InlineFragment struct {
	Kind          string          `json:"kind"`
	TypeCondition *NamedType      `json:"typeCondition,omitempty"`
	Directives    []*Directive    `json:"directives"`
	SelectionSet  []Selection     `json:"selectionSet"`
	Loc           errors.Location `json:"loc"`
}

func (f *InlineFragment) isSelection() {}
func (f *InlineFragment) GetKind() string { return kinds.InlineFragment }
func (f *InlineFragment) Location() errors.Location { return f.Loc }

// FragmentSpread is a named reference `...Name` to a FragmentDefinition
// elsewhere in the document.
type FragmentSpread struct {
	Kind       string          `json:"kind"`
	Name       Name            `json:"name"`
	Directives []*Directive    `json:"directives"`
	Loc        errors.Location `json:"loc"`
}

func (f *FragmentSpread) isSelection() {}
func (f *FragmentSpread) GetKind() string { return kinds.FragmentSpread }
func (f *FragmentSpread) Location() errors.Location { return f.Loc }

// VariableDefinition declares one variable an operation accepts: its
// name, type, optional default value, and directives (spec §3.4).
type VariableDefinition struct {
	Kind         string          `json:"kind"`
	Variable     Name            `json:"variable"`
	Type         Type            `json:"type"`
	DefaultValue Value           `json:"defaultValue,omitempty"`
	Directives   []*Directive    `json:"directives"`
	Loc          errors.Location `json:"loc"`
}

func (v *VariableDefinition) GetKind() string { return kinds.VariableDefinition }
func (v *VariableDefinition) Location() errors.Location { return v.Loc }

// ExecutableDefinition is the sum OperationDefinition | FragmentDefinition
// (spec §3.4).
type ExecutableDefinition interface {
	Node
	isExecutableDefinition()
}

var _ ExecutableDefinition = (*OperationDefinition)(nil)
var _ ExecutableDefinition = (*FragmentDefinition)(nil)

// OperationDefinition is one query/mutation/subscription in the
// document. Name is nil for an anonymous operation (spec §3.4).
type OperationDefinition struct {
	Kind                string                 `json:"kind"`
	Name                *Name                  `json:"name,omitempty"`
	Operation           OperationType          `json:"operation"`
	VariableDefinitions []*VariableDefinition  `json:"variableDefinitions"`
	Directives          []*Directive           `json:"directives"`
	SelectionSet        []Selection            `json:"selectionSet"`
	Loc                 errors.Location        `json:"loc"`
}

func (o *OperationDefinition) isExecutableDefinition() {}
func (o *OperationDefinition) GetKind() string { return kinds.OperationDefinition }
func (o *OperationDefinition) Location() errors.Location { return o.Loc }

func (o *OperationDefinition) IsAnonymous() bool {
	return o.Name == nil || o.Name.Value == ""
}

// VariableDefinitionByName looks up one of this operation's declared
// variables by name; nil if undeclared.
func (o *OperationDefinition) VariableDefinitionByName(name string) *VariableDefinition {
	for _, v := range o.VariableDefinitions {
		if v.Variable.Value == name {
			return v
		}
	}
	return nil
}

// FragmentDefinition names a reusable selection set conditioned on a
// type (the `on` clause, spec §3.4).
type FragmentDefinition struct {
	Kind         string          `json:"kind"`
	Name         Name            `json:"name"`
	On           NamedType       `json:"typeCondition"`
	Directives   []*Directive    `json:"directives"`
	SelectionSet []Selection     `json:"selectionSet"`
	Loc          errors.Location `json:"loc"`
}

func (f *FragmentDefinition) isExecutableDefinition() {}
func (f *FragmentDefinition) GetKind() string { return kinds.FragmentDefinition }
func (f *FragmentDefinition) Location() errors.Location { return f.Loc }

// ExecutableDocument is a non-empty list of operation and fragment
// definitions (spec §3.4). The parser guarantees non-emptiness; the
// validator does not check it again, and an empty document validates
// with no errors.
type ExecutableDocument struct {
	Kind        string                  `json:"kind"`
	Definitions []ExecutableDefinition  `json:"definitions"`
	Loc         errors.Location         `json:"loc"`
}

func (d *ExecutableDocument) GetKind() string { return kinds.ExecutableDocument }
func (d *ExecutableDocument) Location() errors.Location { return d.Loc }

// Operations returns every OperationDefinition in declared order.
func (d *ExecutableDocument) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns every FragmentDefinition in declared order.
func (d *ExecutableDocument) Fragments() []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, def := range d.Definitions {
		if f, ok := def.(*FragmentDefinition); ok {
			frags = append(frags, f)
		}
	}
	return frags
}
