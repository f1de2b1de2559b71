package ast

import (
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/kinds"
)

// Value is the sum from spec §3.2: Variable | Int | Float | String |
// Bool | Null | List | Enum | Object. Argument values, variable
// default values, and directive argument values all share this one
// grammar.
type Value interface {
	Node
	isValue()
}

var _ Value = (*Variable)(nil)
var _ Value = (*IntValue)(nil)
var _ Value = (*FloatValue)(nil)
var _ Value = (*StringValue)(nil)
var _ Value = (*BooleanValue)(nil)
var _ Value = (*NullValue)(nil)
var _ Value = (*ListValue)(nil)
var _ Value = (*EnumValue)(nil)
var _ Value = (*ObjectValue)(nil)

type Variable struct {
	Kind string          `json:"kind"`
	Name Name            `json:"name"`
	Loc  errors.Location `json:"loc"`
}

func (v *Variable) isValue() {}
func (v *Variable) GetKind() string { return kinds.Variable }
func (v *Variable) Location() errors.Location { return v.Loc }

type IntValue struct {
	Kind  string          `json:"kind"`
	Value int64           `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (v *IntValue) isValue() {}
func (v *IntValue) GetKind() string { return kinds.IntValue }
func (v *IntValue) Location() errors.Location { return v.Loc }

type FloatValue struct {
	Kind  string          `json:"kind"`
	Value float64         `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (v *FloatValue) isValue() {}
func (v *FloatValue) GetKind() string { return kinds.FloatValue }
func (v *FloatValue) Location() errors.Location { return v.Loc }

type StringValue struct {
	Kind  string          `json:"kind"`
	Value string          `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (v *StringValue) isValue() {}
func (v *StringValue) GetKind() string { return kinds.StringValue }
func (v *StringValue) Location() errors.Location { return v.Loc }

type BooleanValue struct {
	Kind  string          `json:"kind"`
	Value bool            `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (v *BooleanValue) isValue() {}
func (v *BooleanValue) GetKind() string { return kinds.BooleanValue }
func (v *BooleanValue) Location() errors.Location { return v.Loc }

type NullValue struct {
	Kind string          `json:"kind"`
	Loc  errors.Location `json:"loc"`
}

func (v *NullValue) isValue() {}
func (v *NullValue) GetKind() string { return kinds.NullValue }
func (v *NullValue) Location() errors.Location { return v.Loc }

type EnumValue struct {
	Kind  string          `json:"kind"`
	Value Name            `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (v *EnumValue) isValue() {}
func (v *EnumValue) GetKind() string { return kinds.EnumValue }
func (v *EnumValue) Location() errors.Location { return v.Loc }

type ListValue struct {
	Kind   string          `json:"kind"`
	Values []Value         `json:"values"`
	Loc    errors.Location `json:"loc"`
}

func (v *ListValue) isValue() {}
func (v *ListValue) GetKind() string { return kinds.ListValue }
func (v *ListValue) Location() errors.Location { return v.Loc }

type ObjectField struct {
	Kind  string          `json:"kind"`
	Name  Name            `json:"name"`
	Value Value           `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (f *ObjectField) GetKind() string { return kinds.ObjectField }
func (f *ObjectField) Location() errors.Location { return f.Loc }

type ObjectValue struct {
	Kind   string          `json:"kind"`
	Fields []*ObjectField  `json:"fields"`
	Loc    errors.Location `json:"loc"`
}

func (v *ObjectValue) isValue() {}
func (v *ObjectValue) GetKind() string { return kinds.ObjectValue }
func (v *ObjectValue) Location() errors.Location { return v.Loc }

// IsNull reports whether v is the literal null value; used throughout
// the validator instead of a nil check, since an absent value and an
// explicit null are different things in GraphQL (spec §4.8).
func IsNull(v Value) bool {
	_, ok := v.(*NullValue)
	return ok
}
