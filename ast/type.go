package ast

import (
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/kinds"
)

// Type is the recursive sum Type = Named(Name) | NonNull(Type) |
// List(Type) from spec §3.1. The grammar forbids NonNull(NonNull(_)),
// but that is the parser's job to reject; this validator tolerates
// arbitrary nesting rather than re-checking it.
type Type interface {
	Node
	isType()
	String() string
}

var _ Type = (*NamedType)(nil)
var _ Type = (*ListType)(nil)
var _ Type = (*NonNullType)(nil)

type NamedType struct {
	Kind string          `json:"kind"`
	Name Name            `json:"name"`
	Loc  errors.Location `json:"loc"`
}

func (t *NamedType) isType() {}
func (t *NamedType) GetKind() string { return kinds.NamedType }
func (t *NamedType) Location() errors.Location { return t.Loc }
func (t *NamedType) String() string { return t.Name.Value }

type ListType struct {
	Kind string          `json:"kind"`
	Type Type            `json:"type"`
	Loc  errors.Location `json:"loc"`
}

func (t *ListType) isType() {}
func (t *ListType) GetKind() string { return kinds.ListType }
func (t *ListType) Location() errors.Location { return t.Loc }
func (t *ListType) String() string { return "[" + t.Type.String() + "]" }

type NonNullType struct {
	Kind string          `json:"kind"`
	Type Type            `json:"type"`
	Loc  errors.Location `json:"loc"`
}

func (t *NonNullType) isType() {}
func (t *NonNullType) GetKind() string { return kinds.NonNullType }
func (t *NonNullType) Location() errors.Location { return t.Loc }
func (t *NonNullType) String() string { return t.Type.String() + "!" }

// NamedOf strips every NonNull/List wrapper off t and returns the
// named type underneath. Used pervasively by the schema and validator
// layers to resolve a field's or argument's result type down to the
// type definition it names (spec §4.1, §4.6).
func NamedOf(t Type) *NamedType {
	for {
		switch t2 := t.(type) {
		case *NamedType:
			return t2
		case *ListType:
			t = t2.Type
		case *NonNullType:
			t = t2.Type
		default:
			return nil
		}
	}
}
