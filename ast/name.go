package ast

import (
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/kinds"
)

// Name is an opaque wrapper around a non-empty identifier string
// (spec §3.1). Equality is text equality; the parser is responsible
// for rejecting the empty or malformed names the grammar forbids, so
// the validator never needs to re-derive validity from raw text.
type Name struct {
	Kind  string          `json:"kind"`
	Value string          `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (n Name) GetKind() string            { return kinds.Name }
func (n Name) Location() errors.Location  { return n.Loc }
func (n Name) String() string             { return n.Value }

// NameOf narrows any Node down to the Name it carries, if it carries
// exactly one in the position GraphQL calls "the" name of that node.
// This replaces the mix-in "has-name" trait the source expresses via
// open inheritance with a capability accessor over the closed Node sum.
func NameOf(n Node) (Name, bool) {
	switch n := n.(type) {
	case *Field:
		return n.Name, true
	case *FragmentSpread:
		return n.Name, true
	case *FragmentDefinition:
		return n.Name, true
	case *OperationDefinition:
		if n.Name != nil {
			return *n.Name, true
		}
		return Name{}, false
	case *VariableDefinition:
		return n.Variable, true
	case *Directive:
		return n.Name, true
	case *InputValueDefinition:
		return n.Name, true
	case *FieldDefinition:
		return n.Name, true
	case *DirectiveDefinition:
		return n.Name, true
	}
	return Name{}, false
}
