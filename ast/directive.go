package ast

import (
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/kinds"
)

// Argument is a single name/value pair supplied to a field or
// directive call (spec §4.7).
type Argument struct {
	Kind  string          `json:"kind"`
	Name  Name            `json:"name"`
	Value Value           `json:"value"`
	Loc   errors.Location `json:"loc"`
}

func (a *Argument) GetKind() string { return kinds.Argument }
func (a *Argument) Location() errors.Location { return a.Loc }

// Directive is a named annotation with its own argument list, legal
// only at the locations its DirectiveDefinition declares (spec §4.9).
type Directive struct {
	Kind      string          `json:"kind"`
	Name      Name            `json:"name"`
	Arguments []*Argument     `json:"arguments"`
	Loc       errors.Location `json:"loc"`
}

func (d *Directive) GetKind() string { return kinds.Directive }
func (d *Directive) Location() errors.Location { return d.Loc }

// GetArgument looks up a named argument in a call-site argument list;
// nil if absent.
func GetArgument(args []*Argument, name string) *Argument {
	for _, a := range args {
		if a.Name.Value == name {
			return a
		}
	}
	return nil
}
