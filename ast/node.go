package ast

import "github.com/shyptr/graphql/errors"

// Node is the root of every AST value in both the type-system document
// and the executable document (spec §3). Every concrete node reports
// its Kind (for debug dumps and JSON payloads) and its source Location
// (populated by the external parser; see errors.Location).
type Node interface {
	GetKind() string
	Location() errors.Location
}
