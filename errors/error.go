// Package errors implements the validator's flat diagnostic model
// (spec §4.4): a tagged error kind carrying the offending name(s) and
// enough context to render an actionable message, plus an accumulating
// list that callers can range over without type-switching on the way
// in. It mirrors the shape of the teacher's errors.GraphQLError /
// MultiError, trimmed of the resolver/path fields execution needs and
// this validator does not.
package errors

import (
	"fmt"
	"strings"
)

// Kind tags the taxonomy from spec §4.4. Listing is non-exhaustive by
// spec design; embedders are free to add more without breaking this
// package, since Kind is just a string.
type Kind string

const (
	KindNameNotUnique             Kind = "NameNotUnique"
	KindAnonymousQueryNotAlone    Kind = "AnonymousQueryNotAlone"
	KindSubscriptionMultipleRoots Kind = "SubscriptionHasMultipleRoots"
	KindMissingDefinition         Kind = "MissingDefinition"
	KindMissingField              Kind = "MissingField"
	KindMissingSelection          Kind = "MissingSelection"
	KindInvalidSelection          Kind = "InvalidSelection"
	KindMissingTypeDefinition     Kind = "MissingTypeDefinition"
	KindInvalidNamedType          Kind = "InvalidNamedType"
	KindInvalidFragment           Kind = "InvalidFragment"
	KindCyclesDetected            Kind = "CyclesDetected"
	KindInvalidType               Kind = "InvalidType"
	KindMissingVariableDefinition Kind = "MissingVariableDefinition"
	KindMissingVariable           Kind = "MissingVariable"
	KindUnusedDefinition          Kind = "UnusedDefinition"
	KindTypeMismatch              Kind = "TypeMismatch"
	KindInvalidLocation           Kind = "InvalidLocation"
	KindOperationDefinitionError  Kind = "OperationDefinitionError"
	KindDuplicateSchemaDefinition Kind = "DuplicateSchemaDefinition"

	// The following three extend spec §4.4's non-exhaustive taxonomy to
	// give §4.7's three argument-supply rules (no duplicate name, no
	// unknown name, every required argument supplied) their own kinds
	// rather than overloading TypeMismatch for all of them.
	KindDuplicateArgument Kind = "DuplicateArgument"
	KindUnknownArgument   Kind = "UnknownArgument"
	KindMissingArgument   Kind = "MissingArgument"
)

// Location is populated by the external parser; the core validator
// never sets it (spec §6.1 — "errors do not carry source locations in
// this core"), but carries the field so embedding hosts can enrich a
// GqlError after the fact without redefining the type.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// GqlError is one diagnostic. Names holds the offending entity name(s)
// (a field, a fragment, a variable, ...); Hint carries an optional
// "did you mean" or other actionable suggestion. Type, when set, names
// the type involved; the validator sets it only on MissingField, to
// the parent type (TypeMismatch names the expected type in Message).
type GqlError struct {
	Kind      Kind       `json:"kind"`
	Message   string     `json:"message"`
	Names     []string   `json:"names,omitempty"`
	Type      string     `json:"type,omitempty"`
	Hint      string     `json:"hint,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

func (e *GqlError) Error() string {
	if e == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", e.Message)
	if e.Hint != "" {
		str += " " + e.Hint
	}
	for _, loc := range e.Locations {
		str += fmt.Sprintf(" (%d:%d)", loc.Line, loc.Column)
	}
	return str
}

func New(kind Kind, format string, a ...interface{}) *GqlError {
	return &GqlError{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// List is an accumulating, non-exclusive error collection. Passes
// append to it rather than returning on first failure (spec §7); it
// satisfies the error interface so a failed Validate can be returned
// and handled like any other Go error, while still letting a caller
// range over every individual diagnostic.
type List []*GqlError

func (l List) Error() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (l List) HasErrors() bool { return len(l) > 0 }
