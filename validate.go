// Package graphql is the root entry point: Validate checks a parsed
// executable document against a parsed type-system document and
// returns either the document unchanged or a non-empty error list
// (spec §1). It is a thin orchestration layer over schema.NewContext,
// document.NewContext, and validator.Validate, in the style of the
// teacher's root graphql.go delegating to its internal packages rather
// than implementing logic itself.
package graphql

import (
	"github.com/jensneuse/abstractlogger"

	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/document"
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/schema"
	"github.com/shyptr/graphql/validator"
)

// Option configures Validate's logging. The zero value uses
// abstractlogger.Noop{}, matching schema.Context and document.Context's
// own default.
type Option func(*options)

type options struct {
	log abstractlogger.Logger
}

func WithLogger(l abstractlogger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Validate runs the schema query layer and the document query layer
// once each, then the two-phase validator pass over them (spec §4.5).
// On success it returns (doc, nil); on failure, doc is returned
// unchanged alongside every accumulated diagnostic — the validator
// never mutates its input (spec §5).
func Validate(doc *ast.ExecutableDocument, schemaDoc *ast.TypeSystemDocument, opts ...Option) (*ast.ExecutableDocument, errors.List) {
	o := &options{log: abstractlogger.Noop{}}
	for _, opt := range opts {
		opt(o)
	}

	schemaCtx, schemaErrs := schema.NewContext(schemaDoc, schema.WithLogger(o.log))
	docCtx := document.NewContext(doc, document.WithLogger(o.log))

	errs := append(errors.List{}, schemaErrs...)
	errs = append(errs, validator.Validate(schemaCtx, docCtx, validator.WithLogger(o.log))...)

	if errs.HasErrors() {
		return doc, errs
	}
	return doc, nil
}
