package validator

import (
	"github.com/jensneuse/abstractlogger"

	"github.com/shyptr/graphql/document"
	"github.com/shyptr/graphql/errors"
	"github.com/shyptr/graphql/schema"
)

// Validate runs the two validation phases of spec §4.5 over doc
// against schemaCtx: fragment definitions first, then (only if phase 1
// reported no errors) operation definitions. It never mutates doc.
func Validate(schemaCtx *schema.Context, doc *document.Context, opts ...Option) errors.List {
	c := &context{schema: schemaCtx, doc: doc, log: abstractlogger.Noop{}}
	for _, opt := range opts {
		opt(c)
	}

	c.validateFragmentDefinitions()
	if c.errs.HasErrors() {
		c.log.Debug("validation stopped after phase 1", abstractlogger.Int("errors", len(c.errs)))
		return c.errs
	}

	c.validateOperationDefinitions()
	c.log.Debug("validation complete", abstractlogger.Int("errors", len(c.errs)))
	return c.errs
}
