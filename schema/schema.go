// Package schema implements the read-only schema query layer (spec
// §4.1): an index over a parsed TypeSystemDocument that resolves type,
// field, interface, union-member, directive, and root-operation
// lookups, and computes the input/output-type predicates over the
// recursive type grammar. It generalizes the teacher's
// system/validation/validate.go helpers (fields, hasSubfields,
// possibleTypes, unwrapType), which operated on a runtime,
// reflection-built *internal.Schema, to operate on an AST parsed
// straight from a type-system document instead.
package schema

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jensneuse/abstractlogger"

	"github.com/shyptr/graphql/ast"
	"github.com/shyptr/graphql/errors"
)

// builtinScalarNames are synthesized into every schema regardless of
// whether the type-system document defines them explicitly (spec
// §3.3, §6.3).
var builtinScalarNames = []string{"Int", "Float", "String", "Boolean", "ID"}

func isBuiltinScalar(name string) bool {
	for _, n := range builtinScalarNames {
		if n == name {
			return true
		}
	}
	return false
}

// Context is the immutable, shareable index built once per schema
// (spec §5: "A SchemaContext is immutable after construction and may
// be shared freely"). Build it with NewContext.
type Context struct {
	doc    *ast.TypeSystemDocument
	types  map[string]ast.TypeDefinition
	dirs   map[string]*ast.DirectiveDefinition
	schema *ast.SchemaDefinition
	log    abstractlogger.Logger
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogger attaches a structured logger for pass-boundary tracing;
// the default is abstractlogger.Noop{}, matching the teacher pack's
// convention (roderm-graphql-go-tools' plan.Configuration.Logger).
func WithLogger(l abstractlogger.Logger) Option {
	return func(c *Context) { c.log = l }
}

// NewContext builds a Context from a parsed type-system document. It
// synthesizes the five built-in scalars when absent and unions them
// with any explicit definitions, and diagnoses a second
// SchemaDefinition if the document somehow carries one (spec §9 Open
// Question, resolved — see DESIGN.md).
func NewContext(doc *ast.TypeSystemDocument, opts ...Option) (*Context, errors.List) {
	c := &Context{
		doc:  doc,
		types: make(map[string]ast.TypeDefinition),
		dirs:  make(map[string]*ast.DirectiveDefinition),
		log:   abstractlogger.Noop{},
	}
	for _, opt := range opts {
		opt(c)
	}

	var errs errors.List

	for _, name := range builtinScalarNames {
		c.types[name] = &ast.ScalarTypeDefinition{Name: ast.Name{Value: name}}
	}
	for _, t := range doc.Types {
		if _, exists := c.types[t.TypeName()]; exists && isBuiltinScalar(t.TypeName()) {
			continue // explicit redefinition of a builtin: first definition wins, per spec §6.3
		}
		if _, exists := c.types[t.TypeName()]; exists {
			continue // duplicate definition: first wins, later ignored for lookup purposes
		}
		c.types[t.TypeName()] = t
	}
	for _, d := range doc.Directives {
		if _, exists := c.dirs[d.Name.Value]; !exists {
			c.dirs[d.Name.Value] = d
		}
	}

	switch len(doc.Schemas) {
	case 0:
		// No SchemaDefinition: fall back to conventional root names (spec §6.3).
	case 1:
		c.schema = doc.Schemas[0]
	default:
		errs = append(errs, errors.New(errors.KindDuplicateSchemaDefinition,
			"A GraphQL document must not contain more than one schema definition."))
		c.schema = doc.Schemas[0] // degrade gracefully: validate against the first
	}

	c.log.Debug("schema.NewContext built", abstractlogger.Int("types", len(c.types)), abstractlogger.Int("directives", len(c.dirs)))

	return c, errs
}

// FindTypeDef resolves a named type definition, regardless of kind.
func (c *Context) FindTypeDef(name string) (ast.TypeDefinition, bool) {
	t, ok := c.types[name]
	return t, ok
}

// DirectiveDef resolves a directive definition by name.
func (c *Context) DirectiveDef(name string) (*ast.DirectiveDefinition, bool) {
	d, ok := c.dirs[name]
	return d, ok
}

// FieldDef implements the breadth-first field lookup from spec §4.1:
// match the parent type's own fields first; on miss, enqueue its
// declared interfaces (transitively); a union enqueues its member
// types instead of having fields of its own. The first hit in
// declared field order on the first visited type wins.
func (c *Context) FieldDef(parent string, fieldName string) (*ast.FieldDefinition, bool) {
	def, ok := c.types[parent]
	if !ok {
		return nil, false
	}

	visited := make(map[string]bool)
	queue := []ast.TypeDefinition{def}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur.TypeName()] {
			continue
		}
		visited[cur.TypeName()] = true

		switch t := cur.(type) {
		case *ast.ObjectTypeDefinition:
			if f := findField(t.Fields, fieldName); f != nil {
				return f, true
			}
			for _, i := range t.Interfaces {
				if idef, ok := c.types[i.Name.Value]; ok {
					queue = append(queue, idef)
				}
			}
		case *ast.InterfaceTypeDefinition:
			if f := findField(t.Fields, fieldName); f != nil {
				return f, true
			}
			for _, i := range t.Interfaces {
				if idef, ok := c.types[i.Name.Value]; ok {
					queue = append(queue, idef)
				}
			}
		case *ast.UnionTypeDefinition:
			for _, m := range t.Types {
				if mdef, ok := c.types[m.Name.Value]; ok {
					queue = append(queue, mdef)
				}
			}
		default:
			// Scalars, enums, input objects, and unknown names yield no field.
		}
	}
	return nil, false
}

// FieldNames lists parent's own declared field names, for "did you
// mean" suggestions (suggest.For) when a field lookup misses.
func (c *Context) FieldNames(parent string) []string {
	def, ok := c.types[parent]
	if !ok {
		return nil
	}
	var fields []*ast.FieldDefinition
	switch t := def.(type) {
	case *ast.ObjectTypeDefinition:
		fields = t.Fields
	case *ast.InterfaceTypeDefinition:
		fields = t.Fields
	default:
		return nil
	}
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name.Value)
	}
	return names
}

// DirectiveNames lists every declared directive name, for suggestions.
func (c *Context) DirectiveNames() []string {
	names := make([]string, 0, len(c.dirs))
	for n := range c.dirs {
		names = append(names, n)
	}
	return names
}

func findField(fields []*ast.FieldDefinition, name string) *ast.FieldDefinition {
	for _, f := range fields {
		if f.Name.Value == name {
			return f
		}
	}
	return nil
}

// OpRootType resolves the root object type for an operation kind. If
// the document carries a SchemaDefinition, its roots govern; else the
// conventional names Query/Mutation/Subscription are tried (spec
// §4.1, §6.3).
func (c *Context) OpRootType(op ast.OperationType) (*ast.ObjectTypeDefinition, bool) {
	var name string
	if c.schema != nil {
		if n := c.schema.RootFor(op); n != nil {
			name = n.Name.Value
		}
	} else {
		switch op {
		case ast.Query:
			name = "Query"
		case ast.Mutation:
			name = "Mutation"
		case ast.Subscription:
			name = "Subscription"
		}
	}
	if name == "" {
		return nil, false
	}
	def, ok := c.types[name]
	if !ok {
		return nil, false
	}
	obj, ok := def.(*ast.ObjectTypeDefinition)
	return obj, ok
}

// IsLeaf reports whether name is one of the built-in leaf scalars
// (Int, Float, String, Boolean, ID). Custom scalars and enums are leaf
// *types* in the GraphQL sense (spec glossary) but this predicate is
// specifically the built-in-leaf check spec §4.1 lists.
func (c *Context) IsLeaf(name string) bool {
	return isBuiltinScalar(name)
}

// IsInputType implements spec §4.1's input-type predicate: recurse
// through NonNull/List, then consult the named type's kind. An unknown
// name resolves true only if it is a built-in leaf name.
func (c *Context) IsInputType(t ast.Type) bool {
	named := ast.NamedOf(t)
	if named == nil {
		return false
	}
	def, ok := c.types[named.Name.Value]
	if !ok {
		return c.IsLeaf(named.Name.Value)
	}
	switch def.(type) {
	case *ast.ScalarTypeDefinition, *ast.EnumTypeDefinition, *ast.InputObjectTypeDefinition:
		return true
	default:
		return false
	}
}

// IsOutputType implements spec §4.1's output-type predicate.
func (c *Context) IsOutputType(t ast.Type) bool {
	named := ast.NamedOf(t)
	if named == nil {
		return false
	}
	def, ok := c.types[named.Name.Value]
	if !ok {
		return c.IsLeaf(named.Name.Value)
	}
	switch def.(type) {
	case *ast.ScalarTypeDefinition, *ast.ObjectTypeDefinition, *ast.InterfaceTypeDefinition,
		*ast.UnionTypeDefinition, *ast.EnumTypeDefinition:
		return true
	default:
		return false
	}
}

// HasSubfields reports whether t resolves (after stripping
// NonNull/List wrappers) to a composite type — Object, Interface, or
// Union — which therefore requires a non-empty selection set (spec
// §4.6).
func (c *Context) HasSubfields(t ast.Type) bool {
	named := ast.NamedOf(t)
	if named == nil {
		return false
	}
	def, ok := c.types[named.Name.Value]
	if !ok {
		return false
	}
	switch def.(type) {
	case *ast.ObjectTypeDefinition, *ast.InterfaceTypeDefinition, *ast.UnionTypeDefinition:
		return true
	default:
		return false
	}
}

// Implements reports whether object implements the named interface,
// directly or transitively.
func (c *Context) Implements(obj *ast.ObjectTypeDefinition, ifaceName string) bool {
	for _, i := range obj.Interfaces {
		if i.Name.Value == ifaceName {
			return true
		}
		if idef, ok := c.types[i.Name.Value].(*ast.InterfaceTypeDefinition); ok {
			if c.interfaceImplements(idef, ifaceName) {
				return true
			}
		}
	}
	return false
}

func (c *Context) interfaceImplements(i *ast.InterfaceTypeDefinition, ifaceName string) bool {
	for _, parent := range i.Interfaces {
		if parent.Name.Value == ifaceName {
			return true
		}
		if pdef, ok := c.types[parent.Name.Value].(*ast.InterfaceTypeDefinition); ok {
			if c.interfaceImplements(pdef, ifaceName) {
				return true
			}
		}
	}
	return false
}

// UnionHasMember reports whether a union named unionName lists
// memberName among its possible types.
func (c *Context) UnionHasMember(unionName, memberName string) bool {
	u, ok := c.types[unionName].(*ast.UnionTypeDefinition)
	if !ok {
		return false
	}
	for _, t := range u.Types {
		if t.Name.Value == memberName {
			return true
		}
	}
	return false
}

// Covariant implements the subtype relation from spec §4.6's glossary
// entry "Covariant type": sub == sup, sub is an Object implementing
// interface sup, sub is an Object listed by union sup, or sub is an
// Interface implementing interface sup.
func (c *Context) Covariant(sub, sup string) bool {
	if sub == sup {
		return true
	}
	subDef, ok := c.types[sub]
	if !ok {
		return false
	}
	switch d := subDef.(type) {
	case *ast.ObjectTypeDefinition:
		if c.Implements(d, sup) {
			return true
		}
		return c.UnionHasMember(sup, sub)
	case *ast.InterfaceTypeDefinition:
		return c.interfaceImplements(d, sup)
	}
	return false
}

// CanBeFragmentType reports whether name may be used as a fragment's
// type condition: Object, Interface, or Union (spec §4.6).
func (c *Context) CanBeFragmentType(name string) bool {
	def, ok := c.types[name]
	if !ok {
		return false
	}
	switch def.(type) {
	case *ast.ObjectTypeDefinition, *ast.InterfaceTypeDefinition, *ast.UnionTypeDefinition:
		return true
	default:
		return false
	}
}

// Dump renders a debug snapshot of the indexed type names (directive
// names are not included), backed by go-spew in place of a hand-rolled
// %#v dump.
func (c *Context) Dump() string {
	names := make([]string, 0, len(c.types))
	for n := range c.types {
		names = append(names, n)
	}
	return fmt.Sprintf("schema.Context{types: %s}", spew.Sdump(names))
}
