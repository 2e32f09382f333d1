// Package introspection contains a read-only model of a GraphQL
// introspection result, i.e. the data returned by the introspection query
// for the __schema field.
package introspection

import (
	"strings"
	"sync"
)

// Kind is the kind of a GraphQL type, as reported by __Type.kind.
type Kind string

// Type kinds defined by the GraphQL introspection system.
const (
	Scalar      Kind = "SCALAR"
	Object      Kind = "OBJECT"
	Interface   Kind = "INTERFACE"
	Union       Kind = "UNION"
	Enum        Kind = "ENUM"
	InputObject Kind = "INPUT_OBJECT"
	List        Kind = "LIST"
	NonNull     Kind = "NON_NULL"
)

// IsWrapper reports whether k is one of the wrapping kinds, LIST or NON_NULL.
func (k Kind) IsWrapper() bool { return k == List || k == NonNull }

// Type represents both full type records from __schema.types and the
// partial type references found on fields and arguments. Wrapper kinds
// only carry OfType.
//
type Type struct {
	Kind          Kind          `json:"kind"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	OfType        *Type         `json:"ofType"`
	Fields        []*Field      `json:"fields"`
	Interfaces    []*Type       `json:"interfaces"`
	PossibleTypes []*Type       `json:"possibleTypes"`
	EnumValues    []*EnumValue  `json:"enumValues"`
	InputFields   []*InputValue `json:"inputFields"`
}

// Unwrap follows OfType through any wrapper kinds and returns the
// underlying named type reference. It returns nil for a malformed
// wrapper with no inner type.
func (t *Type) Unwrap() *Type {
	for t != nil && t.Kind.IsWrapper() {
		t = t.OfType
	}
	return t
}

// String returns the type signature as written in the GraphQL IDL, e.g. [Droid!]!
func (t *Type) String() string {
	var b strings.Builder
	writeSig(&b, t)
	return b.String()
}

func writeSig(b *strings.Builder, t *Type) {
	if t == nil {
		return
	}

	switch t.Kind {
	case NonNull:
		writeSig(b, t.OfType)
		b.WriteByte('!')
	case List:
		b.WriteByte('[')
		writeSig(b, t.OfType)
		b.WriteByte(']')
	default:
		b.WriteString(t.Name)
	}
}

// Field is an output field of an object or interface.
type Field struct {
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Args              []*InputValue `json:"args"`
	Type              *Type         `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason string        `json:"deprecationReason"`
}

// InputValue is an argument or an input object field.
type InputValue struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Type         *Type  `json:"type"`
	DefaultValue string `json:"defaultValue"`
}

// EnumValue is a single value of an enum type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason"`
}

// Directive is a directive declared by the schema.
type Directive struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Locations    []string      `json:"locations"`
	IsRepeatable bool          `json:"isRepeatable"`
	Args         []*InputValue `json:"args"`
}

// Schema is the value of the __schema field. A Schema must not be
// modified once it has been handed to a Lookup caller.
type Schema struct {
	QueryType        *Type        `json:"queryType"`
	MutationType     *Type        `json:"mutationType"`
	SubscriptionType *Type        `json:"subscriptionType"`
	Types            []*Type      `json:"types"`
	Directives       []*Directive `json:"directives"`

	indexOnce sync.Once
	types     map[string]*Type
	dirs      map[string]*Directive
}

func (s *Schema) index() {
	s.indexOnce.Do(func() {
		s.types = make(map[string]*Type, len(s.Types))
		for _, t := range s.Types {
			s.types[t.Name] = t
		}

		s.dirs = make(map[string]*Directive, len(s.Directives))
		for _, d := range s.Directives {
			s.dirs[d.Name] = d
		}
	})
}

// Lookup returns the full type record for the given name.
func (s *Schema) Lookup(name string) (*Type, bool) {
	s.index()
	t, ok := s.types[name]
	return t, ok
}

// LookupDirective returns the directive declared with the given name.
func (s *Schema) LookupDirective(name string) (*Directive, bool) {
	s.index()
	d, ok := s.dirs[name]
	return d, ok
}

// RootTypes returns the full records of the query, mutation and subscription
// types, in that order, skipping the ones the schema does not define.
func (s *Schema) RootTypes() []*Type {
	roots := make([]*Type, 0, 3)
	for _, ref := range []*Type{s.QueryType, s.MutationType, s.SubscriptionType} {
		if ref == nil {
			continue
		}

		if t, ok := s.Lookup(ref.Name); ok {
			roots = append(roots, t)
		}
	}
	return roots
}

// IsRoot reports whether name is one of the root operation types.
func (s *Schema) IsRoot(name string) bool {
	for _, ref := range []*Type{s.QueryType, s.MutationType, s.SubscriptionType} {
		if ref != nil && ref.Name == name {
			return true
		}
	}
	return false
}
