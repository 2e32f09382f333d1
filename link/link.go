// Package link resolves schema entities to the relative URL of the page
// documenting them. It is the only place deciding whether an entity lives
// in the native (introspection) namespace or in the user namespace.
package link

import (
	"fmt"
	"strings"

	"github.com/gqlc/gqldoc/introspection"
)

// Defaults used by New.
const (
	DefaultBaseURL      = "./"
	DefaultNativePrefix = "__"

	docSuffix    = ".doc.html"
	nativeSuffix = ".native.html"

	// IndexPage and NativePage are the file names of the schema overview pages.
	IndexPage  = "index.html"
	NativePage = "native.html"
)

// UnresolvableError is returned when a reference names an entity which
// is not part of the schema.
type UnresolvableError struct {
	Name string
	Kind string
}

func (e *UnresolvableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("link: cannot resolve unnamed %s reference", e.Kind)
	}
	return fmt.Sprintf("link: %s %q is not defined by the schema", e.Kind, e.Name)
}

// Page returns the page file name for an entity name: the lower-cased
// name suffixed with .doc.html, or, for names starting with prefix, the
// lower-cased name without the prefix suffixed with .native.html.
//
func Page(prefix, name string) string {
	name = strings.ToLower(name)
	if isNative(prefix, name) {
		return name[len(prefix):] + nativeSuffix
	}
	return name + docSuffix
}

// URL joins baseURL with the page of name.
func URL(baseURL, prefix, name string) string { return baseURL + Page(prefix, name) }

func isNative(prefix, name string) bool {
	return len(prefix) > 0 && len(name) >= len(prefix) && strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix))
}

type option func(*Resolver)

// WithBaseURL sets the prefix prepended to every resolved URL.
func WithBaseURL(u string) option {
	return func(r *Resolver) {
		r.baseURL = u
	}
}

// WithNativePrefix sets the marker that native type names start with.
func WithNativePrefix(p string) option {
	return func(r *Resolver) {
		r.prefix = p
	}
}

// Resolver resolves entities of a schema to page URLs.
type Resolver struct {
	schema  *introspection.Schema
	baseURL string
	prefix  string
}

// New returns a Resolver bound to the given schema.
func New(schema *introspection.Schema, opts ...option) *Resolver {
	r := &Resolver{
		schema:  schema,
		baseURL: DefaultBaseURL,
		prefix:  DefaultNativePrefix,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.baseURL == "" {
		r.baseURL = DefaultBaseURL
	}
	return r
}

// BaseURL returns the prefix of every resolved URL.
func (r *Resolver) BaseURL() string { return r.baseURL }

// IsNative reports whether name belongs to the native namespace.
func (r *Resolver) IsNative(name string) bool { return isNative(r.prefix, name) }

// Resolve returns the URL of the page documenting t. Wrapper references
// resolve to the page of their underlying named type.
func (r *Resolver) Resolve(t *introspection.Type) (string, error) {
	named := t.Unwrap()
	if named == nil {
		return "", &UnresolvableError{Kind: "type"}
	}
	return r.ResolveName(named.Name)
}

// ResolveName returns the URL of the page documenting the named type.
func (r *Resolver) ResolveName(name string) (string, error) {
	page, err := r.PageName(name)
	if err != nil {
		return "", err
	}
	return r.baseURL + page, nil
}

// PageName returns the file name of the page documenting the named type,
// relative to the build directory.
func (r *Resolver) PageName(name string) (string, error) {
	if name == "" {
		return "", &UnresolvableError{Kind: "type"}
	}

	if _, ok := r.schema.Lookup(name); !ok {
		return "", &UnresolvableError{Name: name, Kind: "type"}
	}
	return Page(r.prefix, name), nil
}

// Directive returns the URL of a directive's entry on the index page.
// Directives are not types and get no page of their own.
func (r *Resolver) Directive(name string) (string, error) {
	if _, ok := r.schema.LookupDirective(name); !ok {
		return "", &UnresolvableError{Name: name, Kind: "directive"}
	}
	return r.baseURL + "#" + DirectiveAnchor(name), nil
}

// DirectiveAnchor returns the HTML id of a directive's entry.
func DirectiveAnchor(name string) string { return "directive-" + strings.ToLower(name) }

// IndexURL returns the URL of the schema overview page.
func (r *Resolver) IndexURL() string { return r.baseURL }

// NativeURL returns the URL of the native schema overview page.
func (r *Resolver) NativeURL() string { return r.baseURL + NativePage }
