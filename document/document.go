// Package document contains the document plugins, which render the body
// of a type's page into structured sections for the page templates.
package document

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gqlc/gqldoc/introspection"
)

// Resolver resolves type references to page URLs. Plugins must never
// build URLs themselves.
type Resolver interface {
	Resolve(t *introspection.Type) (string, error)
}

// Plugin renders one flavor of body content for a type.
type Plugin interface {
	Render(t *introspection.Type, url Resolver) (Section, error)
}

// Section is a block of a type's page body.
type Section struct {
	Title       string        `json:"title"`
	Description template.HTML `json:"description,omitempty"`

	// Code is a preformatted listing, already escaped.
	Code   template.HTML `json:"code,omitempty"`
	Tables []Table       `json:"tables,omitempty"`
}

// Table is a titled list of rows, e.g. the fields of an object.
type Table struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Row describes a field, argument, enum value or type reference.
type Row struct {
	Name              string        `json:"name"`
	Type              *TypeLink     `json:"type,omitempty"`
	Description       template.HTML `json:"description,omitempty"`
	Default           string        `json:"defaultValue,omitempty"`
	Deprecated        bool          `json:"isDeprecated,omitempty"`
	DeprecationReason string        `json:"deprecationReason,omitempty"`
	Args              []Row         `json:"args,omitempty"`
}

// TypeLink is a type signature split around its named type, so
// templates can link the name alone, e.g. "[", "Droid", "!]!".
type TypeLink struct {
	Prefix string `json:"prefix,omitempty"`
	Name   string `json:"name"`
	Suffix string `json:"suffix,omitempty"`
	URL    string `json:"url"`
}

func linkType(url Resolver, t *introspection.Type) (*TypeLink, error) {
	named := t.Unwrap()
	if named == nil {
		return nil, fmt.Errorf("document: malformed type reference %s", t)
	}

	u, err := url.Resolve(t)
	if err != nil {
		return nil, err
	}

	sig := t.String()
	i := strings.Index(sig, named.Name)
	return &TypeLink{
		Prefix: sig[:i],
		Name:   named.Name,
		Suffix: sig[i+len(named.Name):],
		URL:    u,
	}, nil
}

// Plugin names accepted by Lookup.
const (
	SchemaHTMLName = "schema-html"
	SchemaName     = "schema"
	TablesName     = "tables"
)

// DefaultTitle is the title of the schema definition sections.
const DefaultTitle = "GraphQL Schema definition"

// Names returns the names of the builtin plugins.
func Names() []string { return []string{SchemaHTMLName, SchemaName, TablesName} }

// Lookup returns the builtin plugin registered under name.
func Lookup(name string) (Plugin, error) {
	switch name {
	case SchemaHTMLName:
		return &SchemaHTML{Title: DefaultTitle}, nil
	case SchemaName:
		return &Schema{Title: DefaultTitle}, nil
	case TablesName:
		return &Tables{Title: "Reference"}, nil
	}
	return nil, fmt.Errorf("document: unknown plugin %q, must be one of: %s", name, strings.Join(Names(), ", "))
}
