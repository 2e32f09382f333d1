// Package nav contains the navigation plugins. Each plugin contributes the
// sidebar sections of one entity category; the translator concatenates
// them in registration order.
package nav

import "github.com/gqlc/gqldoc/introspection"

// Item is a single link of a navigation section.
type Item struct {
	Label string `json:"label"`
	URL   string `json:"url"`

	// Active marks the item of the page currently being built.
	Active bool `json:"isActive"`
}

// Section is a titled group of navigation items.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Plugin contributes navigation sections.
type Plugin interface {
	// Sections returns the sections for the page of the active type.
	// An empty active name highlights nothing. A plugin with nothing to
	// list returns no sections.
	Sections(active string) ([]Section, error)
}

// Resolver resolves navigation targets to URLs.
type Resolver interface {
	Resolve(t *introspection.Type) (string, error)
	Directive(name string) (string, error)
	IsNative(name string) bool
}

// Defaults returns the default plugins in their display order:
// Schema, Scalars, Objects, Interfaces, Unions, Enums, Input Objects and Directives.
//
func Defaults(schema *introspection.Schema, url Resolver) []Plugin {
	return []Plugin{
		NewSchema(schema, url),
		NewScalars(schema, url),
		NewObjects(schema, url),
		NewInterfaces(schema, url),
		NewUnions(schema, url),
		NewEnums(schema, url),
		NewInputs(schema, url),
		NewDirectives(schema, url),
	}
}

func section(title string, items []Item) []Section {
	if len(items) == 0 {
		return nil
	}
	return []Section{{Title: title, Items: items}}
}
