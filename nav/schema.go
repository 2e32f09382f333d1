package nav

import "github.com/gqlc/gqldoc/introspection"

// Schema lists the root operation types.
type Schema struct {
	schema *introspection.Schema
	url    Resolver
}

// NewSchema returns the root operation types plugin.
func NewSchema(schema *introspection.Schema, url Resolver) *Schema {
	return &Schema{schema: schema, url: url}
}

// Name returns the plugin name used in error reports.
func (*Schema) Name() string { return "nav:Schema" }

// Sections implements Plugin.
func (p *Schema) Sections(active string) ([]Section, error) {
	roots := p.schema.RootTypes()

	items := make([]Item, 0, len(roots))
	for _, t := range roots {
		u, err := p.url.Resolve(t)
		if err != nil {
			return nil, err
		}

		items = append(items, Item{
			Label:  t.Name,
			URL:    u,
			Active: t.Name == active,
		})
	}

	return section("Schema", items), nil
}

// Directives lists the directives declared by the schema. Directive items
// are never active since directives have no page of their own.
type Directives struct {
	schema *introspection.Schema
	url    Resolver
}

// NewDirectives returns the directives plugin.
func NewDirectives(schema *introspection.Schema, url Resolver) *Directives {
	return &Directives{schema: schema, url: url}
}

// Name returns the plugin name used in error reports.
func (*Directives) Name() string { return "nav:Directives" }

// Sections implements Plugin.
func (p *Directives) Sections(string) ([]Section, error) {
	items := make([]Item, 0, len(p.schema.Directives))
	for _, d := range p.schema.Directives {
		u, err := p.url.Directive(d.Name)
		if err != nil {
			return nil, err
		}

		items = append(items, Item{Label: "@" + d.Name, URL: u})
	}

	return section("Directives", items), nil
}
