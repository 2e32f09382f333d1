// Package translator assembles the data of every documentation page from
// the navigation and document plugins.
package translator

//go:generate mockgen -package=translator -destination=./nav_mock_test.go -mock_names=Plugin=MockNavPlugin github.com/gqlc/gqldoc/nav Plugin
//go:generate mockgen -package=translator -destination=./document_mock_test.go -mock_names=Plugin=MockDocumentPlugin github.com/gqlc/gqldoc/document Plugin

import (
	"fmt"
	"html/template"

	"github.com/gqlc/gqldoc/document"
	"github.com/gqlc/gqldoc/introspection"
	"github.com/gqlc/gqldoc/link"
	"github.com/gqlc/gqldoc/nav"
)

// Resolver is the URL resolver shared by both plugin protocols.
type Resolver interface {
	Resolve(t *introspection.Type) (string, error)
	Directive(name string) (string, error)
	IsNative(name string) bool
}

// PluginError represents a failure of a navigation or document plugin.
type PluginError struct {
	// Page is the page being built when the error was encountered.
	Page string

	// Plugin is the name of the failing plugin.
	Plugin string

	Err error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("translator: plugin %s failed on page %s: %s", e.Plugin, e.Page, e.Err)
}

func (e *PluginError) Unwrap() error { return e.Err }

func pluginName(p interface{}) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}

// Page is the data of one documentation page.
type Page struct {
	Title       string        `json:"title"`
	Description template.HTML `json:"description,omitempty"`

	// Type is the documented type, nil on the schema overview pages.
	Type *introspection.Type `json:"type,omitempty"`

	Navigation []nav.Section      `json:"navigation"`
	Sections   []document.Section `json:"sections,omitempty"`
	Types      []TypeLink         `json:"types,omitempty"`
	Directives []DirectiveLink    `json:"directives,omitempty"`
}

// TypeLink is an entry of a schema overview listing.
type TypeLink struct {
	Name        string             `json:"name"`
	Kind        introspection.Kind `json:"kind"`
	URL         string             `json:"url"`
	Description template.HTML      `json:"description,omitempty"`
}

// DirectiveLink is a directive entry of the schema overview. Anchor is
// the HTML id the entry is rendered under and URL points at it.
type DirectiveLink struct {
	Name        string        `json:"name"`
	Anchor      string        `json:"anchor"`
	URL         string        `json:"url"`
	Description template.HTML `json:"description,omitempty"`
	Locations   []string      `json:"locations"`
	Repeatable  bool          `json:"isRepeatable,omitempty"`
}

// Translator builds page data for a single schema. It holds no mutable
// state, so one Translator may serve concurrent page builds.
type Translator struct {
	schema *introspection.Schema
	url    Resolver
	navs   []nav.Plugin
	docs   []document.Plugin
}

// New returns a Translator running the given plugins, in order.
func New(schema *introspection.Schema, url Resolver, navs []nav.Plugin, docs []document.Plugin) *Translator {
	return &Translator{
		schema: schema,
		url:    url,
		navs:   navs,
		docs:   docs,
	}
}

// NavigationData returns the navigation tree with the item of the active
// type highlighted. An empty active name highlights nothing.
func (tr *Translator) NavigationData(active string) ([]nav.Section, error) {
	return tr.navigation(active, active)
}

func (tr *Translator) navigation(page, active string) ([]nav.Section, error) {
	secs := make([]nav.Section, 0, len(tr.navs))
	for _, p := range tr.navs {
		s, err := p.Sections(active)
		if err != nil {
			return nil, &PluginError{Page: page, Plugin: pluginName(p), Err: err}
		}
		secs = append(secs, s...)
	}
	return secs, nil
}

// SchemaData returns the data of the schema overview page, listing the
// user defined types and the directives.
func (tr *Translator) SchemaData(title, description string) (*Page, error) {
	p, err := tr.overview(link.IndexPage, title, description, false)
	if err != nil {
		return nil, err
	}

	for _, d := range tr.schema.Directives {
		u, err := tr.url.Directive(d.Name)
		if err != nil {
			return nil, err
		}

		descr, err := document.Markdown(d.Description)
		if err != nil {
			return nil, err
		}

		p.Directives = append(p.Directives, DirectiveLink{
			Name:        d.Name,
			Anchor:      link.DirectiveAnchor(d.Name),
			URL:         u,
			Description: descr,
			Locations:   d.Locations,
			Repeatable:  d.IsRepeatable,
		})
	}
	return p, nil
}

// NativeSchemaData returns the data of the native schema page, listing
// the introspection types.
func (tr *Translator) NativeSchemaData(title, description string) (*Page, error) {
	return tr.overview(link.NativePage, title, description, true)
}

func (tr *Translator) overview(page, title, description string, native bool) (p *Page, err error) {
	p = &Page{Title: title}
	if p.Description, err = document.Markdown(description); err != nil {
		return nil, err
	}

	if p.Navigation, err = tr.navigation(page, ""); err != nil {
		return nil, err
	}

	for _, t := range tr.schema.Types {
		if tr.url.IsNative(t.Name) != native {
			continue
		}

		u, err := tr.url.Resolve(t)
		if err != nil {
			return nil, err
		}

		descr, err := document.Markdown(t.Description)
		if err != nil {
			return nil, err
		}

		p.Types = append(p.Types, TypeLink{
			Name:        t.Name,
			Kind:        t.Kind,
			URL:         u,
			Description: descr,
		})
	}
	return p, nil
}

// TypeData returns the data of the page documenting t, with one body
// section per document plugin.
func (tr *Translator) TypeData(t *introspection.Type) (p *Page, err error) {
	p = &Page{Title: t.Name, Type: t}
	if p.Description, err = document.Markdown(t.Description); err != nil {
		return nil, err
	}

	if p.Navigation, err = tr.navigation(t.Name, t.Name); err != nil {
		return nil, err
	}

	p.Sections = make([]document.Section, 0, len(tr.docs))
	for _, d := range tr.docs {
		sec, err := d.Render(t, tr.url)
		if err != nil {
			return nil, &PluginError{Page: t.Name, Plugin: pluginName(d), Err: err}
		}
		p.Sections = append(p.Sections, sec)
	}
	return p, nil
}
