package nav

import "github.com/gqlc/gqldoc/introspection"

// Category lists the user-defined types of a single kind.
type Category struct {
	Title string
	Kind  introspection.Kind

	schema *introspection.Schema
	url    Resolver

	// skip excludes types listed by another plugin.
	skip func(*introspection.Type) bool
}

// NewCategory returns a plugin listing the types of kind under title.
func NewCategory(title string, kind introspection.Kind, schema *introspection.Schema, url Resolver) *Category {
	return &Category{
		Title:  title,
		Kind:   kind,
		schema: schema,
		url:    url,
	}
}

// NewScalars lists scalar types.
func NewScalars(schema *introspection.Schema, url Resolver) *Category {
	return NewCategory("Scalars", introspection.Scalar, schema, url)
}

// NewObjects lists object types. The root operation types are left to
// the Schema plugin.
func NewObjects(schema *introspection.Schema, url Resolver) *Category {
	c := NewCategory("Objects", introspection.Object, schema, url)
	c.skip = func(t *introspection.Type) bool { return schema.IsRoot(t.Name) }
	return c
}

// NewInterfaces lists interface types.
func NewInterfaces(schema *introspection.Schema, url Resolver) *Category {
	return NewCategory("Interfaces", introspection.Interface, schema, url)
}

// NewUnions lists union types.
func NewUnions(schema *introspection.Schema, url Resolver) *Category {
	return NewCategory("Unions", introspection.Union, schema, url)
}

// NewEnums lists enum types.
func NewEnums(schema *introspection.Schema, url Resolver) *Category {
	return NewCategory("Enums", introspection.Enum, schema, url)
}

// NewInputs lists input object types.
func NewInputs(schema *introspection.Schema, url Resolver) *Category {
	return NewCategory("Input Objects", introspection.InputObject, schema, url)
}

// Name returns the plugin name used in error reports.
func (c *Category) Name() string { return "nav:" + c.Title }

// Sections implements Plugin.
func (c *Category) Sections(active string) ([]Section, error) {
	var items []Item
	for _, t := range c.schema.Types {
		if t.Kind != c.Kind || c.url.IsNative(t.Name) {
			continue
		}
		if c.skip != nil && c.skip(t) {
			continue
		}

		u, err := c.url.Resolve(t)
		if err != nil {
			return nil, err
		}

		items = append(items, Item{
			Label:  t.Name,
			URL:    u,
			Active: t.Name == active,
		})
	}

	return section(c.Title, items), nil
}
