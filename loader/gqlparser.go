package loader

import (
	"sort"
	"strings"
	"sync"

	"github.com/gqlc/gqldoc/introspection"
	"github.com/vektah/gqlparser/v2"
	gqlast "github.com/vektah/gqlparser/v2/ast"
)

const defaultDeprecationReason = "No longer supported"

// fromSchema converts a gqlparser schema. Types and directives are sorted
// by name since the schema keeps them in maps.
func fromSchema(s *gqlast.Schema) *introspection.Schema {
	out := &introspection.Schema{
		QueryType:        rootRef(s.Query),
		MutationType:     rootRef(s.Mutation),
		SubscriptionType: rootRef(s.Subscription),
	}

	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		out.Types = append(out.Types, convertDefinition(s, s.Types[name]))
	}

	names = names[:0]
	for name := range s.Directives {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		out.Directives = append(out.Directives, convertDirectiveDefinition(s, s.Directives[name]))
	}
	return out
}

func rootRef(def *gqlast.Definition) *introspection.Type {
	if def == nil {
		return nil
	}
	return &introspection.Type{Kind: introspection.Object, Name: def.Name}
}

func convertDefinition(s *gqlast.Schema, def *gqlast.Definition) *introspection.Type {
	t := &introspection.Type{
		Kind:        introspection.Kind(def.Kind),
		Name:        def.Name,
		Description: def.Description,
	}

	switch def.Kind {
	case gqlast.Object, gqlast.Interface:
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}

			reason, deprecated := deprecation(f.Directives)
			t.Fields = append(t.Fields, &introspection.Field{
				Name:              f.Name,
				Description:       f.Description,
				Args:              convertArgs(s, f.Arguments),
				Type:              convertType(s, f.Type),
				IsDeprecated:      deprecated,
				DeprecationReason: reason,
			})
		}

		for _, name := range def.Interfaces {
			t.Interfaces = append(t.Interfaces, namedRef(s, name))
		}

		if def.Kind == gqlast.Interface {
			for _, pt := range s.GetPossibleTypes(def) {
				t.PossibleTypes = append(t.PossibleTypes, namedRef(s, pt.Name))
			}
		}
	case gqlast.Union:
		for _, name := range def.Types {
			t.PossibleTypes = append(t.PossibleTypes, namedRef(s, name))
		}
	case gqlast.Enum:
		for _, v := range def.EnumValues {
			reason, deprecated := deprecation(v.Directives)
			t.EnumValues = append(t.EnumValues, &introspection.EnumValue{
				Name:              v.Name,
				Description:       v.Description,
				IsDeprecated:      deprecated,
				DeprecationReason: reason,
			})
		}
	case gqlast.InputObject:
		for _, f := range def.Fields {
			t.InputFields = append(t.InputFields, &introspection.InputValue{
				Name:         f.Name,
				Description:  f.Description,
				Type:         convertType(s, f.Type),
				DefaultValue: valueString(f.DefaultValue),
			})
		}
	}
	return t
}

func convertDirectiveDefinition(s *gqlast.Schema, d *gqlast.DirectiveDefinition) *introspection.Directive {
	out := &introspection.Directive{
		Name:         d.Name,
		Description:  d.Description,
		IsRepeatable: d.IsRepeatable,
		Locations:    make([]string, len(d.Locations)),
	}
	for i, loc := range d.Locations {
		out.Locations[i] = string(loc)
	}

	for _, a := range d.Arguments {
		out.Args = append(out.Args, &introspection.InputValue{
			Name:         a.Name,
			Description:  a.Description,
			Type:         convertType(s, a.Type),
			DefaultValue: valueString(a.DefaultValue),
		})
	}
	return out
}

func convertArgs(s *gqlast.Schema, args gqlast.ArgumentDefinitionList) []*introspection.InputValue {
	if len(args) == 0 {
		return nil
	}

	out := make([]*introspection.InputValue, len(args))
	for i, a := range args {
		out[i] = &introspection.InputValue{
			Name:         a.Name,
			Description:  a.Description,
			Type:         convertType(s, a.Type),
			DefaultValue: valueString(a.DefaultValue),
		}
	}
	return out
}

func convertType(s *gqlast.Schema, t *gqlast.Type) *introspection.Type {
	var out *introspection.Type
	if t.Elem != nil {
		out = &introspection.Type{Kind: introspection.List, OfType: convertType(s, t.Elem)}
	} else {
		out = namedRef(s, t.NamedType)
	}

	if t.NonNull {
		out = &introspection.Type{Kind: introspection.NonNull, OfType: out}
	}
	return out
}

func namedRef(s *gqlast.Schema, name string) *introspection.Type {
	ref := &introspection.Type{Name: name}
	if def, ok := s.Types[name]; ok {
		ref.Kind = introspection.Kind(def.Kind)
	}
	return ref
}

func valueString(v *gqlast.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func deprecation(dirs gqlast.DirectiveList) (string, bool) {
	d := dirs.ForName("deprecated")
	if d == nil {
		return "", false
	}

	reason := defaultDeprecationReason
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		reason = arg.Value.Raw
	}
	return reason, true
}

var (
	preludeOnce sync.Once
	prelude     *introspection.Schema
	preludeErr  error
)

// builtins returns the scalars, directives and introspection types every
// GraphQL schema provides.
func builtins() (*introspection.Schema, error) {
	preludeOnce.Do(func() {
		s, err := gqlparser.LoadSchema()
		if err != nil {
			preludeErr = err
			return
		}
		prelude = fromSchema(s)
	})
	return prelude, preludeErr
}
