// Package schematest provides introspection fixtures for tests.
package schematest

import "github.com/gqlc/gqldoc/introspection"

// Named returns a reference to a named type.
func Named(kind introspection.Kind, name string) *introspection.Type {
	return &introspection.Type{Kind: kind, Name: name}
}

// NonNull wraps t in a NON_NULL reference.
func NonNull(t *introspection.Type) *introspection.Type {
	return &introspection.Type{Kind: introspection.NonNull, OfType: t}
}

// List wraps t in a LIST reference.
func List(t *introspection.Type) *introspection.Type {
	return &introspection.Type{Kind: introspection.List, OfType: t}
}

// Droids returns the minimal schema made of Droid, Episode and __Type.
func Droids() *introspection.Schema {
	return &introspection.Schema{
		Types: []*introspection.Type{
			{
				Kind: introspection.Object,
				Name: "Droid",
				Fields: []*introspection.Field{
					{Name: "id", Type: NonNull(Named(introspection.Scalar, "ID"))},
				},
			},
			{
				Kind: introspection.Enum,
				Name: "Episode",
				EnumValues: []*introspection.EnumValue{
					{Name: "NEWHOPE"},
					{Name: "EMPIRE"},
					{Name: "JEDI"},
				},
			},
			{Kind: introspection.Object, Name: "__Type"},
			{Kind: introspection.Scalar, Name: "ID"},
		},
	}
}

// StarWars returns a schema exercising every type kind.
func StarWars() *introspection.Schema {
	episode := Named(introspection.Enum, "Episode")
	character := Named(introspection.Interface, "Character")
	str := Named(introspection.Scalar, "String")
	id := Named(introspection.Scalar, "ID")

	return &introspection.Schema{
		QueryType:    &introspection.Type{Name: "Query"},
		MutationType: &introspection.Type{Name: "Mutation"},
		Types: []*introspection.Type{
			{
				Kind:        introspection.Object,
				Name:        "Query",
				Description: "The query root.",
				Fields: []*introspection.Field{
					{
						Name: "hero",
						Args: []*introspection.InputValue{
							{Name: "episode", Type: episode, Description: "Movie the hero appears in."},
						},
						Type: character,
					},
					{
						Name: "search",
						Args: []*introspection.InputValue{
							{Name: "text", Type: NonNull(str)},
						},
						Type: NonNull(List(NonNull(Named(introspection.Union, "SearchResult")))),
					},
				},
			},
			{
				Kind: introspection.Object,
				Name: "Mutation",
				Fields: []*introspection.Field{
					{
						Name: "createReview",
						Args: []*introspection.InputValue{
							{Name: "episode", Type: episode},
							{Name: "review", Type: NonNull(Named(introspection.InputObject, "ReviewInput"))},
						},
						Type: Named(introspection.Object, "Review"),
					},
				},
			},
			{
				Kind:        introspection.Interface,
				Name:        "Character",
				Description: "A character from the *Star Wars* universe.",
				Fields: []*introspection.Field{
					{Name: "id", Type: NonNull(id)},
					{Name: "name", Type: NonNull(str)},
				},
				PossibleTypes: []*introspection.Type{
					Named(introspection.Object, "Droid"),
					Named(introspection.Object, "Human"),
				},
			},
			{
				Kind:        introspection.Object,
				Name:        "Droid",
				Description: "An autonomous mechanical character.",
				Fields: []*introspection.Field{
					{Name: "id", Type: NonNull(id)},
					{Name: "name", Type: NonNull(str)},
					{Name: "friends", Type: List(character)},
					{Name: "appearsIn", Type: NonNull(List(episode))},
					{Name: "primaryFunction", Type: str, IsDeprecated: true, DeprecationReason: "Use `function`."},
				},
				Interfaces: []*introspection.Type{character},
			},
			{
				Kind: introspection.Object,
				Name: "Human",
				Fields: []*introspection.Field{
					{Name: "id", Type: NonNull(id)},
					{Name: "name", Type: NonNull(str)},
				},
				Interfaces: []*introspection.Type{character},
			},
			{
				Kind: introspection.Object,
				Name: "Review",
				Fields: []*introspection.Field{
					{Name: "stars", Type: NonNull(Named(introspection.Scalar, "Int"))},
				},
			},
			{
				Kind: introspection.Union,
				Name: "SearchResult",
				PossibleTypes: []*introspection.Type{
					Named(introspection.Object, "Droid"),
					Named(introspection.Object, "Human"),
				},
			},
			{
				Kind:        introspection.Enum,
				Name:        "Episode",
				Description: "The episodes in the Star Wars trilogy.",
				EnumValues: []*introspection.EnumValue{
					{Name: "NEWHOPE", Description: "Star Wars Episode IV."},
					{Name: "EMPIRE"},
					{Name: "JEDI", IsDeprecated: true, DeprecationReason: "Not canon."},
				},
			},
			{
				Kind: introspection.InputObject,
				Name: "ReviewInput",
				InputFields: []*introspection.InputValue{
					{Name: "stars", Type: NonNull(Named(introspection.Scalar, "Int"))},
					{Name: "commentary", Type: str, DefaultValue: `"none"`},
				},
			},
			{Kind: introspection.Scalar, Name: "ID"},
			{Kind: introspection.Scalar, Name: "Int"},
			{Kind: introspection.Scalar, Name: "String"},
			{Kind: introspection.Scalar, Name: "Boolean"},
			{
				Kind: introspection.Object,
				Name: "__Type",
				Fields: []*introspection.Field{
					{Name: "kind", Type: NonNull(Named(introspection.Enum, "__TypeKind"))},
					{Name: "name", Type: str},
				},
			},
			{
				Kind:       introspection.Enum,
				Name:       "__TypeKind",
				EnumValues: []*introspection.EnumValue{{Name: "SCALAR"}, {Name: "OBJECT"}},
			},
		},
		Directives: []*introspection.Directive{
			{
				Name:      "deprecated",
				Locations: []string{"FIELD_DEFINITION", "ENUM_VALUE"},
				Args: []*introspection.InputValue{
					{Name: "reason", Type: str, DefaultValue: `"No longer supported"`},
				},
			},
			{
				Name:      "include",
				Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
				Args: []*introspection.InputValue{
					{Name: "if", Type: NonNull(Named(introspection.Scalar, "Boolean"))},
				},
			},
		},
	}
}
