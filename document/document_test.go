package document

import (
	"errors"
	"html/template"
	"testing"

	"github.com/gqlc/gqldoc/internal/schematest"
	"github.com/gqlc/gqldoc/introspection"
	"github.com/gqlc/gqldoc/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, s *introspection.Schema, name string) *introspection.Type {
	t.Helper()

	typ, ok := s.Lookup(name)
	require.True(t, ok, "missing type: %s", name)
	return typ
}

func TestSchema_Render(t *testing.T) {
	s := schematest.StarWars()
	p := &Schema{Title: DefaultTitle}

	testCases := []struct {
		Name string
		Type string
		Out  string
	}{
		{
			Name: "Scalar",
			Type: "ID",
			Out:  "scalar ID\n",
		},
		{
			Name: "Object",
			Type: "Droid",
			Out: `"An autonomous mechanical character."
type Droid implements Character {
  id: ID!
  name: String!
  friends: [Character]
  appearsIn: [Episode]!
  primaryFunction: String @deprecated(reason: "Use ` + "`function`" + `.")
}
`,
		},
		{
			Name: "Args",
			Type: "Mutation",
			Out: `type Mutation {
  createReview(episode: Episode, review: ReviewInput!): Review
}
`,
		},
		{
			Name: "Interface",
			Type: "Character",
			Out: `"A character from the *Star Wars* universe."
interface Character {
  id: ID!
  name: String!
}
`,
		},
		{
			Name: "Union",
			Type: "SearchResult",
			Out:  "union SearchResult = Droid | Human\n",
		},
		{
			Name: "Enum",
			Type: "Episode",
			Out: `"The episodes in the Star Wars trilogy."
enum Episode {
  "Star Wars Episode IV."
  NEWHOPE
  EMPIRE
  JEDI @deprecated(reason: "Not canon.")
}
`,
		},
		{
			Name: "Input",
			Type: "ReviewInput",
			Out: `input ReviewInput {
  stars: Int!
  commentary: String = "none"
}
`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			sec, err := p.Render(lookup(subT, s, testCase.Type), link.New(s))
			require.NoError(subT, err)

			assert.Equal(subT, DefaultTitle, sec.Title)
			assert.Equal(subT, template.HTML(template.HTMLEscapeString(testCase.Out)), sec.Code)
			assert.Empty(subT, sec.Tables)
		})
	}
}

func TestSchema_MultilineDescription(t *testing.T) {
	typ := &introspection.Type{
		Kind:        introspection.Scalar,
		Name:        "Date",
		Description: "A calendar date.\nFormatted as YYYY-MM-DD.",
	}

	sec, err := (&Schema{}).Render(typ, nil)
	require.NoError(t, err)

	out := "\"\"\"\nA calendar date.\nFormatted as YYYY-MM-DD.\n\"\"\"\nscalar Date\n"
	assert.Equal(t, template.HTML(template.HTMLEscapeString(out)), sec.Code)
}

func TestSchema_DefaultDeprecation(t *testing.T) {
	typ := &introspection.Type{
		Kind: introspection.Enum,
		Name: "Color",
		EnumValues: []*introspection.EnumValue{
			{Name: "RED", IsDeprecated: true, DeprecationReason: "No longer supported"},
			{Name: "BLUE", IsDeprecated: true},
		},
	}

	sec, err := (&Schema{}).Render(typ, nil)
	require.NoError(t, err)
	assert.Equal(t, template.HTML("enum Color {\n  RED @deprecated\n  BLUE @deprecated\n}\n"), sec.Code)
}

func TestSchemaHTML_Render(t *testing.T) {
	s := schematest.StarWars()
	p := &SchemaHTML{Title: DefaultTitle}

	sec, err := p.Render(lookup(t, s, "SearchResult"), link.New(s))
	require.NoError(t, err)

	want := `<span class="keyword">union</span> SearchResult = ` +
		`<a class="type-name" href="./droid.doc.html">Droid</a> | ` +
		`<a class="type-name" href="./human.doc.html">Human</a>` + "\n"
	assert.Equal(t, template.HTML(want), sec.Code)
}

func TestSchemaHTML_Links(t *testing.T) {
	s := schematest.StarWars()

	sec, err := (&SchemaHTML{}).Render(lookup(t, s, "__Type"), link.New(s, link.WithBaseURL("/docs/")))
	require.NoError(t, err)

	code := string(sec.Code)
	assert.Contains(t, code, `<a class="type-name" href="/docs/typekind.native.html">__TypeKind</a>!`)
	assert.Contains(t, code, `<a class="type-name" href="/docs/string.doc.html">String</a>`)
	assert.Contains(t, code, `<span class="field-name">kind</span>`)
}

func TestSchemaHTML_Escapes(t *testing.T) {
	typ := &introspection.Type{
		Kind:        introspection.Scalar,
		Name:        "HTML",
		Description: "<b>bold</b>",
	}

	sec, err := (&SchemaHTML{}).Render(typ, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(sec.Code), "<b>")
	assert.Contains(t, string(sec.Code), "&lt;b&gt;")
}

func TestRender_Unresolvable(t *testing.T) {
	s := schematest.StarWars()
	typ := &introspection.Type{
		Kind: introspection.Object,
		Name: "Ghost",
		Fields: []*introspection.Field{
			{Name: "haunts", Type: schematest.Named(introspection.Object, "House")},
		},
	}

	testCases := []struct {
		Name   string
		Plugin Plugin
	}{
		{Name: "SchemaHTML", Plugin: &SchemaHTML{}},
		{Name: "Tables", Plugin: &Tables{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			_, err := testCase.Plugin.Render(typ, link.New(s))

			var uerr *link.UnresolvableError
			require.True(subT, errors.As(err, &uerr), "unexpected error: %v", err)
			assert.Equal(subT, "House", uerr.Name)
		})
	}
}

func TestTables_Object(t *testing.T) {
	s := schematest.StarWars()

	sec, err := (&Tables{Title: "Reference"}).Render(lookup(t, s, "Droid"), link.New(s))
	require.NoError(t, err)

	assert.Equal(t, "Reference", sec.Title)
	assert.Equal(t, template.HTML("<p>An autonomous mechanical character.</p>\n"), sec.Description)
	require.Len(t, sec.Tables, 2)

	fields := sec.Tables[0]
	assert.Equal(t, "Fields", fields.Title)
	require.Len(t, fields.Rows, 5)
	assert.Equal(t, &TypeLink{Prefix: "[", Name: "Episode", Suffix: "]!", URL: "./episode.doc.html"}, fields.Rows[3].Type)
	assert.True(t, fields.Rows[4].Deprecated)
	assert.Equal(t, "Use `function`.", fields.Rows[4].DeprecationReason)

	ifaces := sec.Tables[1]
	assert.Equal(t, "Interfaces", ifaces.Title)
	assert.Equal(t, []Row{{Name: "Character", Type: &TypeLink{Name: "Character", URL: "./character.doc.html"}}}, ifaces.Rows)
}

func TestTables_Args(t *testing.T) {
	s := schematest.StarWars()

	sec, err := (&Tables{}).Render(lookup(t, s, "Query"), link.New(s))
	require.NoError(t, err)
	require.Len(t, sec.Tables, 1)

	hero := sec.Tables[0].Rows[0]
	assert.Equal(t, "hero", hero.Name)
	assert.Equal(t, []Row{{
		Name:        "episode",
		Type:        &TypeLink{Name: "Episode", URL: "./episode.doc.html"},
		Description: "<p>Movie the hero appears in.</p>\n",
	}}, hero.Args)

	search := sec.Tables[0].Rows[1]
	assert.Equal(t, &TypeLink{Prefix: "[", Name: "SearchResult", Suffix: "!]!", URL: "./searchresult.doc.html"}, search.Type)
}

func TestTables_Kinds(t *testing.T) {
	s := schematest.StarWars()

	testCases := []struct {
		Name   string
		Type   string
		Titles []string
	}{
		{Name: "Scalar", Type: "String"},
		{Name: "Interface", Type: "Character", Titles: []string{"Fields", "Possible types"}},
		{Name: "Union", Type: "SearchResult", Titles: []string{"Possible types"}},
		{Name: "Enum", Type: "Episode", Titles: []string{"Values"}},
		{Name: "Input", Type: "ReviewInput", Titles: []string{"Input fields"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			sec, err := (&Tables{}).Render(lookup(subT, s, testCase.Type), link.New(s))
			require.NoError(subT, err)

			var titles []string
			for _, tbl := range sec.Tables {
				titles = append(titles, tbl.Title)
				assert.NotEmpty(subT, tbl.Rows)
			}
			assert.Equal(subT, testCase.Titles, titles)
		})
	}
}

func TestTables_InputDefault(t *testing.T) {
	s := schematest.StarWars()

	sec, err := (&Tables{}).Render(lookup(t, s, "ReviewInput"), link.New(s))
	require.NoError(t, err)
	require.Len(t, sec.Tables, 1)
	assert.Equal(t, `"none"`, sec.Tables[0].Rows[1].Default)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.(interface{ Name() string }).Name())
	}

	_, err := Lookup("pdf")
	assert.EqualError(t, err, `document: unknown plugin "pdf", must be one of: schema-html, schema, tables`)
}

func TestMarkdown(t *testing.T) {
	testCases := []struct {
		Name string
		Src  string
		Out  template.HTML
	}{
		{Name: "Empty", Src: "", Out: ""},
		{Name: "Emphasis", Src: "A *Star Wars* character.", Out: "<p>A <em>Star Wars</em> character.</p>\n"},
		{Name: "Code", Src: "Use `id`.", Out: "<p>Use <code>id</code>.</p>\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			out, err := Markdown(testCase.Src)
			require.NoError(subT, err)
			assert.Equal(subT, testCase.Out, out)
		})
	}
}

func TestMarkdown_RawHTML(t *testing.T) {
	out, err := Markdown("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}
