package document

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"github.com/gqlc/gqldoc/introspection"
)

// SchemaHTML renders the IDL definition of a type as HTML, linking every
// referenced type to its page.
type SchemaHTML struct {
	Title string
}

// Name returns the plugin name used in error reports.
func (*SchemaHTML) Name() string { return SchemaHTMLName }

// Render implements Plugin.
func (p *SchemaHTML) Render(t *introspection.Type, url Resolver) (Section, error) {
	pr := &printer{html: true, url: url}
	pr.typ(t)
	if pr.err != nil {
		return Section{}, pr.err
	}

	return Section{
		Title: p.Title,
		Code:  template.HTML(pr.String()),
	}, nil
}

// Schema renders the IDL definition of a type as plain text.
type Schema struct {
	Title string
}

// Name returns the plugin name used in error reports.
func (*Schema) Name() string { return SchemaName }

// Render implements Plugin.
func (p *Schema) Render(t *introspection.Type, _ Resolver) (Section, error) {
	pr := &printer{}
	pr.typ(t)

	return Section{
		Title: p.Title,
		Code:  template.HTML(template.HTMLEscapeString(pr.String())),
	}, nil
}

const defaultDeprecationReason = "No longer supported"

// printer writes the GraphQL IDL of a type. In html mode, text is
// escaped, keywords are wrapped in spans and type names link to their
// pages. The first resolution error is kept in err.
//
type printer struct {
	bytes.Buffer

	html bool
	url  Resolver
	err  error
}

func (p *printer) text(s string) {
	if p.html {
		template.HTMLEscape(&p.Buffer, []byte(s))
		return
	}
	p.WriteString(s)
}

func (p *printer) span(class, s string) {
	if !p.html {
		p.WriteString(s)
		return
	}

	p.WriteString(`<span class="`)
	p.WriteString(class)
	p.WriteString(`">`)
	p.text(s)
	p.WriteString(`</span>`)
}

func (p *printer) keyword(s string) {
	p.span("keyword", s)
	p.WriteByte(' ')
}

func (p *printer) typeName(t *introspection.Type) {
	if !p.html {
		p.WriteString(t.Name)
		return
	}

	u, err := p.url.Resolve(t)
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		p.text(t.Name)
		return
	}

	p.WriteString(`<a class="type-name" href="`)
	p.text(u)
	p.WriteString(`">`)
	p.text(t.Name)
	p.WriteString(`</a>`)
}

func (p *printer) typeSig(t *introspection.Type) {
	if t == nil {
		return
	}

	switch t.Kind {
	case introspection.NonNull:
		p.typeSig(t.OfType)
		p.WriteByte('!')
	case introspection.List:
		p.WriteByte('[')
		p.typeSig(t.OfType)
		p.WriteByte(']')
	default:
		p.typeName(t)
	}
}

func (p *printer) descr(d, indent string) {
	if d == "" {
		return
	}

	var b strings.Builder
	b.WriteString(indent)
	if strings.ContainsRune(d, '\n') {
		b.WriteString(`"""`)
		b.WriteByte('\n')
		for _, line := range strings.Split(d, "\n") {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(`"""`)
	} else {
		b.WriteString(strconv.Quote(d))
	}

	p.span("description", b.String())
	p.WriteByte('\n')
}

func (p *printer) deprecated(is bool, reason string) {
	if !is {
		return
	}

	p.WriteByte(' ')
	p.span("directive", "@deprecated")
	if reason != "" && reason != defaultDeprecationReason {
		p.WriteString("(reason: ")
		p.span("string", strconv.Quote(reason))
		p.WriteByte(')')
	}
}

func (p *printer) typ(t *introspection.Type) {
	p.descr(t.Description, "")

	switch t.Kind {
	case introspection.Scalar:
		p.keyword("scalar")
		p.text(t.Name)
	case introspection.Object:
		p.keyword("type")
		p.text(t.Name)

		if len(t.Interfaces) > 0 {
			p.WriteByte(' ')
			p.keyword("implements")
			l := len(t.Interfaces) - 1
			for i, it := range t.Interfaces {
				p.typeName(it)
				if i != l {
					p.WriteString(" & ")
				}
			}
		}

		p.fields(t.Fields)
	case introspection.Interface:
		p.keyword("interface")
		p.text(t.Name)
		p.fields(t.Fields)
	case introspection.Union:
		p.keyword("union")
		p.text(t.Name)
		p.WriteString(" = ")

		l := len(t.PossibleTypes) - 1
		for i, m := range t.PossibleTypes {
			p.typeName(m)
			if i != l {
				p.WriteString(" | ")
			}
		}
	case introspection.Enum:
		p.keyword("enum")
		p.text(t.Name)
		p.WriteString(" {\n")

		for _, v := range t.EnumValues {
			p.descr(v.Description, "  ")
			p.WriteString("  ")
			p.span("enum-value", v.Name)
			p.deprecated(v.IsDeprecated, v.DeprecationReason)
			p.WriteByte('\n')
		}

		p.WriteByte('}')
	case introspection.InputObject:
		p.keyword("input")
		p.text(t.Name)
		p.WriteString(" {\n")

		for _, f := range t.InputFields {
			p.descr(f.Description, "  ")
			p.WriteString("  ")
			p.arg(f)
			p.WriteByte('\n')
		}

		p.WriteByte('}')
	}
	p.WriteByte('\n')
}

func (p *printer) fields(fields []*introspection.Field) {
	p.WriteString(" {\n")

	for _, f := range fields {
		p.descr(f.Description, "  ")
		p.WriteString("  ")
		p.span("field-name", f.Name)

		if len(f.Args) > 0 {
			p.WriteByte('(')
			l := len(f.Args) - 1
			for i, a := range f.Args {
				p.arg(a)
				if i != l {
					p.WriteString(", ")
				}
			}
			p.WriteByte(')')
		}
		p.WriteString(": ")

		p.typeSig(f.Type)
		p.deprecated(f.IsDeprecated, f.DeprecationReason)
		p.WriteByte('\n')
	}

	p.WriteByte('}')
}

func (p *printer) arg(a *introspection.InputValue) {
	p.span("arg-name", a.Name)
	p.WriteString(": ")
	p.typeSig(a.Type)

	if a.DefaultValue != "" {
		p.WriteString(" = ")
		p.span("value", a.DefaultValue)
	}
}
