package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gqlc/gqldoc/introspection"
	"github.com/gqlc/graphql/ast"
)

type typeDecl struct {
	spec *ast.TypeSpec
	doc  *ast.DocGroup
}

// converter builds an introspection result from IDL documents, the way a
// server would answer the introspection query for the built schema.
type converter struct {
	out    *introspection.Schema
	kinds  map[string]introspection.Kind
	byName map[string]*introspection.Type
	dirs   map[string]bool
	err    error
}

func fromDocuments(docs ...*ast.Document) (*introspection.Schema, error) {
	pre, err := builtins()
	if err != nil {
		return nil, fmt.Errorf("loader: loading builtin types: %w", err)
	}

	c := &converter{
		out:    new(introspection.Schema),
		kinds:  make(map[string]introspection.Kind, len(pre.Types)),
		byName: make(map[string]*introspection.Type),
		dirs:   make(map[string]bool),
	}
	for _, t := range pre.Types {
		c.kinds[t.Name] = t.Kind
	}

	// Kinds must all be known before any reference is converted.
	var (
		decls  []typeDecl
		exts   []*ast.TypeSpec
		schema *ast.TypeSpec
		seen   = make(map[string]bool)
	)
	for _, doc := range docs {
		for _, decl := range doc.Types {
			switch d := decl.Spec.(type) {
			case *ast.TypeDecl_TypeSpec:
				ts := d.TypeSpec
				if _, ok := ts.Type.(*ast.TypeSpec_Schema); ok {
					if schema == nil {
						schema = ts
					}
					continue
				}

				if ts.Name == nil || seen[ts.Name.Name] {
					continue
				}
				seen[ts.Name.Name] = true

				if k, ok := kindOf(ts); ok {
					c.kinds[ts.Name.Name] = k
				}
				decls = append(decls, typeDecl{spec: ts, doc: decl.Doc})
			case *ast.TypeDecl_TypeExtSpec:
				exts = append(exts, d.TypeExtSpec.Type)
			}
		}
	}

	for _, decl := range decls {
		if _, ok := decl.spec.Type.(*ast.TypeSpec_Directive); ok {
			c.out.Directives = append(c.out.Directives, c.directive(decl.spec, decl.doc))
			c.dirs[decl.spec.Name.Name] = true
			continue
		}

		t := c.typ(decl.spec, decl.doc)
		c.out.Types = append(c.out.Types, t)
		c.byName[t.Name] = t
	}

	for _, ext := range exts {
		c.extend(ext)
	}
	if c.err != nil {
		return nil, c.err
	}

	c.possibleTypes()
	c.roots(schema)

	for _, t := range pre.Types {
		if _, ok := c.byName[t.Name]; !ok {
			c.out.Types = append(c.out.Types, t)
		}
	}
	for _, d := range pre.Directives {
		if !c.dirs[d.Name] {
			c.out.Directives = append(c.out.Directives, d)
		}
	}
	return c.out, nil
}

func kindOf(ts *ast.TypeSpec) (introspection.Kind, bool) {
	switch ts.Type.(type) {
	case *ast.TypeSpec_Scalar:
		return introspection.Scalar, true
	case *ast.TypeSpec_Object:
		return introspection.Object, true
	case *ast.TypeSpec_Interface:
		return introspection.Interface, true
	case *ast.TypeSpec_Union:
		return introspection.Union, true
	case *ast.TypeSpec_Enum:
		return introspection.Enum, true
	case *ast.TypeSpec_Input:
		return introspection.InputObject, true
	}
	return "", false
}

func (c *converter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *converter) typ(ts *ast.TypeSpec, doc *ast.DocGroup) *introspection.Type {
	k, _ := kindOf(ts)
	t := &introspection.Type{
		Kind:        k,
		Name:        ts.Name.Name,
		Description: docText(doc),
	}
	c.members(t, ts)
	return t
}

// members converts the kind specific children of ts into t.
func (c *converter) members(t *introspection.Type, ts *ast.TypeSpec) {
	switch v := ts.Type.(type) {
	case *ast.TypeSpec_Object:
		for _, id := range v.Object.Interfaces {
			t.Interfaces = append(t.Interfaces, c.named(id.Name))
		}
		if v.Object.Fields != nil {
			t.Fields = append(t.Fields, c.fields(v.Object.Fields.List)...)
		}
	case *ast.TypeSpec_Interface:
		if v.Interface.Fields != nil {
			t.Fields = append(t.Fields, c.fields(v.Interface.Fields.List)...)
		}
	case *ast.TypeSpec_Union:
		for _, id := range v.Union.Members {
			t.PossibleTypes = append(t.PossibleTypes, c.named(id.Name))
		}
	case *ast.TypeSpec_Enum:
		if v.Enum.Values == nil {
			break
		}

		for _, f := range v.Enum.Values.List {
			reason, deprecated := gqlcDeprecation(f.Directives)
			t.EnumValues = append(t.EnumValues, &introspection.EnumValue{
				Name:              f.Name.Name,
				Description:       docText(f.Doc),
				IsDeprecated:      deprecated,
				DeprecationReason: reason,
			})
		}
	case *ast.TypeSpec_Input:
		if v.Input.Fields != nil {
			t.InputFields = append(t.InputFields, c.inputValues(v.Input.Fields.List)...)
		}
	}
}

func (c *converter) extend(ts *ast.TypeSpec) {
	if ts.Name == nil {
		return
	}

	t, ok := c.byName[ts.Name.Name]
	if !ok {
		c.fail(fmt.Errorf("loader: extension of undefined type %q", ts.Name.Name))
		return
	}

	if k, _ := kindOf(ts); k != t.Kind {
		c.fail(fmt.Errorf("loader: type %q of kind %s is extended as %s", t.Name, t.Kind, k))
		return
	}
	c.members(t, ts)
}

func (c *converter) directive(ts *ast.TypeSpec, doc *ast.DocGroup) *introspection.Directive {
	v := ts.Type.(*ast.TypeSpec_Directive).Directive

	d := &introspection.Directive{
		Name:        ts.Name.Name,
		Description: docText(doc),
		Locations:   make([]string, len(v.Locs)),
	}
	for i, loc := range v.Locs {
		d.Locations[i] = loc.Loc.String()
	}

	if v.Args != nil {
		d.Args = c.inputValues(v.Args.List)
	}
	return d
}

func (c *converter) fields(list []*ast.Field) []*introspection.Field {
	out := make([]*introspection.Field, 0, len(list))
	for _, f := range list {
		reason, deprecated := gqlcDeprecation(f.Directives)

		field := &introspection.Field{
			Name:              f.Name.Name,
			Description:       docText(f.Doc),
			Type:              c.ref(f.Type),
			IsDeprecated:      deprecated,
			DeprecationReason: reason,
		}
		if f.Args != nil {
			field.Args = c.inputValues(f.Args.List)
		}

		out = append(out, field)
	}
	return out
}

func (c *converter) inputValues(list []*ast.InputValue) []*introspection.InputValue {
	out := make([]*introspection.InputValue, 0, len(list))
	for _, iv := range list {
		v := &introspection.InputValue{
			Name:        iv.Name.Name,
			Description: docText(iv.Doc),
			Type:        c.ref(iv.Type),
		}

		switch d := iv.Default.(type) {
		case *ast.InputValue_BasicLit:
			v.DefaultValue = literal(d.BasicLit)
		case *ast.InputValue_CompositeLit:
			v.DefaultValue = literal(d.CompositeLit)
		}

		out = append(out, v)
	}
	return out
}

func (c *converter) named(name string) *introspection.Type {
	k, ok := c.kinds[name]
	if !ok {
		c.fail(fmt.Errorf("loader: undefined type %q", name))
	}
	return &introspection.Type{Kind: k, Name: name}
}

// ref converts any of the type reference forms of the IDL ast.
func (c *converter) ref(typ interface{}) *introspection.Type {
	switch v := typ.(type) {
	case *ast.Field_Ident:
		return c.ref(v.Ident)
	case *ast.Field_List:
		return c.ref(v.List)
	case *ast.Field_NonNull:
		return c.ref(v.NonNull)
	case *ast.InputValue_Ident:
		return c.ref(v.Ident)
	case *ast.InputValue_List:
		return c.ref(v.List)
	case *ast.InputValue_NonNull:
		return c.ref(v.NonNull)
	case *ast.Ident:
		return c.named(v.Name)
	case *ast.List:
		var elem interface{}
		switch w := v.Type.(type) {
		case *ast.List_Ident:
			elem = w.Ident
		case *ast.List_List:
			elem = w.List
		case *ast.List_NonNull:
			elem = w.NonNull
		}
		return &introspection.Type{Kind: introspection.List, OfType: c.ref(elem)}
	case *ast.NonNull:
		var elem interface{}
		switch w := v.Type.(type) {
		case *ast.NonNull_Ident:
			elem = w.Ident
		case *ast.NonNull_List:
			elem = w.List
		}
		return &introspection.Type{Kind: introspection.NonNull, OfType: c.ref(elem)}
	}

	c.fail(fmt.Errorf("loader: unexpected type reference %T", typ))
	return nil
}

func (c *converter) possibleTypes() {
	for _, t := range c.out.Types {
		for _, it := range t.Interfaces {
			iface, ok := c.byName[it.Name]
			if !ok || iface.Kind != introspection.Interface {
				continue
			}
			iface.PossibleTypes = append(iface.PossibleTypes, &introspection.Type{Kind: t.Kind, Name: t.Name})
		}
	}
}

// roots sets the root operation types from the schema declaration, or
// from the conventional type names when there is none.
func (c *converter) roots(schema *ast.TypeSpec) {
	ops := map[string]string{
		"query":        "Query",
		"mutation":     "Mutation",
		"subscription": "Subscription",
	}

	if schema != nil {
		ops = make(map[string]string, 3)

		s := schema.Type.(*ast.TypeSpec_Schema).Schema
		if s.RootOps != nil {
			for _, f := range s.RootOps.List {
				if id, ok := f.Type.(*ast.Field_Ident); ok {
					ops[strings.ToLower(f.Name.Name)] = id.Ident.Name
				}
			}
		}
	}

	root := func(op string) *introspection.Type {
		t, ok := c.byName[ops[op]]
		if !ok || t.Kind != introspection.Object {
			return nil
		}
		return &introspection.Type{Kind: introspection.Object, Name: t.Name}
	}

	c.out.QueryType = root("query")
	c.out.MutationType = root("mutation")
	c.out.SubscriptionType = root("subscription")
}

func docText(d *ast.DocGroup) string {
	if d == nil {
		return ""
	}
	return strings.TrimSpace(d.Text())
}

func gqlcDeprecation(dirs []*ast.DirectiveLit) (string, bool) {
	for _, d := range dirs {
		if d.Name != "deprecated" {
			continue
		}

		if d.Args != nil {
			for _, a := range d.Args.Args {
				if a.Name.Name != "reason" {
					continue
				}

				if v, ok := a.Value.(*ast.Arg_BasicLit); ok {
					return unquote(v.BasicLit.Value), true
				}
			}
		}
		return defaultDeprecationReason, true
	}
	return "", false
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return strings.Trim(s, `"`)
}

// literal prints a value literal as GraphQL source.
func literal(val interface{}) string {
	var b strings.Builder
	writeLiteral(&b, val)
	return b.String()
}

func writeLiteral(b *strings.Builder, val interface{}) {
	switch v := val.(type) {
	case *ast.BasicLit:
		b.WriteString(v.Value)
	case *ast.ListLit:
		var vals []interface{}
		switch w := v.List.(type) {
		case *ast.ListLit_BasicList:
			for _, bv := range w.BasicList.Values {
				vals = append(vals, bv)
			}
		case *ast.ListLit_CompositeList:
			for _, cv := range w.CompositeList.Values {
				vals = append(vals, cv)
			}
		}

		b.WriteByte('[')
		for i, iv := range vals {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLiteral(b, iv)
		}
		b.WriteByte(']')
	case *ast.ObjLit:
		b.WriteByte('{')
		for i, p := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Key.Name)
			b.WriteString(": ")
			writeLiteral(b, p.Val)
		}
		b.WriteByte('}')
	case *ast.CompositeLit:
		switch w := v.Value.(type) {
		case *ast.CompositeLit_BasicLit:
			writeLiteral(b, w.BasicLit)
		case *ast.CompositeLit_ListLit:
			writeLiteral(b, w.ListLit)
		case *ast.CompositeLit_ObjLit:
			writeLiteral(b, w.ObjLit)
		}
	}
}
