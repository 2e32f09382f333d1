package document

import (
	"github.com/gqlc/gqldoc/introspection"
)

// Tables renders a type's description and its members as reference tables.
type Tables struct {
	Title string
}

// Name returns the plugin name used in error reports.
func (*Tables) Name() string { return TablesName }

// Render implements Plugin.
func (p *Tables) Render(t *introspection.Type, url Resolver) (sec Section, err error) {
	sec.Title = p.Title
	if sec.Description, err = Markdown(t.Description); err != nil {
		return
	}

	var tbl Table
	if tbl, err = fieldTable(t.Fields, url); err != nil {
		return
	}
	sec.Tables = appendTable(sec.Tables, tbl)

	if tbl, err = typeTable("Interfaces", t.Interfaces, url); err != nil {
		return
	}
	sec.Tables = appendTable(sec.Tables, tbl)

	if tbl, err = typeTable("Possible types", t.PossibleTypes, url); err != nil {
		return
	}
	sec.Tables = appendTable(sec.Tables, tbl)

	if tbl.Rows, err = inputRows(t.InputFields, url); err != nil {
		return
	}
	tbl.Title = "Input fields"
	sec.Tables = appendTable(sec.Tables, tbl)

	if tbl, err = valueTable(t.EnumValues); err != nil {
		return
	}
	sec.Tables = appendTable(sec.Tables, tbl)
	return
}

func appendTable(tables []Table, t Table) []Table {
	if len(t.Rows) == 0 {
		return tables
	}
	return append(tables, t)
}

func fieldTable(fields []*introspection.Field, url Resolver) (Table, error) {
	tbl := Table{Title: "Fields"}
	for _, f := range fields {
		typ, err := linkType(url, f.Type)
		if err != nil {
			return tbl, err
		}

		descr, err := Markdown(f.Description)
		if err != nil {
			return tbl, err
		}

		args, err := inputRows(f.Args, url)
		if err != nil {
			return tbl, err
		}

		tbl.Rows = append(tbl.Rows, Row{
			Name:              f.Name,
			Type:              typ,
			Description:       descr,
			Deprecated:        f.IsDeprecated,
			DeprecationReason: f.DeprecationReason,
			Args:              args,
		})
	}
	return tbl, nil
}

func inputRows(vals []*introspection.InputValue, url Resolver) (rows []Row, err error) {
	for _, v := range vals {
		typ, err := linkType(url, v.Type)
		if err != nil {
			return nil, err
		}

		descr, err := Markdown(v.Description)
		if err != nil {
			return nil, err
		}

		rows = append(rows, Row{
			Name:        v.Name,
			Type:        typ,
			Description: descr,
			Default:     v.DefaultValue,
		})
	}
	return
}

func typeTable(title string, types []*introspection.Type, url Resolver) (Table, error) {
	tbl := Table{Title: title}
	for _, t := range types {
		typ, err := linkType(url, t)
		if err != nil {
			return tbl, err
		}

		tbl.Rows = append(tbl.Rows, Row{Name: typ.Name, Type: typ})
	}
	return tbl, nil
}

func valueTable(vals []*introspection.EnumValue) (Table, error) {
	tbl := Table{Title: "Values"}
	for _, v := range vals {
		descr, err := Markdown(v.Description)
		if err != nil {
			return tbl, err
		}

		tbl.Rows = append(tbl.Rows, Row{
			Name:              v.Name,
			Description:       descr,
			Deprecated:        v.IsDeprecated,
			DeprecationReason: v.DeprecationReason,
		})
	}
	return tbl, nil
}
