package loader

import (
	"container/list"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gqlc/compiler"
	"github.com/gqlc/gqldoc/introspection"
	"github.com/gqlc/graphql/ast"
	"github.com/gqlc/graphql/parser"
	"github.com/gqlc/graphql/token"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func (f Files) load(context.Context) (*introspection.Schema, error) {
	if f.Fs == nil {
		return nil, fmt.Errorf("%w: no file system", ErrUnsupportedSource)
	}
	if len(f.Names) == 0 {
		return nil, fmt.Errorf("%w: no files", ErrUnsupportedSource)
	}

	importPaths := f.ImportPaths
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}

	docs, err := parseFiles(f.Fs, importPaths, f.Names)
	if err != nil {
		return nil, err
	}

	order := make(map[string]int, len(docs))
	for i, d := range docs {
		order[d.Name] = i
	}

	docs, err = compiler.ReduceImports(docs)
	if err != nil {
		return nil, fmt.Errorf("loader: resolving imports: %w", err)
	}
	sort.SliceStable(docs, func(i, j int) bool { return order[docs[i].Name] < order[docs[j].Name] })

	return fromDocuments(docs...)
}

// parseFiles parses the named files along with every file they import.
// Documents are returned in the order they were parsed.
func parseFiles(fs afero.Fs, importPaths, names []string) (docs []*ast.Document, err error) {
	defer func() {
		if err == nil {
			resolveImportPaths(docs)
		}
	}()

	dset := token.NewDocSet()
	parsed := make(map[string]bool, len(names))
	for _, name := range names {
		base := filepath.Base(name)
		if parsed[base] {
			continue
		}

		doc, err := parseFile(dset, fs, importPaths, base, name)
		if err != nil {
			return nil, err
		}

		parsed[base] = true
		docs = append(docs, doc)
	}

	q := list.New()
	for _, doc := range docs {
		queueImports(doc, q, parsed)
	}

	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		imp := e.Value.(importInfo)

		doc, err := parseFile(dset, fs, importPaths, imp.Name, imp.Path)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
		queueImports(doc, q, parsed)
	}
	return docs, nil
}

func parseFile(dset *token.DocSet, fs afero.Fs, importPaths []string, name, path string) (*ast.Document, error) {
	f, err := openFile(fs, importPaths, path)
	if err != nil {
		return nil, fmt.Errorf("loader: opening %s: %w", path, err)
	}
	defer f.Close()

	zap.L().Info("parsing file", zap.String("name", name), zap.String("path", f.Name()))
	doc, err := parser.ParseDoc(dset, name, f, 0)
	if err != nil {
		return nil, fmt.Errorf("loader: parsing %s: %w", path, err)
	}
	return doc, nil
}

type importInfo struct {
	Name string
	Path string
}

// importLits returns the path literals of the @import directives of doc.
func importLits(doc *ast.Document) (paths []*ast.BasicLit) {
	for _, direc := range doc.Directives {
		if direc.Name != "import" || direc.Args == nil {
			continue
		}

		for _, arg := range direc.Args.Args {
			compLit, ok := arg.Value.(*ast.Arg_CompositeLit)
			if !ok {
				continue
			}
			listLit, ok := compLit.CompositeLit.Value.(*ast.CompositeLit_ListLit)
			if !ok {
				continue
			}

			switch v := listLit.ListLit.List.(type) {
			case *ast.ListLit_BasicList:
				paths = append(paths, v.BasicList.Values...)
			case *ast.ListLit_CompositeList:
				for _, c := range v.CompositeList.Values {
					if b, ok := c.Value.(*ast.CompositeLit_BasicLit); ok {
						paths = append(paths, b.BasicLit)
					}
				}
			}
		}
	}
	return
}

func queueImports(doc *ast.Document, q *list.List, parsed map[string]bool) {
	for _, p := range importLits(doc) {
		path := strings.Trim(p.Value, `"`)
		name := filepath.Base(path)
		if parsed[name] {
			continue
		}

		parsed[name] = true
		q.PushBack(importInfo{Name: name, Path: path})
	}
}

// resolveImportPaths renames documents and their imports to the base
// file name without extension, which is how imports are matched to
// documents.
func resolveImportPaths(docs []*ast.Document) {
	for _, d := range docs {
		d.Name = trimExt(filepath.Base(d.Name))

		for _, p := range importLits(d) {
			p.Value = fmt.Sprintf(`"%s"`, trimExt(filepath.Base(strings.Trim(p.Value, `"`))))
		}
	}
}

func trimExt(name string) string { return name[:len(name)-len(filepath.Ext(name))] }

// openFile opens filename, searching importPaths in order for relative names.
func openFile(fs afero.Fs, importPaths []string, filename string) (afero.File, error) {
	if !filepath.IsAbs(filename) {
		for _, iPath := range importPaths {
			fname := filepath.Join(iPath, filename)

			exists, err := afero.Exists(fs, fname)
			if err != nil {
				return nil, err
			}
			if exists {
				filename = fname
				break
			}
		}
	}
	return fs.Open(filename)
}
