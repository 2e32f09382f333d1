// Package build writes the documentation site of a schema: an index page,
// a native schema page and one page per type.
package build

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"path/filepath"
	"runtime"

	"github.com/gqlc/gqldoc/document"
	"github.com/gqlc/gqldoc/introspection"
	"github.com/gqlc/gqldoc/link"
	"github.com/gqlc/gqldoc/nav"
	"github.com/gqlc/gqldoc/translator"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed templates
var defaultTemplates embed.FS

// Template file names. Any other file of the template directory is
// copied to the output as is.
var templateNames = []string{"index", "main", "nav", "footer"}

const templateExt = ".tmpl"

// Default titles of the schema overview pages.
const (
	DefaultTitle       = "GraphQL Schema"
	DefaultNativeTitle = "Native Schema"
)

// Meta describes the documented project. It is available to every page
// template as .Meta.
type Meta struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Version     string `json:"version" yaml:"version" mapstructure:"version"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Homepage    string `json:"homepage" yaml:"homepage" mapstructure:"homepage"`
}

// Options configures a build.
type Options struct {
	// Output is the directory pages are written to.
	Output string

	// Templates is the directory holding the page templates. The
	// embedded templates are used when empty.
	Templates string

	BaseURL     string
	Title       string
	NativeTitle string
	Icon        template.HTML
	Meta        Meta

	// Concurrency bounds the number of type pages built at once.
	Concurrency int

	// Navigation returns the navigation plugins, in display order.
	// It defaults to nav.Defaults.
	Navigation func(*introspection.Schema, nav.Resolver) []nav.Plugin

	// Documents are the document plugins run for each type page.
	Documents []document.Plugin
}

func defaultIcon(baseURL string) template.HTML {
	return template.HTML(`<header class="slds-theme--alt-inverse slds-text-heading--medium slds-p-around--large">` +
		`<a href="` + template.HTMLEscapeString(baseURL) + `" >Schema types</a>` +
		`</header>`)
}

// Builder builds the documentation of a single schema.
type Builder struct {
	fs     afero.Fs
	schema *introspection.Schema
	opts   Options
	url    *link.Resolver
	tr     *translator.Translator
}

// New returns a Builder writing to fs.
func New(fs afero.Fs, schema *introspection.Schema, opts Options) *Builder {
	url := link.New(schema, link.WithBaseURL(opts.BaseURL))
	opts.BaseURL = url.BaseURL()

	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.NativeTitle == "" {
		opts.NativeTitle = DefaultNativeTitle
	}
	if opts.Icon == "" {
		opts.Icon = defaultIcon(opts.BaseURL)
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	if opts.Navigation == nil {
		opts.Navigation = nav.Defaults
	}
	if len(opts.Documents) == 0 {
		opts.Documents = []document.Plugin{&document.SchemaHTML{Title: document.DefaultTitle}}
	}

	return &Builder{
		fs:     fs,
		schema: schema,
		opts:   opts,
		url:    url,
		tr:     translator.New(schema, url, opts.Navigation(schema, url), opts.Documents),
	}
}

// view is the data handed to the page templates.
type view struct {
	Meta    Meta
	Icon    template.HTML
	BaseURL string

	*translator.Page
}

// Build writes every page and returns their paths. Type pages are built
// concurrently; after the first failure no new page is started and the
// cause is returned once the pages in progress are done.
//
func (b *Builder) Build(ctx context.Context) ([]string, error) {
	log := zap.L().Named("build")

	if err := b.fs.MkdirAll(b.opts.Output, 0755); err != nil {
		return nil, fmt.Errorf("build: creating output directory: %w", err)
	}

	tfs, err := b.templateFS()
	if err != nil {
		return nil, err
	}

	tmpl, err := parseTemplates(tfs)
	if err != nil {
		return nil, err
	}

	paths, err := b.copyAssets(tfs)
	if err != nil {
		return nil, err
	}

	index, err := b.tr.SchemaData(b.opts.Title, fmt.Sprintf("View [native schema](%s)", b.url.NativeURL()))
	if err != nil {
		return nil, err
	}
	p, err := b.write(tmpl, link.IndexPage, index)
	if err != nil {
		return nil, err
	}
	paths = append(paths, p)

	native, err := b.tr.NativeSchemaData(b.opts.NativeTitle, fmt.Sprintf("View [implemented schema](%s)", b.url.IndexURL()))
	if err != nil {
		return nil, err
	}
	p, err = b.write(tmpl, link.NativePage, native)
	if err != nil {
		return nil, err
	}
	paths = append(paths, p)

	typePaths := make([]string, len(b.schema.Types))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Concurrency)
	for i, t := range b.schema.Types {
		if gctx.Err() != nil {
			break
		}

		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			name, err := b.url.PageName(t.Name)
			if err != nil {
				return err
			}

			page, err := b.tr.TypeData(t)
			if err != nil {
				return err
			}

			typePaths[i], err = b.write(tmpl, name, page)
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	paths = append(paths, typePaths...)
	log.Info("built documentation", zap.String("output", b.opts.Output), zap.Int("pages", len(typePaths)+2))
	return paths, nil
}

func (b *Builder) templateFS() (fs.FS, error) {
	if b.opts.Templates == "" {
		return fs.Sub(defaultTemplates, "templates")
	}

	ok, err := afero.DirExists(b.fs, b.opts.Templates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("build: template directory %s does not exist", b.opts.Templates)
	}
	return afero.NewIOFS(afero.NewBasePathFs(b.fs, b.opts.Templates)), nil
}

func parseTemplates(tfs fs.FS) (*template.Template, error) {
	var root *template.Template
	for _, name := range templateNames {
		src, err := fs.ReadFile(tfs, name+templateExt)
		if err != nil {
			return nil, fmt.Errorf("build: reading template: %w", err)
		}

		var t *template.Template
		if root == nil {
			root = template.New(name)
			t = root
		} else {
			t = root.New(name)
		}

		if _, err = t.Parse(string(src)); err != nil {
			return nil, fmt.Errorf("build: parsing template %s: %w", name, err)
		}
	}
	return root, nil
}

// copyAssets copies every file of the template directory that is not a
// template into the output directory.
func (b *Builder) copyAssets(tfs fs.FS) (paths []string, err error) {
	err = fs.WalkDir(tfs, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) == templateExt {
			return nil
		}

		data, err := fs.ReadFile(tfs, name)
		if err != nil {
			return err
		}

		out := filepath.Join(b.opts.Output, filepath.FromSlash(name))
		if err = b.fs.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return err
		}
		if err = afero.WriteFile(b.fs, out, data, 0644); err != nil {
			return err
		}

		paths = append(paths, out)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build: copying assets: %w", err)
	}
	return
}

func (b *Builder) write(tmpl *template.Template, name string, page *translator.Page) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, view{
		Meta:    b.opts.Meta,
		Icon:    b.opts.Icon,
		BaseURL: b.opts.BaseURL,
		Page:    page,
	})
	if err != nil {
		return "", fmt.Errorf("build: rendering %s: %w", name, err)
	}

	out := filepath.Join(b.opts.Output, name)
	zap.L().Named("build").Debug("writing page", zap.String("path", out))
	if err = afero.WriteFile(b.fs, out, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("build: writing %s: %w", name, err)
	}
	return out, nil
}
