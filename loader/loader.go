// Package loader normalizes the supported schema inputs into an
// introspection result.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gqlc/gqldoc/introspection"
	"github.com/gqlc/graphql/ast"
	"github.com/gqlc/graphql/parser"
	"github.com/gqlc/graphql/token"
	"github.com/spf13/afero"
	gqlast "github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// ErrUnsupportedSource is returned by SourceOf for values of an
// unrecognized shape.
var ErrUnsupportedSource = errors.New("loader: unsupported schema source")

// Source is a schema input. The set of sources is closed: Fragments,
// Factory, Document, Schema, Files, Introspection and Endpoint.
type Source interface {
	load(ctx context.Context) (*introspection.Schema, error)
}

// Fragments are pieces of GraphQL IDL, concatenated before parsing.
type Fragments []string

func (f Fragments) load(ctx context.Context) (*introspection.Schema, error) {
	src := strings.Join(f, "\n")

	doc, err := parser.ParseDoc(token.NewDocSet(), "schema", strings.NewReader(src), 0)
	if err != nil {
		return nil, fmt.Errorf("loader: parsing schema: %w", err)
	}
	return Document{Doc: doc}.load(ctx)
}

// Factory produces IDL fragments on demand.
type Factory func() ([]string, error)

func (f Factory) load(ctx context.Context) (*introspection.Schema, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil factory", ErrUnsupportedSource)
	}

	frags, err := f()
	if err != nil {
		return nil, fmt.Errorf("loader: schema factory: %w", err)
	}
	return Fragments(frags).load(ctx)
}

// Document is an already parsed GraphQL document.
type Document struct {
	Doc *ast.Document
}

func (d Document) load(context.Context) (*introspection.Schema, error) {
	if d.Doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrUnsupportedSource)
	}
	return fromDocuments(d.Doc)
}

// Schema is a schema built by github.com/vektah/gqlparser, the schema
// representation held by gqlgen servers.
type Schema struct {
	Schema *gqlast.Schema
}

func (s Schema) load(context.Context) (*introspection.Schema, error) {
	if s.Schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrUnsupportedSource)
	}
	return fromSchema(s.Schema), nil
}

// Files are GraphQL IDL files, along with any files they @import.
// Relative names are searched for in ImportPaths, in order.
type Files struct {
	Fs          afero.Fs
	ImportPaths []string
	Names       []string
}

// Introspection is the JSON result of the introspection query.
type Introspection struct {
	R io.Reader
}

func (i Introspection) load(context.Context) (*introspection.Schema, error) {
	if i.R == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrUnsupportedSource)
	}
	return introspection.Decode(i.R)
}

// Endpoint is a GraphQL server queried by introspection. http(s) URLs are
// sent a POST request, ws(s) URLs speak the graphql-ws protocol.
type Endpoint struct {
	URL     string
	Headers http.Header

	// Client is used for http(s) endpoints. It defaults to http.DefaultClient.
	Client *http.Client
}

// SourceOf returns the Source for a value of one of the supported shapes:
// a Source, a []string of IDL fragments, a func() []string or
// func() ([]string, error) producing them, a *ast.Document from
// github.com/gqlc/graphql or a *ast.Schema from github.com/vektah/gqlparser.
//
func SourceOf(v interface{}) (Source, error) {
	switch s := v.(type) {
	case Source:
		return s, nil
	case []string:
		return Fragments(s), nil
	case func() ([]string, error):
		return Factory(s), nil
	case func() []string:
		return Factory(func() ([]string, error) { return s(), nil }), nil
	case *ast.Document:
		return Document{Doc: s}, nil
	case *gqlast.Schema:
		return Schema{Schema: s}, nil
	case string:
		return nil, fmt.Errorf("%w: got a string, must be an array of IDL fragments, a function returning one or a built schema", ErrUnsupportedSource)
	}
	return nil, fmt.Errorf("%w: %T, must be an array of IDL fragments, a function returning one or a built schema", ErrUnsupportedSource, v)
}

// Load normalizes src into an introspection result.
func Load(ctx context.Context, src Source) (*introspection.Schema, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrUnsupportedSource)
	}

	s, err := src.load(ctx)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("loaded schema", zap.Int("types", len(s.Types)), zap.Int("directives", len(s.Directives)))
	return s, nil
}
