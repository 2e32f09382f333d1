package document

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Markdown renders a GraphQL description, which is CommonMark, to HTML.
// Raw HTML in the source is not passed through.
func Markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("document: rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
