package introspection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoSchema is returned by Decode when the document holds no __schema field.
var ErrNoSchema = errors.New("introspection: result does not contain a __schema field")

// ResponseError is a GraphQL error returned alongside, or instead of, an
// introspection result.
type ResponseError struct {
	Messages []string
}

func (e *ResponseError) Error() string {
	return "introspection: server returned errors: " + strings.Join(e.Messages, "; ")
}

type gqlError struct {
	Message string `json:"message"`
}

type schemaData struct {
	Schema *Schema `json:"__schema"`
}

type response struct {
	Data   *schemaData `json:"data"`
	Errors []gqlError  `json:"errors"`

	// Some tools dump the bare data object without the response envelope.
	Schema *Schema `json:"__schema"`
}

// Decode reads an introspection result. Both the GraphQL response shape,
// {"data": {"__schema": ...}}, and the bare data shape, {"__schema": ...},
// are accepted.
//
func Decode(r io.Reader) (*Schema, error) {
	var resp response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("introspection: malformed result: %w", err)
	}

	s := resp.Schema
	if resp.Data != nil && resp.Data.Schema != nil {
		s = resp.Data.Schema
	}

	if s == nil {
		if len(resp.Errors) > 0 {
			msgs := make([]string, len(resp.Errors))
			for i, e := range resp.Errors {
				msgs[i] = e.Message
			}
			return nil, &ResponseError{Messages: msgs}
		}
		return nil, ErrNoSchema
	}

	for i, t := range s.Types {
		if t == nil || t.Name == "" {
			return nil, fmt.Errorf("introspection: type at index %d has no name", i)
		}
		if t.Kind.IsWrapper() {
			return nil, fmt.Errorf("introspection: type %s has wrapper kind %s", t.Name, t.Kind)
		}
	}
	return s, nil
}
