package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/gorilla/websocket"
	"github.com/gqlc/gqldoc/introspection"
	"go.uber.org/zap"
)

type gqlReq struct {
	Query string `json:"query"`
}

func (e Endpoint) load(ctx context.Context) (*introspection.Schema, error) {
	u, err := url.Parse(e.URL)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid endpoint: %w", err)
	}

	names := make([]string, 0, len(e.Headers))
	for k := range e.Headers {
		names = append(names, k)
	}
	sort.Strings(names)
	zap.L().Info("fetching types via introspection", zap.String("endpoint", u.String()), zap.Strings("headers", names))

	switch u.Scheme {
	case "http", "https":
		return e.post(ctx, u)
	case "ws", "wss":
		return e.subscribe(ctx, u)
	}
	return nil, fmt.Errorf("%w: unknown endpoint scheme %q", ErrUnsupportedSource, u.Scheme)
}

func (e Endpoint) post(ctx context.Context, u *url.URL) (*introspection.Schema, error) {
	body, err := json.Marshal(gqlReq{Query: introspection.Query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range e.Headers {
		for _, s := range v {
			req.Header.Add(k, s)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loader: fetching schema: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("loader: fetching schema: unexpected status %s", resp.Status)
	}
	return introspection.Decode(resp.Body)
}

// Message types of the graphql-ws protocol.
const (
	gqlConnectionInit  = "connection_init"
	gqlConnectionAck   = "connection_ack"
	gqlConnectionError = "connection_error"
	gqlConnectionKA    = "ka"
	gqlStart           = "start"
	gqlData            = "data"
	gqlError           = "error"
	gqlComplete        = "complete"
	gqlStop            = "stop"

	introspectionID = "1"
)

type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (e Endpoint) subscribe(ctx context.Context, u *url.URL) (*introspection.Schema, error) {
	dialer := &websocket.Dialer{
		Proxy:        http.ProxyFromEnvironment,
		Subprotocols: []string{"graphql-ws"},
	}

	conn, _, err := dialer.DialContext(ctx, u.String(), e.Headers)
	if err != nil {
		return nil, fmt.Errorf("loader: connecting to %s: %w", u, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
	}

	if err = conn.WriteJSON(wsMessage{Type: gqlConnectionInit, Payload: json.RawMessage("{}")}); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(gqlReq{Query: introspection.Query})
	if err != nil {
		return nil, err
	}

	for {
		var msg wsMessage
		if err = conn.ReadJSON(&msg); err != nil {
			return nil, fmt.Errorf("loader: reading from %s: %w", u, err)
		}

		switch msg.Type {
		case gqlConnectionAck:
			err = conn.WriteJSON(wsMessage{ID: introspectionID, Type: gqlStart, Payload: payload})
			if err != nil {
				return nil, err
			}
		case gqlConnectionKA:
		case gqlData:
			if msg.ID != introspectionID {
				continue
			}

			conn.WriteJSON(wsMessage{ID: introspectionID, Type: gqlStop})
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return introspection.Decode(bytes.NewReader(msg.Payload))
		case gqlConnectionError, gqlError:
			return nil, fmt.Errorf("loader: server error: %s", msg.Payload)
		case gqlComplete:
			return nil, fmt.Errorf("loader: server completed the introspection query without data")
		default:
			zap.L().Debug("ignoring graphql-ws message", zap.String("type", msg.Type))
		}
	}
}
