package loader

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gqlc/gqldoc/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRespData = `{
  "data": {
    "__schema": {
      "queryType": {"name": "Query"},
      "directives": [],
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [{"name": "now", "args": [], "type": {"kind": "SCALAR", "name": "Time", "ofType": null}}]
        },
        {
          "kind": "SCALAR",
          "name": "Time",
          "description": null,
          "fields": null,
          "interfaces": null,
          "possibleTypes": null,
          "enumValues": null,
          "inputFields": null,
          "ofType": null
        }
      ]
    }
  }
}`

func TestEndpoint_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost || req.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Header.Get("Authorization") != "Bearer r2d2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body gqlReq
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Query != introspection.Query {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		io.WriteString(w, testRespData)
	}))
	defer srv.Close()

	s := load(t, Endpoint{
		URL:     srv.URL + "/graphql",
		Headers: http.Header{"Authorization": []string{"Bearer r2d2"}},
	})
	assert.Equal(t, []string{"Query", "Time"}, names(s.Types))
	assert.Equal(t, "Query", s.QueryType.Name)
}

func TestEndpoint_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), Endpoint{URL: srv.URL, Client: srv.Client()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestEndpoint_HTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, `{"errors": [{"message": "introspection is disabled"}]}`)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), Endpoint{URL: srv.URL})

	var rerr *introspection.ResponseError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, []string{"introspection is disabled"}, rerr.Messages)
}

func TestEndpoint_UnknownScheme(t *testing.T) {
	_, err := Load(context.Background(), Endpoint{URL: "ftp://example.com/schema"})
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

func wsServer(t *testing.T, handle func(conn *websocket.Conn)) *httptest.Server {
	upgrader := websocket.Upgrader{
		Subprotocols: []string{"graphql-ws"},
		CheckOrigin:  func(_ *http.Request) bool { return true },
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade error: %v", err)
			return
		}
		defer conn.Close()

		handle(conn)
	}))
}

func TestEndpoint_WebSocket(t *testing.T) {
	startedc := make(chan wsMessage, 1)
	srv := wsServer(t, func(conn *websocket.Conn) {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil || msg.Type != gqlConnectionInit {
			return
		}

		conn.WriteJSON(wsMessage{Type: gqlConnectionAck})
		conn.WriteJSON(wsMessage{Type: gqlConnectionKA})

		var started wsMessage
		if err := conn.ReadJSON(&started); err != nil {
			return
		}
		startedc <- started

		conn.WriteJSON(wsMessage{ID: started.ID, Type: gqlData, Payload: json.RawMessage(testRespData)})
		conn.ReadJSON(&msg)
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := Load(ctx, Endpoint{URL: "ws" + strings.TrimPrefix(srv.URL, "http")})
	require.NoError(t, err)

	assert.Equal(t, []string{"Query", "Time"}, names(s.Types))

	started := <-startedc
	assert.Equal(t, gqlStart, started.Type)
	assert.Equal(t, introspectionID, started.ID)

	var payload gqlReq
	require.NoError(t, json.Unmarshal(started.Payload, &payload))
	assert.Equal(t, introspection.Query, payload.Query)
}

func TestEndpoint_WebSocketError(t *testing.T) {
	srv := wsServer(t, func(conn *websocket.Conn) {
		var msg wsMessage
		conn.ReadJSON(&msg)
		conn.WriteJSON(wsMessage{Type: gqlConnectionError, Payload: json.RawMessage(`{"message":"unauthorized"}`)})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := Load(ctx, Endpoint{URL: "ws" + strings.TrimPrefix(srv.URL, "http")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
