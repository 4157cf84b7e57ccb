package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// The upgrade handler returns as soon as the pumps are started, and net/http
// cancels the request context at that point. The replay stream must keep
// running past that, for as long as the client stays connected.
func TestLifetimeContextOutlivesHandler(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	ctxCh := make(chan context.Context, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		client := newClient(hub, conn)
		hub.register <- client
		go client.writePump()
		go client.readPump()

		ctx, _ := client.lifetimeContext()
		ctxCh <- ctx
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	ctx := <-ctxCh

	select {
	case <-ctx.Done():
		t.Fatal("stream context cancelled while the client was still connected")
	case <-time.After(2 * matchdayInterval):
	}

	conn.Close()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stream context not cancelled after the client disconnected")
	}
}
