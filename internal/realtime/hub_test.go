package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
)

func TestHubBroadcastsBoardEvents(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	id := "a1"
	require.NoError(t, hub.Handle(context.Background(), audit.Event{Action: "passeio_created", Entity: "passeio"}))
	require.NoError(t, hub.Handle(context.Background(), audit.Event{
		Action:   "status_updated",
		Entity:   "agendamento",
		EntityID: &id,
		Metadata: map[string]any{"status": "confirmadas"},
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev BoardEvent
	require.NoError(t, conn.ReadJSON(&ev))

	assert.Equal(t, "status_updated", ev.Action, "non board events are not broadcast")
	assert.Equal(t, "a1", ev.EntityID)
	assert.Equal(t, "confirmadas", ev.Status)

	hub.Close()
	assert.Equal(t, 0, hub.Clients())
}

func TestHubRejectsUnknownOrigin(t *testing.T) {
	hub := NewHub([]string{"https://admin.essentia.com"})
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	header := map[string][]string{"Origin": {"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	assert.Error(t, err)
	if resp != nil {
		assert.Equal(t, 403, resp.StatusCode)
	}
}
