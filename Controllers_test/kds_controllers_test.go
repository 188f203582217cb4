package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKDSReceivesOrderEvents(t *testing.T) {
	app := setupTestApp(t)
	kibe := app.createItem(t, "Kibe", 12, "Kibe")

	srv := httptest.NewServer(app.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?screen=kitchen"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return app.hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	app.checkout(t, kibe.ID, 1, "cash", false)

	events := make([]string, 0)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for len(events) < 3 {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var msg struct {
			Event string `json:"event"`
		}
		require.NoError(t, json.Unmarshal(data, &msg))
		events = append(events, msg.Event)
	}
	// add to cart, the order itself, then the emptied cart
	assert.Equal(t, []string{"cart_updated", "order_created", "cart_updated"}, events)

	conn.Close()
	require.Eventually(t, func() bool { return app.hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestKDSRejectsPlainHTTP(t *testing.T) {
	app := setupTestApp(t)
	w, _ := app.do(t, http.MethodGet, "/ws", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
