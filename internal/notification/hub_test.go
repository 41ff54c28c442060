package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub(t *testing.T) (*Hub, func(userID uint) *ws.Conn) {
	t.Helper()

	hub := NewHub()
	t.Cleanup(hub.Stop)

	upgrader := ws.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		uid, _ := strconv.ParseUint(r.URL.Query().Get("user"), 10, 64)
		userID := uint(uid)
		if !hub.Register(userID, conn) {
			return
		}
		go func() {
			defer hub.Unregister(userID, conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}))
	t.Cleanup(server.Close)

	dial := func(userID uint) *ws.Conn {
		t.Helper()
		url := "ws" + strings.TrimPrefix(server.URL, "http") + "?user=" + strconv.Itoa(int(userID))
		conn, _, err := ws.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		return conn
	}
	return hub, dial
}

func waitForClients(t *testing.T, hub *Hub, userID uint, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHubSendDeliversToUserConnections(t *testing.T) {
	hub, dial := testHub(t)

	c1 := dial(1)
	c2 := dial(1)
	other := dial(2)
	waitForClients(t, hub, 1, 2)
	waitForClients(t, hub, 2, 1)

	assert.Equal(t, 2, hub.Send(1, map[string]string{"title": "approved"}))

	for _, c := range []*ws.Conn{c1, c2} {
		require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := c.ReadMessage()
		require.NoError(t, err)

		var got map[string]string
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "approved", got["title"])
	}

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "other users receive nothing")
}

func TestHubSendWithoutConnectionsIsDropped(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.Send(42, "hello"))
}

func TestHubUnregisterOnDisconnect(t *testing.T) {
	hub, dial := testHub(t)

	c := dial(3)
	waitForClients(t, hub, 3, 1)

	c.Close()
	waitForClients(t, hub, 3, 0)
	assert.Equal(t, 0, hub.Send(3, "gone"))
}

func TestHubLimitsConnectionsPerUser(t *testing.T) {
	hub, dial := testHub(t)

	for i := 0; i < maxClientsPerUser; i++ {
		dial(4)
	}
	waitForClients(t, hub, 4, maxClientsPerUser)

	extra := dial(4)
	require.NoError(t, extra.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := extra.ReadMessage()
	assert.Error(t, err, "connection over the limit is closed")
	assert.Equal(t, maxClientsPerUser, hub.ClientCount(4))
}
