package notification

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxClientsPerUser = 5
	sendBuffer        = 16
	writeTimeout      = 5 * time.Second
)

// clientWriter 每个连接一个写协程，避免并发写同一连接
type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
	once   sync.Once
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg := <-cw.sendCh:
			_ = cw.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) stop() {
	cw.once.Do(func() {
		close(cw.done)
		cw.conn.Close()
	})
}

// Hub 按用户 ID 维护 websocket 连接并推送通知
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*websocket.Conn]*clientWriter
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*websocket.Conn]*clientWriter)}
}

// Register 登记连接；超过每用户连接上限时返回 false 并关闭连接
func (h *Hub) Register(userID uint, conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[userID]
	if !ok {
		conns = make(map[*websocket.Conn]*clientWriter)
		h.clients[userID] = conns
	}
	if len(conns) >= maxClientsPerUser {
		slog.Warn("rejecting websocket client: too many connections", "user_id", userID)
		conn.Close()
		return false
	}
	conns[conn] = newClientWriter(conn)
	slog.Debug("websocket client registered", "user_id", userID, "total", len(conns))
	return true
}

func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.clients[userID]
	if cw, ok := conns[conn]; ok {
		cw.stop()
		delete(conns, conn)
	}
	if len(conns) == 0 {
		delete(h.clients, userID)
	}
}

// Send 推送给用户的所有连接，返回投递的连接数
// 用户没有连接或某个连接缓冲已满时，消息被丢弃
func (h *Hub) Send(userID uint, payload any) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := h.clients[userID]
	if len(conns) == 0 {
		return 0
	}

	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal websocket payload", "user_id", userID, "error", err)
		return 0
	}

	delivered := 0
	for _, cw := range conns {
		select {
		case cw.sendCh <- data:
			delivered++
		default:
			slog.Warn("websocket send buffer full, dropping message", "user_id", userID)
		}
	}
	return delivered
}

// ClientCount 用户当前的连接数
func (h *Hub) ClientCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Stop 关闭所有连接
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, conns := range h.clients {
		for _, cw := range conns {
			cw.stop()
		}
		delete(h.clients, userID)
	}
}
