package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"obmenBack/internal/models"
)

const (
	readLimit     = 1 << 20
	readDeadline  = 120 * time.Second
	writeDeadline = 5 * time.Second
)

type directMsg struct {
	userID int
	event  models.ProposalEvent
}

type unreg struct {
	userID int
	conn   *websocket.Conn
}

type Client struct {
	ID     int
	Socket *websocket.Conn
}

// WebSocketManager delivers proposal events to connected users. One
// connection per user; a new connection replaces the old one.
type WebSocketManager struct {
	clients    map[int]*websocket.Conn
	direct     chan directMsg
	register   chan Client
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*websocket.Conn),
		direct:     make(chan directMsg, 64),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			if old, ok := ws.clients[client.ID]; ok {
				old.Close()
			}
			ws.clients[client.ID] = client.Socket
		case u := <-ws.unregister:
			// Only drop the mapping when it still points at the leaving
			// connection; a reconnect may have replaced it already.
			if cur, ok := ws.clients[u.userID]; ok && cur == u.conn {
				cur.Close()
				delete(ws.clients, u.userID)
			}
		case msg := <-ws.direct:
			conn, ok := ws.clients[msg.userID]
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := conn.WriteJSON(msg.event); err != nil {
				conn.Close()
				delete(ws.clients, msg.userID)
			}
		}
	}
}

// NotifyUser implements services.Notifier. Delivery is best effort: events
// for disconnected users are dropped, the store keeps the durable state.
func (ws *WebSocketManager) NotifyUser(userID int, event models.ProposalEvent) {
	select {
	case ws.direct <- directMsg{userID: userID, event: event}:
	default:
	}
}

func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("WebSocket upgrade error: %v", err)
		return
	}
	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	app.wsManager.register <- Client{ID: userID, Socket: conn}

	// Drain the connection; clients only listen on this channel.
	go func() {
		defer func() { app.wsManager.unregister <- unreg{userID: userID, conn: conn} }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			conn.SetReadDeadline(time.Now().Add(readDeadline))
		}
	}()
}
