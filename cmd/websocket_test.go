package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"obmenBack/internal/models"
)

func TestReconnectKeepsCurrentConnection(t *testing.T) {
	app := &application{
		errorLog:  log.New(io.Discard, "", 0),
		wsManager: NewWebSocketManager(),
	}
	go app.wsManager.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), "user_id", 7)
		app.WebSocketHandler(w, r.WithContext(ctx))
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("first dial: %v", err)
	}
	defer first.Close()

	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("second dial: %v", err)
	}
	defer second.Close()

	// Registering the second connection closes the first one server-side;
	// wait for that close, then give the first reader's unregister a moment
	// to reach the hub before notifying.
	first.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := first.ReadMessage(); err == nil {
		t.Fatal("replaced connection must be closed")
	}
	time.Sleep(100 * time.Millisecond)

	app.wsManager.NotifyUser(7, models.ProposalEvent{Type: models.ProposalEventCreated})

	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event models.ProposalEvent
	if err := second.ReadJSON(&event); err != nil {
		t.Fatalf("reconnected user lost the current connection: %v", err)
	}
	if event.Type != models.ProposalEventCreated {
		t.Fatalf("unexpected event type %q", event.Type)
	}
}
