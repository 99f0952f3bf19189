package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/services/events"
)

// dialTestSocket connects to a handler-backed test server and returns the
// connection after the initial "connected" frame has been consumed.
func dialTestSocket(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg WSMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Failed to read connected frame: %v", err)
	}
	if msg.Type != "connected" {
		t.Fatalf("Expected connected frame first, got %q", msg.Type)
	}

	return conn
}

func TestWebSocketHandler_ConnectedFrame(t *testing.T) {
	logger := arbor.NewLogger()
	handler := NewWebSocketHandler(nil, logger)

	server := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg WSMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Failed to read connected frame: %v", err)
	}

	if msg.Type != "connected" {
		t.Errorf("Expected type connected, got %q", msg.Type)
	}

	payload := msg.Payload.(map[string]interface{})
	if payload["server_instance_id"] == "" || payload["server_instance_id"] == nil {
		t.Error("Expected server_instance_id in connected frame")
	}
}

func TestWebSocketBroadcast_FanOut(t *testing.T) {
	logger := arbor.NewLogger()
	handler := NewWebSocketHandler(nil, logger)

	server := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	defer server.Close()

	numClients := 3
	conns := make([]*websocket.Conn, numClients)
	for i := 0; i < numClients; i++ {
		conns[i] = dialTestSocket(t, server)
		defer conns[i].Close()
	}

	handler.Broadcast("search_started", map[string]interface{}{
		"job_id":  "search_abc",
		"term":    "vanguard",
		"sources": 4,
	})

	for i, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))

		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("Client %d failed to read broadcast: %v", i, err)
		}
		if msg.Type != "search_started" {
			t.Errorf("Client %d expected search_started, got %q", i, msg.Type)
		}

		payload := msg.Payload.(map[string]interface{})
		if payload["term"] != "vanguard" {
			t.Errorf("Client %d expected term in payload, got %v", i, payload)
		}
	}
}

func TestWebSocketHandler_ForwardsBusEvents(t *testing.T) {
	logger := arbor.NewLogger()
	eventService := events.NewService(logger)
	defer eventService.Close()

	handler := NewWebSocketHandler(eventService, logger)
	handler.SubscribeToSearchEvents()

	server := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	defer server.Close()

	conn := dialTestSocket(t, server)
	defer conn.Close()

	err := eventService.PublishSync(context.Background(), interfaces.Event{
		Type: interfaces.EventSearchCompleted,
		Payload: map[string]interface{}{
			"job_id": "search_xyz",
			"count":  7,
		},
	})
	if err != nil {
		t.Fatalf("Failed to publish event: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg WSMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Failed to read forwarded event: %v", err)
	}
	if msg.Type != string(interfaces.EventSearchCompleted) {
		t.Errorf("Expected search_completed, got %q", msg.Type)
	}
}

func TestWebSocketHandler_ClientCountAndClose(t *testing.T) {
	logger := arbor.NewLogger()
	handler := NewWebSocketHandler(nil, logger)

	server := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	defer server.Close()

	conn := dialTestSocket(t, server)
	defer conn.Close()

	if count := handler.ClientCount(); count != 1 {
		t.Errorf("Expected 1 client, got %d", count)
	}

	handler.Close()

	if count := handler.ClientCount(); count != 0 {
		t.Errorf("Expected 0 clients after close, got %d", count)
	}
}
