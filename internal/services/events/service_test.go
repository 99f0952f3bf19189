package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/interfaces"
)

func TestService_PublishSync(t *testing.T) {
	service := NewService(arbor.NewLogger())
	defer service.Close()

	var mu sync.Mutex
	var received []interfaces.Event

	handler := func(ctx context.Context, event interfaces.Event) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, event)
		return nil
	}

	if err := service.Subscribe(interfaces.EventSearchStarted, handler); err != nil {
		t.Fatalf("Subscribe() returned error: %v", err)
	}

	event := interfaces.Event{
		Type:    interfaces.EventSearchStarted,
		Payload: map[string]interface{}{"term": "vanguard"},
	}
	if err := service.PublishSync(context.Background(), event); err != nil {
		t.Fatalf("PublishSync() returned error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("handler received %d events, want 1", len(received))
	}
	if received[0].Type != interfaces.EventSearchStarted {
		t.Errorf("event type = %s, want %s", received[0].Type, interfaces.EventSearchStarted)
	}
}

func TestService_PublishAsync(t *testing.T) {
	service := NewService(arbor.NewLogger())
	defer service.Close()

	var count atomic.Int32
	done := make(chan struct{})

	handler := func(ctx context.Context, event interfaces.Event) error {
		if count.Add(1) == 2 {
			close(done)
		}
		return nil
	}

	service.Subscribe(interfaces.EventSourceCompleted, handler)
	service.Subscribe(interfaces.EventSourceCompleted, handler)

	event := interfaces.Event{Type: interfaces.EventSourceCompleted}
	if err := service.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish() returned error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("handlers received %d events, want 2", count.Load())
	}
}

func TestService_PublishSync_HandlerError(t *testing.T) {
	service := NewService(arbor.NewLogger())
	defer service.Close()

	failing := func(ctx context.Context, event interfaces.Event) error {
		return errors.New("handler blew up")
	}
	service.Subscribe(interfaces.EventSearchCompleted, failing)

	err := service.PublishSync(context.Background(), interfaces.Event{Type: interfaces.EventSearchCompleted})
	if err == nil {
		t.Fatal("PublishSync() = nil error, want handler failure reported")
	}
}

func TestService_NoSubscribers(t *testing.T) {
	service := NewService(arbor.NewLogger())
	defer service.Close()

	if err := service.Publish(context.Background(), interfaces.Event{Type: interfaces.EventCatalogRefreshed}); err != nil {
		t.Errorf("Publish() with no subscribers returned error: %v", err)
	}
	if err := service.PublishSync(context.Background(), interfaces.Event{Type: interfaces.EventCatalogRefreshed}); err != nil {
		t.Errorf("PublishSync() with no subscribers returned error: %v", err)
	}
}

func TestService_SubscribeNilHandler(t *testing.T) {
	service := NewService(arbor.NewLogger())
	defer service.Close()

	if err := service.Subscribe(interfaces.EventSearchStarted, nil); err == nil {
		t.Error("Subscribe(nil) = nil error, want error")
	}
}

func TestService_Unsubscribe(t *testing.T) {
	service := NewService(arbor.NewLogger())
	defer service.Close()

	var count atomic.Int32
	handler := func(ctx context.Context, event interfaces.Event) error {
		count.Add(1)
		return nil
	}

	service.Subscribe(interfaces.EventSearchStarted, handler)
	if err := service.Unsubscribe(interfaces.EventSearchStarted, handler); err != nil {
		t.Fatalf("Unsubscribe() returned error: %v", err)
	}

	service.PublishSync(context.Background(), interfaces.Event{Type: interfaces.EventSearchStarted})
	if count.Load() != 0 {
		t.Errorf("handler called %d times after unsubscribe, want 0", count.Load())
	}

	// Unsubscribing again reports the handler as unknown
	if err := service.Unsubscribe(interfaces.EventSearchStarted, handler); err == nil {
		t.Error("second Unsubscribe() = nil error, want error")
	}
}

func TestNewLoggerSubscriber(t *testing.T) {
	subscriber := NewLoggerSubscriber(arbor.NewLogger())

	ctx := context.Background()
	event := interfaces.Event{
		Type: interfaces.EventSourceCompleted,
		Payload: map[string]interface{}{
			"job_id": "job-123",
			"source": "morningstar-funds",
			"term":   "vanguard",
		},
	}

	if err := subscriber(ctx, event); err != nil {
		t.Errorf("subscriber returned error: %v", err)
	}

	// Events without payloads log fine too
	if err := subscriber(ctx, interfaces.Event{Type: interfaces.EventSearchStarted}); err != nil {
		t.Errorf("subscriber returned error for bare event: %v", err)
	}
}

func TestSubscribeLoggerToAllEvents(t *testing.T) {
	service := NewService(arbor.NewLogger())
	defer service.Close()

	if err := SubscribeLoggerToAllEvents(service, arbor.NewLogger()); err != nil {
		t.Fatalf("SubscribeLoggerToAllEvents() returned error: %v", err)
	}

	// Publishing after wiring must not error
	err := service.PublishSync(context.Background(), interfaces.Event{
		Type:    interfaces.EventSearchCompleted,
		Payload: map[string]interface{}{"job_id": "job-1"},
	})
	if err != nil {
		t.Errorf("PublishSync() returned error: %v", err)
	}
}
