package aggregate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/models"
)

type mockEventService struct {
	mu     sync.Mutex
	events []interfaces.Event
}

func (m *mockEventService) Subscribe(eventType interfaces.EventType, handler interfaces.EventHandler) error {
	return nil
}

func (m *mockEventService) Unsubscribe(eventType interfaces.EventType, handler interfaces.EventHandler) error {
	return nil
}

func (m *mockEventService) Publish(ctx context.Context, event interfaces.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventService) PublishSync(ctx context.Context, event interfaces.Event) error {
	return m.Publish(ctx, event)
}

func (m *mockEventService) Close() error { return nil }

func (m *mockEventService) byType(eventType interfaces.EventType) []interfaces.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []interfaces.Event
	for _, event := range m.events {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}

func testService(events interfaces.EventService) *Service {
	return NewService(common.SearchConfig{
		Workers: 4,
		Timeout: common.Duration{Duration: 5 * time.Second},
	}, events, arbor.NewLogger())
}

func namedRecords(names ...string) []models.Investment {
	records := make([]models.Investment, 0, len(names))
	for _, name := range names {
		records = append(records, models.Investment{Name: name})
	}
	return records
}

func TestService_Run_MergesAllSources(t *testing.T) {
	events := &mockEventService{}
	service := testService(events)

	tasks := []Task{
		{Name: "funds", Run: func(ctx context.Context) ([]models.Investment, error) {
			return namedRecords("Fund A", "Fund B"), nil
		}},
		{Name: "stocks", Run: func(ctx context.Context) ([]models.Investment, error) {
			return namedRecords("Stock A"), nil
		}},
		{Name: "catalog", Run: func(ctx context.Context) ([]models.Investment, error) {
			return namedRecords("Super A"), nil
		}},
	}

	records, report := service.Run(context.Background(), "test", tasks)

	if len(records) != 4 {
		t.Errorf("Run() merged %d records, want 4", len(records))
	}
	if report.JobID == "" {
		t.Error("report has no job ID")
	}
	if report.Succeeded != 3 || report.Failed != 0 {
		t.Errorf("report = %d succeeded / %d failed, want 3/0", report.Succeeded, report.Failed)
	}
	if len(report.Sources) != 3 {
		t.Errorf("report has %d source outcomes, want 3", len(report.Sources))
	}
}

func TestService_Run_FailedSourceDegrades(t *testing.T) {
	events := &mockEventService{}
	service := testService(events)

	tasks := []Task{
		{Name: "funds", Run: func(ctx context.Context) ([]models.Investment, error) {
			return namedRecords("Fund A"), nil
		}},
		{Name: "stocks", Run: func(ctx context.Context) ([]models.Investment, error) {
			return nil, errors.New("upstream unavailable")
		}},
	}

	records, report := service.Run(context.Background(), "test", tasks)

	if len(records) != 1 {
		t.Errorf("Run() merged %d records, want 1 from the surviving source", len(records))
	}
	if report.Succeeded != 1 || report.Failed != 1 {
		t.Errorf("report = %d succeeded / %d failed, want 1/1", report.Succeeded, report.Failed)
	}

	var failedOutcome *models.SourceOutcome
	for i := range report.Sources {
		if report.Sources[i].Source == "stocks" {
			failedOutcome = &report.Sources[i]
		}
	}
	if failedOutcome == nil {
		t.Fatal("report missing outcome for failed source")
	}
	if failedOutcome.Error != "upstream unavailable" {
		t.Errorf("failed outcome error = %q", failedOutcome.Error)
	}
	if failedOutcome.Count != 0 {
		t.Errorf("failed outcome count = %d, want 0", failedOutcome.Count)
	}
}

func TestService_Run_PanickingSourceRecovered(t *testing.T) {
	events := &mockEventService{}
	service := testService(events)

	tasks := []Task{
		{Name: "healthy", Run: func(ctx context.Context) ([]models.Investment, error) {
			return namedRecords("Fund A"), nil
		}},
		{Name: "broken", Run: func(ctx context.Context) ([]models.Investment, error) {
			panic("nil map write")
		}},
	}

	records, report := service.Run(context.Background(), "test", tasks)

	if len(records) != 1 {
		t.Errorf("Run() merged %d records, want 1", len(records))
	}
	if report.Failed != 1 {
		t.Errorf("report.Failed = %d, want 1", report.Failed)
	}

	for _, outcome := range report.Sources {
		if outcome.Source == "broken" && outcome.Error == "" {
			t.Error("panicking source outcome has no error")
		}
	}
}

func TestService_Run_BoundedConcurrency(t *testing.T) {
	events := &mockEventService{}
	service := NewService(common.SearchConfig{
		Workers: 2,
		Timeout: common.Duration{Duration: 5 * time.Second},
	}, events, arbor.NewLogger())

	var running atomic.Int32
	var peak atomic.Int32

	task := func(ctx context.Context) ([]models.Investment, error) {
		current := running.Add(1)
		for {
			observed := peak.Load()
			if current <= observed || peak.CompareAndSwap(observed, current) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		running.Add(-1)
		return nil, nil
	}

	tasks := make([]Task, 6)
	for i := range tasks {
		tasks[i] = Task{Name: "source", Run: task}
	}

	service.Run(context.Background(), "test", tasks)

	if got := peak.Load(); got > 2 {
		t.Errorf("peak concurrency = %d, want at most 2", got)
	}
}

func TestService_Run_Timeout(t *testing.T) {
	events := &mockEventService{}
	service := NewService(common.SearchConfig{
		Workers: 4,
		Timeout: common.Duration{Duration: 50 * time.Millisecond},
	}, events, arbor.NewLogger())

	tasks := []Task{
		{Name: "fast", Run: func(ctx context.Context) ([]models.Investment, error) {
			return namedRecords("Fund A"), nil
		}},
		{Name: "slow", Run: func(ctx context.Context) ([]models.Investment, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return namedRecords("Too Late"), nil
			}
		}},
	}

	start := time.Now()
	records, report := service.Run(context.Background(), "test", tasks)

	if time.Since(start) > 2*time.Second {
		t.Fatal("Run() did not respect the blanket timeout")
	}
	if len(records) != 1 {
		t.Errorf("Run() merged %d records, want 1 from the fast source", len(records))
	}
	if report.Failed != 1 {
		t.Errorf("report.Failed = %d, want 1 (slow source timed out)", report.Failed)
	}
}

func TestService_Run_PublishesLifecycleEvents(t *testing.T) {
	events := &mockEventService{}
	service := testService(events)

	tasks := []Task{
		{Name: "funds", Run: func(ctx context.Context) ([]models.Investment, error) {
			return namedRecords("Fund A"), nil
		}},
		{Name: "stocks", Run: func(ctx context.Context) ([]models.Investment, error) {
			return nil, errors.New("unavailable")
		}},
	}

	service.Run(context.Background(), "vanguard", tasks)

	started := events.byType(interfaces.EventSearchStarted)
	if len(started) != 1 {
		t.Fatalf("published %d search_started events, want 1", len(started))
	}
	payload, ok := started[0].Payload.(map[string]interface{})
	if !ok {
		t.Fatalf("search_started payload type = %T", started[0].Payload)
	}
	if payload["term"] != "vanguard" {
		t.Errorf("search_started term = %v", payload["term"])
	}
	if payload["sources"] != 2 {
		t.Errorf("search_started sources = %v, want 2", payload["sources"])
	}

	if completed := events.byType(interfaces.EventSourceCompleted); len(completed) != 2 {
		t.Errorf("published %d source_completed events, want 2", len(completed))
	}
	if finished := events.byType(interfaces.EventSearchCompleted); len(finished) != 1 {
		t.Errorf("published %d search_completed events, want 1", len(finished))
	}
}

func TestService_Run_NoTasks(t *testing.T) {
	events := &mockEventService{}
	service := testService(events)

	records, report := service.Run(context.Background(), "test", nil)

	if len(records) != 0 {
		t.Errorf("Run() with no tasks returned %d records", len(records))
	}
	if report.Succeeded != 0 || report.Failed != 0 {
		t.Errorf("report = %d/%d, want 0/0", report.Succeeded, report.Failed)
	}
}
