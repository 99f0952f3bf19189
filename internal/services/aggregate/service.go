// Package aggregate runs a set of named search tasks in parallel and
// merges whatever they produce. Sources that fail or panic contribute
// nothing; they are recorded in the run report and never fail the
// search as a whole.
package aggregate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/models"
)

// Task is one named source contribution to an aggregated search.
type Task struct {
	Name string
	Run  func(ctx context.Context) ([]models.Investment, error)
}

// Service coordinates fan-out search runs.
type Service struct {
	workers int
	timeout time.Duration
	events  interfaces.EventService
	logger  arbor.ILogger
}

// NewService creates an aggregation service sized from search
// configuration.
func NewService(config common.SearchConfig, events interfaces.EventService, logger arbor.ILogger) *Service {
	workers := config.Workers
	if workers < 1 {
		workers = 1
	}

	return &Service{
		workers: workers,
		timeout: config.Timeout.Duration,
		events:  events,
		logger:  logger,
	}
}

// Run executes all tasks under a shared deadline with bounded
// concurrency. Results are merged in completion order; the report
// records every source's outcome.
func (s *Service) Run(ctx context.Context, term string, tasks []Task) ([]models.Investment, *models.SearchReport) {
	jobID := common.NewSearchJobID()
	startTime := time.Now()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.publish(ctx, interfaces.EventSearchStarted, map[string]interface{}{
		"job_id":  jobID,
		"term":    term,
		"sources": len(tasks),
	})

	var wg sync.WaitGroup
	var mu sync.Mutex
	var merged []models.Investment

	report := &models.SearchReport{JobID: jobID}
	sem := make(chan struct{}, s.workers)

	for _, task := range tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			taskStart := time.Now()
			records, err := s.runTask(ctx, task)
			outcome := models.SourceOutcome{
				Source:     task.Name,
				Count:      len(records),
				DurationMS: time.Since(taskStart).Milliseconds(),
			}
			if err != nil {
				outcome.Error = err.Error()
				s.logger.Warn().
					Str("job_id", jobID).
					Str("source", task.Name).
					Err(err).
					Msg("Search source failed")
			}

			mu.Lock()
			merged = append(merged, records...)
			report.Sources = append(report.Sources, outcome)
			if err != nil {
				report.Failed++
			} else {
				report.Succeeded++
			}
			mu.Unlock()

			s.publish(ctx, interfaces.EventSourceCompleted, map[string]interface{}{
				"job_id":      jobID,
				"source":      task.Name,
				"count":       outcome.Count,
				"duration_ms": outcome.DurationMS,
				"error":       outcome.Error,
			})
		}(task)
	}

	wg.Wait()

	s.publish(ctx, interfaces.EventSearchCompleted, map[string]interface{}{
		"job_id":      jobID,
		"term":        term,
		"total":       len(merged),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	s.logger.Info().
		Str("job_id", jobID).
		Str("term", term).
		Int("sources", len(tasks)).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Int("total", len(merged)).
		Msg("Aggregated search completed")

	return merged, report
}

// runTask executes one task, converting a panic into an error so a
// misbehaving source cannot take down the run.
func (s *Service) runTask(ctx context.Context, task Task) (records []models.Investment, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("panic: %v", r)
			s.logger.Error().
				Str("source", task.Name).
				Str("panic", fmt.Sprintf("%v", r)).
				Msg("Panic recovered in search source")
		}
	}()

	return task.Run(ctx)
}

func (s *Service) publish(ctx context.Context, eventType interfaces.EventType, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, interfaces.Event{Type: eventType, Payload: payload}); err != nil {
		s.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to publish event")
	}
}
