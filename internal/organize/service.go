package organize

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fileorg/file-organizer/internal/model"
)

// Run ID constants
const (
	RunIDPrefix = "run-"
)

// Service coordinates asynchronous organize runs for GUI callers. A single
// run may be active at a time; filesystem moves do not parallelize safely
// against the rename-resolution sequence.
type Service struct {
	runs      map[string]*model.OrganizeRun
	cancels   map[string]context.CancelFunc
	runsMutex sync.RWMutex
	onUpdate  func(*model.OrganizeRun)            // callback for UI updates
	onOutcome func(runID string, o model.Outcome) // callback per processed file
}

// NewService creates a new organize run service.
func NewService() *Service {
	return &Service{
		runs:    make(map[string]*model.OrganizeRun),
		cancels: make(map[string]context.CancelFunc),
	}
}

// SetUpdateCallback sets the callback function for run updates.
func (s *Service) SetUpdateCallback(callback func(*model.OrganizeRun)) {
	s.onUpdate = callback
}

// SetOutcomeCallback sets the callback invoked once per processed file.
func (s *Service) SetOutcomeCallback(callback func(runID string, o model.Outcome)) {
	s.onOutcome = callback
}

// Start validates the configuration and launches a run in the background.
// Configuration errors are returned synchronously, before any file is
// touched.
func (s *Service) Start(cfg Config) (*model.OrganizeRun, error) {
	engine, err := New(cfg)
	if err != nil {
		return nil, err
	}

	s.runsMutex.Lock()
	defer s.runsMutex.Unlock()

	for _, run := range s.runs {
		if run.Status == model.RunStatusPending || run.Status.IsActive() {
			return nil, fmt.Errorf("a run is already in progress for %s", run.SourceRoot)
		}
	}

	run := &model.OrganizeRun{
		ID:         generateRunID(),
		SourceRoot: engine.SourceRoot(),
		DestRoot:   engine.DestinationRoot(),
		Status:     model.RunStatusPending,
		StartedAt:  time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.runs[run.ID] = run
	s.cancels[run.ID] = cancel

	go s.execute(ctx, cancel, engine, run)

	return run, nil
}

// Cancel requests a clean stop after the file currently being processed.
func (s *Service) Cancel(runID string) error {
	s.runsMutex.Lock()

	run, exists := s.runs[runID]
	if !exists {
		s.runsMutex.Unlock()
		return fmt.Errorf("run not found: %s", runID)
	}
	if run.Status.IsFinished() {
		s.runsMutex.Unlock()
		return fmt.Errorf("run is not active: %s", run.Status)
	}

	run.Status = model.RunStatusStopping
	cancel := s.cancels[runID]
	s.runsMutex.Unlock()

	if cancel != nil {
		cancel()
	}
	s.notifyUpdate(run)
	return nil
}

// GetRun returns a run by ID.
func (s *Service) GetRun(runID string) (*model.OrganizeRun, bool) {
	s.runsMutex.RLock()
	defer s.runsMutex.RUnlock()
	run, exists := s.runs[runID]
	return run, exists
}

// ActiveRun returns the run currently in progress, if any.
func (s *Service) ActiveRun() (*model.OrganizeRun, bool) {
	s.runsMutex.RLock()
	defer s.runsMutex.RUnlock()
	for _, run := range s.runs {
		if run.Status == model.RunStatusPending || run.Status.IsActive() {
			return run, true
		}
	}
	return nil, false
}

// execute performs enumeration and processing for one run.
func (s *Service) execute(ctx context.Context, cancel context.CancelFunc, engine *Engine, run *model.OrganizeRun) {
	defer cancel()

	s.setStatus(run, model.RunStatusScanning)

	entries, err := engine.Files()
	if err != nil {
		s.runsMutex.Lock()
		run.Status = model.RunStatusError
		run.LastError = err.Error()
		run.FinishedAt = time.Now()
		s.runsMutex.Unlock()
		s.notifyUpdate(run)
		return
	}

	s.runsMutex.Lock()
	run.Total = len(entries)
	if run.Status != model.RunStatusStopping {
		run.Status = model.RunStatusOrganizing
	}
	s.runsMutex.Unlock()
	s.notifyUpdate(run)

	engine.Process(ctx, entries, func(outcome model.Outcome) {
		s.runsMutex.Lock()
		run.Processed++
		run.Tally(outcome.Action)
		if run.Total > 0 {
			run.Progress = float64(run.Processed) / float64(run.Total)
			run.Percent = int(run.Progress * 100)
		}
		s.runsMutex.Unlock()

		if s.onOutcome != nil {
			s.onOutcome(run.ID, outcome)
		}
		s.notifyUpdate(run)
	})

	s.runsMutex.Lock()
	if ctx.Err() != nil {
		run.Status = model.RunStatusStopped
	} else {
		run.Status = model.RunStatusCompleted
		run.Progress = 1.0
		run.Percent = 100
	}
	run.FinishedAt = time.Now()
	s.runsMutex.Unlock()

	s.notifyUpdate(run)
}

// setStatus updates a run's status unless a stop was already requested.
func (s *Service) setStatus(run *model.OrganizeRun, status model.RunStatus) {
	s.runsMutex.Lock()
	if run.Status != model.RunStatusStopping && !run.Status.IsFinished() {
		run.Status = status
	}
	s.runsMutex.Unlock()
	s.notifyUpdate(run)
}

// notifyUpdate calls the update callback if set.
func (s *Service) notifyUpdate(run *model.OrganizeRun) {
	if s.onUpdate != nil {
		s.onUpdate(run)
	}
}

// generateRunID generates a unique run ID using UUID v7 so IDs sort
// chronologically.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
