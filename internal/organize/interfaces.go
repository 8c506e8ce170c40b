package organize

import (
	"github.com/fileorg/file-organizer/internal/model"
)

// Sink consumes outcome records as the engine produces them, one per file.
type Sink func(model.Outcome)

// Runner defines the interface the UI uses to launch and track organize runs.
type Runner interface {
	SetUpdateCallback(func(*model.OrganizeRun))
	SetOutcomeCallback(func(runID string, outcome model.Outcome))
	Start(cfg Config) (*model.OrganizeRun, error)
	Cancel(runID string) error
	GetRun(runID string) (*model.OrganizeRun, bool)
	ActiveRun() (*model.OrganizeRun, bool)
}
