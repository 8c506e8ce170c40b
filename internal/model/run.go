package model

import "time"

// OrganizeRun represents a single organize pass launched from the UI.
type OrganizeRun struct {
	ID         string
	SourceRoot string
	DestRoot   string
	Status     RunStatus
	Total      int     // files discovered by enumeration
	Processed  int     // files with an outcome so far
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	Moved      int
	Copied     int
	Skipped    int
	Simulated  int
	Failed     int
	LastError  string // error message if the run aborted
	StartedAt  time.Time
	FinishedAt time.Time
}

// Tally increments the counter matching a per-file action.
func (r *OrganizeRun) Tally(a Action) {
	switch a {
	case ActionMoved:
		r.Moved++
	case ActionCopied:
		r.Copied++
	case ActionSkipped:
		r.Skipped++
	case ActionSimulated:
		r.Simulated++
	case ActionFailed:
		r.Failed++
	}
}
