package model

// RunStatus represents the status of an organize run
type RunStatus string

const (
	// RunStatusPending means the run is created but not started
	RunStatusPending RunStatus = "Pending"

	// RunStatusScanning means the run is enumerating source files
	RunStatusScanning RunStatus = "Scanning"

	// RunStatusOrganizing means files are being placed
	RunStatusOrganizing RunStatus = "Organizing"

	// RunStatusStopping means a cancel was requested and the run is winding down
	RunStatusStopping RunStatus = "Stopping"

	// RunStatusStopped means the run was cancelled by the user
	RunStatusStopped RunStatus = "Stopped"

	// RunStatusCompleted means the run finished processing every file
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusError means the run aborted before processing could start
	RunStatusError RunStatus = "Error"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if the run is in an active state
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusScanning || rs == RunStatusOrganizing || rs == RunStatusStopping
}

// IsFinished returns true if the run is in a finished state (completed, stopped, or error)
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusStopped || rs == RunStatusError
}
