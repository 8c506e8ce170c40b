package model

import (
	"fmt"
	"strings"
)

// Action identifies what happened to a single file.
type Action string

const (
	// ActionMoved means the file was relocated to its destination
	ActionMoved Action = "Moved"

	// ActionCopied means the file was duplicated to its destination
	ActionCopied Action = "Copied"

	// ActionSkipped means the destination was occupied and the file was left alone
	ActionSkipped Action = "Skipped"

	// ActionSimulated means a dry run computed the destination without touching anything
	ActionSimulated Action = "Simulated"

	// ActionFailed means the move or copy was attempted and failed
	ActionFailed Action = "Failed"
)

// String returns the string representation of Action.
func (a Action) String() string {
	return string(a)
}

// Outcome records the result of processing one file. The ordered sequence of
// outcomes is the engine's only output.
type Outcome struct {
	SourcePath      string
	DestinationPath string // proposed or final destination; informational for skips
	Action          Action
	Detail          string // reason for Skipped and Failed outcomes
}

// DisplayLine renders the outcome as a single human-readable log line.
func (o Outcome) DisplayLine() string {
	label := strings.ToUpper(string(o.Action))
	switch o.Action {
	case ActionSkipped, ActionFailed:
		return fmt.Sprintf("%s %q: %s", label, o.SourcePath, o.Detail)
	default:
		return fmt.Sprintf("%s %q -> %q", label, o.SourcePath, o.DestinationPath)
	}
}
