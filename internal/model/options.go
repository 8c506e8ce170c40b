package model

import "fmt"

// Mode selects how destination folders are derived.
type Mode string

const (
	// ModeByType groups files into category folders via the classification table
	ModeByType Mode = "type"

	// ModeByName gives every file a folder named after its stem
	ModeByName Mode = "name"
)

// ParseMode validates a mode string from a flag or widget.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeByType, ModeByName:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (expected \"type\" or \"name\")", s)
}

// ActionKind selects whether files are moved or copied.
type ActionKind string

const (
	// ActionMove relocates files into the destination tree
	ActionMove ActionKind = "move"

	// ActionCopy duplicates files, leaving the originals in place
	ActionCopy ActionKind = "copy"
)

// ParseActionKind validates an action string from a flag or widget.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(s) {
	case ActionMove, ActionCopy:
		return ActionKind(s), nil
	}
	return "", fmt.Errorf("unknown action %q (expected \"move\" or \"copy\")", s)
}

// ConflictPolicy decides what happens when a destination path is occupied.
type ConflictPolicy string

const (
	// ConflictSkip leaves both the source and the occupant untouched
	ConflictSkip ConflictPolicy = "skip"

	// ConflictOverwrite replaces the occupant with the source file
	ConflictOverwrite ConflictPolicy = "overwrite"

	// ConflictRename appends an incrementing " (N)" suffix before the extension
	ConflictRename ConflictPolicy = "rename"
)

// ParseConflictPolicy validates a conflict policy string from a flag or widget.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case ConflictSkip, ConflictOverwrite, ConflictRename:
		return ConflictPolicy(s), nil
	}
	return "", fmt.Errorf("unknown conflict policy %q (expected \"skip\", \"overwrite\" or \"rename\")", s)
}
