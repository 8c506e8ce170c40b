package organize

import (
	"path/filepath"

	"github.com/fileorg/file-organizer/internal/model"
	"github.com/fileorg/file-organizer/internal/platform"
)

// place applies or simulates the configured action for one file whose
// conflict resolution already produced a final destination.
func (e *Engine) place(entry model.FileEntry, final string) model.Outcome {
	if e.cfg.DryRun {
		return model.Outcome{
			SourcePath:      entry.Path,
			DestinationPath: final,
			Action:          model.ActionSimulated,
		}
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(final)); err != nil {
		return failedOutcome(entry.Path, final, err)
	}

	switch e.cfg.Action {
	case model.ActionCopy:
		if err := platform.CopyFile(entry.Path, final); err != nil {
			return failedOutcome(entry.Path, final, err)
		}
		return model.Outcome{
			SourcePath:      entry.Path,
			DestinationPath: final,
			Action:          model.ActionCopied,
		}
	default: // model.ActionMove, validated in New
		if err := platform.MoveFile(entry.Path, final); err != nil {
			return failedOutcome(entry.Path, final, err)
		}
		return model.Outcome{
			SourcePath:      entry.Path,
			DestinationPath: final,
			Action:          model.ActionMoved,
		}
	}
}

func failedOutcome(source, destination string, err error) model.Outcome {
	return model.Outcome{
		SourcePath:      source,
		DestinationPath: destination,
		Action:          model.ActionFailed,
		Detail:          err.Error(),
	}
}
