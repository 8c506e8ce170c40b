package organize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fileorg/file-organizer/internal/classify"
	"github.com/fileorg/file-organizer/internal/model"
)

// Files enumerates the regular files to organize, sorted by absolute path so
// every run processes them in the same order. The destination root and its
// descendants are excluded, so re-running never re-organizes prior output.
// Directories are never candidates.
func (e *Engine) Files() ([]model.FileEntry, error) {
	var entries []model.FileEntry

	if e.cfg.Recursive {
		err := filepath.WalkDir(e.cfg.SourceRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == e.cfg.SourceRoot {
					return err
				}
				// Unreadable subtree: leave it alone, keep going.
				return nil
			}
			if d.IsDir() {
				if path == e.destRoot {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			entries = append(entries, model.NewFileEntry(path))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan source folder: %w", err)
		}
	} else {
		dirents, err := os.ReadDir(e.cfg.SourceRoot)
		if err != nil {
			return nil, fmt.Errorf("scan source folder: %w", err)
		}
		for _, d := range dirents {
			if !d.Type().IsRegular() {
				continue
			}
			entries = append(entries, model.NewFileEntry(filepath.Join(e.cfg.SourceRoot, d.Name())))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// Run enumerates the source and processes every file, streaming each outcome
// to sink as it is produced. It returns the accumulated outcomes; the error
// is the enumeration failure or the context error when the run was cancelled
// between files.
func (e *Engine) Run(ctx context.Context, sink Sink) ([]model.Outcome, error) {
	entries, err := e.Files()
	if err != nil {
		return nil, err
	}

	outcomes := e.Process(ctx, entries, sink)
	if ctx != nil && ctx.Err() != nil {
		return outcomes, ctx.Err()
	}
	return outcomes, nil
}

// Process runs classification, conflict resolution and placement for each
// entry in order. Files are handled one at a time; cancellation is honored
// between files, never mid-file. Per-file failures are recorded and never
// abort the pass.
func (e *Engine) Process(ctx context.Context, entries []model.FileEntry, sink Sink) []model.Outcome {
	e.claimed = make(map[string]bool)

	outcomes := make([]model.Outcome, 0, len(entries))
	for _, entry := range entries {
		if ctx != nil && ctx.Err() != nil {
			break
		}

		outcome := e.processOne(entry)
		outcomes = append(outcomes, outcome)
		if sink != nil {
			sink(outcome)
		}
	}
	return outcomes
}

func (e *Engine) processOne(entry model.FileEntry) model.Outcome {
	folder := classify.FolderFor(entry, e.cfg.Mode, e.table)
	proposed := filepath.Join(e.destRoot, folder, entry.Name)

	final, skip, err := e.resolveConflict(proposed)
	if err != nil {
		return failedOutcome(entry.Path, proposed, err)
	}
	if skip {
		return model.Outcome{
			SourcePath:      entry.Path,
			DestinationPath: proposed,
			Action:          model.ActionSkipped,
			Detail:          "destination already exists",
		}
	}

	outcome := e.place(entry, final)
	if outcome.Action != model.ActionFailed {
		e.claimed[final] = true
	}
	return outcome
}
