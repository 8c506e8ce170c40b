package organize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fileorg/file-organizer/internal/model"
)

// renameProbeLimit bounds the rename suffix search. Hitting it means the
// destination folder holds that many same-named files already; the file is
// reported as failed rather than looping forever.
const renameProbeLimit = 10000

var errResolutionExhausted = errors.New("no free rename candidate within probe limit")

// resolveConflict decides the final destination for a proposed path.
// skip=true means the policy is Skip and the path is occupied; the executor
// must not touch the file. Destinations produced earlier in the same run
// count as occupied so that dry runs resolve exactly like real runs.
func (e *Engine) resolveConflict(proposed string) (final string, skip bool, err error) {
	occupied, err := e.occupied(proposed)
	if err != nil {
		return "", false, err
	}
	if !occupied {
		return proposed, false, nil
	}

	switch e.cfg.Conflict {
	case model.ConflictSkip:
		return "", true, nil
	case model.ConflictOverwrite:
		return proposed, false, nil
	default: // model.ConflictRename, validated in New
		return e.renameCandidate(proposed)
	}
}

// renameCandidate probes "name (1).ext", "name (2).ext", ... until a free
// path is found. Deterministic for a given filesystem state.
func (e *Engine) renameCandidate(proposed string) (string, bool, error) {
	dir := filepath.Dir(proposed)
	base := filepath.Base(proposed)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)

	for i := 1; i <= renameProbeLimit; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		occupied, err := e.occupied(candidate)
		if err != nil {
			return "", false, err
		}
		if !occupied {
			return candidate, false, nil
		}
	}

	return "", false, errResolutionExhausted
}

// occupied reports whether a destination path is taken, either on disk or by
// an earlier file of the current run.
func (e *Engine) occupied(path string) (bool, error) {
	if e.claimed[path] {
		return true, nil
	}
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
