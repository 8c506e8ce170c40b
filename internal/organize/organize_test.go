package organize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fileorg/file-organizer/internal/model"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}

// snapshotTree collects relative path -> content for every regular file under root.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	snapshot := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		snapshot[rel] = string(content)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	return snapshot
}

func runEngine(t *testing.T, cfg Config) []model.Outcome {
	t.Helper()
	engine, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	outcomes, err := engine.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return outcomes
}

func requireFile(t *testing.T, path, content string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected file %s: %v", path, err)
	}
	if string(got) != content {
		t.Errorf("File %s content = %q, expected %q", path, got, content)
	}
}

func TestRun_TypeModeMove(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"photo.jpg":  "jpg-bytes",
		"report.pdf": "pdf-bytes",
		"movie.mp4":  "mp4-bytes",
	})

	outcomes := runEngine(t, validConfig(tempDir))

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		if outcome.Action != model.ActionMoved {
			t.Errorf("Outcome for %s = %s, expected Moved (%s)", outcome.SourcePath, outcome.Action, outcome.Detail)
		}
	}

	dest := filepath.Join(tempDir, DefaultDestName)
	requireFile(t, filepath.Join(dest, "Images", "photo.jpg"), "jpg-bytes")
	requireFile(t, filepath.Join(dest, "Documents", "report.pdf"), "pdf-bytes")
	requireFile(t, filepath.Join(dest, "Videos", "movie.mp4"), "mp4-bytes")

	// Originals are gone after a move.
	for _, name := range []string{"photo.jpg", "report.pdf", "movie.mp4"} {
		if _, err := os.Stat(filepath.Join(tempDir, name)); !os.IsNotExist(err) {
			t.Errorf("Source file %s should be gone after move", name)
		}
	}
}

func TestRun_TypeModeFallbackCategory(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"mystery.q2z": "x",
		"README":      "y",
	})

	runEngine(t, validConfig(tempDir))

	dest := filepath.Join(tempDir, DefaultDestName, "Others")
	requireFile(t, filepath.Join(dest, "mystery.q2z"), "x")
	requireFile(t, filepath.Join(dest, "README"), "y")
}

func TestRun_NameModeCopy(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"photo.jpg":  "jpg-bytes",
		"report.pdf": "pdf-bytes",
		"movie.mp4":  "mp4-bytes",
	})

	cfg := validConfig(tempDir)
	cfg.Mode = model.ModeByName
	cfg.Action = model.ActionCopy
	outcomes := runEngine(t, cfg)

	for _, outcome := range outcomes {
		if outcome.Action != model.ActionCopied {
			t.Errorf("Outcome for %s = %s, expected Copied", outcome.SourcePath, outcome.Action)
		}
	}

	dest := filepath.Join(tempDir, DefaultDestName)
	requireFile(t, filepath.Join(dest, "photo", "photo.jpg"), "jpg-bytes")
	requireFile(t, filepath.Join(dest, "report", "report.pdf"), "pdf-bytes")
	requireFile(t, filepath.Join(dest, "movie", "movie.mp4"), "mp4-bytes")

	// Originals stay in place after a copy.
	requireFile(t, filepath.Join(tempDir, "photo.jpg"), "jpg-bytes")
	requireFile(t, filepath.Join(tempDir, "report.pdf"), "pdf-bytes")
	requireFile(t, filepath.Join(tempDir, "movie.mp4"), "mp4-bytes")
}

func TestRun_NameModeSharedStem(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"report.docx": "docx-bytes",
		"report.pdf":  "pdf-bytes",
	})

	cfg := validConfig(tempDir)
	cfg.Mode = model.ModeByName
	runEngine(t, cfg)

	// Both land together in the same folder; same stem is not a conflict.
	folder := filepath.Join(tempDir, DefaultDestName, "report")
	requireFile(t, filepath.Join(folder, "report.docx"), "docx-bytes")
	requireFile(t, filepath.Join(folder, "report.pdf"), "pdf-bytes")
}

func TestRun_SortedOrder(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"zebra.txt": "z",
		"alpha.txt": "a",
		"mango.txt": "m",
	})

	outcomes := runEngine(t, validConfig(tempDir))

	for i := 1; i < len(outcomes); i++ {
		if outcomes[i-1].SourcePath >= outcomes[i].SourcePath {
			t.Errorf("Outcomes not sorted by source path: %q before %q",
				outcomes[i-1].SourcePath, outcomes[i].SourcePath)
		}
	}
}

func TestRun_RecursiveWalk(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"top.jpg":        "1",
		"nested/deep.md": "2",
	})

	// Non-recursive only sees direct children.
	cfg := validConfig(tempDir)
	cfg.Action = model.ActionCopy
	outcomes := runEngine(t, cfg)
	if len(outcomes) != 1 {
		t.Fatalf("Non-recursive run saw %d files, expected 1", len(outcomes))
	}

	// Recursive walks the whole subtree.
	cfg2 := validConfig(tempDir)
	cfg2.Action = model.ActionCopy
	cfg2.Recursive = true
	cfg2.Conflict = model.ConflictOverwrite
	outcomes = runEngine(t, cfg2)
	if len(outcomes) != 2 {
		t.Fatalf("Recursive run saw %d files, expected 2", len(outcomes))
	}
}

func TestRun_DestinationSubtreeExcluded(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"fresh.jpg": "new",
		DefaultDestName + "/Images/old.jpg": "already organized",
	})

	cfg := validConfig(tempDir)
	cfg.Recursive = true
	outcomes := runEngine(t, cfg)

	if len(outcomes) != 1 {
		t.Fatalf("Expected 1 outcome (destination subtree excluded), got %d", len(outcomes))
	}
	if filepath.Base(outcomes[0].SourcePath) != "fresh.jpg" {
		t.Errorf("Unexpected file organized: %s", outcomes[0].SourcePath)
	}

	// Prior output is untouched.
	requireFile(t, filepath.Join(tempDir, DefaultDestName, "Images", "old.jpg"), "already organized")
}

func TestRun_DryRunLeavesFilesystemUntouched(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"photo.jpg":  "jpg-bytes",
		"report.pdf": "pdf-bytes",
	})

	before := snapshotTree(t, tempDir)

	cfg := validConfig(tempDir)
	cfg.DryRun = true
	outcomes := runEngine(t, cfg)

	after := snapshotTree(t, tempDir)
	if len(before) != len(after) {
		t.Fatalf("Dry run changed the file count: %d -> %d", len(before), len(after))
	}
	for rel, content := range before {
		if after[rel] != content {
			t.Errorf("Dry run changed %s", rel)
		}
	}

	for _, outcome := range outcomes {
		if outcome.Action != model.ActionSimulated {
			t.Errorf("Dry run outcome = %s, expected Simulated", outcome.Action)
		}
		if outcome.DestinationPath == "" {
			t.Error("Simulated outcome must carry the computed destination")
		}
	}
}

func TestRun_DryRunMatchesRealDestinations(t *testing.T) {
	// Two same-named files colliding on one destination: the dry run must
	// resolve the second to "(1)" exactly like the real run would.
	setup := func(t *testing.T) string {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"a/photo.jpg": "first",
			"b/photo.jpg": "second",
		})
		return dir
	}

	dryDir := setup(t)
	cfg := validConfig(dryDir)
	cfg.Recursive = true
	cfg.DryRun = true
	dryOutcomes := runEngine(t, cfg)

	realDir := setup(t)
	cfgReal := validConfig(realDir)
	cfgReal.Recursive = true
	realOutcomes := runEngine(t, cfgReal)

	if len(dryOutcomes) != len(realOutcomes) {
		t.Fatalf("Outcome counts differ: dry %d, real %d", len(dryOutcomes), len(realOutcomes))
	}
	for i := range dryOutcomes {
		dryRel, _ := filepath.Rel(dryDir, dryOutcomes[i].DestinationPath)
		realRel, _ := filepath.Rel(realDir, realOutcomes[i].DestinationPath)
		if dryRel != realRel {
			t.Errorf("Destination %d differs: dry %q, real %q", i, dryRel, realRel)
		}
	}
}

func TestRun_SkipPolicyIdempotence(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"photo.jpg":  "jpg-bytes",
		"report.pdf": "pdf-bytes",
	})

	cfg := validConfig(tempDir)
	cfg.Action = model.ActionCopy
	cfg.Conflict = model.ConflictSkip

	first := runEngine(t, cfg)
	for _, outcome := range first {
		if outcome.Action != model.ActionCopied {
			t.Errorf("First run outcome = %s, expected Copied", outcome.Action)
		}
	}

	// Second run converges: every file already has its destination.
	second := runEngine(t, cfg)
	if len(second) != len(first) {
		t.Fatalf("Second run saw %d files, expected %d", len(second), len(first))
	}
	for _, outcome := range second {
		if outcome.Action != model.ActionSkipped {
			t.Errorf("Second run outcome = %s, expected Skipped", outcome.Action)
		}
	}
}

func TestRun_SkipLeavesOccupantUntouched(t *testing.T) {
	tempDir := t.TempDir()
	occupant := filepath.Join(tempDir, DefaultDestName, "Images", "photo.jpg")
	writeFiles(t, tempDir, map[string]string{
		"photo.jpg": "incoming",
		DefaultDestName + "/Images/photo.jpg": "original occupant",
	})

	cfg := validConfig(tempDir)
	cfg.Conflict = model.ConflictSkip
	outcomes := runEngine(t, cfg)

	if len(outcomes) != 1 || outcomes[0].Action != model.ActionSkipped {
		t.Fatalf("Expected a single Skipped outcome, got %+v", outcomes)
	}
	requireFile(t, occupant, "original occupant")
	requireFile(t, filepath.Join(tempDir, "photo.jpg"), "incoming")
}

func TestRun_OverwriteReplacesOccupant(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"photo.jpg": "incoming",
		DefaultDestName + "/Images/photo.jpg": "old content that must not survive",
	})

	cfg := validConfig(tempDir)
	cfg.Conflict = model.ConflictOverwrite
	outcomes := runEngine(t, cfg)

	if len(outcomes) != 1 || outcomes[0].Action != model.ActionMoved {
		t.Fatalf("Expected a single Moved outcome, got %+v", outcomes)
	}
	requireFile(t, filepath.Join(tempDir, DefaultDestName, "Images", "photo.jpg"), "incoming")
}

func TestRun_RenameConflict(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"photo.jpg": "incoming",
		DefaultDestName + "/Images/photo.jpg": "pre-existing",
	})

	outcomes := runEngine(t, validConfig(tempDir))

	if len(outcomes) != 1 || outcomes[0].Action != model.ActionMoved {
		t.Fatalf("Expected a single Moved outcome, got %+v", outcomes)
	}

	// New file lands beside the occupant; the occupant is unchanged.
	requireFile(t, filepath.Join(tempDir, DefaultDestName, "Images", "photo (1).jpg"), "incoming")
	requireFile(t, filepath.Join(tempDir, DefaultDestName, "Images", "photo.jpg"), "pre-existing")
}

func TestRun_PerFileFailureDoesNotAbort(t *testing.T) {
	tempDir := t.TempDir()
	// A regular file occupying the destination root name makes every
	// directory creation fail, one Failed outcome per file.
	writeFiles(t, tempDir, map[string]string{
		DefaultDestName: "i am a file, not a folder",
		"a.jpg":         "1",
		"b.pdf":         "2",
	})

	outcomes := runEngine(t, validConfig(tempDir))

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		if outcome.Action != model.ActionFailed {
			t.Errorf("Outcome for %s = %s, expected Failed", outcome.SourcePath, outcome.Action)
		}
		if outcome.Detail == "" {
			t.Error("Failed outcome must carry an error detail")
		}
	}
}

func TestRun_CancellationBetweenFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"a.txt": "1",
		"b.txt": "2",
		"c.txt": "3",
	})

	engine, err := New(validConfig(tempDir))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	outcomes, runErr := engine.Run(ctx, func(model.Outcome) {
		cancel() // request stop after the first file
	})

	if runErr != context.Canceled {
		t.Errorf("Run error = %v, expected context.Canceled", runErr)
	}
	if len(outcomes) != 1 {
		t.Errorf("Expected 1 outcome before the stop, got %d", len(outcomes))
	}
}

func TestRun_SinkOrderMatchesReturn(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"a.txt": "1",
		"b.txt": "2",
	})

	engine, err := New(validConfig(tempDir))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var streamed []model.Outcome
	outcomes, runErr := engine.Run(context.Background(), func(o model.Outcome) {
		streamed = append(streamed, o)
	})
	if runErr != nil {
		t.Fatalf("Run failed: %v", runErr)
	}

	if len(streamed) != len(outcomes) {
		t.Fatalf("Sink saw %d outcomes, return had %d", len(streamed), len(outcomes))
	}
	for i := range outcomes {
		if streamed[i] != outcomes[i] {
			t.Errorf("Sink outcome %d differs from returned outcome", i)
		}
	}
}
