package organize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fileorg/file-organizer/internal/classify"
	"github.com/fileorg/file-organizer/internal/model"
)

// DefaultDestName is the destination folder created under the source root.
const DefaultDestName = "Organized_Files"

// Config carries the parameters of one organize pass. It is read-only once
// handed to New.
type Config struct {
	SourceRoot string
	Mode       model.Mode
	Action     model.ActionKind
	Conflict   model.ConflictPolicy
	Recursive  bool
	DryRun     bool
	Table      *classify.Table // nil means the built-in defaults
	DestName   string          // destination folder name, DefaultDestName if empty
}

// Engine processes files for a single validated configuration.
type Engine struct {
	cfg      Config
	table    *classify.Table
	destRoot string
	claimed  map[string]bool // destinations produced earlier in this run
}

// New validates the configuration and returns an engine ready to run.
// Configuration errors surface here, before any file is touched.
func New(cfg Config) (*Engine, error) {
	if cfg.SourceRoot == "" {
		return nil, fmt.Errorf("source folder is required")
	}

	abs, err := filepath.Abs(cfg.SourceRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve source folder: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("source folder %q: %w", cfg.SourceRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %q is not a directory", cfg.SourceRoot)
	}
	cfg.SourceRoot = abs

	if _, err := model.ParseMode(string(cfg.Mode)); err != nil {
		return nil, err
	}
	if _, err := model.ParseActionKind(string(cfg.Action)); err != nil {
		return nil, err
	}
	if _, err := model.ParseConflictPolicy(string(cfg.Conflict)); err != nil {
		return nil, err
	}

	table := cfg.Table
	if table == nil {
		table = classify.DefaultTable()
	}

	destName := cfg.DestName
	if destName == "" {
		destName = DefaultDestName
	}

	return &Engine{
		cfg:      cfg,
		table:    table,
		destRoot: filepath.Join(abs, destName),
	}, nil
}

// SourceRoot returns the resolved absolute source directory.
func (e *Engine) SourceRoot() string {
	return e.cfg.SourceRoot
}

// DestinationRoot returns the absolute destination root for this pass.
func (e *Engine) DestinationRoot() string {
	return e.destRoot
}
