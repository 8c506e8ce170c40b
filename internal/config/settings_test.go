package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/fileorg/file-organizer/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSourceDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default falls back to the Downloads folder
	dir := settings.GetSourceDirectory()
	if dir == "" {
		t.Error("Source directory should not be empty")
	}

	customDir := "/custom/inbox"
	settings.SetSourceDirectory(customDir)

	if got := settings.GetSourceDirectory(); got != customDir {
		t.Errorf("Expected source directory %s, got %s", customDir, got)
	}
}

func TestDefaultMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.GetDefaultMode(); mode != model.ModeByType {
		t.Errorf("Expected default mode %s, got %s", model.ModeByType, mode)
	}

	settings.SetDefaultMode(model.ModeByName)
	if mode := settings.GetDefaultMode(); mode != model.ModeByName {
		t.Errorf("Expected mode %s, got %s", model.ModeByName, mode)
	}
}

func TestDefaultAction(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if action := settings.GetDefaultAction(); action != model.ActionMove {
		t.Errorf("Expected default action %s, got %s", model.ActionMove, action)
	}

	settings.SetDefaultAction(model.ActionCopy)
	if action := settings.GetDefaultAction(); action != model.ActionCopy {
		t.Errorf("Expected action %s, got %s", model.ActionCopy, action)
	}
}

func TestDefaultConflictPolicy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if policy := settings.GetDefaultConflictPolicy(); policy != model.ConflictRename {
		t.Errorf("Expected default policy %s, got %s", model.ConflictRename, policy)
	}

	settings.SetDefaultConflictPolicy(model.ConflictSkip)
	if policy := settings.GetDefaultConflictPolicy(); policy != model.ConflictSkip {
		t.Errorf("Expected policy %s, got %s", model.ConflictSkip, policy)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ar")
	if lang := settings.GetLanguage(); lang != "ar" {
		t.Errorf("Expected language ar, got %s", lang)
	}
}

func TestAutoOpenResult(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoOpenResult() {
		t.Error("Auto-open should default to true")
	}

	settings.SetAutoOpenResult(false)
	if settings.GetAutoOpenResult() {
		t.Error("Auto-open should be false after disabling")
	}
}
