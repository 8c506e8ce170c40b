package config

import (
	"fyne.io/fyne/v2"

	"github.com/fileorg/file-organizer/internal/model"
	"github.com/fileorg/file-organizer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeySourceDir      = "source_directory"
	KeyLanguage       = "app_language"
	KeyDefaultMode    = "default_mode"
	KeyDefaultAction  = "default_action"
	KeyDefaultPolicy  = "default_conflict_policy"
	KeyAutoOpenResult = "auto_open_on_complete"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultAutoOpenResult = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSourceDirectory returns the last used source directory, falling back to
// the user's Downloads folder.
func (s *Settings) GetSourceDirectory() string {
	dir := s.app.Preferences().String(KeySourceDir)
	if dir == "" {
		defaultDir, err := platform.DefaultSourceDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetSourceDirectory remembers the source directory for the next session
func (s *Settings) SetSourceDirectory(dir string) {
	s.app.Preferences().SetString(KeySourceDir, dir)
}

// GetDefaultMode returns the configured default organize mode
func (s *Settings) GetDefaultMode() model.Mode {
	mode, err := model.ParseMode(s.app.Preferences().String(KeyDefaultMode))
	if err != nil {
		return model.ModeByType
	}
	return mode
}

// SetDefaultMode sets the default organize mode
func (s *Settings) SetDefaultMode(mode model.Mode) {
	s.app.Preferences().SetString(KeyDefaultMode, string(mode))
}

// GetDefaultAction returns the configured default action
func (s *Settings) GetDefaultAction() model.ActionKind {
	action, err := model.ParseActionKind(s.app.Preferences().String(KeyDefaultAction))
	if err != nil {
		return model.ActionMove
	}
	return action
}

// SetDefaultAction sets the default action
func (s *Settings) SetDefaultAction(action model.ActionKind) {
	s.app.Preferences().SetString(KeyDefaultAction, string(action))
}

// GetDefaultConflictPolicy returns the configured default conflict policy
func (s *Settings) GetDefaultConflictPolicy() model.ConflictPolicy {
	policy, err := model.ParseConflictPolicy(s.app.Preferences().String(KeyDefaultPolicy))
	if err != nil {
		return model.ConflictRename
	}
	return policy
}

// SetDefaultConflictPolicy sets the default conflict policy
func (s *Settings) SetDefaultConflictPolicy(policy model.ConflictPolicy) {
	s.app.Preferences().SetString(KeyDefaultPolicy, string(policy))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoOpenResult returns whether to open the organized folder when a run completes
func (s *Settings) GetAutoOpenResult() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenResult, DefaultAutoOpenResult)
}

// SetAutoOpenResult sets whether to open the organized folder when a run completes
func (s *Settings) SetAutoOpenResult(autoOpen bool) {
	s.app.Preferences().SetBool(KeyAutoOpenResult, autoOpen)
}
