package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fileorg/file-organizer/internal/config"
	"github.com/fileorg/file-organizer/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	actionSelect   *widget.Select
	conflictSelect *widget.Select
	autoOpenCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved is invoked after
// the settings have been persisted, so the caller can refresh its texts.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{"system"}
	languageLabels := sd.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	languageOptions = append(languageOptions, codes...)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Default action and conflict policy for new runs
	sd.actionSelect = widget.NewSelect([]string{string(model.ActionMove), string(model.ActionCopy)}, nil)
	sd.conflictSelect = widget.NewSelect([]string{
		string(model.ConflictSkip),
		string(model.ConflictOverwrite),
		string(model.ConflictRename),
	}, nil)

	sd.autoOpenCheck = widget.NewCheck(sd.localization.GetText(KeyAutoOpen), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyDefaultAction)+":"),
		sd.actionSelect,

		widget.NewLabel(sd.localization.GetText(KeyDefaultConflict)+":"),
		sd.conflictSelect,

		widget.NewSeparator(),
		sd.autoOpenCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.actionSelect.SetSelected(string(sd.settings.GetDefaultAction()))
	sd.conflictSelect.SetSelected(string(sd.settings.GetDefaultConflictPolicy()))
	sd.autoOpenCheck.SetChecked(sd.settings.GetAutoOpenResult())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.localization.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.actionSelect.Selected != "" {
		sd.settings.SetDefaultAction(model.ActionKind(sd.actionSelect.Selected))
	}

	if sd.conflictSelect.Selected != "" {
		sd.settings.SetDefaultConflictPolicy(model.ConflictPolicy(sd.conflictSelect.Selected))
	}

	sd.settings.SetAutoOpenResult(sd.autoOpenCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
