package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fileorg/file-organizer/internal/config"
	"github.com/fileorg/file-organizer/internal/model"
	"github.com/fileorg/file-organizer/internal/organize"
	"github.com/fileorg/file-organizer/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	runner       organize.Runner

	sourceEntry    *widget.Entry
	browseBtn      *widget.Button
	modeSelect     *widget.Select
	actionSelect   *widget.Select
	conflictSelect *widget.Select
	recursiveCheck *widget.Check
	dryRunCheck    *widget.Check
	runBtn         *widget.Button
	cancelBtn      *widget.Button
	openBtn        *widget.Button
	settingsBtn    *widget.Button
	progress       *widget.ProgressBar
	statusLabel    *widget.Label

	sourceLabel   *widget.Label
	modeLabel     *widget.Label
	actionLabel   *widget.Label
	conflictLabel *widget.Label
	logLabel      *widget.Label

	logLines binding.StringList
	logList  *widget.List

	activeRunID string
	lastRun     *model.OrganizeRun
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, runner organize.Runner) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		runner:       runner,
		logLines:     binding.NewStringList(),
	}

	log.Printf("RootUI initialized with organize service: %v", ui.runner != nil)

	ui.runner.SetUpdateCallback(ui.onRunUpdate)
	ui.runner.SetOutcomeCallback(ui.onOutcome)

	ui.setupUI()
	ui.refreshTexts()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.sourceEntry = widget.NewEntry()
	ui.sourceEntry.SetText(ui.settings.GetSourceDirectory())
	ui.browseBtn = widget.NewButton("", ui.onBrowse)

	ui.modeSelect = widget.NewSelect([]string{string(model.ModeByType), string(model.ModeByName)}, nil)
	ui.modeSelect.SetSelected(string(ui.settings.GetDefaultMode()))

	ui.actionSelect = widget.NewSelect([]string{string(model.ActionMove), string(model.ActionCopy)}, nil)
	ui.actionSelect.SetSelected(string(ui.settings.GetDefaultAction()))

	ui.conflictSelect = widget.NewSelect([]string{
		string(model.ConflictSkip),
		string(model.ConflictOverwrite),
		string(model.ConflictRename),
	}, nil)
	ui.conflictSelect.SetSelected(string(ui.settings.GetDefaultConflictPolicy()))

	ui.recursiveCheck = widget.NewCheck("", nil)
	ui.dryRunCheck = widget.NewCheck("", nil)

	ui.runBtn = widget.NewButton("", ui.onRun)
	ui.runBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton("", ui.onCancel)
	ui.cancelBtn.Disable()
	ui.openBtn = widget.NewButton("", ui.onOpenResult)
	ui.openBtn.Disable()
	ui.settingsBtn = widget.NewButton("", ui.onSettings)

	ui.progress = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("")

	ui.sourceLabel = widget.NewLabel("")
	ui.modeLabel = widget.NewLabel("")
	ui.actionLabel = widget.NewLabel("")
	ui.conflictLabel = widget.NewLabel("")
	ui.logLabel = widget.NewLabel("")

	ui.logList = widget.NewListWithData(ui.logLines,
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)

	sourceRow := container.NewBorder(nil, nil, ui.sourceLabel, ui.browseBtn, ui.sourceEntry)
	optionsRow := container.NewHBox(
		ui.modeLabel, ui.modeSelect,
		ui.actionLabel, ui.actionSelect,
		ui.conflictLabel, ui.conflictSelect,
	)
	checksRow := container.NewHBox(ui.recursiveCheck, ui.dryRunCheck)
	buttonsRow := container.NewHBox(ui.runBtn, ui.cancelBtn, ui.openBtn, ui.settingsBtn)

	top := container.NewVBox(
		sourceRow,
		optionsRow,
		checksRow,
		buttonsRow,
		ui.progress,
		ui.statusLabel,
		ui.logLabel,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.logList))
}

// refreshTexts re-applies localized strings to every widget
func (ui *RootUI) refreshTexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.sourceLabel.SetText(ui.localization.GetText(KeySourceFolder))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.modeLabel.SetText(ui.localization.GetText(KeyMode))
	ui.actionLabel.SetText(ui.localization.GetText(KeyAction))
	ui.conflictLabel.SetText(ui.localization.GetText(KeyConflictPolicy))
	ui.recursiveCheck.Text = ui.localization.GetText(KeyRecursive)
	ui.recursiveCheck.Refresh()
	ui.dryRunCheck.Text = ui.localization.GetText(KeyDryRun)
	ui.dryRunCheck.Refresh()
	ui.runBtn.SetText(ui.localization.GetText(KeyRun))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpenResult))
	ui.settingsBtn.SetText(ui.localization.GetText(KeySettings))
	ui.logLabel.SetText(ui.localization.GetText(KeyLogOutput))
}

// onBrowse handles source folder selection
func (ui *RootUI) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.sourceEntry.SetText(uri.Path())
	}, ui.window)
}

// onRun validates the inputs and launches a run
func (ui *RootUI) onRun() {
	source := ui.sourceEntry.Text
	if source == "" {
		dialog.ShowInformation(
			ui.localization.GetText(KeyError),
			ui.localization.GetText(KeyPleaseSelectSource),
			ui.window,
		)
		return
	}

	if _, active := ui.runner.ActiveRun(); active {
		dialog.ShowInformation(
			ui.localization.GetText(KeyError),
			ui.localization.GetText(KeyRunInProgress),
			ui.window,
		)
		return
	}

	cfg := organize.Config{
		SourceRoot: source,
		Mode:       model.Mode(ui.modeSelect.Selected),
		Action:     model.ActionKind(ui.actionSelect.Selected),
		Conflict:   model.ConflictPolicy(ui.conflictSelect.Selected),
		Recursive:  ui.recursiveCheck.Checked,
		DryRun:     ui.dryRunCheck.Checked,
	}

	run, err := ui.runner.Start(cfg)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.settings.SetSourceDirectory(source)
	ui.activeRunID = run.ID
	ui.lastRun = run
	_ = ui.logLines.Set(nil)
	ui.progress.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyStarting))
	ui.runBtn.Disable()
	ui.cancelBtn.Enable()
	ui.openBtn.Disable()
}

// onCancel requests a clean stop of the active run
func (ui *RootUI) onCancel() {
	if ui.activeRunID == "" {
		return
	}
	if err := ui.runner.Cancel(ui.activeRunID); err != nil {
		log.Printf("Failed to cancel run %s: %v", ui.activeRunID, err)
	}
}

// onOpenResult reveals the organized folder in the system file manager
func (ui *RootUI) onOpenResult() {
	if ui.lastRun == nil {
		return
	}
	if err := platform.OpenFolderInManager(ui.lastRun.DestRoot); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

// onSettings shows the settings dialog
func (ui *RootUI) onSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.refreshTexts).Show()
}

// onOutcome appends one outcome line to the log area. Called from the run
// goroutine, so the UI update is marshalled via fyne.Do.
func (ui *RootUI) onOutcome(runID string, outcome model.Outcome) {
	if runID != ui.activeRunID {
		return
	}
	fyne.Do(func() {
		_ = ui.logLines.Append(outcome.DisplayLine())
		ui.logList.ScrollToBottom()
	})
}

// onRunUpdate reflects run progress in the status row. Called from the run
// goroutine, so the UI update is marshalled via fyne.Do.
func (ui *RootUI) onRunUpdate(run *model.OrganizeRun) {
	if run.ID != ui.activeRunID {
		return
	}
	fyne.Do(func() {
		ui.progress.SetValue(run.Progress)
		ui.statusLabel.SetText(ui.statusText(run))

		if !run.Status.IsFinished() {
			return
		}

		ui.runBtn.Enable()
		ui.cancelBtn.Disable()
		if !ui.dryRunCheck.Checked {
			ui.openBtn.Enable()
		}

		if run.Status == model.RunStatusCompleted && !ui.dryRunCheck.Checked && ui.settings.GetAutoOpenResult() {
			if err := platform.OpenFolderInManager(run.DestRoot); err != nil {
				log.Printf("Failed to open result folder: %v", err)
			}
		}
	})
}

// statusText renders the status row for a run
func (ui *RootUI) statusText(run *model.OrganizeRun) string {
	switch run.Status {
	case model.RunStatusCompleted:
		return fmt.Sprintf("%s (%d/%d)", ui.localization.GetText(KeyDone), run.Processed, run.Total)
	case model.RunStatusStopped:
		return fmt.Sprintf("%s (%d/%d)", ui.localization.GetText(KeyStopped), run.Processed, run.Total)
	case model.RunStatusError:
		return fmt.Sprintf("%s: %s", ui.localization.GetText(KeyError), run.LastError)
	default:
		return fmt.Sprintf("%s %d/%d", run.Status, run.Processed, run.Total)
	}
}
