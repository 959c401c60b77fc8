package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/orbitmarks/orbit/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// called after a confirmed save so the caller can apply the new values
	onSaved func()

	boardFileEntry    *widget.Entry
	orbitRadiusSlider *widget.Slider
	orbitRadiusLabel  *widget.Label
	logLevelSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
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
	sd.boardFileEntry = widget.NewEntry()
	sd.boardFileEntry.SetPlaceHolder("Board file path")

	browseBtn := widget.NewButton("Browse", sd.onBrowseBoardFile)
	boardFileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.boardFileEntry)

	sd.orbitRadiusLabel = widget.NewLabel("")
	sd.orbitRadiusSlider = widget.NewSlider(config.MinOrbitRadius, config.MaxOrbitRadius)
	sd.orbitRadiusSlider.Step = 10
	sd.orbitRadiusSlider.OnChanged = func(v float64) {
		sd.orbitRadiusLabel.SetText(strconv.Itoa(int(v)))
	}

	sd.logLevelSelect = widget.NewSelect([]string{"debug", "info", "warn", "error"}, nil)

	form := container.NewVBox(
		widget.NewLabel("Board Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Board File:"),
		boardFileRow,

		widget.NewLabel("Orbit Radius:"),
		container.NewBorder(nil, nil, nil, sd.orbitRadiusLabel, sd.orbitRadiusSlider),

		widget.NewSeparator(),

		widget.NewLabel("Log Level:"),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.boardFileEntry.SetText(sd.settings.GetBoardFile())
	sd.orbitRadiusSlider.SetValue(sd.settings.GetOrbitRadius())
	sd.orbitRadiusLabel.SetText(strconv.Itoa(int(sd.settings.GetOrbitRadius())))
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onBrowseBoardFile handles board file browsing
func (sd *SettingsDialog) onBrowseBoardFile() {
	dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		defer uri.Close()
		sd.boardFileEntry.SetText(uri.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.boardFileEntry.Text != "" {
		sd.settings.SetBoardFile(sd.boardFileEntry.Text)
	}

	sd.settings.SetOrbitRadius(sd.orbitRadiusSlider.Value)

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
