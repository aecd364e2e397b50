package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/galaview/gala-presenter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// OnSaved runs after settings were saved
	OnSaved func()

	// UI components
	sheetIDEntry   *widget.Entry
	refreshEntry   *widget.Entry
	layoutSelect   *widget.Select
	languageSelect *widget.Select
	assetsDirEntry *widget.Entry
	snapshotEntry  *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
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
	l := sd.localization

	sd.sheetIDEntry = widget.NewEntry()
	sd.sheetIDEntry.SetPlaceHolder(config.DefaultSheetID)

	sd.refreshEntry = widget.NewEntry()
	sd.refreshEntry.SetPlaceHolder("5-3600")

	layoutOptions := []string{}
	for _, mode := range sd.settings.GetLayoutModeOptions() {
		layoutOptions = append(layoutOptions, string(mode))
	}
	sd.layoutSelect = widget.NewSelect(layoutOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.assetsDirEntry = widget.NewEntry()
	sd.assetsDirEntry.SetPlaceHolder(config.DefaultAssetsDir)

	sd.snapshotEntry = widget.NewEntry()
	snapshotRow := container.NewBorder(nil, nil, nil,
		widget.NewButton("…", sd.onBrowseSnapshot), sd.snapshotEntry)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeySheetID)+":"),
		sd.sheetIDEntry,

		widget.NewLabel(l.GetText(KeyRefreshInterval)+":"),
		sd.refreshEntry,

		widget.NewLabel(l.GetText(KeyLayoutMode)+":"),
		sd.layoutSelect,

		widget.NewLabel(l.GetText(KeyAssetsDirectory)+":"),
		sd.assetsDirEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeySnapshotPath)+":"),
		snapshotRow,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.sheetIDEntry.SetText(sd.settings.GetSheetID())
	sd.refreshEntry.SetText(strconv.Itoa(sd.settings.GetRefreshInterval()))
	sd.layoutSelect.SetSelected(string(sd.settings.GetLayoutMode()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.assetsDirEntry.SetText(sd.settings.GetAssetsDir())
	sd.snapshotEntry.SetText(sd.settings.GetSnapshotPath())
}

// onBrowseSnapshot handles snapshot file browsing
func (sd *SettingsDialog) onBrowseSnapshot() {
	dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		defer uri.Close()
		sd.snapshotEntry.SetText(uri.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.sheetIDEntry.Text != "" {
		sd.settings.SetSheetID(sd.sheetIDEntry.Text)
	}

	if sd.refreshEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.refreshEntry.Text); err == nil {
			sd.settings.SetRefreshInterval(seconds)
		}
	}

	if sd.layoutSelect.Selected != "" {
		sd.settings.SetLayoutMode(config.LayoutMode(sd.layoutSelect.Selected))
	}

	if sd.assetsDirEntry.Text != "" {
		sd.settings.SetAssetsDir(sd.assetsDirEntry.Text)
	}

	// An empty snapshot path is meaningful, it turns offline mode off
	sd.settings.SetSnapshotPath(sd.snapshotEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.localization.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.OnSaved != nil {
		sd.OnSaved()
	}
}
