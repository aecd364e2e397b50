package config

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// LayoutMode selects which deck shape a deployment presents
type LayoutMode string

const (
	// LayoutGala is the kind/olympiad hierarchy deck
	LayoutGala LayoutMode = "gala"

	// LayoutContest is the flat contest/winners deck
	LayoutContest LayoutMode = "contest"
)

// Settings keys for Fyne preferences
const (
	KeySheetID         = "sheet_id"
	KeyRefreshInterval = "refresh_interval_seconds"
	KeyLanguage        = "app_language"
	KeyLayoutMode      = "layout_mode"
	KeyAssetsDir       = "assets_directory"
	KeySnapshotPath    = "snapshot_path"
	KeyExportDir       = "export_directory"
)

// Default values
const (
	DefaultSheetID         = "1WfKruLD8xTsUVhsjvnmtrJHjttR9jJF_Qopizn9u6aM"
	DefaultRefreshInterval = 10
	DefaultLanguage        = "pl"
	DefaultLayoutMode      = LayoutGala
	DefaultAssetsDir       = "animations"
	DefaultExportDir       = "export"
)

// Refresh interval bounds in seconds
const (
	MinRefreshInterval = 5
	MaxRefreshInterval = 3600
)

// sheetURLFormat builds the gviz JSON export endpoint for a sheet
const sheetURLFormat = "https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSheetID returns the configured spreadsheet ID
func (s *Settings) GetSheetID() string {
	id := s.app.Preferences().String(KeySheetID)
	if id == "" {
		s.SetSheetID(DefaultSheetID)
		return DefaultSheetID
	}
	return id
}

// SetSheetID sets the spreadsheet ID
func (s *Settings) SetSheetID(id string) {
	s.app.Preferences().SetString(KeySheetID, id)
}

// SheetURL returns the gviz JSON endpoint for the configured sheet
func (s *Settings) SheetURL() string {
	return fmt.Sprintf(sheetURLFormat, s.GetSheetID())
}

// GetRefreshInterval returns the refresh interval in seconds
func (s *Settings) GetRefreshInterval() int {
	value := s.app.Preferences().Int(KeyRefreshInterval)
	if value <= 0 {
		s.SetRefreshInterval(DefaultRefreshInterval)
		return DefaultRefreshInterval
	}
	return value
}

// SetRefreshInterval sets the refresh interval, clamped to sane bounds
func (s *Settings) SetRefreshInterval(seconds int) {
	if seconds < MinRefreshInterval {
		seconds = MinRefreshInterval
	}
	if seconds > MaxRefreshInterval {
		seconds = MaxRefreshInterval
	}
	s.app.Preferences().SetInt(KeyRefreshInterval, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLayoutMode returns the configured deck layout
func (s *Settings) GetLayoutMode() LayoutMode {
	mode := LayoutMode(s.app.Preferences().String(KeyLayoutMode))
	if mode != LayoutGala && mode != LayoutContest {
		s.SetLayoutMode(DefaultLayoutMode)
		return DefaultLayoutMode
	}
	return mode
}

// SetLayoutMode sets the deck layout
func (s *Settings) SetLayoutMode(mode LayoutMode) {
	s.app.Preferences().SetString(KeyLayoutMode, string(mode))
}

// GetAssetsDir returns the directory holding background and marker assets
func (s *Settings) GetAssetsDir() string {
	dir := s.app.Preferences().String(KeyAssetsDir)
	if dir == "" {
		s.SetAssetsDir(DefaultAssetsDir)
		return DefaultAssetsDir
	}
	return dir
}

// SetAssetsDir sets the assets directory
func (s *Settings) SetAssetsDir(dir string) {
	s.app.Preferences().SetString(KeyAssetsDir, dir)
}

// GetSnapshotPath returns the frozen snapshot path for the no-network
// mode. Empty means the mode is off and data comes from the sheet.
func (s *Settings) GetSnapshotPath() string {
	return s.app.Preferences().String(KeySnapshotPath)
}

// SetSnapshotPath sets the snapshot path; empty turns the no-network
// mode off
func (s *Settings) SetSnapshotPath(path string) {
	s.app.Preferences().SetString(KeySnapshotPath, path)
}

// OfflineMode reports whether the app presents from a frozen snapshot
func (s *Settings) OfflineMode() bool {
	return s.GetSnapshotPath() != ""
}

// GetExportDir returns the directory offline bundles are written to
func (s *Settings) GetExportDir() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		s.SetExportDir(DefaultExportDir)
		return DefaultExportDir
	}
	return dir
}

// SetExportDir sets the export output directory
func (s *Settings) SetExportDir(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLayoutModeOptions returns available deck layouts
func (s *Settings) GetLayoutModeOptions() []LayoutMode {
	return []LayoutMode{LayoutGala, LayoutContest}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"pl": "Polski",
		"en": "English",
	}
}
