package config

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSheetID(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if id := settings.GetSheetID(); id != DefaultSheetID {
		t.Errorf("Expected default sheet ID, got %s", id)
	}

	settings.SetSheetID("custom-sheet-id")
	if id := settings.GetSheetID(); id != "custom-sheet-id" {
		t.Errorf("Expected custom-sheet-id, got %s", id)
	}

	url := settings.SheetURL()
	if !strings.Contains(url, "custom-sheet-id") || !strings.Contains(url, "gviz/tq?tqx=out:json") {
		t.Errorf("Unexpected sheet URL: %s", url)
	}
}

func TestRefreshInterval(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetRefreshInterval(); got != DefaultRefreshInterval {
		t.Errorf("Expected default %d, got %d", DefaultRefreshInterval, got)
	}

	settings.SetRefreshInterval(30)
	if got := settings.GetRefreshInterval(); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}

	// Clamping
	settings.SetRefreshInterval(1)
	if got := settings.GetRefreshInterval(); got != MinRefreshInterval {
		t.Errorf("Expected clamp to %d, got %d", MinRefreshInterval, got)
	}
	settings.SetRefreshInterval(100000)
	if got := settings.GetRefreshInterval(); got != MaxRefreshInterval {
		t.Errorf("Expected clamp to %d, got %d", MaxRefreshInterval, got)
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if lang := settings.GetLanguage(); lang != "pl" {
		t.Errorf("Expected default pl, got %s", lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected en, got %s", lang)
	}
}

func TestLayoutMode(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if mode := settings.GetLayoutMode(); mode != LayoutGala {
		t.Errorf("Expected default gala layout, got %s", mode)
	}

	settings.SetLayoutMode(LayoutContest)
	if mode := settings.GetLayoutMode(); mode != LayoutContest {
		t.Errorf("Expected contest layout, got %s", mode)
	}

	// Unknown stored value falls back to the default
	settings.app.Preferences().SetString(KeyLayoutMode, "bogus")
	if mode := settings.GetLayoutMode(); mode != LayoutGala {
		t.Errorf("Expected fallback to gala, got %s", mode)
	}
}

func TestSnapshotPathAndOfflineMode(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.OfflineMode() {
		t.Error("Offline mode should be off by default")
	}

	settings.SetSnapshotPath("/data/snapshot.json")
	if !settings.OfflineMode() {
		t.Error("Offline mode should be on with a snapshot path")
	}
	if got := settings.GetSnapshotPath(); got != "/data/snapshot.json" {
		t.Errorf("Unexpected snapshot path: %s", got)
	}

	settings.SetSnapshotPath("")
	if settings.OfflineMode() {
		t.Error("Clearing the path should turn offline mode off")
	}
}

func TestDirectories(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if dir := settings.GetAssetsDir(); dir != DefaultAssetsDir {
		t.Errorf("Expected default assets dir, got %s", dir)
	}
	settings.SetAssetsDir("/opt/assets")
	if dir := settings.GetAssetsDir(); dir != "/opt/assets" {
		t.Errorf("Expected /opt/assets, got %s", dir)
	}

	if dir := settings.GetExportDir(); dir != DefaultExportDir {
		t.Errorf("Expected default export dir, got %s", dir)
	}
	settings.SetExportDir("/tmp/bundles")
	if dir := settings.GetExportDir(); dir != "/tmp/bundles" {
		t.Errorf("Expected /tmp/bundles, got %s", dir)
	}
}
