package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyStartShow       = "start_show"
	KeyLoading         = "loading"
	KeyLoadingHint     = "loading_hint"
	KeyLoadError       = "load_error"
	KeyRetry           = "retry"
	KeyNoSlides        = "no_slides"
	KeySettings        = "settings"
	KeySheetID         = "sheet_id"
	KeyRefreshInterval = "refresh_interval"
	KeyLanguage        = "language"
	KeyLayoutMode      = "layout_mode"
	KeyLayoutGala      = "layout_gala"
	KeyLayoutContest   = "layout_contest"
	KeyAssetsDirectory = "assets_directory"
	KeySnapshotPath    = "snapshot_path"
	KeyExportBundle    = "export_bundle"
	KeyExportStarted   = "export_started"
	KeyExportCompleted = "export_completed"
	KeyExportFailed    = "export_failed"
	KeyOfflineMode     = "offline_mode"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyExitFullscreen  = "exit_fullscreen"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "pl",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Polish
	if texts, exists := l.texts["pl"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"pl": "Polski",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Polish texts
	l.texts["pl"] = map[string]string{
		KeyAppTitle:        "Gala Olimpijczyków",
		KeyStartShow:       "Rozpocznij pokaz",
		KeyLoading:         "Wczytywanie danych…",
		KeyLoadingHint:     "Pobieranie wyników z arkusza",
		KeyLoadError:       "Nie udało się wczytać danych",
		KeyRetry:           "Spróbuj ponownie",
		KeyNoSlides:        "Brak slajdów do wyświetlenia.",
		KeySettings:        "Ustawienia",
		KeySheetID:         "Identyfikator arkusza",
		KeyRefreshInterval: "Odświeżanie (sekundy)",
		KeyLanguage:        "Język",
		KeyLayoutMode:      "Układ pokazu",
		KeyLayoutGala:      "Gala (olimpiady)",
		KeyLayoutContest:   "Konkursy",
		KeyAssetsDirectory: "Katalog animacji",
		KeySnapshotPath:    "Plik migawki (tryb offline)",
		KeyExportBundle:    "Eksportuj pakiet offline",
		KeyExportStarted:   "Eksport rozpoczęty",
		KeyExportCompleted: "Eksport zakończony",
		KeyExportFailed:    "Eksport nie powiódł się",
		KeyOfflineMode:     "Tryb offline",
		KeySave:            "Zapisz",
		KeyCancel:          "Anuluj",
		KeySettingsSaved:   "Ustawienia zapisane",
		KeyExitFullscreen:  "Esc kończy tryb pełnoekranowy",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Olympians Gala",
		KeyStartShow:       "Start the show",
		KeyLoading:         "Loading data…",
		KeyLoadingHint:     "Fetching results from the sheet",
		KeyLoadError:       "Failed to load data",
		KeyRetry:           "Try again",
		KeyNoSlides:        "No slides to display.",
		KeySettings:        "Settings",
		KeySheetID:         "Sheet ID",
		KeyRefreshInterval: "Refresh (seconds)",
		KeyLanguage:        "Language",
		KeyLayoutMode:      "Show layout",
		KeyLayoutGala:      "Gala (olympiads)",
		KeyLayoutContest:   "Contests",
		KeyAssetsDirectory: "Animations directory",
		KeySnapshotPath:    "Snapshot file (offline mode)",
		KeyExportBundle:    "Export offline bundle",
		KeyExportStarted:   "Export started",
		KeyExportCompleted: "Export completed",
		KeyExportFailed:    "Export failed",
		KeyOfflineMode:     "Offline mode",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved",
		KeyExitFullscreen:  "Esc leaves fullscreen",
	}
}
