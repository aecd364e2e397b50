package ui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/galaview/gala-presenter/internal/config"
	"github.com/galaview/gala-presenter/internal/deck"
	"github.com/galaview/gala-presenter/internal/export"
	"github.com/galaview/gala-presenter/internal/model"
	"github.com/galaview/gala-presenter/internal/platform"
	"github.com/galaview/gala-presenter/internal/present"
	"github.com/galaview/gala-presenter/internal/render"
)

// BackgroundsFileName is the optional backgrounds override next to the
// executable
const BackgroundsFileName = "backgrounds.toml"

// PresenterUI is the main UI structure: the stage with its background and
// slide layers, the pre-show overlays, and the wiring between the
// presentation controller, the refresh loop, and the export service.
type PresenterUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	controller *present.Controller
	refresher  *present.Refresher
	exportSvc  export.Exporter
	builder    *deck.Builder

	slideView      *SlideView
	backgroundView *BackgroundView
	keyboard       *KeyboardHandler

	// Pre-show overlays
	startOverlay   *fyne.Container
	loadingOverlay *fyne.Container
	startButton    *widget.Button
	exportButton   *widget.Button
	statusLabel    *widget.Label

	// Last successfully loaded data, kept for the offline export
	snapshotMutex sync.Mutex
	lastSnapshot  *model.Snapshot

	presenting bool
}

// NewPresenterUI creates and initializes the main UI
func NewPresenterUI(window fyne.Window, app fyne.App, exportSvc export.Exporter) *PresenterUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	backgrounds, err := render.LoadBackgrounds(BackgroundsFileName)
	if err != nil {
		log.Printf("Ignoring backgrounds override: %v", err)
		backgrounds = render.NewBackgrounds()
	}

	assetsDir := settings.GetAssetsDir()
	platform.CreateDirectoryIfNotExists(settings.GetExportDir())

	ui := &PresenterUI{
		window:         window,
		settings:       settings,
		localization:   localization,
		exportSvc:      exportSvc,
		builder:        deck.NewBuilder(),
		slideView:      NewSlideView(assetsDir),
		backgroundView: NewBackgroundView(backgrounds, assetsDir),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	ui.controller = present.NewController(ui)
	ui.refresher = present.NewRefresher(
		ui.controller,
		ui.loadSlides,
		time.Duration(settings.GetRefreshInterval())*time.Second,
	)
	ui.refresher.SetApplyFunc(fyne.Do)

	ui.keyboard = NewKeyboardHandler(ui.controller)
	ui.keyboard.OnEscape = func() { window.SetFullScreen(false) }

	ui.exportSvc.SetUpdateCallback(ui.onExportUpdate)

	ui.setupUI()
	ui.startInitialLoad()
	return ui
}

// RenderSlide displays one slide. Implements present.Renderer and runs on
// the UI thread, the refresher marshals its replacements through fyne.Do.
func (ui *PresenterUI) RenderSlide(slide model.Slide, index, total int) {
	ui.backgroundView.ShowFor(slide)
	ui.slideView.ShowSlide(slide, index, total, ui.window.Canvas().Size())
}

// setupUI creates and arranges all UI components
func (ui *PresenterUI) setupUI() {
	l := ui.localization

	title := widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true})

	ui.startButton = widget.NewButton(l.GetText(KeyStartShow), ui.onStart)
	ui.startButton.Importance = widget.HighImportance
	ui.startButton.Disable()

	ui.exportButton = widget.NewButton(l.GetText(KeyExportBundle), ui.onExportClick)
	ui.exportButton.Disable()

	settingsButton := widget.NewButton(l.GetText(KeySettings), ui.onShowSettings)

	ui.statusLabel = widget.NewLabel(l.GetText(KeyLoading))
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	ui.loadingOverlay = container.NewCenter(container.NewVBox(
		widget.NewProgressBarInfinite(),
		widget.NewLabelWithStyle(l.GetText(KeyLoadingHint), fyne.TextAlignCenter, fyne.TextStyle{}),
	))

	ui.startOverlay = container.NewCenter(container.NewVBox(
		title,
		ui.statusLabel,
		ui.startButton,
		ui.exportButton,
		settingsButton,
		widget.NewLabelWithStyle(l.GetText(KeyExitFullscreen), fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	))

	stage := container.NewStack(
		ui.backgroundView.Container(),
		ui.slideView.Container(),
		ui.startOverlay,
		ui.loadingOverlay,
	)
	ui.window.SetContent(stage)
}

// startInitialLoad fetches the first slide sequence in the background.
// The start screen is armed as soon as data arrives, on failure with an
// error message, and in any case when the safety net fires, so the
// operator is never stuck on a dead loading screen.
func (ui *PresenterUI) startInitialLoad() {
	safetyNet := time.AfterFunc(LoadingSafetyNet, func() {
		fyne.Do(func() {
			if ui.loadingOverlay.Visible() {
				log.Printf("Initial load still pending after %v, arming start anyway", LoadingSafetyNet)
				ui.armStart(ui.localization.GetText(KeyLoadError))
			}
		})
	})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), InitialFetchTimeout)
		defer cancel()

		slides, err := ui.loadSlides(ctx)
		safetyNet.Stop()

		fyne.Do(func() {
			if err != nil {
				log.Printf("Initial load failed: %v", err)
				ui.armStart(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyLoadError), err))
				return
			}
			ui.controller.SetSlides(slides)
			ui.armStart("")
		})
	}()
}

// armStart reveals the start screen. A non-empty message is shown above
// the start button; starting stays possible so a partial failure can
// still run from whatever data is present.
func (ui *PresenterUI) armStart(message string) {
	ui.loadingOverlay.Hide()
	if message != "" {
		ui.statusLabel.SetText(message)
	} else {
		ui.statusLabel.SetText("")
	}
	ui.startButton.Enable()
	ui.updateExportButton()
}

// onStart begins the show: fullscreen, asset gate, then the first slide
// and the refresh loop
func (ui *PresenterUI) onStart() {
	if ui.controller.Len() == 0 {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoSlides))
		return
	}

	ui.startOverlay.Hide()
	ui.loadingOverlay.Hide()
	ui.window.SetFullScreen(true)
	ui.window.Canvas().SetOnTypedKey(ui.keyboard.Handle)

	go func() {
		ui.backgroundView.Preload(AssetReadyGate)

		fyne.Do(func() {
			if err := ui.controller.Start(); err != nil {
				log.Printf("Cannot start presentation: %v", err)
				ui.window.SetFullScreen(false)
				ui.startOverlay.Show()
				ui.statusLabel.SetText(ui.localization.GetText(KeyNoSlides))
				return
			}
			ui.presenting = true

			// The refresh loop only makes sense against a live sheet
			if !ui.settings.OfflineMode() {
				ui.refresher.Start(context.Background())
			}
		})
	}()
}

// loadSlides fetches data and builds the slide sequence. In offline mode
// the frozen snapshot is the only source; otherwise the sheet is fetched
// and parsed according to the configured layout.
func (ui *PresenterUI) loadSlides(ctx context.Context) ([]model.Slide, error) {
	if ui.settings.OfflineMode() {
		snap, err := platform.LoadSnapshot(ui.settings.GetSnapshotPath())
		if err != nil {
			return nil, err
		}
		ui.keepSnapshot(snap)
		return ui.builder.BuildFromSnapshot(snap), nil
	}

	fetcher := platform.NewSheetFetcher(ui.settings.GetSheetID())
	table, err := fetcher.FetchTable(ctx)
	if err != nil {
		return nil, err
	}

	snap := &model.Snapshot{}
	var slides []model.Slide
	if ui.settings.GetLayoutMode() == config.LayoutContest {
		snap.Contests = platform.ParseContests(table)
		slides = ui.builder.BuildFromContests(snap.Contests)
	} else {
		snap.Kinds = platform.ParseKinds(table)
		slides = ui.builder.BuildFromKinds(snap.Kinds)
	}
	ui.keepSnapshot(snap)
	return slides, nil
}

// keepSnapshot remembers the latest loaded data for the offline export
func (ui *PresenterUI) keepSnapshot(snap *model.Snapshot) {
	ui.snapshotMutex.Lock()
	defer ui.snapshotMutex.Unlock()
	if !snap.IsEmpty() {
		ui.lastSnapshot = snap
	}
}

// currentSnapshot returns the latest loaded data, or nil
func (ui *PresenterUI) currentSnapshot() *model.Snapshot {
	ui.snapshotMutex.Lock()
	defer ui.snapshotMutex.Unlock()
	return ui.lastSnapshot
}

// updateExportButton enables the export once there is data to freeze
func (ui *PresenterUI) updateExportButton() {
	if ui.currentSnapshot() != nil {
		ui.exportButton.Enable()
	} else {
		ui.exportButton.Disable()
	}
}

// onExportClick starts building the offline bundle
func (ui *PresenterUI) onExportClick() {
	snap := ui.currentSnapshot()
	if snap == nil {
		return
	}

	task, err := ui.exportSvc.StartExport(snap, ui.settings.GetExportDir())
	if err != nil {
		log.Printf("Export rejected: %v", err)
		ui.statusLabel.SetText(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyExportFailed), err))
		return
	}

	log.Printf("Export %s started to %s", task.ID, task.OutputPath)
	ui.exportButton.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyExportStarted))
}

// onExportUpdate reacts to export task progress. Called from the export
// goroutine, so every UI touch is marshalled.
func (ui *PresenterUI) onExportUpdate(task *model.ExportTask) {
	if !task.Status.IsFinished() {
		return
	}

	fyne.Do(func() {
		ui.exportButton.Enable()
		switch task.Status {
		case model.TaskStatusCompleted:
			ui.statusLabel.SetText(ui.localization.GetText(KeyExportCompleted))
			if err := platform.OpenFileInManager(task.OutputPath); err != nil {
				log.Printf("Cannot reveal bundle: %v", err)
			}
		case model.TaskStatusError:
			ui.statusLabel.SetText(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyExportFailed), task.LastError))
		}
	})
}

// onShowSettings opens the settings dialog
func (ui *PresenterUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	sd.OnSaved = func() {
		// A changed sheet or layout needs a fresh load; simplest before
		// the show starts is to redo the initial load
		if !ui.presenting {
			ui.loadingOverlay.Show()
			ui.startButton.Disable()
			ui.startInitialLoad()
		}
	}
	sd.Show()
}

// Stop halts background work before the window closes
func (ui *PresenterUI) Stop() {
	ui.refresher.Stop()
}
