package ui

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/galaview/gala-presenter/internal/model"
	"github.com/galaview/gala-presenter/internal/render"
)

// BackgroundView manages the fullscreen background layer. Every asset
// shown at least once stays resident; navigation toggles visibility
// instead of reloading, and moving to a slide with the same background is
// a no-op so the layer never flickers.
type BackgroundView struct {
	backgrounds *render.Backgrounds
	assetsDir   string

	stack        *fyne.Container
	images       map[string]*canvas.Image
	currentAsset string
}

// NewBackgroundView creates the background layer
func NewBackgroundView(backgrounds *render.Backgrounds, assetsDir string) *BackgroundView {
	return &BackgroundView{
		backgrounds: backgrounds,
		assetsDir:   assetsDir,
		stack:       container.NewStack(),
		images:      make(map[string]*canvas.Image),
	}
}

// Container returns the canvas object holding the background layer
func (v *BackgroundView) Container() fyne.CanvasObject {
	return v.stack
}

// CurrentAsset returns the asset currently shown, empty before the first
// slide
func (v *BackgroundView) CurrentAsset() string {
	return v.currentAsset
}

// ShowFor switches the background to the asset of the given slide. A
// same-asset transition leaves the layer untouched.
func (v *BackgroundView) ShowFor(slide model.Slide) {
	target := v.backgrounds.AssetFor(slide)
	if !render.ShouldSwap(v.currentAsset, target) {
		return
	}

	img, exists := v.images[target]
	if !exists {
		img = canvas.NewImageFromFile(v.resolve(target))
		img.FillMode = canvas.ImageFillStretch
		v.images[target] = img
		v.stack.Add(img)
	}

	for asset, resident := range v.images {
		if asset == target {
			resident.Show()
		} else {
			resident.Hide()
		}
	}
	img.Refresh()
	v.currentAsset = target
}

// Preload waits until every known asset exists on disk, up to the given
// gate duration. Missing assets are logged and the show proceeds without
// them; their slides fall back to the plain stage color.
func (v *BackgroundView) Preload(gate time.Duration) bool {
	deadline := time.Now().Add(gate)
	for {
		missing := v.missingAssets()
		if len(missing) == 0 {
			return true
		}
		if time.Now().After(deadline) {
			log.Printf("Proceeding without %d background assets: %v", len(missing), missing)
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// missingAssets lists known assets with no file behind them
func (v *BackgroundView) missingAssets() []string {
	var missing []string
	for _, asset := range v.backgrounds.AllAssets() {
		if _, err := os.Stat(v.resolve(asset)); err != nil {
			missing = append(missing, asset)
		}
	}
	return missing
}

// resolve maps a bundle-relative asset name to a file in the configured
// assets directory
func (v *BackgroundView) resolve(asset string) string {
	return filepath.Join(v.assetsDir, filepath.Base(asset))
}
