package render

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/galaview/gala-presenter/internal/model"
)

// DefaultBackgroundAsset is used for every slide whose kind has no
// dedicated background
const DefaultBackgroundAsset = "animations/bg-ogolny.png"

// Variant B decks keep two resident backgrounds and toggle visibility
const (
	ContestTitleBackground   = "animations/bg-1.png"
	ContestWinnersBackground = "animations/bg-2.png"
)

// defaultKindBackgrounds maps a kind title to its background asset
var defaultKindBackgrounds = map[string]string{
	"Olimpiada Języka Łacińskiego i Kultury Antycznej": "animations/bg_olimpiada_jezyka_lacinskiego_i_kultury_antycznej.png",
	"Olimpiada Fizyczna":                  "animations/bg_olimpiada_fizyczna.png",
	"Olimpiada Biologiczna":               "animations/bg_olimpiada_biologiczna.png",
	"Olimpiada Informatyczna":             "animations/bg_olimpiada_informatyczna.png",
	"Olimpiada Informatyczna Juniorów":    "animations/bg_olimpiada_informatyczna_juniorow.png",
	"Olimpiada Chemiczna":                 "animations/bg_olimpiada_chemiczna.png",
	"Olimpiada Filozoficzna":              "animations/bg_olimpiada_filozoficzna.png",
	"Olimpiada Geograficzna":              "animations/bg_olimpiada_geograficzna.png",
	"Olimpiada Matematyczna":              "animations/bg_olimpiada_matematyczna.png",
	"Olimpiada Lingwistyki Matematycznej": "animations/bg_olimpiada_lingwistyki_matematycznej.png",
	"Olimpiada Astronomiczna":             "animations/bg_olimpiada_astronomiczna.png",
	"Olimpiada Astronomii i Astrofizyki":  "animations/bg_olimpiada_astrofizyczna.png",
	"Olimpiada Wiedzy Ekonomicznej":       "animations/bg_wiedzy_ekonomicznej.png",
	"Konkurs Umiejętności Zawodowych":     "animations/bg_konkurs_umiejetnosci_zawodowych.png",
}

// medalMarkerAssets maps a medal category to its marker asset
var medalMarkerAssets = map[model.Medal]string{
	model.MedalGold:      "animations/zloto.png",
	model.MedalSilver:    "animations/srebro.png",
	model.MedalBronze:    "animations/braz.png",
	model.MedalHonorable: "animations/wyroznienie.png",
}

// MedalMarkerAsset returns the marker asset for a medal, or empty when the
// category has none
func MedalMarkerAsset(m model.Medal) string {
	return medalMarkerAssets[m]
}

// Backgrounds resolves the background asset for each slide. The kind map
// is consulted only for kind and olympiad title slides; everything else
// falls through to the default asset.
type Backgrounds struct {
	defaultAsset string
	byKind       map[string]string
}

// NewBackgrounds creates the built-in background table
func NewBackgrounds() *Backgrounds {
	byKind := make(map[string]string, len(defaultKindBackgrounds))
	for kind, asset := range defaultKindBackgrounds {
		byKind[kind] = asset
	}
	return &Backgrounds{
		defaultAsset: DefaultBackgroundAsset,
		byKind:       byKind,
	}
}

// backgroundsFile mirrors the optional backgrounds.toml override
type backgroundsFile struct {
	Default string            `toml:"default"`
	Kinds   map[string]string `toml:"kinds"`
}

// LoadBackgrounds reads an optional TOML override on top of the built-in
// table. A missing file is not an error and yields the defaults.
func LoadBackgrounds(path string) (*Backgrounds, error) {
	b := NewBackgrounds()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return b, nil
	}

	var file backgroundsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse backgrounds file %s: %w", path, err)
	}

	if file.Default != "" {
		b.defaultAsset = file.Default
	}
	for kind, asset := range file.Kinds {
		b.byKind[kind] = asset
	}
	return b, nil
}

// Default returns the fallback background asset
func (b *Backgrounds) Default() string {
	return b.defaultAsset
}

// AssetFor picks the background asset for a slide. Only kind and olympiad
// title slides resolve through the kind table; contest slides use the two
// resident variant B assets; every other slide type gets the default.
func (b *Backgrounds) AssetFor(slide model.Slide) string {
	switch slide.Type {
	case model.SlideContestTitle:
		return ContestTitleBackground
	case model.SlideContestWinners:
		return ContestWinnersBackground
	case model.SlideKind, model.SlideOlympiadTitle:
		if asset, ok := b.byKind[slide.KindTitle]; ok {
			return asset
		}
	}
	return b.defaultAsset
}

// ShouldSwap reports whether moving to the target asset needs an actual
// swap. Same-asset transitions are no-ops so the running background never
// restarts.
func ShouldSwap(current, target string) bool {
	return current != target
}

// AllAssets lists every asset the table can resolve to, for preloading and
// for the offline bundle. The default asset comes first.
func (b *Backgrounds) AllAssets() []string {
	assets := []string{b.defaultAsset}
	seen := map[string]bool{b.defaultAsset: true}
	for _, kind := range kindOrder(b.byKind) {
		asset := b.byKind[kind]
		if !seen[asset] {
			assets = append(assets, asset)
			seen[asset] = true
		}
	}
	for _, medal := range model.MedalCategories {
		asset := medalMarkerAssets[medal]
		if !seen[asset] {
			assets = append(assets, asset)
			seen[asset] = true
		}
	}
	return assets
}

// kindOrder gives a deterministic iteration order over the kind map
func kindOrder(byKind map[string]string) []string {
	kinds := make([]string, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
