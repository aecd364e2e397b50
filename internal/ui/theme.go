package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// StageTheme is a dark theme tuned for a projected fullscreen stage:
// always-dark background, high contrast text, roomy padding
type StageTheme struct{}

// NewStageTheme creates the stage theme
func NewStageTheme() fyne.Theme {
	return &StageTheme{}
}

// Stage palette
var (
	stageBackground = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	stageForeground = color.RGBA{R: 245, G: 247, B: 250, A: 255}
	stageAccent     = color.RGBA{R: 255, G: 200, B: 87, A: 255}
	stageMuted      = color.RGBA{R: 170, G: 178, B: 195, A: 255}
	stageError      = color.RGBA{R: 229, G: 83, B: 75, A: 255}
)

// Color returns theme colors
func (t *StageTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return stageBackground
	case theme.ColorNameForeground:
		return stageForeground
	case theme.ColorNamePrimary:
		return stageAccent
	case theme.ColorNamePlaceHolder:
		return stageMuted
	case theme.ColorNameError:
		return stageError
	}

	// The stage is always dark regardless of the OS variant
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *StageTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StageTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with stage adjustments
func (t *StageTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Increased from default 4
	case theme.SizeNameInnerPadding:
		return 10 // Increased from default 8
	case theme.SizeNameText:
		return 16 // Increased from default 14
	case theme.SizeNameHeadingText:
		return 24 // Increased from default 18
	case theme.SizeNameSubHeadingText:
		return 18 // Increased from default 16
	}

	return theme.DefaultTheme().Size(name)
}
