// Package ui contains the Fyne user interface: the fullscreen stage, the
// slide and background views, overlays, keyboard handling, the entrance
// animation, and the settings dialog.
package ui
