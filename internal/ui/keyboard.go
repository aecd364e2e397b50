package ui

import (
	"fyne.io/fyne/v2"

	"github.com/galaview/gala-presenter/internal/present"
)

// KeyboardHandler maps key presses to presentation navigation. The whole
// keyboard surface works only while the presentation is active; the caller
// decides when to attach it to the window.
type KeyboardHandler struct {
	navigator present.Navigator

	// OnEscape runs when Escape is pressed, typically to leave fullscreen
	OnEscape func()
}

// NewKeyboardHandler creates a keyboard handler driving the given navigator
func NewKeyboardHandler(navigator present.Navigator) *KeyboardHandler {
	return &KeyboardHandler{navigator: navigator}
}

// Handle dispatches one key event
func (kh *KeyboardHandler) Handle(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyRight, fyne.KeyDown, fyne.KeyPageDown, fyne.KeySpace:
		kh.navigator.Next()
	case fyne.KeyLeft, fyne.KeyUp, fyne.KeyPageUp:
		kh.navigator.Previous()
	case fyne.KeyHome:
		kh.navigator.First()
	case fyne.KeyEnd:
		kh.navigator.Last()
	case fyne.KeyEscape:
		if kh.OnEscape != nil {
			kh.OnEscape()
		}
	}
}
