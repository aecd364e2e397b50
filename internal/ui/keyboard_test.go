package ui

import (
	"testing"

	"fyne.io/fyne/v2"
)

type fakeNavigator struct {
	next, previous, first, last int
}

func (f *fakeNavigator) Next()     { f.next++ }
func (f *fakeNavigator) Previous() { f.previous++ }
func (f *fakeNavigator) First()    { f.first++ }
func (f *fakeNavigator) Last()     { f.last++ }

func TestKeyboardHandler_Mapping(t *testing.T) {
	tests := []struct {
		key  fyne.KeyName
		want func(*fakeNavigator) int
	}{
		{fyne.KeyRight, func(n *fakeNavigator) int { return n.next }},
		{fyne.KeyDown, func(n *fakeNavigator) int { return n.next }},
		{fyne.KeySpace, func(n *fakeNavigator) int { return n.next }},
		{fyne.KeyPageDown, func(n *fakeNavigator) int { return n.next }},
		{fyne.KeyLeft, func(n *fakeNavigator) int { return n.previous }},
		{fyne.KeyUp, func(n *fakeNavigator) int { return n.previous }},
		{fyne.KeyPageUp, func(n *fakeNavigator) int { return n.previous }},
		{fyne.KeyHome, func(n *fakeNavigator) int { return n.first }},
		{fyne.KeyEnd, func(n *fakeNavigator) int { return n.last }},
	}

	for _, tt := range tests {
		nav := &fakeNavigator{}
		kh := NewKeyboardHandler(nav)
		kh.Handle(&fyne.KeyEvent{Name: tt.key})
		if tt.want(nav) != 1 {
			t.Errorf("key %s did not trigger its action: %+v", tt.key, nav)
		}
	}
}

func TestKeyboardHandler_Escape(t *testing.T) {
	nav := &fakeNavigator{}
	kh := NewKeyboardHandler(nav)

	// No callback set, must not panic
	kh.Handle(&fyne.KeyEvent{Name: fyne.KeyEscape})

	escaped := false
	kh.OnEscape = func() { escaped = true }
	kh.Handle(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if !escaped {
		t.Error("Escape did not fire the callback")
	}
	if nav.next+nav.previous+nav.first+nav.last != 0 {
		t.Errorf("Escape must not navigate: %+v", nav)
	}
}

func TestKeyboardHandler_UnknownKeyIgnored(t *testing.T) {
	for _, key := range []fyne.KeyName{fyne.KeyF5, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyBackspace, fyne.KeyTab} {
		nav := &fakeNavigator{}
		NewKeyboardHandler(nav).Handle(&fyne.KeyEvent{Name: key})
		if nav.next+nav.previous+nav.first+nav.last != 0 {
			t.Errorf("key %s must be ignored: %+v", key, nav)
		}
	}
}
