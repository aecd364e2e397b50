package present

import "github.com/galaview/gala-presenter/internal/model"

// Renderer displays one slide. The controller calls it on every
// successful position change and after every sequence replacement.
type Renderer interface {
	RenderSlide(slide model.Slide, index, total int)
}

// Navigator is the controller surface the keyboard handler drives
type Navigator interface {
	Next()
	Previous()
	First()
	Last()
}
