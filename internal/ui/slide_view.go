package ui

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/galaview/gala-presenter/internal/model"
	"github.com/galaview/gala-presenter/internal/render"
	"github.com/galaview/gala-presenter/internal/textfmt"
)

// SlideView materializes composed block trees into canvas objects. Layout
// is manual: blocks are measured at their natural size, shrunk by the fit
// scale when they would overflow the safe area, and centered on the stage.
type SlideView struct {
	composer  *render.Composer
	animator  *Animator
	assetsDir string

	content *fyne.Container
	counter *canvas.Text
}

// NewSlideView creates a slide view resolving marker assets relative to
// the given directory
func NewSlideView(assetsDir string) *SlideView {
	v := &SlideView{
		composer:  render.NewComposer(),
		animator:  NewAnimator(),
		assetsDir: assetsDir,
		content:   container.NewWithoutLayout(),
	}

	v.counter = canvas.NewText("", stageMuted)
	v.counter.TextSize = CounterTextSize

	return v
}

// Container returns the canvas object holding the rendered slide
func (v *SlideView) Container() fyne.CanvasObject {
	return v.content
}

// ShowSlide renders one slide into the given stage size and plays its
// entrance animation. Any previous slide and its in-flight animation are
// discarded first.
func (v *SlideView) ShowSlide(slide model.Slide, index, total int, size fyne.Size) {
	v.animator.Cancel()
	v.content.RemoveAll()

	frame := v.composer.Compose(slide)

	layouts := v.layoutFrame(frame, 1)
	natural := stackedHeight(layouts)
	scale := render.FitScale(render.SafeHeight(size.Height), natural)
	if scale < 1 {
		layouts = v.layoutFrame(frame, scale)
		natural = stackedHeight(layouts)
	}

	y := (size.Height - natural) / 2
	var elements []Animatable
	for _, bl := range layouts {
		x := (size.Width - bl.size.Width) / 2
		element := bl.place(v.content, fyne.NewPos(x, y))
		elements = append(elements, element)
		y += bl.size.Height + BlockSpacing*scale
	}

	v.counter.Text = fmt.Sprintf(SlideCounterFormat, index+1, total)
	v.counter.Move(fyne.NewPos(
		size.Width-fyne.MeasureText(v.counter.Text, CounterTextSize, fyne.TextStyle{}).Width-CounterMargin,
		size.Height-CounterTextSize-CounterMargin,
	))
	v.content.Add(v.counter)
	v.counter.Refresh()

	v.content.Refresh()
	v.animator.Play(elements)
}

// blockLayout is one measured block: objects with positions relative to
// the block origin
type blockLayout struct {
	items []placedObject
	size  fyne.Size
}

type placedObject struct {
	obj fyne.CanvasObject
	pos fyne.Position
}

func (bl *blockLayout) add(obj fyne.CanvasObject, pos fyne.Position) {
	bl.items = append(bl.items, placedObject{obj: obj, pos: pos})
}

// place moves the block to its absolute origin, adds its objects to the
// container, and wraps them into one entrance element
func (bl *blockLayout) place(c *fyne.Container, origin fyne.Position) Animatable {
	element := &blockElement{center: fyne.NewPos(origin.X+bl.size.Width/2, origin.Y+bl.size.Height/2)}
	for _, item := range bl.items {
		pos := fyne.NewPos(origin.X+item.pos.X, origin.Y+item.pos.Y)
		item.obj.Move(pos)
		c.Add(item.obj)
		element.track(item.obj, pos)
	}
	return element
}

// layoutFrame builds the layout of every block at the given scale
func (v *SlideView) layoutFrame(frame *render.Frame, scale float32) []*blockLayout {
	var layouts []*blockLayout
	for _, block := range frame.Blocks {
		var bl *blockLayout
		switch b := block.(type) {
		case render.TitleBlock:
			bl = layoutMarkup(b.Text, TitleTextSize*scale, stageForeground, scale)
		case render.SubtitleBlock:
			bl = layoutMarkup(b.Text, SubtitleTextSize*scale, stageMuted, scale)
		case render.HeaderBlock:
			bl = layoutMarkup(textfmt.EmphasisOpen+b.Text+textfmt.EmphasisClose, HeaderTextSize*scale, stageAccent, scale)
		case render.MedalSummaryBlock:
			bl = v.layoutMedalSummary(b, scale)
		case render.RosterBlock:
			bl = v.layoutRoster(b, scale)
		case render.MessageBlock:
			bl = layoutMarkup(b.Text, MessageTextSize*scale, stageMuted, scale)
		}
		if bl != nil {
			layouts = append(layouts, bl)
		}
	}
	return layouts
}

// layoutMedalSummary lays the visible categories in one horizontal row:
// marker on top, count beneath, plural label at the bottom. With few
// visible categories the markers grow.
func (v *SlideView) layoutMedalSummary(block render.MedalSummaryBlock, scale float32) *blockLayout {
	marker := MedalMarkerSize
	if block.Density <= 2 {
		marker = MedalMarkerLarge
	}
	marker *= scale

	bl := &blockLayout{}
	gap := ColumnGap * scale
	x := float32(0)
	var maxH float32

	for _, row := range block.Rows {
		countText := fmt.Sprintf("%d", row.Count)
		countSize := fyne.MeasureText(countText, MedalCountSize*scale, fyne.TextStyle{Bold: true})
		labelSize := fyne.MeasureText(row.Label, MedalLabelSize*scale, fyne.TextStyle{})

		cellW := marker
		if countSize.Width > cellW {
			cellW = countSize.Width
		}
		if labelSize.Width > cellW {
			cellW = labelSize.Width
		}

		y := float32(0)
		if asset := render.MedalMarkerAsset(row.Medal); asset != "" {
			img := canvas.NewImageFromFile(filepath.Join(v.assetsDir, filepath.Base(asset)))
			img.FillMode = canvas.ImageFillContain
			img.Resize(fyne.NewSize(marker, marker))
			bl.add(img, fyne.NewPos(x+(cellW-marker)/2, y))
		}
		y += marker + RosterLineSpacing*scale

		count := canvas.NewText(countText, stageForeground)
		count.TextSize = MedalCountSize * scale
		count.TextStyle = fyne.TextStyle{Bold: true}
		bl.add(count, fyne.NewPos(x+(cellW-countSize.Width)/2, y))
		y += countSize.Height + RosterLineSpacing*scale

		label := canvas.NewText(row.Label, stageMuted)
		label.TextSize = MedalLabelSize * scale
		bl.add(label, fyne.NewPos(x+(cellW-labelSize.Width)/2, y))
		y += labelSize.Height

		if y > maxH {
			maxH = y
		}
		x += cellW + gap
	}

	if x > 0 {
		x -= gap
	}
	bl.size = fyne.NewSize(x, maxH)
	return bl
}

// layoutRoster lays one or two columns of people side by side
func (v *SlideView) layoutRoster(block render.RosterBlock, scale float32) *blockLayout {
	bl := &blockLayout{}
	gap := ColumnGap * scale
	x := float32(0)
	var maxH float32

	for _, column := range block.Columns {
		colW, colH := v.layoutColumn(bl, column, x, scale)
		if colH > maxH {
			maxH = colH
		}
		x += colW + gap
	}

	if x > 0 {
		x -= gap
	}
	bl.size = fyne.NewSize(x, maxH)
	return bl
}

// layoutColumn lays one roster column at the given x offset and returns
// its width and height
func (v *SlideView) layoutColumn(bl *blockLayout, column []render.RosterEntry, x float32, scale float32) (float32, float32) {
	markerSize := RosterTextSize * scale
	y := float32(0)
	var width float32

	for _, entry := range column {
		lineX := x

		if asset := render.MedalMarkerAsset(entry.Medal); asset != "" {
			img := canvas.NewImageFromFile(filepath.Join(v.assetsDir, filepath.Base(asset)))
			img.FillMode = canvas.ImageFillContain
			img.Resize(fyne.NewSize(markerSize, markerSize))
			bl.add(img, fyne.NewPos(lineX, y))
		}
		lineX += markerSize + RosterLineSpacing*scale

		nameW, nameH := layoutMarkupAt(bl, entry.Name, RosterTextSize*scale, stageForeground, fyne.NewPos(lineX, y), scale)
		y += nameH

		if entry.Detail != "" {
			detailW, detailH := layoutMarkupAt(bl, entry.Detail, DetailTextSize*scale, stageMuted, fyne.NewPos(lineX, y), scale)
			if detailW > nameW {
				nameW = detailW
			}
			y += detailH
		}
		y += RosterLineSpacing * scale

		if lineX+nameW-x > width {
			width = lineX + nameW - x
		}
	}

	return width, y
}

// layoutMarkup builds a centered multi-line text block from markup
func layoutMarkup(text string, size float32, clr color.Color, scale float32) *blockLayout {
	bl := &blockLayout{}
	w, h := layoutMarkupAt(bl, text, size, clr, fyne.NewPos(0, 0), scale)
	bl.size = fyne.NewSize(w, h)

	// Center shorter lines within the block
	centerLines(bl, w)
	return bl
}

// layoutMarkupAt renders markup text into the layout at the given origin
// and returns the occupied width and height. Understands <br> line breaks
// and <b>…</b> emphasis spans.
func layoutMarkupAt(bl *blockLayout, text string, size float32, clr color.Color, origin fyne.Position, scale float32) (float32, float32) {
	y := origin.Y
	var width float32

	for _, line := range strings.Split(text, textfmt.LineBreak) {
		x := origin.X
		var lineH float32

		for _, seg := range splitEmphasis(line) {
			if seg.text == "" {
				continue
			}
			style := fyne.TextStyle{Bold: seg.bold}
			measured := fyne.MeasureText(seg.text, size, style)

			t := canvas.NewText(seg.text, clr)
			t.TextSize = size
			t.TextStyle = style
			bl.add(t, fyne.NewPos(x, y))

			x += measured.Width
			if measured.Height > lineH {
				lineH = measured.Height
			}
		}

		if lineH == 0 {
			lineH = fyne.MeasureText(" ", size, fyne.TextStyle{}).Height
		}
		if x-origin.X > width {
			width = x - origin.X
		}
		y += lineH + RosterLineSpacing*scale/2
	}

	return width, y - origin.Y
}

// markupSegment is one run of text with a single style
type markupSegment struct {
	text string
	bold bool
}

// splitEmphasis cuts a line into plain and emphasized runs
func splitEmphasis(line string) []markupSegment {
	var segments []markupSegment
	rest := line
	for {
		open := strings.Index(rest, textfmt.EmphasisOpen)
		if open < 0 {
			segments = append(segments, markupSegment{text: rest})
			return segments
		}
		segments = append(segments, markupSegment{text: rest[:open]})
		rest = rest[open+len(textfmt.EmphasisOpen):]

		closeAt := strings.Index(rest, textfmt.EmphasisClose)
		if closeAt < 0 {
			// Unterminated emphasis, treat the remainder as bold
			segments = append(segments, markupSegment{text: rest, bold: true})
			return segments
		}
		segments = append(segments, markupSegment{text: rest[:closeAt], bold: true})
		rest = rest[closeAt+len(textfmt.EmphasisClose):]
	}
}

// centerLines re-centers each rendered line within the block width. Lines
// are grouped by their y coordinate.
func centerLines(bl *blockLayout, blockWidth float32) {
	rows := map[float32][]int{}
	for i, item := range bl.items {
		rows[item.pos.Y] = append(rows[item.pos.Y], i)
	}
	for _, idxs := range rows {
		var minX, maxX float32
		for n, i := range idxs {
			it := bl.items[i]
			endX := it.pos.X + it.obj.MinSize().Width
			if t, ok := it.obj.(*canvas.Text); ok {
				endX = it.pos.X + fyne.MeasureText(t.Text, t.TextSize, t.TextStyle).Width
			}
			if n == 0 || it.pos.X < minX {
				minX = it.pos.X
			}
			if endX > maxX {
				maxX = endX
			}
		}
		shift := (blockWidth - (maxX - minX)) / 2
		for _, i := range idxs {
			bl.items[i].pos.X += shift - minX
		}
	}
}

// stackedHeight is the total height of the blocks stacked with spacing
func stackedHeight(layouts []*blockLayout) float32 {
	var h float32
	for i, bl := range layouts {
		if i > 0 {
			h += BlockSpacing
		}
		h += bl.size.Height
	}
	return h
}

// blockElement is one block participating in the entrance animation. It
// translates and fades its objects toward their resting positions.
type blockElement struct {
	center fyne.Position
	texts  []*fadingText
	images []*fadingImage
}

type fadingText struct {
	text *canvas.Text
	base fyne.Position
	full color.Color
}

type fadingImage struct {
	img  *canvas.Image
	base fyne.Position
}

func (e *blockElement) track(obj fyne.CanvasObject, pos fyne.Position) {
	switch o := obj.(type) {
	case *canvas.Text:
		e.texts = append(e.texts, &fadingText{text: o, base: pos, full: o.Color})
	case *canvas.Image:
		e.images = append(e.images, &fadingImage{img: o, base: pos})
	}
}

// SetEntrance applies the entrance transform: vertical offset, shrink
// around the block center, fade from transparent
func (e *blockElement) SetEntrance(progress float32) {
	dy := EntranceOffsetY * (1 - progress)
	s := EntranceScale + (1-EntranceScale)*progress

	for _, ft := range e.texts {
		ft.text.Move(entrancePos(ft.base, e.center, s, dy))
		ft.text.Color = withAlpha(ft.full, progress)
		ft.text.Refresh()
	}
	for _, fi := range e.images {
		fi.img.Move(entrancePos(fi.base, e.center, s, dy))
		fi.img.Translucency = float64(1 - progress)
		fi.img.Refresh()
	}
}

// entrancePos scales a position around the element center and pushes it
// down by the offset
func entrancePos(base, center fyne.Position, s, dy float32) fyne.Position {
	return fyne.NewPos(
		center.X+(base.X-center.X)*s,
		center.Y+(base.Y-center.Y)*s+dy,
	)
}

// withAlpha returns the color at the given opacity
func withAlpha(c color.Color, alpha float32) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha * 255),
	}
}
