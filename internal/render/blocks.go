package render

import "github.com/galaview/gala-presenter/internal/model"

// Block is one typed visual unit of a composed slide. Text fields carry
// the lightweight markup produced by textfmt (<br>, <b>…</b>).
type Block interface {
	isBlock()
}

// TitleBlock is the main headline of a slide
type TitleBlock struct {
	Text string
}

// SubtitleBlock is the secondary line above or below a title
type SubtitleBlock struct {
	Text string
}

// HeaderBlock introduces a list section (e.g. the roster header)
type HeaderBlock struct {
	Text string
}

// MedalRow is one visible category on a medal summary slide, paired with
// its medal marker asset
type MedalRow struct {
	Medal model.Medal
	Label string // plural category label, e.g. "złote"
	Count int
}

// MedalSummaryBlock aggregates the visible medal rows. Density equals the
// number of visible categories and lets the ui scale markers up when few
// categories are shown.
type MedalSummaryBlock struct {
	Rows    []MedalRow
	Density int
}

// RosterEntry is one person in a roster column
type RosterEntry struct {
	Medal  model.Medal
	Name   string // markup-bearing
	Detail string // markup-bearing; empty when there is nothing to show
}

// RosterBlock lists people in one or two columns. The split is positional
// (first column gets ceil(n/2)), never by visual height.
type RosterBlock struct {
	Columns [][]RosterEntry
}

// MessageBlock is a plain informational line (fallback content)
type MessageBlock struct {
	Text string
}

func (TitleBlock) isBlock()        {}
func (SubtitleBlock) isBlock()     {}
func (HeaderBlock) isBlock()       {}
func (MedalSummaryBlock) isBlock() {}
func (RosterBlock) isBlock()       {}
func (MessageBlock) isBlock()      {}

// Frame is the composed visual structure of one slide
type Frame struct {
	Blocks []Block

	// Wide marks frames that use the two-column roster layout
	Wide bool
}
