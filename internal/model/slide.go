package model

import "fmt"

// SlideType identifies the kind of content a slide carries
type SlideType string

const (
	// SlideKind is a section header slide (variant A)
	SlideKind SlideType = "kind"

	// SlideOlympiadTitle introduces a single olympiad (variant A)
	SlideOlympiadTitle SlideType = "olympiadTitle"

	// SlideMedals summarizes medal counts for one olympiad (variant A)
	SlideMedals SlideType = "medals"

	// SlideRepresentation lists the awarded participants (variant A)
	SlideRepresentation SlideType = "representation"

	// SlideContestTitle introduces a contest (variant B)
	SlideContestTitle SlideType = "contestTitle"

	// SlideContestWinners lists a contest's winners (variant B)
	SlideContestWinners SlideType = "contestWinners"
)

// Slide is an immutable, self-contained descriptor of one displayed unit.
// Only the fields relevant to its Type are populated. Slide sequences are
// produced once per data load and replaced wholesale on refresh, never
// patched in place.
type Slide struct {
	Type SlideType

	// Variant A context
	KindTitle    string
	OlympiadName string
	Medals       MedalCounts
	Participants []Participant

	// Variant B context
	Contest *Contest
}

// Key returns a stable identity for the slide, used to keep the viewer on
// an equivalent slide when the sequence is rebuilt by a refresh.
func (s Slide) Key() string {
	switch s.Type {
	case SlideContestTitle, SlideContestWinners:
		title := ""
		if s.Contest != nil {
			title = s.Contest.Title
		}
		return fmt.Sprintf("%s|%s", s.Type, title)
	default:
		return fmt.Sprintf("%s|%s|%s", s.Type, s.KindTitle, s.OlympiadName)
	}
}
