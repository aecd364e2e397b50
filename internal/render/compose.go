package render

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/galaview/gala-presenter/internal/model"
	"github.com/galaview/gala-presenter/internal/textfmt"
)

// Layout policy constants
const (
	// TwoColumnThreshold is the participant count at which a roster
	// switches to the two-column layout
	TwoColumnThreshold = 10
)

// Placeholder and label texts
const (
	NoKindPlaceholder    = "(bez rodzaju)"
	NoNamePlaceholder    = "(bez nazwy)"
	NoTitlePlaceholder   = "(bez tytułu)"
	RosterHeaderFallback = "Reprezentacja"
	WinnerHeaderSingular = "Zwycięzca"
	WinnerHeaderPlural   = "Zwycięzcy"
	NoContentMessage     = "Brak danych do wyświetlenia."

	// DetailSeparator joins school and region on a winner's detail line
	DetailSeparator = " • "

	// RegionPrefix precedes the region name, already bound with a
	// non-breaking space
	RegionPrefix = "woj." + textfmt.NonBreakingSpace
)

// Composer maps slides to block trees. It owns a Polish collator for the
// roster tie-break ordering.
type Composer struct {
	collator *collate.Collator
}

// NewComposer creates a slide composer
func NewComposer() *Composer {
	return &Composer{
		collator: collate.New(language.Polish),
	}
}

// Compose maps one slide descriptor to its visual block tree
func (c *Composer) Compose(slide model.Slide) *Frame {
	switch slide.Type {
	case model.SlideKind:
		return c.composeKind(slide)
	case model.SlideOlympiadTitle:
		return c.composeOlympiadTitle(slide)
	case model.SlideMedals:
		return c.composeMedals(slide)
	case model.SlideRepresentation:
		return c.composeRepresentation(slide)
	case model.SlideContestTitle:
		return c.composeContestTitle(slide)
	case model.SlideContestWinners:
		return c.composeContestWinners(slide)
	default:
		return &Frame{Blocks: []Block{MessageBlock{Text: NoContentMessage}}}
	}
}

func (c *Composer) composeKind(slide model.Slide) *Frame {
	title := slide.KindTitle
	if title == "" {
		title = NoKindPlaceholder
	}
	return &Frame{Blocks: []Block{TitleBlock{Text: textfmt.FixOrphans(title)}}}
}

func (c *Composer) composeOlympiadTitle(slide model.Slide) *Frame {
	name := slide.OlympiadName
	if name == "" {
		name = NoNamePlaceholder
	}
	return &Frame{Blocks: []Block{
		SubtitleBlock{Text: textfmt.FixOrphans(slide.KindTitle)},
		TitleBlock{Text: textfmt.FixOrphans(name)},
	}}
}

func (c *Composer) composeMedals(slide model.Slide) *Frame {
	var rows []MedalRow
	for _, medal := range model.MedalCategories {
		if count := slide.Medals.Count(medal); count > 0 {
			rows = append(rows, MedalRow{
				Medal: medal,
				Label: medal.PluralLabel(),
				Count: count,
			})
		}
	}
	return &Frame{Blocks: []Block{MedalSummaryBlock{Rows: rows, Density: len(rows)}}}
}

func (c *Composer) composeRepresentation(slide model.Slide) *Frame {
	header := slide.OlympiadName
	if header == "" {
		header = RosterHeaderFallback
	}

	sorted := c.sortRoster(slide.Participants)
	entries := make([]RosterEntry, len(sorted))
	for i, p := range sorted {
		entries[i] = RosterEntry{
			Medal:  p.Medal,
			Name:   textfmt.FixOrphans(p.Name),
			Detail: textfmt.FixOrphans(p.School),
		}
	}

	roster, wide := splitColumns(entries)
	return &Frame{
		Blocks: []Block{HeaderBlock{Text: header}, roster},
		Wide:   wide,
	}
}

func (c *Composer) composeContestTitle(slide model.Slide) *Frame {
	title, organizer := NoTitlePlaceholder, ""
	if slide.Contest != nil {
		if slide.Contest.Title != "" {
			title = slide.Contest.Title
		}
		organizer = slide.Contest.Organizer
	}
	return &Frame{Blocks: []Block{
		TitleBlock{Text: textfmt.FixOrphans(title)},
		SubtitleBlock{Text: textfmt.FixOrphans(organizer)},
	}}
}

func (c *Composer) composeContestWinners(slide model.Slide) *Frame {
	var winners []model.Winner
	if slide.Contest != nil {
		winners = slide.Contest.Winners
	}

	header := WinnerHeaderPlural
	if len(winners) == 1 {
		header = WinnerHeaderSingular
	}

	// Winners keep their source order
	entries := make([]RosterEntry, len(winners))
	for i, w := range winners {
		entries[i] = RosterEntry{
			Name:   textfmt.FixOrphans(w.Name),
			Detail: winnerDetail(w),
		}
	}

	return &Frame{Blocks: []Block{
		HeaderBlock{Text: header},
		RosterBlock{Columns: [][]RosterEntry{entries}},
	}}
}

// winnerDetail builds the "school • woj. region" line for a winner
func winnerDetail(w model.Winner) string {
	var parts []string
	if w.School != "" {
		parts = append(parts, w.School)
	}
	if w.Region != "" {
		parts = append(parts, RegionPrefix+w.Region)
	}
	return textfmt.FixOrphans(strings.Join(parts, DetailSeparator))
}

// sortRoster orders a copy of the participants: medal rank ascending, then
// school, then person name, both by Polish collation. Missing fields sort
// as empty strings.
func (c *Composer) sortRoster(participants []model.Participant) []model.Participant {
	sorted := make([]model.Participant, len(participants))
	copy(sorted, participants)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MedalRank() != sorted[j].MedalRank() {
			return sorted[i].MedalRank() < sorted[j].MedalRank()
		}
		if cmp := c.collator.CompareString(sorted[i].School, sorted[j].School); cmp != 0 {
			return cmp < 0
		}
		return c.collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// splitColumns applies the roster layout policy: at TwoColumnThreshold or
// more entries the list is divided positionally, with the first column
// taking ceil(n/2); below the threshold a single column is used.
func splitColumns(entries []RosterEntry) (RosterBlock, bool) {
	if len(entries) < TwoColumnThreshold {
		return RosterBlock{Columns: [][]RosterEntry{entries}}, false
	}
	split := (len(entries) + 1) / 2
	return RosterBlock{Columns: [][]RosterEntry{entries[:split], entries[split:]}}, true
}
