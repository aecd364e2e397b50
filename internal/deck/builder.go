package deck

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/galaview/gala-presenter/internal/model"
)

// Builder expands a contest hierarchy into slides. It owns a Polish
// collator for the locale-aware name ordering on representation slides.
type Builder struct {
	collator *collate.Collator
}

// NewBuilder creates a slide deck builder
func NewBuilder() *Builder {
	return &Builder{
		collator: collate.New(language.Polish),
	}
}

// BuildFromKinds expands the variant A hierarchy. For each kind (in
// first-seen order) it emits a kind slide, then for each olympiad a title
// slide, a medal summary slide, and a representation slide. An empty
// hierarchy yields an empty sequence.
func (b *Builder) BuildFromKinds(kinds []*model.Kind) []model.Slide {
	var slides []model.Slide

	for _, kind := range kinds {
		slides = append(slides, model.Slide{
			Type:      model.SlideKind,
			KindTitle: kind.Title,
		})

		for _, olympiad := range kind.Olympiads {
			slides = append(slides, model.Slide{
				Type:         model.SlideOlympiadTitle,
				KindTitle:    kind.Title,
				OlympiadName: olympiad.Name,
			})

			var counts model.MedalCounts
			for _, p := range olympiad.Participants {
				counts.Add(p.Medal)
			}
			slides = append(slides, model.Slide{
				Type:         model.SlideMedals,
				KindTitle:    kind.Title,
				OlympiadName: olympiad.Name,
				Medals:       counts,
			})

			slides = append(slides, model.Slide{
				Type:         model.SlideRepresentation,
				KindTitle:    kind.Title,
				OlympiadName: olympiad.Name,
				Participants: b.sortByMedalAndName(olympiad.Participants),
			})
		}
	}

	return slides
}

// BuildFromContests expands the variant B list: a title slide and a winners
// slide per contest, in original order. Winners are never re-sorted.
func (b *Builder) BuildFromContests(contests []*model.Contest) []model.Slide {
	var slides []model.Slide
	for _, contest := range contests {
		slides = append(slides, model.Slide{Type: model.SlideContestTitle, Contest: contest})
		slides = append(slides, model.Slide{Type: model.SlideContestWinners, Contest: contest})
	}
	return slides
}

// BuildFromSnapshot expands whichever hierarchy the snapshot carries
func (b *Builder) BuildFromSnapshot(snap *model.Snapshot) []model.Slide {
	if snap == nil {
		return nil
	}
	if len(snap.Kinds) > 0 {
		return b.BuildFromKinds(snap.Kinds)
	}
	return b.BuildFromContests(snap.Contests)
}

// sortByMedalAndName returns a sorted copy: medal rank ascending, then
// display name by Polish collation. Entries with a missing name on either
// side of a comparison keep their relative order.
func (b *Builder) sortByMedalAndName(participants []model.Participant) []model.Participant {
	sorted := make([]model.Participant, len(participants))
	copy(sorted, participants)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MedalRank() != sorted[j].MedalRank() {
			return sorted[i].MedalRank() < sorted[j].MedalRank()
		}
		if sorted[i].Name == "" || sorted[j].Name == "" {
			return false
		}
		return b.collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}
