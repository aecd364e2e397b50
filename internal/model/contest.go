package model

import "time"

// Participant is one awarded person within an olympiad (variant A)
type Participant struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Medal  Medal  `json:"medal"`
}

// MedalRank returns the participant's medal sort key
func (p Participant) MedalRank() int {
	return p.Medal.Rank()
}

// Olympiad groups the participants of a single olympiad (variant A).
// Participants keep their source row order.
type Olympiad struct {
	Name         string        `json:"name"`
	Participants []Participant `json:"participants"`
}

// Kind groups olympiads under a shared section header (variant A).
// A Kind with zero olympiads is valid and represents a pure section
// header row in the sheet.
type Kind struct {
	Title     string      `json:"title"`
	Olympiads []*Olympiad `json:"olympiads"`
}

// Olympiad returns the olympiad with the given name, or nil
func (k *Kind) Olympiad(name string) *Olympiad {
	for _, o := range k.Olympiads {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Winner is one awarded person within a flat contest (variant B)
type Winner struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Region string `json:"region"`
}

// Contest is a flat contest with its winners (variant B). Winners keep
// their source row order and are never re-sorted.
type Contest struct {
	Title     string   `json:"title"`
	Organizer string   `json:"organizer"`
	Winners   []Winner `json:"winners"`
}

// MedalCounts aggregates per-category medal totals for one olympiad
type MedalCounts struct {
	Gold      int `json:"gold"`
	Silver    int `json:"silver"`
	Bronze    int `json:"bronze"`
	Honorable int `json:"honorable"`
}

// Count returns the total for the given category, zero for MedalNone
func (mc MedalCounts) Count(m Medal) int {
	switch m {
	case MedalGold:
		return mc.Gold
	case MedalSilver:
		return mc.Silver
	case MedalBronze:
		return mc.Bronze
	case MedalHonorable:
		return mc.Honorable
	default:
		return 0
	}
}

// Add increments the counter for the given category; MedalNone is ignored
func (mc *MedalCounts) Add(m Medal) {
	switch m {
	case MedalGold:
		mc.Gold++
	case MedalSilver:
		mc.Silver++
	case MedalBronze:
		mc.Bronze++
	case MedalHonorable:
		mc.Honorable++
	}
}

// Snapshot is a frozen copy of the parsed hierarchy, used by the offline
// export bundle and by the no-network mode. Exactly one of Kinds or
// Contests is populated, depending on the deployment's layout mode.
type Snapshot struct {
	SavedAt  time.Time  `json:"saved_at"`
	Kinds    []*Kind    `json:"kinds,omitempty"`
	Contests []*Contest `json:"contests,omitempty"`
}

// IsEmpty reports whether the snapshot carries no data at all
func (s *Snapshot) IsEmpty() bool {
	return s == nil || (len(s.Kinds) == 0 && len(s.Contests) == 0)
}
