package model

import "strings"

// Medal represents a medal category awarded to a participant
type Medal string

const (
	// MedalGold is the top award ("złoty")
	MedalGold Medal = "złoty"

	// MedalSilver is the second award ("srebrny")
	MedalSilver Medal = "srebrny"

	// MedalBronze is the third award ("brązowy")
	MedalBronze Medal = "brązowy"

	// MedalHonorable is an honorable mention ("wyróżnienie")
	MedalHonorable Medal = "wyróżnienie"

	// MedalNone means no medal was awarded
	MedalNone Medal = ""
)

// Literal cell value meaning "no medal" in the source sheet
const noMedalLiteral = "brak"

// Medal rank constants, gold < silver < bronze < honorable < none
const (
	RankGold      = 1
	RankSilver    = 2
	RankBronze    = 3
	RankHonorable = 4
	RankNone      = 5
)

// NormalizeMedal converts a raw sheet cell into a canonical medal category.
// Matching is by prefix, case-insensitive and tolerant of missing Polish
// diacritics ("zloty", "brazowy"). Empty, "brak", and unrecognized values
// all map to MedalNone.
func NormalizeMedal(raw string) Medal {
	val := strings.ToLower(strings.TrimSpace(raw))
	if val == "" || val == noMedalLiteral {
		return MedalNone
	}
	switch {
	case strings.HasPrefix(val, "zł"), strings.HasPrefix(val, "zl"):
		return MedalGold
	case strings.HasPrefix(val, "srebr"):
		return MedalSilver
	case strings.HasPrefix(val, "brą"), strings.HasPrefix(val, "bra"):
		return MedalBronze
	case strings.HasPrefix(val, "wyr"):
		return MedalHonorable
	}
	return MedalNone
}

// Rank returns the sort key for the medal: gold=1, silver=2, bronze=3,
// honorable mention=4, none=5
func (m Medal) Rank() int {
	switch m {
	case MedalGold:
		return RankGold
	case MedalSilver:
		return RankSilver
	case MedalBronze:
		return RankBronze
	case MedalHonorable:
		return RankHonorable
	default:
		return RankNone
	}
}

// String returns the canonical Polish name of the medal, or empty for none
func (m Medal) String() string {
	return string(m)
}

// PluralLabel returns the plural form used on medal summary slides
func (m Medal) PluralLabel() string {
	switch m {
	case MedalGold:
		return "złote"
	case MedalSilver:
		return "srebrne"
	case MedalBronze:
		return "brązowe"
	case MedalHonorable:
		return "wyróżnienia"
	default:
		return ""
	}
}

// MedalCategories lists the awarded categories in rank order
var MedalCategories = []Medal{MedalGold, MedalSilver, MedalBronze, MedalHonorable}
