package textfmt

import (
	"regexp"
	"strings"
)

// Markup tokens understood by the slide views
const (
	LineBreak     = "<br>"
	EmphasisOpen  = "<b>"
	EmphasisClose = "</b>"

	// NonBreakingSpace glues an orphan word to the word after it
	NonBreakingSpace = " "
)

// emphasizedWord is wrapped in emphasis markup at every occurrence
const emphasizedWord = "Olimpiada"

// orphanWords are short connector words and abbreviations that must never
// end a displayed line. Single-letter prepositions, common short
// prepositions, and the typical Polish address abbreviations.
var orphanWords = []string{
	"a", "i", "o", "u", "w", "z",
	"do", "na", "po", "za", "od", "we", "ze", "ku",
	"nr", "im.", "woj.",
	"nad", "pod", "przez", "przy", "dla", "bez",
}

// parenRe matches a trailing parenthesized segment together with the
// whitespace before it
var parenRe = regexp.MustCompile(`(\s+)(\([^)]+\))`)

var orphanRes = compileOrphanRes()

func compileOrphanRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(orphanWords))
	for _, word := range orphanWords {
		// Leading boundary accepts a non-breaking space so that chains of
		// orphans ("a i w …") bind all the way through.
		res = append(res, regexp.MustCompile(`(?i)(^|\s|`+NonBreakingSpace+`)(`+regexp.QuoteMeta(word)+`)\s`))
	}
	return res
}

// FixOrphans shapes a display string: parenthesized trailing segments are
// moved to a forced new line, orphan words are bound to the following word
// with a non-breaking space at every occurrence, and the word "Olimpiada"
// is wrapped in emphasis markup. Emphasis is applied last so the orphan
// substitution cannot break the markup. Empty input yields an empty string.
func FixOrphans(text string) string {
	if text == "" {
		return ""
	}
	result := parenRe.ReplaceAllString(text, LineBreak+"$2")

	for _, re := range orphanRes {
		result = re.ReplaceAllString(result, "${1}${2}"+NonBreakingSpace)
	}

	result = strings.ReplaceAll(result, emphasizedWord, EmphasisOpen+emphasizedWord+EmphasisClose)
	return result
}
