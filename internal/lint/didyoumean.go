package lint

import (
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
)

// suggestionThreshold is the maximum edit distance for a candidate to count
// as a plausible misspelling.
const suggestionThreshold = 3

// didYouMean picks the candidate with the lowest edit distance to choice,
// if any lands within the threshold. Candidates are truncated to the rune
// length of the choice to improve the odds of catching suffix variations.
func didYouMean(choice string, candidates []string) (string, bool) {
	lowered := strings.ToLower(choice)
	choiceLen := utf8.RuneCountInString(lowered)

	best := ""
	bestDistance := suggestionThreshold + 1
	for _, candidate := range candidates {
		trimmed := strings.ToLower(candidate)
		if runes := []rune(trimmed); len(runes) > choiceLen {
			trimmed = string(runes[:choiceLen])
		}
		distance := smetrics.WagnerFischer(lowered, trimmed, 1, 1, 1)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best, best != ""
}
