package money

import "sort"

// tenderSteps are the note and coin denominations a cashier is likely to be
// handed, smallest to largest.
var tenderSteps = []int64{500, 1000, 2000, 5000, 10000, 20000}

// maxSuggestions caps the number of quick-tap amounts shown at the register.
const maxSuggestions = 5

// SuggestTenders proposes cash amounts for a sale total: the legally rounded
// total first, then the next multiple of each denomination step above it.
// The suggestions are shortcuts only; any amount the cashier types is valid.
func SuggestTenders(total int64) []int64 {
	base := Round(total)

	suggestions := []int64{base}
	seen := map[int64]bool{base: true}

	for _, step := range tenderSteps {
		// Smallest multiple of step strictly greater than base.
		next := (base/step + 1) * step
		if !seen[next] {
			suggestions = append(suggestions, next)
			seen[next] = true
		}
	}

	sort.Slice(suggestions, func(i, j int) bool { return suggestions[i] < suggestions[j] })

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
