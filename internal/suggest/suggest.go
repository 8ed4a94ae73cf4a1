// internal/suggest/suggest.go

// Package suggest finds near-miss name suggestions for error messages,
// so an unknown command or flag can be answered with a "did you mean"
// hint.
package suggest

import (
	"github.com/agext/levenshtein"
)

// maxDistance is the largest edit distance still treated as a plausible
// typo. Anything further away is noise, not a suggestion.
const maxDistance = 2

// Near returns the candidate closest to the given name, or the empty
// string when nothing is within the typo threshold. Ties keep the
// earliest candidate so suggestion order is stable.
func Near(given string, candidates []string) string {
	best := ""
	bestDist := maxDistance + 1
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		dist := levenshtein.Distance(given, candidate, nil)
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}
