// Package suggest finds the closest known name to a mistyped one.
package suggest

import (
	"strings"
)

// MinScore is the lowest similarity Closest accepts.
const MinScore = 0.6

// Levenshtein computes the edit distance between a and b: the minimum number
// of single-byte insertions, deletions, or substitutions turning one into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a the shorter string so the rows stay small
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Score is a similarity between 0 and 1 of a and b compared case-insensitively
// with underscores dropped, so "_moveSpeed" and "MoveSpeed" score 1.
func Score(a, b string) float64 {
	na, nb := normalize(a), normalize(b)
	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(na, nb))/float64(max(len(na), len(nb)))
}

// Closest returns the candidate most similar to name, or false when none
// reaches MinScore. Ties go to the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if s := Score(name, c); s > bestScore {
			best, bestScore = c, s
		}
	}

	if bestScore < MinScore {
		return "", false
	}

	return best, true
}

// Hint formats a " (did you mean X?)" suffix, or "" when nothing is close.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok && c != name {
		return " (did you mean " + c + "?)"
	}

	return ""
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}
