// Package suggest ranks known names by how closely they resemble a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a string to be considered similar.
const threshold = 0.5

type candidate struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates that resemble target, best match first. Ties are
// broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	var ranked []candidate
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			ranked = append(ranked, candidate{name: name, score: score})
		}
	}
	slices.SortFunc(ranked, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(len(ranked), maxResults))
	for _, c := range ranked[:min(len(ranked), maxResults)] {
		result = append(result, c.name)
	}
	return result
}

// similarity scores a against b between 0 and 1. Prefixes of b score 0.9.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	longest := max(len(a), len(b))
	return 1.0 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the edit distance between a and b using two rolling rows.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
