// Package distance implements the weighted Levenshtein edit distance used
// to score dictionary candidates against a query, plus the similarity
// measure derived from it.
package distance

import (
	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/confusion"
	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/token"
)

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Weighted computes the weighted edit distance between token sequences a and
// b: insertion and deletion cost 1, substitution costs confusion.Lookup of
// the two token values (0 for equal tokens), matching cost 0. Uses the
// standard two-row space-optimized Levenshtein recurrence, O(len(a)*len(b))
// time and O(min(len(a),len(b))) space.
func Weighted(a, b []token.Token, conf *confusion.Table) float64 {
	// Keep the shorter sequence as the row dimension to minimize memory.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]float64, len(a)+1)
	curr := make([]float64, len(a)+1)
	for i := range prev {
		prev[i] = float64(i)
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = float64(j)
		for i := 1; i <= len(a); i++ {
			subCost := conf.Lookup(a[i-1].Value, b[j-1].Value)
			curr[i] = min3(
				prev[i]+1,          // deletion
				curr[i-1]+1,        // insertion
				prev[i-1]+subCost,  // substitution (0 when tokens equal)
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity derives a [0,1] similarity score from an edit distance over
// sequences of the given lengths: 1 - distance/max(lenA,lenB), clamped, with
// the convention that two empty sequences are identical (similarity 1).
func Similarity(dist float64, lenA, lenB int) float64 {
	if lenA == 0 && lenB == 0 {
		return 1
	}
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	sim := 1 - dist/float64(maxLen)
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
