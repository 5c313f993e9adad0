// Package similarity scores how close two bags of words are.
package similarity

import "math"

// Score returns the cosine similarity of the word-frequency vectors of a and b.
// Words are compared case-sensitively. Empty input scores 0.
func Score(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	countsA := frequencies(a)
	countsB := frequencies(b)

	var dot float64
	for word, n := range countsA {
		dot += n * countsB[word]
	}

	denom := math.Sqrt(sumOfSquares(countsA) * sumOfSquares(countsB))
	if denom == 0 {
		return 0
	}
	return dot / denom
}

func frequencies(words []string) map[string]float64 {
	counts := make(map[string]float64, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}

func sumOfSquares(counts map[string]float64) float64 {
	var sum float64
	for _, n := range counts {
		sum += n * n
	}
	return sum
}
