// Package score reduces the stylistic score and per-claim verdicts into the
// overall credibility score.
package score

import "github.com/credlens/credlens/internal/model"

// Weights for blending: corroborated or refuted claims are a stronger signal
// than stylistic heuristics alone.
const (
	stylisticWeight = 0.4
	factCheckWeight = 0.6
)

// Combine blends the stylistic score with the fact-check results. With no
// results the stylistic score passes through unchanged. Inputs are assumed
// pre-clamped to [0,1] by their producers.
func Combine(stylisticScore float64, results []model.FactCheckResult) float64 {
	if len(results) == 0 {
		return stylisticScore
	}

	var sum float64
	for _, r := range results {
		sum += directional(r)
	}
	avg := sum / float64(len(results))

	return stylisticWeight*stylisticScore + factCheckWeight*avg
}

// directional maps a result to a credibility contribution: a confident FALSE
// drags the score down, a confident TRUE pulls it up, MIXED is always
// neutral.
func directional(r model.FactCheckResult) float64 {
	switch r.Verdict {
	case model.VerdictFalse:
		return 1 - r.Confidence
	case model.VerdictMixed:
		return 0.5
	default: // TRUE, UNVERIFIED, UNKNOWN
		return r.Confidence
	}
}
