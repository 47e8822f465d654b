// Package factcheck evaluates extracted claims against a remote fact-check
// oracle, degrading to a local heuristic classifier when the oracle is
// unconfigured or unavailable.
package factcheck

import (
	"context"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Checker evaluates a single claim. Implementations must always assign a
// verdict from the closed set and a confidence in [0,1].
type Checker interface {
	Check(ctx context.Context, claim model.Claim) (*model.FactCheckResult, error)
}

// NormalizeRating maps a free-text fact-check rating onto the closed verdict
// set. Matching is ordered substring matching: once an earlier family
// matches, later ones are never reached. That precedence is deliberate and
// load-bearing; do not reorder.
func NormalizeRating(rating string) model.Verdict {
	lower := strings.ToLower(rating)

	switch {
	case containsAny(lower, "true", "correct", "accurate"):
		return model.VerdictTrue
	case containsAny(lower, "false", "incorrect", "wrong"):
		return model.VerdictFalse
	case containsAny(lower, "mixed", "partly", "mostly"):
		return model.VerdictMixed
	case containsAny(lower, "unverified", "unproven"):
		return model.VerdictUnverified
	default:
		return model.VerdictUnknown
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
