package factcheck

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/credlens/credlens/internal/model"
)

// Heuristic flag strings. They double as the explanation fragments.
const (
	flagConspiracy   = "Contains conspiracy language"
	flagVerification = "Contains verification language"
	flagUnsourced    = "Contains statistics without clear sources"

	defaultExplanation = "No strong indicators found; manual verification recommended"
)

var statisticPattern = regexp.MustCompile(`(?i)\d+\s*%|\d+\s+(million|billion|thousand)`)

// HeuristicChecker classifies claims locally using lexical patterns. It is
// the fallback when no remote oracle is configured or reachable, and it
// never returns an error.
type HeuristicChecker struct {
	conspiracyPhrases   []string
	verificationPhrases []string
	citationMarkers     []string
}

// NewHeuristicChecker creates a heuristic checker with the default lexicons.
func NewHeuristicChecker() *HeuristicChecker {
	return &HeuristicChecker{
		conspiracyPhrases: []string{
			"conspiracy", "cover-up", "cover up",
			"they don't want you to know", "wake up",
		},
		verificationPhrases: []string{
			"study published", "peer-reviewed", "official statement",
			"officially confirmed", "court ruled",
		},
		citationMarkers: []string{
			"according to", "source", "study", "research",
		},
	}
}

// Check classifies the claim. Rules are evaluated in a fixed order
// (conspiracy, then verification, then unsourced statistics) and later rules
// compose with, and can adjust, earlier assignments.
func (h *HeuristicChecker) Check(_ context.Context, claim model.Claim) (*model.FactCheckResult, error) {
	lower := strings.ToLower(claim.Text)

	confidence := 0.5
	verdict := model.VerdictUnverified
	var flags []string

	if containsAny(lower, h.conspiracyPhrases...) {
		confidence = 0.3
		verdict = model.VerdictFalse
		flags = append(flags, flagConspiracy)
	} else if containsAny(lower, h.verificationPhrases...) {
		confidence = 0.7
		verdict = model.VerdictTrue
		flags = append(flags, flagVerification)
	}

	if statisticPattern.MatchString(claim.Text) && !containsAny(lower, h.citationMarkers...) {
		confidence -= 0.2
		if confidence < 0.3 {
			confidence = 0.3
		}
		flags = append(flags, flagUnsourced)
	}

	explanation := defaultExplanation
	if len(flags) > 0 {
		explanation = strings.Join(flags, "; ")
	}

	return &model.FactCheckResult{
		ClaimText:   claim.Text,
		Verdict:     verdict,
		Confidence:  confidence,
		Explanation: explanation,
		CheckedAt:   time.Now().UTC(),
	}, nil
}
