package factcheck

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/credlens/credlens/internal/model"
)

// Orchestrator runs claims through a Checker strictly sequentially, pacing
// calls to respect the oracle's rate limit. Claims within one article are
// never fanned out.
type Orchestrator struct {
	checker Checker
	limiter *rate.Limiter
	log     *logrus.Logger
}

// NewOrchestrator creates an orchestrator pacing checks at requestsPerSecond.
// Burst is fixed at 1 so the gap between consecutive checks is always the
// full inter-call delay.
func NewOrchestrator(checker Checker, requestsPerSecond float64, log *logrus.Logger) *Orchestrator {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1.0
	}
	return &Orchestrator{
		checker: checker,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		log:     log,
	}
}

// CheckClaims evaluates each claim in input order and returns the results
// that succeeded. A failure while checking one claim is logged and that
// claim skipped; partial results are always returned, never an
// all-or-nothing failure. Cancellation takes effect between iterations.
func (o *Orchestrator) CheckClaims(ctx context.Context, claims []model.Claim) []model.FactCheckResult {
	results := make([]model.FactCheckResult, 0, len(claims))

	for i, claim := range claims {
		if err := o.limiter.Wait(ctx); err != nil {
			o.log.WithError(err).Warn("claim checking interrupted")
			break
		}

		result, err := o.checker.Check(ctx, claim)
		if err != nil {
			o.log.WithError(err).WithField("claim", truncate(claim.Text, 80)).
				Warn("skipping claim: check failed")
			continue
		}

		o.log.WithFields(logrus.Fields{
			"claim":      i,
			"verdict":    result.Verdict,
			"confidence": result.Confidence,
		}).Debug("claim checked")

		results = append(results, *result)
	}

	return results
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
