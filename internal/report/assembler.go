// Package report assembles immutable misinformation reports. It is the only
// place a Report is constructed.
package report

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/credlens/credlens/internal/model"
)

// Assemble packages the pipeline outputs verbatim into a fresh Report with a
// unique identifier and creation timestamp.
func Assemble(article model.Article, claims []model.Claim, results []model.FactCheckResult, flags []string, overallScore float64) *model.Report {
	return &model.Report{
		ID:        NewID(),
		Article:   article,
		Claims:    claims,
		Results:   results,
		Score:     overallScore,
		Flags:     flags,
		CreatedAt: time.Now().UTC(),
	}
}

// NewID returns a 128-bit random identifier in hex. Collision probability is
// negligible at any realistic report volume.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform RNG is broken; there is no
		// meaningful degraded mode for identifier generation.
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
