package model

import "time"

// Verdict is the closed classification of a fact-check outcome.
// No other value is ever assigned.
type Verdict string

const (
	VerdictTrue       Verdict = "TRUE"
	VerdictFalse      Verdict = "FALSE"
	VerdictMixed      Verdict = "MIXED"
	VerdictUnverified Verdict = "UNVERIFIED"
	VerdictUnknown    Verdict = "UNKNOWN"
)

// Valid reports whether v is a member of the closed verdict set.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictMixed, VerdictUnverified, VerdictUnknown:
		return true
	}
	return false
}

// FactCheckResult is the evaluation of one Claim. Exactly one result exists
// per successfully checked claim; a claim whose check failed produces none.
type FactCheckResult struct {
	ClaimText   string    `json:"claim_text"`        // text of the claim this evaluates
	Verdict     Verdict   `json:"verdict"`
	Confidence  float64   `json:"confidence"`        // in [0,1]
	Sources     []string  `json:"sources,omitempty"` // supporting review URLs, possibly empty
	Explanation string    `json:"explanation"`
	CheckedAt   time.Time `json:"checked_at"`
}
