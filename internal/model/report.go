package model

import "time"

// Report is the immutable output record for one processed article.
// Only the report assembler constructs Reports; nothing mutates one after
// construction.
type Report struct {
	ID        string            `json:"id"`
	Article   Article           `json:"article"`
	Claims    []Claim           `json:"claims"`
	Results   []FactCheckResult `json:"fact_check_results"`
	Score     float64           `json:"overall_score"` // in [0,1]; 0 = not credible, 1 = fully credible
	Flags     []string          `json:"flags"`         // human-readable stylistic flags
	CreatedAt time.Time         `json:"created_at"`

	Summary *Summary `json:"summary,omitempty"` // optional LLM summary; never affects the score
}

// Summary is an optional LLM-generated report summary. It is produced after
// scoring and never feeds back into it.
type Summary struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Text     string `json:"text"`
}
