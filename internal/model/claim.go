package model

import "time"

// Claim is a sentence extracted from an article that looks like a candidate
// factual assertion. A Claim references its owning Article read-only and never
// outlives or mutates it.
type Claim struct {
	Text        string    `json:"text"`       // the extracted sentence
	Context     string    `json:"context"`    // bounded window around the sentence in the source content
	ArticleID   string    `json:"article_id"` // owning article identity
	ExtractedAt time.Time `json:"extracted_at"`
}
