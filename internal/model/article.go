package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Article is a normalized news article supplied by the ingestion boundary.
// Content is plain text (HTML already stripped). Immutable once constructed;
// identity is derived from the source URL.
type Article struct {
	ID          string    `json:"id"`      // sha256 of the canonical URL
	Title       string    `json:"title"`
	Content     string    `json:"content"` // plain text, HTML stripped
	Source      string    `json:"source"`  // feed or site name
	URL         string    `json:"url"`     // canonical URL
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// ArticleID derives the deterministic article identity from its URL.
// Two articles with the same URL are the same article.
func ArticleID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}
