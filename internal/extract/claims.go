package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/credlens/credlens/internal/model"
)

// contextWindow is the number of characters of surrounding text kept on each
// side of a claim sentence.
const contextWindow = 100

var numericToken = regexp.MustCompile(`[0-9]+`)

// ClaimExtractor extracts candidate factual claims from article text.
type ClaimExtractor struct {
	indicators []string
}

// NewClaimExtractor creates a claim extractor with the default indicator
// lexicon of reporting verbs and evidentiary phrases.
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{
		indicators: []string{
			"said", "says", "stated", "announced", "reported",
			"according to", "confirmed", "revealed", "claimed",
			"research shows", "study finds", "studies show",
			"data shows", "experts say", "officials say",
		},
	}
}

// Extract returns the claims found in the article content, in sentence order.
// A sentence qualifies if it contains an indicator phrase or any numeric
// token: statistics are common carriers of unverifiable claims, so the filter
// is deliberately high-recall. An empty result means the article is
// non-actionable.
func (e *ClaimExtractor) Extract(article model.Article) []model.Claim {
	sentences := splitSentences(article.Content)

	now := time.Now().UTC()
	var claims []model.Claim
	for _, sentence := range sentences {
		if !e.isClaim(sentence) {
			continue
		}
		claims = append(claims, model.Claim{
			Text:        sentence,
			Context:     claimContext(article.Content, sentence),
			ArticleID:   article.ID,
			ExtractedAt: now,
		})
	}
	return claims
}

func (e *ClaimExtractor) isClaim(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, indicator := range e.indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return numericToken.MatchString(sentence)
}

// claimContext returns a window of up to contextWindow characters on each side
// of the sentence's first occurrence in the content. If the sentence cannot be
// located verbatim (whitespace normalization can shift it), the context
// degrades to the sentence itself.
func claimContext(content, sentence string) string {
	idx := strings.Index(content, sentence)
	if idx < 0 {
		return sentence
	}
	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(sentence) + contextWindow
	if end > len(content) {
		end = len(content)
	}
	return content[start:end]
}

// splitSentences splits plain text into sentences using a terminator plus
// lookahead heuristic, so abbreviations and decimals do not split.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(text) && text[i+1] != ' ' && text[i+1] != '\t' {
				continue
			}
			if s := strings.TrimSpace(current.String()); keepSentence(s) {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); keepSentence(s) {
		sentences = append(sentences, s)
	}

	return sentences
}

// keepSentence drops fragments too short to carry an assertion and runaway
// "sentences" produced by malformed punctuation. The lower bound is
// deliberate: a terse statement like "GDP fell 3%." is excluded even though
// it contains a numeric token, trading a little recall for far fewer
// headline-fragment false positives.
func keepSentence(s string) bool {
	return len(s) >= 20 && len(s) <= 600
}
