// Package style scores misinformation-style writing signals in an article.
// The analysis is purely lexical: same input, same output, no external calls.
package style

import (
	"regexp"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Flag strings pushed when a penalty fires. Every point deducted from the
// stylistic score is explained by exactly one of these.
const (
	FlagUncertainty    = "High uncertainty language detected"
	FlagSensational    = "Sensational title detected"
	FlagCapitalization = "Excessive capitalization in title"
	FlagEmotional      = "High emotional language detected"
	FlagNoSources      = "Lack of cited sources"
)

var (
	sensationalTitle = regexp.MustCompile(`(?i)!{2,}|BREAKING|SHOCKING|UNBELIEVABLE`)
	allCapsWord      = regexp.MustCompile(`\b[A-Z]{3,}\b`)
)

// Analyzer scans article text and title for stylistic misinformation signals.
type Analyzer struct {
	uncertaintyWords []string
	emotionalWords   []string
	sourceMarkers    []string
}

// NewAnalyzer creates an analyzer with the default lexicons.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		uncertaintyWords: []string{
			"allegedly", "reportedly", "rumored", "unconfirmed",
			"sources say", "some say", "might", "could be",
			"possibly", "supposedly", "apparently",
		},
		emotionalWords: []string{
			"outrage", "scandal", "crisis", "disaster", "devastating",
		},
		sourceMarkers: []string{
			"according to", "source", "research", "study", "data",
		},
	}
}

// Analyze returns the stylistic credibility score and the list of fired
// flags. The score starts at 1.0 and each signal applies an independent
// additive penalty; all signals are evaluated even after one fires. The
// result is clamped to [0,1].
func (a *Analyzer) Analyze(article model.Article) (float64, []string) {
	score := 1.0
	var flags []string

	content := strings.ToLower(article.Content)

	if countHits(content, a.uncertaintyWords) > 5 {
		score -= 0.20
		flags = append(flags, FlagUncertainty)
	}

	if sensationalTitle.MatchString(article.Title) {
		score -= 0.15
		flags = append(flags, FlagSensational)
	}

	if distinctAllCapsWords(article.Title) > 2 {
		score -= 0.10
		flags = append(flags, FlagCapitalization)
	}

	if countHits(content, a.emotionalWords) > 3 {
		score -= 0.10
		flags = append(flags, FlagEmotional)
	}

	if countHits(content, a.sourceMarkers) == 0 {
		score -= 0.20
		flags = append(flags, FlagNoSources)
	}

	return clamp01(score), flags
}

// countHits counts total occurrences of all lexicon entries in text.
// Text must already be lowercased.
func countHits(text string, lexicon []string) int {
	total := 0
	for _, word := range lexicon {
		total += strings.Count(text, word)
	}
	return total
}

// distinctAllCapsWords counts distinct all-caps words of three or more
// letters in the title.
func distinctAllCapsWords(title string) int {
	seen := make(map[string]bool)
	for _, w := range allCapsWord.FindAllString(title, -1) {
		seen[w] = true
	}
	return len(seen)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
