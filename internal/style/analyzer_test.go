package style

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

const sourcedContent = "According to the official study, the data supports the conclusion."

func article(title, content string) model.Article {
	return model.Article{Title: title, Content: content}
}

func TestAnalyze_CleanArticle(t *testing.T) {
	analyzer := NewAnalyzer()

	score, flags := analyzer.Analyze(article("Quarterly results announced", sourcedContent))

	if score != 1.0 {
		t.Errorf("Expected score 1.0 for clean article, got %.2f", score)
	}
	if len(flags) != 0 {
		t.Errorf("Expected no flags, got %v", flags)
	}
}

func TestAnalyze_Signals(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		flag    string
		penalty float64
	}{
		{
			name:    "uncertainty language",
			title:   "Results announced",
			content: sourcedContent + " allegedly allegedly reportedly rumored supposedly apparently",
			flag:    FlagUncertainty,
			penalty: 0.20,
		},
		{
			name:    "sensational title exclamations",
			title:   "You will not believe this!!",
			content: sourcedContent,
			flag:    FlagSensational,
			penalty: 0.15,
		},
		{
			name:    "sensational title keyword",
			title:   "Breaking news from the capital",
			content: sourcedContent,
			flag:    FlagSensational,
			penalty: 0.15,
		},
		{
			name:    "excessive capitalization",
			title:   "NEW REPORT SAYS Economy Growing",
			content: sourcedContent,
			flag:    FlagCapitalization,
			penalty: 0.10,
		},
		{
			name:    "emotional language",
			title:   "Results announced",
			content: sourcedContent + " outrage scandal crisis disaster",
			flag:    FlagEmotional,
			penalty: 0.10,
		},
		{
			name:    "lack of sources",
			title:   "Results announced",
			content: "Something happened somewhere and everyone talked about it.",
			flag:    FlagNoSources,
			penalty: 0.20,
		},
	}

	analyzer := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, flags := analyzer.Analyze(article(tt.title, tt.content))

			if !containsFlag(flags, tt.flag) {
				t.Fatalf("Expected flag %q, got %v", tt.flag, flags)
			}
			want := 1.0 - tt.penalty
			if math.Abs(score-want) > 1e-9 {
				t.Errorf("Expected score %.2f, got %.2f", want, score)
			}
		})
	}
}

func TestAnalyze_FlagOnlyWhenTriggered(t *testing.T) {
	analyzer := NewAnalyzer()

	// Exactly 5 uncertainty hits: threshold is strictly greater than 5.
	content := sourcedContent + " allegedly reportedly rumored supposedly apparently"
	score, flags := analyzer.Analyze(article("Results announced", content))

	if containsFlag(flags, FlagUncertainty) {
		t.Errorf("Uncertainty flag fired at exactly 5 hits: %v", flags)
	}
	if score != 1.0 {
		t.Errorf("Expected score 1.0, got %.2f", score)
	}
}

func TestAnalyze_ScenarioSensationalUnsourced(t *testing.T) {
	analyzer := NewAnalyzer()

	a := article(
		"BREAKING!! Scientists Reveal SHOCKING Truth",
		"Allegedly this happened. Reportedly it was rumored and supposedly apparently "+
			"unconfirmed claims spread. Allegedly again, nobody knows anything for certain.",
	)

	score, flags := analyzer.Analyze(a)

	for _, want := range []string{FlagSensational, FlagUncertainty, FlagNoSources} {
		if !containsFlag(flags, want) {
			t.Errorf("Expected flag %q, got %v", want, flags)
		}
	}
	if score > 0.45 {
		t.Errorf("Expected score <= 0.45, got %.2f", score)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	a := article("SHOCKING!! THE BIG SECRET THEY HID", "Allegedly it was rumored, supposedly.")

	score1, flags1 := analyzer.Analyze(a)
	score2, flags2 := analyzer.Analyze(a)

	if score1 != score2 {
		t.Errorf("Scores differ: %.4f vs %.4f", score1, score2)
	}
	if !reflect.DeepEqual(flags1, flags2) {
		t.Errorf("Flags differ: %v vs %v", flags1, flags2)
	}
}

func TestAnalyze_ScoreClamped(t *testing.T) {
	analyzer := NewAnalyzer()

	// Every signal fires at once.
	a := article(
		"BREAKING!! UNBELIEVABLE SHOCKING NEWS TODAY",
		"allegedly reportedly rumored unconfirmed supposedly apparently "+
			"outrage scandal crisis disaster devastating "+
			strings.Repeat("nothing is certain about any of this. ", 3),
	)

	score, flags := analyzer.Analyze(a)

	if score < 0 || score > 1 {
		t.Errorf("Score out of [0,1]: %.2f", score)
	}
	if len(flags) != 5 {
		t.Errorf("Expected all 5 flags, got %v", flags)
	}
}

func containsFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
