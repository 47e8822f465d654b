package extract

import (
	"strings"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func testArticle(content string) model.Article {
	return model.Article{
		ID:      model.ArticleID("https://example.com/article"),
		Title:   "Test article",
		Content: content,
		URL:     "https://example.com/article",
	}
}

func TestClaimExtractor_IndicatorPhrases(t *testing.T) {
	extractor := NewClaimExtractor()

	content := "The minister said the program would continue into next year. " +
		"According to the report, several regions were affected severely. " +
		"It was a calm and uneventful afternoon in the capital city."

	claims := extractor.Extract(testArticle(content))

	if len(claims) != 2 {
		t.Fatalf("Expected 2 claims, got %d", len(claims))
	}
	if !strings.Contains(claims[0].Text, "said") {
		t.Errorf("Expected first claim to contain 'said', got %q", claims[0].Text)
	}
	if !strings.Contains(strings.ToLower(claims[1].Text), "according to") {
		t.Errorf("Expected second claim to contain 'according to', got %q", claims[1].Text)
	}
}

func TestClaimExtractor_NumericTokenQualifies(t *testing.T) {
	extractor := NewClaimExtractor()

	// No indicator phrase, but the numeric token makes it a claim.
	content := "Unemployment fell to 4 percent in the second quarter of this year."

	claims := extractor.Extract(testArticle(content))

	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
}

func TestClaimExtractor_NoClaims(t *testing.T) {
	extractor := NewClaimExtractor()

	content := "It was a beautiful day outside. The flowers were blooming everywhere around town."

	claims := extractor.Extract(testArticle(content))

	if len(claims) != 0 {
		t.Errorf("Expected 0 claims, got %d", len(claims))
	}
}

func TestClaimExtractor_ShortFragmentsExcluded(t *testing.T) {
	extractor := NewClaimExtractor()

	// Under the 20-char floor; not extracted despite the numeric token.
	content := "GDP fell 3%. " +
		"This longer sentence reports that exports grew 7 percent last year."

	claims := extractor.Extract(testArticle(content))

	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if strings.Contains(claims[0].Text, "GDP") {
		t.Errorf("Expected the short fragment to be dropped, got %q", claims[0].Text)
	}
}

func TestClaimExtractor_SentenceOrderPreserved(t *testing.T) {
	extractor := NewClaimExtractor()

	content := "First, officials said the bridge was structurally sound. " +
		"Second, engineers reported cracks in 3 support columns. " +
		"Third, the mayor announced an immediate closure of the bridge."

	claims := extractor.Extract(testArticle(content))

	if len(claims) != 3 {
		t.Fatalf("Expected 3 claims, got %d", len(claims))
	}
	for i, prefix := range []string{"First", "Second", "Third"} {
		if !strings.HasPrefix(claims[i].Text, prefix) {
			t.Errorf("Claim %d: expected prefix %q, got %q", i, prefix, claims[i].Text)
		}
	}
}

func TestClaimExtractor_ClaimsReferenceArticle(t *testing.T) {
	extractor := NewClaimExtractor()
	article := testArticle("The company confirmed 200 layoffs across two plants this month.")

	claims := extractor.Extract(article)

	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if claims[0].ArticleID != article.ID {
		t.Errorf("Expected claim to reference article %s, got %s", article.ID, claims[0].ArticleID)
	}
	if claims[0].ExtractedAt.IsZero() {
		t.Error("Expected extraction timestamp to be set")
	}
}

func TestClaimContext_Window(t *testing.T) {
	padding := strings.Repeat("x", 150)
	sentence := "The senator said the bill would pass."
	content := padding + sentence + padding

	ctx := claimContext(content, sentence)

	want := 100 + len(sentence) + 100
	if len(ctx) != want {
		t.Errorf("Expected context of %d chars, got %d", want, len(ctx))
	}
	if !strings.Contains(ctx, sentence) {
		t.Error("Expected context to contain the sentence")
	}
}

func TestClaimContext_ClampedToBounds(t *testing.T) {
	sentence := "The senator said the bill would pass."
	content := sentence + " Some trailing text."

	ctx := claimContext(content, sentence)

	if ctx != content {
		t.Errorf("Expected context clamped to full content, got %q", ctx)
	}
}

func TestClaimContext_FallbackWhenNotFound(t *testing.T) {
	sentence := "This sentence does not appear verbatim."
	ctx := claimContext("Entirely different content here.", sentence)

	if ctx != sentence {
		t.Errorf("Expected context to degrade to the sentence itself, got %q", ctx)
	}
}

func TestSplitSentences_AbbreviationsAndDecimals(t *testing.T) {
	text := "Growth reached 3.5 percent in the last quarter of the year. " +
		"Analysts expect the trend to continue for several more months."

	sentences := splitSentences(text)

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if !strings.Contains(sentences[0], "3.5") {
		t.Errorf("Expected decimal to stay inside first sentence, got %q", sentences[0])
	}
}
