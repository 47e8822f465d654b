package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/sink"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.FactCheck.RequestsPerSecond = 1000 // no pacing in tests
	cfg.Cache.Enabled = false
	return cfg
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func lowCredArticle() model.Article {
	url := "https://example.com/low"
	return model.Article{
		ID:    model.ArticleID(url),
		Title: "BREAKING!! SHOCKING NEWS REVEALED TODAY",
		Content: "Allegedly 90% of people were affected by the devastating scandal. " +
			"Reportedly the outrage caused a crisis and a disaster, rumored to be unconfirmed. " +
			"Supposedly 40% of residents apparently experienced the alleged outrage firsthand.",
		URL: url,
	}
}

func highCredArticle() model.Article {
	url := "https://example.com/high"
	return model.Article{
		ID:    model.ArticleID(url),
		Title: "City council approves road budget",
		Content: "According to the official study, the council approved a budget of 12 million dollars. " +
			"Officials said the road repairs would begin next spring across the district.",
		URL: url,
	}
}

func noClaimsArticle() model.Article {
	url := "https://example.com/none"
	return model.Article{
		ID:      model.ArticleID(url),
		Title:   "A quiet afternoon",
		Content: "It was a calm and quiet afternoon in the park. The flowers were blooming and shops stayed open late.",
		URL:     url,
	}
}

func TestProcessArticle_NoClaimsNoReport(t *testing.T) {
	p := New(testConfig(), sink.NewMemorySink(), testLogger())

	rep, err := p.ProcessArticle(context.Background(), noClaimsArticle())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rep != nil {
		t.Errorf("Expected no report for a no-claims article, got %+v", rep)
	}
}

func TestProcessArticle_LowScorePublished(t *testing.T) {
	mem := sink.NewMemorySink()
	p := New(testConfig(), mem, testLogger())

	rep, err := p.ProcessArticle(context.Background(), lowCredArticle())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rep == nil {
		t.Fatal("Expected a report")
	}

	if rep.Score >= 0.6 {
		t.Errorf("Expected low score, got %.2f", rep.Score)
	}
	if len(rep.Flags) == 0 {
		t.Error("Expected stylistic flags on a low-credibility article")
	}
	if len(rep.Claims) == 0 || len(rep.Results) != len(rep.Claims) {
		t.Errorf("Expected one result per claim, got %d claims / %d results",
			len(rep.Claims), len(rep.Results))
	}

	published := mem.Reports()
	if len(published) != 1 || published[0].ID != rep.ID {
		t.Errorf("Expected the report to be published exactly once, got %d", len(published))
	}
}

func TestProcessArticle_HighScoreReturnedNotPublished(t *testing.T) {
	mem := sink.NewMemorySink()
	p := New(testConfig(), mem, testLogger())

	rep, err := p.ProcessArticle(context.Background(), highCredArticle())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rep == nil {
		t.Fatal("Expected a report")
	}

	if rep.Score < 0.6 {
		t.Errorf("Expected score >= 0.6, got %.2f", rep.Score)
	}
	if len(mem.Reports()) != 0 {
		t.Errorf("Report at/above threshold must not be published, got %d", len(mem.Reports()))
	}
}

func TestProcessArticle_VerdictClosure(t *testing.T) {
	p := New(testConfig(), sink.NewMemorySink(), testLogger())

	rep, err := p.ProcessArticle(context.Background(), lowCredArticle())
	if err != nil || rep == nil {
		t.Fatalf("Expected report, got (%v, %v)", rep, err)
	}
	for _, r := range rep.Results {
		if !r.Verdict.Valid() {
			t.Errorf("Verdict %q outside closed set", r.Verdict)
		}
	}
	if rep.Score < 0 || rep.Score > 1 {
		t.Errorf("Overall score %.4f outside [0,1]", rep.Score)
	}
}

func TestProcessBatch_SkipsNonActionable(t *testing.T) {
	mem := sink.NewMemorySink()
	p := New(testConfig(), mem, testLogger())

	articles := []model.Article{lowCredArticle(), noClaimsArticle(), highCredArticle()}
	reports := p.ProcessBatch(context.Background(), articles)

	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports from 3 articles, got %d", len(reports))
	}
	for _, rep := range reports {
		if rep.Article.ID == model.ArticleID("https://example.com/none") {
			t.Error("No-claims article must not appear in the report sequence")
		}
	}
	if len(mem.Reports()) != 1 {
		t.Errorf("Expected 1 published report, got %d", len(mem.Reports()))
	}
}

func TestProcessBatch_Empty(t *testing.T) {
	p := New(testConfig(), sink.NewMemorySink(), testLogger())

	reports := p.ProcessBatch(context.Background(), nil)
	if len(reports) != 0 {
		t.Errorf("Expected no reports, got %d", len(reports))
	}
}
