// Package pipeline drives the claim-extraction, stylistic-analysis,
// fact-check and scoring stages for one article at a time.
package pipeline

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/credlens/credlens/internal/cache"
	"github.com/credlens/credlens/internal/extract"
	"github.com/credlens/credlens/internal/factcheck"
	"github.com/credlens/credlens/internal/llm"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/report"
	"github.com/credlens/credlens/internal/score"
	"github.com/credlens/credlens/internal/sink"
	"github.com/credlens/credlens/internal/style"
)

// Pipeline processes articles into credibility reports. All state is
// read-only after construction; articles never share mutable state, so
// processing one article is independent of any other.
type Pipeline struct {
	cfg          *model.Config
	extractor    *extract.ClaimExtractor
	analyzer     *style.Analyzer
	orchestrator *factcheck.Orchestrator
	reports      sink.ReportSink
	summarizer   *llm.Summarizer // nil when disabled
	log          *logrus.Logger
}

// New creates a pipeline from configuration. With a fact-check API key
// configured the remote oracle is used (falling back per claim on failure);
// without one every claim goes through the local heuristic checker.
func New(cfg *model.Config, reports sink.ReportSink, log *logrus.Logger) *Pipeline {
	var checker factcheck.Checker
	if cfg.FactCheck.APIKey != "" {
		checker = factcheck.NewRemoteChecker(cfg.FactCheck, newOracleCache(cfg.Cache), cfg.Cache.TTL)
	} else {
		checker = factcheck.NewHeuristicChecker()
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			log.WithError(err).Warn("LLM summarizer disabled")
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		cfg:          cfg,
		extractor:    extract.NewClaimExtractor(),
		analyzer:     style.NewAnalyzer(),
		orchestrator: factcheck.NewOrchestrator(checker, cfg.FactCheck.RequestsPerSecond, log),
		reports:      reports,
		summarizer:   summarizer,
		log:          log,
	}
}

func newOracleCache(cfg model.CacheConfig) cache.Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir != "" {
		return cache.NewLayeredCache(cfg.TTL, cfg.Dir, cfg.TTL)
	}
	return cache.NewMemoryCache(cfg.TTL, cfg.TTL)
}

// ProcessArticle runs one article through the full pipeline. An article
// yielding zero claims is non-actionable and produces no report; that is a
// terminal outcome, not an error. Reports scoring below the configured
// threshold are handed to the sink; every report is returned to the caller.
func (p *Pipeline) ProcessArticle(ctx context.Context, article model.Article) (*model.Report, error) {
	claims := p.extractor.Extract(article)
	if len(claims) == 0 {
		p.log.WithField("article", article.ID).Debug("no claims extracted, skipping")
		return nil, nil
	}

	stylistic, flags := p.analyzer.Analyze(article)
	results := p.orchestrator.CheckClaims(ctx, claims)
	overall := score.Combine(stylistic, results)

	rep := report.Assemble(article, claims, results, flags, overall)

	if p.summarizer != nil {
		summary, err := p.summarizer.Summarize(ctx, rep)
		if err != nil {
			p.log.WithError(err).Warn("summary generation failed")
		} else {
			rep.Summary = summary
		}
	}

	if rep.Score < p.cfg.ScoreThreshold {
		handle, err := p.reports.Publish(ctx, rep)
		if err != nil {
			p.log.WithError(err).WithField("report", rep.ID).Warn("publish failed")
		} else {
			p.log.WithFields(logrus.Fields{
				"report": rep.ID,
				"score":  rep.Score,
				"handle": handle,
			}).Info("low-credibility report published")
		}
	}

	return rep, nil
}

// ProcessBatch processes articles one at a time, in order. A failing article
// is logged and skipped; the batch always completes. The returned slice may
// legitimately be shorter than the input: non-actionable and failed articles
// produce no report.
func (p *Pipeline) ProcessBatch(ctx context.Context, articles []model.Article) []*model.Report {
	reports := make([]*model.Report, 0, len(articles))

	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			p.log.WithError(err).Warn("batch interrupted")
			break
		}

		rep, err := p.ProcessArticle(ctx, article)
		if err != nil {
			p.log.WithError(err).WithField("article", article.ID).
				Warn("skipping article: processing failed")
			continue
		}
		if rep == nil {
			continue
		}
		reports = append(reports, rep)
	}

	return reports
}
