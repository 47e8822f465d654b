package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/ingest"
	"github.com/credlens/credlens/internal/pipeline"
	"github.com/credlens/credlens/internal/sink"
)

var (
	scanTimeout   time.Duration
	scanThreshold float64
	scanOut       string
	scanLLM       bool
	scanLLMModel  string
)

// scanCmd analyzes a single article URL.
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch one article and generate a credibility report",
	Long: `Scan fetches a single article page, extracts candidate factual claims,
scores stylistic misinformation signals, checks claims against the
fact-check oracle (or the local heuristic when no API key is configured),
and prints the combined report as JSON.

Reports scoring below the threshold are also appended to the report file.

Example:
  credlens scan https://example.com/news/article
  credlens scan https://example.com/news/article --threshold 0.5 --out low.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Minute, "overall scan timeout")
	scanCmd.Flags().Float64Var(&scanThreshold, "threshold", 0, "publish threshold override (0 = use config)")
	scanCmd.Flags().StringVar(&scanOut, "out", "reports.jsonl", "file receiving low-credibility reports")
	scanCmd.Flags().BoolVar(&scanLLM, "llm", false, "generate an LLM summary of the report")
	scanCmd.Flags().StringVar(&scanLLMModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	cfg := loadConfig()
	if scanThreshold > 0 {
		cfg.ScoreThreshold = scanThreshold
	}
	if scanLLM {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = scanLLMModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	log := newLogger()

	fetcher := ingest.NewFetcher(cfg.HTTP)
	article, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch article: %w", err)
	}

	p := pipeline.New(cfg, sink.NewFileSink(scanOut), log)

	rep, err := p.ProcessArticle(ctx, *article)
	if err != nil {
		return fmt.Errorf("process article: %w", err)
	}
	if rep == nil {
		fmt.Fprintln(os.Stderr, "No claims extracted; article is non-actionable.")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d claims, %d checked, score %.2f, %d flags\n",
			len(rep.Claims), len(rep.Results), rep.Score, len(rep.Flags))
	}

	return nil
}
