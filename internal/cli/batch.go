package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/ingest"
	"github.com/credlens/credlens/internal/pipeline"
	"github.com/credlens/credlens/internal/sink"
)

var (
	batchFeedsFile string
	batchTimeout   time.Duration
	batchOut       string
)

// batchCmd polls the configured feeds once and processes every new article.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Poll RSS feeds once and process all articles sequentially",
	Long: `Batch polls the configured RSS feeds, normalizes and deduplicates their
articles, and runs each one through the credibility pipeline in order.
Articles are processed one at a time; claim checks within an article are
paced to the fact-check oracle's rate limit.

Feeds come from the config file ("feeds:" list) or from --feeds-file, one
URL per line, # comments allowed.

Example:
  credlens batch --feeds-file feeds.txt --out reports.jsonl`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchFeedsFile, "feeds-file", "", "file with feed URLs, one per line")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	batchCmd.Flags().StringVar(&batchOut, "out", "reports.jsonl", "file receiving low-credibility reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	log := newLogger()

	feeds := cfg.Feeds
	if batchFeedsFile != "" {
		fromFile, err := readFeedsFile(batchFeedsFile)
		if err != nil {
			return fmt.Errorf("read feeds file: %w", err)
		}
		feeds = fromFile
	}
	if len(feeds) == 0 {
		return fmt.Errorf("no feeds configured: set \"feeds\" in the config file or pass --feeds-file")
	}

	reader := ingest.NewFeedReader(cfg.HTTP.UserAgent, log)
	articles := reader.Poll(ctx, feeds)
	if verbose {
		fmt.Fprintf(os.Stderr, "Polled %d feeds, %d articles\n", len(feeds), len(articles))
	}

	p := pipeline.New(cfg, sink.NewFileSink(batchOut), log)
	reports := p.ProcessBatch(ctx, articles)

	low := 0
	for _, rep := range reports {
		if rep.Score < cfg.ScoreThreshold {
			low++
		}
	}
	fmt.Printf("Processed %d articles: %d reports, %d below threshold %.2f\n",
		len(articles), len(reports), low, cfg.ScoreThreshold)

	return nil
}

// readFeedsFile reads feed URLs from a file, one per line, skipping blanks
// and # comments.
func readFeedsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var feeds []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			feeds = append(feeds, line)
		}
	}
	return feeds, scanner.Err()
}
