package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/ingest"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/pipeline"
	"github.com/credlens/credlens/internal/sink"
)

var (
	watchInterval time.Duration
	watchOut      string
)

// watchCmd repeatedly polls the configured feeds at a fixed interval.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll feeds on an interval and process new articles",
	Long: `Watch runs the batch pipeline repeatedly: every interval the configured
feeds are re-polled and new articles processed. Articles already seen in a
previous tick are skipped via the oracle response cache and URL dedup.

Stop with Ctrl-C; the current article finishes before shutdown.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchInterval, "interval", 15*time.Minute, "poll interval")
	watchCmd.Flags().StringVar(&watchOut, "out", "reports.jsonl", "file receiving low-credibility reports")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()
	log := newLogger()

	if len(cfg.Feeds) == 0 {
		return fmt.Errorf("no feeds configured: set \"feeds\" in the config file")
	}

	reader := ingest.NewFeedReader(cfg.HTTP.UserAgent, log)
	p := pipeline.New(cfg, sink.NewFileSink(watchOut), log)

	// Articles processed in earlier ticks; no point re-reporting them.
	processed := make(map[string]bool)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	fmt.Fprintf(os.Stderr, "Watching %d feeds every %v\n", len(cfg.Feeds), watchInterval)

	for {
		tick(ctx, p, reader, cfg.Feeds, processed, log)

		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "Shutting down.")
			return nil
		case <-ticker.C:
		}
	}
}

func tick(ctx context.Context, p *pipeline.Pipeline, reader *ingest.FeedReader, feeds []string, processed map[string]bool, log *logrus.Logger) {
	articles := reader.Poll(ctx, feeds)

	var fresh []model.Article
	for _, a := range articles {
		if !processed[a.ID] {
			processed[a.ID] = true
			fresh = append(fresh, a)
		}
	}

	reports := p.ProcessBatch(ctx, fresh)
	log.Infof("tick: %d articles (%d new), %d reports", len(articles), len(fresh), len(reports))
}
