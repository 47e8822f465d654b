package ingest

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"

	"github.com/credlens/credlens/internal/model"
)

// FeedReader polls RSS/Atom feeds and turns their items into normalized
// Articles. Items are deduplicated by URL hash across all feeds in one poll.
type FeedReader struct {
	parser *gofeed.Parser
	log    *logrus.Logger
}

// NewFeedReader creates a feed reader with the given User-Agent.
func NewFeedReader(userAgent string, log *logrus.Logger) *FeedReader {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &FeedReader{parser: parser, log: log}
}

// Poll fetches every feed URL and returns the deduplicated batch of
// articles. A feed that fails to parse is logged and skipped; the rest of
// the batch proceeds.
func (r *FeedReader) Poll(ctx context.Context, feedURLs []string) []model.Article {
	seen := make(map[string]bool)
	var articles []model.Article

	for _, feedURL := range feedURLs {
		feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			r.log.WithError(err).WithField("feed", feedURL).Warn("skipping feed: parse failed")
			continue
		}

		for _, item := range feed.Items {
			if item.Link == "" {
				continue
			}
			id := model.ArticleID(item.Link)
			if seen[id] {
				continue
			}
			seen[id] = true
			articles = append(articles, articleFromItem(feed, item))
		}
	}

	return articles
}

func articleFromItem(feed *gofeed.Feed, item *gofeed.Item) model.Article {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	published := time.Now().UTC()
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC()
	}

	var author string
	if len(item.Authors) > 0 {
		author = item.Authors[0].Name
	}

	return model.Article{
		ID:          model.ArticleID(item.Link),
		Title:       item.Title,
		Content:     StripHTML(content),
		Source:      feed.Title,
		URL:         item.Link,
		Author:      author,
		PublishedAt: published,
	}
}
