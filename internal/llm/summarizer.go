// Package llm generates an optional natural-language summary of a finished
// report. The summary is produced after scoring and never feeds back into
// the score.
package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/credlens/credlens/internal/model"
)

// Summarizer produces report summaries via an OpenAI-compatible endpoint.
type Summarizer struct {
	client *openai.Client
	model  string
	tokens int
}

// NewSummarizer creates a summarizer from configuration. It returns an error
// when the provider is enabled without an API key.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = openai.GPT4oMini
	}
	tokens := cfg.MaxTokens
	if tokens == 0 {
		tokens = 600
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  m,
		tokens: tokens,
	}, nil
}

// Summarize generates a short explanation of the report's score and flags.
func (s *Summarizer) Summarize(ctx context.Context, rep *model.Report) (*model.Summary, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You summarize credibility reports. Describe what the signals " +
					"and verdicts indicate; never assert that the article is true or false.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(rep),
			},
		},
		MaxTokens:   s.tokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion")
	}

	return &model.Summary{
		Provider: "openai",
		Model:    s.model,
		Text:     strings.TrimSpace(resp.Choices[0].Message.Content),
	}, nil
}

func buildPrompt(rep *model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Article: %s (%s)\n", rep.Article.Title, rep.Article.Source)
	fmt.Fprintf(&b, "Credibility score: %.2f (0 = not credible, 1 = fully credible)\n", rep.Score)
	fmt.Fprintf(&b, "Claims checked: %d of %d extracted\n", len(rep.Results), len(rep.Claims))

	if len(rep.Flags) > 0 {
		fmt.Fprintf(&b, "Stylistic flags:\n")
		for _, flag := range rep.Flags {
			fmt.Fprintf(&b, "- %s\n", flag)
		}
	}

	for i, r := range rep.Results {
		if i >= 10 {
			fmt.Fprintf(&b, "... and %d more results\n", len(rep.Results)-10)
			break
		}
		fmt.Fprintf(&b, "Verdict %s (%.1f): %s\n", r.Verdict, r.Confidence, r.ClaimText)
	}

	b.WriteString("\nWrite a 3-4 sentence summary of the credibility assessment.")
	return b.String()
}
