package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/credlens/credlens/internal/cache"
	"github.com/credlens/credlens/internal/model"
)

// remoteConfidence is assigned to every remote-sourced verdict: the oracle
// does not expose a confidence score of its own.
const remoteConfidence = 0.8

// RemoteChecker queries a claim-review search endpoint (Google Fact Check
// Tools API shape) and normalizes its free-text ratings. Any transport
// failure or empty match degrades transparently to the local heuristic; the
// caller never sees a remote error.
type RemoteChecker struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	fallback   *HeuristicChecker
	cache      cache.Cache // nil disables response caching
	cacheTTL   time.Duration
}

// NewRemoteChecker creates a remote checker. A nil cache disables caching.
func NewRemoteChecker(cfg model.FactCheckConfig, c cache.Cache, ttl time.Duration) *RemoteChecker {
	return &RemoteChecker{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		fallback:   NewHeuristicChecker(),
		cache:      c,
		cacheTTL:   ttl,
	}
}

// claimSearchResponse mirrors the claims:search response shape.
type claimSearchResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// Check queries the oracle for the claim text. The first returned claim
// review wins; its rating is normalized into the closed verdict set.
func (r *RemoteChecker) Check(ctx context.Context, claim model.Claim) (*model.FactCheckResult, error) {
	if cached, ok := r.cachedResult(claim); ok {
		return cached, nil
	}

	result, err := r.query(ctx, claim)
	if err != nil || result == nil {
		// Transport failure or no matching review: degrade to the heuristic.
		return r.fallback.Check(ctx, claim)
	}

	r.storeResult(claim, result)
	return result, nil
}

func (r *RemoteChecker) query(ctx context.Context, claim model.Claim) (*model.FactCheckResult, error) {
	reqURL := fmt.Sprintf("%s?query=%s&key=%s",
		r.endpoint, url.QueryEscape(claim.Text), url.QueryEscape(r.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fact-check query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var search claimSearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	for _, c := range search.Claims {
		if len(c.ClaimReview) == 0 {
			continue
		}
		review := c.ClaimReview[0]

		var sources []string
		for _, cr := range c.ClaimReview {
			if cr.URL != "" {
				sources = append(sources, cr.URL)
			}
		}

		return &model.FactCheckResult{
			ClaimText:   claim.Text,
			Verdict:     NormalizeRating(review.TextualRating),
			Confidence:  remoteConfidence,
			Sources:     sources,
			Explanation: fmt.Sprintf("Rated %q by external fact checker", review.TextualRating),
			CheckedAt:   time.Now().UTC(),
		}, nil
	}

	// No review matched the claim.
	return nil, nil
}

func (r *RemoteChecker) cachedResult(claim model.Claim) (*model.FactCheckResult, bool) {
	if r.cache == nil {
		return nil, false
	}
	data, found := r.cache.Get(cache.Key(claim.Text))
	if !found {
		return nil, false
	}
	var result model.FactCheckResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	result.ClaimText = claim.Text
	return &result, true
}

func (r *RemoteChecker) storeResult(claim model.Claim, result *model.FactCheckResult) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = r.cache.Set(cache.Key(claim.Text), data, r.cacheTTL)
}
