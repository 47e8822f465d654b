package model

import "time"

// Config is the immutable configuration surface consumed by the pipeline.
// It is constructed once at startup and passed into component constructors;
// nothing reads configuration ambiently after that.
type Config struct {
	// ScoreThreshold gates publishing: reports scoring below it are handed to
	// the configured sink. Reports at or above it are still returned.
	ScoreThreshold float64 `yaml:"score_threshold" json:"score_threshold"`

	// MinConfidence is the minimum fact-check confidence downstream consumers
	// should treat as actionable.
	MinConfidence float64 `yaml:"min_confidence" json:"min_confidence"`

	FactCheck FactCheckConfig `yaml:"fact_check" json:"fact_check"`
	HTTP      HTTPConfig      `yaml:"http" json:"http"`
	Cache     CacheConfig     `yaml:"cache" json:"cache"`
	LLM       LLMConfig       `yaml:"llm" json:"llm"`
	Output    OutputConfig    `yaml:"output" json:"output"`

	// Feeds are the RSS feed URLs polled by batch and watch runs.
	Feeds []string `yaml:"feeds" json:"feeds"`
}

// FactCheckConfig configures the remote fact-check oracle. An empty APIKey is
// a valid, expected state: the local heuristic checker is used instead.
type FactCheckConfig struct {
	APIKey            string        `yaml:"api_key" json:"-"`
	Endpoint          string        `yaml:"endpoint" json:"endpoint"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second"`
}

// HTTPConfig configures outbound article fetching.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
}

// CacheConfig configures caching of remote oracle responses.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
	Dir     string        `yaml:"dir" json:"dir"` // disk layer directory; empty = memory only
}

// LLMConfig configures the optional report summarizer.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "" = disabled
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"api_key" json:"-"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ScoreThreshold: 0.6,
		MinConfidence:  0.6,
		FactCheck: FactCheckConfig{
			Endpoint:          "https://factchecktools.googleapis.com/v1alpha1/claims:search",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 1.0,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "credlens/0.1 (+https://github.com/credlens/credlens)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     6 * time.Hour,
		},
		LLM: LLMConfig{
			MaxTokens: 600,
		},
	}
}
