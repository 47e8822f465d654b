package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/credlens/credlens/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "credlens",
	Short: "credlens - explainable credibility scoring for news articles",
	Long: `credlens assigns a credibility score to news articles by extracting
candidate factual claims, scoring stylistic misinformation signals, and
reconciling them with external fact-check verdicts.

It produces a probabilistic, explainable signal - it does not determine
what is true. Every point deducted from a score is explained by a flag.

Low-scoring reports are handed to a configurable report sink; all reports
are printed to the caller regardless of score.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("credlens v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.credlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads the config file and CREDLENS_* environment variables.
// A local .env file is loaded first so API keys can live next to the binary
// during development.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.credlens")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	bindEnvironment()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// bindEnvironment maps CREDLENS_* environment variables onto config keys.
// Nested keys use underscores in the variable name, so fact_check.api_key
// is CREDLENS_FACT_CHECK_API_KEY.
func bindEnvironment() {
	viper.SetEnvPrefix("CREDLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the process logger. Library code logs through this;
// user-facing CLI output stays on plain stdout/stderr.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// loadConfig overlays file and environment settings onto the defaults.
// Keys mirror the yaml shape that "config init" writes, so a generated
// file round-trips without renaming. The result is treated as immutable
// from here on.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	viper.SetDefault("score_threshold", cfg.ScoreThreshold)
	viper.SetDefault("min_confidence", cfg.MinConfidence)
	viper.SetDefault("fact_check.endpoint", cfg.FactCheck.Endpoint)
	viper.SetDefault("http.user_agent", cfg.HTTP.UserAgent)

	cfg.ScoreThreshold = viper.GetFloat64("score_threshold")
	cfg.MinConfidence = viper.GetFloat64("min_confidence")
	cfg.FactCheck.APIKey = viper.GetString("fact_check.api_key")
	cfg.FactCheck.Endpoint = viper.GetString("fact_check.endpoint")
	cfg.HTTP.UserAgent = viper.GetString("http.user_agent")
	cfg.Cache.Dir = viper.GetString("cache.dir")
	if feeds := viper.GetStringSlice("feeds"); len(feeds) > 0 {
		cfg.Feeds = feeds
	}
	cfg.Output.Verbose = verbose

	return cfg
}
