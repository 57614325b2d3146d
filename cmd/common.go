package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/ai"
	"github.com/spigell/skillmatch/internal/ai/gemini"
	"github.com/spigell/skillmatch/internal/analysis"
	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/ranking"
	"github.com/spigell/skillmatch/internal/secrets"
	"github.com/spigell/skillmatch/internal/store"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

// setup builds the logger and loads the config shared by every command.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return l, config
}

func redacted(c *Config) *Config {
	if c.AI == nil || c.AI.Gemini == nil || c.AI.Gemini.APIKey == "" {
		return c
	}
	cp := *c
	aiCfg := *c.AI
	gem := *c.AI.Gemini
	gem.APIKey = "***"
	aiCfg.Gemini = &gem
	cp.AI = &aiCfg
	return &cp
}

func addRankingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("recommended", false, "show only entries scoring at least the minimum score")
	cmd.Flags().Int("min-score", 0, fmt.Sprintf("minimum score for --recommended (default %d)", ranking.DefaultRecommendedThreshold))
	cmd.Flags().Bool("demo", false, "add random variance to display scores")
	cmd.Flags().Uint64("seed", 0, "seed for --demo variance (default is time based)")
}

// analysisOptions merges the ranking section of the config with command flags.
// Flags win when set.
func analysisOptions(cmd *cobra.Command, config *Config) analysis.Options {
	var opts analysis.Options
	if r := config.Ranking; r != nil {
		opts.Ranking.RecommendedOnly = r.RecommendedOnly
		opts.Ranking.MinimumScore = r.MinimumScore
		opts.GapLimit = r.GapLimit
	}

	flags := cmd.Flags()
	if flags.Changed("recommended") {
		opts.Ranking.RecommendedOnly, _ = flags.GetBool("recommended")
	}
	if flags.Changed("min-score") {
		opts.Ranking.MinimumScore, _ = flags.GetInt("min-score")
	}
	if demo, _ := flags.GetBool("demo"); demo {
		seed, _ := flags.GetUint64("seed")
		if !flags.Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}
		opts.Ranking.Jitter = ranking.NewJitter(seed, ranking.DefaultJitterMax)
	}

	return opts
}

// openStore returns a directory store when store-dir is configured and an
// in-memory one otherwise.
func openStore(config *Config) (store.Store, error) {
	dir := strings.TrimSpace(config.StoreDir)
	if dir == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewFileStore(dir)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newAIMatcher(ctx context.Context, cfg *AIConfig, l *zap.Logger) (ai.Matcher, string, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, "", fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	gem := cfg.Gemini
	if gem == nil {
		gem = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  gem.APIKeyFile,
		Value: gem.APIKey,
		Env:   geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w (set ai.gemini.api-key-file or %s)", err, geminiAPIKeyEnv)
	}

	genLogger := l.With(zap.Int("ai_retry_attempts", gem.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, gem.Model, gem.MaxRetries, genLogger)
	if err != nil {
		return nil, "", err
	}

	minScore := max(cfg.MinimumFitScore, 0)

	matcher := gemini.NewMatcher(generator, minScore, gem.MaxLogLength, l.With(zap.Float64("minimum_fit_score", minScore)))
	matcher.SetPromptOverrides(cfg.Prompt)

	return matcher, generator.Model(), nil
}
