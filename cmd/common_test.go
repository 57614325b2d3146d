package cmd

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/spigell/skillmatch/internal/store"
)

func newRankingCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addRankingFlags(c)
	if err := c.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return c
}

func TestAnalysisOptions(t *testing.T) {
	config := &Config{Ranking: &RankingConfig{RecommendedOnly: true, MinimumScore: 70, GapLimit: 8}}

	opts := analysisOptions(newRankingCommand(t), config)
	if !opts.Ranking.RecommendedOnly || opts.Ranking.MinimumScore != 70 || opts.GapLimit != 8 {
		t.Fatalf("config values not applied: %+v", opts)
	}
	if opts.Ranking.Jitter != nil {
		t.Fatal("jitter must be off without --demo")
	}

	opts = analysisOptions(newRankingCommand(t, "--recommended=false", "--min-score", "40", "--demo", "--seed", "3"), config)
	if opts.Ranking.RecommendedOnly || opts.Ranking.MinimumScore != 40 {
		t.Fatalf("flags must override config: %+v", opts)
	}
	if opts.Ranking.Jitter == nil {
		t.Fatal("expected jitter with --demo")
	}
}

func TestRedacted(t *testing.T) {
	config := &Config{AI: &AIConfig{Gemini: &GeminiConfig{APIKey: "secret", Model: "m"}}}

	r := redacted(config)
	if r.AI.Gemini.APIKey != "***" || r.AI.Gemini.Model != "m" {
		t.Fatalf("unexpected redacted config: %+v", r.AI.Gemini)
	}
	if config.AI.Gemini.APIKey != "secret" {
		t.Fatal("original config must not be modified")
	}

	plain := &Config{}
	if redacted(plain) != plain {
		t.Fatal("config without key must be returned as is")
	}
}

func TestOpenStore(t *testing.T) {
	s, err := openStore(&Config{})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if _, ok := s.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", s)
	}

	s, err = openStore(&Config{StoreDir: t.TempDir()})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if _, ok := s.(*store.FileStore); !ok {
		t.Fatalf("expected file store, got %T", s)
	}
}
