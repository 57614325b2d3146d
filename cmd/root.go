package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/skillmatch/internal/ai/gemini"
)

const (
	app       = "skillmatch"
	envPrefix = "SKILLMATCH"
)

type Config struct {
	JobsFile       string `mapstructure:"jobs-file"`
	CandidatesFile string `mapstructure:"candidates-file"`
	ExcludeFile    string `mapstructure:"exclude-file"`
	StoreDir       string `mapstructure:"store-dir"`
	Exclude        *struct {
		Employers []string `mapstructure:"employers"`
	} `mapstructure:"exclude"`
	Ranking *RankingConfig `mapstructure:"ranking"`
	AI      *AIConfig      `mapstructure:"ai"`
}

type RankingConfig struct {
	RecommendedOnly bool `mapstructure:"recommended-only"`
	MinimumScore    int  `mapstructure:"minimum-score"`
	GapLimit        int  `mapstructure:"gap-limit"`
}

type AIConfig struct {
	Enabled         bool                   `mapstructure:"enabled"`
	Provider        string                 `mapstructure:"provider"`
	MinimumFitScore float64                `mapstructure:"minimum-fit-score"`
	Gemini          *GeminiConfig          `mapstructure:"gemini"`
	Prompt          gemini.PromptOverrides `mapstructure:"prompt"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

func (c *Config) excludedEmployers() []string {
	if c.Exclude == nil {
		return nil
	}
	return c.Exclude.Employers
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillmatch extracts skills from a resume, matches them against jobs and suggests a career path",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("jobs-file", "jobs.json", "json file with the job catalog")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("jobs-file", rootCmd.PersistentFlags().Lookup("jobs-file"))
}

func initConfig() {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit --config must exist; the default file is optional
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	// env-only values never reach Unmarshal through AutomaticEnv
	for key, target := range map[string]*string{
		"jobs-file":       &config.JobsFile,
		"candidates-file": &config.CandidatesFile,
		"exclude-file":    &config.ExcludeFile,
		"store-dir":       &config.StoreDir,
	} {
		if value := strings.TrimSpace(viper.GetString(key)); value != "" {
			*target = value
		}
	}

	return config, nil
}
