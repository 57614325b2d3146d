package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/ai"
	"github.com/spigell/skillmatch/internal/analysis"
	"github.com/spigell/skillmatch/internal/catalog"
	"github.com/spigell/skillmatch/internal/export"
	"github.com/spigell/skillmatch/internal/extraction"
	"github.com/spigell/skillmatch/internal/filtering"
	"github.com/spigell/skillmatch/internal/ingestion"
	"github.com/spigell/skillmatch/internal/store"
	"github.com/spigell/skillmatch/internal/util"
)

const (
	PromptRankedJobs          = "Show ranked jobs"
	PromptCareerReport        = "Show career report"
	PromptResumeFeedback      = "Show resume feedback"
	PromptReportByEmployers   = "Report by employers"
	PromptJobsToFile          = "Dump jobs to file"
	PromptExportExcel         = "Export to Excel"
	PromptAppendToExcludeFile = "Append all jobs to exclude file"
	PromptExit                = "Exit"

	profileSummaryRunes = 1500
)

var errExit = errors.New("exit requested")

// analysisOutput is what `analyze -y` prints and what is kept in the store.
type analysisOutput struct {
	*analysis.Result
	Filters     []filtering.Status             `json:"filters"`
	Assessments map[string]*ai.FitAssessment `json:"ai_assessments,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume>",
	Short: "Analyze a resume (.txt, .md, .pdf, .docx) against the job catalog",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for actions, print the result as json")
	analyzeCmd.Flags().StringP("exclude-file", "e", "", "special file with jobs to exclude. Default is unset.")
	analyzeCmd.Flags().String("excel", "", "write the result to this .xlsx file")
	analyzeCmd.Flags().Bool("no-ai", false, "skip the ai_fit filter even if enabled in config")
	addRankingFlags(analyzeCmd)

	viper.BindPFlag("exclude-file", analyzeCmd.Flags().Lookup("exclude-file"))
}

func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, config := setup()

	logger.Info("starting the analysis", zap.String("version", version), zap.String("resume", path))

	text, err := ingestion.ReadFile(path)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err),
			zap.String("hint", "supported formats are .txt, .md, .pdf and .docx"))
	}

	jobs, err := catalog.LoadJobs(config.JobsFile)
	if err != nil {
		logger.Fatal("loading jobs", zap.Error(err), zap.String("jobs_file", config.JobsFile))
	}
	logger.Info("jobs loaded", zap.Int("count", jobs.Len()))

	analyzer := analysis.New(nil, analysisOptions(cmd, config), logger)

	skills, _ := analyzer.Extract(text)
	profile := &ai.Profile{
		ID:      filepath.Base(path),
		Skills:  extraction.Names(skills),
		Summary: util.TruncateForLog(text, profileSummaryRunes),
	}

	filters := prepareFilters(ctx, cmd, config, profile, logger)

	jobs, err = filters.RunFilters(ctx, jobs)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if jobs.Len() == 0 {
		logger.Warn("no jobs left after filters; the report covers skills only")
	}

	result, err := analyzer.Analyze(ctx, path, text, jobs)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	output := &analysisOutput{
		Result:      result,
		Filters:     filters.Describe(),
		Assessments: filters.Assessments(),
	}

	if err := saveResult(ctx, config, output, logger); err != nil {
		logger.Warn("saving the result failed", zap.Error(err))
	}

	if excel, _ := cmd.Flags().GetString("excel"); excel != "" {
		if err := exportExcel(excel, result, logger); err != nil {
			logger.Fatal("exporting to excel", zap.Error(err))
		}
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); auto {
		if err := printJSON(output); err != nil {
			logger.Fatal("printing result", zap.Error(err))
		}
		return
	}

	for {
		items := []string{PromptRankedJobs, PromptCareerReport, PromptResumeFeedback, PromptReportByEmployers, PromptJobsToFile, PromptExportExcel}
		if config.ExcludeFile != "" && len(result.Matches) > 0 {
			items = append(items, PromptAppendToExcludeFile)
		}

		prompt := promptui.Select{
			Label: fmt.Sprintf("Readiness %d/100, %d jobs ranked. Choose an action", result.Report.ReadinessScore, len(result.Matches)),
			Items: append(items, PromptExit),
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, config, output, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, config *Config, output *analysisOutput, logger *zap.Logger) error {
	result := output.Result

	switch action {
	case PromptRankedJobs:
		for i, m := range result.Matches {
			fields := []zap.Field{
				zap.String("job_id", m.Item.ID),
				zap.String("employer", m.Item.Employer.Name),
				zap.Int("score", m.DisplayScore),
				zap.Strings("missing_skills", m.Match.MissingSkills),
			}
			if a, ok := output.Assessments[m.Item.ID]; ok && a.Message != "" {
				fields = append(fields, zap.String("ai_message", a.Message))
			}
			logger.Info(fmt.Sprintf("%d. %s", i+1, m.Item.Title), fields...)
		}
		return nil
	case PromptCareerReport:
		return logPretty(logger, "career report", result.Report)
	case PromptResumeFeedback:
		return logPretty(logger, "resume feedback", result.Feedback)
	case PromptReportByEmployers:
		jobs := result.Jobs()
		pretty, _ := json.MarshalIndent(jobs.ReportByEmployer(), "", "  ")
		logger.Info(string(pretty), zap.Int("jobs count", jobs.Len()))
		return nil
	case PromptJobsToFile:
		filename, err := result.Jobs().DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExportExcel:
		return exportExcel(fmt.Sprintf("skillmatch-%s.xlsx", result.ID), result, logger)
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(config.ExcludeFile, output, logger)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func logPretty(logger *zap.Logger, title string, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	logger.Info(title + ":\n" + string(pretty))
	return nil
}

func exportExcel(path string, result *analysis.Result, logger *zap.Logger) error {
	if err := export.ToExcel(path, result); err != nil {
		return err
	}
	logger.Info("result exported", zap.String("filename", path))
	return nil
}

func appendToExcludeFile(path string, output *analysisOutput, logger *zap.Logger) error {
	excluded, err := catalog.GetExcludedJobsFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		excluded, err = &catalog.ExcludedJobs{}, nil
	}
	if err != nil {
		return err
	}

	excluded.Append(output.Result.Jobs().ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", path), zap.Int("count", len(output.Result.Matches)))

	output.Result.Matches = output.Result.Matches[:0]
	return nil
}

func saveResult(ctx context.Context, config *Config, output *analysisOutput, logger *zap.Logger) error {
	s, err := openStore(config)
	if err != nil {
		return err
	}
	if err := store.PutJSON(ctx, s, output.ID, output); err != nil {
		return err
	}
	if _, ok := s.(*store.FileStore); ok {
		logger.Info("result saved", zap.String("analysis_id", output.ID), zap.String("store_dir", config.StoreDir))
	}
	return nil
}

func prepareFilters(ctx context.Context, cmd *cobra.Command, config *Config, profile *ai.Profile, logger *zap.Logger) *filtering.Filtering {
	noAI, _ := cmd.Flags().GetBool("no-ai")

	var aiFit filtering.Filter
	if noAI {
		aiFit = filtering.NewAIFit(nil, nil)
	} else {
		aiFit = prepareAIFilter(ctx, config, profile, logger)
	}

	steps := []filtering.Filter{
		filtering.NewRequirements(logger),
		filtering.NewExcludedEmployers(config.excludedEmployers(), logger),
		filtering.NewExcludeFile(config.ExcludeFile, logger),
		aiFit,
	}

	if noAI {
		filtering.DisableByName(steps, "ai_fit", "disabled by --no-ai flag")
	}

	return filtering.New(steps, logger)
}

func prepareAIFilter(ctx context.Context, config *Config, profile *ai.Profile, logger *zap.Logger) filtering.Filter {
	cfg := config.AI
	if cfg == nil || !cfg.Enabled {
		return filtering.NewAIFit(nil, nil)
	}

	matcher, model, err := newAIMatcher(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping AI filter", zap.Error(err))
		f := filtering.NewAIFit(nil, nil)
		f.Disable(err.Error())
		return f
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = "gemini"
	}

	return filtering.NewAIFit(&filtering.AIFitConfig{
		Enabled:         true,
		Provider:        provider,
		MinimumFitScore: cfg.MinimumFitScore,
		Model:           model,
	}, &filtering.AIFitDeps{
		Logger:      logger,
		Matcher:     matcher,
		Profile:     profile,
		ExcludeFile: config.ExcludeFile,
	})
}
