package filtering

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/ai"
	"github.com/spigell/skillmatch/internal/catalog"
	"github.com/spigell/skillmatch/internal/logger"
)

type AIFitConfig struct {
	Enabled         bool
	Provider        string
	MinimumFitScore float64
	Model           string
}

type AIFitDeps struct {
	Logger      *zap.Logger
	Matcher     ai.Matcher
	Profile     *ai.Profile
	ExcludeFile string
}

type aiFitFilter struct {
	disabled    bool
	reason      string
	config      *AIFitConfig
	deps        *AIFitDeps
	assessments map[string]*ai.FitAssessment
}

// NewAIFit creates the AI-based filtering step. A nil or disabled config
// yields a disabled filter.
func NewAIFit(cfg *AIFitConfig, deps *AIFitDeps) Filter {
	f := &aiFitFilter{config: cfg, deps: deps}
	if cfg == nil || !cfg.Enabled {
		f.Disable("disabled in configuration")
	}
	return f
}

func (f *aiFitFilter) Name() string { return "ai_fit" }

func (f *aiFitFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *aiFitFilter) IsEnabled() bool { return !f.disabled }

func (f *aiFitFilter) Validate() error {
	if f.deps == nil || f.deps.Matcher == nil {
		return errors.New("ai matcher is not configured")
	}
	if f.deps.Profile == nil {
		return errors.New("candidate profile is required")
	}
	if strings.TrimSpace(f.config.Model) == "" {
		return errors.New("model is required when ai filter is enabled")
	}
	return nil
}

func (f *aiFitFilter) Apply(ctx context.Context, jobs *catalog.Jobs) (*catalog.Jobs, Step, error) {
	initial := jobs.Len()
	log := logger.WithFields(f.deps.Logger, logger.AIFields(f.config.Provider, f.config.Model)...)

	f.assessments = make(map[string]*ai.FitAssessment, initial)
	rejected := &catalog.Jobs{}

	for _, job := range jobs.Items {
		if err := ctx.Err(); err != nil {
			return jobs, Step{}, err
		}

		assessment, err := f.deps.Matcher.Evaluate(ctx, f.deps.Profile, job)
		if err != nil {
			// a failed review never drops a job
			log.Warn("AI evaluation failed",
				zap.String(logger.FieldJobID, job.ID),
				zap.Error(err),
			)
			continue
		}
		f.assessments[job.ID] = assessment

		if !assessment.Fit {
			log.Info("job rejected by AI provider",
				zap.String(logger.FieldJobID, job.ID),
				zap.Float64("ai_score", assessment.Score),
				zap.String("reason", assessment.Reason),
			)
			rejected.Items = append(rejected.Items, job)
			continue
		}

		log.Info("job approved by AI",
			zap.String(logger.FieldJobID, job.ID),
			zap.Float64("ai_score", assessment.Score),
		)
	}

	ids := make([]string, 0, rejected.Len())
	for _, job := range rejected.Items {
		ids = append(ids, job.ID)
	}
	jobs.Exclude(catalog.JobIDField, ids)

	if err := f.appendToExcludeFile(rejected, log); err != nil {
		log.Warn("failed to append jobs to exclude file", zap.Error(err))
	}

	log.Info("AI filtering completed",
		zap.Int("initial_jobs", initial),
		zap.Int("approved_jobs", jobs.Len()),
	)

	return jobs, stepOf(initial, jobs), nil
}

func (f *aiFitFilter) Assessments() map[string]*ai.FitAssessment {
	return maps.Clone(f.assessments)
}

func (f *aiFitFilter) appendToExcludeFile(rejected *catalog.Jobs, log *zap.Logger) error {
	path := strings.TrimSpace(f.deps.ExcludeFile)
	if path == "" || rejected.Len() == 0 {
		return nil
	}

	excluded, err := catalog.GetExcludedJobsFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		excluded, err = &catalog.ExcludedJobs{}, nil
	}
	if err != nil {
		return fmt.Errorf("load excluded jobs: %w", err)
	}

	excluded.Append(rejected.ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return fmt.Errorf("write excluded jobs: %w", err)
	}

	log.Info("jobs appended to exclude file",
		zap.Int("count", rejected.Len()),
		zap.String("exclude_file", path),
	)
	return nil
}

func (f *aiFitFilter) Status() Status {
	details := map[string]string{}
	if f.config != nil {
		if f.config.Model != "" {
			details["model"] = f.config.Model
		}
		details["minimum_fit_score"] = strconv.FormatFloat(f.config.MinimumFitScore, 'f', -1, 64)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
