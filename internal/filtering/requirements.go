package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/catalog"
)

type requirementsFilter struct {
	disabled bool
	reason   string
	logger   *zap.Logger
}

// NewRequirements creates a filter that drops jobs listing no required skills.
// Such jobs always score 0 and would only add noise to the ranking.
func NewRequirements(logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &requirementsFilter{logger: logger}
}

func (f *requirementsFilter) Name() string { return "requirements" }

func (f *requirementsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *requirementsFilter) IsEnabled() bool { return !f.disabled }

func (f *requirementsFilter) Validate() error { return nil }

func (f *requirementsFilter) Apply(_ context.Context, jobs *catalog.Jobs) (*catalog.Jobs, Step, error) {
	initial := jobs.Len()

	dropped := jobs.Keep(func(job *catalog.Job) bool {
		for _, skill := range job.RequiredSkills {
			if strings.TrimSpace(skill) != "" {
				return true
			}
		}
		return false
	})

	if len(dropped) > 0 {
		f.logger.Info("excluding jobs without required skills",
			zap.Strings("excluded_jobs", dropped),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, stepOf(initial, jobs), nil
}

func (f *requirementsFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
