package filtering

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/catalog"
)

type excludeFileFilter struct {
	path   string
	logger *zap.Logger
}

// NewExcludeFile creates a filter that removes jobs listed in the exclude file.
// A missing file is treated as empty.
func NewExcludeFile(path string, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &excludeFileFilter{path: strings.TrimSpace(path), logger: logger}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate() error {
	if f.path == "" {
		return nil
	}
	info, err := os.Stat(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("exclude file %s is a directory", f.path)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, jobs *catalog.Jobs) (*catalog.Jobs, Step, error) {
	initial := jobs.Len()
	if f.path == "" {
		return jobs, stepOf(initial, jobs), nil
	}

	excluded, err := catalog.GetExcludedJobsFromFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return jobs, stepOf(initial, jobs), nil
	}
	if err != nil {
		return jobs, Step{}, fmt.Errorf("getting excluded jobs from file: %w", err)
	}

	removed := jobs.Exclude(catalog.JobIDField, excluded.JobIDs())
	if len(removed) > 0 {
		f.logger.Info("excluding jobs based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_jobs", removed),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, stepOf(initial, jobs), nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
