package catalog

import (
	"encoding/json"
	"os"
	"time"
)

type ExcludedJobs struct {
	Items []*ExcludedJob
}

type ExcludedJob struct {
	ID           string
	URL          string
	EmployerName string
	ExcludedAt   time.Time
}

var now = func() time.Time { return time.Now().UTC() }

func newExcludedJob(job *Job) *ExcludedJob {
	return &ExcludedJob{
		ID:           job.ID,
		URL:          job.URL,
		EmployerName: job.Employer.Name,
		ExcludedAt:   now(),
	}
}

// GetExcludedJobsFromFile reads the exclusion list. An empty file is an empty list.
func GetExcludedJobsFromFile(path string) (*ExcludedJobs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedJobs{}, nil
	}

	var excluded ExcludedJobs
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

// Append adds jobs not already listed.
func (v *ExcludedJobs) Append(s *ExcludedJobs) {
	known := make(map[string]struct{}, len(v.Items))
	for _, job := range v.Items {
		known[job.ID] = struct{}{}
	}
	for _, job := range s.Items {
		if _, ok := known[job.ID]; ok {
			continue
		}
		known[job.ID] = struct{}{}
		v.Items = append(v.Items, job)
	}
}

func (v *ExcludedJobs) JobIDs() []string {
	ids := make([]string, 0, len(v.Items))
	for _, job := range v.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

func (v *ExcludedJobs) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
