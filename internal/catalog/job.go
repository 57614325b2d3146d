// Package catalog loads the jobs and candidates the engine is run against.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

const (
	JobIDField         = "ID"
	JobEmployerIDField = "EmployerID"
)

// Job levels.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

var (
	seniorKeywords = []string{"senior", "lead", "principal", "architect", "manager", "director"}
	entryKeywords  = []string{"junior", "entry", "graduate", "intern", "trainee", "associate"}
)

var validate = validator.New()

type Jobs struct {
	Items []*Job
}

type Job struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Employer       Employer `json:"employer"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills" validate:"dive,required"`
	URL            string   `json:"url,omitempty" validate:"omitempty,url"`
	Salary         Salary   `json:"salary,omitempty"`
}

type Employer struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
}

type Salary struct {
	From     int    `json:"from,omitempty" validate:"gte=0"`
	To       int    `json:"to,omitempty" validate:"omitempty,gtefield=From"`
	Currency string `json:"currency,omitempty"`
}

func (s Salary) String() string {
	if s.From == 0 && s.To == 0 {
		return "not specified"
	}
	return fmt.Sprintf("%d-%d %s", s.From, s.To, s.Currency)
}

// SubjectID makes Job rankable.
func (j *Job) SubjectID() string {
	return j.ID
}

// Requirements returns the required skills.
func (j *Job) Requirements() []string {
	return j.RequiredSkills
}

func (j *Job) Validate() error {
	return validate.Struct(j)
}

// Level guesses the seniority from the title and description. Senior keywords
// win over entry keywords; anything else is mid level.
func (j *Job) Level() string {
	text := strings.ToLower(j.Title + " " + j.Description)
	if containsAny(text, seniorKeywords) {
		return LevelSenior
	}
	if containsAny(text, entryKeywords) {
		return LevelEntry
	}
	return LevelMid
}

func (j *Job) GetStringField(name string) string {
	switch name {
	case JobIDField:
		return j.ID
	case JobEmployerIDField:
		return j.Employer.ID
	default:
		return ""
	}
}

// LoadJobs reads a JSON array of jobs and validates every entry.
func LoadJobs(path string) (*Jobs, error) {
	var jobs []*Job
	if err := decodeFile(path, &jobs); err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}

	for idx, job := range jobs {
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("job #%d (%s): %w", idx, job.ID, err)
		}
	}

	return &Jobs{Items: jobs}, nil
}

func (v *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (v *Jobs) ToExcluded() *ExcludedJobs {
	excluded := &ExcludedJobs{}
	for _, job := range v.Items {
		excluded.Items = append(excluded.Items, newExcludedJob(job))
	}
	return excluded
}

// ReportByEmployer groups jobs under "Employer (id)" keys.
func (v *Jobs) ReportByEmployer() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range v.Items {
		key := fmt.Sprintf("%s (%s)", job.Employer.Name, job.Employer.ID)
		report[key] = append(report[key], map[string]string{
			"title":           job.Title,
			"url":             job.URL,
			"location":        job.Location,
			"level":           job.Level(),
			"salary":          job.Salary.String(),
			"required skills": strings.Join(job.RequiredSkills, ", "),
		})
	}
	return report
}

func (v *Jobs) Len() int {
	return len(v.Items)
}

func (v *Jobs) FindByID(id string) *Job {
	for _, job := range v.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

// Exclude removes every job whose field equals one of the targets and returns
// the removed IDs. The order of the remaining jobs is kept.
func (v *Jobs) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		drop[t] = struct{}{}
	}

	var excluded []string
	kept := v.Items[:0]
	for _, job := range v.Items {
		if _, ok := drop[job.GetStringField(name)]; ok {
			excluded = append(excluded, job.ID)
			continue
		}
		kept = append(kept, job)
	}
	clear(v.Items[len(kept):])
	v.Items = kept

	return excluded
}

// Keep leaves only the jobs accepted by fn, in order, and returns the IDs of
// the others.
func (v *Jobs) Keep(fn func(*Job) bool) []string {
	var dropped []string
	for _, job := range v.Items {
		if !fn(job) {
			dropped = append(dropped, job.ID)
		}
	}
	v.Exclude(JobIDField, dropped)
	return dropped
}

func decodeFile(path string, result any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      result,
		TagName:     "json",
		ErrorUnused: false,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
