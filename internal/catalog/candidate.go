package catalog

import "fmt"

type Candidates struct {
	Items []*Candidate
}

type Candidate struct {
	ID     string   `json:"id" validate:"required"`
	Name   string   `json:"name" validate:"required"`
	Email  string   `json:"email,omitempty" validate:"omitempty,email"`
	Skills []string `json:"skills" validate:"dive,required"`
	// Resume is raw resume text. Skills are extracted from it when Skills is empty.
	Resume string `json:"resume,omitempty"`
}

func (c *Candidate) SubjectID() string {
	return c.ID
}

func (c *Candidate) SkillList() []string {
	return c.Skills
}

func (c *Candidate) Validate() error {
	return validate.Struct(c)
}

// LoadCandidates reads a JSON array of candidates and validates every entry.
func LoadCandidates(path string) (*Candidates, error) {
	var candidates []*Candidate
	if err := decodeFile(path, &candidates); err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	for idx, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("candidate #%d (%s): %w", idx, c.ID, err)
		}
	}

	return &Candidates{Items: candidates}, nil
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, candidate := range c.Items {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}
