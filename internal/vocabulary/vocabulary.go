// Package vocabulary holds the static catalog of canonical skill names and
// their category membership.
package vocabulary

import (
	"fmt"
	"strings"
)

// Category is a skill category used when grouping skills into a breakdown.
type Category string

const (
	Technical Category = "technical"
	Soft      Category = "soft"
	Framework Category = "framework"
	Cloud     Category = "cloud"
	Data      Category = "data"
)

// categoryOrder is the order CategoriesOf reports memberships in.
var categoryOrder = []Category{Technical, Soft, Framework, Cloud, Data}

// Group is a named area of the catalog, e.g. "databases".
type Group struct {
	Name   string
	Skills []string
}

// Vocabulary is an immutable skill catalog. The zero value is empty and usable.
type Vocabulary struct {
	skills     []string
	canonical  map[string]string
	membership map[Category][]string
	index      map[string][]Category
}

// New builds a vocabulary from catalog groups and per-category member lists.
// Every category member must be present in one of the groups.
func New(groups []Group, membership map[Category][]string) (*Vocabulary, error) {
	v := &Vocabulary{
		canonical:  make(map[string]string),
		membership: make(map[Category][]string, len(membership)),
		index:      make(map[string][]Category),
	}

	for _, group := range groups {
		for _, skill := range group.Skills {
			key := normalize(skill)
			if key == "" {
				return nil, fmt.Errorf("group %q: empty skill name", group.Name)
			}
			if existing, ok := v.canonical[key]; ok {
				return nil, fmt.Errorf("group %q: duplicate skill %q (already listed as %q)", group.Name, skill, existing)
			}
			v.canonical[key] = skill
			v.skills = append(v.skills, skill)
		}
	}

	for _, category := range categoryOrder {
		members, ok := membership[category]
		if !ok {
			continue
		}
		for _, member := range members {
			key := normalize(member)
			name, ok := v.canonical[key]
			if !ok {
				return nil, fmt.Errorf("category %s: skill %q is not in the catalog", category, member)
			}
			v.membership[category] = append(v.membership[category], name)
			v.index[key] = appendUnique(v.index[key], category)
		}
	}

	for category := range membership {
		if !isKnown(category) {
			return nil, fmt.Errorf("unknown category %q", category)
		}
	}

	return v, nil
}

// All returns every skill in catalog order.
func (v *Vocabulary) All() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

// Len returns the number of skills in the catalog.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.skills)
}

// CategoriesOf returns the categories the skill belongs to. Lookup ignores case
// and surrounding whitespace; unknown skills have no categories.
func (v *Vocabulary) CategoriesOf(skill string) []Category {
	if v == nil {
		return nil
	}
	cats := v.index[normalize(skill)]
	out := make([]Category, len(cats))
	copy(out, cats)
	return out
}

// Has reports whether the skill is a member of the category.
func (v *Vocabulary) Has(skill string, category Category) bool {
	if v == nil {
		return false
	}
	for _, c := range v.index[normalize(skill)] {
		if c == category {
			return true
		}
	}
	return false
}

// Canonical returns the catalog spelling of the skill.
func (v *Vocabulary) Canonical(skill string) (string, bool) {
	if v == nil {
		return "", false
	}
	name, ok := v.canonical[normalize(skill)]
	return name, ok
}

// Members returns the skills listed under the category.
func (v *Vocabulary) Members(category Category) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.membership[category]))
	copy(out, v.membership[category])
	return out
}

// Categories returns all known categories in reporting order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func isKnown(c Category) bool {
	for _, known := range categoryOrder {
		if known == c {
			return true
		}
	}
	return false
}

func appendUnique(cats []Category, c Category) []Category {
	for _, existing := range cats {
		if existing == c {
			return cats
		}
	}
	return append(cats, c)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
