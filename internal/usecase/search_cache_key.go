package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"jobboard/internal/search"
)

type jobSearchCacheKeyInput struct {
	Keyword         string   `json:"keyword"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel *int     `json:"experience_level"`
	MinSalary       *int64   `json:"min_salary"`
	MaxSalary       *int64   `json:"max_salary"`
	Skills          []string `json:"skills"`
	Page            int      `json:"page"`
	Limit           int      `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func JobsSearchCacheKey(f search.Filter) string {
	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	in := jobSearchCacheKeyInput{
		Keyword:         normalizeSearchValue(f.Keyword),
		Location:        normalizeSearchValue(f.Location),
		JobType:         normalizeSearchValue(f.JobType),
		ExperienceLevel: f.ExperienceLevel,
		MinSalary:       f.MinSalary,
		MaxSalary:       f.MaxSalary,
		Skills:          skills,
		Page:            f.Page,
		Limit:           f.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
