package recommend

import (
	"math"
	"strings"
)

// AppliedJob is the slice of a previously-applied job that preference
// extraction looks at.
type AppliedJob struct {
	Requirements    []string
	Location        string
	JobType         string
	ExperienceLevel int
}

// PreferenceSet holds the distinct locations, job types and experience levels
// observed across an applicant's prior applications.
type PreferenceSet struct {
	Locations        map[string]struct{}
	JobTypes         map[string]struct{}
	ExperienceLevels map[int]struct{}
}

// ExtractPreferences derives a PreferenceSet from prior applications. It is a
// pure function; callers that could not resolve a job reference must skip the
// entry before calling, so an unresolvable job never becomes a preference.
func ExtractPreferences(apps []AppliedJob) PreferenceSet {
	p := PreferenceSet{
		Locations:        make(map[string]struct{}),
		JobTypes:         make(map[string]struct{}),
		ExperienceLevels: make(map[int]struct{}),
	}
	for _, a := range apps {
		p.Locations[a.Location] = struct{}{}
		p.JobTypes[a.JobType] = struct{}{}
		p.ExperienceLevels[a.ExperienceLevel] = struct{}{}
	}
	return p
}

func (p PreferenceSet) Empty() bool {
	return len(p.Locations) == 0 && len(p.JobTypes) == 0 && len(p.ExperienceLevels) == 0
}

func (p PreferenceSet) HasLocation(loc string) bool {
	_, ok := p.Locations[loc]
	return ok
}

func (p PreferenceSet) HasJobType(t string) bool {
	_, ok := p.JobTypes[t]
	return ok
}

func (p PreferenceSet) HasExperienceLevel(lvl int) bool {
	_, ok := p.ExperienceLevels[lvl]
	return ok
}

// ExperienceBounds returns min(levels)-1 (floored at 0) and max(levels)+1.
// ok is false when no experience levels were observed.
func (p PreferenceSet) ExperienceBounds() (lo, hi int, ok bool) {
	first := true
	for lvl := range p.ExperienceLevels {
		if first {
			lo, hi = lvl, lvl
			first = false
			continue
		}
		if lvl < lo {
			lo = lvl
		}
		if lvl > hi {
			hi = lvl
		}
	}
	if first {
		return 0, 0, false
	}
	lo--
	if lo < 0 {
		lo = 0
	}
	return lo, hi + 1, true
}

// Candidate is a resolved job record as scoring sees it. Scoring never
// touches the store; tests supply literal fixtures.
type Candidate struct {
	Requirements    []string
	Location        string
	JobType         string
	ExperienceLevel int
}

// Score computes the relevance of a candidate for an applicant with the given
// skills and preferences. Four weighted sub-scores:
//
//	skill match      0-5  matching requirements / max(requirement count, 1)
//	location match   0 or 3
//	job type match   0 or 2
//	experience match 0 or 2
//
// The total is rounded to one decimal place.
func Score(c Candidate, skills []string, prefs PreferenceSet) float64 {
	score := 0.0

	matching := 0
	for _, req := range c.Requirements {
		for _, s := range skills {
			if strings.EqualFold(req, s) {
				matching++
				break
			}
		}
	}
	denom := len(c.Requirements)
	if denom < 1 {
		denom = 1
	}
	score += float64(matching) / float64(denom) * 5

	if prefs.HasLocation(c.Location) {
		score += 3
	}
	if prefs.HasJobType(c.JobType) {
		score += 2
	}
	if prefs.HasExperienceLevel(c.ExperienceLevel) {
		score += 2
	}

	return math.Round(score*10) / 10
}
