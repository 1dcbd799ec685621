// Package search builds catalog predicates for job search. The structured
// predicate covers everything the store can express; company-name keyword
// matching cannot be pushed into it (the company is an expanded reference),
// so it ships as a separate post-filter applied after fetch.
package search

import (
	"fmt"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Filter is the transient, request-scoped search criteria. All fields are
// optional and independently combinable.
type Filter struct {
	Keyword         string
	Location        string
	JobType         string
	ExperienceLevel *int
	MinSalary       *int64
	MaxSalary       *int64
	Skills          []string
	Page            int
	Limit           int
}

// Normalize applies pagination defaults and trims skill entries. Empty skill
// entries from a trailing comma are dropped.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	f.Skills = skills
	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SplitSkills splits comma-separated skill input the way the search endpoint
// accepts it.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Predicate is a structured WHERE clause over the jobs table, aliased j so
// the clauses stay unambiguous when the page query joins companies.
// Positional arguments start at $1. Count and page queries share it; page
// queries append their own LIMIT/OFFSET placeholders after Args.
type Predicate struct {
	Clauses []string
	Args    []any
}

func (p *Predicate) add(clause string, args ...any) {
	n := len(p.Args)
	ph := make([]any, len(args))
	for i := range args {
		ph[i] = fmt.Sprintf("$%d", n+i+1)
	}
	p.Clauses = append(p.Clauses, fmt.Sprintf(clause, ph...))
	p.Args = append(p.Args, args...)
}

// Where renders the predicate as a SQL fragment, or an empty string when no
// filter field was set.
func (p Predicate) Where() string {
	if len(p.Clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.Clauses, " AND ")
}

// NextPlaceholder is the index the next appended argument should use.
func (p Predicate) NextPlaceholder() int {
	return len(p.Args) + 1
}

// BuildPredicate translates a normalized Filter into the structured query.
//
//   - keyword: case-insensitive substring on title OR description only; the
//     company name leg is handled by CompanyKeywordFilter after fetch
//   - location: case-insensitive substring
//   - job type, experience level: exact match
//   - salary bounds: inclusive, independent
//   - skills: OR across requested skills, case-insensitive substring against
//     any requirement entry
func BuildPredicate(f Filter) Predicate {
	var p Predicate

	if f.Keyword != "" {
		p.add("(j.title ILIKE %s OR j.description ILIKE %s)", Contains(f.Keyword), Contains(f.Keyword))
	}
	if f.Location != "" {
		p.add("j.location ILIKE %s", Contains(f.Location))
	}
	if f.JobType != "" {
		p.add("j.job_type = %s", f.JobType)
	}
	if f.ExperienceLevel != nil {
		p.add("j.experience_level = %s", *f.ExperienceLevel)
	}
	if f.MinSalary != nil {
		p.add("j.salary >= %s", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		p.add("j.salary <= %s", *f.MaxSalary)
	}
	if len(f.Skills) > 0 {
		legs := make([]string, 0, len(f.Skills))
		for _, s := range f.Skills {
			n := len(p.Args) + 1
			legs = append(legs, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(j.requirements) req WHERE req ILIKE $%d)", n))
			p.Args = append(p.Args, Contains(s))
		}
		p.Clauses = append(p.Clauses, "("+strings.Join(legs, " OR ")+")")
	}

	return p
}

// CompanyKeywordFilter returns the post-filter pass for a supplied keyword:
// keep only jobs whose expanded company name contains it case-insensitively.
// With no keyword there is no post-filter and nil is returned.
func CompanyKeywordFilter(keyword string) func(companyName string) bool {
	if keyword == "" {
		return nil
	}
	kw := strings.ToLower(keyword)
	return func(companyName string) bool {
		return strings.Contains(strings.ToLower(companyName), kw)
	}
}

// TotalPages is ceil(total/limit). The total is counted against the
// structured predicate before the company-name post-filter runs, so it may
// overcount when a keyword also trims by company; callers accept that.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Contains wraps user input as a LIKE substring pattern with its
// metacharacters escaped.
func Contains(s string) string {
	return "%" + escapeLike(s) + "%"
}

// escapeLike neutralizes LIKE metacharacters in user input so a literal
// "%"/"_" in a keyword matches itself.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
