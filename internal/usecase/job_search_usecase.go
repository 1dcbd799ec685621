package usecase

import (
	"context"
	"log"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
	"jobboard/internal/search"
)

// SearchResult is one page of search output. Total and TotalPages are
// computed against the structured predicate before the company-name
// post-filter, so Jobs may hold fewer than Limit entries for keyword
// searches that also trim by company; that mismatch is part of the contract.
type SearchResult struct {
	Jobs       []job.WithCompany `json:"jobs"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
}

type JobSearchUsecase interface {
	SearchJobs(ctx context.Context, f search.Filter) (SearchResult, error)
}

type JobSearch struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger
}

func NewJobSearchUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobSearch) SearchJobs(ctx context.Context, f search.Filter) (SearchResult, error) {
	f = f.Normalize()
	if f.Limit > 100 {
		return SearchResult{}, ErrInvalidInput
	}

	cacheable := hasFilter(f)
	cacheKey := ""
	lockKey := ""
	if cacheable && u.cache != nil {
		cacheKey = JobsSearchCacheKey(f)
		lockKey = JobsSearchLockKey(cacheKey)

		var cached SearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logf("[Jobs] Cache HIT: %s", cacheKey)
			return cached, nil
		}
		u.logf("[Jobs] Cache MISS: %s", cacheKey)
	}

	lockAcquired := false
	if cacheable && u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			// Another request is filling this key; give it a moment and
			// re-check before hitting the database ourselves.
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitter)
			var cached SearchResult
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				u.logf("[Jobs] Cache HIT: %s", cacheKey)
				return cached, nil
			}
		}
	}

	p := search.BuildPredicate(f)

	rows, err := u.jobs.Search(ctx, p, f.Limit, f.Offset())
	if err != nil {
		return SearchResult{}, ErrInternal
	}

	if keep := search.CompanyKeywordFilter(f.Keyword); keep != nil {
		filtered := make([]job.WithCompany, 0, len(rows))
		for _, r := range rows {
			if keep(r.Company.Name) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	total, err := u.jobs.CountSearch(ctx, p)
	if err != nil {
		return SearchResult{}, ErrInternal
	}

	res := SearchResult{
		Jobs:       rows,
		Page:       f.Page,
		TotalPages: search.TotalPages(total, f.Limit),
		Total:      total,
	}

	if cacheable && u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, res, 0)
		u.logf("[Jobs] Cache SET: %s", cacheKey)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return res, nil
}

func (u *JobSearch) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func hasFilter(f search.Filter) bool {
	return f.Keyword != "" || f.Location != "" || f.JobType != "" ||
		f.ExperienceLevel != nil || f.MinSalary != nil || f.MaxSalary != nil ||
		len(f.Skills) > 0
}
