package usecase

import (
	"context"
	"errors"
	"sort"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recommend"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("user profile not found")

const recommendationLimit = 10

// ScoredJob is a candidate annotated with its relevance score, the response
// payload of the recommendations endpoint.
type ScoredJob struct {
	job.WithCompany
	RelevanceScore float64 `json:"relevanceScore"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]ScoredJob, error)
}

type Recommendation struct {
	users        user.Repository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

func NewRecommendationUsecase(users user.Repository, jobs repository.JobRepository, applications repository.ApplicationRepository) *Recommendation {
	return &Recommendation{users: users, jobs: jobs, applications: applications}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]ScoredJob, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}
	skills := usr.Profile.Skills

	applied, err := u.applications.ListAppliedJobs(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	prior := make([]recommend.AppliedJob, 0, len(applied))
	excludeIDs := make([]uuid.UUID, 0, len(applied))
	for _, a := range applied {
		prior = append(prior, recommend.AppliedJob{
			Requirements:    a.Requirements,
			Location:        a.Location,
			JobType:         a.JobType,
			ExperienceLevel: a.ExperienceLevel,
		})
		excludeIDs = append(excludeIDs, a.JobID)
	}
	prefs := recommend.ExtractPreferences(prior)

	q := repository.CandidateQuery{
		Skills:        skills,
		ExcludeJobIDs: excludeIDs,
		Limit:         recommendationLimit,
	}
	for loc := range prefs.Locations {
		q.Locations = append(q.Locations, loc)
	}
	for t := range prefs.JobTypes {
		q.JobTypes = append(q.JobTypes, t)
	}
	for lvl := range prefs.ExperienceLevels {
		q.ExperienceLevels = append(q.ExperienceLevels, lvl)
	}
	if lo, hi, ok := prefs.ExperienceBounds(); ok {
		q.ExperienceLo = lo
		q.ExperienceHi = hi
	}

	candidates, err := u.jobs.ListCandidates(ctx, q)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ScoredJob, 0, len(candidates))
	for _, c := range candidates {
		score := recommend.Score(recommend.Candidate{
			Requirements:    c.Requirements,
			Location:        c.Location,
			JobType:         c.JobType,
			ExperienceLevel: c.ExperienceLevel,
		}, skills, prefs)
		out = append(out, ScoredJob{WithCompany: c, RelevanceScore: score})
	}

	// Stable: equal scores keep catalog fetch order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})

	return out, nil
}
