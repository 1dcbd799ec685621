package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	rows  []job.WithCompany
	total int

	byID map[uuid.UUID]job.WithCompany

	created     []job.Job
	searchCalls int
	lastLimit   int
	lastOffset  int
	err         error
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	f.created = append(f.created, j)
	if f.byID == nil {
		f.byID = map[uuid.UUID]job.WithCompany{}
	}
	f.byID[j.ID] = job.WithCompany{Job: j}
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.WithCompany, error) {
	j, ok := f.byID[id]
	if !ok {
		return job.WithCompany{}, repository.ErrJobNotFound
	}
	return j, nil
}
func (f *fakeJobRepo) ListAll(context.Context, string) ([]job.WithCompany, error) { return nil, nil }
func (f *fakeJobRepo) ListByCreator(context.Context, uuid.UUID) ([]job.WithCompany, error) {
	return nil, nil
}
func (f *fakeJobRepo) Search(_ context.Context, _ search.Predicate, limit, offset int) ([]job.WithCompany, error) {
	f.searchCalls++
	f.lastLimit = limit
	f.lastOffset = offset
	return f.rows, f.err
}
func (f *fakeJobRepo) CountSearch(context.Context, search.Predicate) (int, error) {
	return f.total, f.err
}
func (f *fakeJobRepo) ListCandidates(context.Context, repository.CandidateQuery) ([]job.WithCompany, error) {
	return nil, nil
}

type fakeSearchCache struct {
	data  map[string][]byte
	sets  int
	locks map[string]bool
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{data: map[string][]byte{}, locks: map[string]bool{}}
}

func (f *fakeSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (f *fakeSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	f.sets++
	return nil
}

func (f *fakeSearchCache) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	delete(f.locks, key)
	return nil
}

func (f *fakeSearchCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	if f.locks[key] {
		return false, nil
	}
	f.locks[key] = true
	return true, nil
}

func searchJob(title, companyName string) job.WithCompany {
	j := job.WithCompany{}
	j.ID = uuid.New()
	j.Title = title
	j.Requirements = []string{}
	j.Company.ID = uuid.New()
	j.Company.Name = companyName
	return j
}

func TestSearchJobs_EmptyFilterUsesDefaults(t *testing.T) {
	repo := &fakeJobRepo{rows: []job.WithCompany{searchJob("Backend Engineer", "Acme")}, total: 1}
	uc := NewJobSearchUsecase(repo, nil, nil)

	res, err := uc.SearchJobs(context.Background(), search.Filter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Page != 1 || repo.lastLimit != 10 || repo.lastOffset != 0 {
		t.Fatalf("expected defaults page=1 limit=10 offset=0, got page=%d limit=%d offset=%d",
			res.Page, repo.lastLimit, repo.lastOffset)
	}
	if len(res.Jobs) != 1 || res.Total != 1 || res.TotalPages != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSearchJobs_LimitTooLarge(t *testing.T) {
	uc := NewJobSearchUsecase(&fakeJobRepo{}, nil, nil)
	_, err := uc.SearchJobs(context.Background(), search.Filter{Limit: 101})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearchJobs_CompanyPostFilterKeepsTotal(t *testing.T) {
	repo := &fakeJobRepo{
		rows: []job.WithCompany{
			searchJob("Acme Engineer", "Acme Corp"),
			searchJob("Acme Analyst", "Globex"),
		},
		total: 2,
	}
	uc := NewJobSearchUsecase(repo, nil, nil)

	res, err := uc.SearchJobs(context.Background(), search.Filter{Keyword: "acme"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Jobs) != 1 || res.Jobs[0].Company.Name != "Acme Corp" {
		t.Fatalf("expected only the Acme Corp job, got %+v", res.Jobs)
	}
	// Total still reflects the structured-query count.
	if res.Total != 2 || res.TotalPages != 1 {
		t.Fatalf("expected total=2 totalPages=1, got total=%d totalPages=%d", res.Total, res.TotalPages)
	}
}

func TestSearchJobs_NoPostFilterWithoutKeyword(t *testing.T) {
	repo := &fakeJobRepo{
		rows:  []job.WithCompany{searchJob("Engineer", "Acme"), searchJob("Analyst", "Globex")},
		total: 2,
	}
	uc := NewJobSearchUsecase(repo, nil, nil)

	res, err := uc.SearchJobs(context.Background(), search.Filter{Location: "Remote"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Jobs) != 2 {
		t.Fatalf("expected both jobs, got %d", len(res.Jobs))
	}
}

func TestSearchJobs_Pagination(t *testing.T) {
	repo := &fakeJobRepo{rows: []job.WithCompany{}, total: 25}
	uc := NewJobSearchUsecase(repo, nil, nil)

	res, err := uc.SearchJobs(context.Background(), search.Filter{Location: "Remote", Page: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastOffset != 20 {
		t.Fatalf("expected offset 20, got %d", repo.lastOffset)
	}
	if res.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", res.TotalPages)
	}
}

func TestSearchJobs_CachesFilteredSearches(t *testing.T) {
	repo := &fakeJobRepo{rows: []job.WithCompany{searchJob("Engineer", "Acme")}, total: 1}
	cache := newFakeSearchCache()
	uc := NewJobSearchUsecase(repo, cache, nil)

	f := search.Filter{Location: "Remote"}
	first, err := uc.SearchJobs(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache set, got %d", cache.sets)
	}

	second, err := uc.SearchJobs(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.searchCalls != 1 {
		t.Fatalf("expected cache hit to skip the repository, got %d calls", repo.searchCalls)
	}
	if len(second.Jobs) != len(first.Jobs) || second.Total != first.Total || second.Page != first.Page {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestSearchJobs_EmptyFilterNotCached(t *testing.T) {
	repo := &fakeJobRepo{rows: []job.WithCompany{}, total: 0}
	cache := newFakeSearchCache()
	uc := NewJobSearchUsecase(repo, cache, nil)

	if _, err := uc.SearchJobs(context.Background(), search.Filter{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 0 {
		t.Fatalf("expected unfiltered search to bypass the cache, got %d sets", cache.sets)
	}
}

func TestSearchJobs_RepositoryError(t *testing.T) {
	repo := &fakeJobRepo{err: errors.New("boom")}
	uc := NewJobSearchUsecase(repo, nil, nil)

	_, err := uc.SearchJobs(context.Background(), search.Filter{Keyword: "go"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSearchJobs_RepeatedCallsAreIdentical(t *testing.T) {
	rows := []job.WithCompany{
		searchJob("Backend Engineer", "Acme"),
		searchJob("Frontend Engineer", "Acme Labs"),
	}
	filter := search.Filter{Keyword: "acme"}

	sameResult := func(t *testing.T, first, second SearchResult) {
		t.Helper()
		a, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("marshal first: %v", err)
		}
		b, err := json.Marshal(second)
		if err != nil {
			t.Fatalf("marshal second: %v", err)
		}
		if string(a) != string(b) {
			t.Fatalf("repeated call diverged:\nfirst:  %s\nsecond: %s", a, b)
		}
	}

	// Without a cache both calls run the full query path and must agree.
	repo := &fakeJobRepo{rows: rows, total: 2}
	uc := NewJobSearchUsecase(repo, nil, nil)

	first, err := uc.SearchJobs(context.Background(), filter)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := uc.SearchJobs(context.Background(), filter)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if repo.searchCalls != 2 {
		t.Fatalf("expected 2 repository queries, got %d", repo.searchCalls)
	}
	sameResult(t, first, second)

	// With a cache the second call is served from the stored page and must
	// still decode to the same ordered output.
	repo = &fakeJobRepo{rows: rows, total: 2}
	uc = NewJobSearchUsecase(repo, newFakeSearchCache(), nil)

	first, err = uc.SearchJobs(context.Background(), filter)
	if err != nil {
		t.Fatalf("first cached call: %v", err)
	}
	second, err = uc.SearchJobs(context.Background(), filter)
	if err != nil {
		t.Fatalf("second cached call: %v", err)
	}
	if repo.searchCalls != 1 {
		t.Fatalf("expected the second call to come from cache, got %d queries", repo.searchCalls)
	}
	sameResult(t, first, second)
}
