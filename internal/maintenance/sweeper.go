// Package maintenance runs background housekeeping jobs on cron schedules.
package maintenance

import (
	"context"
	"log"
	"time"

	"jobboard/internal/repository"
	"jobboard/internal/upload"

	"github.com/robfig/cron/v3"
)

// Sweeper removes upload files that no record references anymore, for
// example resumes replaced while a delete failed. Files younger than minAge
// are kept so an in-flight upload is never swept between store and database
// writes.
type Sweeper struct {
	store  *upload.Store
	refs   repository.FileReferenceRepository
	minAge time.Duration
	logger *log.Logger

	cron *cron.Cron
}

func NewSweeper(store *upload.Store, refs repository.FileReferenceRepository, minAge time.Duration, logger *log.Logger) *Sweeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Sweeper{store: store, refs: refs, minAge: minAge, logger: logger}
}

// Start schedules sweeps at the given interval. Stop must be called on
// shutdown.
func (s *Sweeper) Start(every time.Duration) {
	if every <= 0 {
		return
	}
	s.cron = cron.New()
	s.cron.Schedule(cron.Every(every), cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.Sweep(ctx); err != nil {
			s.logger.Printf("[Sweeper] sweep failed: %v", err)
		}
	}))
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep deletes every stored file that is old enough and unreferenced.
func (s *Sweeper) Sweep(ctx context.Context) error {
	entries, err := s.store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	referenced, err := s.refs.ListReferencedFiles(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-s.minAge)
	removed := 0
	for _, e := range entries {
		if e.ModTime.After(cutoff) {
			continue
		}
		if _, ok := referenced[e.Name]; ok {
			continue
		}
		if err := s.store.Remove(e.Name); err != nil {
			s.logger.Printf("[Sweeper] failed to remove %q: %v", e.Name, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Printf("[Sweeper] removed %d orphaned file(s)", removed)
	}
	return nil
}
