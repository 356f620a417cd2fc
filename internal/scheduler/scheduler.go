// Package scheduler watches each job's application deadline and fires the
// screening batch exactly once when the window closes.
package scheduler

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"hireos/internal/pipeline"
	"hireos/internal/store"
)

// Store is the slice of the record store the sweeper needs. The auto-run
// marker lives in the store so the once-per-deadline guarantee survives
// process restarts.
type Store interface {
	ListDueJobs(ctx context.Context, now time.Time) ([]*store.Job, error)
	ClaimAutoScreen(ctx context.Context, jobID int64) (bool, error)
	ReleaseAutoScreen(ctx context.Context, jobID int64) error
}

// Screener runs the deadline-triggered batch.
type Screener interface {
	ScreenResumes(ctx context.Context, jobID int64) (*pipeline.Report, error)
}

type Sweeper struct {
	store    Store
	screener Screener
	interval time.Duration
	now      func() time.Time
}

func NewSweeper(st Store, screener Screener, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    st,
		screener: screener,
		interval: interval,
		now:      time.Now,
	}
}

// Run polls until the context is cancelled. Intended as a goroutine from
// main.
func (s *Sweeper) Run(ctx context.Context) {
	log.Printf("[Scheduler] sweep started (every %v)", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Scheduler] sweep stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep screens every job whose deadline has passed and whose auto-run has
// not happened yet. The claim is flipped before screening, so repeated
// polls (or a concurrent sweeper) cannot re-run the batch and double-email
// candidates.
func (s *Sweeper) Sweep(ctx context.Context) {
	jobs, err := s.store.ListDueJobs(ctx, s.now())
	if err != nil {
		log.Printf("[Scheduler] failed to list due jobs: %v", err)
		return
	}

	for _, job := range jobs {
		claimed, err := s.store.ClaimAutoScreen(ctx, job.ID)
		if err != nil {
			log.Printf("[Scheduler] failed to claim auto-screen for job %d: %v", job.ID, err)
			continue
		}
		if !claimed {
			continue
		}

		log.Printf("[Scheduler] application window closed for job %d (%s), screening", job.ID, job.Title)

		report, err := s.screener.ScreenResumes(ctx, job.ID)
		if err != nil {
			if errors.Is(err, pipeline.ErrBatchInProgress) {
				// A manual run beat us to it; the claim stands so the
				// deadline trigger stays once-only.
				log.Printf("[Scheduler] screening already running for job %d", job.ID)
				continue
			}
			log.Printf("[Scheduler] auto-screen failed for job %d: %v", job.ID, err)
			// Transient failure: give the claim back so the next sweep
			// retries instead of leaving the batch permanently unscreened.
			if relErr := s.store.ReleaseAutoScreen(ctx, job.ID); relErr != nil {
				log.Printf("[Scheduler] failed to release auto-screen claim for job %d: %v", job.ID, relErr)
			}
			continue
		}

		log.Printf("[Scheduler] auto-screen for job %d processed %d candidates", job.ID, len(report.Outcomes))
	}
}
