package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireos/internal/pipeline"
	"hireos/internal/store"
)

type fakeSweepStore struct {
	due     []*store.Job
	claimed map[int64]bool
	listErr error
}

func (f *fakeSweepStore) ListDueJobs(_ context.Context, _ time.Time) ([]*store.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	// Claimed jobs stay in the listing on purpose, simulating the race where
	// another sweeper claims between the query and the update.
	return f.due, nil
}

func (f *fakeSweepStore) ClaimAutoScreen(_ context.Context, jobID int64) (bool, error) {
	if f.claimed[jobID] {
		return false, nil
	}
	f.claimed[jobID] = true
	return true, nil
}

func (f *fakeSweepStore) ReleaseAutoScreen(_ context.Context, jobID int64) error {
	delete(f.claimed, jobID)
	return nil
}

type fakeScreener struct {
	calls []int64
	errs  []error
}

func (f *fakeScreener) ScreenResumes(_ context.Context, jobID int64) (*pipeline.Report, error) {
	f.calls = append(f.calls, jobID)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &pipeline.Report{JobID: jobID}, nil
}

func TestSweepScreensDueJobsOnce(t *testing.T) {
	st := &fakeSweepStore{
		due: []*store.Job{
			{ID: 1, Title: "Backend Engineer"},
			{ID: 2, Title: "SRE"},
		},
		claimed: map[int64]bool{},
	}
	sc := &fakeScreener{}
	sw := NewSweeper(st, sc, time.Second)

	sw.Sweep(context.Background())
	sw.Sweep(context.Background())
	sw.Sweep(context.Background())

	if len(sc.calls) != 2 {
		t.Fatalf("screener called %d times, want 2 (once per job)", len(sc.calls))
	}
	seen := map[int64]bool{}
	for _, id := range sc.calls {
		if seen[id] {
			t.Fatalf("job %d screened twice", id)
		}
		seen[id] = true
	}
}

func TestSweepSkipsAlreadyClaimedJobs(t *testing.T) {
	st := &fakeSweepStore{
		due:     []*store.Job{{ID: 1}},
		claimed: map[int64]bool{1: true},
	}
	sc := &fakeScreener{}
	sw := NewSweeper(st, sc, time.Second)

	sw.Sweep(context.Background())
	if len(sc.calls) != 0 {
		t.Fatalf("screener called %d times for a claimed job, want 0", len(sc.calls))
	}
}

func TestSweepKeepsClaimWhenBatchAlreadyRunning(t *testing.T) {
	st := &fakeSweepStore{
		due:     []*store.Job{{ID: 1}},
		claimed: map[int64]bool{},
	}
	sc := &fakeScreener{errs: []error{pipeline.ErrBatchInProgress}}
	sw := NewSweeper(st, sc, time.Second)

	sw.Sweep(context.Background())
	if !st.claimed[1] {
		t.Fatal("claim was not kept after a concurrent manual run")
	}

	// Next sweep must not retry the deadline trigger.
	sw.Sweep(context.Background())
	if len(sc.calls) != 1 {
		t.Fatalf("screener called %d times, want 1", len(sc.calls))
	}
}

func TestSweepRetriesAfterTransientFailure(t *testing.T) {
	st := &fakeSweepStore{
		due:     []*store.Job{{ID: 1, Title: "Backend Engineer"}},
		claimed: map[int64]bool{},
	}
	sc := &fakeScreener{errs: []error{errors.New("db down")}}
	sw := NewSweeper(st, sc, time.Second)

	// The failed run gives the claim back.
	sw.Sweep(context.Background())
	if st.claimed[1] {
		t.Fatal("claim still held after a transient screening failure")
	}

	// The next sweep reclaims and succeeds; after that the trigger is spent.
	sw.Sweep(context.Background())
	if !st.claimed[1] {
		t.Fatal("claim not taken on the retry")
	}
	sw.Sweep(context.Background())
	if len(sc.calls) != 2 {
		t.Fatalf("screener called %d times, want 2 (one failure, one retry)", len(sc.calls))
	}
}

func TestSweepToleratesListFailure(t *testing.T) {
	st := &fakeSweepStore{listErr: errors.New("db down"), claimed: map[int64]bool{}}
	sc := &fakeScreener{}
	sw := NewSweeper(st, sc, time.Second)

	sw.Sweep(context.Background())
	if len(sc.calls) != 0 {
		t.Fatal("screener called despite list failure")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	st := &fakeSweepStore{claimed: map[int64]bool{}}
	sw := NewSweeper(st, &fakeScreener{}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sw.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
