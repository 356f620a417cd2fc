package pipeline

import "sync"

// jobLocks is the per-job advisory lock held for the duration of a batch
// operation. A second caller hitting the same job gets an immediate
// already-in-progress signal instead of double-screening the candidates.
type jobLocks struct {
	mu   sync.Mutex
	held map[int64]bool
}

func newJobLocks() *jobLocks {
	return &jobLocks{held: make(map[int64]bool)}
}

func (l *jobLocks) tryAcquire(jobID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[jobID] {
		return false
	}
	l.held[jobID] = true
	return true
}

func (l *jobLocks) release(jobID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, jobID)
}
