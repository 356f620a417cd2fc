package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"hireos/internal/oracle"
	"hireos/internal/store"
)

type fakeSessionStore struct {
	byEmail map[string]*store.CandidateJob
	updates map[int64]store.CandidateUpdate
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		byEmail: make(map[string]*store.CandidateJob),
		updates: make(map[int64]store.CandidateUpdate),
	}
}

func (f *fakeSessionStore) GetCandidateByEmail(_ context.Context, email string) (*store.CandidateJob, error) {
	cj, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cj, nil
}

func (f *fakeSessionStore) UpdateCandidate(_ context.Context, id int64, upd store.CandidateUpdate) error {
	f.updates[id] = upd
	return nil
}

type scriptedInterviewer struct {
	calls [][]oracle.Message
}

func (s *scriptedInterviewer) Interview(_ context.Context, _, _ string, history []oracle.Message) (string, error) {
	s.calls = append(s.calls, history)
	if len(history) == 0 {
		return "Hello! Tell me about yourself.", nil
	}
	return fmt.Sprintf("Question %d?", len(history)), nil
}

type slowInterviewer struct {
	delay time.Duration
}

func (s *slowInterviewer) Interview(_ context.Context, _, _ string, history []oracle.Message) (string, error) {
	time.Sleep(s.delay)
	return fmt.Sprintf("Question %d?", len(history)), nil
}

type failingInterviewer struct {
	err error
}

func (f *failingInterviewer) Interview(context.Context, string, string, []oracle.Message) (string, error) {
	return "", f.err
}

type memBlobWriter struct {
	objects map[string][]byte
	err     error
}

func (m *memBlobWriter) Put(_ context.Context, prefix, name string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	path := prefix + "/" + name
	m.objects[path] = data
	return path, nil
}

func newTestManager(status string) (*Manager, *fakeSessionStore, *memBlobWriter) {
	st := newFakeSessionStore()
	st.byEmail["ada@example.com"] = &store.CandidateJob{
		Candidate: store.Candidate{
			ID:     7,
			Name:   "Ada",
			Email:  "ada@example.com",
			Status: status,
		},
		JobTitle:        "Backend Engineer",
		JobRequirements: "Go, SQL",
	}
	blobs := &memBlobWriter{objects: make(map[string][]byte)}
	return NewManager(st, &scriptedInterviewer{}, blobs), st, blobs
}

func TestStartShortlistedCandidate(t *testing.T) {
	mgr, st, _ := newTestManager(store.StatusShortlisted)

	res, err := mgr.Start(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.CandidateID != 7 || res.Greeting == "" {
		t.Fatalf("unexpected result: %+v", res)
	}

	upd, ok := st.updates[7]
	if !ok || upd.Status == nil || *upd.Status != store.StatusInterviewPending {
		t.Fatalf("candidate not moved to INTERVIEW_PENDING: %+v", upd)
	}
}

func TestStartResumesPendingWithoutStatusWrite(t *testing.T) {
	mgr, st, _ := newTestManager(store.StatusInterviewPending)

	if _, err := mgr.Start(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, ok := st.updates[7]; ok {
		t.Fatal("status written again for an already pending candidate")
	}
}

func TestStartRejectsIneligibleStatuses(t *testing.T) {
	cases := []struct {
		status  string
		wantErr error
	}{
		{store.StatusApplied, ErrNotEligible},
		{store.StatusRejected, ErrNotEligible},
		{store.StatusFinalist, ErrNotEligible},
		{store.StatusInterviewCompleted, ErrAlreadyInterviewed},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			mgr, _, _ := newTestManager(tc.status)
			_, err := mgr.Start(context.Background(), "ada@example.com")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestStartUnknownEmail(t *testing.T) {
	mgr, _, _ := newTestManager(store.StatusShortlisted)
	_, err := mgr.Start(context.Background(), "nobody@example.com")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMessageRequiresSession(t *testing.T) {
	mgr, _, _ := newTestManager(store.StatusShortlisted)
	_, err := mgr.Message(context.Background(), 7, "hi")
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestFullInterviewFlow(t *testing.T) {
	mgr, st, blobs := newTestManager(store.StatusShortlisted)
	ctx := context.Background()

	if _, err := mgr.Start(ctx, "ada@example.com"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := mgr.Message(ctx, 7, "I have five years of Go experience."); err != nil {
		t.Fatalf("Message: %v", err)
	}
	if _, err := mgr.Message(ctx, 7, "I enjoy working on storage systems."); err != nil {
		t.Fatalf("Message: %v", err)
	}

	path, err := mgr.Finish(ctx, 7)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	transcript := string(blobs.objects[path])
	if !strings.Contains(transcript, "INTERVIEWER:") || !strings.Contains(transcript, "CANDIDATE:") {
		t.Fatalf("transcript missing role labels:\n%s", transcript)
	}
	if !strings.Contains(transcript, "five years of Go") {
		t.Fatal("transcript missing the candidate's answer")
	}

	upd := st.updates[7]
	if upd.Status == nil || *upd.Status != store.StatusInterviewCompleted {
		t.Fatalf("candidate not moved to INTERVIEW_COMPLETED: %+v", upd)
	}
	if upd.TranscriptPath == nil || *upd.TranscriptPath != path {
		t.Fatalf("transcript path not stored: %+v", upd)
	}

	// The session is gone once finished.
	if _, err := mgr.Message(ctx, 7, "anything"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession after finish", err)
	}
}

func TestConcurrentMessagesAllRecorded(t *testing.T) {
	mgr, _, blobs := newTestManager(store.StatusShortlisted)
	ctx := context.Background()

	if _, err := mgr.Start(ctx, "ada@example.com"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// A slow interviewer widens the window in which overlapping turns could
	// clobber each other's history.
	mgr.interviewer = &slowInterviewer{delay: 5 * time.Millisecond}

	const turns = 8
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := mgr.Message(ctx, 7, fmt.Sprintf("answer %d", n)); err != nil {
				t.Errorf("Message %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	path, err := mgr.Finish(ctx, 7)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	transcript := string(blobs.objects[path])
	for i := 0; i < turns; i++ {
		if !strings.Contains(transcript, fmt.Sprintf("answer %d", i)) {
			t.Errorf("transcript lost %q", fmt.Sprintf("answer %d", i))
		}
	}
	if got := strings.Count(transcript, "CANDIDATE:"); got != turns {
		t.Fatalf("transcript has %d candidate turns, want %d", got, turns)
	}
}

func TestFailedTurnLeavesNoUnansweredMessage(t *testing.T) {
	mgr, _, blobs := newTestManager(store.StatusShortlisted)
	ctx := context.Background()

	if _, err := mgr.Start(ctx, "ada@example.com"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	mgr.interviewer = &failingInterviewer{err: errors.New("oracle down")}
	if _, err := mgr.Message(ctx, 7, "lost answer"); err == nil {
		t.Fatal("expected Message to fail")
	}

	mgr.interviewer = &scriptedInterviewer{}
	if _, err := mgr.Message(ctx, 7, "retried answer"); err != nil {
		t.Fatalf("retry: %v", err)
	}

	path, err := mgr.Finish(ctx, 7)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	transcript := string(blobs.objects[path])
	if strings.Contains(transcript, "lost answer") {
		t.Fatal("failed turn left its message in the transcript")
	}
	if !strings.Contains(transcript, "retried answer") {
		t.Fatal("retried turn missing from the transcript")
	}
}

func TestFinishKeepsSessionOnBlobFailure(t *testing.T) {
	mgr, _, blobs := newTestManager(store.StatusShortlisted)
	ctx := context.Background()

	if _, err := mgr.Start(ctx, "ada@example.com"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	blobs.err = errors.New("disk full")
	if _, err := mgr.Finish(ctx, 7); err == nil {
		t.Fatal("expected Finish to fail")
	}

	// The candidate can retry once storage recovers.
	blobs.err = nil
	if _, err := mgr.Finish(ctx, 7); err != nil {
		t.Fatalf("retry after recovery failed: %v", err)
	}
}

func TestFinishRequiresSession(t *testing.T) {
	mgr, _, _ := newTestManager(store.StatusShortlisted)
	_, err := mgr.Finish(context.Background(), 99)
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}
