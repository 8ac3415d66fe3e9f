package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	mu      sync.Mutex
	cutoffs []int64
	err     error
}

func (r *recordingRepo) DeleteExpired(before int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cutoffs = append(r.cutoffs, before)
	return r.err
}

func (r *recordingRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cutoffs)
}

func TestHandoffCleaner_Cutoff(t *testing.T) {
	repo := &recordingRepo{}
	cleaner := NewHandoffCleaner(repo, 2*time.Hour, time.Hour)
	cleaner.now = func() int64 { return 10_000_000 }

	cleaner.cleanup()

	require.Equal(t, []int64{10_000_000 - 7_200_000}, repo.cutoffs)
}

func TestHandoffCleaner_ErrorIsSwallowed(t *testing.T) {
	repo := &recordingRepo{err: errors.New("locked")}
	cleaner := NewHandoffCleaner(repo, time.Hour, time.Hour)

	require.NotPanics(t, cleaner.cleanup)
	require.Equal(t, 1, repo.calls())
}

func TestHandoffCleaner_StartStopsOnCancel(t *testing.T) {
	repo := &recordingRepo{}
	cleaner := NewHandoffCleaner(repo, time.Hour, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		cleaner.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return repo.calls() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleaner did not stop after cancel")
	}
}
