package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-system/internal/api/metrics"
	"github.com/peopleops/employee-system/internal/core/ports"
)

const day = 24 * time.Hour

// LeaveSweeper runs the overdue-leave completion sweep as a long-lived
// background task: once at startup, then once per day aligned to UTC
// midnight. Exactly one sweeper should run per process.
type LeaveSweeper struct {
	leaves ports.LeaveService
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	log    zerolog.Logger
}

// NewLeaveSweeper creates a sweeper with the real clock and a cancellable
// timer-based wait. Both are overridable in tests.
func NewLeaveSweeper(leaves ports.LeaveService, log zerolog.Logger) *LeaveSweeper {
	return &LeaveSweeper{
		leaves: leaves,
		now:    func() time.Time { return time.Now().UTC() },
		sleep:  sleepCtx,
		log:    log,
	}
}

// Run blocks until ctx is cancelled. Cancellation is honoured at every wait
// point; a sweep already in flight is not interrupted mid-batch, and no
// final sweep runs after cancellation.
func (s *LeaveSweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	if err := s.sleep(ctx, s.untilNextMidnight()); err != nil {
		s.log.Info().Msg("leave sweeper stopped while aligning to midnight")
		return
	}

	for {
		s.sweep(ctx)
		if err := s.sleep(ctx, day); err != nil {
			s.log.Info().Msg("leave sweeper stopped")
			return
		}
	}
}

// untilNextMidnight computes the wait from now to the next UTC date
// boundary. Exactly-midnight yields zero, and clock-skew edge cases clamp
// the result to [0, 24h].
func (s *LeaveSweeper) untilNextMidnight() time.Duration {
	now := s.now()
	y, m, d := now.UTC().Date()
	next := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}

	wait := next.Sub(now)
	if wait < 0 {
		return 0
	}
	if wait > day {
		return day
	}
	return wait
}

func (s *LeaveSweeper) sweep(ctx context.Context) {
	metrics.SweepRunsTotal.Inc()

	completed, err := s.leaves.CompleteOverdue(ctx)
	if err != nil {
		metrics.SweepErrorsTotal.Inc()
		s.log.Error().Err(err).Msg("leave completion sweep failed")
		return
	}
	metrics.LeaveCompletedTotal.Add(float64(completed))
}

// sleepCtx waits for d or until ctx is cancelled, whichever comes first.
// Returns ctx.Err() on cancellation, nil when the full duration elapsed.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
