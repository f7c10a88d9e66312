package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-system/internal/core/domain"
)

type stubPunchRepo struct {
	punches []*domain.PunchRecord
}

func (r *stubPunchRepo) Insert(_ context.Context, p *domain.PunchRecord) (*domain.PunchRecord, error) {
	clone := *p
	clone.ID = "punch_" + strconv.Itoa(len(r.punches)+1)
	r.punches = append(r.punches, &clone)
	return &clone, nil
}

func (r *stubPunchRepo) ListByUser(_ context.Context, userID string, from, to time.Time) ([]*domain.PunchRecord, error) {
	var out []*domain.PunchRecord
	for _, p := range r.punches {
		if p.UserID == userID && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubPunchDedup struct {
	seen     map[string]bool
	checkErr error
	markErr  error
}

func newStubPunchDedup() *stubPunchDedup {
	return &stubPunchDedup{seen: make(map[string]bool)}
}

func (d *stubPunchDedup) IsDuplicate(_ context.Context, userID string, kind domain.PunchKind) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[userID+":"+string(kind)], nil
}

func (d *stubPunchDedup) Mark(_ context.Context, userID string, kind domain.PunchKind) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[userID+":"+string(kind)] = true
	return nil
}

func TestPunchService_Punch_Records(t *testing.T) {
	repo := &stubPunchRepo{}
	svc := NewPunchService(repo, newStubPunchDedup(), zerolog.Nop())

	punch, err := svc.Punch(context.Background(), "user_1", domain.PunchIn, "front door")
	if err != nil {
		t.Fatalf("punch failed: %v", err)
	}
	if punch.ID == "" || punch.Timestamp.IsZero() {
		t.Fatalf("unexpected punch: %+v", punch)
	}
	if len(repo.punches) != 1 {
		t.Fatalf("expected 1 stored punch, got %d", len(repo.punches))
	}
}

func TestPunchService_Punch_DuplicateSuppressed(t *testing.T) {
	repo := &stubPunchRepo{}
	svc := NewPunchService(repo, newStubPunchDedup(), zerolog.Nop())

	if _, err := svc.Punch(context.Background(), "user_1", domain.PunchIn, ""); err != nil {
		t.Fatalf("first punch failed: %v", err)
	}
	if _, err := svc.Punch(context.Background(), "user_1", domain.PunchIn, ""); !errors.Is(err, domain.ErrDuplicatePunch) {
		t.Fatalf("expected ErrDuplicatePunch, got %v", err)
	}
	// A different kind is not a duplicate.
	if _, err := svc.Punch(context.Background(), "user_1", domain.PunchOut, ""); err != nil {
		t.Fatalf("punch-out failed: %v", err)
	}
	if len(repo.punches) != 2 {
		t.Fatalf("expected 2 stored punches, got %d", len(repo.punches))
	}
}

func TestPunchService_Punch_DedupUnavailable(t *testing.T) {
	repo := &stubPunchRepo{}
	dedup := newStubPunchDedup()
	dedup.checkErr = errors.New("redis down")
	svc := NewPunchService(repo, dedup, zerolog.Nop())

	// A broken dedup store must not block punches.
	if _, err := svc.Punch(context.Background(), "user_1", domain.PunchIn, ""); err != nil {
		t.Fatalf("punch failed: %v", err)
	}
}
