package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

type stubLeaveRepo struct {
	byID     map[string]*domain.LeaveRequest
	failIDs  map[string]bool // Update fails for these ids
	nextID   int
	queryErr error
}

func newStubLeaveRepo() *stubLeaveRepo {
	return &stubLeaveRepo{
		byID:    make(map[string]*domain.LeaveRequest),
		failIDs: make(map[string]bool),
	}
}

func cloneLeave(r *domain.LeaveRequest) *domain.LeaveRequest {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (s *stubLeaveRepo) Create(_ context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	s.nextID++
	stored := cloneLeave(req)
	stored.ID = "leave_" + strconv.Itoa(s.nextID)
	s.byID[stored.ID] = cloneLeave(stored)
	return stored, nil
}

func (s *stubLeaveRepo) FindByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrLeaveNotFound
	}
	return cloneLeave(r), nil
}

func (s *stubLeaveRepo) ListByUser(_ context.Context, userID string) ([]*domain.LeaveRequest, error) {
	var out []*domain.LeaveRequest
	for _, r := range s.byID {
		if r.UserID == userID {
			out = append(out, cloneLeave(r))
		}
	}
	return out, nil
}

// FindOverdueApproved mirrors the Mongo query: approved and end_date < asOf.
func (s *stubLeaveRepo) FindOverdueApproved(_ context.Context, asOf time.Time) ([]*domain.LeaveRequest, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	var out []*domain.LeaveRequest
	for _, r := range s.byID {
		if r.Status == domain.LeaveApproved && r.EndDate.Before(asOf) {
			out = append(out, cloneLeave(r))
		}
	}
	return out, nil
}

func (s *stubLeaveRepo) Update(_ context.Context, req *domain.LeaveRequest) error {
	if s.failIDs[req.ID] {
		return errors.New("store down")
	}
	if _, ok := s.byID[req.ID]; !ok {
		return domain.ErrLeaveNotFound
	}
	s.byID[req.ID] = cloneLeave(req)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestLeaveService(repo *stubLeaveRepo, now time.Time) *leaveService {
	return &leaveService{
		repo:   repo,
		now:    func() time.Time { return now },
		logger: zerolog.Nop(),
	}
}

func seedLeave(repo *stubLeaveRepo, id string, status domain.LeaveStatus, end time.Time) {
	repo.byID[id] = &domain.LeaveRequest{
		ID:        id,
		UserID:    "user_1",
		StartDate: end.AddDate(0, 0, -2),
		EndDate:   end,
		Status:    status,
	}
}

func TestLeaveService_Create_RejectsInvertedDates(t *testing.T) {
	repo := newStubLeaveRepo()
	svc := newTestLeaveService(repo, date(2024, 6, 10))

	_, err := svc.Create(context.Background(), ports.CreateLeaveInput{
		UserID:    "user_1",
		StartDate: date(2024, 6, 20),
		EndDate:   date(2024, 6, 15),
	})
	if !errors.Is(err, domain.ErrInvalidLeaveDates) {
		t.Fatalf("expected ErrInvalidLeaveDates, got %v", err)
	}
}

func TestLeaveService_ApproveThenReject_Invalid(t *testing.T) {
	repo := newStubLeaveRepo()
	svc := newTestLeaveService(repo, date(2024, 6, 10))

	created, err := svc.Create(context.Background(), ports.CreateLeaveInput{
		UserID:    "user_1",
		StartDate: date(2024, 6, 12),
		EndDate:   date(2024, 6, 14),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	approved, err := svc.Approve(context.Background(), created.ID, "mgr_1")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != domain.LeaveApproved || approved.DecisionAt == nil || approved.ManagerID != "mgr_1" {
		t.Fatalf("unexpected approved request: %+v", approved)
	}

	if _, err := svc.Reject(context.Background(), created.ID, "mgr_1"); !errors.Is(err, domain.ErrInvalidLeaveTransition) {
		t.Fatalf("expected ErrInvalidLeaveTransition, got %v", err)
	}
}

func TestLeaveService_CompleteOverdue_TransitionsOnlyOverdue(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)
	repo := newStubLeaveRepo()
	svc := newTestLeaveService(repo, now)

	seedLeave(repo, "overdue", domain.LeaveApproved, date(2024, 6, 9))      // yesterday
	seedLeave(repo, "current", domain.LeaveApproved, date(2024, 6, 10))    // ends today: not overdue
	seedLeave(repo, "future", domain.LeaveApproved, date(2024, 6, 11))     // tomorrow
	seedLeave(repo, "pending", domain.LeavePending, date(2024, 6, 1))      // not approved
	seedLeave(repo, "rejected", domain.LeaveRejected, date(2024, 6, 1))    // not approved
	seedLeave(repo, "done", domain.LeaveCompleted, date(2024, 6, 1))       // already terminal

	completed, err := svc.CompleteOverdue(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if completed != 1 {
		t.Fatalf("expected 1 completion, got %d", completed)
	}

	got := repo.byID["overdue"]
	if got.Status != domain.LeaveCompleted {
		t.Fatalf("overdue request not completed: %s", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Fatalf("CompletedAt = %v, want %v", got.CompletedAt, now)
	}

	for _, id := range []string{"current", "future", "pending", "rejected"} {
		if repo.byID[id].Status == domain.LeaveCompleted {
			t.Fatalf("request %s must not be completed", id)
		}
		if repo.byID[id].CompletedAt != nil {
			t.Fatalf("request %s must not have CompletedAt", id)
		}
	}
}

func TestLeaveService_CompleteOverdue_Idempotent(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 1, 0, time.UTC)
	repo := newStubLeaveRepo()
	svc := newTestLeaveService(repo, now)

	seedLeave(repo, "overdue", domain.LeaveApproved, date(2024, 6, 9))

	if n, err := svc.CompleteOverdue(context.Background()); err != nil || n != 1 {
		t.Fatalf("first sweep: n=%d err=%v", n, err)
	}
	first := *repo.byID["overdue"].CompletedAt

	if n, err := svc.CompleteOverdue(context.Background()); err != nil || n != 0 {
		t.Fatalf("second sweep must be a no-op: n=%d err=%v", n, err)
	}
	if !repo.byID["overdue"].CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt changed on second sweep")
	}
}

func TestLeaveService_CompleteOverdue_PartialFailure(t *testing.T) {
	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	repo := newStubLeaveRepo()
	svc := newTestLeaveService(repo, now)

	seedLeave(repo, "bad", domain.LeaveApproved, date(2024, 6, 8))
	seedLeave(repo, "good", domain.LeaveApproved, date(2024, 6, 9))
	repo.failIDs["bad"] = true

	completed, err := svc.CompleteOverdue(context.Background())
	if err != nil {
		t.Fatalf("sweep must not fail on a single item: %v", err)
	}
	if completed != 1 {
		t.Fatalf("expected 1 completion despite failure, got %d", completed)
	}
	if repo.byID["good"].Status != domain.LeaveCompleted {
		t.Fatalf("good request not completed")
	}
	if repo.byID["bad"].Status != domain.LeaveApproved {
		t.Fatalf("failed update must leave the request approved for the next sweep")
	}
}

func TestLeaveService_CompleteOverdue_QueryError(t *testing.T) {
	repo := newStubLeaveRepo()
	repo.queryErr = errors.New("store down")
	svc := newTestLeaveService(repo, date(2024, 6, 10))

	if _, err := svc.CompleteOverdue(context.Background()); err == nil {
		t.Fatalf("expected error when the overdue query fails")
	}
}
