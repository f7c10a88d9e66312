package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

// PunchDedup abstracts the duplicate-punch suppression store (Redis).
type PunchDedup interface {
	IsDuplicate(ctx context.Context, userID string, kind domain.PunchKind) (bool, error)
	Mark(ctx context.Context, userID string, kind domain.PunchKind) error
}

type punchService struct {
	repo   ports.PunchRepository
	dedup  PunchDedup
	now    func() time.Time
	logger zerolog.Logger
}

// NewPunchService returns a PunchService implementation.
func NewPunchService(repo ports.PunchRepository, dedup PunchDedup, logger zerolog.Logger) ports.PunchService {
	return &punchService{
		repo:   repo,
		dedup:  dedup,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Punch records a clock-in/out. Rapid repeats of the same punch kind within
// the dedup window are rejected so a double tap does not create two records.
func (s *punchService) Punch(ctx context.Context, userID string, kind domain.PunchKind, notes string) (*domain.PunchRecord, error) {
	isDup, err := s.dedup.IsDuplicate(ctx, userID, kind)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("punch dedup check failed, recording anyway")
	} else if isDup {
		return nil, domain.ErrDuplicatePunch
	}

	punch := &domain.PunchRecord{
		UserID:    userID,
		Kind:      kind,
		Timestamp: s.now(),
		Notes:     notes,
	}

	created, err := s.repo.Insert(ctx, punch)
	if err != nil {
		return nil, err
	}

	if markErr := s.dedup.Mark(ctx, userID, kind); markErr != nil {
		s.logger.Warn().Err(markErr).Str("user_id", userID).Msg("failed to set punch dedup key")
	}

	s.logger.Info().Str("user_id", userID).Str("kind", string(kind)).Msg("punch recorded")
	return created, nil
}

func (s *punchService) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]*domain.PunchRecord, error) {
	return s.repo.ListByUser(ctx, userID, from, to)
}
