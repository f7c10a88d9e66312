package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

type departmentService struct {
	repo   ports.DepartmentRepository
	logger zerolog.Logger
}

// NewDepartmentService returns a DepartmentService implementation.
func NewDepartmentService(repo ports.DepartmentRepository, logger zerolog.Logger) ports.DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) Create(ctx context.Context, name, description, managerID string) (*domain.Department, error) {
	now := time.Now().UTC()
	dept := &domain.Department{
		Name:        name,
		Description: description,
		ManagerID:   managerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, dept)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("department_id", created.ID).Str("name", created.Name).Msg("department created")
	return created, nil
}

func (s *departmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *departmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *departmentService) Update(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	existing, err := s.repo.FindByID(ctx, dept.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = dept.Name
	existing.Description = dept.Description
	existing.ManagerID = dept.ManagerID
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
