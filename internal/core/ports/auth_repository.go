package ports

import (
	"context"

	"github.com/peopleops/employee-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the stored user document. Used by the credential
	// migration path to persist a rehashed password.
	Update(ctx context.Context, user *domain.User) error
}
