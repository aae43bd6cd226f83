package ports

import (
	"context"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence operations for marketplace accounts.
// Implementations return domain.ErrUserNotFound for missing rows,
// domain.ErrDuplicateUser for unique violations and wrap every other failure
// in domain.ErrStoreUnavailable.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether either value is already taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Save(ctx context.Context, user *domain.User) error
	Deactivate(ctx context.Context, id int64) error
}
