package ports

import (
	"context"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Phone    string
	Role     string // optional; defaults to customer
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// SessionService authenticates requests and ends sessions.
type SessionService interface {
	AuthenticateToken(ctx context.Context, authorization string) (domain.Claims, error)
	AuthenticateSharedSecret(authorization string) error
	// Revoke ends the session described by claims. It fails when no
	// revocation store is configured.
	Revoke(ctx context.Context, claims domain.Claims) error
	CanRevoke() bool
}

// UserService exposes account management to authenticated callers.
type UserService interface {
	Get(ctx context.Context, actor domain.Principal, id int64) (*domain.User, error)
	List(ctx context.Context, actor domain.Principal) ([]domain.User, error)
	Update(ctx context.Context, actor domain.Principal, id int64, patch domain.UserPatch) (*domain.User, error)
	Deactivate(ctx context.Context, actor domain.Principal, id int64) error
}
