package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

var (
	decoyOnce sync.Once
	decoyHash []byte
)

// decoy returns a hash compared against when the username is unknown, so a
// failed login costs the same whether or not the account exists.
func decoy() []byte {
	decoyOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("decoy-password"), bcrypt.DefaultCost)
	})
	return decoyHash
}

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)

	if in.Username == "" || in.Password == "" || in.Email == "" || in.FullName == "" {
		return nil, domain.Invalid("username, password, email and fullName are required")
	}
	if in.Role == "" {
		in.Role = domain.RoleCustomer
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.Invalid("unknown role " + in.Role)
	}
	if in.Role == domain.RoleAdmin {
		return nil, domain.Invalid("the admin role cannot be self-assigned")
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateUser
	}

	user, err := s.newUser(in)
	if err != nil {
		return nil, err
	}
	// The unique indexes catch registrations racing past the check above.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user registered")
	return user, nil
}

func (s *AuthService) newUser(in ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.Invalid("password is too long")
		}
		return nil, err
	}
	return &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         in.Role,
		IsActive:     true,
	}, nil
}

// Login checks the credentials and issues a session token. Unknown usernames,
// wrong passwords and deactivated accounts are indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(decoy(), []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil || !user.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.IssueToken(domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
	})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// EnsureAdmin creates the bootstrap admin account unless an admin exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password, email, fullName string) error {
	count, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Debug().Int64("admins", count).Msg("admin bootstrap skipped")
		return nil
	}
	if fullName == "" {
		fullName = username
	}

	user, err := s.newUser(ports.RegisterInput{
		Username: username,
		Password: password,
		Email:    email,
		FullName: fullName,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", user.ID).Str("username", username).Msg("bootstrap admin created")
	return nil
}
