package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

const resourceUser = "user"

type UserService struct {
	users ports.UserRepository
	audit auditor
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, audit: newAuditor(audit, log), log: log}
}

// Get returns the account with the given id. Users may read their own
// account; admins may read any.
func (s *UserService) Get(ctx context.Context, actor domain.Principal, id int64) (*domain.User, error) {
	if err := domain.Authorize(actor, id); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, actor domain.Principal) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}

// Update applies patch to the account. Role and activation changes are
// reserved for admins.
func (s *UserService) Update(ctx context.Context, actor domain.Principal, id int64, patch domain.UserPatch) (*domain.User, error) {
	if err := domain.Authorize(actor, id); err != nil {
		return nil, err
	}
	if patch.Privileged() && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return nil, domain.Invalid("unknown role " + *patch.Role)
	}
	if actor.UserID == id && actor.IsAdmin() {
		if patch.IsActive != nil && !*patch.IsActive {
			return nil, domain.Invalid("admins cannot deactivate their own account")
		}
		if patch.Role != nil && *patch.Role != domain.RoleAdmin {
			return nil, domain.Invalid("admins cannot change their own role")
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			return nil, domain.Invalid("email cannot be empty")
		}
		user.Email = email
	}
	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return nil, domain.Invalid("fullName cannot be empty")
		}
		user.FullName = name
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.audit.record(ctx, actor, domain.ActionUpdate, resourceUser, id)
	return user, nil
}

// Deactivate disables an account. Admin only; admins cannot disable
// themselves.
func (s *UserService) Deactivate(ctx context.Context, actor domain.Principal, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if actor.UserID == id {
		return domain.Invalid("admins cannot deactivate their own account")
	}
	if err := s.users.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Int64("actor_id", actor.UserID).Msg("user deactivated")
	s.audit.record(ctx, actor, domain.ActionDeactivate, resourceUser, id)
	return nil
}
