package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

const resourceStore = "store"

type StoreService struct {
	stores ports.StoreRepository
	users  ports.UserRepository
	audit  auditor
	log    zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, users ports.UserRepository, audit ports.AuditRepository, log zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, users: users, audit: newAuditor(audit, log), log: log}
}

// Create opens a store. Callers own the stores they create unless an admin
// names another owner.
func (s *StoreService) Create(ctx context.Context, actor domain.Principal, in ports.CreateStoreInput) (*domain.Store, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Category == "" {
		return nil, domain.Invalid("name and category are required")
	}

	ownerID := actor.UserID
	if in.OwnerID != 0 {
		ownerID = in.OwnerID
	}
	if err := domain.Authorize(actor, ownerID); err != nil {
		return nil, err
	}
	if ownerID != actor.UserID {
		owner, err := s.users.FindByID(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if !owner.IsActive {
			return nil, domain.ErrUserNotFound
		}
	}

	store := &domain.Store{
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     ownerID,
		Category:    in.Category,
		Address:     in.Address,
		Phone:       in.Phone,
		IsActive:    true,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	s.log.Info().Int64("store_id", store.ID).Int64("owner_id", ownerID).Msg("store created")
	s.audit.record(ctx, actor, domain.ActionCreate, resourceStore, store.ID)
	return store, nil
}

func (s *StoreService) Get(ctx context.Context, id int64) (*domain.Store, error) {
	return s.stores.FindByID(ctx, id)
}

func (s *StoreService) List(ctx context.Context, filter ports.StoreFilter) ([]domain.Store, error) {
	return s.stores.List(ctx, filter)
}

func (s *StoreService) Update(ctx context.Context, actor domain.Principal, id int64, patch domain.StorePatch) (*domain.Store, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor, store.OwnerID); err != nil {
		return nil, err
	}

	patch.Apply(store)
	store.Name = strings.TrimSpace(store.Name)
	if store.Name == "" || store.Category == "" {
		return nil, domain.Invalid("name and category cannot be empty")
	}

	if err := s.stores.Save(ctx, store); err != nil {
		return nil, err
	}
	s.audit.record(ctx, actor, domain.ActionUpdate, resourceStore, id)
	return store, nil
}

func (s *StoreService) Deactivate(ctx context.Context, actor domain.Principal, id int64) error {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(actor, store.OwnerID); err != nil {
		return err
	}
	if err := s.stores.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("store_id", id).Int64("actor_id", actor.UserID).Msg("store deactivated")
	s.audit.record(ctx, actor, domain.ActionDeactivate, resourceStore, id)
	return nil
}
