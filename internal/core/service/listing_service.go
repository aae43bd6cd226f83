package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

// ListingService manages one kind of store-scoped listing. PT is the pointer
// type of T and exposes the store the listing belongs to.
type ListingService[T domain.Listing, PT interface {
	*T
	domain.StoreScoped
}] struct {
	resource string
	listings ports.ListingRepository[T]
	stores   ports.StoreRepository
	audit    auditor
	log      zerolog.Logger
}

// NewListingService builds the service for resource (e.g. "product").
func NewListingService[T domain.Listing, PT interface {
	*T
	domain.StoreScoped
}](resource string, listings ports.ListingRepository[T], stores ports.StoreRepository, audit ports.AuditRepository, log zerolog.Logger) *ListingService[T, PT] {
	return &ListingService[T, PT]{
		resource: resource,
		listings: listings,
		stores:   stores,
		audit:    newAuditor(audit, log),
		log:      log.With().Str("resource", resource).Logger(),
	}
}

// Create adds item to its store. The store must be active and owned by the
// actor unless the actor is an admin.
func (s *ListingService[T, PT]) Create(ctx context.Context, actor domain.Principal, item *T) (*T, error) {
	p := PT(item)
	if p.OwningStoreID() == 0 {
		return nil, domain.Invalid("storeId is required")
	}

	store, err := s.stores.FindByID(ctx, p.OwningStoreID())
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor, store.OwnerID); err != nil {
		return nil, err
	}

	p.MarkActive()
	if err := s.listings.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", p.ListingID()).Int64("store_id", store.ID).Msg("listing created")
	s.audit.record(ctx, actor, domain.ActionCreate, s.resource, p.ListingID())
	return item, nil
}

func (s *ListingService[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	return s.listings.FindByID(ctx, id)
}

func (s *ListingService[T, PT]) List(ctx context.Context, filter domain.ListingFilter) ([]T, error) {
	return s.listings.List(ctx, filter)
}

// Update loads the listing, authorizes the actor against its store owner and
// saves the result of apply. A listing cannot move to another store.
func (s *ListingService[T, PT]) Update(ctx context.Context, actor domain.Principal, id int64, apply func(*T)) (*T, error) {
	item, err := s.authorized(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	storeID := PT(item).OwningStoreID()
	apply(item)
	if PT(item).OwningStoreID() != storeID {
		return nil, domain.Invalid("storeId cannot be changed")
	}

	if err := s.listings.Save(ctx, item); err != nil {
		return nil, err
	}
	s.audit.record(ctx, actor, domain.ActionUpdate, s.resource, id)
	return item, nil
}

func (s *ListingService[T, PT]) Deactivate(ctx context.Context, actor domain.Principal, id int64) error {
	if _, err := s.authorized(ctx, actor, id); err != nil {
		return err
	}
	if err := s.listings.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("id", id).Int64("actor_id", actor.UserID).Msg("listing deactivated")
	s.audit.record(ctx, actor, domain.ActionDeactivate, s.resource, id)
	return nil
}

func (s *ListingService[T, PT]) authorized(ctx context.Context, actor domain.Principal, id int64) (*T, error) {
	item, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ownerID, err := s.stores.OwnerOf(ctx, PT(item).OwningStoreID())
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor, ownerID); err != nil {
		return nil, err
	}
	return item, nil
}
