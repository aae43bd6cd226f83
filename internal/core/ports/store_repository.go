package ports

import (
	"context"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// StoreFilter narrows store listings. Zero values mean "no filter".
type StoreFilter struct {
	OwnerID  int64
	Category string
}

// StoreRepository defines persistence operations for stores. Only active
// stores are visible through FindByID and List.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	FindByID(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context, filter StoreFilter) ([]domain.Store, error)
	// OwnerOf returns the owner of a store whether or not it is active.
	OwnerOf(ctx context.Context, id int64) (int64, error)
	Save(ctx context.Context, store *domain.Store) error
	Deactivate(ctx context.Context, id int64) error
}

// ListingRepository is the persistence contract shared by products, services,
// jobs and announcements. Only active rows are visible.
type ListingRepository[T domain.Listing] interface {
	Create(ctx context.Context, item *T) error
	FindByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]T, error)
	Save(ctx context.Context, item *T) error
	Deactivate(ctx context.Context, id int64) error
}
