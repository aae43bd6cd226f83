package ports

import (
	"context"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// CreateStoreInput carries the fields of a new store. OwnerID is honoured
// only for admins; everybody else always owns the stores they create.
type CreateStoreInput struct {
	Name        string
	Description string
	Category    string
	Address     string
	Phone       string
	OwnerID     int64
}

type StoreService interface {
	Create(ctx context.Context, actor domain.Principal, input CreateStoreInput) (*domain.Store, error)
	Get(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context, filter StoreFilter) ([]domain.Store, error)
	Update(ctx context.Context, actor domain.Principal, id int64, patch domain.StorePatch) (*domain.Store, error)
	Deactivate(ctx context.Context, actor domain.Principal, id int64) error
}

// ListingService manages one kind of store-scoped listing. Every mutation is
// authorized against the owner of the listing's store.
type ListingService[T domain.Listing] interface {
	Create(ctx context.Context, actor domain.Principal, item *T) (*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]T, error)
	Update(ctx context.Context, actor domain.Principal, id int64, apply func(*T)) (*T, error)
	Deactivate(ctx context.Context, actor domain.Principal, id int64) error
}
