package relational

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

// ListingRepository implements ports.ListingRepository for any listing
// table. Inactive rows are invisible.
type ListingRepository[T domain.Listing] struct {
	db          *gorm.DB
	name        string
	notFound    error
	hasCategory bool
}

// NewListingRepository binds a repository to the table of T. notFound is the
// error returned for missing or inactive rows.
func NewListingRepository[T domain.Listing](db *gorm.DB, notFound error) ports.ListingRepository[T] {
	r := &ListingRepository[T]{db: db, notFound: notFound}
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err == nil {
		r.name = stmt.Schema.Table
		r.hasCategory = stmt.Schema.LookUpField("category") != nil
	}
	return r
}

func (r *ListingRepository[T]) Create(ctx context.Context, item *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrStoreNotFound
	}
	return translate("create "+r.name, err, r.notFound)
}

func (r *ListingRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&item, id).Error
	if err != nil {
		return nil, translate("find "+r.name, err, r.notFound)
	}
	return &item, nil
}

func (r *ListingRepository[T]) List(ctx context.Context, filter domain.ListingFilter) ([]T, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.StoreID != 0 {
		q = q.Where("store_id = ?", filter.StoreID)
	}
	if filter.Category != "" && r.hasCategory {
		q = q.Where("category = ?", filter.Category)
	}

	var items []T
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, domain.Unavailable("list "+r.name, err)
	}
	return items, nil
}

func (r *ListingRepository[T]) Save(ctx context.Context, item *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
	return translate("save "+r.name, err, r.notFound)
}

func (r *ListingRepository[T]) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return domain.Unavailable("deactivate "+r.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}
