package relational

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

// StoreRepository implements ports.StoreRepository with gorm.
type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) ports.StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(store).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrUserNotFound
	}
	return translate("create store", err, domain.ErrStoreNotFound)
}

func (r *StoreRepository) FindByID(ctx context.Context, id int64) (*domain.Store, error) {
	var store domain.Store
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&store, id).Error
	if err != nil {
		return nil, translate("find store", err, domain.ErrStoreNotFound)
	}
	return &store, nil
}

func (r *StoreRepository) OwnerOf(ctx context.Context, id int64) (int64, error) {
	var store domain.Store
	err := r.db.WithContext(ctx).Select("id", "owner_id").First(&store, id).Error
	if err != nil {
		return 0, translate("find store owner", err, domain.ErrStoreNotFound)
	}
	return store.OwnerID, nil
}

func (r *StoreRepository) List(ctx context.Context, filter ports.StoreFilter) ([]domain.Store, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.OwnerID != 0 {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var stores []domain.Store
	if err := q.Order("id").Find(&stores).Error; err != nil {
		return nil, domain.Unavailable("list stores", err)
	}
	return stores, nil
}

func (r *StoreRepository) Save(ctx context.Context, store *domain.Store) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(store).Error
	return translate("save store", err, domain.ErrStoreNotFound)
}

func (r *StoreRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Store{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return domain.Unavailable("deactivate store", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}
