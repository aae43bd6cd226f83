package relational

import (
	"errors"

	"gorm.io/gorm"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// translate maps gorm errors onto the domain taxonomy. notFound is returned
// for missing rows; anything unexpected becomes domain.ErrStoreUnavailable.
func translate(op string, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	default:
		return domain.Unavailable(op, err)
	}
}
