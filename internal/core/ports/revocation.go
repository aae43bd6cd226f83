package ports

import (
	"context"
	"time"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// RevocationStore keeps the ids of tokens that were explicitly revoked
// (logout) until they would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuditRepository persists the audit trail of mutating operations.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error
}
