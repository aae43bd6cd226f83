package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

// auditor writes the audit trail. Failures are logged and never fail the
// mutation that triggered them.
type auditor struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	now  func() time.Time
}

func newAuditor(repo ports.AuditRepository, log zerolog.Logger) auditor {
	return auditor{repo: repo, log: log, now: time.Now}
}

func (a auditor) record(ctx context.Context, actor domain.Principal, action, resource string, id int64) {
	if a.repo == nil {
		return
	}
	event := &domain.AuditEvent{
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		Action:     action,
		Resource:   resource,
		ResourceID: id,
		OccurredAt: a.now().UTC(),
	}
	if err := a.repo.InsertEvent(ctx, event); err != nil {
		a.log.Warn().Err(err).Str("resource", resource).Int64("id", id).Str("action", action).Msg("failed to record audit event")
	}
}
