package domain

import "time"

// Audit actions.
const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDeactivate = "deactivate"
)

// AuditEvent records a single mutation performed by an authenticated caller.
type AuditEvent struct {
	ActorID    int64
	ActorRole  string
	Action     string
	Resource   string
	ResourceID int64
	OccurredAt time.Time
}
