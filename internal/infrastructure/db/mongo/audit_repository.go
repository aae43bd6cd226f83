package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

const auditCollection = "audit_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(auditCollection)}
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

type auditDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ActorID    int64              `bson:"actor_id"`
	ActorRole  string             `bson:"actor_role"`
	Action     string             `bson:"action"`
	Resource   string             `bson:"resource"`
	ResourceID int64              `bson:"resource_id"`
	OccurredAt time.Time          `bson:"occurred_at"`
}

func toAuditDocument(e *domain.AuditEvent) auditDocument {
	return auditDocument{
		ActorID:    e.ActorID,
		ActorRole:  e.ActorRole,
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: e.ResourceID,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

// InsertEvent appends a mutation to the audit_events collection.
func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.AuditEvent) error {
	_, err := r.col.InsertOne(ctx, toAuditDocument(event))
	return err
}

// EnsureIndexes creates the lookup indexes of the audit collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}}},
		{Keys: bson.D{{Key: "actor_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
