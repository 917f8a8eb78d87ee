package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
)

// SessionRepository stores finalized session summaries only; live sessions
// stay in process memory.
type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) Save(ctx context.Context, record *models.SessionRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]models.SessionRecord, error) {
	opts := options.Find().SetSort(bson.M{"completedAt": -1})
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.SessionRecord
	for cur.Next(ctx) {
		var rec models.SessionRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cur.Err()
}
