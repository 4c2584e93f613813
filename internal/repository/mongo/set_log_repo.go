package mongo

import (
	"context"

	"purelift/server/internal/domain"
	"purelift/server/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const setLogCollectionName = "set_logs"

// mongoSetLogRepository implements repository.SetLogRepository
type mongoSetLogRepository struct {
	collection *mongo.Collection
}

// NewMongoSetLogRepository creates a new SetLog repository backed by MongoDB.
func NewMongoSetLogRepository(db *mongo.Database) repository.SetLogRepository {
	return &mongoSetLogRepository{
		collection: db.Collection(setLogCollectionName),
	}
}

// GetByUser retrieves a user's full set history, newest first. Callers that
// need a different order re-sort in memory.
func (r *mongoSetLogRepository) GetByUser(ctx context.Context, userID string) ([]domain.SetLog, error) {
	var sets []domain.SetLog
	filter := bson.M{"userId": userID}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}

// InsertMany appends completed sets to history. Insert-only: existing rows
// are never updated, a persisted set is immutable.
func (r *mongoSetLogRepository) InsertMany(ctx context.Context, sets []domain.SetLog) error {
	if len(sets) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(sets))
	for _, s := range sets {
		docs = append(docs, s)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// EnsureSetLogIndexes creates necessary indexes for the set_logs collection.
func EnsureSetLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "exerciseId", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
