package mongo

import (
	"context"
	"errors"
	"time"

	"purelift/server/internal/domain"
	"purelift/server/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const routineCollectionName = "routines"

// mongoRoutineRepository implements repository.RoutineRepository
type mongoRoutineRepository struct {
	collection *mongo.Collection
}

// NewMongoRoutineRepository creates a new Routine repository backed by MongoDB.
func NewMongoRoutineRepository(db *mongo.Database) repository.RoutineRepository {
	return &mongoRoutineRepository{
		collection: db.Collection(routineCollectionName),
	}
}

// GetByUser retrieves all routines for a user, oldest first.
func (r *mongoRoutineRepository) GetByUser(ctx context.Context, userID string) ([]domain.Routine, error) {
	var routines []domain.Routine
	filter := bson.M{"userId": userID}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &routines); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}

// GetByID retrieves a routine, scoped to its owner.
func (r *mongoRoutineRepository) GetByID(ctx context.Context, id string, userID string) (*domain.Routine, error) {
	var routine domain.Routine
	filter := bson.M{"_id": id, "userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &routine, nil
}

// Upsert inserts the routine or fully replaces it when the id already exists.
func (r *mongoRoutineRepository) Upsert(ctx context.Context, routine *domain.Routine) error {
	if routine.ID == "" || routine.UserID == "" {
		return errors.New("routine ID and user ID are required")
	}

	now := time.Now().UTC()
	if routine.CreatedAt.IsZero() {
		routine.CreatedAt = now
	}
	routine.UpdatedAt = now

	filter := bson.M{"_id": routine.ID, "userId": routine.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, routine, opts)
	return err
}

// UpsertMany replaces the given routines one by one. Last-write-wins: there
// is no cross-device merge, the newest full document sticks.
func (r *mongoRoutineRepository) UpsertMany(ctx context.Context, routines []domain.Routine) error {
	for i := range routines {
		if err := r.Upsert(ctx, &routines[i]); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a routine, ensuring it belongs to the given user.
func (r *mongoRoutineRepository) Delete(ctx context.Context, id string, userID string) error {
	filter := bson.M{"_id": id, "userId": userID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRoutineIndexes creates necessary indexes for the routines collection.
func EnsureRoutineIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
