package mongo

import (
	"context"
	"errors"
	"time"

	"purelift/server/internal/domain"
	"purelift/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollectionName = "settings"

// mongoSettingsRepository implements repository.SettingsRepository
type mongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new Settings repository backed by MongoDB.
// The user id doubles as the document id, so no extra index is needed.
func NewMongoSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &mongoSettingsRepository{
		collection: db.Collection(settingsCollectionName),
	}
}

// Get retrieves the user's settings document. Returns ErrNotFound until the
// user has saved settings at least once; callers fall back to defaults.
func (r *mongoSettingsRepository) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	filter := bson.M{"_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert replaces the user's settings document wholesale.
func (r *mongoSettingsRepository) Upsert(ctx context.Context, settings *domain.UserSettings) error {
	if settings.UserID == "" {
		return errors.New("user ID is required")
	}

	settings.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": settings.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, settings, opts)
	return err
}
