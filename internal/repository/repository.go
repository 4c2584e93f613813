package repository

import (
	"context"

	"purelift/server/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors from other failures.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ExerciseRepository defines the interface for a user's exercise catalog.
// Exercises accumulate and are never deleted: historical set logs reference
// them, so there is deliberately no delete method.
type ExerciseRepository interface {
	GetByUser(ctx context.Context, userID string) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	Upsert(ctx context.Context, exercise *domain.Exercise) error
	InsertMany(ctx context.Context, exercises []domain.Exercise) error
}

// SetLogRepository defines the interface for historical set logs.
// The collection is insert-only: persisted sets are immutable.
type SetLogRepository interface {
	GetByUser(ctx context.Context, userID string) ([]domain.SetLog, error)
	InsertMany(ctx context.Context, sets []domain.SetLog) error
}

// RoutineRepository defines the interface for routines.
type RoutineRepository interface {
	GetByUser(ctx context.Context, userID string) ([]domain.Routine, error)
	GetByID(ctx context.Context, id string, userID string) (*domain.Routine, error)
	Upsert(ctx context.Context, routine *domain.Routine) error
	UpsertMany(ctx context.Context, routines []domain.Routine) error
	Delete(ctx context.Context, id string, userID string) error
}

// SettingsRepository defines the interface for the single per-user settings
// document. Get returns ErrNotFound until the user saves settings once.
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Upsert(ctx context.Context, settings *domain.UserSettings) error
}
