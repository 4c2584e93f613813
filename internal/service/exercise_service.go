package service

import (
	"context"
	"errors"

	"purelift/server/internal/advisory"
	"purelift/server/internal/domain"
	"purelift/server/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("validation failed")
)

// ExerciseService manages a user's exercise catalog: listing, first-login
// seeding, and creating new exercises from free text via the advisory
// classifier. Exercises are never deleted; historical set logs reference them.
type ExerciseService interface {
	// EnsureSeeded populates the starter catalog and routines when the user
	// has neither, and returns the catalog either way. Calling it when data
	// already exists is a no-op that returns the existing data unchanged.
	EnsureSeeded(ctx context.Context, userID string) ([]domain.Exercise, []domain.Routine, error)

	GetExercises(ctx context.Context, userID string) ([]domain.Exercise, error)

	// CreateFromText classifies free text and returns the matching exercise,
	// reusing an existing catalog entry when the classified name already
	// exists under case-insensitive comparison.
	CreateFromText(ctx context.Context, userID, freeText string) (*domain.Exercise, error)

	GetAlternatives(ctx context.Context, userID, exerciseID string) ([]advisory.Alternative, error)
	GetFormTips(ctx context.Context, userID, exerciseID string) ([]string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	routineRepo  repository.RoutineRepository
	advisor      advisory.Gateway
	newID        func() string
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(
	exerciseRepo repository.ExerciseRepository,
	routineRepo repository.RoutineRepository,
	advisor advisory.Gateway,
	newID func() string,
) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		routineRepo:  routineRepo,
		advisor:      advisor,
		newID:        newID,
	}
}

// EnsureSeeded seeds the starter catalog and routines for a brand-new user.
// Seeding happens only when both the catalog AND the routine list are empty,
// so a user who deleted all routines does not get them re-seeded.
func (s *exerciseService) EnsureSeeded(ctx context.Context, userID string) ([]domain.Exercise, []domain.Routine, error) {
	exercises, err := s.exerciseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	routines, err := s.routineRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if len(exercises) > 0 || len(routines) > 0 {
		return exercises, routines, nil
	}

	seedExercises, seedRoutines := buildSeedData(userID, s.newID)
	if err := s.exerciseRepo.InsertMany(ctx, seedExercises); err != nil {
		return nil, nil, err
	}
	if err := s.routineRepo.UpsertMany(ctx, seedRoutines); err != nil {
		return nil, nil, err
	}

	return seedExercises, seedRoutines, nil
}

// GetExercises retrieves the user's full catalog.
func (s *exerciseService) GetExercises(ctx context.Context, userID string) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetByUser(ctx, userID)
}

// CreateFromText classifies free text into an exercise and dedups it against
// the catalog by case-insensitive name.
func (s *exerciseService) CreateFromText(ctx context.Context, userID, freeText string) (*domain.Exercise, error) {
	if freeText == "" {
		return nil, ErrValidationFailed
	}

	classification := s.advisor.ClassifyExercise(ctx, freeText)
	return ensureExercise(ctx, s.exerciseRepo, userID, classification, s.newID)
}

// GetAlternatives asks the advisor for replacements for an unavailable exercise.
func (s *exerciseService) GetAlternatives(ctx context.Context, userID, exerciseID string) ([]advisory.Alternative, error) {
	ex, err := s.ownedExercise(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	return s.advisor.SuggestAlternatives(ctx, ex.Name, ex.MuscleGroup), nil
}

// GetFormTips asks the advisor for form tips for an exercise.
func (s *exerciseService) GetFormTips(ctx context.Context, userID, exerciseID string) ([]string, error) {
	ex, err := s.ownedExercise(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	return s.advisor.GetFormTips(ctx, ex.Name), nil
}

func (s *exerciseService) ownedExercise(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error) {
	ex, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if ex.UserID != userID {
		return nil, ErrExerciseNotFound
	}
	return ex, nil
}

// ensureExercise resolves a classification to a catalog exercise, creating it
// with the suggested starting weight when the name is new. Shared by the
// catalog create path and the mid-session add/swap paths.
func ensureExercise(
	ctx context.Context,
	exerciseRepo repository.ExerciseRepository,
	userID string,
	classification advisory.Classification,
	newID func() string,
) (*domain.Exercise, error) {
	exercises, err := exerciseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing := domain.FindExerciseByName(exercises, classification.Name); existing != nil {
		return existing, nil
	}

	ex := &domain.Exercise{
		ID:              newID(),
		UserID:          userID,
		Name:            classification.Name,
		MuscleGroup:     classification.MuscleGroup,
		ReferenceWeight: classification.SuggestedWeight,
	}
	if err := exerciseRepo.Upsert(ctx, ex); err != nil {
		return nil, err
	}
	return ex, nil
}
