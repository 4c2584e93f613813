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
	ErrRoutineNotFound = errors.New("routine not found")
)

// RoutineService manages training routines: CRUD, per-exercise targets, and
// whole-routine synthesis via the advisory gateway.
type RoutineService interface {
	GetRoutines(ctx context.Context, userID string) ([]domain.Routine, error)
	CreateRoutine(ctx context.Context, userID, name string) (*domain.Routine, error)
	DeleteRoutine(ctx context.Context, userID, routineID string) error

	// UpdateRoutine replaces the routine's name, exercise order and targets
	// wholesale. Target entries for exercises not in the routine are kept
	// as-is; they are harmless and ignored by the session builder.
	UpdateRoutine(ctx context.Context, userID string, routine domain.Routine) (*domain.Routine, error)

	// GenerateRoutine synthesizes a routine from a free-text prompt, creating
	// any exercises the user does not already have.
	GenerateRoutine(ctx context.Context, userID, prompt string) (*domain.Routine, error)
}

// routineService implements the RoutineService interface.
type routineService struct {
	routineRepo  repository.RoutineRepository
	exerciseRepo repository.ExerciseRepository
	advisor      advisory.Gateway
	newID        func() string
}

// NewRoutineService creates a new instance of routineService.
func NewRoutineService(
	routineRepo repository.RoutineRepository,
	exerciseRepo repository.ExerciseRepository,
	advisor advisory.Gateway,
	newID func() string,
) RoutineService {
	return &routineService{
		routineRepo:  routineRepo,
		exerciseRepo: exerciseRepo,
		advisor:      advisor,
		newID:        newID,
	}
}

// GetRoutines retrieves all routines for a user.
func (s *routineService) GetRoutines(ctx context.Context, userID string) ([]domain.Routine, error) {
	return s.routineRepo.GetByUser(ctx, userID)
}

// CreateRoutine creates a new, empty routine.
func (s *routineService) CreateRoutine(ctx context.Context, userID, name string) (*domain.Routine, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	routine := &domain.Routine{
		ID:          s.newID(),
		UserID:      userID,
		Name:        name,
		ExerciseIDs: []string{},
	}
	if err := s.routineRepo.Upsert(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// UpdateRoutine replaces an existing routine, ensuring ownership.
func (s *routineService) UpdateRoutine(ctx context.Context, userID string, routine domain.Routine) (*domain.Routine, error) {
	if routine.Name == "" {
		return nil, ErrValidationFailed
	}

	existing, err := s.routineRepo.GetByID(ctx, routine.ID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	existing.Name = routine.Name
	existing.ExerciseIDs = routine.ExerciseIDs
	existing.Targets = routine.Targets

	if err := s.routineRepo.Upsert(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteRoutine removes a routine, ensuring ownership.
func (s *routineService) DeleteRoutine(ctx context.Context, userID, routineID string) error {
	err := s.routineRepo.Delete(ctx, routineID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrRoutineNotFound
	}
	return err
}

// GenerateRoutine asks the advisor to synthesize a routine and materializes
// it against the user's catalog: suggested exercises are matched by name
// case-insensitively, new ones are created at the suggested starting weight.
func (s *routineService) GenerateRoutine(ctx context.Context, userID, prompt string) (*domain.Routine, error) {
	if prompt == "" {
		return nil, ErrValidationFailed
	}

	suggestion := s.advisor.GenerateRoutine(ctx, prompt)

	routine := &domain.Routine{
		ID:          s.newID(),
		UserID:      userID,
		Name:        suggestion.RoutineName,
		ExerciseIDs: make([]string, 0, len(suggestion.Exercises)),
		Targets:     make(map[string]domain.SetTarget, len(suggestion.Exercises)),
	}

	for _, es := range suggestion.Exercises {
		ex, err := ensureExercise(ctx, s.exerciseRepo, userID, advisory.Classification{
			Name:            es.Name,
			MuscleGroup:     es.MuscleGroup,
			SuggestedWeight: es.SuggestedWeight,
		}, s.newID)
		if err != nil {
			return nil, err
		}
		if routine.ContainsExercise(ex.ID) {
			continue
		}
		routine.ExerciseIDs = append(routine.ExerciseIDs, ex.ID)
		routine.Targets[ex.ID] = domain.SetTarget{Sets: es.TargetSets, Reps: es.TargetReps}
	}

	if err := s.routineRepo.Upsert(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}
