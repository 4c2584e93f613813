package service

import (
	"context"
	"fmt"

	"purelift/server/internal/advisory"
	"purelift/server/internal/domain"
	"purelift/server/internal/progression"
	"purelift/server/internal/repository"
)

// In-memory repository fakes for service tests. They implement the repository
// interfaces over plain slices and can be primed with failures.

type fakeExerciseRepo struct {
	exercises []domain.Exercise
	upsertErr error
	insertErr error
}

func (r *fakeExerciseRepo) GetByUser(_ context.Context, userID string) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, ex := range r.exercises {
		if ex.UserID == userID {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			ex := r.exercises[i]
			return &ex, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) Upsert(_ context.Context, exercise *domain.Exercise) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	for i := range r.exercises {
		if r.exercises[i].ID == exercise.ID {
			r.exercises[i] = *exercise
			return nil
		}
	}
	r.exercises = append(r.exercises, *exercise)
	return nil
}

func (r *fakeExerciseRepo) InsertMany(_ context.Context, exercises []domain.Exercise) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.exercises = append(r.exercises, exercises...)
	return nil
}

type fakeSetLogRepo struct {
	sets      []domain.SetLog
	insertErr error
}

func (r *fakeSetLogRepo) GetByUser(_ context.Context, userID string) ([]domain.SetLog, error) {
	var out []domain.SetLog
	for _, s := range r.sets {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSetLogRepo) InsertMany(_ context.Context, sets []domain.SetLog) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.sets = append(r.sets, sets...)
	return nil
}

type fakeRoutineRepo struct {
	routines []domain.Routine
}

func (r *fakeRoutineRepo) GetByUser(_ context.Context, userID string) ([]domain.Routine, error) {
	var out []domain.Routine
	for _, rt := range r.routines {
		if rt.UserID == userID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRoutineRepo) GetByID(_ context.Context, id string, userID string) (*domain.Routine, error) {
	for i := range r.routines {
		if r.routines[i].ID == id && r.routines[i].UserID == userID {
			rt := r.routines[i]
			return &rt, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRoutineRepo) Upsert(_ context.Context, routine *domain.Routine) error {
	for i := range r.routines {
		if r.routines[i].ID == routine.ID {
			r.routines[i] = *routine
			return nil
		}
	}
	r.routines = append(r.routines, *routine)
	return nil
}

func (r *fakeRoutineRepo) UpsertMany(ctx context.Context, routines []domain.Routine) error {
	for i := range routines {
		if err := r.Upsert(ctx, &routines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeRoutineRepo) Delete(_ context.Context, id string, userID string) error {
	for i := range r.routines {
		if r.routines[i].ID == id && r.routines[i].UserID == userID {
			r.routines = append(r.routines[:i], r.routines[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSettingsRepo struct {
	settings map[string]domain.UserSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context, userID string) (*domain.UserSettings, error) {
	if r.settings == nil {
		return nil, repository.ErrNotFound
	}
	s, ok := r.settings[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.UserSettings) error {
	if r.settings == nil {
		r.settings = make(map[string]domain.UserSettings)
	}
	r.settings[settings.UserID] = *settings
	return nil
}

// stubAdvisor returns canned advisory answers and records classify calls.
type stubAdvisor struct {
	classification advisory.Classification
	routine        advisory.RoutineSuggestion
	classified     []string
}

func (a *stubAdvisor) ClassifyExercise(_ context.Context, freeText string) advisory.Classification {
	a.classified = append(a.classified, freeText)
	if a.classification.Name == "" {
		return advisory.Classification{Name: freeText, MuscleGroup: domain.MuscleGroupChest, SuggestedWeight: 20}
	}
	return a.classification
}

func (a *stubAdvisor) SuggestAlternatives(_ context.Context, _ string, _ domain.MuscleGroup) []advisory.Alternative {
	return []advisory.Alternative{{Name: "Dips", Reason: "same movement pattern"}}
}

func (a *stubAdvisor) GetFormTips(_ context.Context, _ string) []string {
	return []string{"Brace your core."}
}

func (a *stubAdvisor) GenerateRoutine(_ context.Context, _ string) advisory.RoutineSuggestion {
	return a.routine
}

func (a *stubAdvisor) GetCoachInsight(_ context.Context, _ []progression.WeeklyVolume) string {
	return "Solid week so far."
}

func testIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
