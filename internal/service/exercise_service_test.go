package service

import (
	"context"
	"testing"

	"purelift/server/internal/advisory"
	"purelift/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExerciseFixture() (ExerciseService, *fakeExerciseRepo, *fakeRoutineRepo, *stubAdvisor) {
	exerciseRepo := &fakeExerciseRepo{}
	routineRepo := &fakeRoutineRepo{}
	advisor := &stubAdvisor{}
	svc := NewExerciseService(exerciseRepo, routineRepo, advisor, testIDs("ex"))
	return svc, exerciseRepo, routineRepo, advisor
}

func TestEnsureSeeded_PopulatesEmptyAccount(t *testing.T) {
	svc, exerciseRepo, routineRepo, _ := newExerciseFixture()
	ctx := context.Background()

	exercises, routines, err := svc.EnsureSeeded(ctx, testUser)
	require.NoError(t, err)

	assert.NotEmpty(t, exercises)
	assert.Len(t, routines, 3, "push, pull, legs")
	for _, ex := range exercises {
		assert.Equal(t, testUser, ex.UserID)
	}

	// Every routine references only seeded exercise ids.
	ids := make(map[string]bool)
	for _, ex := range exercises {
		ids[ex.ID] = true
	}
	for _, rt := range routines {
		for _, id := range rt.ExerciseIDs {
			assert.True(t, ids[id], "routine %s references unknown exercise %s", rt.Name, id)
		}
	}

	stored, _ := exerciseRepo.GetByUser(ctx, testUser)
	assert.Len(t, stored, len(exercises))
	storedRoutines, _ := routineRepo.GetByUser(ctx, testUser)
	assert.Len(t, storedRoutines, 3)
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	svc, exerciseRepo, _, _ := newExerciseFixture()
	ctx := context.Background()

	first, _, err := svc.EnsureSeeded(ctx, testUser)
	require.NoError(t, err)

	second, _, err := svc.EnsureSeeded(ctx, testUser)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	stored, _ := exerciseRepo.GetByUser(ctx, testUser)
	assert.Len(t, stored, len(first), "no duplicates on repeated calls")
}

func TestEnsureSeeded_SkipsWhenAnyDataExists(t *testing.T) {
	svc, _, routineRepo, _ := newExerciseFixture()
	ctx := context.Background()

	// A user with routines but no exercises must not be re-seeded.
	routineRepo.routines = []domain.Routine{{ID: "r1", UserID: testUser, Name: "Mine"}}

	exercises, routines, err := svc.EnsureSeeded(ctx, testUser)
	require.NoError(t, err)

	assert.Empty(t, exercises)
	require.Len(t, routines, 1)
	assert.Equal(t, "Mine", routines[0].Name)
}

func TestCreateFromText_ReusesExistingByName(t *testing.T) {
	svc, exerciseRepo, _, advisor := newExerciseFixture()
	ctx := context.Background()

	exerciseRepo.exercises = []domain.Exercise{
		{ID: "bench", UserID: testUser, Name: "Bench Press", MuscleGroup: domain.MuscleGroupChest, ReferenceWeight: 60},
	}
	advisor.classification = advisory.Classification{
		Name: "bench press", MuscleGroup: domain.MuscleGroupChest, SuggestedWeight: 40,
	}

	ex, err := svc.CreateFromText(ctx, testUser, "bench")
	require.NoError(t, err)

	assert.Equal(t, "bench", ex.ID, "case-insensitive name match reuses the catalog entry")
	assert.Equal(t, 60.0, ex.ReferenceWeight, "existing reference weight is untouched")

	stored, _ := exerciseRepo.GetByUser(ctx, testUser)
	assert.Len(t, stored, 1)
}

func TestCreateFromText_CreatesNewFromClassification(t *testing.T) {
	svc, exerciseRepo, _, advisor := newExerciseFixture()
	ctx := context.Background()

	advisor.classification = advisory.Classification{
		Name: "Romanian Deadlift", MuscleGroup: domain.MuscleGroupLegs, SuggestedWeight: 60,
	}

	ex, err := svc.CreateFromText(ctx, testUser, "rdl")
	require.NoError(t, err)

	assert.Equal(t, "Romanian Deadlift", ex.Name)
	assert.Equal(t, domain.MuscleGroupLegs, ex.MuscleGroup)
	assert.Equal(t, 60.0, ex.ReferenceWeight)

	stored, _ := exerciseRepo.GetByUser(ctx, testUser)
	assert.Len(t, stored, 1)
}

func TestCreateFromText_EmptyTextRejected(t *testing.T) {
	svc, _, _, _ := newExerciseFixture()

	_, err := svc.CreateFromText(context.Background(), testUser, "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestGetAlternativesAndTips_OwnershipEnforced(t *testing.T) {
	svc, exerciseRepo, _, _ := newExerciseFixture()
	ctx := context.Background()

	exerciseRepo.exercises = []domain.Exercise{
		{ID: "bench", UserID: "someone-else", Name: "Bench Press"},
	}

	_, err := svc.GetAlternatives(ctx, testUser, "bench")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = svc.GetFormTips(ctx, testUser, "bench")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = svc.GetAlternatives(ctx, testUser, "ghost")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
