package service

import (
	"context"
	"testing"

	"purelift/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetReturnsDefaultsWhenUnsaved(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, fixedNow)

	settings, err := svc.GetSettings(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRestSeconds, settings.DefaultRestTime)
	for _, mg := range domain.AllMuscleGroups() {
		assert.Equal(t, domain.DefaultWeeklyVolumeGoal, settings.GoalFor(mg))
	}
}

func TestSettingsService_UpdateNormalizesAndPersists(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo, fixedNow)
	ctx := context.Background()

	updated, err := svc.UpdateSettings(ctx, testUser, domain.UserSettings{
		VolumeGoals: map[domain.MuscleGroup]int{
			domain.MuscleGroupChest: 20,
			domain.MuscleGroupCore:  -3, // invalid, normalized
		},
		DefaultRestTime: 0, // invalid, normalized
	})
	require.NoError(t, err)

	assert.Equal(t, 20, updated.GoalFor(domain.MuscleGroupChest))
	assert.Equal(t, domain.DefaultWeeklyVolumeGoal, updated.GoalFor(domain.MuscleGroupCore))
	assert.Equal(t, domain.DefaultWeeklyVolumeGoal, updated.GoalFor(domain.MuscleGroupLegs), "missing groups are filled in")
	assert.Equal(t, domain.DefaultRestSeconds, updated.DefaultRestTime)
	assert.Equal(t, fixedNow(), updated.UpdatedAt)

	stored, err := svc.GetSettings(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.GoalFor(domain.MuscleGroupChest))
}
