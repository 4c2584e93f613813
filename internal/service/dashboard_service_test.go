package service

import (
	"context"
	"testing"

	"purelift/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetWeeklyVolume(t *testing.T) {
	exerciseRepo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{ID: "bench", UserID: testUser, Name: "Bench Press", MuscleGroup: domain.MuscleGroupChest},
	}}
	setRepo := &fakeSetLogRepo{sets: []domain.SetLog{
		{ID: "s1", UserID: testUser, ExerciseID: "bench", Date: fixedNow(), Completed: true},
		{ID: "s2", UserID: testUser, ExerciseID: "bench", Date: fixedNow().AddDate(0, 0, -30), Completed: true},
	}}
	settingsRepo := &fakeSettingsRepo{settings: map[string]domain.UserSettings{
		testUser: {UserID: testUser, VolumeGoals: map[domain.MuscleGroup]int{domain.MuscleGroupChest: 12}},
	}}

	svc := NewDashboardService(exerciseRepo, setRepo, settingsRepo, &stubAdvisor{}, fixedNow)

	volume, err := svc.GetWeeklyVolume(context.Background(), testUser)
	require.NoError(t, err)

	require.Len(t, volume, len(domain.AllMuscleGroups()))
	assert.Equal(t, domain.MuscleGroupChest, volume[0].MuscleGroup)
	assert.Equal(t, 1, volume[0].Count, "only this week's set counts")
	assert.Equal(t, 12, volume[0].Goal)
}

func TestDashboardService_GetCoachInsight(t *testing.T) {
	svc := NewDashboardService(&fakeExerciseRepo{}, &fakeSetLogRepo{}, &fakeSettingsRepo{}, &stubAdvisor{}, fixedNow)

	insight, err := svc.GetCoachInsight(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, "Solid week so far.", insight)
}
