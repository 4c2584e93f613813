package progression

import (
	"testing"
	"time"

	"purelift/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "wednesday goes back to monday",
			now:  time.Date(2025, 6, 4, 15, 30, 0, 0, loc), // Wed
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, loc),
		},
		{
			name: "monday is its own week start",
			now:  time.Date(2025, 6, 2, 9, 0, 0, 0, loc),
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday belongs to the week that began six days earlier",
			now:  time.Date(2025, 6, 8, 23, 59, 0, 0, loc),
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.now))
		})
	}
}

func TestComputeWeeklyVolume_AllGroupsAlwaysPresent(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	volumes := ComputeWeeklyVolume(nil, nil, nil, now)

	require.Len(t, volumes, len(domain.AllMuscleGroups()))
	for i, mg := range domain.AllMuscleGroups() {
		assert.Equal(t, mg, volumes[i].MuscleGroup)
		assert.Zero(t, volumes[i].Count)
		assert.Equal(t, domain.DefaultWeeklyVolumeGoal, volumes[i].Goal)
	}
}

func TestComputeWeeklyVolume_CountsOnlyCompletedSetsInWindow(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC) // Wed; week starts Mon Jun 2
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	exercises := []domain.Exercise{
		{ID: "bench", MuscleGroup: domain.MuscleGroupChest},
		{ID: "squat", MuscleGroup: domain.MuscleGroupLegs},
	}
	sets := []domain.SetLog{
		{ID: "s1", ExerciseID: "bench", Date: weekStart, Completed: true},                    // boundary is inclusive
		{ID: "s2", ExerciseID: "bench", Date: now, Completed: true},                          // in window
		{ID: "s3", ExerciseID: "bench", Date: now, Completed: false},                         // planned, ignored
		{ID: "s4", ExerciseID: "bench", Date: weekStart.Add(-time.Minute), Completed: true},  // last week
		{ID: "s5", ExerciseID: "squat", Date: now, Completed: true},
		{ID: "s6", ExerciseID: "ghost", Date: now, Completed: true}, // unknown exercise, ignored
	}

	volumes := ComputeWeeklyVolume(sets, exercises, nil, now)

	byGroup := make(map[domain.MuscleGroup]WeeklyVolume)
	for _, v := range volumes {
		byGroup[v.MuscleGroup] = v
	}
	assert.Equal(t, 2, byGroup[domain.MuscleGroupChest].Count)
	assert.Equal(t, 1, byGroup[domain.MuscleGroupLegs].Count)
	assert.Equal(t, 0, byGroup[domain.MuscleGroupBack].Count)
}

func TestComputeWeeklyVolume_GoalsApplied(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	goals := map[domain.MuscleGroup]int{
		domain.MuscleGroupChest: 20,
		domain.MuscleGroupCore:  0, // invalid, falls back to default
	}

	volumes := ComputeWeeklyVolume(nil, nil, goals, now)

	byGroup := make(map[domain.MuscleGroup]WeeklyVolume)
	for _, v := range volumes {
		byGroup[v.MuscleGroup] = v
	}
	assert.Equal(t, 20, byGroup[domain.MuscleGroupChest].Goal)
	assert.Equal(t, domain.DefaultWeeklyVolumeGoal, byGroup[domain.MuscleGroupCore].Goal)
	assert.Equal(t, domain.DefaultWeeklyVolumeGoal, byGroup[domain.MuscleGroupLegs].Goal)
}

func TestComputeWeeklyVolume_OrderIndependent(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	exercises := []domain.Exercise{
		{ID: "bench", MuscleGroup: domain.MuscleGroupChest},
		{ID: "row", MuscleGroup: domain.MuscleGroupBack},
	}
	sets := []domain.SetLog{
		{ID: "s1", ExerciseID: "bench", Date: now, Completed: true},
		{ID: "s2", ExerciseID: "row", Date: now, Completed: true},
		{ID: "s3", ExerciseID: "bench", Date: now, Completed: true},
	}
	reversed := []domain.SetLog{sets[2], sets[1], sets[0]}

	assert.Equal(t,
		ComputeWeeklyVolume(sets, exercises, nil, now),
		ComputeWeeklyVolume(reversed, exercises, nil, now),
	)
}
