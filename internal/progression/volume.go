package progression

import (
	"time"

	"purelift/server/internal/domain"
)

// WeeklyVolume is one muscle group's completed-set count for the current
// training week, against the user's weekly goal.
type WeeklyVolume struct {
	MuscleGroup domain.MuscleGroup `json:"muscleGroup"`
	Count       int                `json:"count"`
	Goal        int                `json:"goal"`
}

// WeekStart returns the most recent Monday at 00:00:00 in now's location.
// Sunday is treated as the LAST day of the week, not the first: on a Sunday
// the window start is six days back, otherwise weekday-1 days back.
func WeekStart(now time.Time) time.Time {
	daysBack := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		daysBack = 6
	}
	start := now.AddDate(0, 0, -daysBack)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
}

// ComputeWeeklyVolume reduces the full set history to per-muscle-group counts
// for the current week. Only completed sets dated at or after the week start
// are counted. The result always contains one entry per muscle group in
// enumeration order, count zero included. Pure function: no mutation, and the
// order of allSets does not affect the output.
func ComputeWeeklyVolume(
	allSets []domain.SetLog,
	exercises []domain.Exercise,
	goals map[domain.MuscleGroup]int,
	now time.Time,
) []WeeklyVolume {
	windowStart := WeekStart(now)

	counts := make(map[domain.MuscleGroup]int, len(domain.AllMuscleGroups()))
	for _, s := range allSets {
		if !s.Completed || s.Date.Before(windowStart) {
			continue
		}
		ex := domain.FindExerciseByID(exercises, s.ExerciseID)
		if ex == nil {
			continue
		}
		counts[ex.MuscleGroup]++
	}

	volumes := make([]WeeklyVolume, 0, len(domain.AllMuscleGroups()))
	for _, mg := range domain.AllMuscleGroups() {
		goal, ok := goals[mg]
		if !ok || goal <= 0 {
			goal = domain.DefaultWeeklyVolumeGoal
		}
		volumes = append(volumes, WeeklyVolume{
			MuscleGroup: mg,
			Count:       counts[mg],
			Goal:        goal,
		})
	}
	return volumes
}
