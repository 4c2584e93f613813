package progression

import (
	"time"

	"purelift/server/internal/domain"
)

// BuildSession expands a routine into the ordered list of planned sets for a
// live session. Exercises missing from the catalog are skipped silently: a
// routine referencing a vanished exercise is a tolerated inconsistency, not
// an error. Output order mirrors the routine's exercise order, with each
// exercise's sets emitted set #1 first; the workout view assigns set-number
// badges from this order, so it must stay stable.
func BuildSession(
	routine domain.Routine,
	exercises []domain.Exercise,
	now time.Time,
	newID func() string,
) []domain.SetLog {
	var sets []domain.SetLog
	for _, exerciseID := range routine.ExerciseIDs {
		ex := domain.FindExerciseByID(exercises, exerciseID)
		if ex == nil {
			continue
		}
		target := routine.TargetFor(exerciseID)
		for i := 0; i < target.Sets; i++ {
			sets = append(sets, domain.SetLog{
				ID:         newID(),
				UserID:     ex.UserID,
				ExerciseID: exerciseID,
				Date:       now,
				Weight:     ex.ReferenceWeight,
				Reps:       target.Reps,
				TargetReps: target.Reps,
				Completed:  false,
			})
		}
	}
	return sets
}

// AdHocSets creates the planned sets for an exercise added mid-session.
// The ad-hoc path deliberately ignores routine targets and always produces
// the default set count at the default rep target.
func AdHocSets(ex domain.Exercise, now time.Time, newID func() string) []domain.SetLog {
	target := domain.DefaultSetTarget()
	sets := make([]domain.SetLog, 0, target.Sets)
	for i := 0; i < target.Sets; i++ {
		sets = append(sets, domain.SetLog{
			ID:         newID(),
			UserID:     ex.UserID,
			ExerciseID: ex.ID,
			Date:       now,
			Weight:     ex.ReferenceWeight,
			Reps:       target.Reps,
			TargetReps: target.Reps,
			Completed:  false,
		})
	}
	return sets
}
