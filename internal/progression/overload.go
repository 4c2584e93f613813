package progression

import (
	"math"

	"purelift/server/internal/domain"
)

const (
	// overloadIncrement is added to the heaviest weight lifted when every
	// planned set was completed at or above its rep target.
	overloadIncrement = 2.5

	// deloadFactor shrinks the reference weight when an exercise was logged
	// but no set was completed.
	deloadFactor = 0.9
)

// SessionOutcome is the result of resolving a finished session: the exercises
// whose reference weight changed and the sets to append to history.
type SessionOutcome struct {
	ExerciseUpdates []domain.Exercise
	SetsToPersist   []domain.SetLog
}

// ResolveOverload applies the progressive-overload rules to a finished
// session. Per distinct exercise, processed independently:
//
//   - every planned set completed and each at or above target reps:
//     new weight = max completed weight + 2.5
//   - nothing completed: new weight = max(0, reference * 0.9)
//   - partial: reference weight unchanged (explicit no-op branch)
//
// New weights are rounded to one decimal and an update is emitted only when
// the rounded value differs from the current reference weight. SetsToPersist
// is the session filtered to completed sets; planned sets are discarded and
// never retried.
func ResolveOverload(sessionSets []domain.SetLog, exercises []domain.Exercise) SessionOutcome {
	var outcome SessionOutcome

	session := Session{Sets: sessionSets}
	for _, exerciseID := range session.ExerciseOrder() {
		ex := domain.FindExerciseByID(exercises, exerciseID)
		if ex == nil {
			continue
		}

		var exerciseSets, completedSets []domain.SetLog
		for _, s := range sessionSets {
			if s.ExerciseID != exerciseID {
				continue
			}
			exerciseSets = append(exerciseSets, s)
			if s.Completed {
				completedSets = append(completedSets, s)
			}
		}

		newWeight := ex.ReferenceWeight
		switch {
		case len(completedSets) == len(exerciseSets) && allSatisfyTarget(completedSets):
			newWeight = maxWeight(completedSets) + overloadIncrement
		case len(completedSets) == 0:
			newWeight = math.Max(0, ex.ReferenceWeight*deloadFactor)
		}

		newWeight = roundToOneDecimal(newWeight)
		if newWeight != ex.ReferenceWeight {
			updated := *ex
			updated.ReferenceWeight = newWeight
			outcome.ExerciseUpdates = append(outcome.ExerciseUpdates, updated)
		}
	}

	for _, s := range sessionSets {
		if s.Completed {
			outcome.SetsToPersist = append(outcome.SetsToPersist, s)
		}
	}
	return outcome
}

func allSatisfyTarget(sets []domain.SetLog) bool {
	for _, s := range sets {
		if !s.SatisfiesTarget() {
			return false
		}
	}
	return true
}

func maxWeight(sets []domain.SetLog) float64 {
	max := math.Inf(-1)
	for _, s := range sets {
		if s.Weight > max {
			max = s.Weight
		}
	}
	return max
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
