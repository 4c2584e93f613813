package progression

import "purelift/server/internal/domain"

// SetField selects which numeric field of a planned set an edit targets.
type SetField string

const (
	FieldWeight SetField = "weight"
	FieldReps   SetField = "reps"
)

// Session is the ephemeral in-memory state of one live logging session.
// It is never persisted as an entity: finishing a session persists only its
// completed sets, abandoning it discards everything.
type Session struct {
	Sets []domain.SetLog
}

// UpdateSet replaces weight or reps on the matching planned set. Any numeric
// value is accepted, zero and negatives included; input sanitation is the
// presentation layer's problem. Returns false if no set matches.
func (s *Session) UpdateSet(setID string, field SetField, value float64) bool {
	for i := range s.Sets {
		if s.Sets[i].ID != setID {
			continue
		}
		switch field {
		case FieldWeight:
			s.Sets[i].Weight = value
		case FieldReps:
			s.Sets[i].Reps = int(value)
		default:
			return false
		}
		return true
	}
	return false
}

// ToggleSet flips the completion flag on the matching set. completedNow is
// true only on the false->true transition, which is the signal the caller
// uses to start the rest timer.
func (s *Session) ToggleSet(setID string) (completedNow bool, found bool) {
	for i := range s.Sets {
		if s.Sets[i].ID != setID {
			continue
		}
		s.Sets[i].Completed = !s.Sets[i].Completed
		return s.Sets[i].Completed, true
	}
	return false, false
}

// SwapExercise redirects every set of oldExerciseID to newExerciseID at the
// replacement's reference weight. Reps, target reps, completion state and set
// order are all preserved, so sets already done before the swap keep their
// credit. Returns the number of sets rewritten.
func (s *Session) SwapExercise(oldExerciseID, newExerciseID string, newWeight float64) int {
	swapped := 0
	for i := range s.Sets {
		if s.Sets[i].ExerciseID != oldExerciseID {
			continue
		}
		s.Sets[i].ExerciseID = newExerciseID
		s.Sets[i].Weight = newWeight
		swapped++
	}
	return swapped
}

// Append adds planned sets to the end of the session (ad-hoc additions).
func (s *Session) Append(sets ...domain.SetLog) {
	s.Sets = append(s.Sets, sets...)
}

// ExerciseOrder returns the distinct exercise ids of the session in the order
// they first appear, which is the display grouping order.
func (s *Session) ExerciseOrder() []string {
	seen := make(map[string]bool, len(s.Sets))
	var order []string
	for _, set := range s.Sets {
		if !seen[set.ExerciseID] {
			seen[set.ExerciseID] = true
			order = append(order, set.ExerciseID)
		}
	}
	return order
}
