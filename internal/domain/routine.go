package domain

import "time"

// SetTarget is the per-exercise set/rep configuration inside a routine.
type SetTarget struct {
	Sets int `bson:"sets" json:"sets"`
	Reps int `bson:"reps" json:"reps"`
}

// DefaultSetTarget is the single source of the implicit 3x10 target, shared
// by the routine-driven session builder and the ad-hoc add path.
func DefaultSetTarget() SetTarget {
	return SetTarget{Sets: 3, Reps: 10}
}

// Routine is an ordered training day. Targets may be sparse: an exercise id
// with no entry gets DefaultSetTarget, and a stale entry for an exercise no
// longer in ExerciseIDs is harmless and ignored.
type Routine struct {
	ID          string               `bson:"_id" json:"id"`
	UserID      string               `bson:"userId" json:"-"`
	Name        string               `bson:"name" json:"name"`
	ExerciseIDs []string             `bson:"exerciseIds" json:"exerciseIds"`
	Targets     map[string]SetTarget `bson:"targets,omitempty" json:"targets,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// TargetFor resolves the set/rep target for an exercise in this routine,
// falling back to the shared default when no entry exists.
func (r Routine) TargetFor(exerciseID string) SetTarget {
	if t, ok := r.Targets[exerciseID]; ok {
		return t
	}
	return DefaultSetTarget()
}

// ContainsExercise reports whether the routine includes the exercise.
func (r Routine) ContainsExercise(exerciseID string) bool {
	for _, id := range r.ExerciseIDs {
		if id == exerciseID {
			return true
		}
	}
	return false
}
