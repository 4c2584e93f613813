package domain

import "time"

// SetLog is one set of one exercise. While Completed is false it is a planned
// set that lives only in the in-memory session; once persisted it is always
// Completed and never mutated again. TargetReps is fixed at creation time.
type SetLog struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"userId" json:"-"`
	ExerciseID string    `bson:"exerciseId" json:"exerciseId"`
	Date       time.Time `bson:"date" json:"date"`
	Weight     float64   `bson:"weight" json:"weight"`
	Reps       int       `bson:"reps" json:"reps"`
	TargetReps int       `bson:"targetReps" json:"targetReps"`
	Completed  bool      `bson:"completed" json:"completed"`
}

// SatisfiesTarget reports whether the set hit or exceeded its rep target.
func (s SetLog) SatisfiesTarget() bool {
	return s.Reps >= s.TargetReps
}
