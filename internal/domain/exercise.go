package domain

import (
	"strings"
	"time"
)

// Exercise is a single entry in a user's exercise catalog.
// ReferenceWeight is the current working weight used to seed new session sets;
// it is the only mutable field and is updated exclusively by the overload
// resolver at the end of a session.
type Exercise struct {
	ID              string      `bson:"_id" json:"id"`
	UserID          string      `bson:"userId" json:"-"`
	Name            string      `bson:"name" json:"name"`
	MuscleGroup     MuscleGroup `bson:"muscleGroup" json:"muscleGroup"`
	ReferenceWeight float64     `bson:"referenceWeight" json:"referenceWeight"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// NameEquals reports whether name refers to this exercise.
// Exercise names are unique per user under case-insensitive comparison, so
// every lookup and dedup check goes through here.
func (e Exercise) NameEquals(name string) bool {
	return strings.EqualFold(e.Name, name)
}

// FindExerciseByName returns the exercise with the given name, matched
// case-insensitively, or nil if the catalog has no such exercise.
func FindExerciseByName(exercises []Exercise, name string) *Exercise {
	for i := range exercises {
		if exercises[i].NameEquals(name) {
			return &exercises[i]
		}
	}
	return nil
}

// FindExerciseByID returns the exercise with the given id, or nil.
func FindExerciseByID(exercises []Exercise, id string) *Exercise {
	for i := range exercises {
		if exercises[i].ID == id {
			return &exercises[i]
		}
	}
	return nil
}
