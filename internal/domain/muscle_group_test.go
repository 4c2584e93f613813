package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMuscleGroup(t *testing.T) {
	mg, ok := ParseMuscleGroup("chest")
	assert.True(t, ok)
	assert.Equal(t, MuscleGroupChest, mg)

	mg, ok = ParseMuscleGroup("SHOULDERS")
	assert.True(t, ok)
	assert.Equal(t, MuscleGroupShoulders, mg)

	_, ok = ParseMuscleGroup("pecs")
	assert.False(t, ok)

	_, ok = ParseMuscleGroup("")
	assert.False(t, ok)
}

func TestFindExerciseByName(t *testing.T) {
	exercises := []Exercise{
		{ID: "a", Name: "Bench Press"},
		{ID: "b", Name: "Squat"},
	}

	assert.Equal(t, "a", FindExerciseByName(exercises, "bench press").ID)
	assert.Nil(t, FindExerciseByName(exercises, "Deadlift"))
}
