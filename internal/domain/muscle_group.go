package domain

import "strings"

// MuscleGroup is the fixed classification target for exercises.
// It is a closed set: volume aggregation and AI classification both key on it.
type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "Chest"
	MuscleGroupBack      MuscleGroup = "Back"
	MuscleGroupLegs      MuscleGroup = "Legs"
	MuscleGroupShoulders MuscleGroup = "Shoulders"
	MuscleGroupArms      MuscleGroup = "Arms"
	MuscleGroupCore      MuscleGroup = "Core"
)

// AllMuscleGroups returns the enumeration in display order. Volume reports
// must contain one entry per member, so the order here is the report order.
func AllMuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		MuscleGroupChest,
		MuscleGroupBack,
		MuscleGroupLegs,
		MuscleGroupShoulders,
		MuscleGroupArms,
		MuscleGroupCore,
	}
}

// ParseMuscleGroup matches a free-form string (e.g. from the AI classifier)
// against the enumeration, case-insensitively.
func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	for _, mg := range AllMuscleGroups() {
		if strings.EqualFold(s, string(mg)) {
			return mg, true
		}
	}
	return "", false
}
