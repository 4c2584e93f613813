package service

import "purelift/server/internal/domain"

// Starter data inserted for brand-new users: a push/pull/legs split over a
// small catalog of canonical barbell, dumbbell and bodyweight movements.
// Bodyweight movements seed with reference weight 0.

type seedExercise struct {
	name            string
	muscleGroup     domain.MuscleGroup
	referenceWeight float64
}

var seedCatalog = []seedExercise{
	{"Bench Press", domain.MuscleGroupChest, 60},
	{"Incline Dumbbell Press", domain.MuscleGroupChest, 22.5},
	{"Dips", domain.MuscleGroupChest, 0},
	{"Overhead Press", domain.MuscleGroupShoulders, 40},
	{"Lateral Raises", domain.MuscleGroupShoulders, 8},
	{"Tricep Extensions", domain.MuscleGroupArms, 20},
	{"Deadlift", domain.MuscleGroupBack, 100},
	{"Pull-ups", domain.MuscleGroupBack, 0},
	{"Dumbbell Rows", domain.MuscleGroupBack, 24},
	{"Seated Cable Row", domain.MuscleGroupBack, 50},
	{"Bicep Curls", domain.MuscleGroupArms, 15},
	{"Hammer Curls", domain.MuscleGroupArms, 12},
	{"Squat", domain.MuscleGroupLegs, 80},
	{"Leg Press", domain.MuscleGroupLegs, 120},
	{"Romanian Deadlift", domain.MuscleGroupLegs, 60},
	{"Calf Raises", domain.MuscleGroupLegs, 40},
	{"Plank", domain.MuscleGroupCore, 0},
	{"Hanging Leg Raises", domain.MuscleGroupCore, 0},
}

// Exercise names per seeded routine, resolved to ids at seed time.
var seedRoutines = []struct {
	name          string
	exerciseNames []string
}{
	{
		name: "PPL - Push",
		exerciseNames: []string{
			"Bench Press", "Incline Dumbbell Press", "Dips",
			"Overhead Press", "Lateral Raises", "Tricep Extensions",
		},
	},
	{
		name: "PPL - Pull",
		exerciseNames: []string{
			"Deadlift", "Pull-ups", "Dumbbell Rows",
			"Seated Cable Row", "Bicep Curls", "Hammer Curls",
		},
	},
	{
		name: "PPL - Legs",
		exerciseNames: []string{
			"Squat", "Leg Press", "Romanian Deadlift",
			"Calf Raises", "Plank", "Hanging Leg Raises",
		},
	},
}

// buildSeedData materializes the starter catalog and routines for a user,
// with fresh ids from newID.
func buildSeedData(userID string, newID func() string) ([]domain.Exercise, []domain.Routine) {
	exercises := make([]domain.Exercise, 0, len(seedCatalog))
	idsByName := make(map[string]string, len(seedCatalog))
	for _, se := range seedCatalog {
		id := newID()
		idsByName[se.name] = id
		exercises = append(exercises, domain.Exercise{
			ID:              id,
			UserID:          userID,
			Name:            se.name,
			MuscleGroup:     se.muscleGroup,
			ReferenceWeight: se.referenceWeight,
		})
	}

	routines := make([]domain.Routine, 0, len(seedRoutines))
	for _, sr := range seedRoutines {
		ids := make([]string, 0, len(sr.exerciseNames))
		for _, name := range sr.exerciseNames {
			ids = append(ids, idsByName[name])
		}
		routines = append(routines, domain.Routine{
			ID:          newID(),
			UserID:      userID,
			Name:        sr.name,
			ExerciseIDs: ids,
		})
	}

	return exercises, routines
}
