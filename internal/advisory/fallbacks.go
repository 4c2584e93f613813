package advisory

import "purelift/server/internal/domain"

// Static defaults used whenever the upstream model is unreachable or returns
// something unusable. Deliberately bland: they must be safe to show for any
// exercise.

const fallbackInsight = "Focus on progressive overload and hitting your weekly volume goals."

const (
	fallbackSuggestedWeight = 20
	fallbackMuscleGroup     = domain.MuscleGroupChest
)

func fallbackClassification(freeText string) Classification {
	return Classification{
		Name:            freeText,
		MuscleGroup:     fallbackMuscleGroup,
		SuggestedWeight: fallbackSuggestedWeight,
	}
}

func fallbackFormTips() []string {
	return []string{
		"Control the weight through the full range of motion.",
		"Brace your core and keep a neutral spine.",
		"Leave one or two reps in reserve on every working set.",
	}
}

func fallbackRoutine() RoutineSuggestion {
	return RoutineSuggestion{
		RoutineName: "Full Body Essentials",
		Exercises: []ExerciseSuggestion{
			{Name: "Squat", MuscleGroup: domain.MuscleGroupLegs, SuggestedWeight: 60, TargetSets: 3, TargetReps: 10},
			{Name: "Bench Press", MuscleGroup: domain.MuscleGroupChest, SuggestedWeight: 40, TargetSets: 3, TargetReps: 10},
			{Name: "Deadlift", MuscleGroup: domain.MuscleGroupBack, SuggestedWeight: 80, TargetSets: 3, TargetReps: 10},
			{Name: "Overhead Press", MuscleGroup: domain.MuscleGroupShoulders, SuggestedWeight: 25, TargetSets: 3, TargetReps: 10},
		},
	}
}
