package advisory

import (
	"context"

	"purelift/server/internal/domain"
	"purelift/server/internal/progression"
)

// Classification is the validated result of classifying a free-text exercise
// name: the corrected formal name, the target muscle group, and a suggested
// starting weight in kg.
type Classification struct {
	Name            string             `json:"name"`
	MuscleGroup     domain.MuscleGroup `json:"muscleGroup"`
	SuggestedWeight float64            `json:"suggestedWeight"`
}

// Alternative is one suggested replacement for an unavailable exercise.
type Alternative struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ExerciseSuggestion is one exercise inside a generated routine.
type ExerciseSuggestion struct {
	Name            string             `json:"name"`
	MuscleGroup     domain.MuscleGroup `json:"muscleGroup"`
	SuggestedWeight float64            `json:"suggestedWeight"`
	TargetSets      int                `json:"targetSets"`
	TargetReps      int                `json:"targetReps"`
}

// RoutineSuggestion is a whole synthesized routine.
type RoutineSuggestion struct {
	RoutineName string               `json:"routineName"`
	Exercises   []ExerciseSuggestion `json:"exercises"`
}

// Gateway is the advisory boundary: opaque generative-model calls whose
// outputs arrive already validated and coerced into fixed shapes.
//
// Every method is best-effort and never returns an error. A failed or
// malformed upstream call degrades to a static default so that an advisory
// outage can never block session progress.
type Gateway interface {
	ClassifyExercise(ctx context.Context, freeText string) Classification
	SuggestAlternatives(ctx context.Context, exerciseName string, muscleGroup domain.MuscleGroup) []Alternative
	GetFormTips(ctx context.Context, exerciseName string) []string
	GenerateRoutine(ctx context.Context, prompt string) RoutineSuggestion
	GetCoachInsight(ctx context.Context, volumes []progression.WeeklyVolume) string
}
