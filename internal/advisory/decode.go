package advisory

import (
	"encoding/json"
	"strings"

	"purelift/server/internal/domain"
)

// Validating decoders for the model's JSON payloads. The upstream shapes are
// duck-typed and occasionally wrong, so every field is checked here and
// replaced with a default when missing or invalid. The rest of the system
// only ever sees the fixed, validated shapes.

func decodeClassification(raw []byte, freeText string) (Classification, bool) {
	var payload struct {
		Name            string  `json:"name"`
		MuscleGroup     string  `json:"muscleGroup"`
		SuggestedWeight float64 `json:"suggestedWeight"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Classification{}, false
	}

	c := Classification{
		Name:            strings.TrimSpace(payload.Name),
		SuggestedWeight: payload.SuggestedWeight,
	}
	if c.Name == "" {
		c.Name = freeText
	}
	mg, ok := domain.ParseMuscleGroup(payload.MuscleGroup)
	if !ok {
		mg = fallbackMuscleGroup
	}
	c.MuscleGroup = mg
	if c.SuggestedWeight < 0 {
		c.SuggestedWeight = 0
	} else if c.SuggestedWeight == 0 {
		c.SuggestedWeight = fallbackSuggestedWeight
	}
	return c, true
}

func decodeAlternatives(raw []byte) ([]Alternative, bool) {
	var payload []struct {
		Name   string `json:"name"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}

	alts := make([]Alternative, 0, len(payload))
	for _, p := range payload {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		alts = append(alts, Alternative{Name: name, Reason: strings.TrimSpace(p.Reason)})
	}
	return alts, true
}

func decodeFormTips(raw []byte) ([]string, bool) {
	var payload []string
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}

	tips := make([]string, 0, len(payload))
	for _, t := range payload {
		if t = strings.TrimSpace(t); t != "" {
			tips = append(tips, t)
		}
	}
	if len(tips) == 0 {
		return nil, false
	}
	return tips, true
}

func decodeRoutineSuggestion(raw []byte, prompt string) (RoutineSuggestion, bool) {
	var payload struct {
		RoutineName string `json:"routineName"`
		Exercises   []struct {
			Name            string  `json:"name"`
			MuscleGroup     string  `json:"muscleGroup"`
			SuggestedWeight float64 `json:"suggestedWeight"`
			TargetSets      int     `json:"targetSets"`
			TargetReps      int     `json:"targetReps"`
		} `json:"exercises"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return RoutineSuggestion{}, false
	}
	if len(payload.Exercises) == 0 {
		return RoutineSuggestion{}, false
	}

	suggestion := RoutineSuggestion{RoutineName: strings.TrimSpace(payload.RoutineName)}
	if suggestion.RoutineName == "" {
		suggestion.RoutineName = strings.TrimSpace(prompt)
	}

	defaultTarget := domain.DefaultSetTarget()
	for _, e := range payload.Exercises {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		mg, ok := domain.ParseMuscleGroup(e.MuscleGroup)
		if !ok {
			mg = fallbackMuscleGroup
		}
		weight := e.SuggestedWeight
		if weight <= 0 {
			weight = fallbackSuggestedWeight
		}
		sets, reps := e.TargetSets, e.TargetReps
		if sets <= 0 {
			sets = defaultTarget.Sets
		}
		if reps <= 0 {
			reps = defaultTarget.Reps
		}
		suggestion.Exercises = append(suggestion.Exercises, ExerciseSuggestion{
			Name:            name,
			MuscleGroup:     mg,
			SuggestedWeight: weight,
			TargetSets:      sets,
			TargetReps:      reps,
		})
	}
	if len(suggestion.Exercises) == 0 {
		return RoutineSuggestion{}, false
	}
	return suggestion, true
}
