package advisory

import (
	"testing"

	"purelift/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClassification(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		freeText string
		wantOK   bool
		want     Classification
	}{
		{
			name:   "valid payload",
			raw:    `{"name":"Incline Dumbbell Press","muscleGroup":"Chest","suggestedWeight":22.5}`,
			wantOK: true,
			want:   Classification{Name: "Incline Dumbbell Press", MuscleGroup: domain.MuscleGroupChest, SuggestedWeight: 22.5},
		},
		{
			name:     "blank name falls back to the user's text",
			raw:      `{"name":"  ","muscleGroup":"Legs","suggestedWeight":40}`,
			freeText: "leg press thing",
			wantOK:   true,
			want:     Classification{Name: "leg press thing", MuscleGroup: domain.MuscleGroupLegs, SuggestedWeight: 40},
		},
		{
			name:   "unknown muscle group defaults",
			raw:    `{"name":"Bench","muscleGroup":"Pecs","suggestedWeight":60}`,
			wantOK: true,
			want:   Classification{Name: "Bench", MuscleGroup: fallbackMuscleGroup, SuggestedWeight: 60},
		},
		{
			name:   "zero weight gets the default",
			raw:    `{"name":"Bench","muscleGroup":"Chest","suggestedWeight":0}`,
			wantOK: true,
			want:   Classification{Name: "Bench", MuscleGroup: domain.MuscleGroupChest, SuggestedWeight: fallbackSuggestedWeight},
		},
		{
			name:   "negative weight clamps to zero",
			raw:    `{"name":"Plank","muscleGroup":"Core","suggestedWeight":-5}`,
			wantOK: true,
			want:   Classification{Name: "Plank", MuscleGroup: domain.MuscleGroupCore, SuggestedWeight: 0},
		},
		{
			name:   "malformed json fails",
			raw:    `not json`,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeClassification([]byte(tt.raw), tt.freeText)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeAlternatives(t *testing.T) {
	raw := `[{"name":"Dips","reason":"same pressing pattern"},{"name":" ","reason":"dropped"},{"name":"Push-ups"}]`

	alts, ok := decodeAlternatives([]byte(raw))

	require.True(t, ok)
	require.Len(t, alts, 2)
	assert.Equal(t, Alternative{Name: "Dips", Reason: "same pressing pattern"}, alts[0])
	assert.Equal(t, "Push-ups", alts[1].Name)
}

func TestDecodeFormTips(t *testing.T) {
	tips, ok := decodeFormTips([]byte(`["Keep your back flat"," ","Brace your core"]`))
	require.True(t, ok)
	assert.Equal(t, []string{"Keep your back flat", "Brace your core"}, tips)

	_, ok = decodeFormTips([]byte(`[]`))
	assert.False(t, ok, "an empty list is treated as a failed call")

	_, ok = decodeFormTips([]byte(`{"tips":[]}`))
	assert.False(t, ok)
}

func TestDecodeRoutineSuggestion(t *testing.T) {
	raw := `{
		"routineName": "Upper Body Blast",
		"exercises": [
			{"name":"Bench Press","muscleGroup":"Chest","suggestedWeight":60,"targetSets":4,"targetReps":8},
			{"name":"Mystery","muscleGroup":"???","suggestedWeight":0,"targetSets":0,"targetReps":0}
		]
	}`

	suggestion, ok := decodeRoutineSuggestion([]byte(raw), "upper body")

	require.True(t, ok)
	assert.Equal(t, "Upper Body Blast", suggestion.RoutineName)
	require.Len(t, suggestion.Exercises, 2)

	assert.Equal(t, ExerciseSuggestion{
		Name: "Bench Press", MuscleGroup: domain.MuscleGroupChest,
		SuggestedWeight: 60, TargetSets: 4, TargetReps: 8,
	}, suggestion.Exercises[0])

	// Everything invalid on the second entry is replaced with defaults.
	defaults := domain.DefaultSetTarget()
	assert.Equal(t, fallbackMuscleGroup, suggestion.Exercises[1].MuscleGroup)
	assert.Equal(t, float64(fallbackSuggestedWeight), suggestion.Exercises[1].SuggestedWeight)
	assert.Equal(t, defaults.Sets, suggestion.Exercises[1].TargetSets)
	assert.Equal(t, defaults.Reps, suggestion.Exercises[1].TargetReps)
}

func TestDecodeRoutineSuggestion_EmptyFails(t *testing.T) {
	_, ok := decodeRoutineSuggestion([]byte(`{"routineName":"X","exercises":[]}`), "prompt")
	assert.False(t, ok)

	_, ok = decodeRoutineSuggestion([]byte(`{"routineName":"X","exercises":[{"name":"  "}]}`), "prompt")
	assert.False(t, ok, "all entries invalid means the suggestion is unusable")
}

func TestDecodeRoutineSuggestion_NameFallsBackToPrompt(t *testing.T) {
	raw := `{"exercises":[{"name":"Squat","muscleGroup":"Legs","suggestedWeight":80}]}`

	suggestion, ok := decodeRoutineSuggestion([]byte(raw), "  leg day  ")

	require.True(t, ok)
	assert.Equal(t, "leg day", suggestion.RoutineName)
}
