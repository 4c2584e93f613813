package domain

import "time"

const (
	// DefaultWeeklyVolumeGoal is the weekly set target applied to any muscle
	// group without a configured goal.
	DefaultWeeklyVolumeGoal = 15

	// DefaultRestSeconds is the rest timer duration until the user changes it.
	DefaultRestSeconds = 90
)

// UserSettings holds the per-user preferences. One document per user, created
// lazily with defaults the first time it is persisted and replaced wholesale
// on every settings change.
type UserSettings struct {
	UserID          string              `bson:"_id" json:"-"`
	VolumeGoals     map[MuscleGroup]int `bson:"volumeGoals" json:"volumeGoals"`
	DefaultRestTime int                 `bson:"defaultRestTime" json:"defaultRestTime"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings returns the settings applied before the user saves any.
func DefaultSettings(userID string) UserSettings {
	goals := make(map[MuscleGroup]int, len(AllMuscleGroups()))
	for _, mg := range AllMuscleGroups() {
		goals[mg] = DefaultWeeklyVolumeGoal
	}
	return UserSettings{
		UserID:          userID,
		VolumeGoals:     goals,
		DefaultRestTime: DefaultRestSeconds,
	}
}

// GoalFor returns the weekly set goal for a muscle group, defaulting when
// the group has no configured entry.
func (s UserSettings) GoalFor(mg MuscleGroup) int {
	if goal, ok := s.VolumeGoals[mg]; ok && goal > 0 {
		return goal
	}
	return DefaultWeeklyVolumeGoal
}
