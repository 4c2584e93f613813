package service

import (
	"context"
	"errors"
	"time"

	"purelift/server/internal/domain"
	"purelift/server/internal/repository"
)

// SettingsService manages per-user preferences: weekly volume goals and the
// rest timer duration.
type SettingsService interface {
	// GetSettings returns the stored settings, or the defaults when the user
	// has never saved any.
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// UpdateSettings replaces the settings document wholesale. Zero or
	// negative values are normalized back to the defaults.
	UpdateSettings(ctx context.Context, userID string, settings domain.UserSettings) (*domain.UserSettings, error)
}

// settingsService implements the SettingsService interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

// NewSettingsService creates a new instance of settingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository, now func() time.Time) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, now: now}
}

// GetSettings retrieves the user's settings, falling back to defaults.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := domain.DefaultSettings(userID)
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings normalizes and persists the settings document.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, settings domain.UserSettings) (*domain.UserSettings, error) {
	settings.UserID = userID
	settings.UpdatedAt = s.now()

	if settings.DefaultRestTime <= 0 {
		settings.DefaultRestTime = domain.DefaultRestSeconds
	}
	if settings.VolumeGoals == nil {
		settings.VolumeGoals = make(map[domain.MuscleGroup]int)
	}
	for _, mg := range domain.AllMuscleGroups() {
		if goal, ok := settings.VolumeGoals[mg]; !ok || goal <= 0 {
			settings.VolumeGoals[mg] = domain.DefaultWeeklyVolumeGoal
		}
	}

	if err := s.settingsRepo.Upsert(ctx, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
