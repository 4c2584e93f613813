package service

import (
	"context"
	"time"

	"purelift/server/internal/advisory"
	"purelift/server/internal/domain"
	"purelift/server/internal/progression"
	"purelift/server/internal/repository"
)

// DashboardService aggregates the weekly training week into per-muscle-group
// volume and produces the coach insight shown on the dashboard.
type DashboardService interface {
	GetWeeklyVolume(ctx context.Context, userID string) ([]progression.WeeklyVolume, error)
	GetCoachInsight(ctx context.Context, userID string) (string, error)
}

// dashboardService implements the DashboardService interface.
type dashboardService struct {
	exerciseRepo repository.ExerciseRepository
	setRepo      repository.SetLogRepository
	settingsRepo repository.SettingsRepository
	advisor      advisory.Gateway
	now          func() time.Time
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(
	exerciseRepo repository.ExerciseRepository,
	setRepo repository.SetLogRepository,
	settingsRepo repository.SettingsRepository,
	advisor advisory.Gateway,
	now func() time.Time,
) DashboardService {
	return &dashboardService{
		exerciseRepo: exerciseRepo,
		setRepo:      setRepo,
		settingsRepo: settingsRepo,
		advisor:      advisor,
		now:          now,
	}
}

// GetWeeklyVolume counts completed sets per muscle group since the start of
// the current training week, alongside the user's volume goals.
func (s *dashboardService) GetWeeklyVolume(ctx context.Context, userID string) ([]progression.WeeklyVolume, error) {
	exercises, err := s.exerciseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sets, err := s.setRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals := s.volumeGoals(ctx, userID)
	return progression.ComputeWeeklyVolume(sets, exercises, goals, s.now()), nil
}

// GetCoachInsight returns a one-line observation about the current week's
// volume. The advisor never fails; at worst the line is a generic nudge.
func (s *dashboardService) GetCoachInsight(ctx context.Context, userID string) (string, error) {
	volume, err := s.GetWeeklyVolume(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.advisor.GetCoachInsight(ctx, volume), nil
}

// volumeGoals loads the user's configured goals; a missing settings document
// just means defaults apply downstream.
func (s *dashboardService) volumeGoals(ctx context.Context, userID string) map[domain.MuscleGroup]int {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil
	}
	return settings.VolumeGoals
}
