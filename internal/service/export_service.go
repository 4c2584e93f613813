package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"purelift/server/internal/domain"
	"purelift/server/internal/repository"
	"purelift/server/internal/storage"

	"github.com/sirupsen/logrus"
)

// ExportSnapshot is the serialized shape of a full user data export.
type ExportSnapshot struct {
	ExportedAt time.Time            `json:"exportedAt"`
	Exercises  []domain.Exercise    `json:"exercises"`
	SetLogs    []domain.SetLog      `json:"setLogs"`
	Routines   []domain.Routine     `json:"routines"`
	Settings   *domain.UserSettings `json:"settings,omitempty"`
}

// ExportResult carries the upload location and a time-limited download URL.
type ExportResult struct {
	ObjectKey   string    `json:"objectKey"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ExportService serializes a user's full training data to JSON and archives
// it in object storage, returning a presigned download link.
type ExportService interface {
	ExportUserData(ctx context.Context, userID string) (*ExportResult, error)
}

// exportService implements the ExportService interface.
type exportService struct {
	exerciseRepo repository.ExerciseRepository
	setRepo      repository.SetLogRepository
	routineRepo  repository.RoutineRepository
	settingsRepo repository.SettingsRepository
	snapshots    storage.SnapshotStorage
	now          func() time.Time
}

// NewExportService creates a new instance of exportService.
func NewExportService(
	exerciseRepo repository.ExerciseRepository,
	setRepo repository.SetLogRepository,
	routineRepo repository.RoutineRepository,
	settingsRepo repository.SettingsRepository,
	snapshots storage.SnapshotStorage,
	now func() time.Time,
) ExportService {
	return &exportService{
		exerciseRepo: exerciseRepo,
		setRepo:      setRepo,
		routineRepo:  routineRepo,
		settingsRepo: settingsRepo,
		snapshots:    snapshots,
		now:          now,
	}
}

// ExportUserData gathers the user's catalog, set history, routines and
// settings into a single JSON document and uploads it.
func (s *exportService) ExportUserData(ctx context.Context, userID string) (*ExportResult, error) {
	exercises, err := s.exerciseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sets, err := s.setRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	routines, err := s.routineRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := ExportSnapshot{
		ExportedAt: s.now(),
		Exercises:  exercises,
		SetLogs:    sets,
		Routines:   routines,
	}
	// Settings are optional in the snapshot; never saved means defaults.
	if settings, err := s.settingsRepo.Get(ctx, userID); err == nil {
		snapshot.Settings = settings
	}

	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}

	objectKey := fmt.Sprintf("exports/%s/%s.json", userID, snapshot.ExportedAt.UTC().Format("20060102T150405Z"))
	if err := s.snapshots.PutSnapshot(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}
	logrus.Infof("Archived data export for user %s at %s (%d bytes)", userID, objectKey, len(body))

	url, err := s.snapshots.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create download URL: %w", err)
	}

	return &ExportResult{
		ObjectKey:   objectKey,
		DownloadURL: url,
		ExpiresAt:   s.now().Add(storage.DefaultPresignedURLExpiry),
	}, nil
}
