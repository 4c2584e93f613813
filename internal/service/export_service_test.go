package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"purelift/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotStorage struct {
	keys   []string
	bodies map[string][]byte
}

func (s *fakeSnapshotStorage) PutSnapshot(_ context.Context, objectKey string, _ string, body []byte) error {
	if s.bodies == nil {
		s.bodies = make(map[string][]byte)
	}
	s.keys = append(s.keys, objectKey)
	s.bodies[objectKey] = body
	return nil
}

func (s *fakeSnapshotStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://example.com/" + objectKey, nil
}

func TestExportUserData(t *testing.T) {
	exerciseRepo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{ID: "bench", UserID: testUser, Name: "Bench Press", MuscleGroup: domain.MuscleGroupChest, ReferenceWeight: 60},
	}}
	setRepo := &fakeSetLogRepo{sets: []domain.SetLog{
		{ID: "s1", UserID: testUser, ExerciseID: "bench", Date: fixedNow(), Weight: 60, Reps: 10, Completed: true},
	}}
	routineRepo := &fakeRoutineRepo{routines: []domain.Routine{
		{ID: "r1", UserID: testUser, Name: "Push", ExerciseIDs: []string{"bench"}},
	}}
	storageFake := &fakeSnapshotStorage{}

	svc := NewExportService(exerciseRepo, setRepo, routineRepo, &fakeSettingsRepo{}, storageFake, fixedNow)

	result, err := svc.ExportUserData(context.Background(), testUser)
	require.NoError(t, err)

	require.Len(t, storageFake.keys, 1)
	assert.Contains(t, result.ObjectKey, "exports/"+testUser+"/")
	assert.Equal(t, "https://example.com/"+result.ObjectKey, result.DownloadURL)

	var snapshot ExportSnapshot
	require.NoError(t, json.Unmarshal(storageFake.bodies[result.ObjectKey], &snapshot))
	assert.Len(t, snapshot.Exercises, 1)
	assert.Len(t, snapshot.SetLogs, 1)
	assert.Len(t, snapshot.Routines, 1)
	assert.Nil(t, snapshot.Settings, "unsaved settings stay out of the snapshot")
}
