package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"purelift/server/internal/advisory"
	"purelift/server/internal/domain"
	"purelift/server/internal/progression"
	"purelift/server/internal/repository"

	"github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrNoActiveSession = errors.New("no active session")
	ErrSetNotFound     = errors.New("set not found in active session")
	ErrPersistFailed   = errors.New("failed to persist completed sets")
)

// SessionExercise is one exercise group of the live session, in display order,
// with the best set of the user's previous session as context.
type SessionExercise struct {
	Exercise domain.Exercise  `json:"exercise"`
	Sets     []domain.SetLog  `json:"sets"`
	LastBest *LastSessionBest `json:"lastBest,omitempty"`
}

// LastSessionBest is the heaviest set of the most recent historical day an
// exercise was trained, shown as "last session: 62.5kg x 10".
type LastSessionBest struct {
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	Date   time.Time `json:"date"`
}

// SessionState is the full view of the live session.
type SessionState struct {
	Exercises []SessionExercise `json:"exercises"`
}

// ToggleResult reports a completion toggle. StartRest is true only on the
// planned->completed transition and carries the user's rest timer duration.
type ToggleResult struct {
	Set         domain.SetLog `json:"set"`
	StartRest   bool          `json:"startRest"`
	RestSeconds int           `json:"restSeconds"`
}

// FinishResult summarizes a resolved session.
type FinishResult struct {
	UpdatedExercises []domain.Exercise `json:"updatedExercises"`
	PersistedSets    int               `json:"persistedSets"`
	FailedUpdates    int               `json:"failedUpdates"`
}

// WorkoutService owns the live logging session: exactly one per user, held in
// memory only. Starting a new session replaces any existing one; abandoning
// discards it with no persistence; finishing resolves progressive overload
// and persists completed sets.
type WorkoutService interface {
	Start(ctx context.Context, userID, routineID string) (*SessionState, error)
	Current(ctx context.Context, userID string) (*SessionState, error)
	UpdateSet(ctx context.Context, userID, setID string, field progression.SetField, value float64) (*domain.SetLog, error)
	ToggleSet(ctx context.Context, userID, setID string) (*ToggleResult, error)
	AddExercise(ctx context.Context, userID, freeText string) (*SessionState, error)
	SwapExercise(ctx context.Context, userID, oldExerciseID, replacementText string) (*SessionState, error)
	Finish(ctx context.Context, userID string) (*FinishResult, error)
	Abandon(userID string)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	exerciseRepo repository.ExerciseRepository
	setRepo      repository.SetLogRepository
	routineRepo  repository.RoutineRepository
	settingsRepo repository.SettingsRepository
	advisor      advisory.Gateway

	mu       sync.Mutex
	sessions map[string]*progression.Session

	now   func() time.Time
	newID func() string
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	exerciseRepo repository.ExerciseRepository,
	setRepo repository.SetLogRepository,
	routineRepo repository.RoutineRepository,
	settingsRepo repository.SettingsRepository,
	advisor advisory.Gateway,
	now func() time.Time,
	newID func() string,
) WorkoutService {
	return &workoutService{
		exerciseRepo: exerciseRepo,
		setRepo:      setRepo,
		routineRepo:  routineRepo,
		settingsRepo: settingsRepo,
		advisor:      advisor,
		sessions:     make(map[string]*progression.Session),
		now:          now,
		newID:        newID,
	}
}

// Start builds a fresh session from a routine, replacing any session the user
// already had in memory.
func (s *workoutService) Start(ctx context.Context, userID, routineID string) (*SessionState, error) {
	routine, err := s.routineRepo.GetByID(ctx, routineID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	exercises, err := s.exerciseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sets := progression.BuildSession(*routine, exercises, s.now(), s.newID)
	session := &progression.Session{Sets: sets}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	return s.buildState(ctx, userID, session)
}

// Current returns the live session, or ErrNoActiveSession.
func (s *workoutService) Current(ctx context.Context, userID string) (*SessionState, error) {
	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	return s.buildState(ctx, userID, session)
}

// UpdateSet edits weight or reps on a planned set.
func (s *workoutService) UpdateSet(ctx context.Context, userID, setID string, field progression.SetField, value float64) (*domain.SetLog, error) {
	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !session.UpdateSet(setID, field, value) {
		return nil, ErrSetNotFound
	}
	for _, set := range session.Sets {
		if set.ID == setID {
			return &set, nil
		}
	}
	return nil, ErrSetNotFound
}

// ToggleSet flips completion on a set. The planned->completed transition
// carries the rest timer duration from the user's settings.
func (s *workoutService) ToggleSet(ctx context.Context, userID, setID string) (*ToggleResult, error) {
	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	completedNow, found := session.ToggleSet(setID)
	var toggled domain.SetLog
	if found {
		for _, set := range session.Sets {
			if set.ID == setID {
				toggled = set
				break
			}
		}
	}
	s.mu.Unlock()

	if !found {
		return nil, ErrSetNotFound
	}

	result := &ToggleResult{Set: toggled, StartRest: completedNow}
	if completedNow {
		result.RestSeconds = s.restSeconds(ctx, userID)
	}
	return result, nil
}

// AddExercise classifies free text and appends its ad-hoc sets (always the
// fixed default count, independent of any routine target) to the session.
func (s *workoutService) AddExercise(ctx context.Context, userID, freeText string) (*SessionState, error) {
	if freeText == "" {
		return nil, ErrValidationFailed
	}
	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	classification := s.advisor.ClassifyExercise(ctx, freeText)
	ex, err := ensureExercise(ctx, s.exerciseRepo, userID, classification, s.newID)
	if err != nil {
		return nil, err
	}

	sets := progression.AdHocSets(*ex, s.now(), s.newID)

	s.mu.Lock()
	session.Append(sets...)
	s.mu.Unlock()

	return s.buildState(ctx, userID, session)
}

// SwapExercise replaces an unavailable exercise mid-session. The replacement
// is classified from free text (an alternative's name, or anything typed),
// created if new, and every session set of the old exercise is redirected at
// the replacement's reference weight. Completed sets keep their credit.
func (s *workoutService) SwapExercise(ctx context.Context, userID, oldExerciseID, replacementText string) (*SessionState, error) {
	if replacementText == "" {
		return nil, ErrValidationFailed
	}
	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	classification := s.advisor.ClassifyExercise(ctx, replacementText)
	replacement, err := ensureExercise(ctx, s.exerciseRepo, userID, classification, s.newID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	session.SwapExercise(oldExerciseID, replacement.ID, replacement.ReferenceWeight)
	s.mu.Unlock()

	return s.buildState(ctx, userID, session)
}

// Finish resolves progressive overload for the session and persists the
// completed sets. Reference-weight updates are best effort per exercise: one
// failed upsert is logged and counted but stops neither the remaining updates
// nor the set persistence. Only when the set append succeeds is the session
// cleared; the caller then reloads authoritative state from storage.
func (s *workoutService) Finish(ctx context.Context, userID string) (*FinishResult, error) {
	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	sessionSets := make([]domain.SetLog, len(session.Sets))
	copy(sessionSets, session.Sets)
	s.mu.Unlock()

	outcome := progression.ResolveOverload(sessionSets, exercises)

	result := &FinishResult{}
	for i := range outcome.ExerciseUpdates {
		ex := outcome.ExerciseUpdates[i]
		if err := s.exerciseRepo.Upsert(ctx, &ex); err != nil {
			logrus.Errorf("finish session: reference weight update failed for exercise %s: %v", ex.ID, err)
			result.FailedUpdates++
			continue
		}
		result.UpdatedExercises = append(result.UpdatedExercises, ex)
	}

	if err := s.setRepo.InsertMany(ctx, outcome.SetsToPersist); err != nil {
		// Keep the session so the user can retry finishing.
		logrus.Errorf("finish session: persisting %d sets failed for user %s: %v", len(outcome.SetsToPersist), userID, err)
		return nil, ErrPersistFailed
	}
	result.PersistedSets = len(outcome.SetsToPersist)

	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()

	return result, nil
}

// Abandon discards the live session with no persistence. All or nothing:
// there is no partial credit and no draft to resume.
func (s *workoutService) Abandon(userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

func (s *workoutService) session(userID string) (*progression.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

func (s *workoutService) restSeconds(ctx context.Context, userID string) int {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return domain.DefaultRestSeconds
	}
	if settings.DefaultRestTime <= 0 {
		return domain.DefaultRestSeconds
	}
	return settings.DefaultRestTime
}

// buildState groups the session by exercise in first-appearance order and
// attaches last-session context from set history.
func (s *workoutService) buildState(ctx context.Context, userID string, session *progression.Session) (*SessionState, error) {
	exercises, err := s.exerciseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.setRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	sets := make([]domain.SetLog, len(session.Sets))
	copy(sets, session.Sets)
	order := session.ExerciseOrder()
	s.mu.Unlock()

	state := &SessionState{Exercises: make([]SessionExercise, 0, len(order))}
	for _, exerciseID := range order {
		ex := domain.FindExerciseByID(exercises, exerciseID)
		if ex == nil {
			continue
		}

		group := SessionExercise{Exercise: *ex}
		for _, set := range sets {
			if set.ExerciseID == exerciseID {
				group.Sets = append(group.Sets, set)
			}
		}
		group.LastBest = lastSessionBest(history, exerciseID, s.now())
		state.Exercises = append(state.Exercises, group)
	}
	return state, nil
}

// lastSessionBest finds the heaviest set of the most recent day the exercise
// was trained before today.
func lastSessionBest(history []domain.SetLog, exerciseID string, now time.Time) *LastSessionBest {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var past []domain.SetLog
	for _, set := range history {
		if set.ExerciseID == exerciseID && set.Completed && set.Date.Before(today) {
			past = append(past, set)
		}
	}
	if len(past) == 0 {
		return nil
	}

	sort.Slice(past, func(i, j int) bool { return past[i].Date.After(past[j].Date) })

	lastDay := past[0].Date
	best := past[0]
	for _, set := range past {
		if set.Date.Year() == lastDay.Year() && set.Date.YearDay() == lastDay.YearDay() && set.Weight > best.Weight {
			best = set
		}
	}
	return &LastSessionBest{Weight: best.Weight, Reps: best.Reps, Date: best.Date}
}
