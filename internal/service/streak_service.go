package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

const streakDayLayout = "2006-01-02"

// StreakState is the persisted shape of the visit streak.
type StreakState struct {
	Count     int    `json:"count"`
	LastVisit string `json:"lastVisit"`
}

// StreakService tracks consecutive-day app visits in a small JSON state
// file. A visit on the same calendar day is a no-op, the next day extends
// the streak, any larger gap resets it to one.
type StreakService struct {
	mu        sync.Mutex
	stateFile string
	logger    *zap.Logger
}

// NewStreakService constructs a StreakService backed by the given file.
func NewStreakService(stateFile string, logger *zap.Logger) *StreakService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreakService{stateFile: stateFile, logger: logger}
}

// Current returns the persisted streak without modifying it.
func (s *StreakService) Current() (StreakState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Touch records a visit at the given time and returns the updated streak.
func (s *StreakService) Touch(now time.Time) (StreakState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return StreakState{}, err
	}

	today := now.Format(streakDayLayout)
	if state.LastVisit == today {
		return state, nil
	}

	yesterday := now.AddDate(0, 0, -1).Format(streakDayLayout)
	if state.LastVisit == yesterday {
		state.Count++
	} else {
		state.Count = 1
	}
	state.LastVisit = today

	if err := s.save(state); err != nil {
		return StreakState{}, err
	}
	return state, nil
}

func (s *StreakService) load() (StreakState, error) {
	data, err := os.ReadFile(s.stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return StreakState{}, nil
		}
		return StreakState{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read streak state")
	}

	var state StreakState
	if err := json.Unmarshal(data, &state); err != nil {
		// Corrupt state is recoverable, start over.
		s.logger.Warn("resetting unreadable streak state", zap.String("file", s.stateFile), zap.Error(err))
		return StreakState{}, nil
	}
	return state, nil
}

func (s *StreakService) save(state StreakState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode streak state")
	}
	if dir := filepath.Dir(s.stateFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create streak state dir")
		}
	}
	if err := os.WriteFile(s.stateFile, data, 0o644); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write streak state")
	}
	return nil
}
