package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
)

// maxSuggestions caps the attention list; the dashboard card shows at most
// five students.
const maxSuggestions = 5

// staleLogAge is how long a student may go without a journal entry before
// being flagged.
const staleLogAge = 7 * 24 * time.Hour

// SuggestionReason names why a student was flagged.
type SuggestionReason string

const (
	ReasonStaleLog SuggestionReason = "STALE_LOG"
	ReasonLowScore SuggestionReason = "LOW_SCORE"
)

// Suggestion flags one student needing attention.
type Suggestion struct {
	StudentID   string             `json:"student_id"`
	StudentName string             `json:"student_name"`
	ClassID     string             `json:"class_id"`
	Reasons     []SuggestionReason `json:"reasons"`
}

type suggestionStore interface {
	ListStudents() []models.Student
}

// SuggestionService scans the roster for students the teacher should look
// at. It is a deliberate first-match heuristic, not a ranking: students are
// taken in roster order and the list is truncated, never sorted by
// severity.
type SuggestionService struct {
	roster suggestionStore
	logger *zap.Logger
}

// NewSuggestionService constructs a SuggestionService.
func NewSuggestionService(roster suggestionStore, logger *zap.Logger) *SuggestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuggestionService{roster: roster, logger: logger}
}

// Suggest returns up to five students matching at least one rule against
// the supplied reference time: the most recently appended journal entry is
// older than a week (no entries counts as maximally overdue), or the most
// recently appended grade scored below 5.
func (s *SuggestionService) Suggest(ctx context.Context, now time.Time) []Suggestion {
	suggestions := make([]Suggestion, 0, maxSuggestions)
	for _, student := range s.roster.ListStudents() {
		reasons := evaluate(student, now)
		if len(reasons) == 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			StudentID:   student.ID,
			StudentName: student.Name,
			ClassID:     student.ClassID,
			Reasons:     reasons,
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

func evaluate(student models.Student, now time.Time) []SuggestionReason {
	reasons := make([]SuggestionReason, 0, 2)

	stale := true
	if n := len(student.DailyLogs); n > 0 {
		last := student.DailyLogs[n-1]
		stale = now.Sub(last.Date) > staleLogAge
	}
	if stale {
		reasons = append(reasons, ReasonStaleLog)
	}

	if n := len(student.Grades); n > 0 && student.Grades[n-1].Score < 5 {
		reasons = append(reasons, ReasonLowScore)
	}

	return reasons
}
