package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/store"
)

func logAt(date time.Time) models.DailyLog {
	return models.DailyLog{ID: "l" + date.Format("20060102"), Date: date, Category: models.LogKnowledge, Content: "ghi chú"}
}

func TestSuggestNoLogsCountsAsStale(t *testing.T) {
	roster := store.NewRoster()
	roster.AddStudent(models.Student{ID: "s1", Name: "An"})
	svc := NewSuggestionService(roster, nil)

	got := svc.Suggest(context.Background(), time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, []SuggestionReason{ReasonStaleLog}, got[0].Reasons)
}

func TestSuggestFreshLogNotFlagged(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	roster := store.NewRoster()
	roster.AddStudent(models.Student{
		ID: "s1", Name: "An",
		DailyLogs: []models.DailyLog{logAt(now.AddDate(0, 0, -2))},
	})
	svc := NewSuggestionService(roster, nil)

	assert.Empty(t, svc.Suggest(context.Background(), now))
}

func TestSuggestStaleLogBoundary(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	roster := store.NewRoster()
	roster.AddStudent(models.Student{
		ID: "exactly-week", Name: "A",
		DailyLogs: []models.DailyLog{logAt(now.Add(-7 * 24 * time.Hour))},
	})
	roster.AddStudent(models.Student{
		ID: "over-week", Name: "B",
		DailyLogs: []models.DailyLog{logAt(now.Add(-7*24*time.Hour - time.Minute))},
	})
	svc := NewSuggestionService(roster, nil)

	got := svc.Suggest(context.Background(), now)
	require.Len(t, got, 1, "exactly seven days is not yet stale")
	assert.Equal(t, "over-week", got[0].StudentID)
}

func TestSuggestLowLastScore(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	roster := store.NewRoster()
	roster.AddStudent(models.Student{
		ID: "s1", Name: "An",
		DailyLogs: []models.DailyLog{logAt(now.AddDate(0, 0, -1))},
		Grades: []models.Grade{
			{ID: "g1", Score: 9, Date: now.AddDate(0, 0, -5)},
			{ID: "g2", Score: 4.5, Date: now.AddDate(0, 0, -1)},
		},
	})
	svc := NewSuggestionService(roster, nil)

	got := svc.Suggest(context.Background(), now)
	require.Len(t, got, 1)
	assert.Equal(t, []SuggestionReason{ReasonLowScore}, got[0].Reasons)
}

func TestSuggestBothReasons(t *testing.T) {
	roster := store.NewRoster()
	roster.AddStudent(models.Student{
		ID: "s1", Name: "An",
		Grades: []models.Grade{{ID: "g1", Score: 3}},
	})
	svc := NewSuggestionService(roster, nil)

	got := svc.Suggest(context.Background(), time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, []SuggestionReason{ReasonStaleLog, ReasonLowScore}, got[0].Reasons)
}

func TestSuggestCappedInRosterOrder(t *testing.T) {
	roster := store.NewRoster()
	for i := 0; i < 8; i++ {
		roster.AddStudent(models.Student{ID: fmt.Sprintf("s%d", i), Name: fmt.Sprintf("Student %d", i)})
	}
	svc := NewSuggestionService(roster, nil)

	got := svc.Suggest(context.Background(), time.Now())
	require.Len(t, got, maxSuggestions)
	for i, s := range got {
		assert.Equal(t, fmt.Sprintf("s%d", i), s.StudentID, "first match wins, no ranking")
	}
}
