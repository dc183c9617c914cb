package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/store"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	release chan struct{}
	prompts []string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	release := f.release
	f.mu.Unlock()
	if release != nil {
		<-release
	}
	return f.text, f.err
}

func (f *fakeGenerator) promptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func advisorFixture(t *testing.T, gen *fakeGenerator) (*AdvisorService, string) {
	t.Helper()
	roster := store.NewRoster()
	roster.AddStudent(models.Student{
		ID: "s1", Name: "Nguyễn Văn An",
		Grades: []models.Grade{{
			ID: "g1", Subject: models.SubjectAlgebra, ExamType: models.ExamRegular,
			Coefficient: 1, Score: 8, Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		}},
	})
	return NewAdvisorService(roster, NewAggregateService(nil), gen, nil, nil, nil), "s1"
}

func TestDraftSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "Em An học khá, cần phát huy."}
	svc, id := advisorFixture(t, gen)

	result, err := svc.Draft(context.Background(), DraftRequest{StudentID: id, Semester: models.SemesterAll})
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Equal(t, "Em An học khá, cần phát huy.", result.Text)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Nguyễn Văn An", "prompt carries the student name")
	assert.Contains(t, gen.prompts[0], "Đại số", "prompt carries the grade summary")
}

func TestDraftFallbackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc, id := advisorFixture(t, gen)

	result, err := svc.Draft(context.Background(), DraftRequest{StudentID: id, Semester: models.SemesterAll})
	require.NoError(t, err, "transport failure is absorbed, not surfaced")
	assert.True(t, result.Fallback)
	assert.Equal(t, draftFallback, result.Text)
}

func TestDraftFallbackOnEmptyText(t *testing.T) {
	gen := &fakeGenerator{text: "   "}
	svc, id := advisorFixture(t, gen)

	result, err := svc.Draft(context.Background(), DraftRequest{StudentID: id, Semester: models.SemesterAll})
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, emptyDraftFallback, result.Text)
}

func TestDraftSingleFlight(t *testing.T) {
	gen := &fakeGenerator{text: "ok", release: make(chan struct{})}
	svc, id := advisorFixture(t, gen)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, err := svc.Draft(context.Background(), DraftRequest{StudentID: id, Semester: models.SemesterAll})
		assert.NoError(t, err)
	}()

	// wait for the first call to take the guard
	require.Eventually(t, func() bool {
		return gen.promptCount() == 1
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Draft(context.Background(), DraftRequest{StudentID: id, Semester: models.SemesterAll})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrBusy))

	close(gen.release)
	<-firstDone

	// guard released after completion
	gen.release = nil
	_, err = svc.Draft(context.Background(), DraftRequest{StudentID: id, Semester: models.SemesterAll})
	assert.NoError(t, err)
}

func TestDraftValidation(t *testing.T) {
	svc, _ := advisorFixture(t, &fakeGenerator{})

	_, err := svc.Draft(context.Background(), DraftRequest{Semester: models.SemesterAll})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Draft(context.Background(), DraftRequest{StudentID: "missing", Semester: models.SemesterAll})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestExpandKeywords(t *testing.T) {
	gen := &fakeGenerator{text: "Em rất chăm chỉ và tiến bộ rõ rệt."}
	svc, _ := advisorFixture(t, gen)

	text, err := svc.ExpandKeywords(context.Background(), "chăm chỉ, tiến bộ")
	require.NoError(t, err)
	assert.Equal(t, "Em rất chăm chỉ và tiến bộ rõ rệt.", text)

	_, err = svc.ExpandKeywords(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestExpandKeywordsDegradesToEmpty(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	svc, _ := advisorFixture(t, gen)

	text, err := svc.ExpandKeywords(context.Background(), "chăm chỉ")
	require.NoError(t, err)
	assert.Empty(t, text)
}
