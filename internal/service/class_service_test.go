package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/store"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func newClassFixture(t *testing.T, members int) (*ClassService, *store.Roster, string) {
	t.Helper()
	roster := store.NewRoster()
	svc := NewClassService(roster, nil, nil)

	class, err := svc.Create(context.Background(), ClassRequest{Name: "6A1", GradeLevel: "6", Year: "2025-2026"})
	require.NoError(t, err)

	for i := 0; i < members; i++ {
		roster.AddStudent(models.Student{ID: "s" + string(rune('0'+i)), Name: "Member", ClassID: class.ID})
	}
	return svc, roster, class.ID
}

func TestClassCRUD(t *testing.T) {
	svc, _, id := newClassFixture(t, 0)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "6A1", got.Name)

	updated, err := svc.Update(context.Background(), id, ClassRequest{Name: "6A2", GradeLevel: "6", Year: "2025-2026"})
	require.NoError(t, err)
	assert.Equal(t, "6A2", updated.Name)

	assert.Len(t, svc.List(context.Background()), 1)
}

func TestClassValidation(t *testing.T) {
	svc, _, _ := newClassFixture(t, 0)

	_, err := svc.Create(context.Background(), ClassRequest{Name: "6A3"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestRequestDeletionDoesNotMutate(t *testing.T) {
	svc, roster, id := newClassFixture(t, 3)

	impact, err := svc.RequestDeletion(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, impact.ClassID)
	assert.Len(t, impact.AffectedStudents, 3)

	// nothing changed yet
	_, err = roster.GetClass(id)
	require.NoError(t, err)
	for _, s := range roster.ListStudents() {
		assert.Equal(t, id, s.ClassID)
	}
}

func TestConfirmDeletionCascades(t *testing.T) {
	svc, roster, id := newClassFixture(t, 3)

	result, err := svc.ConfirmDeletion(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, result.StudentsUnassigned)

	_, err = roster.GetClass(id)
	require.Error(t, err, "class record is gone")

	students := roster.ListStudents()
	require.Len(t, students, 3, "students survive the class deletion")
	for _, s := range students {
		assert.Equal(t, "", s.ClassID)
	}
}

func TestDeletionOfUnknownClass(t *testing.T) {
	svc, _, _ := newClassFixture(t, 0)

	_, err := svc.RequestDeletion(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	_, err = svc.ConfirmDeletion(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
