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

func newStudentFixture(t *testing.T) (*StudentService, *store.Roster, string) {
	t.Helper()
	roster := store.NewRoster()
	svc := NewStudentService(roster, nil, nil)

	student, err := svc.Create(context.Background(), CreateStudentRequest{Name: "Nguyễn Văn An"})
	require.NoError(t, err)
	return svc, roster, student.ID
}

func TestCreateStudentDefaults(t *testing.T) {
	roster := store.NewRoster()
	svc := NewStudentService(roster, nil, nil)

	student, err := svc.Create(context.Background(), CreateStudentRequest{Name: "Trần Thị Bình"})
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.Equal(t, "", student.ClassID, "new students start unassigned")
	assert.NotNil(t, student.Grades)
	assert.Empty(t, student.Grades)
}

func TestCreateStudentValidation(t *testing.T) {
	svc := NewStudentService(store.NewRoster(), nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestCreateStudentUnknownClass(t *testing.T) {
	svc := NewStudentService(store.NewRoster(), nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{Name: "X", ClassID: "nope"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestAddGradeDerivesCoefficient(t *testing.T) {
	svc, _, id := newStudentFixture(t)

	cases := []struct {
		examType    models.ExamType
		coefficient int
	}{
		{models.ExamRegular, 1},
		{models.ExamMonthly, 1},
		{models.ExamMidterm, 2},
		{models.ExamFinal, 3},
	}

	for _, tc := range cases {
		student, err := svc.AddGrade(context.Background(), id, GradeRequest{
			ExamType: tc.examType,
			Score:    7,
		})
		require.NoError(t, err, string(tc.examType))
		last := student.Grades[len(student.Grades)-1]
		assert.Equal(t, tc.coefficient, last.Coefficient, string(tc.examType))
	}
}

func TestAddGradeSubjectRules(t *testing.T) {
	svc, _, id := newStudentFixture(t)

	// midterm always lands on General even when a subject is supplied
	student, err := svc.AddGrade(context.Background(), id, GradeRequest{
		Subject:  models.SubjectAlgebra,
		ExamType: models.ExamMidterm,
		Score:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubjectGeneral, student.Grades[0].Subject)

	// regular without a subject defaults to Algebra
	student, err = svc.AddGrade(context.Background(), id, GradeRequest{
		ExamType: models.ExamRegular,
		Score:    6,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubjectAlgebra, student.Grades[1].Subject)

	// regular against General is rejected
	_, err = svc.AddGrade(context.Background(), id, GradeRequest{
		Subject:  models.SubjectGeneral,
		ExamType: models.ExamRegular,
		Score:    6,
	})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestAddGradeScoreBounds(t *testing.T) {
	svc, _, id := newStudentFixture(t)

	_, err := svc.AddGrade(context.Background(), id, GradeRequest{ExamType: models.ExamRegular, Score: 10.5})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.AddGrade(context.Background(), id, GradeRequest{ExamType: models.ExamRegular, Score: -1})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.AddGrade(context.Background(), id, GradeRequest{ExamType: models.ExamRegular, Score: 0})
	assert.NoError(t, err, "zero is a valid score")
}

func TestUpdateGradeKeepsID(t *testing.T) {
	svc, _, id := newStudentFixture(t)

	student, err := svc.AddGrade(context.Background(), id, GradeRequest{ExamType: models.ExamRegular, Score: 5})
	require.NoError(t, err)
	gradeID := student.Grades[0].ID

	student, err = svc.UpdateGrade(context.Background(), id, gradeID, GradeRequest{ExamType: models.ExamFinal, Score: 9})
	require.NoError(t, err)
	require.Len(t, student.Grades, 1)
	assert.Equal(t, gradeID, student.Grades[0].ID)
	assert.Equal(t, 9.0, student.Grades[0].Score)
	assert.Equal(t, 3, student.Grades[0].Coefficient)

	_, err = svc.UpdateGrade(context.Background(), id, "missing", GradeRequest{ExamType: models.ExamRegular, Score: 5})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestDeleteGrade(t *testing.T) {
	svc, _, id := newStudentFixture(t)

	student, err := svc.AddGrade(context.Background(), id, GradeRequest{ExamType: models.ExamRegular, Score: 5})
	require.NoError(t, err)

	student, err = svc.DeleteGrade(context.Background(), id, student.Grades[0].ID)
	require.NoError(t, err)
	assert.Empty(t, student.Grades)

	_, err = svc.DeleteGrade(context.Background(), id, "missing")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestDailyLogLifecycle(t *testing.T) {
	svc, _, id := newStudentFixture(t)

	score := 8.0
	student, err := svc.AddDailyLog(context.Background(), id, DailyLogRequest{
		Category: models.LogAttitude,
		Content:  "Tích cực phát biểu",
		Score:    &score,
	})
	require.NoError(t, err)
	require.Len(t, student.DailyLogs, 1)
	assert.Equal(t, models.LogAttitude, student.DailyLogs[0].Category)
	require.NotNil(t, student.DailyLogs[0].Score)
	assert.Equal(t, 8.0, *student.DailyLogs[0].Score)

	student, err = svc.DeleteDailyLog(context.Background(), id, student.DailyLogs[0].ID)
	require.NoError(t, err)
	assert.Empty(t, student.DailyLogs)
}

func TestCommentDefaultsToManual(t *testing.T) {
	svc, _, id := newStudentFixture(t)

	student, err := svc.AddComment(context.Background(), id, CommentRequest{Content: "Chăm ngoan"})
	require.NoError(t, err)
	require.Len(t, student.Comments, 1)
	assert.Equal(t, models.SourceManual, student.Comments[0].Source)

	student, err = svc.AddComment(context.Background(), id, CommentRequest{Content: "AI draft", Source: models.SourceAI})
	require.NoError(t, err)
	assert.Equal(t, models.SourceAI, student.Comments[1].Source)
}

func TestSetGoals(t *testing.T) {
	svc, roster, id := newStudentFixture(t)

	_, err := svc.SetGoals(context.Background(), id, GoalsRequest{TargetGoal: "Đạt học sinh giỏi", HistoricalNotes: "Lớp 5: giỏi"})
	require.NoError(t, err)

	got, err := roster.GetStudent(id)
	require.NoError(t, err)
	assert.Equal(t, "Đạt học sinh giỏi", got.TargetGoal)
	assert.Equal(t, "Lớp 5: giỏi", got.HistoricalNotes)
}

func TestGetMissingStudent(t *testing.T) {
	svc := NewStudentService(store.NewRoster(), nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestListByClass(t *testing.T) {
	roster := store.NewRoster()
	roster.AddClass(models.Classroom{ID: "c1", Name: "6A1", GradeLevel: "6", Year: "2025-2026"})
	svc := NewStudentService(roster, nil, nil)

	_, err := svc.Create(context.Background(), CreateStudentRequest{Name: "A", ClassID: "c1"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateStudentRequest{Name: "B"})
	require.NoError(t, err)

	assert.Len(t, svc.List(context.Background(), ""), 2)
	assert.Len(t, svc.List(context.Background(), "c1"), 1)
}
