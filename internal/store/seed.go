package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/edutrack-api/internal/models"
)

// SeedDemo loads a small roster so a fresh instance has something to show.
func SeedDemo(r *Roster) {
	classID := uuid.NewString()
	r.AddClass(models.Classroom{
		ID:         classID,
		Name:       "Lớp 6A1",
		GradeLevel: "6",
		Year:       "2025-2026",
	})

	now := time.Now()
	students := []models.Student{
		{
			ID:      uuid.NewString(),
			Name:    "Nguyễn Văn An",
			ClassID: classID,
			Grades: []models.Grade{
				{
					ID:          uuid.NewString(),
					Subject:     models.SubjectAlgebra,
					ExamType:    models.ExamRegular,
					Coefficient: models.CoefficientFor(models.ExamRegular),
					Score:       8,
					Date:        now.AddDate(0, 0, -10),
				},
				{
					ID:          uuid.NewString(),
					Subject:     models.SubjectGeneral,
					ExamType:    models.ExamMidterm,
					Coefficient: models.CoefficientFor(models.ExamMidterm),
					Score:       7.5,
					Date:        now.AddDate(0, 0, -3),
				},
			},
			DailyLogs: []models.DailyLog{
				{
					ID:       uuid.NewString(),
					Category: models.LogKnowledge,
					Content:  "Hiểu bài nhanh, tích cực phát biểu",
					Date:     now.AddDate(0, 0, -2),
				},
			},
		},
		{
			ID:      uuid.NewString(),
			Name:    "Trần Thị Bình",
			ClassID: classID,
			Grades: []models.Grade{
				{
					ID:          uuid.NewString(),
					Subject:     models.SubjectGeometry,
					ExamType:    models.ExamRegular,
					Coefficient: models.CoefficientFor(models.ExamRegular),
					Score:       4.5,
					Date:        now.AddDate(0, 0, -1),
				},
			},
		},
		{
			ID:   uuid.NewString(),
			Name: "Lê Minh Châu",
		},
	}
	r.AddStudents(students)

	r.AddTemplate(models.CommentTemplate{
		ID:       uuid.NewString(),
		Keyword:  "tiến bộ",
		Content:  "Em có nhiều tiến bộ trong học kì này, cần phát huy.",
		Category: "Học tập",
	})
}
