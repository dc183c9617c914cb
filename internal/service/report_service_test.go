package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/store"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func reportFixture(t *testing.T) *ReportService {
	t.Helper()
	roster := store.NewRoster()
	roster.AddClass(models.Classroom{ID: "c1", Name: "6A1", GradeLevel: "6", Year: "2025-2026"})

	oct := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	roster.AddStudents([]models.Student{
		{
			ID: "s1", Name: "Nguyễn Văn An", ClassID: "c1",
			Grades: []models.Grade{
				{ID: "g1", Subject: models.SubjectAlgebra, ExamType: models.ExamRegular, Coefficient: 1, Score: 8, Date: oct},
				{ID: "g2", Subject: models.SubjectGeneral, ExamType: models.ExamFinal, Coefficient: 3, Score: 7, Date: oct},
			},
			Comments: []models.Comment{
				{ID: "cm1", Content: "Chăm ngoan", Source: models.SourceManual},
			},
		},
		{ID: "s2", Name: "Trần Thị Bình", ClassID: "c1"},
		{ID: "s3", Name: "Lê Minh Châu"},
	})

	return NewReportService(roster, NewAggregateService(nil), nil, nil, nil, nil, nil)
}

func TestBuildSchoolDataset(t *testing.T) {
	svc := reportFixture(t)

	dataset := svc.BuildSchoolDataset(models.SemesterAll)
	assert.Equal(t, []string{"ID", "Name", "ClassID", "Average"}, dataset.Headers)
	require.Len(t, dataset.Rows, 3)

	// (8*1 + 7*3) / 4 = 7.25
	assert.Equal(t, "7.25", dataset.Rows[0]["Average"])
	assert.Equal(t, "0.00", dataset.Rows[1]["Average"], "no grades renders as zero")
	assert.Equal(t, "", dataset.Rows[2]["ClassID"])
}

func TestBuildClassDataset(t *testing.T) {
	svc := reportFixture(t)

	dataset, title, err := svc.BuildClassDataset("c1", models.SemesterAll)
	require.NoError(t, err)
	assert.Equal(t, "Bảng điểm tổng hợp - 6A1", title)
	require.Len(t, dataset.Rows, 2, "only class members included")

	assert.Equal(t, "1", dataset.Rows[0]["STT"])
	assert.Equal(t, "7.2", dataset.Rows[0]["Điểm TB"], "one decimal in class view")
	assert.Equal(t, "2", dataset.Rows[0]["Số đầu điểm"])
	assert.Equal(t, "--", dataset.Rows[1]["Điểm TB"], "gradeless member shows a dash")

	_, _, err = svc.BuildClassDataset("missing", models.SemesterAll)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestBuildStudentDetail(t *testing.T) {
	svc := reportFixture(t)

	lines, table, remarks, title, err := svc.BuildStudentDetail("s1", models.SemesterFirst)
	require.NoError(t, err)
	assert.Equal(t, "Phiếu kết quả học tập", title)

	require.Len(t, lines, 3)
	assert.Equal(t, "Họ tên: Nguyễn Văn An", lines[0])
	assert.Equal(t, "Lớp: 6A1", lines[1])
	assert.Equal(t, "Học kì: Học kì I", lines[2])

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Đại số", table.Rows[0]["Môn học"])
	assert.Equal(t, "8.0", table.Rows[0]["Điểm số"])
	assert.Equal(t, "06/10/2025", table.Rows[0]["Ngày"])

	require.Len(t, remarks, 1)
	assert.Equal(t, "Chăm ngoan", remarks[0])
}

func TestBuildStudentDetailUnassigned(t *testing.T) {
	svc := reportFixture(t)

	lines, _, _, _, err := svc.BuildStudentDetail("s3", models.SemesterAll)
	require.NoError(t, err)
	assert.Equal(t, "Lớp: Chưa phân lớp", lines[1])
}

func TestExportSchoolCSV(t *testing.T) {
	svc := reportFixture(t)

	file, err := svc.ExportSchoolCSV(context.Background(), models.SemesterAll)
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "school_report_all_"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))
	assert.Contains(t, string(file.Payload), "Nguyễn Văn An")
}

func TestExportClassPDF(t *testing.T) {
	svc := reportFixture(t)

	file, err := svc.ExportClassPDF(context.Background(), "c1", models.SemesterFirst)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "class_report_hk1_"))
	assert.NotEmpty(t, file.Payload)
}

func TestExportStudentPDF(t *testing.T) {
	svc := reportFixture(t)

	file, err := svc.ExportStudentPDF(context.Background(), "s1", models.SemesterAll)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.NotEmpty(t, file.Payload)

	_, err = svc.ExportStudentPDF(context.Background(), "missing", models.SemesterAll)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
