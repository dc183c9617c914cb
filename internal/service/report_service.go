package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/pkg/export"
)

type reportStore interface {
	ListStudents() []models.Student
	StudentsByClass(classID string) []models.Student
	GetStudent(id string) (*models.Student, error)
	GetClass(id string) (*models.Classroom, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	RenderDetail(title string, lines []string, table export.Dataset, remarks []string) ([]byte, error)
}

// ExportFile is a rendered report ready to stream to the caller.
type ExportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Payload     []byte `json:"-"`
}

// ReportService projects roster data into flat row structures and hands
// them to the CSV/PDF renderers. The builders are pure; only the Export*
// methods touch the filesystem.
type ReportService struct {
	roster  reportStore
	agg     *AggregateService
	storage fileStorage
	csv     csvRenderer
	pdf     pdfRenderer
	metrics *MetricsService
	logger  *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(roster reportStore, agg *AggregateService, storage fileStorage, metrics *MetricsService, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ReportService{roster: roster, agg: agg, storage: storage, csv: csv, pdf: pdf, metrics: metrics, logger: logger}
}

// BuildSchoolDataset returns one row per student across the whole roster
// with the weighted average pre-formatted to two decimals.
func (s *ReportService) BuildSchoolDataset(sem models.Semester) export.Dataset {
	students := s.roster.ListStudents()
	rows := make([]map[string]string, 0, len(students))
	for _, student := range students {
		grades := s.agg.FilterBySemester(student.Grades, sem)
		rows = append(rows, map[string]string{
			"ID":      student.ID,
			"Name":    student.Name,
			"ClassID": student.ClassID,
			"Average": fmt.Sprintf("%.2f", s.agg.WeightedAverage(grades)),
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Name", "ClassID", "Average"},
		Rows:    rows,
	}
}

// BuildClassDataset returns the class summary table: one row per member
// with the weighted average to one decimal, or "--" when no grades exist
// in scope.
func (s *ReportService) BuildClassDataset(classID string, sem models.Semester) (export.Dataset, string, error) {
	class, err := s.roster.GetClass(classID)
	if err != nil {
		return export.Dataset{}, "", notFound(err, "class not found")
	}
	members := s.roster.StudentsByClass(classID)
	rows := make([]map[string]string, 0, len(members))
	for i, student := range members {
		grades := s.agg.FilterBySemester(student.Grades, sem)
		avg := "--"
		if len(grades) > 0 {
			avg = fmt.Sprintf("%.1f", s.agg.WeightedAverage(grades))
		}
		row := map[string]string{}
		row["STT"] = fmt.Sprintf("%d", i+1)
		row["Họ tên"] = student.Name
		row["Điểm TB"] = avg
		row["Số đầu điểm"] = fmt.Sprintf("%d", len(grades))
		rows = append(rows, row)
	}
	dataset := export.Dataset{
		Headers: []string{"STT", "Họ tên", "Điểm TB", "Số đầu điểm"},
		Rows:    rows,
	}
	title := fmt.Sprintf("Bảng điểm tổng hợp - %s", class.Name)
	return dataset, title, nil
}

// BuildStudentDetail returns the per-student report block: heading lines,
// the grade table and the list of comments.
func (s *ReportService) BuildStudentDetail(studentID string, sem models.Semester) ([]string, export.Dataset, []string, string, error) {
	student, err := s.roster.GetStudent(studentID)
	if err != nil {
		return nil, export.Dataset{}, nil, "", notFound(err, "student not found")
	}
	className := "Chưa phân lớp"
	if student.ClassID != "" {
		if class, err := s.roster.GetClass(student.ClassID); err == nil {
			className = class.Name
		}
	}
	lines := []string{
		fmt.Sprintf("Họ tên: %s", student.Name),
		fmt.Sprintf("Lớp: %s", className),
		fmt.Sprintf("Học kì: %s", semesterLabel(sem)),
	}

	grades := s.agg.FilterBySemester(student.Grades, sem)
	rows := make([]map[string]string, 0, len(grades))
	for _, g := range grades {
		row := map[string]string{}
		row["Môn học"] = subjectLabel(g.Subject)
		row["Điểm số"] = fmt.Sprintf("%.1f", g.Score)
		row["Hệ số"] = fmt.Sprintf("%d", g.Coefficient)
		row["Ngày"] = g.Date.Format("02/01/2006")
		rows = append(rows, row)
	}
	table := export.Dataset{
		Headers: []string{"Môn học", "Điểm số", "Hệ số", "Ngày"},
		Rows:    rows,
	}

	remarks := make([]string, 0, len(student.Comments))
	for _, c := range student.Comments {
		remarks = append(remarks, c.Content)
	}

	title := "Phiếu kết quả học tập"
	return lines, table, remarks, title, nil
}

// ExportSchoolCSV renders and stores the whole-roster CSV.
func (s *ReportService) ExportSchoolCSV(ctx context.Context, sem models.Semester) (*ExportFile, error) {
	dataset := s.BuildSchoolDataset(sem)
	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, wrapInternal(err, "render school csv")
	}
	return s.finish(buildFilename("school_report", sem, "csv"), "text/csv; charset=utf-8", payload)
}

// ExportClassPDF renders and stores the class summary PDF.
func (s *ReportService) ExportClassPDF(ctx context.Context, classID string, sem models.Semester) (*ExportFile, error) {
	dataset, title, err := s.BuildClassDataset(classID, sem)
	if err != nil {
		return nil, err
	}
	payload, err := s.pdf.Render(dataset, title)
	if err != nil {
		return nil, wrapInternal(err, "render class pdf")
	}
	return s.finish(buildFilename("class_report", sem, "pdf"), "application/pdf", payload)
}

// ExportStudentPDF renders and stores the per-student report PDF.
func (s *ReportService) ExportStudentPDF(ctx context.Context, studentID string, sem models.Semester) (*ExportFile, error) {
	lines, table, remarks, title, err := s.BuildStudentDetail(studentID, sem)
	if err != nil {
		return nil, err
	}
	payload, err := s.pdf.RenderDetail(title, lines, table, remarks)
	if err != nil {
		return nil, wrapInternal(err, "render student pdf")
	}
	return s.finish(buildFilename("student_report", sem, "pdf"), "application/pdf", payload)
}

// Cleanup removes stored exports older than ttl.
func (s *ReportService) Cleanup(ttl time.Duration) ([]string, error) {
	if s.storage == nil {
		return nil, nil
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ReportService) finish(filename, contentType string, payload []byte) (*ExportFile, error) {
	if s.storage != nil {
		if _, err := s.storage.Save(filename, payload); err != nil {
			return nil, wrapInternal(err, "store export")
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveExport(filename[strings.LastIndex(filename, ".")+1:])
	}
	s.logger.Info("export rendered", zap.String("filename", filename), zap.Int("bytes", len(payload)))
	return &ExportFile{Filename: filename, ContentType: contentType, Payload: payload}, nil
}

func buildFilename(kind string, sem models.Semester, ext string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s.%s", kind, strings.ToLower(string(sem)), timestamp, ext)
}

func subjectLabel(subject models.Subject) string {
	switch subject {
	case models.SubjectAlgebra:
		return "Đại số"
	case models.SubjectGeometry:
		return "Hình học"
	default:
		return "Toán chung"
	}
}

func semesterLabel(sem models.Semester) string {
	switch sem {
	case models.SemesterFirst:
		return "Học kì I"
	case models.SemesterSecond:
		return "Học kì II"
	default:
		return "Cả năm"
	}
}
