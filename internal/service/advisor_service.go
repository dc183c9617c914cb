package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

// draftFallback is returned whenever the generative endpoint fails; the
// caller must never be left pending or see a raw transport error.
const draftFallback = "Xin lỗi, đã có lỗi xảy ra khi kết nối với AI. Vui lòng thử lại sau."

// emptyDraftFallback covers a successful call that produced no text.
const emptyDraftFallback = "Không thể tạo nhận xét lúc này."

type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type advisorStore interface {
	GetStudent(id string) (*models.Student, error)
	GetClass(id string) (*models.Classroom, error)
}

// DraftRequest asks for a narrative comment for one student.
type DraftRequest struct {
	StudentID    string          `json:"student_id" validate:"required"`
	Semester     models.Semester `json:"semester" validate:"required,oneof=HK1 HK2 ALL"`
	TeacherNotes string          `json:"teacher_notes"`
}

// DraftResult carries the generated (or fallback) comment text.
type DraftResult struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// AdvisorService is the boundary to the external comment generator. One
// request may be in flight at a time; a second concurrent call fails fast
// with ErrBusy instead of queueing. Failures of the external call are
// converted to a fixed fallback text and never retried automatically.
type AdvisorService struct {
	roster    advisorStore
	agg       *AggregateService
	generator textGenerator
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	busy      atomic.Bool
}

// NewAdvisorService constructs an AdvisorService.
func NewAdvisorService(roster advisorStore, agg *AggregateService, generator textGenerator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AdvisorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorService{roster: roster, agg: agg, generator: generator, validator: validate, metrics: metrics, logger: logger}
}

// Draft builds the prompt from the student's record and asks the external
// generator for a narrative comment.
func (s *AdvisorService) Draft(ctx context.Context, req DraftRequest) (*DraftResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draft payload")
	}
	student, err := s.roster.GetStudent(req.StudentID)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, appErrors.ErrBusy
	}
	defer s.busy.Store(false)

	prompt := s.buildPrompt(student, req)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("comment generation failed", zap.String("student_id", student.ID), zap.Error(err))
		if s.metrics != nil {
			s.metrics.ObserveAIFallback()
		}
		return &DraftResult{Text: draftFallback, Fallback: true}, nil
	}
	if strings.TrimSpace(text) == "" {
		return &DraftResult{Text: emptyDraftFallback, Fallback: true}, nil
	}
	return &DraftResult{Text: text}, nil
}

// ExpandKeywords turns shortcut keywords into a full comment sentence. It
// shares the single-flight guard with Draft and degrades to an empty
// string on failure.
func (s *AdvisorService) ExpandKeywords(ctx context.Context, keywords string) (string, error) {
	if strings.TrimSpace(keywords) == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "keywords required")
	}
	if !s.busy.CompareAndSwap(false, true) {
		return "", appErrors.ErrBusy
	}
	defer s.busy.Store(false)

	prompt := fmt.Sprintf("Mở rộng các từ khóa sau thành một câu nhận xét học sinh hoàn chỉnh, tự nhiên: %q. Chỉ trả về câu nhận xét.", keywords)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveAIFallback()
		}
		return "", nil
	}
	return text, nil
}

func (s *AdvisorService) buildPrompt(student *models.Student, req DraftRequest) string {
	grades := s.agg.FilterBySemester(student.Grades, req.Semester)

	gradeParts := make([]string, 0, len(grades))
	for _, g := range grades {
		gradeParts = append(gradeParts, fmt.Sprintf("%s (%s, hệ số %d): %.1f", subjectLabel(g.Subject), g.ExamType, g.Coefficient, g.Score))
	}
	gradeSummary := "Chưa có điểm"
	if len(gradeParts) > 0 {
		gradeSummary = fmt.Sprintf("ĐTB %.1f — %s", round1(s.agg.WeightedAverage(grades)), strings.Join(gradeParts, "; "))
	}

	logParts := make([]string, 0, len(student.DailyLogs))
	for _, l := range student.DailyLogs {
		logParts = append(logParts, fmt.Sprintf("[%s] %s", l.Category, l.Content))
	}
	logSummary := strings.Join(logParts, "; ")

	gradeLevel := ""
	if student.ClassID != "" {
		if class, err := s.roster.GetClass(student.ClassID); err == nil {
			gradeLevel = class.GradeLevel
		}
	}
	targetGoal := student.TargetGoal
	if targetGoal == "" {
		targetGoal = "Chưa thiết lập"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Đóng vai một giáo viên bộ môn tâm huyết theo chương trình GDPT 2018. ")
	fmt.Fprintf(&b, "Hãy viết nhận xét cho học sinh %q (Lớp %s), thời điểm: %s.\n\n", student.Name, gradeLevel, semesterLabel(req.Semester))
	fmt.Fprintf(&b, "Dữ liệu đầu vào:\n")
	fmt.Fprintf(&b, "1. Mục tiêu của học sinh: %q\n", targetGoal)
	fmt.Fprintf(&b, "2. Điểm số: %s\n", gradeSummary)
	fmt.Fprintf(&b, "3. Nhật ký theo dõi hằng ngày: %s\n", logSummary)
	fmt.Fprintf(&b, "4. Ghi chú thêm của giáo viên: %q\n\n", req.TeacherNotes)
	fmt.Fprintf(&b, "Yêu cầu: đánh giá tổng quan ba mặt Kiến thức/Kỹ năng/Thái độ, so sánh với mục tiêu, ")
	fmt.Fprintf(&b, "nêu 2-3 việc cụ thể cần làm ngay. Giọng văn ân cần, sư phạm, khoảng 150-200 chữ.")
	return b.String()
}
