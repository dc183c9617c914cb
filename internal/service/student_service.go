package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/store"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type studentStore interface {
	ListStudents() []models.Student
	StudentsByClass(classID string) []models.Student
	GetStudent(id string) (*models.Student, error)
	AddStudent(student models.Student)
	ReplaceStudent(student models.Student) error
	DeleteStudent(id string) error
	GetClass(id string) (*models.Classroom, error)
}

// CreateStudentRequest carries a manual roster entry.
type CreateStudentRequest struct {
	Name            string `json:"name" validate:"required"`
	ClassID         string `json:"class_id"`
	Avatar          string `json:"avatar"`
	TargetGoal      string `json:"target_goal"`
	HistoricalNotes string `json:"historical_notes"`
}

// UpdateStudentRequest replaces a student's descriptive fields.
type UpdateStudentRequest struct {
	Name            string `json:"name" validate:"required"`
	ClassID         string `json:"class_id"`
	Avatar          string `json:"avatar"`
	TargetGoal      string `json:"target_goal"`
	HistoricalNotes string `json:"historical_notes"`
}

// GradeRequest carries a grade entry or edit. Subject is ignored for
// midterm and final exams, which are always recorded against the combined
// General subject.
type GradeRequest struct {
	Subject  models.Subject  `json:"subject" validate:"omitempty,oneof=ALGEBRA GEOMETRY GENERAL"`
	ExamType models.ExamType `json:"exam_type" validate:"required,oneof=REGULAR MONTHLY MIDTERM FINAL"`
	Score    float64         `json:"score" validate:"gte=0,lte=10"`
	Date     *time.Time      `json:"date"`
	Note     string          `json:"note"`
}

// DailyLogRequest appends a journal entry.
type DailyLogRequest struct {
	Category models.LogCategory `json:"category" validate:"required,oneof=KNOWLEDGE SKILL ATTITUDE"`
	Content  string             `json:"content" validate:"required"`
	Score    *float64           `json:"score" validate:"omitempty,gte=0,lte=10"`
	Date     *time.Time         `json:"date"`
}

// CommentRequest appends a narrative comment.
type CommentRequest struct {
	Content string               `json:"content" validate:"required"`
	Source  models.CommentSource `json:"source" validate:"omitempty,oneof=manual ai template"`
}

// GoalsRequest sets the free-text goal fields.
type GoalsRequest struct {
	TargetGoal      string `json:"target_goal"`
	HistoricalNotes string `json:"historical_notes"`
}

// StudentService owns roster entries and everything hanging off them:
// grades, daily logs, comments and goals. Every edit replaces the owning
// student wholesale in the store.
type StudentService struct {
	roster    studentStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewStudentService constructs a StudentService.
func NewStudentService(roster studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{roster: roster, validator: validate, logger: logger, now: time.Now}
}

// WithClock overrides the service clock; used by tests.
func (s *StudentService) WithClock(now func() time.Time) *StudentService {
	s.now = now
	return s
}

// List returns students, optionally scoped to a class id.
func (s *StudentService) List(ctx context.Context, classID string) []models.Student {
	if classID != "" {
		return s.roster.StudentsByClass(classID)
	}
	return s.roster.ListStudents()
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.roster.GetStudent(id)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

// Create adds a student to the roster.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if req.ClassID != "" {
		if _, err := s.roster.GetClass(req.ClassID); err != nil {
			return nil, notFound(err, "class not found")
		}
	}
	student := models.Student{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Avatar:          req.Avatar,
		ClassID:         req.ClassID,
		Grades:          []models.Grade{},
		Comments:        []models.Comment{},
		DailyLogs:       []models.DailyLog{},
		TargetGoal:      req.TargetGoal,
		HistoricalNotes: req.HistoricalNotes,
	}
	s.roster.AddStudent(student)
	s.logger.Info("student created", zap.String("student_id", student.ID))
	return &student, nil
}

// Update replaces a student's descriptive fields.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.roster.GetStudent(id)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	if req.ClassID != "" {
		if _, err := s.roster.GetClass(req.ClassID); err != nil {
			return nil, notFound(err, "class not found")
		}
	}
	student.Name = req.Name
	student.ClassID = req.ClassID
	student.Avatar = req.Avatar
	student.TargetGoal = req.TargetGoal
	student.HistoricalNotes = req.HistoricalNotes
	if err := s.roster.ReplaceStudent(*student); err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

// Delete removes a student. Classes are never touched.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.roster.DeleteStudent(id); err != nil {
		return notFound(err, "student not found")
	}
	s.logger.Info("student deleted", zap.String("student_id", id))
	return nil
}

// AddGrade appends a grade. The coefficient is always derived from the exam
// type; midterm and final entries are forced onto the General subject, and
// a regular assessment cannot be recorded against General.
func (s *StudentService) AddGrade(ctx context.Context, studentID string, req GradeRequest) (*models.Student, error) {
	grade, err := s.buildGrade(req)
	if err != nil {
		return nil, err
	}
	student, err := s.roster.GetStudent(studentID)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	student.Grades = append(student.Grades, *grade)
	if err := s.roster.ReplaceStudent(*student); err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

// UpdateGrade replaces an existing grade entry in place.
func (s *StudentService) UpdateGrade(ctx context.Context, studentID, gradeID string, req GradeRequest) (*models.Student, error) {
	grade, err := s.buildGrade(req)
	if err != nil {
		return nil, err
	}
	student, err := s.roster.GetStudent(studentID)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	found := false
	for i, g := range student.Grades {
		if g.ID == gradeID {
			grade.ID = gradeID
			student.Grades[i] = *grade
			found = true
			break
		}
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	if err := s.roster.ReplaceStudent(*student); err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

// DeleteGrade removes one grade entry.
func (s *StudentService) DeleteGrade(ctx context.Context, studentID, gradeID string) (*models.Student, error) {
	return s.removeEntry(studentID, func(student *models.Student) bool {
		for i, g := range student.Grades {
			if g.ID == gradeID {
				student.Grades = append(student.Grades[:i], student.Grades[i+1:]...)
				return true
			}
		}
		return false
	}, "grade not found")
}

// AddDailyLog appends a journal entry.
func (s *StudentService) AddDailyLog(ctx context.Context, studentID string, req DailyLogRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid log payload")
	}
	student, err := s.roster.GetStudent(studentID)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}
	student.DailyLogs = append(student.DailyLogs, models.DailyLog{
		ID:       uuid.NewString(),
		Date:     date,
		Category: req.Category,
		Content:  req.Content,
		Score:    req.Score,
	})
	if err := s.roster.ReplaceStudent(*student); err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

// DeleteDailyLog removes one journal entry.
func (s *StudentService) DeleteDailyLog(ctx context.Context, studentID, logID string) (*models.Student, error) {
	return s.removeEntry(studentID, func(student *models.Student) bool {
		for i, l := range student.DailyLogs {
			if l.ID == logID {
				student.DailyLogs = append(student.DailyLogs[:i], student.DailyLogs[i+1:]...)
				return true
			}
		}
		return false
	}, "log entry not found")
}

// AddComment appends a narrative comment.
func (s *StudentService) AddComment(ctx context.Context, studentID string, req CommentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid comment payload")
	}
	student, err := s.roster.GetStudent(studentID)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	source := req.Source
	if source == "" {
		source = models.SourceManual
	}
	student.Comments = append(student.Comments, models.Comment{
		ID:      uuid.NewString(),
		Content: req.Content,
		Date:    s.now(),
		Source:  source,
	})
	if err := s.roster.ReplaceStudent(*student); err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

// DeleteComment removes one comment.
func (s *StudentService) DeleteComment(ctx context.Context, studentID, commentID string) (*models.Student, error) {
	return s.removeEntry(studentID, func(student *models.Student) bool {
		for i, c := range student.Comments {
			if c.ID == commentID {
				student.Comments = append(student.Comments[:i], student.Comments[i+1:]...)
				return true
			}
		}
		return false
	}, "comment not found")
}

// SetGoals updates the target goal and historical notes.
func (s *StudentService) SetGoals(ctx context.Context, studentID string, req GoalsRequest) (*models.Student, error) {
	student, err := s.roster.GetStudent(studentID)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	student.TargetGoal = req.TargetGoal
	student.HistoricalNotes = req.HistoricalNotes
	if err := s.roster.ReplaceStudent(*student); err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

func (s *StudentService) buildGrade(req GradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	subject := req.Subject
	switch req.ExamType {
	case models.ExamMidterm, models.ExamFinal:
		subject = models.SubjectGeneral
	case models.ExamMonthly:
		if subject == "" {
			subject = models.SubjectGeneral
		}
	default:
		if subject == "" {
			subject = models.SubjectAlgebra
		}
		if subject == models.SubjectGeneral {
			return nil, appErrors.Clone(appErrors.ErrValidation, "regular assessments must name algebra or geometry")
		}
	}
	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}
	return &models.Grade{
		ID:          uuid.NewString(),
		Subject:     subject,
		ExamType:    req.ExamType,
		Coefficient: models.CoefficientFor(req.ExamType),
		Score:       req.Score,
		Date:        date,
		Note:        req.Note,
	}, nil
}

func (s *StudentService) removeEntry(studentID string, remove func(*models.Student) bool, missing string) (*models.Student, error) {
	student, err := s.roster.GetStudent(studentID)
	if err != nil {
		return nil, notFound(err, "student not found")
	}
	if !remove(student) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, missing)
	}
	if err := s.roster.ReplaceStudent(*student); err != nil {
		return nil, notFound(err, "student not found")
	}
	return student, nil
}

func notFound(err error, message string) error {
	if errors.Is(err, store.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func wrapInternal(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
