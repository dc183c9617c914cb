package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type classStore interface {
	ListClasses() []models.Classroom
	GetClass(id string) (*models.Classroom, error)
	AddClass(class models.Classroom)
	ReplaceClass(class models.Classroom) error
	DeleteClassCascade(classID string) (int, error)
	StudentsByClass(classID string) []models.Student
}

// ClassRequest carries classroom create/update payloads.
type ClassRequest struct {
	Name       string `json:"name" validate:"required"`
	GradeLevel string `json:"grade_level" validate:"required"`
	Year       string `json:"year" validate:"required"`
}

// DeletionImpact describes what confirming a class deletion would do. The
// request step never mutates; the caller shows the impact and then calls
// ConfirmDeletion.
type DeletionImpact struct {
	ClassID          string   `json:"class_id"`
	ClassName        string   `json:"class_name"`
	AffectedStudents []string `json:"affected_students"`
}

// DeletionResult reports the executed cascade.
type DeletionResult struct {
	ClassID            string `json:"class_id"`
	StudentsUnassigned int    `json:"students_unassigned"`
}

// ClassService manages classrooms. Deleting a classroom never deletes
// students; members transition to the unassigned state atomically.
type ClassService struct {
	roster    classStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(roster classStore, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{roster: roster, validator: validate, logger: logger}
}

// List returns all classrooms.
func (s *ClassService) List(ctx context.Context) []models.Classroom {
	return s.roster.ListClasses()
}

// Get returns one classroom.
func (s *ClassService) Get(ctx context.Context, id string) (*models.Classroom, error) {
	class, err := s.roster.GetClass(id)
	if err != nil {
		return nil, notFound(err, "class not found")
	}
	return class, nil
}

// Create adds a classroom.
func (s *ClassService) Create(ctx context.Context, req ClassRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	class := models.Classroom{
		ID:         uuid.NewString(),
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
		Year:       req.Year,
	}
	s.roster.AddClass(class)
	s.logger.Info("class created", zap.String("class_id", class.ID))
	return &class, nil
}

// Update replaces a classroom's fields.
func (s *ClassService) Update(ctx context.Context, id string, req ClassRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	class, err := s.roster.GetClass(id)
	if err != nil {
		return nil, notFound(err, "class not found")
	}
	class.Name = req.Name
	class.GradeLevel = req.GradeLevel
	class.Year = req.Year
	if err := s.roster.ReplaceClass(*class); err != nil {
		return nil, notFound(err, "class not found")
	}
	return class, nil
}

// RequestDeletion reports the cascade a deletion would cause without
// performing it.
func (s *ClassService) RequestDeletion(ctx context.Context, id string) (*DeletionImpact, error) {
	class, err := s.roster.GetClass(id)
	if err != nil {
		return nil, notFound(err, "class not found")
	}
	members := s.roster.StudentsByClass(id)
	affected := make([]string, 0, len(members))
	for _, m := range members {
		affected = append(affected, m.ID)
	}
	return &DeletionImpact{ClassID: class.ID, ClassName: class.Name, AffectedStudents: affected}, nil
}

// ConfirmDeletion removes the classroom and unassigns its members in one
// atomic store operation.
func (s *ClassService) ConfirmDeletion(ctx context.Context, id string) (*DeletionResult, error) {
	affected, err := s.roster.DeleteClassCascade(id)
	if err != nil {
		return nil, notFound(err, "class not found")
	}
	s.logger.Info("class deleted",
		zap.String("class_id", id),
		zap.Int("students_unassigned", affected),
	)
	return &DeletionResult{ClassID: id, StudentsUnassigned: affected}, nil
}
