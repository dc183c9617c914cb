package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type templateStore interface {
	ListTemplates() []models.CommentTemplate
	AddTemplate(tpl models.CommentTemplate)
	ReplaceTemplate(tpl models.CommentTemplate) error
	DeleteTemplate(id string) error
}

// TemplateRequest carries comment-template payloads.
type TemplateRequest struct {
	Keyword  string `json:"keyword" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
}

// TemplateService manages reusable comment snippets. Templates are only
// copy source text; nothing references them by id.
type TemplateService struct {
	roster    templateStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTemplateService constructs a TemplateService.
func NewTemplateService(roster templateStore, validate *validator.Validate, logger *zap.Logger) *TemplateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateService{roster: roster, validator: validate, logger: logger}
}

// List returns all templates.
func (s *TemplateService) List(ctx context.Context) []models.CommentTemplate {
	return s.roster.ListTemplates()
}

// Create adds a template.
func (s *TemplateService) Create(ctx context.Context, req TemplateRequest) (*models.CommentTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid template payload")
	}
	tpl := models.CommentTemplate{
		ID:       uuid.NewString(),
		Keyword:  req.Keyword,
		Content:  req.Content,
		Category: req.Category,
	}
	s.roster.AddTemplate(tpl)
	return &tpl, nil
}

// Update replaces a template's fields.
func (s *TemplateService) Update(ctx context.Context, id string, req TemplateRequest) (*models.CommentTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid template payload")
	}
	tpl := models.CommentTemplate{ID: id, Keyword: req.Keyword, Content: req.Content, Category: req.Category}
	if err := s.roster.ReplaceTemplate(tpl); err != nil {
		return nil, notFound(err, "template not found")
	}
	return &tpl, nil
}

// Delete removes a template.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.roster.DeleteTemplate(id); err != nil {
		return notFound(err, "template not found")
	}
	return nil
}
