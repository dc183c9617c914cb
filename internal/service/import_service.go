package service

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/spreadsheet"
)

// headerScanWindow bounds the search for the real header row. Official
// score sheets carry a title block and a merged group row above it, so the
// header is never the first row, but it is always near the top.
const headerScanWindow = 10

type importStore interface {
	ListStudents() []models.Student
	ApplyImport(updated, added []models.Student)
	GetClass(id string) (*models.Classroom, error)
}

// ImportResult reports how the imported rows reconciled against the roster.
type ImportResult struct {
	Updated int `json:"updated"`
	Added   int `json:"added"`
}

// ImportService turns spreadsheet rows into student records and reconciles
// them against the existing roster. Parsing failures abort the whole import
// with the roster untouched; defects in individual rows only skip that row.
type ImportService struct {
	roster importStore
	logger *zap.Logger
	now    func() time.Time
}

// NewImportService constructs an ImportService.
func NewImportService(roster importStore, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{roster: roster, logger: logger, now: time.Now}
}

// WithClock overrides the service clock; used by tests.
func (s *ImportService) WithClock(now func() time.Time) *ImportService {
	s.now = now
	return s
}

// ImportWorkbook reads an xlsx stream, builds the imported students and
// applies the reconciliation in one batch.
func (s *ImportService) ImportWorkbook(ctx context.Context, r io.Reader, classID string) (*ImportResult, error) {
	rows, err := spreadsheet.ReadRows(r)
	if err != nil {
		return nil, err
	}
	students, err := s.BuildStudents(rows, classID)
	if err != nil {
		return nil, err
	}
	return s.Reconcile(ctx, students)
}

// BuildStudents converts raw sheet rows into fully formed student records
// scoped to the target class. The header row must contain the student-code
// label within the scan window.
func (s *ImportService) BuildStudents(rows [][]string, classID string) ([]models.Student, error) {
	if classID != "" {
		if _, err := s.roster.GetClass(classID); err != nil {
			return nil, notFound(err, "target class not found")
		}
	}

	headerIdx := -1
	for i := 0; i < len(rows) && i < headerScanWindow; i++ {
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) == spreadsheet.ColStudentCode {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil, appErrors.Clone(appErrors.ErrMissingHeader, "column '"+spreadsheet.ColStudentCode+"' not found; use the standard template")
	}

	colMap := make(map[string]int)
	for idx, label := range rows[headerIdx] {
		trimmed := strings.TrimSpace(label)
		if trimmed != "" {
			colMap[trimmed] = idx
		}
	}

	importedAt := s.now()
	students := make([]models.Student, 0)
	for _, row := range rows[headerIdx+1:] {
		if len(row) == 0 {
			continue
		}
		code := strings.TrimSpace(cellAt(row, colMap, spreadsheet.ColStudentCode))
		name := strings.TrimSpace(cellAt(row, colMap, spreadsheet.ColFullName))
		if code == "" || name == "" {
			continue
		}

		grades := make([]models.Grade, 0)
		for _, label := range spreadsheet.RegularColumns {
			if g, ok := parseGrade(cellAt(row, colMap, label), models.ExamRegular, models.SubjectAlgebra, importedAt); ok {
				grades = append(grades, g)
			}
		}
		if g, ok := parseGrade(cellAt(row, colMap, spreadsheet.ColMidterm), models.ExamMidterm, models.SubjectGeneral, importedAt); ok {
			grades = append(grades, g)
		}
		if g, ok := parseGrade(cellAt(row, colMap, spreadsheet.ColFinal), models.ExamFinal, models.SubjectGeneral, importedAt); ok {
			grades = append(grades, g)
		}

		comments := make([]models.Comment, 0)
		if content := strings.TrimSpace(cellAt(row, colMap, spreadsheet.ColComment)); content != "" {
			comments = append(comments, models.Comment{
				ID:      uuid.NewString(),
				Content: content,
				Date:    importedAt,
				Source:  models.SourceManual,
			})
		}

		students = append(students, models.Student{
			ID:        code,
			Name:      name,
			ClassID:   classID,
			Grades:    grades,
			Comments:  comments,
			DailyLogs: []models.DailyLog{},
		})
	}
	return students, nil
}

// Reconcile matches imported students against the roster by id or exact
// name. Matches merge by appending imported grades and comments onto the
// existing record; the rest are inserted as a single batch. Name-only
// matching can silently merge two distinct students who share a name; that
// behaviour is inherited and deliberate, so it is logged rather than
// blocked.
func (s *ImportService) Reconcile(ctx context.Context, imported []models.Student) (*ImportResult, error) {
	existing := s.roster.ListStudents()

	pending := make(map[string]*models.Student)
	updatedOrder := make([]string, 0)
	added := make([]models.Student, 0)

	for _, inc := range imported {
		match := findMatch(existing, pending, inc)
		if match == nil {
			added = append(added, inc)
			// make the new entry matchable by later rows of this import
			existing = append(existing, inc)
			continue
		}
		if match.ID != inc.ID {
			s.logger.Warn("merging imported student by name match",
				zap.String("existing_id", match.ID),
				zap.String("imported_id", inc.ID),
				zap.String("name", inc.Name),
			)
		}
		if _, ok := pending[match.ID]; !ok {
			clone := match.Clone()
			pending[match.ID] = &clone
			updatedOrder = append(updatedOrder, match.ID)
		}
		target := pending[match.ID]
		target.Grades = append(target.Grades, inc.Grades...)
		target.Comments = append(target.Comments, inc.Comments...)
	}

	updated := make([]models.Student, 0, len(updatedOrder))
	for _, id := range updatedOrder {
		updated = append(updated, *pending[id])
	}

	// Added entries that were matched by later rows have their merged
	// grades folded in before insertion.
	for i := range added {
		if merged, ok := pending[added[i].ID]; ok {
			added[i] = *merged
		}
	}
	finalUpdated := make([]models.Student, 0, len(updated))
	addedIDs := make(map[string]bool, len(added))
	for _, a := range added {
		addedIDs[a.ID] = true
	}
	for _, u := range updated {
		if !addedIDs[u.ID] {
			finalUpdated = append(finalUpdated, u)
		}
	}

	s.roster.ApplyImport(finalUpdated, added)
	s.logger.Info("import applied",
		zap.Int("updated", len(finalUpdated)),
		zap.Int("added", len(added)),
	)
	return &ImportResult{Updated: len(finalUpdated), Added: len(added)}, nil
}

func findMatch(existing []models.Student, pending map[string]*models.Student, inc models.Student) *models.Student {
	for i := range existing {
		if existing[i].ID == inc.ID || existing[i].Name == inc.Name {
			if p, ok := pending[existing[i].ID]; ok {
				return p
			}
			return &existing[i]
		}
	}
	return nil
}

func cellAt(row []string, colMap map[string]int, label string) string {
	idx, ok := colMap[label]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseGrade(raw string, examType models.ExamType, subject models.Subject, date time.Time) (models.Grade, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Grade{}, false
	}
	score, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return models.Grade{}, false
	}
	return models.Grade{
		ID:          uuid.NewString(),
		Subject:     subject,
		ExamType:    examType,
		Coefficient: models.CoefficientFor(examType),
		Score:       score,
		Date:        date,
	}, true
}
