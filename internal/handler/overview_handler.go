package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/service"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

// StudentOverview bundles the aggregate views for a single student.
type StudentOverview struct {
	StudentID string                   `json:"studentId"`
	Semester  models.Semester          `json:"semester"`
	Average   float64                  `json:"average"`
	Subjects  []service.SubjectAverage `json:"subjects"`
	Trend     []service.TrendPoint     `json:"trend"`
}

// OverviewHandler exposes aggregation and suggestion endpoints.
type OverviewHandler struct {
	students    *service.StudentService
	agg         *service.AggregateService
	suggestions *service.SuggestionService
}

// NewOverviewHandler constructs OverviewHandler.
func NewOverviewHandler(students *service.StudentService, agg *service.AggregateService, suggestions *service.SuggestionService) *OverviewHandler {
	return &OverviewHandler{students: students, agg: agg, suggestions: suggestions}
}

// StudentOverview godoc
// @Summary Weighted average, per-subject breakdown and score trend for a student
// @Tags Overview
// @Produce json
// @Param id path string true "Student ID"
// @Param semester query string false "HK1, HK2 or ALL" default(ALL)
// @Success 200 {object} response.Envelope
// @Router /students/{id}/overview [get]
func (h *OverviewHandler) StudentOverview(c *gin.Context) {
	sem, err := semesterQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	grades := h.agg.FilterBySemester(student.Grades, sem)
	overview := StudentOverview{
		StudentID: student.ID,
		Semester:  sem,
		Average:   h.agg.WeightedAverage(grades),
		Subjects:  h.agg.SubjectBreakdown(grades),
		Trend:     h.agg.TrendSeries(grades),
	}
	response.JSON(c, http.StatusOK, overview)
}

// Suggestions godoc
// @Summary Students who most need attention today
// @Tags Overview
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /suggestions [get]
func (h *OverviewHandler) Suggestions(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.suggestions.Suggest(c.Request.Context(), time.Now()))
}

func semesterQuery(c *gin.Context) (models.Semester, error) {
	sem := models.Semester(c.DefaultQuery("semester", string(models.SemesterAll)))
	if !sem.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, "semester must be HK1, HK2 or ALL")
	}
	return sem, nil
}
