package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/service"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param classId query string false "Filter by class"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students := h.students.List(c.Request.Context(), c.Query("classId"))
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get student detail
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Create godoc
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Update student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.UpdateStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req service.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddGrade godoc
// @Summary Record a grade for a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.GradeRequest true "Grade payload"
// @Success 201 {object} response.Envelope
// @Router /students/{id}/grades [post]
func (h *StudentHandler) AddGrade(c *gin.Context) {
	var req service.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.AddGrade(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// UpdateGrade godoc
// @Summary Update an existing grade
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param gradeId path string true "Grade ID"
// @Param payload body service.GradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/grades/{gradeId} [put]
func (h *StudentHandler) UpdateGrade(c *gin.Context) {
	var req service.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.UpdateGrade(c.Request.Context(), c.Param("id"), c.Param("gradeId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// DeleteGrade godoc
// @Summary Remove a grade
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Param gradeId path string true "Grade ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/grades/{gradeId} [delete]
func (h *StudentHandler) DeleteGrade(c *gin.Context) {
	student, err := h.students.DeleteGrade(c.Request.Context(), c.Param("id"), c.Param("gradeId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// AddDailyLog godoc
// @Summary Record a daily observation log
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.DailyLogRequest true "Log payload"
// @Success 201 {object} response.Envelope
// @Router /students/{id}/logs [post]
func (h *StudentHandler) AddDailyLog(c *gin.Context) {
	var req service.DailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.AddDailyLog(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// DeleteDailyLog godoc
// @Summary Remove a daily log entry
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Param logId path string true "Log ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/logs/{logId} [delete]
func (h *StudentHandler) DeleteDailyLog(c *gin.Context) {
	student, err := h.students.DeleteDailyLog(c.Request.Context(), c.Param("id"), c.Param("logId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// AddComment godoc
// @Summary Record a comment for a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.CommentRequest true "Comment payload"
// @Success 201 {object} response.Envelope
// @Router /students/{id}/comments [post]
func (h *StudentHandler) AddComment(c *gin.Context) {
	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.AddComment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// DeleteComment godoc
// @Summary Remove a comment
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/comments/{commentId} [delete]
func (h *StudentHandler) DeleteComment(c *gin.Context) {
	student, err := h.students.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// SetGoals godoc
// @Summary Set the target goal and historical notes
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.GoalsRequest true "Goals payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/goals [put]
func (h *StudentHandler) SetGoals(c *gin.Context) {
	var req service.GoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.SetGoals(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}
