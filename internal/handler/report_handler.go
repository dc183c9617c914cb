package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/service"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

// ReportHandler exposes export endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// SchoolCSV godoc
// @Summary Export the whole roster as CSV
// @Tags Reports
// @Produce text/csv
// @Param semester query string false "HK1, HK2 or ALL" default(ALL)
// @Success 200 {file} binary
// @Router /reports/school.csv [get]
func (h *ReportHandler) SchoolCSV(c *gin.Context) {
	sem, err := semesterQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.reports.ExportSchoolCSV(c.Request.Context(), sem)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

// ClassPDF godoc
// @Summary Export a classroom score table as PDF
// @Tags Reports
// @Produce application/pdf
// @Param id path string true "Class ID"
// @Param semester query string false "HK1, HK2 or ALL" default(ALL)
// @Success 200 {file} binary
// @Router /reports/classes/{id}/pdf [get]
func (h *ReportHandler) ClassPDF(c *gin.Context) {
	sem, err := semesterQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.reports.ExportClassPDF(c.Request.Context(), c.Param("id"), sem)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

// StudentPDF godoc
// @Summary Export a per-student report card as PDF
// @Tags Reports
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param semester query string false "HK1, HK2 or ALL" default(ALL)
// @Success 200 {file} binary
// @Router /reports/students/{id}/pdf [get]
func (h *ReportHandler) StudentPDF(c *gin.Context) {
	sem, err := semesterQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.reports.ExportStudentPDF(c.Request.Context(), c.Param("id"), sem)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

func serveExport(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
