package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/service"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/response"
	"github.com/noah-isme/edutrack-api/pkg/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportHandler exposes spreadsheet import endpoints.
type ImportHandler struct {
	imports *service.ImportService
	metrics *service.MetricsService
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(imports *service.ImportService, metrics *service.MetricsService) *ImportHandler {
	return &ImportHandler{imports: imports, metrics: metrics}
}

// Upload godoc
// @Summary Import students and grades from an uploaded workbook
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook in xlsx format"
// @Param classId formData string false "Class to assign newly created students to"
// @Success 200 {object} response.Envelope
// @Router /import [post]
func (h *ImportHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing workbook file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, "failed to open workbook"))
		return
	}
	defer file.Close()

	result, err := h.imports.ImportWorkbook(c.Request.Context(), file, c.PostForm("classId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveStudentsImported(result.Updated + result.Added)
	}
	response.JSON(c, http.StatusOK, result)
}

// Template godoc
// @Summary Download a blank import workbook
// @Tags Import
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /import/template [get]
func (h *ImportHandler) Template(c *gin.Context) {
	payload, err := spreadsheet.WriteTemplate()
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveExport("xlsx")
	}
	c.Header("Content-Disposition", `attachment; filename="import_template.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, payload)
}
