package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/balanza-app/balanza/internal/apperrors"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/internal/middleware"
	"github.com/balanza-app/balanza/internal/observability/metrics"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// exportHandler handles balance sheet export requests.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers routes related to balance exports.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	export := rg.Group("/companies/:companyID/years/:year/balance/export")
	{
		export.GET("/xlsx", h.exportXLSX)
		export.GET("/pdf", h.exportPDF)
		export.POST("/sheets", h.pushToGoogleSheet)
	}
}

// exportXLSX godoc
// @Summary Export the balance sheet as XLSX
// @Tags export
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/balance/export/xlsx [get]
func (h *exportHandler) exportXLSX(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	data, filename, err := h.exportService.ExportXLSX(c.Request.Context(), companyID, year)
	metrics.ObserveExport("xlsx", err)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else {
			logger.Error("Failed to export xlsx", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export balance sheet"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

// exportPDF godoc
// @Summary Export the balance sheet as PDF
// @Tags export
// @Produce  application/pdf
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/balance/export/pdf [get]
func (h *exportHandler) exportPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	data, filename, err := h.exportService.ExportPDF(c.Request.Context(), companyID, year)
	metrics.ObserveExport("pdf", err)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else {
			logger.Error("Failed to export pdf", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export balance sheet"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypePDF, data)
}

// pushToGoogleSheet godoc
// @Summary Push the balance sheet to Google Sheets
// @Description Writes the computed sheet into the configured spreadsheet and returns the tab title
// @Tags export
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Sheets export not configured"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/balance/export/sheets [post]
func (h *exportHandler) pushToGoogleSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	title, err := h.exportService.PushToGoogleSheet(c.Request.Context(), companyID, year)
	metrics.ObserveExport("sheets", err)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to push to google sheets", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to push balance sheet"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sheetTitle": title})
}
