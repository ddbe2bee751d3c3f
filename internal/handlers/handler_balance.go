package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/internal/dto"
	"github.com/balanza-app/balanza/internal/middleware"
	"github.com/balanza-app/balanza/internal/observability/metrics"
)

// balanceHandler handles HTTP requests for the annual balance sheet.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// RegisterBalanceRoutes registers routes related to balance sheets.
func RegisterBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balance := rg.Group("/companies/:companyID/years/:year/balance")
	{
		balance.GET("", h.getBalanceSheet)
		balance.PUT("/rows/:rowIndex/category", h.reassignRow)
		balance.PUT("/categories", h.saveCategorization)
	}
}

// getBalanceSheet godoc
// @Summary Build the annual balance sheet
// @Description Aggregates the year's entries per account type, applies the saved categorization and derives SUMAS, UTILIDAD and TOTALES rows
// @Tags balance
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Success 200 {object} dto.BalanceSheetResponse
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/balance [get]
func (h *balanceHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	start := time.Now()
	sheet, err := h.balanceService.BuildBalanceSheet(c.Request.Context(), companyID, year)
	metrics.ObserveBalanceBuild(err, time.Since(start).Seconds())
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// reassignRow godoc
// @Summary Reassign a balance row's category
// @Description Moves the data row at rowIndex to the given category (empty clears it) and recomputes the summary rows. Nothing is persisted until the categorization is saved.
// @Tags balance
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Param   rowIndex path int true "Row index"
// @Param   body body dto.ReassignRowRequest true "Target category"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/balance/rows/{rowIndex}/category [put]
func (h *balanceHandler) reassignRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	rowIndex, err := strconv.Atoi(c.Param("rowIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row index"})
		return
	}

	var req dto.ReassignRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sheet, err := h.balanceService.ReassignRow(c.Request.Context(), companyID, year, rowIndex, domain.Category(req.Category))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to reassign row", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reassign row"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// saveCategorization godoc
// @Summary Save the balance categorization
// @Description Persists the account-type categorization for a company/year. Repeated saves are idempotent.
// @Tags balance
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Param   body body dto.SaveCategorizationRequest true "Categorization"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/balance/categories [put]
func (h *balanceHandler) saveCategorization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	var req dto.SaveCategorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.balanceService.SaveCategorization(c.Request.Context(), companyID, year, req.ToAssignment()); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save categorization", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save categorization"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
