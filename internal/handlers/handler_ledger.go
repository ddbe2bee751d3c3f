package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/balanza-app/balanza/internal/apperrors"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/internal/dto"
	"github.com/balanza-app/balanza/internal/middleware"
)

// ledgerHandler handles HTTP requests related to ledger entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to ledger entries.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/companies/:companyID")
	{
		ledger.POST("/entries", h.recordEntry)
		ledger.POST("/vouchers", h.recordVoucher)
		ledger.GET("/years/:year/entries", h.listEntries)
		ledger.GET("/years/:year/history", h.monthlyHistory)
	}
}

// yearParam parses the :year path parameter.
func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, false
	}
	return year, true
}

// recordEntry godoc
// @Summary Record a ledger entry
// @Description Persists a single debit or credit entry for a company
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID}/entries [post]
func (h *ledgerHandler) recordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.RecordEntry(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// recordVoucher godoc
// @Summary Record a multi-line voucher
// @Description Persists several related entries atomically
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {array} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers [post]
func (h *ledgerHandler) recordVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entries, err := h.ledgerService.RecordVoucher(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record voucher"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryListResponse(entries))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists a company's entries for a year, optionally filtered by ?month=
// @Tags ledger
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Param   month query int false "Month (1-12)"
// @Success 200 {array} dto.EntryResponse
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	var month *int
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		month = &parsed
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), companyID, year, month)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

// monthlyHistory godoc
// @Summary Monthly ledger history
// @Description Returns the year's entries grouped by month with per-kind totals
// @Tags ledger
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Year"
// @Success 200 {array} dto.MonthlyLedgerResponse
// @Security BearerAuth
// @Router /companies/{companyID}/years/{year}/history [get]
func (h *ledgerHandler) monthlyHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	year, ok := yearParam(c)
	if !ok {
		return
	}

	months, err := h.ledgerService.MonthlyHistory(c.Request.Context(), companyID, year)
	if err != nil {
		logger.Error("Failed to load history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(months))
}
