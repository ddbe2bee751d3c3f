package dto

import (
	"github.com/balanza-app/balanza/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceRowResponse is one rendered row of the balance sheet.
type BalanceRowResponse struct {
	Type            string          `json:"type"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	DebtorBalance   decimal.Decimal `json:"debtorBalance"`
	CreditorBalance decimal.Decimal `json:"creditorBalance"`
	Asset           decimal.Decimal `json:"asset"`
	Liability       decimal.Decimal `json:"liability"`
	Loss            decimal.Decimal `json:"loss"`
	Gain            decimal.Decimal `json:"gain"`
	RowKind         string          `json:"rowKind"`
}

// BalanceSheetResponse is the full sheet handed to rendering/export clients.
type BalanceSheetResponse struct {
	CompanyID string               `json:"companyID"`
	Year      int                  `json:"year"`
	Rows      []BalanceRowResponse `json:"rows"`
}

// ReassignRowRequest moves a data row to a category; empty clears it.
type ReassignRowRequest struct {
	Category string `json:"category" binding:"balancecategory"`
}

// CategoryAssignmentEntry is one persisted type/category pair.
type CategoryAssignmentEntry struct {
	Type     string `json:"type" binding:"required"`
	Category string `json:"category" binding:"required,oneof=asset liability loss gain"`
}

// SaveCategorizationRequest persists the sheet's categorization.
type SaveCategorizationRequest struct {
	Categories []CategoryAssignmentEntry `json:"categories" binding:"dive"`
}

// ToAssignment converts the request body to a domain CategoryAssignment.
func (r SaveCategorizationRequest) ToAssignment() domain.CategoryAssignment {
	assignment := make(domain.CategoryAssignment, len(r.Categories))
	for _, entry := range r.Categories {
		assignment[entry.Type] = domain.Category(entry.Category)
	}
	return assignment
}

// ToBalanceSheetResponse converts a domain sheet to its response DTO.
func ToBalanceSheetResponse(sheet *domain.BalanceSheet) BalanceSheetResponse {
	response := BalanceSheetResponse{
		CompanyID: sheet.CompanyID,
		Year:      sheet.Year,
		Rows:      make([]BalanceRowResponse, len(sheet.Rows)),
	}
	for i, row := range sheet.Rows {
		response.Rows[i] = BalanceRowResponse{
			Type:            row.Type,
			Debit:           row.Debit,
			Credit:          row.Credit,
			DebtorBalance:   row.DebtorBalance,
			CreditorBalance: row.CreditorBalance,
			Asset:           row.Asset,
			Liability:       row.Liability,
			Loss:            row.Loss,
			Gain:            row.Gain,
			RowKind:         string(row.Kind),
		}
	}
	return response
}
