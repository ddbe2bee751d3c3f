package dto

import (
	"github.com/balanza-app/balanza/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines one debit or credit ledger entry. Amount arrives
// as a string because the legacy data path allowed loose number-or-string
// values; non-numeric amounts are coerced to zero, not rejected.
type CreateEntryRequest struct {
	Year        int              `json:"year" binding:"required,min=1900,max=2200"`
	Month       int              `json:"month" binding:"required,min=1,max=12"`
	AccountType string           `json:"accountType" binding:"required"`
	Detail      string           `json:"detail"`
	Reference   string           `json:"reference"`
	Amount      string           `json:"amount" binding:"required"`
	Kind        domain.EntryKind `json:"kind" binding:"required,entrykind"`
}

// VoucherLine is one line of a multi-line voucher.
type VoucherLine struct {
	AccountType string           `json:"accountType" binding:"required"`
	Detail      string           `json:"detail"`
	Reference   string           `json:"reference"`
	Amount      string           `json:"amount" binding:"required"`
	Kind        domain.EntryKind `json:"kind" binding:"required,entrykind"`
}

// CreateVoucherRequest records several related lines at once, mirroring the
// combined debit/credit entry form.
type CreateVoucherRequest struct {
	Year  int           `json:"year" binding:"required,min=1900,max=2200"`
	Month int           `json:"month" binding:"required,min=1,max=12"`
	Lines []VoucherLine `json:"lines" binding:"required,min=1,dive"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID     string           `json:"entryID"`
	CompanyID   string           `json:"companyID"`
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	AccountType string           `json:"accountType"`
	Detail      string           `json:"detail"`
	Reference   string           `json:"reference"`
	Amount      decimal.Decimal  `json:"amount"`
	Kind        domain.EntryKind `json:"kind"`
}

// ToEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToEntryResponse(entry *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:     entry.EntryID,
		CompanyID:   entry.CompanyID,
		Year:        entry.Year,
		Month:       entry.Month,
		AccountType: entry.AccountType,
		Detail:      entry.Detail,
		Reference:   entry.Reference,
		Amount:      entry.Amount,
		Kind:        entry.Kind,
	}
}

// ToEntryListResponse converts a list of entries.
func ToEntryListResponse(entries []domain.LedgerEntry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}

// MonthlyLedgerResponse is one month's history block.
type MonthlyLedgerResponse struct {
	Month       int             `json:"month"`
	MonthName   string          `json:"monthName"`
	Entries     []EntryResponse `json:"entries"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
}

// ToHistoryResponse converts grouped months to their response DTOs.
func ToHistoryResponse(months []domain.MonthlyLedger) []MonthlyLedgerResponse {
	out := make([]MonthlyLedgerResponse, len(months))
	for i, month := range months {
		out[i] = MonthlyLedgerResponse{
			Month:       month.Month,
			MonthName:   month.MonthName,
			Entries:     ToEntryListResponse(month.Entries),
			DebitTotal:  month.DebitTotal,
			CreditTotal: month.CreditTotal,
		}
	}
	return out
}
