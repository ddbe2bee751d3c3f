package domain

import (
	"github.com/shopspring/decimal"
)

// EntryKind indicates which side of the ledger an entry belongs to.
type EntryKind string

const (
	Debit  EntryKind = "DEBIT"  // "debe"
	Credit EntryKind = "CREDIT" // "haber"
)

// BaseAccountTypes is the fixed, ordered set of account types every company
// starts with. Company-specific custom types are appended after these.
var BaseAccountTypes = []string{
	"Caja",
	"Ingreso",
	"Costo",
	"IVA",
	"PPM",
	"Ajuste CF",
	"Retencion SC",
	"Honorarios",
	"Gastos Generales",
	"Cuentas Varias",
}

// LedgerEntry is a single dated debit or credit amount tagged with an account
// type. Entries are immutable once recorded.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"`
	Year        int             `json:"year"`
	Month       int             `json:"month"` // 1..12
	AccountType string          `json:"accountType"`
	Detail      string          `json:"detail"`    // Free-text description ("detalle")
	Reference   string          `json:"reference"` // Document/control number
	Amount      decimal.Decimal `json:"amount"`    // Non-negative
	Kind        EntryKind       `json:"kind"`
	AuditFields
}

// ParseAmount coerces a raw amount into a decimal. The upstream store held
// amounts as loose number-or-string values; anything non-numeric counts as
// zero rather than an error.
func ParseAmount(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// KindSums holds the running debit and credit sums for one account type.
type KindSums struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TypeTotals maps every known account type of a company to its debit/credit
// sums for one year. Types keeps the registry order so derived rows are
// stable regardless of data sparsity.
type TypeTotals struct {
	Types []string
	Sums  map[string]KindSums
}

// NewTypeTotals builds a zero-initialized TypeTotals covering every known
// type. Every type gets a row even if no entry references it.
func NewTypeTotals(types []string) TypeTotals {
	totals := TypeTotals{
		Types: make([]string, len(types)),
		Sums:  make(map[string]KindSums, len(types)),
	}
	copy(totals.Types, types)
	for _, t := range types {
		totals.Sums[t] = KindSums{Debit: decimal.Zero, Credit: decimal.Zero}
	}
	return totals
}

// Add folds one entry amount into the matching kind's sum. Entries whose
// account type is not part of the known set are dropped.
func (t TypeTotals) Add(accountType string, kind EntryKind, amount decimal.Decimal) {
	sums, ok := t.Sums[accountType]
	if !ok {
		return
	}
	switch kind {
	case Debit:
		sums.Debit = sums.Debit.Add(amount)
	case Credit:
		sums.Credit = sums.Credit.Add(amount)
	}
	t.Sums[accountType] = sums
}
