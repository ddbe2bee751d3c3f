package domain

import (
	"github.com/shopspring/decimal"
)

// Category is one of the four balance-sheet columns an account type can be
// assigned to. Values match the persisted categorization document.
type Category string

const (
	CategoryAsset     Category = "asset"     // "activo"
	CategoryLiability Category = "liability" // "pasivo"
	CategoryLoss      Category = "loss"      // "perdidas"
	CategoryGain      Category = "gain"      // "ganancias"
)

// IsValid reports whether c is one of the four known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAsset, CategoryLiability, CategoryLoss, CategoryGain:
		return true
	}
	return false
}

// CategoryAssignment maps account types to their assigned category. Types
// without an assignment simply do not appear.
type CategoryAssignment map[string]Category

// RowKind distinguishes data rows from the derived summary rows.
type RowKind string

const (
	RowData    RowKind = "data"
	RowBlank   RowKind = "blank"
	RowSums    RowKind = "sums"
	RowUtility RowKind = "utility"
	RowTotals  RowKind = "totals"
)

// Labels for the derived rows, kept in the ledger's original language since
// they are user-facing sheet content, not identifiers.
const (
	labelSums    = "SUMAS"
	labelUtility = "UTILIDAD DEL EJERCICIO"
	labelTotals  = "TOTALES"
)

// BalanceRow is one line of the balance sheet. For data rows exactly one of
// DebtorBalance/CreditorBalance is non-zero, and at most one of the four
// category columns carries that balance's magnitude.
type BalanceRow struct {
	Type            string          `json:"type"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	DebtorBalance   decimal.Decimal `json:"debtorBalance"`
	CreditorBalance decimal.Decimal `json:"creditorBalance"`
	Asset           decimal.Decimal `json:"asset"`
	Liability       decimal.Decimal `json:"liability"`
	Loss            decimal.Decimal `json:"loss"`
	Gain            decimal.Decimal `json:"gain"`
	Kind            RowKind         `json:"rowKind"`
}

// BalanceMagnitude returns whichever of the debtor/creditor balance is
// non-zero. Zero-balance rows return zero.
func (r BalanceRow) BalanceMagnitude() decimal.Decimal {
	if r.DebtorBalance.IsPositive() {
		return r.DebtorBalance
	}
	return r.CreditorBalance
}

// AssignedCategory returns the single category column currently holding the
// row's balance, if any. By construction at most one can be non-zero.
func (r BalanceRow) AssignedCategory() (Category, bool) {
	switch {
	case r.Asset.IsPositive():
		return CategoryAsset, true
	case r.Liability.IsPositive():
		return CategoryLiability, true
	case r.Loss.IsPositive():
		return CategoryLoss, true
	case r.Gain.IsPositive():
		return CategoryGain, true
	}
	return "", false
}

func (r *BalanceRow) clearCategories() {
	r.Asset = decimal.Zero
	r.Liability = decimal.Zero
	r.Loss = decimal.Zero
	r.Gain = decimal.Zero
}

func (r *BalanceRow) setCategory(category Category, value decimal.Decimal) {
	switch category {
	case CategoryAsset:
		r.Asset = value
	case CategoryLiability:
		r.Liability = value
	case CategoryLoss:
		r.Loss = value
	case CategoryGain:
		r.Gain = value
	}
}

// BalanceSheet is the ordered derived view for one company/year: one data row
// per known account type, a blank separator, then SUMAS, UTILIDAD and TOTALES.
type BalanceSheet struct {
	CompanyID string       `json:"companyID"`
	Year      int          `json:"year"`
	Rows      []BalanceRow `json:"rows"`
}

// DataRowCount returns the number of leading data rows.
func (s BalanceSheet) DataRowCount() int {
	n := 0
	for _, row := range s.Rows {
		if row.Kind == RowData {
			n++
		}
	}
	return n
}

// Assignment derives the categorization from the sheet's data rows: for each
// row the single non-zero category column, skipping uncategorized rows.
func (s BalanceSheet) Assignment() CategoryAssignment {
	assignment := make(CategoryAssignment)
	for _, row := range s.Rows {
		if row.Kind != RowData {
			continue
		}
		if category, ok := row.AssignedCategory(); ok {
			assignment[row.Type] = category
		}
	}
	return assignment
}

// ComputeSheet builds the full balance sheet from aggregated totals and a
// saved categorization. It is pure: repeated calls with the same inputs yield
// identical sheets.
func ComputeSheet(companyID string, year int, totals TypeTotals, assignment CategoryAssignment) BalanceSheet {
	rows := make([]BalanceRow, 0, len(totals.Types)+4)
	for _, accountType := range totals.Types {
		sums := totals.Sums[accountType]
		row := BalanceRow{
			Type:            accountType,
			Debit:           sums.Debit,
			Credit:          sums.Credit,
			DebtorBalance:   decimal.Zero,
			CreditorBalance: decimal.Zero,
			Kind:            RowData,
		}
		saldo := sums.Debit.Sub(sums.Credit)
		if saldo.IsPositive() {
			row.DebtorBalance = saldo
		} else if saldo.IsNegative() {
			row.CreditorBalance = saldo.Abs()
		}
		row.clearCategories()
		if category, ok := assignment[accountType]; ok && category.IsValid() {
			row.setCategory(category, row.BalanceMagnitude())
		}
		rows = append(rows, row)
	}

	sheet := BalanceSheet{CompanyID: companyID, Year: year, Rows: rows}
	sheet.Rows = appendSummaryRows(sheet.Rows)
	return sheet
}

// Reassign returns a copy of the sheet with the row at rowIndex moved to the
// given category (or cleared when category is empty) and all summary rows
// recomputed from scratch. Reassigning a special row is a no-op. The result
// is identical to a fresh ComputeSheet with the updated assignment.
func Reassign(sheet BalanceSheet, rowIndex int, category Category) BalanceSheet {
	if rowIndex < 0 || rowIndex >= len(sheet.Rows) {
		return sheet
	}
	if sheet.Rows[rowIndex].Kind != RowData {
		return sheet
	}

	rows := make([]BalanceRow, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row.Kind == RowData {
			rows = append(rows, row)
		}
	}

	rows[rowIndex].clearCategories()
	if category.IsValid() {
		rows[rowIndex].setCategory(category, rows[rowIndex].BalanceMagnitude())
	}

	return BalanceSheet{
		CompanyID: sheet.CompanyID,
		Year:      sheet.Year,
		Rows:      appendSummaryRows(rows),
	}
}

// appendSummaryRows appends the blank separator, SUMAS, UTILIDAD and TOTALES
// rows derived from the given data rows. Summary rows are always recomputed
// from scratch, never patched incrementally, so an edited sheet cannot drift
// from a full rebuild.
func appendSummaryRows(dataRows []BalanceRow) []BalanceRow {
	sums := BalanceRow{Type: labelSums, Kind: RowSums}
	sums.Debit = decimal.Zero
	sums.Credit = decimal.Zero
	sums.DebtorBalance = decimal.Zero
	sums.CreditorBalance = decimal.Zero
	sums.clearCategories()
	for _, row := range dataRows {
		sums.Debit = sums.Debit.Add(row.Debit)
		sums.Credit = sums.Credit.Add(row.Credit)
		sums.DebtorBalance = sums.DebtorBalance.Add(row.DebtorBalance)
		sums.CreditorBalance = sums.CreditorBalance.Add(row.CreditorBalance)
		sums.Asset = sums.Asset.Add(row.Asset)
		sums.Liability = sums.Liability.Add(row.Liability)
		sums.Loss = sums.Loss.Add(row.Loss)
		sums.Gain = sums.Gain.Add(row.Gain)
	}

	// Period result closes against the opposite side: a net gain posts to
	// liability/loss, a net loss posts to asset/gain.
	diferencia := sums.Gain.Sub(sums.Loss)
	utility := BalanceRow{Type: labelUtility, Kind: RowUtility}
	utility.Debit = decimal.Zero
	utility.Credit = decimal.Zero
	utility.DebtorBalance = decimal.Zero
	utility.CreditorBalance = decimal.Zero
	utility.clearCategories()
	if diferencia.IsNegative() {
		utility.Asset = diferencia.Abs()
		utility.Gain = diferencia.Abs()
	} else if diferencia.IsPositive() {
		utility.Liability = diferencia
		utility.Loss = diferencia
	}

	totals := BalanceRow{
		Type:            labelTotals,
		Debit:           sums.Debit,
		Credit:          sums.Credit,
		DebtorBalance:   sums.DebtorBalance,
		CreditorBalance: sums.CreditorBalance,
		Asset:           sums.Asset.Add(utility.Asset),
		Liability:       sums.Liability.Add(utility.Liability),
		Loss:            sums.Loss.Add(utility.Loss),
		Gain:            sums.Gain.Add(utility.Gain),
		Kind:            RowTotals,
	}

	blank := BalanceRow{Kind: RowBlank}
	blank.Debit = decimal.Zero
	blank.Credit = decimal.Zero
	blank.DebtorBalance = decimal.Zero
	blank.CreditorBalance = decimal.Zero
	blank.clearCategories()

	return append(dataRows, blank, sums, utility, totals)
}
