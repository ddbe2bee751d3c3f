package domain

import "github.com/shopspring/decimal"

// SpanishMonths maps month numbers to the display names used across the tool.
var SpanishMonths = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish display name for a 1..12 month number, or an
// empty string for anything out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return SpanishMonths[month-1]
}

// MonthlyLedger groups one month's entries with their per-kind totals, for
// the history view.
type MonthlyLedger struct {
	Month       int             `json:"month"`
	MonthName   string          `json:"monthName"`
	Entries     []LedgerEntry   `json:"entries"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
}

// GroupEntriesByMonth buckets entries into the twelve months of the year,
// skipping empty months, preserving entry order within each month.
func GroupEntriesByMonth(entries []LedgerEntry) []MonthlyLedger {
	byMonth := make(map[int][]LedgerEntry)
	for _, entry := range entries {
		byMonth[entry.Month] = append(byMonth[entry.Month], entry)
	}

	var months []MonthlyLedger
	for month := 1; month <= 12; month++ {
		monthEntries, ok := byMonth[month]
		if !ok {
			continue
		}
		group := MonthlyLedger{
			Month:       month,
			MonthName:   MonthName(month),
			Entries:     monthEntries,
			DebitTotal:  decimal.Zero,
			CreditTotal: decimal.Zero,
		}
		for _, entry := range monthEntries {
			switch entry.Kind {
			case Debit:
				group.DebitTotal = group.DebitTotal.Add(entry.Amount)
			case Credit:
				group.CreditTotal = group.CreditTotal.Add(entry.Amount)
			}
		}
		months = append(months, group)
	}
	return months
}
