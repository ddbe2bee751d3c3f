package domain_test

import (
	"testing"

	"github.com/balanza-app/balanza/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func totalsFor(t *testing.T, entries map[string][2]int64, types ...string) domain.TypeTotals {
	t.Helper()
	totals := domain.NewTypeTotals(types)
	for accountType, sums := range entries {
		totals.Add(accountType, domain.Debit, dec(sums[0]))
		totals.Add(accountType, domain.Credit, dec(sums[1]))
	}
	return totals
}

func rowByType(t *testing.T, sheet domain.BalanceSheet, accountType string) domain.BalanceRow {
	t.Helper()
	for _, row := range sheet.Rows {
		if row.Kind == domain.RowData && row.Type == accountType {
			return row
		}
	}
	t.Fatalf("row %q not found", accountType)
	return domain.BalanceRow{}
}

func summaryRow(t *testing.T, sheet domain.BalanceSheet, kind domain.RowKind) domain.BalanceRow {
	t.Helper()
	for _, row := range sheet.Rows {
		if row.Kind == kind {
			return row
		}
	}
	t.Fatalf("summary row %q not found", kind)
	return domain.BalanceRow{}
}

func TestComputeSheet_DebtorCreditorSplit(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja": {1000, 400},
	}, "Caja", "Ingreso")

	sheet := domain.ComputeSheet("c1", 2024, totals, nil)

	caja := rowByType(t, sheet, "Caja")
	assert.True(t, caja.Debit.Equal(dec(1000)))
	assert.True(t, caja.Credit.Equal(dec(400)))
	assert.True(t, caja.DebtorBalance.Equal(dec(600)))
	assert.True(t, caja.CreditorBalance.IsZero())

	// Types with no entries still get a zeroed row.
	ingreso := rowByType(t, sheet, "Ingreso")
	assert.True(t, ingreso.Debit.IsZero())
	assert.True(t, ingreso.DebtorBalance.IsZero())
	assert.True(t, ingreso.CreditorBalance.IsZero())
}

func TestComputeSheet_RowSetIsStableAndOrdered(t *testing.T) {
	totals := totalsFor(t, nil, "Caja", "Ingreso", "Costo", "Bodega")
	sheet := domain.ComputeSheet("c1", 2024, totals, nil)

	require.Len(t, sheet.Rows, 8) // 4 data + blank + sums + utility + totals
	assert.Equal(t, "Caja", sheet.Rows[0].Type)
	assert.Equal(t, "Bodega", sheet.Rows[3].Type)
	assert.Equal(t, domain.RowBlank, sheet.Rows[4].Kind)
	assert.Equal(t, domain.RowSums, sheet.Rows[5].Kind)
	assert.Equal(t, domain.RowUtility, sheet.Rows[6].Kind)
	assert.Equal(t, domain.RowTotals, sheet.Rows[7].Kind)
}

func TestComputeSheet_NeverBothBalances(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja":    {1000, 400},
		"Ingreso": {0, 500},
		"Costo":   {250, 250},
	}, "Caja", "Ingreso", "Costo")

	sheet := domain.ComputeSheet("c1", 2024, totals, nil)
	for _, row := range sheet.Rows {
		if row.Kind != domain.RowData {
			continue
		}
		assert.True(t, row.DebtorBalance.IsZero() || row.CreditorBalance.IsZero(),
			"row %s has both balances set", row.Type)
	}
}

func TestComputeSheet_SumsRow(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja":    {1000, 400},
		"Ingreso": {0, 500},
	}, "Caja", "Ingreso")

	sheet := domain.ComputeSheet("c1", 2024, totals, domain.CategoryAssignment{
		"Caja": domain.CategoryAsset,
	})

	sums := summaryRow(t, sheet, domain.RowSums)
	assert.True(t, sums.Debit.Equal(dec(1000)))
	assert.True(t, sums.Credit.Equal(dec(900)))
	assert.True(t, sums.DebtorBalance.Equal(dec(600)))
	assert.True(t, sums.CreditorBalance.Equal(dec(500)))
	assert.True(t, sums.Asset.Equal(dec(600)))
	assert.True(t, sums.Liability.IsZero())
}

func TestComputeSheet_AssetAssignmentScenario(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja": {1000, 400},
	}, "Caja")

	sheet := domain.ComputeSheet("c1", 2024, totals, domain.CategoryAssignment{
		"Caja": domain.CategoryAsset,
	})

	caja := rowByType(t, sheet, "Caja")
	assert.True(t, caja.Asset.Equal(dec(600)))

	sums := summaryRow(t, sheet, domain.RowSums)
	assert.True(t, sums.Asset.Equal(dec(600)))

	// No gains or losses categorized, so the utility row stays zero and
	// TOTALES carries the asset total through unchanged.
	utility := summaryRow(t, sheet, domain.RowUtility)
	assert.True(t, utility.Asset.IsZero())
	assert.True(t, utility.Liability.IsZero())

	totalsRow := summaryRow(t, sheet, domain.RowTotals)
	assert.True(t, totalsRow.Asset.Equal(dec(600)))
}

func TestComputeSheet_UtilityCrossPosting(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Ingreso": {0, 500},
		"Costo":   {200, 0},
	}, "Ingreso", "Costo")

	sheet := domain.ComputeSheet("c1", 2024, totals, domain.CategoryAssignment{
		"Ingreso": domain.CategoryGain,
		"Costo":   domain.CategoryLoss,
	})

	// diferencia = 500 - 200 = 300 > 0: net gain posts to liability and loss.
	utility := summaryRow(t, sheet, domain.RowUtility)
	assert.True(t, utility.Liability.Equal(dec(300)))
	assert.True(t, utility.Loss.Equal(dec(300)))
	assert.True(t, utility.Asset.IsZero())
	assert.True(t, utility.Gain.IsZero())

	totalsRow := summaryRow(t, sheet, domain.RowTotals)
	assert.True(t, totalsRow.Liability.Equal(dec(300)))
	assert.True(t, totalsRow.Loss.Equal(dec(500)))
	assert.True(t, totalsRow.Gain.Equal(dec(500)))
}

func TestComputeSheet_NetLossCrossPosting(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Ingreso": {0, 100},
		"Costo":   {350, 0},
	}, "Ingreso", "Costo")

	sheet := domain.ComputeSheet("c1", 2024, totals, domain.CategoryAssignment{
		"Ingreso": domain.CategoryGain,
		"Costo":   domain.CategoryLoss,
	})

	// diferencia = 100 - 350 = -250 < 0: net loss posts to asset and gain.
	utility := summaryRow(t, sheet, domain.RowUtility)
	assert.True(t, utility.Asset.Equal(dec(250)))
	assert.True(t, utility.Gain.Equal(dec(250)))
	assert.True(t, utility.Liability.IsZero())
	assert.True(t, utility.Loss.IsZero())
}

func TestReassign_IdempotentAndSuperseding(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja": {1000, 400},
	}, "Caja")
	sheet := domain.ComputeSheet("c1", 2024, totals, nil)

	once := domain.Reassign(sheet, 0, domain.CategoryAsset)
	twice := domain.Reassign(once, 0, domain.CategoryAsset)
	assert.Equal(t, once, twice)

	superseded := domain.Reassign(twice, 0, domain.CategoryLiability)
	caja := rowByType(t, superseded, "Caja")
	assert.True(t, caja.Asset.IsZero())
	assert.True(t, caja.Liability.Equal(dec(600)))
}

func TestReassign_ClearRemovesCategory(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja": {1000, 400},
	}, "Caja")
	sheet := domain.ComputeSheet("c1", 2024, totals, domain.CategoryAssignment{
		"Caja": domain.CategoryAsset,
	})

	cleared := domain.Reassign(sheet, 0, "")
	caja := rowByType(t, cleared, "Caja")
	_, assigned := caja.AssignedCategory()
	assert.False(t, assigned)

	sums := summaryRow(t, cleared, domain.RowSums)
	assert.True(t, sums.Asset.IsZero())
}

func TestReassign_SpecialRowsAreNoOps(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja": {1000, 400},
	}, "Caja")
	sheet := domain.ComputeSheet("c1", 2024, totals, nil)

	for i, row := range sheet.Rows {
		if row.Kind == domain.RowData {
			continue
		}
		assert.Equal(t, sheet, domain.Reassign(sheet, i, domain.CategoryAsset),
			"reassigning row %d (%s) must not change the sheet", i, row.Kind)
	}
	assert.Equal(t, sheet, domain.Reassign(sheet, -1, domain.CategoryAsset))
	assert.Equal(t, sheet, domain.Reassign(sheet, len(sheet.Rows), domain.CategoryAsset))
}

func TestReassign_EquivalentToFreshCompute(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja":    {1000, 400},
		"Ingreso": {0, 500},
		"Costo":   {200, 0},
		"IVA":     {80, 30},
	}, "Caja", "Ingreso", "Costo", "IVA")

	sheet := domain.ComputeSheet("c1", 2024, totals, nil)
	sheet = domain.Reassign(sheet, 0, domain.CategoryAsset)
	sheet = domain.Reassign(sheet, 1, domain.CategoryGain)
	sheet = domain.Reassign(sheet, 2, domain.CategoryLoss)
	sheet = domain.Reassign(sheet, 3, domain.CategoryLiability)
	// Rework a row a couple of times to make sure no residue accumulates.
	sheet = domain.Reassign(sheet, 3, domain.CategoryLoss)
	sheet = domain.Reassign(sheet, 3, domain.CategoryLiability)

	fresh := domain.ComputeSheet("c1", 2024, totals, sheet.Assignment())
	assert.Equal(t, fresh, sheet)
}

func TestAssignment_RoundTrip(t *testing.T) {
	totals := totalsFor(t, map[string][2]int64{
		"Caja":    {1000, 400},
		"Ingreso": {0, 500},
	}, "Caja", "Ingreso", "Costo")

	assignment := domain.CategoryAssignment{
		"Caja":    domain.CategoryAsset,
		"Ingreso": domain.CategoryGain,
	}
	sheet := domain.ComputeSheet("c1", 2024, totals, assignment)
	assert.Equal(t, assignment, sheet.Assignment())
}

func TestAssignment_ZeroBalanceRowDropsOut(t *testing.T) {
	// A categorized type with zero balance carries no magnitude, so the
	// derived assignment cannot see it. Matches the source behavior where
	// only non-zero category cells were saved.
	totals := totalsFor(t, map[string][2]int64{
		"Costo": {250, 250},
	}, "Costo")
	sheet := domain.ComputeSheet("c1", 2024, totals, domain.CategoryAssignment{
		"Costo": domain.CategoryLoss,
	})
	assert.Empty(t, sheet.Assignment())
}

func TestParseAmount(t *testing.T) {
	assert.True(t, domain.ParseAmount("1000.50").Equal(decimal.NewFromFloat(1000.50)))
	assert.True(t, domain.ParseAmount("not-a-number").IsZero())
	assert.True(t, domain.ParseAmount("").IsZero())
	assert.True(t, domain.ParseAmount("-5").IsZero())
}
