package export

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/balanza-app/balanza/internal/core/domain"
)

const sheetName = "Balance General"

var columnHeaders = []string{
	"Nombre de Cuentas",
	"Débito",
	"Crédito",
	"Deudor",
	"Acreedor",
	"Activo",
	"Pasivo",
	"Pérdidas",
	"Ganancias",
}

// Renderer builds downloadable balance sheet documents.
type Renderer struct{}

// NewRenderer creates a document renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderXLSX renders the balance sheet as an Excel workbook: a title, the
// company identification block, the nine-column table and signature lines.
func (r *Renderer) RenderXLSX(company *domain.Company, sheet *domain.BalanceSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold style: %w", err)
	}

	thinBorder := []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	numFmt := "#,##0.00"
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder, CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}
	specialStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Border:       thinBorder,
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create special row style: %w", err)
	}

	_ = f.MergeCell(sheetName, "A1", "L1")
	_ = f.SetCellValue(sheetName, "A1", "BALANCE GENERAL")
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	_ = f.SetCellValue(sheetName, "A3", fmt.Sprintf("Nombre o razón social: %s", company.Name))
	_ = f.SetCellValue(sheetName, "I3", fmt.Sprintf("RUT: %s", company.RUT))
	_ = f.SetCellValue(sheetName, "A4", fmt.Sprintf("DIRECCIÓN: %s", company.Address))
	_ = f.SetCellValue(sheetName, "I4", fmt.Sprintf("COMUNA: %s", company.Commune))
	_ = f.SetCellValue(sheetName, "A5", fmt.Sprintf("GIRO: %s", company.BusinessActivity))
	_ = f.MergeCell(sheetName, "A6", "L6")
	_ = f.SetCellValue(sheetName, "A6", fmt.Sprintf("EJERCICIO COMPRENDIDO ENTRE EL 01 DE ENERO DE %d AL 31 DE DICIEMBRE DE %d", sheet.Year, sheet.Year))
	for _, cell := range []string{"A3", "I3", "A4", "I4", "A5", "A6"} {
		_ = f.SetCellStyle(sheetName, cell, cell, boldStyle)
	}

	_ = f.SetColWidth(sheetName, "A", "A", 30)
	_ = f.SetColWidth(sheetName, "B", "I", 15)

	headerRow := 7
	for i, header := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	rowNum := headerRow
	for _, row := range sheet.Rows {
		rowNum++
		if row.Kind == domain.RowBlank {
			continue
		}

		style := cellStyle
		if row.Kind != domain.RowData {
			style = specialStyle
		}

		nameCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		_ = f.SetCellValue(sheetName, nameCell, row.Type)
		_ = f.SetCellStyle(sheetName, nameCell, nameCell, style)

		values := []decimal.Decimal{
			row.Debit, row.Credit,
			row.DebtorBalance, row.CreditorBalance,
			row.Asset, row.Liability,
			row.Loss, row.Gain,
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+2, rowNum)
			// Zeroes stay blank, matching the printed form.
			if value.IsPositive() {
				amount, _ := value.Float64()
				_ = f.SetCellValue(sheetName, cell, amount)
			}
			_ = f.SetCellStyle(sheetName, cell, cell, style)
		}
	}

	signatureRow := rowNum + 3
	_ = f.MergeCell(sheetName, fmt.Sprintf("A%d", signatureRow), fmt.Sprintf("C%d", signatureRow))
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", signatureRow), "_______________________")
	_ = f.MergeCell(sheetName, fmt.Sprintf("A%d", signatureRow+1), fmt.Sprintf("C%d", signatureRow+1))
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", signatureRow+1), "CONTADOR")
	_ = f.MergeCell(sheetName, fmt.Sprintf("F%d", signatureRow), fmt.Sprintf("I%d", signatureRow))
	_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", signatureRow), "_______________________")
	_ = f.MergeCell(sheetName, fmt.Sprintf("F%d", signatureRow+1), fmt.Sprintf("I%d", signatureRow+1))
	_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", signatureRow+1), "REPRESENTANTE LEGAL")

	centeredBold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create signature style: %w", err)
	}
	for _, cell := range []string{
		fmt.Sprintf("A%d", signatureRow), fmt.Sprintf("A%d", signatureRow+1),
		fmt.Sprintf("F%d", signatureRow), fmt.Sprintf("F%d", signatureRow+1),
	} {
		_ = f.SetCellStyle(sheetName, cell, cell, centeredBold)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
