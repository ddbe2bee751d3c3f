package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// RenderPDF renders the balance sheet as a landscape A4 PDF with the same
// nine-column layout as the workbook export.
func (r *Renderer) RenderPDF(company *domain.Company, sheet *domain.BalanceSheet) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, translate("BALANCE GENERAL"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(180, 5, translate(fmt.Sprintf("Nombre o razón social: %s", company.Name)), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("RUT: %s", company.RUT), "", 1, "L", false, 0, "")
	pdf.CellFormat(180, 5, translate(fmt.Sprintf("DIRECCIÓN: %s", company.Address)), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, translate(fmt.Sprintf("COMUNA: %s", company.Commune)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, translate(fmt.Sprintf("GIRO: %s", company.BusinessActivity)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("EJERCICIO COMPRENDIDO ENTRE EL 01 DE ENERO DE %d AL 31 DE DICIEMBRE DE %d", sheet.Year, sheet.Year), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	nameWidth := 57.0
	amountWidth := 27.5

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(nameWidth, 6, translate(columnHeaders[0]), "1", 0, "C", false, 0, "")
	for _, header := range columnHeaders[1:] {
		pdf.CellFormat(amountWidth, 6, translate(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range sheet.Rows {
		if row.Kind == domain.RowBlank {
			pdf.Ln(3)
			continue
		}

		if row.Kind == domain.RowData {
			pdf.SetFont("Arial", "", 8)
		} else {
			pdf.SetFont("Arial", "B", 8)
		}

		pdf.CellFormat(nameWidth, 5, translate(row.Type), "1", 0, "L", false, 0, "")
		values := []decimal.Decimal{
			row.Debit, row.Credit,
			row.DebtorBalance, row.CreditorBalance,
			row.Asset, row.Liability,
			row.Loss, row.Gain,
		}
		for _, value := range values {
			text := ""
			if value.IsPositive() {
				text = value.StringFixed(2)
			}
			pdf.CellFormat(amountWidth, 5, text, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(12)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(80, 5, "_______________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(80, 5, "_______________________", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(80, 5, "CONTADOR", "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(80, 5, "REPRESENTANTE LEGAL", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
