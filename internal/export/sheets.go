package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// SheetsPusher writes balance sheets into a Google Spreadsheet using a
// service account.
type SheetsPusher struct {
	svc           *gsheet.Service
	spreadsheetID string
}

// NewSheetsPusher creates a pusher for the given spreadsheet. Credentials are
// resolved from GOOGLE_CREDENTIALS_JSON or GOOGLE_APPLICATION_CREDENTIALS.
func NewSheetsPusher(ctx context.Context, spreadsheetID string) (*SheetsPusher, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required")
	}

	credentialsJSON := strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_JSON"))
	credentialsFile := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))

	var raw []byte
	switch {
	case credentialsJSON != "":
		raw = []byte(credentialsJSON)
	case credentialsFile != "":
		var err error
		raw, err = os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_CREDENTIALS_JSON or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(raw),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsPusher{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Push writes the balance sheet into a tab named "Balance <company> <year>",
// creating the tab if needed and replacing its previous contents.
func (p *SheetsPusher) Push(ctx context.Context, company *domain.Company, sheet *domain.BalanceSheet) (string, error) {
	title := fmt.Sprintf("Balance %s %d", company.Name, sheet.Year)

	if err := p.ensureSheet(ctx, title); err != nil {
		return "", err
	}

	values := make([][]any, 0, len(sheet.Rows)+2)
	header := make([]any, len(columnHeaders))
	for i, h := range columnHeaders {
		header[i] = h
	}
	values = append(values, header)

	for _, row := range sheet.Rows {
		if row.Kind == domain.RowBlank {
			values = append(values, []any{})
			continue
		}
		line := []any{row.Type}
		line = append(line,
			cellValue(row.Debit.IsPositive(), row.Debit.InexactFloat64()),
			cellValue(row.Credit.IsPositive(), row.Credit.InexactFloat64()),
			cellValue(row.DebtorBalance.IsPositive(), row.DebtorBalance.InexactFloat64()),
			cellValue(row.CreditorBalance.IsPositive(), row.CreditorBalance.InexactFloat64()),
			cellValue(row.Asset.IsPositive(), row.Asset.InexactFloat64()),
			cellValue(row.Liability.IsPositive(), row.Liability.InexactFloat64()),
			cellValue(row.Loss.IsPositive(), row.Loss.InexactFloat64()),
			cellValue(row.Gain.IsPositive(), row.Gain.InexactFloat64()),
		)
		values = append(values, line)
	}

	clearRange := fmt.Sprintf("%s!A:I", title)
	if _, err := p.svc.Spreadsheets.Values.Clear(p.spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to clear sheet %s: %w", title, err)
	}

	writeRange := fmt.Sprintf("%s!A1", title)
	vr := &gsheet.ValueRange{Values: values}
	if _, err := p.svc.Spreadsheets.Values.Update(p.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to write sheet %s: %w", title, err)
	}

	return title, nil
}

// ensureSheet adds the named tab when it does not exist yet.
func (p *SheetsPusher) ensureSheet(ctx context.Context, title string) error {
	spreadsheet, err := p.svc.Spreadsheets.Get(p.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}
	for _, existing := range spreadsheet.Sheets {
		if existing.Properties != nil && existing.Properties.Title == title {
			return nil
		}
	}

	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: title},
			},
		}},
	}
	if _, err := p.svc.Spreadsheets.BatchUpdate(p.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", title, err)
	}
	return nil
}

// cellValue keeps zeroes blank so the pushed grid matches the printed form.
func cellValue(positive bool, amount float64) any {
	if !positive {
		return ""
	}
	return amount
}
