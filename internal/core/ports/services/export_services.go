package services

import "context"

// ExportSvcFacade renders a company's annual balance sheet for external
// consumption.
type ExportSvcFacade interface {
	// ExportXLSX builds the balance sheet workbook and returns its bytes and
	// a suggested filename.
	ExportXLSX(ctx context.Context, companyID string, year int) ([]byte, string, error)

	// ExportPDF builds the balance sheet PDF and returns its bytes and a
	// suggested filename.
	ExportPDF(ctx context.Context, companyID string, year int) ([]byte, string, error)

	// PushToGoogleSheet writes the balance sheet into the configured Google
	// Spreadsheet and returns the target sheet title.
	PushToGoogleSheet(ctx context.Context, companyID string, year int) (string, error)
}
