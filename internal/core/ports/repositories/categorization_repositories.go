package repositories

import (
	"context"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// CategorizationRepository persists the user's account-type categorization,
// one document per company/year keyed "{company}_{year}".
type CategorizationRepository interface {
	// LoadAssignment retrieves the saved categorization for a company/year.
	// Returns apperrors.ErrNotFound when none has been saved yet; any other
	// error is a real I/O fault that callers must not swallow.
	LoadAssignment(ctx context.Context, companyID string, year int) (domain.CategoryAssignment, error)

	// SaveAssignment upserts the categorization document. Only assigned types
	// are stored; repeated saves with the same assignment are idempotent and
	// concurrent saves resolve last-writer-wins on the document key.
	SaveAssignment(ctx context.Context, companyID string, year int, assignment domain.CategoryAssignment) error
}
