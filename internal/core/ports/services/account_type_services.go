package services

import "context"

// AccountTypeRegistrySvc resolves the full ordered set of account types for a
// company: the fixed base set followed by the company's custom types.
type AccountTypeRegistrySvc interface {
	// ResolveAccountTypes returns the company's account types. Fails with
	// apperrors.ErrNotFound when the company does not exist; callers treat
	// that as "base types only" rather than a hard error so aggregation can
	// still proceed.
	ResolveAccountTypes(ctx context.Context, companyID string) ([]string, error)
}
