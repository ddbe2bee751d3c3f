package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
)

type PgxCategorizationRepository struct {
	BaseRepository
}

// newPgxCategorizationRepository creates a new repository for balance
// categorization documents.
func newPgxCategorizationRepository(pool *pgxpool.Pool) portsrepo.CategorizationRepository {
	return &PgxCategorizationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategorizationRepository = (*PgxCategorizationRepository)(nil)

// docID builds the document key, one categorization per company/year.
func docID(companyID string, year int) string {
	return fmt.Sprintf("%s_%d", companyID, year)
}

// categoryDocEntry is one persisted {type, category} pair. The jsonb document
// holds an array of these, ordered by account type so repeated saves of the
// same assignment produce the same bytes.
type categoryDocEntry struct {
	Type     string `json:"type"`
	Category string `json:"category"`
}

func encodeAssignment(assignment domain.CategoryAssignment) ([]byte, error) {
	entries := make([]categoryDocEntry, 0, len(assignment))
	for accountType, category := range assignment {
		entries = append(entries, categoryDocEntry{Type: accountType, Category: string(category)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Type < entries[j].Type })
	return json.Marshal(entries)
}

func decodeAssignment(raw []byte) (domain.CategoryAssignment, error) {
	var entries []categoryDocEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	assignment := make(domain.CategoryAssignment, len(entries))
	for _, entry := range entries {
		assignment[entry.Type] = domain.Category(entry.Category)
	}
	return assignment, nil
}

// LoadAssignment retrieves the saved categorization for a company/year.
func (r *PgxCategorizationRepository) LoadAssignment(ctx context.Context, companyID string, year int) (domain.CategoryAssignment, error) {
	query := `SELECT categories FROM balance_categorizations WHERE doc_id = $1;`

	var raw []byte
	err := r.Pool.QueryRow(ctx, query, docID(companyID, year)).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load categorization %s: %w", docID(companyID, year), err)
	}

	assignment, err := decodeAssignment(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode categorization %s: %w", docID(companyID, year), err)
	}
	return assignment, nil
}

// SaveAssignment upserts the categorization document. Repeated saves with the
// same assignment are idempotent; concurrent saves resolve last-writer-wins
// on the document key.
func (r *PgxCategorizationRepository) SaveAssignment(ctx context.Context, companyID string, year int, assignment domain.CategoryAssignment) error {
	raw, err := encodeAssignment(assignment)
	if err != nil {
		return fmt.Errorf("failed to encode categorization: %w", err)
	}

	query := `
		INSERT INTO balance_categorizations (doc_id, company_id, year, categories, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (doc_id) DO UPDATE SET
			categories = EXCLUDED.categories,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, docID(companyID, year), companyID, year, raw, time.Now()); err != nil {
		return fmt.Errorf("failed to save categorization %s: %w", docID(companyID, year), err)
	}
	return nil
}
