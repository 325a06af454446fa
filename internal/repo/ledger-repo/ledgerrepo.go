package ledgerrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append writes one immutable ledger entry. It is always called in the
// same transaction as the balance mutation it records.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (id, user_id, amount, kind, description, balance_after)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	entry.ID = uuid.New()
	err := r.db.QueryRow(ctx, query, entry.ID, entry.UserID, entry.Amount, entry.Kind, entry.Description, entry.BalanceAfter).Scan(&entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, amount, kind, description, balance_after, created_at
        FROM ledger_entries
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Amount, &entry.Kind, &entry.Description, &entry.BalanceAfter, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
