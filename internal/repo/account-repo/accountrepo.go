package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const accountColumns = `user_id, username, available_credits, staked_credits, reputation_score, language_expertise, is_available, last_review_at, decayed_days, created_at`

func (r *Repository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.UserID,
		&account.Username,
		&account.AvailableCredits,
		&account.StakedCredits,
		&account.ReputationScore,
		&account.LanguageExpertise,
		&account.IsAvailable,
		&account.LastReviewAt,
		&account.DecayedDays,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
    `
	account, err := r.scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetForUpdate takes a row lock on the account; it must run inside a
// transaction started through pg.TXManager. Two mutations on the same
// account serialize on this lock, mutations on different accounts do not.
func (r *Repository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
        FOR UPDATE
    `
	account, err := r.scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, username, available_credits, staked_credits, reputation_score, language_expertise, is_available)
        VALUES ($1, $2, 0, 0, 0, $3, $4)
        RETURNING ` + accountColumns + `
    `
	created, err := r.scanAccount(r.db.QueryRow(ctx, query, account.UserID, account.Username, account.LanguageExpertise, account.IsAvailable))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAccountExists
		}
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *Repository) UpdateBalances(ctx context.Context, userID uuid.UUID, available, staked float64) error {
	query := `
        UPDATE accounts
        SET available_credits = $1, staked_credits = $2
        WHERE user_id = $3
    `
	tag, err := r.db.Exec(ctx, query, available, staked, userID)
	if err != nil {
		zap.L().Error("failed to update account balances", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) UpdateReputation(ctx context.Context, userID uuid.UUID, score, decayedDays int) error {
	query := `
        UPDATE accounts
        SET reputation_score = $1, decayed_days = $2
        WHERE user_id = $3
    `
	tag, err := r.db.Exec(ctx, query, score, decayedDays, userID)
	if err != nil {
		zap.L().Error("failed to update reputation score", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Single-attribute reads below back the ranking fan-out. Each one maps a
// missing row to ErrAccountNotFound so a bad candidate can be excluded
// without aborting the whole ranking call.

func (r *Repository) GetUsername(ctx context.Context, userID uuid.UUID) (string, error) {
	var username string
	err := r.db.QueryRow(ctx, `SELECT username FROM accounts WHERE user_id = $1`, userID).Scan(&username)
	if err == pgx.ErrNoRows {
		return "", domain.ErrAccountNotFound
	}
	return username, err
}

func (r *Repository) GetLanguageExpertise(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var languages []string
	err := r.db.QueryRow(ctx, `SELECT language_expertise FROM accounts WHERE user_id = $1`, userID).Scan(&languages)
	if err == pgx.ErrNoRows {
		return nil, domain.ErrAccountNotFound
	}
	return languages, err
}

func (r *Repository) GetAvailability(ctx context.Context, userID uuid.UUID) (bool, error) {
	var available bool
	err := r.db.QueryRow(ctx, `SELECT is_available FROM accounts WHERE user_id = $1`, userID).Scan(&available)
	if err == pgx.ErrNoRows {
		return false, domain.ErrAccountNotFound
	}
	return available, err
}

func (r *Repository) GetStakedCredits(ctx context.Context, userID uuid.UUID) (float64, error) {
	var staked float64
	err := r.db.QueryRow(ctx, `SELECT staked_credits FROM accounts WHERE user_id = $1`, userID).Scan(&staked)
	if err == pgx.ErrNoRows {
		return 0, domain.ErrAccountNotFound
	}
	return staked, err
}

// RecordReview stamps a completed review and resets the decay bookkeeping.
func (r *Repository) RecordReview(ctx context.Context, userID uuid.UUID, at time.Time) error {
	query := `
        UPDATE accounts
        SET last_review_at = $1, decayed_days = 0
        WHERE user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, at, userID)
	if err != nil {
		zap.L().Error("failed to record review completion", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
