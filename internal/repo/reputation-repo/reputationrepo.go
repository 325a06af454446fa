package reputationrepo

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

func (r *Repository) AppendEvent(ctx context.Context, event *domain.ReputationEvent) (*domain.ReputationEvent, error) {
	query := `
		INSERT INTO reputation_events (id, user_id, action_type, score_change, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	event.ID = uuid.New()
	err := r.db.QueryRow(ctx, query, event.ID, event.UserID, event.ActionType, event.ScoreChange, event.Reason).Scan(&event.CreatedAt)
	if err != nil {
		zap.L().Error("can't save reputation event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReputationEvent, error) {
	query := `
        SELECT id, user_id, action_type, score_change, reason, created_at
        FROM reputation_events
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch reputation events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.ReputationEvent
	for rows.Next() {
		var event domain.ReputationEvent
		err := rows.Scan(&event.ID, &event.UserID, &event.ActionType, &event.ScoreChange, &event.Reason, &event.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan reputation event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
