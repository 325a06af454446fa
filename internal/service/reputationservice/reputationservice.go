package reputationservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/metrics"
	"github.com/decentracode/creditcore/internal/pg"
)

type AccountRepo interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	UpdateReputation(ctx context.Context, userID uuid.UUID, score, decayedDays int) error
	RecordReview(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type EventRepo interface {
	AppendEvent(ctx context.Context, event *domain.ReputationEvent) (*domain.ReputationEvent, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReputationEvent, error)
}

// Service owns the reputation score. Every score mutation runs under the
// account row lock and is paired with exactly one reputation event.
type Service struct {
	accountRepo AccountRepo
	eventRepo   EventRepo
	txManager   pg.TXManager
	metrics     *metrics.Metrics
	graceDays   int
}

func New(accountRepo AccountRepo, eventRepo EventRepo, txManager pg.TXManager, m *metrics.Metrics, graceDays int) *Service {
	return &Service{
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
		txManager:   txManager,
		metrics:     m,
		graceDays:   graceDays,
	}
}

// Adjust adds delta to the score, clamped at a floor of 0, and records a
// REVIEW_RATED event carrying the requested delta.
func (s *Service) Adjust(ctx context.Context, userID uuid.UUID, delta int, reason string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, userID)
		if err != nil {
			zap.L().Error("failed to lock account for adjustment", zap.Error(err))
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		newScore := account.ReputationScore + delta
		if newScore < 0 {
			newScore = 0
		}

		if err := s.accountRepo.UpdateReputation(ctx, userID, newScore, account.DecayedDays); err != nil {
			return err
		}
		_, err = s.eventRepo.AppendEvent(ctx, &domain.ReputationEvent{
			UserID:      userID,
			ActionType:  domain.ReputationActionReviewRated,
			ScoreChange: delta,
			Reason:      reason,
		})
		return err
	})
}

// ApplyDecay lazily charges 1 reputation point per whole day of
// inactivity beyond the grace period. Decay already charged since the
// last review is tracked on the account, so a second check the same day
// observes no pending decay and applies nothing. Accounts that never
// completed a review have no activity baseline and are exempt.
func (s *Service) ApplyDecay(ctx context.Context, userID uuid.UUID, asOf time.Time) (bool, int, error) {
	var applied bool
	var newScore int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, userID)
		if err != nil {
			zap.L().Error("failed to lock account for decay", zap.Error(err))
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		newScore = account.ReputationScore
		if account.LastReviewAt == nil {
			return nil
		}

		daysSinceLastReview := int(asOf.Sub(*account.LastReviewAt).Hours() / 24)
		pending := daysSinceLastReview - s.graceDays - account.DecayedDays
		if pending <= 0 {
			return nil
		}

		newScore = account.ReputationScore - pending
		if newScore < 0 {
			newScore = 0
		}
		if newScore >= account.ReputationScore {
			// already at the floor; nothing to record
			return nil
		}

		if err := s.accountRepo.UpdateReputation(ctx, userID, newScore, account.DecayedDays+pending); err != nil {
			return err
		}
		_, err = s.eventRepo.AppendEvent(ctx, &domain.ReputationEvent{
			UserID:      userID,
			ActionType:  domain.ReputationActionDecay,
			ScoreChange: -pending,
			Reason:      fmt.Sprintf("Inactive for %d days", daysSinceLastReview),
		})
		if err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	if applied {
		s.metrics.ReputationDecay.Inc()
	}
	return applied, newScore, nil
}

// ReputationWithDecay reads the current score for ranking. Reading may
// mutate: inactivity decay is evaluated first and persisted when due.
func (s *Service) ReputationWithDecay(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error) {
	_, score, err := s.ApplyDecay(ctx, userID, asOf)
	return score, err
}

// RecordReview stamps the completion of a review and resets the decay
// bookkeeping, restarting the grace period.
func (s *Service) RecordReview(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if err := s.accountRepo.RecordReview(ctx, userID, at); err != nil {
		zap.L().Error("failed to record review completion", zap.Error(err))
		return err
	}
	return nil
}

// ListEvents returns the most recent reputation events, newest first.
func (s *Service) ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReputationEvent, error) {
	events, err := s.eventRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch reputation events", zap.Error(err))
		return nil, err
	}
	return events, nil
}
