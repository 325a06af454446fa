package ratingservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/pg"
	"github.com/decentracode/creditcore/internal/reward"
)

type LedgerService interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64, kind domain.LedgerKind, description string) (float64, error)
}

type ReputationService interface {
	Adjust(ctx context.Context, userID uuid.UUID, delta int, reason string) error
	RecordReview(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type AccountRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
}

type Result struct {
	CreditReward    float64
	ReputationDelta int
}

// Service applies a review rating end to end: reward credit and
// reputation adjustment commit together or not at all. The transaction
// manager joins the nested ledger and reputation transactions into one.
type Service struct {
	calculator  *reward.Calculator
	ledger      LedgerService
	reputation  ReputationService
	accountRepo AccountRepo
	txManager   pg.TXManager
	now         func() time.Time
}

func New(calculator *reward.Calculator, ledger LedgerService, reputation ReputationService, accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		calculator:  calculator,
		ledger:      ledger,
		reputation:  reputation,
		accountRepo: accountRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}

// RateReview converts a 1-5 star rating of reviewID into the reviewer's
// credit reward and reputation delta. Invalid ratings are rejected before
// any side effect.
func (s *Service) RateReview(ctx context.Context, reviewerID, reviewID uuid.UUID, rating int) (*Result, error) {
	account, err := s.accountRepo.Get(ctx, reviewerID)
	if err != nil {
		zap.L().Error("failed to get reviewer account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	creditReward, reputationDelta, err := s.calculator.Compute(rating, account.StakedCredits)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if creditReward > 0 {
			description := fmt.Sprintf("Reward for review: %s", reviewID)
			if _, err := s.ledger.Credit(ctx, reviewerID, creditReward, domain.LedgerKindReward, description); err != nil {
				return err
			}
		}

		reason := fmt.Sprintf("Review %s rated %d stars", reviewID, rating)
		if err := s.reputation.Adjust(ctx, reviewerID, reputationDelta, reason); err != nil {
			return err
		}

		return s.reputation.RecordReview(ctx, reviewerID, s.now())
	})
	if err != nil {
		zap.L().Error("failed to apply rating", zap.Error(err))
		return nil, err
	}

	return &Result{
		CreditReward:    creditReward,
		ReputationDelta: reputationDelta,
	}, nil
}
