package ledgerservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/metrics"
	"github.com/decentracode/creditcore/internal/notify"
	"github.com/decentracode/creditcore/internal/pg"
	"github.com/decentracode/creditcore/internal/staking"
)

type AccountRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	UpdateBalances(ctx context.Context, userID uuid.UUID, available, staked float64) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}

type Notifier interface {
	Emit(event notify.Event)
}

// Service mutates account balances. Every mutation runs in one
// transaction: lock the account row, validate, write the new balances and
// exactly one ledger entry, or abort with no partial effect. Operations on
// different accounts never block each other.
type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
	tiers       *staking.Resolver
	notifier    Notifier
	metrics     *metrics.Metrics
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, tiers *staking.Resolver, notifier Notifier, m *metrics.Metrics) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		tiers:       tiers,
		notifier:    notifier,
		metrics:     m,
	}
}

// apply runs one balance mutation. op adjusts the locked account in place
// and returns the entry to append; balanceAfter is stamped from the
// adjusted available credits.
func (s *Service) apply(ctx context.Context, userID uuid.UUID, kind domain.LedgerKind, op func(account *domain.Account) (*domain.LedgerEntry, error)) (*domain.Account, *domain.LedgerEntry, error) {
	var account *domain.Account
	var entry *domain.LedgerEntry

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.accountRepo.GetForUpdate(ctx, userID)
		if err != nil {
			zap.L().Error("failed to lock account for mutation", zap.Error(err))
			return err
		}
		if current == nil {
			return domain.ErrAccountNotFound
		}

		entry, err = op(current)
		if err != nil {
			return err
		}
		entry.UserID = userID
		entry.Kind = kind
		entry.BalanceAfter = current.AvailableCredits

		if err := s.accountRepo.UpdateBalances(ctx, userID, current.AvailableCredits, current.StakedCredits); err != nil {
			return err
		}
		if _, err := s.ledgerRepo.Append(ctx, entry); err != nil {
			return err
		}

		account = current

		// When this Begin joined an outer transaction nothing has
		// committed yet; the hook holds the events back until the
		// outermost commit, so a later rollback discards them.
		pg.OnCommit(ctx, func() {
			s.metrics.LedgerOps.WithLabelValues(string(kind), "ok").Inc()
			s.emitBalanceEvents(current, entry)
		})
		return nil
	})
	if err != nil {
		s.metrics.LedgerOps.WithLabelValues(string(kind), "error").Inc()
		return nil, nil, err
	}
	return account, entry, nil
}

func (s *Service) emitBalanceEvents(account *domain.Account, entry *domain.LedgerEntry) {
	s.notifier.Emit(notify.Event{
		UserID: account.UserID,
		Event:  notify.EventCreditBalanceUpdated,
		Data: notify.BalanceData{
			Available: account.AvailableCredits,
			Staked:    account.StakedCredits,
			Tier:      s.tiers.TierOf(account.StakedCredits),
		},
	})
	s.notifier.Emit(notify.Event{
		UserID: account.UserID,
		Event:  notify.EventTransactionAdded,
		Data: notify.TransactionData{
			ID:           entry.ID,
			Amount:       entry.Amount,
			Kind:         entry.Kind,
			Description:  entry.Description,
			BalanceAfter: entry.BalanceAfter,
		},
	})
}

// Debit removes amount from the spendable pool. Fails with
// ErrInsufficientFunds when the account cannot cover it; no partial effect.
func (s *Service) Debit(ctx context.Context, userID uuid.UUID, amount float64, kind domain.LedgerKind, description string) (float64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	account, _, err := s.apply(ctx, userID, kind, func(account *domain.Account) (*domain.LedgerEntry, error) {
		if account.AvailableCredits < amount {
			return nil, domain.ErrInsufficientFunds
		}
		account.AvailableCredits -= amount
		return &domain.LedgerEntry{Amount: -amount, Description: description}, nil
	})
	if err != nil {
		return 0, err
	}
	return account.AvailableCredits, nil
}

// Credit adds amount to the spendable pool.
func (s *Service) Credit(ctx context.Context, userID uuid.UUID, amount float64, kind domain.LedgerKind, description string) (float64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	account, _, err := s.apply(ctx, userID, kind, func(account *domain.Account) (*domain.LedgerEntry, error) {
		account.AvailableCredits += amount
		return &domain.LedgerEntry{Amount: amount, Description: description}, nil
	})
	if err != nil {
		return 0, err
	}
	return account.AvailableCredits, nil
}

// Stake moves amount from the spendable pool to the staked pool. The
// ledger entry is negative: staked funds leave the spendable balance.
func (s *Service) Stake(ctx context.Context, userID uuid.UUID, amount float64) (float64, float64, error) {
	if amount <= 0 {
		return 0, 0, domain.ErrInvalidAmount
	}

	account, _, err := s.apply(ctx, userID, domain.LedgerKindStake, func(account *domain.Account) (*domain.LedgerEntry, error) {
		if account.AvailableCredits < amount {
			return nil, domain.ErrInsufficientFunds
		}
		account.AvailableCredits -= amount
		account.StakedCredits += amount
		return &domain.LedgerEntry{Amount: -amount, Description: "Staked credits"}, nil
	})
	if err != nil {
		return 0, 0, err
	}

	s.notifier.Emit(notify.Event{
		UserID: account.UserID,
		Event:  notify.EventStakingUpdate,
		Data: notify.BalanceData{
			Available: account.AvailableCredits,
			Staked:    account.StakedCredits,
			Tier:      s.tiers.TierOf(account.StakedCredits),
		},
	})
	return account.AvailableCredits, account.StakedCredits, nil
}

// Unstake moves amount back from the staked pool to the spendable pool.
func (s *Service) Unstake(ctx context.Context, userID uuid.UUID, amount float64) (float64, float64, error) {
	if amount <= 0 {
		return 0, 0, domain.ErrInvalidAmount
	}

	account, _, err := s.apply(ctx, userID, domain.LedgerKindUnstake, func(account *domain.Account) (*domain.LedgerEntry, error) {
		if account.StakedCredits < amount {
			return nil, domain.ErrInsufficientStake
		}
		account.StakedCredits -= amount
		account.AvailableCredits += amount
		return &domain.LedgerEntry{Amount: amount, Description: "Unstaked credits"}, nil
	})
	if err != nil {
		return 0, 0, err
	}
	return account.AvailableCredits, account.StakedCredits, nil
}

// GetBalance returns the account's current pools and tier.
func (s *Service) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Account, domain.StakingTier, error) {
	account, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account balance", zap.Error(err))
		return nil, domain.TierNone, err
	}
	if account == nil {
		return nil, domain.TierNone, domain.ErrAccountNotFound
	}
	return account, s.tiers.TierOf(account.StakedCredits), nil
}

// ListTransactions returns the most recent ledger entries, newest first.
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Benefits returns the account's current tier and the perks it unlocks.
func (s *Service) Benefits(ctx context.Context, userID uuid.UUID) (domain.StakingTier, []string, error) {
	account, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account for benefits", zap.Error(err))
		return domain.TierNone, nil, err
	}
	if account == nil {
		return domain.TierNone, nil, domain.ErrAccountNotFound
	}
	tier := s.tiers.TierOf(account.StakedCredits)
	return tier, s.tiers.Benefits(tier), nil
}
