package accountservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decentracode/creditcore/internal/domain"
)

type AccountRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// Service provisions reviewer accounts. Every account starts with zero
// available credits, zero stake and zero reputation; balances only ever
// change through ledger operations.
type Service struct {
	accountRepo AccountRepo
}

func New(accountRepo AccountRepo) *Service {
	return &Service{accountRepo: accountRepo}
}

func (s *Service) CreateAccount(ctx context.Context, userID uuid.UUID, username string, languages []string, available bool) (*domain.Account, error) {
	existing, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to check account existence", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAccountExists
	}

	account := &domain.Account{
		UserID:            userID,
		Username:          username,
		LanguageExpertise: languages,
		IsAvailable:       available,
	}
	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	zap.L().Info("account created", zap.String("userId", userID.String()), zap.String("username", username))
	return created, nil
}

func (s *Service) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}
