package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/metrics"
	"github.com/decentracode/creditcore/internal/notify"
	"github.com/decentracode/creditcore/internal/pg"
	"github.com/decentracode/creditcore/internal/staking"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockLedgerRepo, *pg.MockTXManager, *MockNotifier) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(accountRepo, ledgerRepo, txManager, staking.NewResolver(staking.DefaultThresholds()), notifier, metrics.New(prometheus.NewRegistry()))
	defer ctrl.Finish()
	return service, accountRepo, ledgerRepo, txManager, notifier
}

func expectTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestDebit(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name            string
		amount          float64
		prepareMock     func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier)
		expectedBalance float64
		expectedError   error
	}{
		{
			name:   "Successful debit writes balance and entry atomically",
			amount: 30,
			prepareMock: func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 100,
					StakedCredits:    0,
				}, nil)
				accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, 70.0, 0.0).Return(nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, userID, entry.UserID)
						assert.Equal(t, -30.0, entry.Amount)
						assert.Equal(t, domain.LedgerKindFee, entry.Kind)
						assert.Equal(t, 70.0, entry.BalanceAfter)
						assert.Equal(t, "Submission fee for: my-repo", entry.Description)
						return entry, nil
					},
				)
				notifier.EXPECT().Emit(gomock.Any()).Times(2)
			},
			expectedBalance: 70,
		},
		{
			name:   "Insufficient funds leaves balances and ledger unchanged",
			amount: 150,
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockLedgerRepo, txManager *pg.MockTXManager, _ *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 100,
				}, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:          "Zero amount rejected before any transaction",
			amount:        0,
			prepareMock:   func(*MockAccountRepo, *MockLedgerRepo, *pg.MockTXManager, *MockNotifier) {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected before any transaction",
			amount:        -5,
			prepareMock:   func(*MockAccountRepo, *MockLedgerRepo, *pg.MockTXManager, *MockNotifier) {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:   "Unknown account",
			amount: 10,
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockLedgerRepo, txManager *pg.MockTXManager, _ *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:   "Store failure aborts the whole operation",
			amount: 10,
			prepareMock: func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, _ *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 100,
				}, nil)
				accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, 90.0, 0.0).Return(nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, txManager, notifier := NewMock(t)
			tt.prepareMock(accountRepo, ledgerRepo, txManager, notifier)

			newBalance, err := service.Debit(context.Background(), userID, tt.amount, domain.LedgerKindFee, "Submission fee for: my-repo")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Zero(t, newBalance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, newBalance)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name            string
		amount          float64
		prepareMock     func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier)
		expectedBalance float64
		expectedError   error
	}{
		{
			name:   "Successful credit",
			amount: 16.5,
			prepareMock: func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 10,
					StakedCredits:    1000,
				}, nil)
				accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, 26.5, 1000.0).Return(nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, 16.5, entry.Amount)
						assert.Equal(t, domain.LedgerKindReward, entry.Kind)
						assert.Equal(t, 26.5, entry.BalanceAfter)
						return entry, nil
					},
				)
				notifier.EXPECT().Emit(gomock.Any()).Times(2)
			},
			expectedBalance: 26.5,
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			prepareMock:   func(*MockAccountRepo, *MockLedgerRepo, *pg.MockTXManager, *MockNotifier) {},
			expectedError: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, txManager, notifier := NewMock(t)
			tt.prepareMock(accountRepo, ledgerRepo, txManager, notifier)

			newBalance, err := service.Credit(context.Background(), userID, tt.amount, domain.LedgerKindReward, "Reward for review")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, newBalance)
			}
		})
	}
}

func TestStake(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name              string
		amount            float64
		prepareMock       func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier)
		expectedAvailable float64
		expectedStaked    float64
		expectedError     error
	}{
		{
			name:   "Successful stake moves funds between pools",
			amount: 100,
			prepareMock: func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 150,
					StakedCredits:    0,
				}, nil)
				accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, 50.0, 100.0).Return(nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, -100.0, entry.Amount)
						assert.Equal(t, domain.LedgerKindStake, entry.Kind)
						assert.Equal(t, 50.0, entry.BalanceAfter)
						return entry, nil
					},
				)
				notifier.EXPECT().Emit(gomock.Any()).Times(3)
			},
			expectedAvailable: 50,
			expectedStaked:    100,
		},
		{
			name:   "Stake more than available fails",
			amount: 200,
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockLedgerRepo, txManager *pg.MockTXManager, _ *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 150,
				}, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, txManager, notifier := NewMock(t)
			tt.prepareMock(accountRepo, ledgerRepo, txManager, notifier)

			newAvailable, newStaked, err := service.Stake(context.Background(), userID, tt.amount)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAvailable, newAvailable)
				assert.Equal(t, tt.expectedStaked, newStaked)
			}
		})
	}
}

func TestUnstake(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name              string
		amount            float64
		prepareMock       func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier)
		expectedAvailable float64
		expectedStaked    float64
		expectedError     error
	}{
		{
			name:   "Successful unstake returns funds to the spendable pool",
			amount: 100,
			prepareMock: func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, txManager *pg.MockTXManager, notifier *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 50,
					StakedCredits:    100,
				}, nil)
				accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, 150.0, 0.0).Return(nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, 100.0, entry.Amount)
						assert.Equal(t, domain.LedgerKindUnstake, entry.Kind)
						assert.Equal(t, 150.0, entry.BalanceAfter)
						return entry, nil
					},
				)
				notifier.EXPECT().Emit(gomock.Any()).Times(2)
			},
			expectedAvailable: 150,
			expectedStaked:    0,
		},
		{
			name:   "Unstake more than staked fails",
			amount: 150,
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockLedgerRepo, txManager *pg.MockTXManager, _ *MockNotifier) {
				expectTx(txManager)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 50,
					StakedCredits:    100,
				}, nil)
			},
			expectedError: domain.ErrInsufficientStake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, txManager, notifier := NewMock(t)
			tt.prepareMock(accountRepo, ledgerRepo, txManager, notifier)

			newAvailable, newStaked, err := service.Unstake(context.Background(), userID, tt.amount)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAvailable, newAvailable)
				assert.Equal(t, tt.expectedStaked, newStaked)
			}
		})
	}
}

// Stake then unstake of the same amount restores the original pools.
func TestStakeUnstakeRoundTrip(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager, notifier := NewMock(t)
	userID := uuid.New()

	account := &domain.Account{
		UserID:           userID,
		AvailableCredits: 300,
		StakedCredits:    0,
	}

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(2)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).DoAndReturn(
		func(context.Context, uuid.UUID) (*domain.Account, error) {
			copied := *account
			return &copied, nil
		},
	).Times(2)
	accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, available, staked float64) error {
			account.AvailableCredits = available
			account.StakedCredits = staked
			return nil
		},
	).Times(2)
	ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			return entry, nil
		},
	).Times(2)
	notifier.EXPECT().Emit(gomock.Any()).AnyTimes()

	_, _, err := service.Stake(context.Background(), userID, 100)
	assert.NoError(t, err)
	assert.Equal(t, 200.0, account.AvailableCredits)
	assert.Equal(t, 100.0, account.StakedCredits)

	newAvailable, newStaked, err := service.Unstake(context.Background(), userID, 100)
	assert.NoError(t, err)
	assert.Equal(t, 300.0, newAvailable)
	assert.Equal(t, 0.0, newStaked)
}

// newComposedMock wires the service to the real transaction manager over
// a pgxmock pool, the shape the rating flow uses when it joins Credit
// into its own transaction.
func newComposedMock(t *testing.T) (*Service, *MockAccountRepo, *MockLedgerRepo, pg.TXManager, *MockNotifier, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	notifier := NewMockNotifier(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	txManager := pg.NewTXManager(mockDB)
	service := New(accountRepo, ledgerRepo, txManager, staking.NewResolver(staking.DefaultThresholds()), notifier, metrics.New(prometheus.NewRegistry()))
	return service, accountRepo, ledgerRepo, txManager, notifier, mockDB
}

// A credit joined into an outer transaction that later rolls back must
// not emit any balance events.
func TestCreditInRolledBackOuterTransactionEmitsNothing(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager, notifier, mockDB := newComposedMock(t)
	userID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectRollback()
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
		UserID:           userID,
		AvailableCredits: 10,
	}, nil)
	accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, 25.0, 0.0).Return(nil)
	ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			return entry, nil
		},
	)
	notifier.EXPECT().Emit(gomock.Any()).Times(0)

	err := txManager.Begin(context.Background(), func(ctx context.Context) error {
		balance, err := service.Credit(ctx, userID, 15, domain.LedgerKindReward, "Reward for review")
		require.NoError(t, err)
		assert.Equal(t, 25.0, balance)
		return errors.New("reputation write failed")
	})
	assert.Error(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

// The same composed flow emits exactly once the outer transaction
// commits, never before.
func TestCreditInOuterTransactionEmitsAfterCommit(t *testing.T) {
	service, accountRepo, ledgerRepo, txManager, notifier, mockDB := newComposedMock(t)
	userID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{
		UserID:           userID,
		AvailableCredits: 10,
	}, nil)
	accountRepo.EXPECT().UpdateBalances(gomock.Any(), userID, 25.0, 0.0).Return(nil)
	ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			return entry, nil
		},
	)

	emitted := 0
	notifier.EXPECT().Emit(gomock.Any()).Do(func(notify.Event) { emitted++ }).Times(2)

	err := txManager.Begin(context.Background(), func(ctx context.Context) error {
		_, err := service.Credit(ctx, userID, 15, domain.LedgerKindReward, "Reward for review")
		require.NoError(t, err)
		assert.Zero(t, emitted)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, emitted)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestGetBalance(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func(accountRepo *MockAccountRepo)
		expectedTier  domain.StakingTier
		expectedError error
	}{
		{
			name: "Balance with silver tier",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().Get(gomock.Any(), userID).Return(&domain.Account{
					UserID:           userID,
					AvailableCredits: 40,
					StakedCredits:    600,
				}, nil)
			},
			expectedTier: domain.TierSilver,
		},
		{
			name: "Unknown account",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name: "Database error",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _, _ := NewMock(t)
			tt.prepareMock(accountRepo)

			account, tier, err := service.GetBalance(context.Background(), userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
				assert.Equal(t, tt.expectedTier, tier)
			}
		})
	}
}

func TestListTransactions(t *testing.T) {
	service, _, ledgerRepo, _, _ := NewMock(t)
	userID := uuid.New()

	expected := []domain.LedgerEntry{
		{UserID: userID, Amount: -10, Kind: domain.LedgerKindFee, BalanceAfter: 90},
		{UserID: userID, Amount: 15, Kind: domain.LedgerKindReward, BalanceAfter: 100},
	}
	ledgerRepo.EXPECT().ListByUser(gomock.Any(), userID, 10).Return(expected, nil)

	entries, err := service.ListTransactions(context.Background(), userID, 10)
	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestBenefits(t *testing.T) {
	service, accountRepo, _, _, _ := NewMock(t)
	userID := uuid.New()

	accountRepo.EXPECT().Get(gomock.Any(), userID).Return(&domain.Account{
		UserID:        userID,
		StakedCredits: 1200,
	}, nil)

	tier, benefits, err := service.Benefits(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, domain.TierGold, tier)
	assert.Contains(t, benefits, "Advanced analytics")
}
