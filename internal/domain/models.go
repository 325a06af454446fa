package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a user's credit and reputation state. One row per user,
// created on registration and never deleted.
type Account struct {
	UserID            uuid.UUID  `db:"user_id"`
	Username          string     `db:"username"`
	AvailableCredits  float64    `db:"available_credits"`
	StakedCredits     float64    `db:"staked_credits"`
	ReputationScore   int        `db:"reputation_score"`
	LanguageExpertise []string   `db:"language_expertise"`
	IsAvailable       bool       `db:"is_available"`
	LastReviewAt      *time.Time `db:"last_review_at"`
	DecayedDays       int        `db:"decayed_days"`
	CreatedAt         time.Time  `db:"created_at"`
}

type LedgerKind string

const (
	LedgerKindFee     LedgerKind = "FEE"
	LedgerKindReward  LedgerKind = "REWARD"
	LedgerKindStake   LedgerKind = "STAKE"
	LedgerKindUnstake LedgerKind = "UNSTAKE"
)

// LedgerEntry is one immutable record of a credit movement. Amount is
// signed: positive for credits, negative for debits. BalanceAfter is the
// available-credits snapshot taken in the same transaction as the balance
// mutation, so the log and the account can never diverge.
type LedgerEntry struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Amount       float64    `db:"amount"`
	Kind         LedgerKind `db:"kind"`
	Description  string     `db:"description"`
	BalanceAfter float64    `db:"balance_after"`
	CreatedAt    time.Time  `db:"created_at"`
}

type ReputationAction string

const (
	ReputationActionReviewRated ReputationAction = "REVIEW_RATED"
	ReputationActionDecay       ReputationAction = "DECAY"
)

// ReputationEvent is the audit record paired with every mutation of an
// account's reputation score.
type ReputationEvent struct {
	ID          uuid.UUID        `db:"id"`
	UserID      uuid.UUID        `db:"user_id"`
	ActionType  ReputationAction `db:"action_type"`
	ScoreChange int              `db:"score_change"`
	Reason      string           `db:"reason"`
	CreatedAt   time.Time        `db:"created_at"`
}

type StakingTier string

const (
	TierNone   StakingTier = "NONE"
	TierBronze StakingTier = "BRONZE"
	TierSilver StakingTier = "SILVER"
	TierGold   StakingTier = "GOLD"
)

// RankedReviewer is one entry of a matching result, ordered best first.
type RankedReviewer struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	ReputationScore   int       `json:"reputation_score"`
	LanguageExpertise []string  `json:"language_expertise"`
	IsAvailable       bool      `json:"is_available"`
	StakedCredits     float64   `json:"staked_credits"`
}
