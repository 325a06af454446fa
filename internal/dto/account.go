package dto

import "time"

type CreateAccountRequestDTO struct {
	Username          string   `json:"username" example:"alice"`
	LanguageExpertise []string `json:"language_expertise" example:"go,rust"`
	IsAvailable       bool     `json:"is_available" example:"true"`
}

type AccountResponseDTO struct {
	UserID            string     `json:"user_id" example:"0b4f4ee6-1d32-4dd0-8e8e-7f1a1f9a9f36"`
	Username          string     `json:"username" example:"alice"`
	AvailableCredits  float64    `json:"available_credits" example:"125.5"`
	StakedCredits     float64    `json:"staked_credits" example:"500"`
	ReputationScore   int        `json:"reputation_score" example:"42"`
	LanguageExpertise []string   `json:"language_expertise" example:"go,rust"`
	IsAvailable       bool       `json:"is_available" example:"true"`
	LastReviewAt      *time.Time `json:"last_review_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type ReputationEventResponseDTO struct {
	ID          string    `json:"id" example:"8a0d53cd-21a1-4f2f-9c96-9f9f7f4b8f11"`
	ActionType  string    `json:"action_type" example:"REVIEW_RATED"`
	ScoreChange int       `json:"score_change" example:"5"`
	Reason      string    `json:"reason" example:"Review rated 4 stars"`
	CreatedAt   time.Time `json:"created_at"`
}
