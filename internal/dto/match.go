package dto

type MatchRequestDTO struct {
	Language     string   `json:"language" example:"go"`
	CandidateIDs []string `json:"candidate_ids"`
}

type MatchReviewerResponseDTO struct {
	ID                string   `json:"id" example:"0b4f4ee6-1d32-4dd0-8e8e-7f1a1f9a9f36"`
	Username          string   `json:"username" example:"alice"`
	ReputationScore   int      `json:"reputation_score" example:"42"`
	LanguageExpertise []string `json:"language_expertise" example:"go,rust"`
	StakedCredits     float64  `json:"staked_credits" example:"1000"`
}
