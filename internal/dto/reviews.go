package dto

type RateReviewRequestDTO struct {
	ReviewerID string `json:"reviewer_id" example:"0b4f4ee6-1d32-4dd0-8e8e-7f1a1f9a9f36"`
	ReviewID   string `json:"review_id" example:"9c1f8a3e-0a4f-4f57-8f2e-1f0b5f9e2b77"`
	Rating     int    `json:"rating" example:"4"`
}

type RateReviewResponseDTO struct {
	CreditReward    float64 `json:"credit_reward" example:"12.5"`
	ReputationDelta int     `json:"reputation_delta" example:"5"`
}

type SubmissionRequestDTO struct {
	Title    string `json:"title" example:"fix race in pool"`
	Priority string `json:"priority" example:"standard"`
}

type SubmissionResponseDTO struct {
	Fee     float64 `json:"fee" example:"10"`
	Balance float64 `json:"balance" example:"115.5"`
}
