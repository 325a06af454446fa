package dto

import "time"

type BalanceResponseDTO struct {
	Available float64 `json:"available" example:"125.5"`
	Staked    float64 `json:"staked" example:"500"`
	Tier      string  `json:"tier" example:"SILVER"`
}

type StakeRequestDTO struct {
	Amount float64 `json:"amount" example:"100"`
}

type StakeResponseDTO struct {
	Available float64 `json:"available" example:"25.5"`
	Staked    float64 `json:"staked" example:"600"`
}

type TransactionResponseDTO struct {
	ID           string    `json:"id" example:"5ac0a1cf-51a4-4b9e-9f7a-52e6b9e1a001"`
	Amount       float64   `json:"amount" example:"-10"`
	Kind         string    `json:"kind" example:"FEE"`
	Description  string    `json:"description" example:"Submission fee for: fix race in pool"`
	BalanceAfter float64   `json:"balance_after" example:"115.5"`
	CreatedAt    time.Time `json:"created_at"`
}

type BenefitsResponseDTO struct {
	Tier     string   `json:"tier" example:"GOLD"`
	Benefits []string `json:"benefits"`
}
