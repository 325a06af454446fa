// Package reward translates a review rating into its economic and
// reputational effects. The calculator has no persistence; the rating
// flow applies its output through the ledger and reputation services.
package reward

import "github.com/decentracode/creditcore/internal/domain"

type Config struct {
	BaseReward       float64
	GoldThreshold    float64
	GoldBonus        float64
	Multipliers      map[int]float64
	ReputationDeltas map[int]int
}

func DefaultConfig() Config {
	return Config{
		BaseReward:    10,
		GoldThreshold: 1000,
		GoldBonus:     1.10,
		Multipliers: map[int]float64{
			1: 0,
			2: 0,
			3: 1,
			4: 1.25,
			5: 1.5,
		},
		ReputationDeltas: map[int]int{
			1: -5,
			2: -2,
			3: 1,
			4: 5,
			5: 10,
		},
	}
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Compute returns the credit reward and reputation delta for a rating.
// Reviewers staked at or above the Gold threshold earn the Gold bonus on
// the credit reward. Ratings outside 1..5 are rejected before any effect.
func (c *Calculator) Compute(rating int, reviewerStakedCredits float64) (float64, int, error) {
	multiplier, ok := c.cfg.Multipliers[rating]
	if !ok {
		return 0, 0, domain.ErrInvalidRating
	}

	creditReward := c.cfg.BaseReward * multiplier
	if reviewerStakedCredits >= c.cfg.GoldThreshold {
		creditReward *= c.cfg.GoldBonus
	}

	return creditReward, c.cfg.ReputationDeltas[rating], nil
}
