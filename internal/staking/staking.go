// Package staking derives a user's staking tier from the amount of
// credits locked in the non-spendable pool. Thresholds are injected at
// construction; the resolver itself is pure and does no I/O.
package staking

import "github.com/decentracode/creditcore/internal/domain"

type Thresholds struct {
	Bronze float64
	Silver float64
	Gold   float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Bronze: 100,
		Silver: 500,
		Gold:   1000,
	}
}

var benefitsByTier = map[domain.StakingTier][]string{
	domain.TierBronze: {
		"Priority matching",
		"Extended feedback",
		"Badge on profile",
	},
	domain.TierSilver: {
		"All Bronze perks",
		"AI pair program",
		"Private reviews",
		"Custom templates",
		"Priority support",
	},
	domain.TierGold: {
		"All Silver perks",
		"Custom models",
		"Team accounts",
		"Advanced analytics",
	},
}

type Resolver struct {
	thresholds Thresholds
}

func NewResolver(thresholds Thresholds) *Resolver {
	return &Resolver{thresholds: thresholds}
}

// TierOf maps staked credits to a tier. The highest threshold met wins.
func (r *Resolver) TierOf(stakedCredits float64) domain.StakingTier {
	switch {
	case stakedCredits >= r.thresholds.Gold:
		return domain.TierGold
	case stakedCredits >= r.thresholds.Silver:
		return domain.TierSilver
	case stakedCredits >= r.thresholds.Bronze:
		return domain.TierBronze
	default:
		return domain.TierNone
	}
}

// Benefits returns the perks unlocked by a tier. Unknown tiers and
// TierNone yield an empty list.
func (r *Resolver) Benefits(tier domain.StakingTier) []string {
	return benefitsByTier[tier]
}

// GoldThreshold exposes the Gold cutoff for the reward bonus check.
func (r *Resolver) GoldThreshold() float64 {
	return r.thresholds.Gold
}
