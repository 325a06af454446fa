package service

import (
	"github.com/decentracode/creditcore/internal/config"
	"github.com/decentracode/creditcore/internal/metrics"
	"github.com/decentracode/creditcore/internal/pg"
	"github.com/decentracode/creditcore/internal/repo"
	"github.com/decentracode/creditcore/internal/reward"
	accountservice "github.com/decentracode/creditcore/internal/service/accountservice"
	ledgerservice "github.com/decentracode/creditcore/internal/service/ledgerservice"
	matchservice "github.com/decentracode/creditcore/internal/service/matchservice"
	ratingservice "github.com/decentracode/creditcore/internal/service/ratingservice"
	reputationservice "github.com/decentracode/creditcore/internal/service/reputationservice"
	"github.com/decentracode/creditcore/internal/staking"
)

type Services struct {
	AccountService    *accountservice.Service
	LedgerService     *ledgerservice.Service
	ReputationService *reputationservice.Service
	RatingService     *ratingservice.Service
	MatchService      *matchservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, notifier ledgerservice.Notifier, m *metrics.Metrics) *Services {
	tiers := staking.NewResolver(staking.Thresholds{
		Bronze: cfg.BronzeMinStake,
		Silver: cfg.SilverMinStake,
		Gold:   cfg.GoldMinStake,
	})

	rewardCfg := reward.DefaultConfig()
	rewardCfg.BaseReward = cfg.BaseReward
	rewardCfg.GoldThreshold = cfg.GoldMinStake
	rewardCfg.GoldBonus = cfg.GoldBonus
	calculator := reward.NewCalculator(rewardCfg)

	accountService := accountservice.New(repos.AccountRepo)
	ledgerService := ledgerservice.New(repos.AccountRepo, repos.LedgerRepo, txManager, tiers, notifier, m)
	reputationService := reputationservice.New(repos.AccountRepo, repos.ReputationRepo, txManager, m, cfg.DecayGraceDays)
	ratingService := ratingservice.New(calculator, ledgerService, reputationService, repos.AccountRepo, txManager)
	matchService := matchservice.New(repos.AccountRepo, reputationService, m, cfg.MatchTopN)

	return &Services{
		AccountService:    accountService,
		LedgerService:     ledgerService,
		ReputationService: reputationService,
		RatingService:     ratingService,
		MatchService:      matchService,
	}
}
