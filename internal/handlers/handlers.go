package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/decentracode/creditcore/docs"
	"github.com/decentracode/creditcore/internal/config"
	accountshandlers "github.com/decentracode/creditcore/internal/handlers/accounts"
	creditshandlers "github.com/decentracode/creditcore/internal/handlers/credits"
	matchhandlers "github.com/decentracode/creditcore/internal/handlers/match"
	reviewshandlers "github.com/decentracode/creditcore/internal/handlers/reviews"
	"github.com/decentracode/creditcore/internal/service"
	"github.com/decentracode/creditcore/pkg/identity"
)

type AccountsHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetReputationEvents(w http.ResponseWriter, r *http.Request)
}

type CreditsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Stake(w http.ResponseWriter, r *http.Request)
	Unstake(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetBenefits(w http.ResponseWriter, r *http.Request)
}

type ReviewsHandler interface {
	RateReview(w http.ResponseWriter, r *http.Request)
	CreateSubmission(w http.ResponseWriter, r *http.Request)
}

type MatchHandler interface {
	MatchReviewers(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountsHandler AccountsHandler
	CreditsHandler  CreditsHandler
	ReviewsHandler  ReviewsHandler
	MatchHandler    MatchHandler

	registry *prometheus.Registry
}

func New(cfg *config.Config, s *service.Services, registry *prometheus.Registry) *Handlers {
	return &Handlers{
		AccountsHandler: accountshandlers.New(s.AccountService, s.ReputationService),
		CreditsHandler:  creditshandlers.New(s.LedgerService),
		ReviewsHandler: reviewshandlers.New(s.RatingService, s.LedgerService, reviewshandlers.Fees{
			Standard: cfg.FeeStandard,
			High:     cfg.FeeHigh,
		}),
		MatchHandler: matchhandlers.New(s.MatchService),
		registry:     registry,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	r.Route("/api", func(r chi.Router) {
		// rating and matching are called by the review pipeline, not by
		// the reviewer themselves
		r.Post("/reviews/rating", h.ReviewsHandler.RateReview)
		r.Post("/match", h.MatchHandler.MatchReviewers)

		r.Group(func(r chi.Router) {
			r.Use(identity.Middleware)
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountsHandler.CreateAccount)
				r.Get("/me", h.AccountsHandler.GetAccount)
			})
			r.Route("/credits", func(r chi.Router) {
				r.Get("/balance", h.CreditsHandler.GetBalance)
				r.Get("/transactions", h.CreditsHandler.GetTransactions)
				r.Get("/benefits", h.CreditsHandler.GetBenefits)
			})
			r.Post("/stake", h.CreditsHandler.Stake)
			r.Post("/unstake", h.CreditsHandler.Unstake)
			r.Post("/submissions", h.ReviewsHandler.CreateSubmission)
			r.Get("/reputation/events", h.AccountsHandler.GetReputationEvents)
		})
	})

	return r
}
