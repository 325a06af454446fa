package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/dto"
	"github.com/decentracode/creditcore/pkg/identity"
	"github.com/decentracode/creditcore/pkg/utils"
)

type Service interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, username string, languages []string, available bool) (*domain.Account, error)
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
}

type ReputationService interface {
	ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReputationEvent, error)
}

const defaultEventsLimit = 10

type AccountsHandler struct {
	accountService    Service
	reputationService ReputationService
}

func New(accountService Service, reputationService ReputationService) *AccountsHandler {
	return &AccountsHandler{
		accountService:    accountService,
		reputationService: reputationService,
	}
}

func accountResponse(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		UserID:            account.UserID.String(),
		Username:          account.Username,
		AvailableCredits:  account.AvailableCredits,
		StakedCredits:     account.StakedCredits,
		ReputationScore:   account.ReputationScore,
		LanguageExpertise: account.LanguageExpertise,
		IsAvailable:       account.IsAvailable,
		LastReviewAt:      account.LastReviewAt,
		CreatedAt:         account.CreatedAt,
	}
}

// CreateAccount godoc
//
//	@Summary		Create a reviewer account
//	@Description	Provision an account for the calling user with zero balances and zero reputation.
//	@Tags			Accounts
//	@Security		UserIDHeader
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Username, languages and availability"
//	@Success		201		{object}	dto.AccountResponseDTO		"Created account"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Missing or invalid caller identity"
//	@Failure		409		{object}	utils.Response				"Account already exists"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req dto.CreateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "username is required")
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), userID, req.Username, req.LanguageExpertise, req.IsAvailable)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			utils.RespondWithError(w, http.StatusConflict, "Account already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, accountResponse(account))
}

// GetAccount godoc
//
//	@Summary		Get the calling user's account
//	@Tags			Accounts
//	@Security		UserIDHeader
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Account"
//	@Failure		401	{object}	utils.Response			"Missing or invalid caller identity"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/me [get]
func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, accountResponse(account))
}

// GetReputationEvents godoc
//
//	@Summary		Get reputation history
//	@Description	Get the most recent reputation events for the calling user, newest first.
//	@Tags			Accounts
//	@Security		UserIDHeader
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of events"	default(10)
//	@Success		200		{array}		dto.ReputationEventResponseDTO	"Reputation events"
//	@Failure		401		{object}	utils.Response					"Missing or invalid caller identity"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/reputation/events [get]
func (h *AccountsHandler) GetReputationEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	limit := defaultEventsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	events, err := h.reputationService.ListEvents(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reputation events")
		return
	}

	response := make([]dto.ReputationEventResponseDTO, len(events))
	for i, event := range events {
		response[i] = dto.ReputationEventResponseDTO{
			ID:          event.ID.String(),
			ActionType:  string(event.ActionType),
			ScoreChange: event.ScoreChange,
			Reason:      event.Reason,
			CreatedAt:   event.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
