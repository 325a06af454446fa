package credits

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
	Stake(ctx context.Context, userID uuid.UUID, amount float64) (float64, float64, error)
	Unstake(ctx context.Context, userID uuid.UUID, amount float64) (float64, float64, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Account, domain.StakingTier, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
	Benefits(ctx context.Context, userID uuid.UUID) (domain.StakingTier, []string, error)
}

const defaultTransactionsLimit = 10

type CreditsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *CreditsHandler {
	return &CreditsHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Retrieve the available and staked credit pools and the staking tier for the calling user.
//	@Tags			Credits
//	@Security		UserIDHeader
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balances and tier"
//	@Failure		401	{object}	utils.Response			"Missing or invalid caller identity"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/balance [get]
func (h *CreditsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	account, tier, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Available: account.AvailableCredits,
		Staked:    account.StakedCredits,
		Tier:      string(tier),
	})
}

// Stake godoc
//
//	@Summary		Stake credits
//	@Description	Move credits from the available pool into the staked pool to unlock tier benefits.
//	@Tags			Credits
//	@Security		UserIDHeader
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StakeRequestDTO	true	"Amount to stake"
//	@Success		200		{object}	dto.StakeResponseDTO	"Balances after staking"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"Missing or invalid caller identity"
//	@Failure		402		{object}	utils.Response			"Insufficient available credits"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/stake [post]
func (h *CreditsHandler) Stake(w http.ResponseWriter, r *http.Request) {
	h.moveStake(w, r, h.ledgerService.Stake)
}

// Unstake godoc
//
//	@Summary		Unstake credits
//	@Description	Move credits from the staked pool back into the available pool.
//	@Tags			Credits
//	@Security		UserIDHeader
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StakeRequestDTO	true	"Amount to unstake"
//	@Success		200		{object}	dto.StakeResponseDTO	"Balances after unstaking"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"Missing or invalid caller identity"
//	@Failure		402		{object}	utils.Response			"Insufficient staked credits"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/unstake [post]
func (h *CreditsHandler) Unstake(w http.ResponseWriter, r *http.Request) {
	h.moveStake(w, r, h.ledgerService.Unstake)
}

func (h *CreditsHandler) moveStake(w http.ResponseWriter, r *http.Request, move func(context.Context, uuid.UUID, float64) (float64, float64, error)) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req dto.StakeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	available, staked, err := move(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrInsufficientStake):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.StakeResponseDTO{
		Available: available,
		Staked:    staked,
	})
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	Get the most recent ledger entries for the calling user, newest first.
//	@Tags			Credits
//	@Security		UserIDHeader
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of entries"	default(10)
//	@Success		200		{array}		dto.TransactionResponseDTO	"Ledger entries"
//	@Failure		401		{object}	utils.Response				"Missing or invalid caller identity"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/credits/transactions [get]
func (h *CreditsHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	limit := defaultTransactionsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.ledgerService.ListTransactions(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.TransactionResponseDTO{
			ID:           entry.ID.String(),
			Amount:       entry.Amount,
			Kind:         string(entry.Kind),
			Description:  entry.Description,
			BalanceAfter: entry.BalanceAfter,
			CreatedAt:    entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBenefits godoc
//
//	@Summary		Get staking tier benefits
//	@Description	List the perks unlocked by the calling user's current staking tier.
//	@Tags			Credits
//	@Security		UserIDHeader
//	@Produce		json
//	@Success		200	{object}	dto.BenefitsResponseDTO	"Current tier and its benefits"
//	@Failure		401	{object}	utils.Response			"Missing or invalid caller identity"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/benefits [get]
func (h *CreditsHandler) GetBenefits(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	tier, benefits, err := h.ledgerService.Benefits(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BenefitsResponseDTO{
		Tier:     string(tier),
		Benefits: benefits,
	})
}
