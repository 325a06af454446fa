package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/dto"
	"github.com/decentracode/creditcore/internal/service/ratingservice"
	"github.com/decentracode/creditcore/pkg/identity"
	"github.com/decentracode/creditcore/pkg/utils"
)

type RatingService interface {
	RateReview(ctx context.Context, reviewerID, reviewID uuid.UUID, rating int) (*ratingservice.Result, error)
}

type LedgerService interface {
	Debit(ctx context.Context, userID uuid.UUID, amount float64, kind domain.LedgerKind, description string) (float64, error)
}

// Fees is the submission fee table keyed by priority.
type Fees struct {
	Standard float64
	High     float64
}

type ReviewsHandler struct {
	ratingService RatingService
	ledgerService LedgerService
	fees          Fees
}

func New(ratingService RatingService, ledgerService LedgerService, fees Fees) *ReviewsHandler {
	return &ReviewsHandler{
		ratingService: ratingService,
		ledgerService: ledgerService,
		fees:          fees,
	}
}

// RateReview godoc
//
//	@Summary		Rate a completed review
//	@Description	Apply a 1-5 star rating to a review: the reviewer's credit reward and reputation change commit atomically.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RateReviewRequestDTO	true	"Reviewer, review and rating"
//	@Success		200		{object}	dto.RateReviewResponseDTO	"Applied reward and reputation delta"
//	@Failure		400		{object}	utils.Response				"Invalid payload or rating"
//	@Failure		404		{object}	utils.Response				"Reviewer account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/reviews/rating [post]
func (h *ReviewsHandler) RateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.RateReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reviewerID, err := uuid.Parse(req.ReviewerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reviewer_id")
		return
	}
	reviewID, err := uuid.Parse(req.ReviewID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid review_id")
		return
	}

	result, err := h.ratingService.RateReview(r.Context(), reviewerID, reviewID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Reviewer account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RateReviewResponseDTO{
		CreditReward:    result.CreditReward,
		ReputationDelta: result.ReputationDelta,
	})
}

// CreateSubmission godoc
//
//	@Summary		Charge a submission fee
//	@Description	Debit the submission fee for a new review request; standard priority costs less than high.
//	@Tags			Reviews
//	@Security		UserIDHeader
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmissionRequestDTO	true	"Submission title and priority"
//	@Success		200		{object}	dto.SubmissionResponseDTO	"Charged fee and remaining balance"
//	@Failure		400		{object}	utils.Response				"Invalid payload or priority"
//	@Failure		401		{object}	utils.Response				"Missing or invalid caller identity"
//	@Failure		402		{object}	utils.Response				"Insufficient available credits"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/submissions [post]
func (h *ReviewsHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req dto.SubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}

	var fee float64
	switch req.Priority {
	case "", "standard":
		fee = h.fees.Standard
	case "high":
		fee = h.fees.High
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "invalid priority")
		return
	}

	description := fmt.Sprintf("Submission fee for: %s", req.Title)
	balance, err := h.ledgerService.Debit(r.Context(), userID, fee, domain.LedgerKindFee, description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubmissionResponseDTO{
		Fee:     fee,
		Balance: balance,
	})
}
