package match

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/decentracode/creditcore/internal/domain"
	"github.com/decentracode/creditcore/internal/dto"
	"github.com/decentracode/creditcore/pkg/utils"
)

type Service interface {
	Rank(ctx context.Context, language string, candidateIDs []uuid.UUID) ([]domain.RankedReviewer, error)
}

type MatchHandler struct {
	matchService Service
}

func New(matchService Service) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// MatchReviewers godoc
//
//	@Summary		Rank reviewers for a submission
//	@Description	Rank the candidate pool for a submission's language and return the best available reviewers.
//	@Tags			Matching
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MatchRequestDTO	true	"Language and candidate pool"
//	@Success		200		{array}		dto.MatchReviewerResponseDTO	"Ranked reviewers, best first"
//	@Failure		400		{object}	utils.Response					"Invalid payload"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/match [post]
func (h *MatchHandler) MatchReviewers(w http.ResponseWriter, r *http.Request) {
	var req dto.MatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "language is required")
		return
	}

	candidateIDs := make([]uuid.UUID, 0, len(req.CandidateIDs))
	for _, raw := range req.CandidateIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid candidate id: "+raw)
			return
		}
		candidateIDs = append(candidateIDs, id)
	}

	ranked, err := h.matchService.Rank(r.Context(), req.Language, candidateIDs)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MatchReviewerResponseDTO, len(ranked))
	for i, reviewer := range ranked {
		response[i] = dto.MatchReviewerResponseDTO{
			ID:                reviewer.ID.String(),
			Username:          reviewer.Username,
			ReputationScore:   reviewer.ReputationScore,
			LanguageExpertise: reviewer.LanguageExpertise,
			StakedCredits:     reviewer.StakedCredits,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
