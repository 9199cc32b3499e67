package bonus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"senabet/internal/domain"
	"senabet/internal/dto"
	"senabet/internal/service/bonusservice"
	"senabet/pkg/auth"
	"senabet/pkg/utils"
)

type Service interface {
	SelectChallenge(ctx context.Context) (*domain.Challenge, error)
	Claim(ctx context.Context, userID, challengeID int, answer string) (*bonusservice.ClaimResult, error)
	ListBonuses(ctx context.Context, userID int) ([]domain.BonusGrant, error)
	CreateChallenge(ctx context.Context, challenge *domain.Challenge) (*domain.Challenge, error)
}

type BonusHandler struct {
	bonusService Service
}

func New(bonusService Service) *BonusHandler {
	return &BonusHandler{
		bonusService: bonusService,
	}
}

// GetChallenge godoc
//
//	@Summary		Get today's challenge
//	@Description	Pick a random trivia challenge for the daily bonus. The answer is never included.
//	@Tags			Bonus
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ChallengeResponseDTO
//	@Success		204	{object}	utils.Response	"Challenge catalog is empty"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bonus/challenge [get]
func (h *BonusHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.bonusService.SelectChallenge(r.Context())
	if err != nil {
		if errors.Is(err, bonusservice.ErrEmptyCatalog) {
			utils.RespondWithError(w, http.StatusNoContent, "Challenge catalog is empty")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ChallengeResponseDTO{
		ID:         challenge.ID,
		Question:   challenge.Question,
		Options:    challenge.Options,
		Subject:    challenge.Subject,
		Difficulty: challenge.Difficulty,
	})
}

// Claim godoc
//
//	@Summary		Claim the daily bonus
//	@Description	Submit an answer to the daily challenge. A correct answer credits 50 coins; the attempt is recorded win or lose, once per calendar day.
//	@Tags			Bonus
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO	true	"Claim request payload"
//	@Success		200		{object}	dto.ClaimResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Challenge not found"
//	@Failure		409		{object}	dto.ClaimResponseDTO	"Already claimed today"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/bonus/claim [post]
func (h *BonusHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.bonusService.Claim(r.Context(), userID, req.ChallengeID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, bonusservice.ErrChallengeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Challenge not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if !result.Accepted {
		utils.RespondWithJSON(w, http.StatusConflict, dto.ClaimResponseDTO{
			Accepted: false,
			Message:  "You already attempted the daily challenge today. Come back tomorrow!",
		})
		return
	}

	resp := dto.ClaimResponseDTO{
		Accepted: true,
		Correct:  result.Correct,
	}
	if result.Correct {
		resp.RewardAmount = result.RewardAmount
		resp.NewBalance = result.NewBalance
		resp.Message = fmt.Sprintf("Congratulations! You won %.0f coins!", result.RewardAmount)
	} else {
		resp.CorrectAnswer = result.CorrectAnswer
		resp.Message = fmt.Sprintf("Wrong answer. The correct answer was: %s", result.CorrectAnswer)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetBonuses godoc
//
//	@Summary		Get bonus history
//	@Description	List the authenticated user's bonus grants, newest first.
//	@Tags			Bonus
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BonusGrantResponseDTO
//	@Success		204	{object}	utils.Response	"No bonuses found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bonuses [get]
func (h *BonusHandler) GetBonuses(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	grants, err := h.bonusService.ListBonuses(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bonuses")
		return
	}

	if len(grants) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Bonuses not found")
		return
	}

	response := make([]dto.BonusGrantResponseDTO, len(grants))
	for i, g := range grants {
		response[i] = dto.BonusGrantResponseDTO{
			Kind:      g.Kind,
			Amount:    g.Amount,
			Status:    g.Status,
			CreatedAt: g.CreatedAt,
			ExpiresAt: g.ExpiresAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateChallenge godoc
//
//	@Summary		Add a challenge to the catalog
//	@Description	Admin-only challenge curation. The answer must be one of the options.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateChallengeRequestDTO	true	"Challenge payload"
//	@Success		201		{object}	dto.CreateChallengeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid challenge"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/challenges [post]
func (h *BonusHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateChallengeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	challenge, err := h.bonusService.CreateChallenge(r.Context(), &domain.Challenge{
		Question:   req.Question,
		Options:    req.Options,
		Answer:     req.Answer,
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		switch {
		case errors.Is(err, bonusservice.ErrInvalidChallenge):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateChallengeResponseDTO{ID: challenge.ID})
}
