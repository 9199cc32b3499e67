package casino

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"senabet/internal/domain"
	"senabet/internal/dto"
	"senabet/internal/service/casinoservice"
	"senabet/pkg/auth"
	"senabet/pkg/utils"
)

type Service interface {
	PlayRoulette(ctx context.Context, userID int, wager float64, choice string) (*casinoservice.RouletteResult, error)
	StartCrash(ctx context.Context, userID int, wager float64) (*casinoservice.CrashStartResult, error)
	CashOutCrash(ctx context.Context, userID int, handle string) (*casinoservice.CrashResult, error)
	GetHistory(ctx context.Context, userID int) ([]domain.CasinoRound, error)
}

type CasinoHandler struct {
	casinoService Service
}

func New(casinoService Service) *CasinoHandler {
	return &CasinoHandler{
		casinoService: casinoService,
	}
}

// PlayRoulette godoc
//
//	@Summary		Play a roulette round
//	@Description	Wager on red, black, even or odd. A winning choice pays double the wager.
//	@Tags			Casino
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RouletteRequestDTO	true	"Roulette wager payload"
//	@Success		200		{object}	dto.RouletteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid wager"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Invalid choice"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/casino/roulette [post]
func (h *CasinoHandler) PlayRoulette(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RouletteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.casinoService.PlayRoulette(r.Context(), userID, req.Wager, req.Choice)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RouletteResponseDTO{
		Number:     result.Number,
		Won:        result.Won,
		Payout:     result.Payout,
		NewBalance: result.NewBalance,
	})
}

// StartCrash godoc
//
//	@Summary		Start a crash round
//	@Description	Debit the wager and start a crash round. The crash point stays hidden; cash out before it hits.
//	@Tags			Casino
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CrashStartRequestDTO	true	"Crash wager payload"
//	@Success		200		{object}	dto.CrashStartResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid wager"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/casino/crash/start [post]
func (h *CasinoHandler) StartCrash(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CrashStartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.casinoService.StartCrash(r.Context(), userID, req.Wager)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CrashStartResponseDTO{
		Handle:     result.Handle,
		NewBalance: result.NewBalance,
	})
}

// CashOutCrash godoc
//
//	@Summary		Cash out a crash round
//	@Description	Settle a running crash round at the server-computed multiplier. Pays nothing if the round already crashed.
//	@Tags			Casino
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CrashCashOutRequestDTO	true	"Cash-out payload"
//	@Success		200		{object}	dto.CrashCashOutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Round not found"
//	@Failure		409		{object}	utils.Response	"Round already settled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/casino/crash/cashout [post]
func (h *CasinoHandler) CashOutCrash(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CrashCashOutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.casinoService.CashOutCrash(r.Context(), userID, req.Handle)
	if err != nil {
		switch {
		case errors.Is(err, casinoservice.ErrRoundNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, casinoservice.ErrRoundSettled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CrashCashOutResponseDTO{
		CashedOut:  result.CashedOut,
		Multiplier: result.Multiplier,
		Payout:     result.Payout,
		NewBalance: result.NewBalance,
	})
}

// GetHistory godoc
//
//	@Summary		Get casino history
//	@Description	List the authenticated user's last rounds, newest first.
//	@Tags			Casino
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CasinoRoundResponseDTO
//	@Success		204	{object}	utils.Response	"No rounds found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/casino/history [get]
func (h *CasinoHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rounds, err := h.casinoService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	if len(rounds) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Rounds not found")
		return
	}

	response := make([]dto.CasinoRoundResponseDTO, len(rounds))
	for i, round := range rounds {
		response[i] = dto.CasinoRoundResponseDTO{
			GameVariant: round.GameVariant,
			Wager:       round.WagerAmount,
			Payout:      round.PayoutAmount,
			Details:     round.Details,
			CreatedAt:   round.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondSettlementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, casinoservice.ErrInvalidWager):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, casinoservice.ErrInvalidChoice):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, casinoservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, casinoservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
