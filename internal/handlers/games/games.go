package games

import (
	"context"
	"net/http"
	"time"

	"senabet/internal/domain"
	"senabet/internal/dto"
	"senabet/pkg/utils"
)

type Service interface {
	ListGames(ctx context.Context, filter domain.GameFilter) ([]domain.Game, error)
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
}

type GamesHandler struct {
	gameService Service
}

func New(gameService Service) *GamesHandler {
	return &GamesHandler{
		gameService: gameService,
	}
}

// GetGames godoc
//
//	@Summary		List games
//	@Description	List upcoming and live games, earliest kickoff first. Optionally filtered by sport and by kickoff day.
//	@Tags			Games
//	@Produce		json
//	@Param			sport	query		string	false	"Sport to filter by"			example(football)
//	@Param			date	query		string	false	"Kickoff day (YYYY-MM-DD)"	example(2025-09-02)
//	@Success		200		{array}		dto.GameResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date filter"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games [get]
func (h *GamesHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	filter := domain.GameFilter{Sport: r.URL.Query().Get("sport")}
	if date := r.URL.Query().Get("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date filter, expected YYYY-MM-DD")
			return
		}
		filter.Day = day
	}

	games, err := h.gameService.ListGames(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch games")
		return
	}

	response := make([]dto.GameResponseDTO, len(games))
	for i, g := range games {
		response[i] = dto.GameResponseDTO{
			ID:        g.ID,
			Sport:     g.Sport,
			HomeTeam:  g.HomeTeam,
			AwayTeam:  g.AwayTeam,
			KickoffAt: g.KickoffAt,
			Status:    g.Status,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTournaments godoc
//
//	@Summary		List tournaments
//	@Description	List tournaments, earliest start first.
//	@Tags			Games
//	@Produce		json
//	@Success		200	{array}		dto.TournamentResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments [get]
func (h *GamesHandler) GetTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.gameService.ListTournaments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tournaments")
		return
	}

	response := make([]dto.TournamentResponseDTO, len(tournaments))
	for i, t := range tournaments {
		response[i] = dto.TournamentResponseDTO{
			ID:        t.ID,
			Name:      t.Name,
			Sport:     t.Sport,
			PrizePool: t.PrizePool,
			StartsAt:  t.StartsAt,
			EndsAt:    t.EndsAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
