package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "senabet/docs"
	authhandlers "senabet/internal/handlers/auth"
	balancehandlers "senabet/internal/handlers/balance"
	bonushandlers "senabet/internal/handlers/bonus"
	casinohandlers "senabet/internal/handlers/casino"
	gameshandlers "senabet/internal/handlers/games"
	"senabet/internal/service"
	"senabet/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type BonusHandler interface {
	GetChallenge(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	GetBonuses(w http.ResponseWriter, r *http.Request)
	CreateChallenge(w http.ResponseWriter, r *http.Request)
}

type CasinoHandler interface {
	PlayRoulette(w http.ResponseWriter, r *http.Request)
	StartCrash(w http.ResponseWriter, r *http.Request)
	CashOutCrash(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type GamesHandler interface {
	GetGames(w http.ResponseWriter, r *http.Request)
	GetTournaments(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	BonusHandler   BonusHandler
	CasinoHandler  CasinoHandler
	GamesHandler   GamesHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		BonusHandler:   bonushandlers.New(s.BonusService),
		CasinoHandler:  casinohandlers.New(s.CasinoService),
		GamesHandler:   gameshandlers.New(s.GameService),
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
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)
		r.Get("/games", h.GamesHandler.GetGames)
		r.Get("/tournaments", h.GamesHandler.GetTournaments)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/user", func(r chi.Router) {
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Route("/bonus", func(r chi.Router) {
					r.Get("/challenge", h.BonusHandler.GetChallenge)
					r.Post("/claim", h.BonusHandler.Claim)
				})
				r.Get("/bonuses", h.BonusHandler.GetBonuses)
				r.Route("/casino", func(r chi.Router) {
					r.Post("/roulette", h.CasinoHandler.PlayRoulette)
					r.Post("/crash/start", h.CasinoHandler.StartCrash)
					r.Post("/crash/cashout", h.CasinoHandler.CashOutCrash)
					r.Get("/history", h.CasinoHandler.GetHistory)
				})
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Post("/admin/challenges", h.BonusHandler.CreateChallenge)
			})
		})
	})

	return r
}
