package service

import (
	"senabet/internal/handlers/auth"
	"senabet/internal/handlers/balance"
	"senabet/internal/handlers/bonus"
	"senabet/internal/handlers/casino"
	"senabet/internal/handlers/games"

	pkgauth "senabet/pkg/auth"

	"senabet/internal/pg"
	"senabet/internal/repo"
	"senabet/internal/service/authservice"
	"senabet/internal/service/balanceservice"
	"senabet/internal/service/bonusservice"
	"senabet/internal/service/casinoservice"
	"senabet/internal/service/gameservice"
)

type Services struct {
	AuthService    auth.Service
	BalanceService balance.Service
	BonusService   bonus.Service
	CasinoService  casino.Service
	GameService    games.Service

	// Casino holds in-flight crash rounds and runs the sweeper.
	Casino *casinoservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	balanceService := balanceservice.New(repo.BalanceRepo)
	bonusService := bonusservice.New(repo.ChallengeRepo, repo.BonusRepo, repo.BalanceRepo, txManager)
	casinoService := casinoservice.New(repo.BalanceRepo, repo.CasinoRepo, txManager)
	gameService := gameservice.New(repo.GameRepo)
	authService := authservice.New(repo.UserRepo, balanceService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		BalanceService: balanceService,
		BonusService:   bonusService,
		CasinoService:  casinoService,
		GameService:    gameService,
		Casino:         casinoService,
	}
}
