package repo

import (
	"senabet/internal/pg"
	balancerepo "senabet/internal/repo/balance-repo"
	bonusrepo "senabet/internal/repo/bonus-repo"
	casinorepo "senabet/internal/repo/casino-repo"
	challengerepo "senabet/internal/repo/challenge-repo"
	gamerepo "senabet/internal/repo/game-repo"
	userrepo "senabet/internal/repo/user-repo"
	"senabet/internal/schedule"
	"senabet/internal/service/authservice"
	"senabet/internal/service/bonusservice"
	"senabet/internal/service/casinoservice"
	"senabet/internal/service/gameservice"
)

type BalanceRepo interface {
	bonusservice.BalanceRepo
	casinoservice.BalanceRepo
}

type GameRepo interface {
	gameservice.GameRepo
	schedule.GameRepo
}

type Repositories struct {
	UserRepo      authservice.Repo
	BalanceRepo   *balancerepo.Repository
	ChallengeRepo bonusservice.ChallengeRepo
	BonusRepo     bonusservice.BonusRepo
	CasinoRepo    casinoservice.CasinoRepo
	GameRepo      GameRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	balanceRepo := balancerepo.New(conn, txManager)
	challengeRepo := challengerepo.New(conn)
	bonusRepo := bonusrepo.New(conn)
	casinoRepo := casinorepo.New(conn)
	gameRepo := gamerepo.New(conn)

	return &Repositories{
		UserRepo:      userRepo,
		BalanceRepo:   balanceRepo,
		ChallengeRepo: challengeRepo,
		BonusRepo:     bonusRepo,
		CasinoRepo:    casinoRepo,
		GameRepo:      gameRepo,
	}
}
