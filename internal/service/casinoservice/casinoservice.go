package casinoservice

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"senabet/internal/domain"
	"senabet/internal/pg"
)

const historyLimit = 10

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidWager        = errors.New("invalid wager")
	ErrInvalidChoice       = errors.New("invalid roulette choice")
	ErrRoundNotFound       = errors.New("crash round not found")
	ErrRoundSettled        = errors.New("crash round already settled")
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	SettleWager(ctx context.Context, userID int, wager, payout float64) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount float64) (*domain.Balance, error)
}

type CasinoRepo interface {
	CreateRound(ctx context.Context, round *domain.CasinoRound) (*domain.CasinoRound, error)
	GetRoundsByUserID(ctx context.Context, userID, limit int) ([]domain.CasinoRound, error)
}

type Service struct {
	balanceRepo BalanceRepo
	casinoRepo  CasinoRepo
	txManager   pg.TXManager

	mu     sync.Mutex
	rounds map[string]*crashRound

	now       func() time.Time
	intn      func(n int) int
	randFloat func() float64
}

func New(balanceRepo BalanceRepo, casinoRepo CasinoRepo, txManager pg.TXManager) *Service {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		balanceRepo: balanceRepo,
		casinoRepo:  casinoRepo,
		txManager:   txManager,
		rounds:      make(map[string]*crashRound),
		now:         time.Now,
		intn:        rnd.Intn,
		randFloat:   rnd.Float64,
	}
}

// Start launches the crash round sweeper. It settles rounds whose crash
// point has passed without a cash-out, so an abandoned client cannot leave
// a round open forever.
func (s *Service) Start(ctx context.Context) {
	go s.sweep(ctx)
}

func (s *Service) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping crash sweeper")
			return
		case <-ticker.C:
			s.settleCrashedRounds(ctx)
		}
	}
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.CasinoRound, error) {
	rounds, err := s.casinoRepo.GetRoundsByUserID(ctx, userID, historyLimit)
	if err != nil {
		zap.L().Error("failed to fetch casino history", zap.Error(err))
		return nil, err
	}
	return rounds, nil
}
