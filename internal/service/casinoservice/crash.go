package casinoservice

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"senabet/internal/domain"
	"senabet/pkg/validate"
)

const (
	crashPointMin  = 1.1
	crashPointSpan = 8.9
	// the multiplier climbs from 1.00 by crashStep every crashTick
	crashStep     = 0.01
	crashTick     = 100 * time.Millisecond
	sweepInterval = time.Second
)

// crashRound is an in-flight crash game. The crash point stays server-side;
// the caller only ever sees the handle. Rounds live for seconds and die
// with the process.
type crashRound struct {
	handle     string
	userID     int
	wager      float64
	crashPoint float64
	startedAt  time.Time
	settled    bool
}

type CrashStartResult struct {
	Handle     string
	NewBalance float64
}

type CrashResult struct {
	CashedOut  bool
	Multiplier float64
	Payout     float64
	NewBalance float64
}

type crashDetails struct {
	Multiplier float64 `json:"multiplier"`
	CashedOut  bool    `json:"cashed_out"`
	CrashPoint float64 `json:"crash_point"`
}

// multiplierAt is the server-side source of truth for the current
// multiplier of a round: 1.00 plus one step per elapsed tick.
func multiplierAt(startedAt, at time.Time) float64 {
	ticks := at.Sub(startedAt) / crashTick
	m := 1.0 + crashStep*float64(ticks)
	return math.Round(m*100) / 100
}

// StartCrash debits the wager up front and registers a round with a hidden
// crash point drawn uniformly from [1.1, 10.0).
func (s *Service) StartCrash(ctx context.Context, userID int, wager float64) (*CrashStartResult, error) {
	if !validate.IsWager(wager) {
		return nil, ErrInvalidWager
	}

	var newBalance float64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}

		debited, err := s.balanceRepo.SettleWager(ctx, userID, wager, 0)
		if err != nil {
			return err
		}
		if debited == nil {
			return ErrInsufficientBalance
		}
		newBalance = debited.CurrentBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	round := &crashRound{
		handle:     uuid.NewString(),
		userID:     userID,
		wager:      wager,
		crashPoint: crashPointMin + s.randFloat()*crashPointSpan,
		startedAt:  s.now(),
	}

	s.mu.Lock()
	s.rounds[round.handle] = round
	s.mu.Unlock()

	zap.L().Debug("crash round started", zap.String("handle", round.handle), zap.Int("userID", userID))
	return &CrashStartResult{Handle: round.handle, NewBalance: newBalance}, nil
}

// CashOutCrash settles a running round at the multiplier the server clock
// says it has reached now. Any multiplier the client reports is ignored.
// If the crash point was already passed the round crashed first and pays
// nothing. A handle owned by another user reads as not found.
func (s *Service) CashOutCrash(ctx context.Context, userID int, handle string) (*CrashResult, error) {
	s.mu.Lock()
	round, ok := s.rounds[handle]
	if !ok || round.userID != userID {
		s.mu.Unlock()
		return nil, ErrRoundNotFound
	}
	if round.settled {
		s.mu.Unlock()
		return nil, ErrRoundSettled
	}
	round.settled = true
	s.mu.Unlock()

	multiplier := multiplierAt(round.startedAt, s.now())
	if multiplier >= round.crashPoint {
		// the wager is already gone; the caller still gets its balance back
		var res *CrashResult
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.recordCrashed(ctx, round); err != nil {
				return err
			}
			balance, err := s.balanceRepo.GetUserBalance(ctx, round.userID)
			if err != nil {
				return err
			}
			if balance == nil {
				return ErrUserNotFound
			}
			res = &CrashResult{CashedOut: false, Multiplier: 0, Payout: 0, NewBalance: balance.CurrentBalance}
			return nil
		})
		if err != nil {
			s.reopen(round)
			return nil, err
		}
		return res, nil
	}

	payout := round.wager * multiplier

	var res *CrashResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.Credit(ctx, round.userID, payout)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}

		details, err := json.Marshal(crashDetails{
			Multiplier: multiplier,
			CashedOut:  true,
			CrashPoint: round.crashPoint,
		})
		if err != nil {
			return err
		}
		record := &domain.CasinoRound{
			UserID:       round.userID,
			GameVariant:  domain.GameVariantCrash,
			WagerAmount:  round.wager,
			PayoutAmount: payout,
			Details:      details,
			CreatedAt:    s.now(),
		}
		if _, err := s.casinoRepo.CreateRound(ctx, record); err != nil {
			zap.L().Error("failed to record crash round", zap.Error(err))
			return err
		}

		res = &CrashResult{
			CashedOut:  true,
			Multiplier: multiplier,
			Payout:     payout,
			NewBalance: balance.CurrentBalance,
		}
		return nil
	})
	if err != nil {
		s.reopen(round)
		return nil, err
	}
	return res, nil
}

// recordCrashed appends the zero-payout history row for a round that hit
// its crash point. The wager was taken at start, so no balance write is
// needed.
func (s *Service) recordCrashed(ctx context.Context, round *crashRound) error {
	details, err := json.Marshal(crashDetails{
		Multiplier: 0,
		CashedOut:  false,
		CrashPoint: round.crashPoint,
	})
	if err != nil {
		return err
	}
	record := &domain.CasinoRound{
		UserID:       round.userID,
		GameVariant:  domain.GameVariantCrash,
		WagerAmount:  round.wager,
		PayoutAmount: 0,
		Details:      details,
		CreatedAt:    s.now(),
	}
	if _, err := s.casinoRepo.CreateRound(ctx, record); err != nil {
		zap.L().Error("failed to record crashed round", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) reopen(round *crashRound) {
	s.mu.Lock()
	round.settled = false
	s.mu.Unlock()
}

// settleCrashedRounds closes rounds whose multiplier passed the crash point
// without a cash-out and prunes rounds settled earlier.
func (s *Service) settleCrashedRounds(ctx context.Context) {
	now := s.now()

	s.mu.Lock()
	var crashed []*crashRound
	for handle, round := range s.rounds {
		if round.settled {
			delete(s.rounds, handle)
			continue
		}
		if multiplierAt(round.startedAt, now) >= round.crashPoint {
			round.settled = true
			crashed = append(crashed, round)
			delete(s.rounds, handle)
		}
	}
	s.mu.Unlock()

	for _, round := range crashed {
		if err := s.recordCrashed(ctx, round); err != nil {
			zap.L().Error("failed to settle crashed round", zap.String("handle", round.handle), zap.Error(err))
		}
	}
}
