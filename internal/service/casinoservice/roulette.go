package casinoservice

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"senabet/internal/domain"
	"senabet/pkg/validate"
)

const (
	ChoiceRed   = "red"
	ChoiceBlack = "black"
	ChoiceEven  = "even"
	ChoiceOdd   = "odd"

	roulettePockets     = 37 // 0..36
	rouletteWinMultiple = 2
)

// European layout. 0 is neither red/black nor even/odd for betting.
var rouletteRed = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type RouletteResult struct {
	Number     int
	Won        bool
	Payout     float64
	NewBalance float64
}

type rouletteDetails struct {
	Choice string `json:"choice"`
	Number int    `json:"number"`
	Won    bool   `json:"won"`
}

func outcomeMatchesChoice(choice string, number int) bool {
	if number == 0 {
		return false
	}
	switch choice {
	case ChoiceRed:
		return rouletteRed[number]
	case ChoiceBlack:
		return !rouletteRed[number]
	case ChoiceEven:
		return number%2 == 0
	case ChoiceOdd:
		return number%2 == 1
	}
	return false
}

func validChoice(choice string) bool {
	switch choice {
	case ChoiceRed, ChoiceBlack, ChoiceEven, ChoiceOdd:
		return true
	}
	return false
}

// PlayRoulette draws a number, settles the wager against the balance and
// appends the round to history, all in one transaction.
func (s *Service) PlayRoulette(ctx context.Context, userID int, wager float64, choice string) (*RouletteResult, error) {
	if !validate.IsWager(wager) {
		return nil, ErrInvalidWager
	}
	if !validChoice(choice) {
		return nil, ErrInvalidChoice
	}

	number := s.intn(roulettePockets)
	won := outcomeMatchesChoice(choice, number)
	var payout float64
	if won {
		payout = wager * rouletteWinMultiple
	}

	var res *RouletteResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}

		settled, err := s.balanceRepo.SettleWager(ctx, userID, wager, payout)
		if err != nil {
			return err
		}
		if settled == nil {
			return ErrInsufficientBalance
		}

		details, err := json.Marshal(rouletteDetails{Choice: choice, Number: number, Won: won})
		if err != nil {
			return err
		}
		round := &domain.CasinoRound{
			UserID:       userID,
			GameVariant:  domain.GameVariantRoulette,
			WagerAmount:  wager,
			PayoutAmount: payout,
			Details:      details,
			CreatedAt:    s.now(),
		}
		if _, err := s.casinoRepo.CreateRound(ctx, round); err != nil {
			zap.L().Error("failed to record roulette round", zap.Error(err))
			return err
		}

		res = &RouletteResult{
			Number:     number,
			Won:        won,
			Payout:     payout,
			NewBalance: settled.CurrentBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
