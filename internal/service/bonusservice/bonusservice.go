package bonusservice

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"senabet/internal/domain"
	"senabet/internal/pg"
)

const (
	// DailyRewardAmount is credited for a correct daily challenge answer.
	DailyRewardAmount = 50.0
	// rewardExpiry is how long a granted bonus stays redeemable.
	rewardExpiry = 30 * 24 * time.Hour
)

var (
	ErrEmptyCatalog      = errors.New("challenge catalog is empty")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrInvalidChallenge  = errors.New("invalid challenge")
	ErrUserNotFound      = errors.New("user not found")
)

type ChallengeRepo interface {
	GetByID(ctx context.Context, challengeID int) (*domain.Challenge, error)
	PickRandom(ctx context.Context) (*domain.Challenge, error)
	Create(ctx context.Context, ch *domain.Challenge) (*domain.Challenge, error)
	HasAttemptSince(ctx context.Context, userID int, since time.Time) (bool, error)
	CreateAttempt(ctx context.Context, attempt *domain.ChallengeAttempt, day time.Time) (*domain.ChallengeAttempt, error)
}

type BonusRepo interface {
	CreateGrant(ctx context.Context, grant *domain.BonusGrant) (*domain.BonusGrant, error)
	GetGrantsByUserID(ctx context.Context, userID int) ([]domain.BonusGrant, error)
}

type BalanceRepo interface {
	Credit(ctx context.Context, userID int, amount float64) (*domain.Balance, error)
}

// ClaimResult describes the outcome of a daily challenge claim. A rejected
// duplicate claim is not an error: Accepted is false and nothing was
// written. The correct answer is revealed only on an accepted, incorrect
// attempt.
type ClaimResult struct {
	Accepted      bool
	Correct       bool
	RewardAmount  float64
	CorrectAnswer string
	NewBalance    float64
}

type Service struct {
	challengeRepo ChallengeRepo
	bonusRepo     BonusRepo
	balanceRepo   BalanceRepo
	txManager     pg.TXManager

	now func() time.Time
}

func New(challengeRepo ChallengeRepo, bonusRepo BonusRepo, balanceRepo BalanceRepo, txManager pg.TXManager) *Service {
	return &Service{
		challengeRepo: challengeRepo,
		bonusRepo:     bonusRepo,
		balanceRepo:   balanceRepo,
		txManager:     txManager,
		now:           time.Now,
	}
}

// SelectChallenge picks one challenge uniformly at random from the full
// catalog. Selection has no memory: the same challenge may come up again
// for any user on any day.
func (s *Service) SelectChallenge(ctx context.Context) (*domain.Challenge, error) {
	ch, err := s.challengeRepo.PickRandom(ctx)
	if err != nil {
		zap.L().Error("failed to pick challenge", zap.Error(err))
		return nil, err
	}
	if ch == nil {
		return nil, ErrEmptyCatalog
	}
	return ch, nil
}

// Claim settles a daily challenge attempt. The attempt record, the balance
// credit and the bonus grant are written in one transaction; the unique
// attempt-per-day constraint rejects a concurrent duplicate inside it.
func (s *Service) Claim(ctx context.Context, userID, challengeID int, answer string) (*ClaimResult, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		zap.L().Error("failed to get challenge", zap.Error(err))
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	correct := answer == challenge.Answer
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var res *ClaimResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		attempted, err := s.challengeRepo.HasAttemptSince(ctx, userID, startOfDay)
		if err != nil {
			return err
		}
		if attempted {
			res = &ClaimResult{Accepted: false}
			return nil
		}

		attempt := &domain.ChallengeAttempt{
			UserID:          userID,
			ChallengeID:     challengeID,
			SubmittedAnswer: answer,
			IsCorrect:       correct,
			CompletedAt:     now,
		}
		created, err := s.challengeRepo.CreateAttempt(ctx, attempt, startOfDay)
		if err != nil {
			zap.L().Error("failed to create challenge attempt", zap.Error(err))
			return err
		}
		if created == nil {
			// a concurrent claim won the unique (user, day) slot
			res = &ClaimResult{Accepted: false}
			return nil
		}

		if !correct {
			res = &ClaimResult{
				Accepted:      true,
				Correct:       false,
				CorrectAnswer: challenge.Answer,
			}
			return nil
		}

		balance, err := s.balanceRepo.Credit(ctx, userID, DailyRewardAmount)
		if err != nil {
			zap.L().Error("failed to credit daily reward", zap.Error(err))
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}

		grant := &domain.BonusGrant{
			UserID:    userID,
			Kind:      domain.BonusKindDailyChallenge,
			Amount:    DailyRewardAmount,
			Status:    domain.BonusStatusClaimed,
			CreatedAt: now,
			ExpiresAt: now.Add(rewardExpiry),
		}
		if _, err := s.bonusRepo.CreateGrant(ctx, grant); err != nil {
			zap.L().Error("failed to create bonus grant", zap.Error(err))
			return err
		}

		res = &ClaimResult{
			Accepted:     true,
			Correct:      true,
			RewardAmount: DailyRewardAmount,
			NewBalance:   balance.CurrentBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) ListBonuses(ctx context.Context, userID int) ([]domain.BonusGrant, error) {
	grants, err := s.bonusRepo.GetGrantsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch bonus grants", zap.Error(err))
		return nil, err
	}
	return grants, nil
}

// CreateChallenge adds a challenge to the catalog. The answer must be one
// of the listed options.
func (s *Service) CreateChallenge(ctx context.Context, challenge *domain.Challenge) (*domain.Challenge, error) {
	if challenge.Question == "" || len(challenge.Options) < 2 || !slices.Contains(challenge.Options, challenge.Answer) {
		return nil, ErrInvalidChallenge
	}
	created, err := s.challengeRepo.Create(ctx, challenge)
	if err != nil {
		zap.L().Error("failed to create challenge", zap.Error(err))
		return nil, err
	}
	return created, nil
}
