package balanceservice

import (
	"context"

	"go.uber.org/zap"

	"senabet/internal/domain"
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type Service struct {
	balanceRepo BalanceRepo
}

func New(balanceRepo BalanceRepo) *Service {
	return &Service{
		balanceRepo: balanceRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}
