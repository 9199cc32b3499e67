package gameservice

import (
	"context"

	"go.uber.org/zap"

	"senabet/internal/domain"
)

type GameRepo interface {
	ListGames(ctx context.Context, filter domain.GameFilter) ([]domain.Game, error)
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
}

type Service struct {
	gameRepo GameRepo
}

func New(gameRepo GameRepo) *Service {
	return &Service{
		gameRepo: gameRepo,
	}
}

func (s *Service) ListGames(ctx context.Context, filter domain.GameFilter) ([]domain.Game, error) {
	games, err := s.gameRepo.ListGames(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list games", zap.Error(err))
		return nil, err
	}
	return games, nil
}

func (s *Service) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	tournaments, err := s.gameRepo.ListTournaments(ctx)
	if err != nil {
		zap.L().Error("failed to list tournaments", zap.Error(err))
		return nil, err
	}
	return tournaments, nil
}
