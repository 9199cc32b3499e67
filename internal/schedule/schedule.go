package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"senabet/internal/config"
	"senabet/internal/domain"
	"senabet/pkg/clients"
)

var syncingGames sync.Map

type GameRepo interface {
	UpsertGame(ctx context.Context, game *domain.Game) error
}

// fixture is one entry of the external schedule feed.
type fixture struct {
	ExternalID string    `json:"id"`
	Sport      string    `json:"sport"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	KickoffAt  time.Time `json:"kickoff_at"`
	Status     string    `json:"status"`
}

// Service keeps the games table in sync with the external fixtures feed.
type Service struct {
	url            string
	gameRepo       GameRepo
	client         clients.HTTPClientI
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, gameRepo GameRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.ScheduleAddress,
		gameRepo:       gameRepo,
		client:         client,
		workerPool:     NewWorkerPool(4),
		updateInterval: time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Schedule sync service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping schedule sync")
			return
		case <-ticker.C:
			s.syncFixtures(ctx)
		}
	}
}

func (s *Service) syncFixtures(ctx context.Context) {
	fixtures, err := s.fetchFixtures()
	if err != nil {
		zap.L().Error("Failed to fetch fixtures", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, f := range fixtures {
		f := f

		if _, loaded := syncingGames.LoadOrStore(f.ExternalID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer syncingGames.Delete(f.ExternalID)
				return s.gameRepo.UpsertGame(ctx, &domain.Game{
					ExternalID: f.ExternalID,
					Sport:      f.Sport,
					HomeTeam:   f.HomeTeam,
					AwayTeam:   f.AwayTeam,
					KickoffAt:  f.KickoffAt,
					Status:     f.Status,
				})
			})
			if err != nil {
				syncingGames.Delete(f.ExternalID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error syncing fixtures", zap.Error(err))
	}
}

func (s *Service) fetchFixtures() ([]fixture, error) {
	statusCode, body, err := s.client.Get(s.url + "/api/fixtures")
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("fixtures feed returned status %d", statusCode)
	}

	var fixtures []fixture
	if err := json.Unmarshal(body, &fixtures); err != nil {
		return nil, fmt.Errorf("can't parse fixtures feed: %w", err)
	}
	return fixtures, nil
}
