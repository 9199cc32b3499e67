package gamerepo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"senabet/internal/domain"
	"senabet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListGames(ctx context.Context, filter domain.GameFilter) ([]domain.Game, error) {
	query := `
        SELECT id, external_id, sport, home_team, away_team, kickoff_at, status
        FROM games
    `
	var conds []string
	var args []any
	if filter.Sport != "" {
		args = append(args, filter.Sport)
		conds = append(conds, fmt.Sprintf("sport = $%d", len(args)))
	}
	if !filter.Day.IsZero() {
		args = append(args, filter.Day, filter.Day.AddDate(0, 0, 1))
		conds = append(conds, fmt.Sprintf("kickoff_at >= $%d AND kickoff_at < $%d", len(args)-1, len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY kickoff_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch games", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		err := rows.Scan(&g.ID, &g.ExternalID, &g.Sport, &g.HomeTeam, &g.AwayTeam, &g.KickoffAt, &g.Status)
		if err != nil {
			zap.L().Error("failed to scan game row", zap.Error(err))
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}

func (r *Repository) UpsertGame(ctx context.Context, game *domain.Game) error {
	query := `
		INSERT INTO games (external_id, sport, home_team, away_team, kickoff_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (external_id) DO UPDATE
		SET sport = EXCLUDED.sport,
		    home_team = EXCLUDED.home_team,
		    away_team = EXCLUDED.away_team,
		    kickoff_at = EXCLUDED.kickoff_at,
		    status = EXCLUDED.status
	`
	_, err := r.db.Exec(ctx, query,
		game.ExternalID, game.Sport, game.HomeTeam, game.AwayTeam, game.KickoffAt, game.Status)
	if err != nil {
		zap.L().Error("can't upsert game", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	query := `
        SELECT id, name, sport, prize_pool, starts_at, ends_at
        FROM tournaments
        ORDER BY starts_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		var t domain.Tournament
		err := rows.Scan(&t.ID, &t.Name, &t.Sport, &t.PrizePool, &t.StartsAt, &t.EndsAt)
		if err != nil {
			zap.L().Error("failed to scan tournament row", zap.Error(err))
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	return tournaments, nil
}
