package casinorepo

import (
	"context"

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

func (r *Repository) CreateRound(ctx context.Context, round *domain.CasinoRound) (*domain.CasinoRound, error) {
	query := `
		INSERT INTO casino_rounds (user_id, game_variant, wager_amount, payout_amount, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		round.UserID, round.GameVariant, round.WagerAmount, round.PayoutAmount,
		round.Details, round.CreatedAt,
	).Scan(&round.ID)
	if err != nil {
		zap.L().Error("can't save casino round", zap.Error(err))
		return nil, err
	}
	return round, nil
}

func (r *Repository) GetRoundsByUserID(ctx context.Context, userID, limit int) ([]domain.CasinoRound, error) {
	query := `
        SELECT id, user_id, game_variant, wager_amount, payout_amount, details, created_at
        FROM casino_rounds
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch casino rounds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rounds []domain.CasinoRound
	for rows.Next() {
		var cr domain.CasinoRound
		err := rows.Scan(&cr.ID, &cr.UserID, &cr.GameVariant, &cr.WagerAmount, &cr.PayoutAmount, &cr.Details, &cr.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan casino round row", zap.Error(err))
			return nil, err
		}
		rounds = append(rounds, cr)
	}

	return rounds, nil
}
