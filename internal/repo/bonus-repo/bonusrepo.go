package bonusrepo

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

func (r *Repository) CreateGrant(ctx context.Context, grant *domain.BonusGrant) (*domain.BonusGrant, error) {
	query := `
		INSERT INTO bonus_grants (user_id, kind, amount, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		grant.UserID, grant.Kind, grant.Amount, grant.Status, grant.CreatedAt, grant.ExpiresAt,
	).Scan(&grant.ID)
	if err != nil {
		zap.L().Error("can't save bonus grant", zap.Error(err))
		return nil, err
	}
	return grant, nil
}

func (r *Repository) GetGrantsByUserID(ctx context.Context, userID int) ([]domain.BonusGrant, error) {
	query := `
        SELECT id, user_id, kind, amount, status, created_at, expires_at
        FROM bonus_grants
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch bonus grants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var grants []domain.BonusGrant
	for rows.Next() {
		var g domain.BonusGrant
		err := rows.Scan(&g.ID, &g.UserID, &g.Kind, &g.Amount, &g.Status, &g.CreatedAt, &g.ExpiresAt)
		if err != nil {
			zap.L().Error("failed to scan bonus grant row", zap.Error(err))
			return nil, err
		}
		grants = append(grants, g)
	}

	return grants, nil
}
