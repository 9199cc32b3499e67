package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"senabet/internal/domain"
	"senabet/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, TxManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: TxManager,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, wagered_total
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WageredTotal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, current_balance, wagered_total)
        VALUES ($1, 0, 0)
        RETURNING id, user_id, current_balance, wagered_total
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WageredTotal)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit unconditionally adds amount to the user balance. Used for bonus
// rewards and crash cash-outs, where the wager was already taken.
func (r *Repository) Credit(ctx context.Context, userID int, amount float64) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET current_balance = current_balance + $1
		WHERE user_id = $2
		RETURNING id, user_id, current_balance, wagered_total
	`
	var balance domain.Balance
	row := r.db.QueryRow(ctx, query, amount, userID)
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WageredTotal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// SettleWager applies a full round settlement in one guarded statement:
// the wager is only taken if the current balance covers it, so two
// concurrent rounds can never overdraw the account. Returns nil when the
// balance does not cover the wager.
func (r *Repository) SettleWager(ctx context.Context, userID int, wager, payout float64) (*domain.Balance, error) {
	var settled *domain.Balance
	query := `
		UPDATE balances
		SET current_balance = current_balance - $1 + $2,
		    wagered_total = wagered_total + $1
		WHERE user_id = $3 AND current_balance >= $1
		RETURNING id, user_id, current_balance, wagered_total
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var balance domain.Balance
		row := r.db.QueryRow(ctx, query, wager, payout, userID)
		err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.WageredTotal)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil
			}
			zap.L().Error("failed to settle wager", zap.Error(err))
			return err
		}
		settled = &balance
		return nil
	})

	if err != nil {
		return nil, err
	}
	return settled, nil
}
