package challengerepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetByID(ctx context.Context, challengeID int) (*domain.Challenge, error) {
	query := `
        SELECT id, question, options, answer, subject, difficulty
        FROM challenges
        WHERE id = $1
    `
	var ch domain.Challenge
	err := r.db.QueryRow(ctx, query, challengeID).
		Scan(&ch.ID, &ch.Question, &ch.Options, &ch.Answer, &ch.Subject, &ch.Difficulty)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get challenge", zap.Error(err))
		return nil, err
	}
	return &ch, nil
}

// PickRandom returns one challenge chosen uniformly from the whole catalog,
// or nil when the catalog is empty.
func (r *Repository) PickRandom(ctx context.Context) (*domain.Challenge, error) {
	query := `
        SELECT id, question, options, answer, subject, difficulty
        FROM challenges
        ORDER BY random()
        LIMIT 1
    `
	var ch domain.Challenge
	err := r.db.QueryRow(ctx, query).
		Scan(&ch.ID, &ch.Question, &ch.Options, &ch.Answer, &ch.Subject, &ch.Difficulty)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to pick random challenge", zap.Error(err))
		return nil, err
	}
	return &ch, nil
}

func (r *Repository) Create(ctx context.Context, ch *domain.Challenge) (*domain.Challenge, error) {
	query := `
		INSERT INTO challenges (question, options, answer, subject, difficulty)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, ch.Question, ch.Options, ch.Answer, ch.Subject, ch.Difficulty).
		Scan(&ch.ID)
	if err != nil {
		zap.L().Error("can't save challenge", zap.Error(err))
		return nil, err
	}
	return ch, nil
}

func (r *Repository) HasAttemptSince(ctx context.Context, userID int, since time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM challenge_attempts
            WHERE user_id = $1 AND completed_at >= $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, since).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check challenge attempts", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// CreateAttempt records an attempt for the given calendar day. The unique
// (user_id, attempt_day) index turns a concurrent duplicate into a no-op;
// nil is returned when another attempt for that day already exists.
func (r *Repository) CreateAttempt(ctx context.Context, attempt *domain.ChallengeAttempt, day time.Time) (*domain.ChallengeAttempt, error) {
	query := `
		INSERT INTO challenge_attempts (user_id, challenge_id, submitted_answer, is_correct, completed_at, attempt_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, attempt_day) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		attempt.UserID, attempt.ChallengeID, attempt.SubmittedAnswer,
		attempt.IsCorrect, attempt.CompletedAt, day,
	).Scan(&attempt.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't save challenge attempt", zap.Error(err))
		return nil, err
	}
	return attempt, nil
}
