package challengerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"senabet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	selectQuery := `
		SELECT id, question, options, answer, subject, difficulty
		FROM challenges
		WHERE id = $1`

	tests := []struct {
		name        string
		challengeID int
		mockSetup   func()
		expectErr   bool
		result      *domain.Challenge
	}{
		{
			name:        "Existing ID returns challenge",
			challengeID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "question", "options", "answer", "subject", "difficulty"}).
					AddRow(7, "What is the capital of Brazil?", []string{"Rio de Janeiro", "Brasília", "São Paulo"}, "Brasília", "geography", "easy")
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Challenge{
				ID:         7,
				Question:   "What is the capital of Brazil?",
				Options:    []string{"Rio de Janeiro", "Brasília", "São Paulo"},
				Answer:     "Brasília",
				Subject:    "geography",
				Difficulty: "easy",
			},
		},
		{
			name:        "Unknown ID returns nil",
			challengeID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:        "Database error",
			challengeID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.challengeID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_PickRandom(t *testing.T) {
	repo, mock := NewMock(t)

	pickQuery := `
		SELECT id, question, options, answer, subject, difficulty
		FROM challenges
		ORDER BY random()
		LIMIT 1`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Challenge
	}{
		{
			name: "Non-empty catalog returns a challenge",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "question", "options", "answer", "subject", "difficulty"}).
					AddRow(3, "2 + 2 = ?", []string{"3", "4", "5"}, "4", "math", "easy")
				mock.ExpectQuery(regexp.QuoteMeta(pickQuery)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Challenge{
				ID:         3,
				Question:   "2 + 2 = ?",
				Options:    []string{"3", "4", "5"},
				Answer:     "4",
				Subject:    "math",
				Difficulty: "easy",
			},
		},
		{
			name: "Empty catalog returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(pickQuery)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.PickRandom(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		challenge *domain.Challenge
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates challenge",
			challenge: &domain.Challenge{
				Question:   "2 + 2 = ?",
				Options:    []string{"3", "4", "5"},
				Answer:     "4",
				Subject:    "math",
				Difficulty: "easy",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO challenges (question, options, answer, subject, difficulty)
					VALUES ($1, $2, $3, $4, $5)
					RETURNING id`)).
					WithArgs("2 + 2 = ?", []string{"3", "4", "5"}, "4", "math", "easy").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			challenge: &domain.Challenge{
				Question:   "2 + 2 = ?",
				Options:    []string{"3", "4", "5"},
				Answer:     "4",
				Subject:    "math",
				Difficulty: "easy",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO challenges (question, options, answer, subject, difficulty)
					VALUES ($1, $2, $3, $4, $5)
					RETURNING id`)).
					WithArgs("2 + 2 = ?", []string{"3", "4", "5"}, "4", "math", "easy").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.challenge)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.ID)
			}
		})
	}
}

func TestRepository_HasAttemptSince(t *testing.T) {
	repo, mock := NewMock(t)
	since := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	existsQuery := `
		SELECT EXISTS (
			SELECT 1 FROM challenge_attempts
			WHERE user_id = $1 AND completed_at >= $2
		)`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  bool
	}{
		{
			name: "Attempt exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
					WithArgs(1, since).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectErr: false,
			expected:  true,
		},
		{
			name: "No attempt today",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
					WithArgs(1, since).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectErr: false,
			expected:  false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
					WithArgs(1, since).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			exists, err := repo.HasAttemptSince(context.Background(), 1, since)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestRepository_CreateAttempt(t *testing.T) {
	repo, mock := NewMock(t)
	completedAt := time.Date(2025, 9, 1, 12, 30, 0, 0, time.UTC)
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	insertQuery := `
		INSERT INTO challenge_attempts (user_id, challenge_id, submitted_answer, is_correct, completed_at, attempt_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, attempt_day) DO NOTHING
		RETURNING id`

	attempt := func() *domain.ChallengeAttempt {
		return &domain.ChallengeAttempt{
			UserID:          1,
			ChallengeID:     7,
			SubmittedAnswer: "Brasília",
			IsCorrect:       true,
			CompletedAt:     completedAt,
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Successfully records attempt",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(1, 7, "Brasília", true, completedAt, day).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
			expectErr: false,
			expectNil: false,
		},
		{
			name: "Duplicate day attempt returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(1, 7, "Brasília", true, completedAt, day).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(1, 7, "Brasília", true, completedAt, day).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateAttempt(context.Background(), attempt(), day)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, 11, result.ID)
			}
		})
	}
}
