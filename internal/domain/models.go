package domain

import (
	"encoding/json"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID             int     `db:"id"`
	UserID         int     `db:"user_id"`
	CurrentBalance float64 `db:"current_balance"`
	WageredTotal   float64 `db:"wagered_total"`
}

type Challenge struct {
	ID         int       `db:"id"`
	Question   string    `db:"question"`
	Options    []string  `db:"options"`
	Answer     string    `db:"answer"`
	Subject    string    `db:"subject"`
	Difficulty string    `db:"difficulty"`
	CreatedAt  time.Time `db:"created_at"`
}

type ChallengeAttempt struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	ChallengeID     int       `db:"challenge_id"`
	SubmittedAnswer string    `db:"submitted_answer"`
	IsCorrect       bool      `db:"is_correct"`
	CompletedAt     time.Time `db:"completed_at"`
}

const (
	BonusKindDailyChallenge = "daily_challenge"
	BonusStatusClaimed      = "claimed"
)

type BonusGrant struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Kind      string    `db:"kind"`
	Amount    float64   `db:"amount"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

const (
	GameVariantRoulette = "roulette"
	GameVariantCrash    = "crash"
)

type CasinoRound struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	GameVariant  string          `db:"game_variant"`
	WagerAmount  float64         `db:"wager_amount"`
	PayoutAmount float64         `db:"payout_amount"`
	Details      json.RawMessage `db:"details"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Game struct {
	ID         int       `db:"id"`
	ExternalID string    `db:"external_id"`
	Sport      string    `db:"sport"`
	HomeTeam   string    `db:"home_team"`
	AwayTeam   string    `db:"away_team"`
	KickoffAt  time.Time `db:"kickoff_at"`
	Status     string    `db:"status"`
}

// GameFilter narrows a games listing. Zero values mean no filtering;
// Day matches games kicking off on that calendar day.
type GameFilter struct {
	Sport string
	Day   time.Time
}

type Tournament struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Sport     string    `db:"sport"`
	PrizePool float64   `db:"prize_pool"`
	StartsAt  time.Time `db:"starts_at"`
	EndsAt    time.Time `db:"ends_at"`
}
