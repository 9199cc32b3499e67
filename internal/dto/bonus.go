package dto

import "time"

// ChallengeResponseDTO deliberately omits the stored answer.
type ChallengeResponseDTO struct {
	ID         int      `json:"id" example:"7"`
	Question   string   `json:"question" example:"What is the capital of Brazil?"`
	Options    []string `json:"options"`
	Subject    string   `json:"subject" example:"geography"`
	Difficulty string   `json:"difficulty" example:"easy"`
}

type ClaimRequestDTO struct {
	ChallengeID int    `json:"challenge_id" example:"7"`
	Answer      string `json:"answer" example:"Brasília"`
}

type ClaimResponseDTO struct {
	Accepted      bool    `json:"accepted"`
	Correct       bool    `json:"correct"`
	RewardAmount  float64 `json:"reward_amount,omitempty" example:"50"`
	CorrectAnswer string  `json:"correct_answer,omitempty"`
	NewBalance    float64 `json:"new_balance,omitempty" example:"150"`
	Message       string  `json:"message"`
}

type BonusGrantResponseDTO struct {
	Kind      string    `json:"kind" example:"daily_challenge"`
	Amount    float64   `json:"amount" example:"50"`
	Status    string    `json:"status" example:"claimed"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	ExpiresAt time.Time `json:"expires_at" example:"2021-01-08T16:09:57+03:00"`
}

type CreateChallengeRequestDTO struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Subject    string   `json:"subject"`
	Difficulty string   `json:"difficulty"`
}

type CreateChallengeResponseDTO struct {
	ID int `json:"id" example:"7"`
}
