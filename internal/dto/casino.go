package dto

import (
	"encoding/json"
	"time"
)

type RouletteRequestDTO struct {
	Wager  float64 `json:"wager" example:"20"`
	Choice string  `json:"choice" example:"red" enums:"red,black,even,odd"`
}

type RouletteResponseDTO struct {
	Number     int     `json:"number" example:"3"`
	Won        bool    `json:"won"`
	Payout     float64 `json:"payout" example:"40"`
	NewBalance float64 `json:"new_balance" example:"120"`
}

type CrashStartRequestDTO struct {
	Wager float64 `json:"wager" example:"20"`
}

type CrashStartResponseDTO struct {
	Handle     string  `json:"handle" example:"0b41a9f2-5f0e-4a1c-9f57-6f9f9dd4f9b1"`
	NewBalance float64 `json:"new_balance" example:"80"`
}

type CrashCashOutRequestDTO struct {
	Handle string `json:"handle" example:"0b41a9f2-5f0e-4a1c-9f57-6f9f9dd4f9b1"`
}

type CrashCashOutResponseDTO struct {
	CashedOut  bool    `json:"cashed_out"`
	Multiplier float64 `json:"multiplier" example:"1.42"`
	Payout     float64 `json:"payout" example:"28.4"`
	NewBalance float64 `json:"new_balance" example:"108.4"`
}

type CasinoRoundResponseDTO struct {
	GameVariant string          `json:"game_variant" example:"roulette"`
	Wager       float64         `json:"wager" example:"20"`
	Payout      float64         `json:"payout" example:"40"`
	Details     json.RawMessage `json:"details"`
	CreatedAt   time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
