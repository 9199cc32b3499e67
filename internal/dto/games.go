package dto

import "time"

type GameResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Sport     string    `json:"sport" example:"football"`
	HomeTeam  string    `json:"home_team" example:"Corinthians"`
	AwayTeam  string    `json:"away_team" example:"Palmeiras"`
	KickoffAt time.Time `json:"kickoff_at" example:"2020-12-09T16:09:57+03:00"`
	Status    string    `json:"status" example:"scheduled"`
}

type TournamentResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Campus Cup"`
	Sport     string    `json:"sport" example:"esports"`
	PrizePool float64   `json:"prize_pool" example:"1000"`
	StartsAt  time.Time `json:"starts_at" example:"2020-12-09T16:09:57+03:00"`
	EndsAt    time.Time `json:"ends_at" example:"2020-12-16T16:09:57+03:00"`
}
