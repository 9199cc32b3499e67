package dto

type BalanceResponseDTO struct {
	Current float64 `json:"current" example:"500.5"`
	Wagered float64 `json:"wagered" example:"42"`
}
