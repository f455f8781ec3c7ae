package dto

import "time"

// CreateTravelExpenseRequest criação de viático; componentes de custo >= 0.
type CreateTravelExpenseRequest struct {
	Date        string  `json:"date"`
	Destination string  `json:"destination"`
	DistanceKM  float64 `json:"distance_km"`
	Fuel        float64 `json:"fuel"`
	Toll        float64 `json:"toll"`
	Meals       float64 `json:"meals"`
	Lodging     float64 `json:"lodging"`
	Other       float64 `json:"other"`
	Notes       string  `json:"notes"`
}

// UpdateTravelExpenseRequest atualização parcial; campos ausentes não mudam.
type UpdateTravelExpenseRequest struct {
	Date        *string  `json:"date"`
	Destination *string  `json:"destination"`
	DistanceKM  *float64 `json:"distance_km"`
	Fuel        *float64 `json:"fuel"`
	Toll        *float64 `json:"toll"`
	Meals       *float64 `json:"meals"`
	Lodging     *float64 `json:"lodging"`
	Other       *float64 `json:"other"`
	Notes       *string  `json:"notes"`
}

// TravelExpenseResponse saída do viático; Total é derivado (soma dos cinco
// componentes), nunca armazenado.
type TravelExpenseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Destination string    `json:"destination"`
	DistanceKM  float64   `json:"distance_km"`
	Fuel        float64   `json:"fuel"`
	Toll        float64   `json:"toll"`
	Meals       float64   `json:"meals"`
	Lodging     float64   `json:"lodging"`
	Other       float64   `json:"other"`
	Total       float64   `json:"total"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
