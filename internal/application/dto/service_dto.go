package dto

import "time"

// CreateServiceRequest criação de serviço do catálogo. BasePrice >= 0.
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
}

// UpdateServiceRequest atualização parcial; campos ausentes não são alterados.
type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	Unit        *string  `json:"unit"`
}

// ServiceResponse representação de saída do serviço.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
