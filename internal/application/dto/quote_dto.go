package dto

import "time"

// QuoteItemDTO linha do orçamento (snapshot de preço unitário).
type QuoteItemDTO struct {
	ServiceID string  `json:"service_id"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateQuoteRequest criação de orçamento.
type CreateQuoteRequest struct {
	ClientID   string         `json:"client_id"`
	Date       string         `json:"date"`
	Items      []QuoteItemDTO `json:"items"`
	TravelCost float64        `json:"travel_cost"`
	Tax        float64        `json:"tax"`
	Discount   float64        `json:"discount"`
	Status     string         `json:"status"`
	Notes      string         `json:"notes"`
}

// UpdateQuoteRequest atualização parcial; Items presente substitui a lista.
type UpdateQuoteRequest struct {
	ClientID   *string         `json:"client_id"`
	Date       *string         `json:"date"`
	Items      *[]QuoteItemDTO `json:"items"`
	TravelCost *float64        `json:"travel_cost"`
	Tax        *float64        `json:"tax"`
	Discount   *float64        `json:"discount"`
	Status     *string         `json:"status"`
	Notes      *string         `json:"notes"`
}

// QuoteResponse saída do orçamento; Subtotal e Total são derivados.
type QuoteResponse struct {
	ID         string         `json:"id"`
	ClientID   string         `json:"client_id"`
	Date       string         `json:"date"`
	Items      []QuoteItemDTO `json:"items"`
	TravelCost float64        `json:"travel_cost"`
	Tax        float64        `json:"tax"`
	Discount   float64        `json:"discount"`
	Subtotal   float64        `json:"subtotal"`
	Total      float64        `json:"total"`
	Status     string         `json:"status"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
