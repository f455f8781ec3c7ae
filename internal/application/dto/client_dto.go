package dto

import "time"

// CreateClientRequest criação de cliente. Name e Phone são obrigatórios.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Type    string `json:"type"` // pessoa_fisica | pessoa_juridica
	Notes   string `json:"notes"`
}

// UpdateClientRequest atualização parcial; campos ausentes não são alterados.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Type    *string `json:"type"`
	Notes   *string `json:"notes"`
}

// ClientResponse representação de saída do cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
