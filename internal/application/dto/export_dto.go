package dto

import "time"

// ExportDocument snapshot completo das quatro coleções em memória, para
// download pelo usuário.
type ExportDocument struct {
	ExportID       string                  `json:"export_id"`
	ExportedAt     time.Time               `json:"exported_at"`
	Clients        []ClientResponse        `json:"clients"`
	Services       []ServiceResponse       `json:"services"`
	TravelExpenses []TravelExpenseResponse `json:"travel_expenses"`
	Quotes         []QuoteResponse         `json:"quotes"`
}
