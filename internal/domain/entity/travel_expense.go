package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelExpense registra os custos de uma viagem de serviço (viático).
// Os cinco componentes de custo são independentes e não negativos.
type TravelExpense struct {
	ID          string
	Date        string // AAAA-MM-DD, como armazenado no backend
	Destination string
	DistanceKM  float64
	Fuel        float64
	Toll        float64
	Meals       float64
	Lodging     float64
	Other       float64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Total devolve a soma dos cinco componentes de custo.
// Derivado, nunca armazenado; calculado com decimal para soma exata de dinheiro.
func (e TravelExpense) Total() decimal.Decimal {
	return decimal.NewFromFloat(e.Fuel).
		Add(decimal.NewFromFloat(e.Toll)).
		Add(decimal.NewFromFloat(e.Meals)).
		Add(decimal.NewFromFloat(e.Lodging)).
		Add(decimal.NewFromFloat(e.Other))
}
