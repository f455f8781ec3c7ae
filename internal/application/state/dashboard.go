package state

import (
	"github.com/shopspring/decimal"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
)

// Dashboard devolve os contadores das coleções, o status de carga de cada
// uma e o resumo financeiro dos viáticos (somas com decimal, sem deriva de
// ponto flutuante no acumulado).
func (c *Controller) Dashboard() dto.DashboardResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fuel, toll, meals, lodging, other := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range c.expenses {
		fuel = fuel.Add(decimal.NewFromFloat(e.Fuel))
		toll = toll.Add(decimal.NewFromFloat(e.Toll))
		meals = meals.Add(decimal.NewFromFloat(e.Meals))
		lodging = lodging.Add(decimal.NewFromFloat(e.Lodging))
		other = other.Add(decimal.NewFromFloat(e.Other))
	}
	grand := fuel.Add(toll).Add(meals).Add(lodging).Add(other)

	return dto.DashboardResponse{
		ClientCount:        len(c.clients),
		ServiceCount:       len(c.services),
		TravelExpenseCount: len(c.expenses),
		QuoteCount:         len(c.quotes),
		Status: dto.CollectionStatus{
			Clients:        string(c.clientStatus),
			Services:       string(c.serviceStatus),
			TravelExpenses: string(c.expenseStatus),
			Quotes:         string(c.quoteStatus),
		},
		TravelExpenses: dto.TravelExpenseSummary{
			TotalFuel:    toF(fuel),
			TotalToll:    toF(toll),
			TotalMeals:   toF(meals),
			TotalLodging: toF(lodging),
			TotalOther:   toF(other),
			GrandTotal:   toF(grand),
		},
	}
}

func toF(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
