package state

import (
	"math"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/estimate"
)

// Estimate resolve o serviço selecionado no catálogo em memória e invoca a
// calculadora de custos. Síncrono e sem efeitos colaterais: pode ser chamado
// a cada alteração de parâmetro do formulário. ServiceID desconhecido ou
// vazio produz resultado todo zero, como no cálculo sem serviço.
func (c *Controller) Estimate(in dto.EstimateRequest) dto.EstimateResponse {
	c.mu.RLock()
	var price float64
	found := false
	if in.ServiceID != "" {
		for i := range c.services {
			if c.services[i].ID == in.ServiceID {
				price = c.services[i].BasePrice
				found = true
				break
			}
		}
	}
	c.mu.RUnlock()

	b := estimate.Calculate(estimate.Input{
		Area:           in.Area,
		ServicePrice:   price,
		HasService:     found,
		DistanceKM:     in.DistanceKM,
		FuelPrice:      in.FuelPrice,
		ConsumptionKML: in.ConsumptionKML,
		Toll:           in.Toll,
		Meals:          in.Meals,
		Lodging:        in.Lodging,
		MarginPercent:  in.MarginPercent,
		TaxPercent:     in.TaxPercent,
	})

	return dto.EstimateResponse{
		ServiceCost: round2(b.ServiceCost),
		TravelCost:  round2(b.TravelCost),
		Margin:      round2(b.Margin),
		Tax:         round2(b.Tax),
		Total:       round2(b.Total),
	}
}

// round2 arredonda para 2 decimais, como o valor é exibido.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
