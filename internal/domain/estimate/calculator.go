// Package estimate implementa a calculadora de custos de projeto (serviço de
// domínio puro): custo do serviço + viáticos, com margem e impostos aplicados
// multiplicativamente por cima.
package estimate

// Input parâmetros do projeto a estimar. HasService false significa que
// nenhum serviço foi selecionado e o resultado é todo zero.
//
// Valores negativos não são validados aqui; isso é responsabilidade do
// chamador. A função é determinística e sem efeitos colaterais; pode ser
// recalculada a cada alteração de parâmetro.
type Input struct {
	Area           float64 // na unidade do serviço (m², km...)
	ServicePrice   float64 // preço base unitário do serviço selecionado
	HasService     bool    // false = nenhum serviço selecionado
	DistanceKM     float64 // distância só de ida; a conta considera ida e volta
	FuelPrice      float64 // preço por litro
	ConsumptionKML float64 // km por litro do veículo
	Toll           float64
	Meals          float64
	Lodging        float64
	MarginPercent  float64
	TaxPercent     float64
}

// Breakdown decomposição do custo estimado.
type Breakdown struct {
	ServiceCost float64
	TravelCost  float64
	Margin      float64
	Tax         float64
	Total       float64
}

// Calculate produz a estimativa de custo do projeto:
//
//	custoServico = area × preçoBase
//	combustível  = (distância × 2 / consumo) × preçoCombustível   (ida e volta)
//	viáticos     = combustível + pedágio + alimentação + hospedagem
//	margem       = (custoServico + viáticos) × margem%
//	impostos     = (subtotal + margem) × impostos%                (sobre custo+margem)
//	total        = subtotal + margem + impostos
//
// Consumo ≤ 0 é tratado como custo de combustível zero; a divisão nunca
// produz Inf/NaN.
func Calculate(in Input) Breakdown {
	if !in.HasService {
		return Breakdown{}
	}

	serviceCost := in.Area * in.ServicePrice

	var fuelCost float64
	if in.ConsumptionKML > 0 {
		fuelCost = (in.DistanceKM * 2) / in.ConsumptionKML * in.FuelPrice
	}
	travelCost := fuelCost + in.Toll + in.Meals + in.Lodging

	subtotal := serviceCost + travelCost
	margin := subtotal * (in.MarginPercent / 100)
	tax := (subtotal + margin) * (in.TaxPercent / 100)

	return Breakdown{
		ServiceCost: serviceCost,
		TravelCost:  travelCost,
		Margin:      margin,
		Tax:         tax,
		Total:       subtotal + margin + tax,
	}
}
