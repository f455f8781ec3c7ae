package dto

// EstimateRequest parâmetros da calculadora de custos. ServiceID vazio
// significa nenhum serviço selecionado (resultado todo zero).
type EstimateRequest struct {
	Area           float64 `json:"area"`
	ServiceID      string  `json:"service_id"`
	DistanceKM     float64 `json:"distance_km"`
	FuelPrice      float64 `json:"fuel_price"`
	ConsumptionKML float64 `json:"consumption_kml"`
	Toll           float64 `json:"toll"`
	Meals          float64 `json:"meals"`
	Lodging        float64 `json:"lodging"`
	MarginPercent  float64 `json:"margin_percent"`
	TaxPercent     float64 `json:"tax_percent"`
}

// EstimateResponse decomposição do custo, arredondada a 2 decimais para
// exibição.
type EstimateResponse struct {
	ServiceCost float64 `json:"service_cost"`
	TravelCost  float64 `json:"travel_cost"`
	Margin      float64 `json:"margin"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}
