package dto

// CollectionStatus estado de carga de cada coleção.
type CollectionStatus struct {
	Clients        string `json:"clients"`
	Services       string `json:"services"`
	TravelExpenses string `json:"travel_expenses"`
	Quotes         string `json:"quotes"`
}

// TravelExpenseSummary resumo financeiro dos viáticos (somas exatas).
type TravelExpenseSummary struct {
	TotalFuel    float64 `json:"total_fuel"`
	TotalToll    float64 `json:"total_toll"`
	TotalMeals   float64 `json:"total_meals"`
	TotalLodging float64 `json:"total_lodging"`
	TotalOther   float64 `json:"total_other"`
	GrandTotal   float64 `json:"grand_total"`
}

// DashboardResponse contadores das coleções + resumo de viáticos.
type DashboardResponse struct {
	ClientCount        int                  `json:"client_count"`
	ServiceCount       int                  `json:"service_count"`
	TravelExpenseCount int                  `json:"travel_expense_count"`
	QuoteCount         int                  `json:"quote_count"`
	Status             CollectionStatus     `json:"status"`
	TravelExpenses     TravelExpenseSummary `json:"travel_expenses"`
}
