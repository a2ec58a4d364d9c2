package contract

// VoyageRecordRequest covers the manually-entered history rows. Rows minted
// by Depart get their reference and planning fields computed server-side.
type VoyageRecordRequest struct {
	ShipID               int64   `json:"ship_id" validate:"required,gt=0"`
	FromPortID           int64   `json:"from_port_id" validate:"gte=0"`
	ToPortID             int64   `json:"to_port_id" validate:"gte=0"`
	DepartedAt           string  `json:"departed_at" validate:"required,timestamp"`
	ArrivedAt            string  `json:"arrived_at" validate:"omitempty,timestamp"`
	ActualDurationHours  float64 `json:"actual_duration_hours" validate:"gte=0"`
	PlannedDurationHours float64 `json:"planned_duration_hours" validate:"gte=0"`
	DistanceKm           float64 `json:"distance_km" validate:"gte=0"`
	FuelConsumedTonnes   float64 `json:"fuel_consumed_tonnes" validate:"gte=0"`
	TotalCostUSD         float64 `json:"total_cost_usd" validate:"gte=0"`
	TotalRevenueUSD      float64 `json:"total_revenue_usd" validate:"gte=0"`
	CargoList            string  `json:"cargo_list"`
	CrewList             string  `json:"crew_list"`
	Notes                string  `json:"notes" validate:"max=500"`
	WeatherConditions    string  `json:"weather_conditions" validate:"max=120"`
}

type VoyageRecordResponse struct {
	ID                   int64   `json:"id"`
	Reference            string  `json:"reference"`
	ShipID               int64   `json:"ship_id"`
	FromPortID           int64   `json:"from_port_id"`
	ToPortID             int64   `json:"to_port_id"`
	DepartedAt           string  `json:"departed_at"`
	ArrivedAt            string  `json:"arrived_at,omitempty"`
	ActualDurationHours  float64 `json:"actual_duration_hours"`
	PlannedDurationHours float64 `json:"planned_duration_hours"`
	DistanceKm           float64 `json:"distance_km"`
	FuelConsumedTonnes   float64 `json:"fuel_consumed_tonnes"`
	TotalCostUSD         float64 `json:"total_cost_usd"`
	TotalRevenueUSD      float64 `json:"total_revenue_usd"`
	CargoList            string  `json:"cargo_list,omitempty"`
	CrewList             string  `json:"crew_list,omitempty"`
	Notes                string  `json:"notes,omitempty"`
	WeatherConditions    string  `json:"weather_conditions,omitempty"`
}
