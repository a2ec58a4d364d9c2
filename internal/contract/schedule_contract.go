package contract

type ScheduleRequest struct {
	ShipID             int64  `json:"ship_id" validate:"required,gt=0"`
	RouteName          string `json:"route_name" validate:"required,min=2,max=120"`
	FromPortID         int64  `json:"from_port_id" validate:"required,gt=0"`
	ToPortID           int64  `json:"to_port_id" validate:"required,gt=0"`
	// DepartureDayOfWeek defaults to Monday (1) when omitted.
	DepartureDayOfWeek int    `json:"departure_day_of_week" validate:"omitempty,gte=1,lte=7"`
	DepartureTime      string `json:"departure_time" validate:"required,clocktime"`
	// IsActive defaults to true when omitted.
	IsActive  *bool  `json:"is_active"`
	Recurring string `json:"recurring" validate:"omitempty,oneof=weekly biweekly monthly"`
	Notes     string `json:"notes" validate:"max=500"`
}

type ScheduleResponse struct {
	ID                 int64  `json:"id"`
	ShipID             int64  `json:"ship_id"`
	RouteName          string `json:"route_name"`
	FromPortID         int64  `json:"from_port_id"`
	ToPortID           int64  `json:"to_port_id"`
	DepartureDayOfWeek int    `json:"departure_day_of_week"`
	DepartureTime      string `json:"departure_time"`
	IsActive           bool   `json:"is_active"`
	Recurring          string `json:"recurring"`
	Notes              string `json:"notes,omitempty"`
}
