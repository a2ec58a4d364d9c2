package contract

// ShipRequest is the full-replace payload for POST and PUT. Voyage fields are
// accepted on PUT because the legacy dashboard computes them client-side when
// it flips status to departed; POST /api/ships/{id}/depart is the
// server-computed path.
type ShipRequest struct {
	Name              string  `json:"name" validate:"required,min=2,max=80"`
	Type              string  `json:"type" validate:"omitempty,typecode"`
	Country           string  `json:"country" validate:"max=60"`
	PortID            int64   `json:"port_id" validate:"gte=0"`
	Status            string  `json:"status" validate:"omitempty,shipstatus"`
	CompanyID         int64   `json:"company_id" validate:"gte=0"`
	SpeedKnots        float64 `json:"speed_knots" validate:"omitempty,gte=5,lte=50"`
	DestinationPortID int64   `json:"destination_port_id" validate:"gte=0"`
	DepartedAt        string  `json:"departed_at" validate:"omitempty,timestamp"`
	ETA               string  `json:"eta" validate:"omitempty,timestamp"`
	VoyageDistanceKm  float64 `json:"voyage_distance_km" validate:"gte=0"`
}

type ShipResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Country           string  `json:"country"`
	PortID            int64   `json:"port_id"`
	Status            string  `json:"status"`
	CompanyID         int64   `json:"company_id"`
	SpeedKnots        float64 `json:"speed_knots"`
	DestinationPortID int64   `json:"destination_port_id,omitempty"`
	DepartedAt        string  `json:"departed_at,omitempty"`
	ETA               string  `json:"eta,omitempty"`
	VoyageDistanceKm  float64 `json:"voyage_distance_km,omitempty"`
}

type DepartRequest struct {
	DestinationPortID int64 `json:"destination_port_id" validate:"required,gt=0"`
	// DepartedAt defaults to now when omitted.
	DepartedAt string `json:"departed_at" validate:"omitempty,timestamp"`
	// SpeedKnots overrides the ship's stored speed for this voyage.
	SpeedKnots float64 `json:"speed_knots" validate:"omitempty,gte=5,lte=50"`
}

type DepartResponse struct {
	Ship      *ShipResponse `json:"ship"`
	VoyageRef string        `json:"voyage_ref"`
}

type ProcessArrivalsResponse struct {
	Processed int `json:"processed"`
}
