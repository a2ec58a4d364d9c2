package contract

type CargoRequest struct {
	Name              string  `json:"name" validate:"required,min=2,max=120"`
	Type              string  `json:"type" validate:"required,oneof=container bulk liquid passengers"`
	WeightTonnes      float64 `json:"weight_tonnes" validate:"gte=0"`
	VolumeM3          float64 `json:"volume_m3" validate:"gte=0"`
	ValueUSD          float64 `json:"value_usd" validate:"gte=0"`
	OriginPortID      int64   `json:"origin_port_id" validate:"gte=0"`
	DestinationPortID int64   `json:"destination_port_id" validate:"gte=0"`
	Status            string  `json:"status" validate:"omitempty,oneof=pending loaded in_transit delivered"`
	ShipID            int64   `json:"ship_id" validate:"gte=0"`
	LoadedAt          string  `json:"loaded_at" validate:"omitempty,timestamp"`
	DeliveredAt       string  `json:"delivered_at" validate:"omitempty,timestamp"`
	Notes             string  `json:"notes" validate:"max=500"`
}

type CargoResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	WeightTonnes      float64 `json:"weight_tonnes"`
	VolumeM3          float64 `json:"volume_m3"`
	ValueUSD          float64 `json:"value_usd"`
	OriginPortID      int64   `json:"origin_port_id"`
	DestinationPortID int64   `json:"destination_port_id"`
	Status            string  `json:"status"`
	ShipID            int64   `json:"ship_id"`
	LoadedAt          string  `json:"loaded_at,omitempty"`
	DeliveredAt       string  `json:"delivered_at,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}
