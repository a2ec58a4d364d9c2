package contract

type PortRequest struct {
	Name   string  `json:"name" validate:"required,min=2,max=80"`
	Region string  `json:"region" validate:"required,min=2,max=60"`
	Lat    float64 `json:"lat" validate:"latitude"`
	Lon    float64 `json:"lon" validate:"longitude"`
}

type PortResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}
