package contract

type ShipTypeRequest struct {
	// Code is immutable once created; updates must repeat the stored value.
	Code        string `json:"code" validate:"required,typecode"`
	Name        string `json:"name" validate:"required,min=2,max=80"`
	Description string `json:"description" validate:"max=500"`
}

type ShipTypeResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
