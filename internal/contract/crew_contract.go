package contract

type AssignRequest struct {
	PersonID int64 `json:"person_id" validate:"required,gt=0"`
	ShipID   int64 `json:"ship_id" validate:"required,gt=0"`
	// StartUTC defaults to now when omitted.
	StartUTC string `json:"start_utc" validate:"omitempty,timestamp"`
}

type EndAssignmentRequest struct {
	PersonID int64  `json:"person_id" validate:"required,gt=0"`
	EndUTC   string `json:"end_utc" validate:"required,timestamp"`
}

type AssignmentResponse struct {
	ID       int64   `json:"id"`
	PersonID int64   `json:"person_id"`
	ShipID   int64   `json:"ship_id"`
	StartUTC string  `json:"start_utc"`
	EndUTC   *string `json:"end_utc"`
}

// CrewMemberResponse is an active assignment joined with the person, as
// GET /api/ships/{id}/crew serves it.
type CrewMemberResponse struct {
	ID       int64   `json:"id"`
	PersonID int64   `json:"person_id"`
	ShipID   int64   `json:"ship_id"`
	StartUTC string  `json:"start_utc"`
	EndUTC   *string `json:"end_utc"`
	FullName string  `json:"full_name"`
	Rank     string  `json:"rank"`
}
