package contract

type PersonRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	// Rank accepts canonical labels and legacy synonyms (Soldier, Солдат,
	// Капітан, ...); it is stored canonicalized.
	Rank string `json:"rank" validate:"required,rank"`
	// Active defaults to true when omitted.
	Active *bool `json:"active"`
}

type PersonResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Rank     string `json:"rank"`
	Active   bool   `json:"active"`
}
