package contract

type CompanyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CompanyPortRequest struct {
	PortID int64 `json:"port_id" validate:"required,gt=0"`
	IsHQ   bool  `json:"is_hq"`
}

// CompanyPortResponse is the association joined with its port, as the
// dashboard's company page renders it.
type CompanyPortResponse struct {
	PortID int64   `json:"port_id"`
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	IsHQ   bool    `json:"is_hq"`
}
