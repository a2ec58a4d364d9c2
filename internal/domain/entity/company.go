package entity

type Company struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

// CompanyPort associates a company with a port it operates from. At most one
// association per company carries IsHQ=true.
type CompanyPort struct {
	ID        int64 `gorm:"primaryKey"`
	CompanyID int64 `gorm:"not null;uniqueIndex:ux_company_port"` // References: companies(id)
	PortID    int64 `gorm:"not null;uniqueIndex:ux_company_port"` // References: ports(id)
	IsHQ      bool  `gorm:"not null;default:false"`
}
