package service

import (
	"net/http"
	"testing"

	"fleetcommander/internal/contract"
)

func (e *testEnv) mustCompany(t *testing.T, name string) *contract.CompanyResponse {
	t.Helper()
	company, apierr := e.Companies.CreateCompany(&contract.CompanyRequest{Name: name})
	if apierr != nil {
		t.Fatalf("failed to seed company %q: %v", name, apierr)
	}
	return company
}

func TestAddCompanyPortDemotesPreviousHQ(t *testing.T) {
	env := newTestEnv(t)

	company := env.mustCompany(t, "Black Sea Shipping")
	first := env.mustPort(t, "Odesa", 46.48, 30.72)
	second := env.mustPort(t, "Chornomorsk", 46.3, 30.65)

	if apierr := env.Companies.AddCompanyPort(company.ID, &contract.CompanyPortRequest{PortID: first.ID, IsHQ: true}); apierr != nil {
		t.Fatalf("failed to link first port: %v", apierr)
	}
	if apierr := env.Companies.AddCompanyPort(company.ID, &contract.CompanyPortRequest{PortID: second.ID, IsHQ: true}); apierr != nil {
		t.Fatalf("failed to link second port: %v", apierr)
	}

	ports, apierr := env.Companies.GetCompanyPorts(company.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch company ports: %v", apierr)
	}
	if len(ports) != 2 {
		t.Fatalf("expected 2 linked ports, got %d", len(ports))
	}

	hqCount := 0
	for _, p := range ports {
		if p.IsHQ {
			hqCount++
			if p.PortID != second.ID {
				t.Fatalf("expected HQ at port %d, got %d", second.ID, p.PortID)
			}
		}
	}
	if hqCount != 1 {
		t.Fatalf("expected exactly one HQ, got %d", hqCount)
	}
}

func TestDeleteCompanyWithShipsIsConflict(t *testing.T) {
	env := newTestEnv(t)

	company := env.mustCompany(t, "Black Sea Shipping")

	_, apierr := env.Ships.CreateShip(&contract.ShipRequest{Name: "Mriya", CompanyID: company.ID})
	if apierr != nil {
		t.Fatalf("failed to seed ship: %v", apierr)
	}

	if apierr := env.Companies.DeleteCompany(company.ID); apierr == nil {
		t.Fatal("expected delete to be blocked by fleet")
	} else if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}
