package service

import (
	"net/http"
	"testing"

	"fleetcommander/internal/contract"
)

func TestCreateShipTypeLowercasesCode(t *testing.T) {
	env := newTestEnv(t)

	st, apierr := env.Types.CreateShipType(&contract.ShipTypeRequest{Code: "Cargo_Bulk", Name: "Bulk carrier"})
	if apierr != nil {
		t.Fatalf("failed to create ship type: %v", apierr)
	}
	if st.Code != "cargo_bulk" {
		t.Fatalf("expected code cargo_bulk, got %q", st.Code)
	}
}

func TestCreateShipTypeDuplicateCodeIsConflict(t *testing.T) {
	env := newTestEnv(t)

	if _, apierr := env.Types.CreateShipType(&contract.ShipTypeRequest{Code: "cargo_bulk", Name: "Bulk carrier"}); apierr != nil {
		t.Fatalf("failed to create ship type: %v", apierr)
	}

	_, apierr := env.Types.CreateShipType(&contract.ShipTypeRequest{Code: "cargo_bulk", Name: "Another"})
	if apierr == nil {
		t.Fatal("expected duplicate code to be rejected")
	}
	if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestUpdateShipTypeCodeIsImmutable(t *testing.T) {
	env := newTestEnv(t)

	st, apierr := env.Types.CreateShipType(&contract.ShipTypeRequest{Code: "research_polar", Name: "Polar research"})
	if apierr != nil {
		t.Fatalf("failed to create ship type: %v", apierr)
	}

	_, apierr = env.Types.UpdateShipType(st.ID, &contract.ShipTypeRequest{Code: "cargo_polar", Name: "Polar research"})
	if apierr == nil {
		t.Fatal("expected code change to be rejected")
	}
	if apierr.Code() != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apierr.Code())
	}
}

func TestCreateShipTypeRejectsUnknownBase(t *testing.T) {
	env := newTestEnv(t)

	_, apierr := env.Types.CreateShipType(&contract.ShipTypeRequest{Code: "pirate_sloop", Name: "Sloop"})
	if apierr == nil {
		t.Fatal("expected unknown base family to be rejected")
	}
	if apierr.Code() != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apierr.Code())
	}
}
