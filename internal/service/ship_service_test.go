package service

import (
	"net/http"
	"testing"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
)

func TestCreateShipAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)

	ship, apierr := env.Ships.CreateShip(&contract.ShipRequest{Name: "Mriya"})
	if apierr != nil {
		t.Fatalf("failed to create ship: %v", apierr)
	}

	if ship.Type != "cargo" {
		t.Fatalf("expected default type cargo, got %q", ship.Type)
	}
	if ship.Country != "Unknown" {
		t.Fatalf("expected default country Unknown, got %q", ship.Country)
	}
	if ship.Status != entity.ShipStatusDocked {
		t.Fatalf("expected default status docked, got %q", ship.Status)
	}
	if ship.SpeedKnots != 20 {
		t.Fatalf("expected default speed 20, got %f", ship.SpeedKnots)
	}
}

func TestCreateShipNormalizesLegacyStatus(t *testing.T) {
	env := newTestEnv(t)

	ship, apierr := env.Ships.CreateShip(&contract.ShipRequest{Name: "Mriya", Status: "at_sea"})
	if apierr == nil {
		t.Fatalf("expected creating a ship at sea to fail, got %+v", ship)
	}
	if apierr.Code() != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apierr.Code())
	}
}

func TestUpdateShipToDepartedGoesThroughDeparture(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Origin", 0, 0)
	dest := env.mustPort(t, "Destination", 0, 1)
	ship := env.crewedCargoShip(t, origin.ID)

	// The legacy dashboard PUTs the whole ship with status flipped; the
	// voyage numbers still come out computed, not echoed.
	updated, apierr := env.Ships.UpdateShip(ship.ID, &contract.ShipRequest{
		Name:              ship.Name,
		Type:              ship.Type,
		Status:            "departed",
		PortID:            origin.ID,
		DestinationPortID: dest.ID,
		SpeedKnots:        20,
		ETA:               "2030-01-01T00:00:00Z", // ignored
	})
	if apierr != nil {
		t.Fatalf("failed to update ship: %v", apierr)
	}

	if updated.Status != entity.ShipStatusDeparted {
		t.Fatalf("expected status departed, got %q", updated.Status)
	}
	if updated.ETA == "" || updated.ETA == "2030-01-01T00:00:00Z" {
		t.Fatalf("expected a computed eta, got %q", updated.ETA)
	}
	if updated.VoyageDistanceKm == 0 {
		t.Fatal("expected a computed voyage distance")
	}
}

func TestUpdateShipWithoutCrewCannotDepart(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Origin", 0, 0)
	dest := env.mustPort(t, "Destination", 0, 1)
	ship := env.mustShip(t, &entity.Ship{
		Name: "Mriya", Type: "cargo", Status: "docked", PortID: origin.ID, SpeedKnots: 20,
	})

	_, apierr := env.Ships.UpdateShip(ship.ID, &contract.ShipRequest{
		Name:              ship.Name,
		Status:            "departed",
		PortID:            origin.ID,
		DestinationPortID: dest.ID,
	})
	if apierr == nil {
		t.Fatal("expected uncrewed departure via update to be blocked")
	}
	if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestUpdateShipRejectedDepartureIsNotPersisted(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Origin", 0, 0)
	dest := env.mustPort(t, "Destination", 0, 1)
	ship := env.mustShip(t, &entity.Ship{
		Name: "Mriya", Type: "cargo", Status: "docked", PortID: origin.ID, SpeedKnots: 20,
	})

	_, apierr := env.Ships.UpdateShip(ship.ID, &contract.ShipRequest{
		Name:              "Renamed Vessel",
		Type:              ship.Type,
		Status:            "departed",
		PortID:            origin.ID,
		DestinationPortID: dest.ID,
		SpeedKnots:        42,
	})
	if apierr == nil {
		t.Fatal("expected uncrewed departure via update to be blocked")
	}
	if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}

	// The rejected update must not leave any of its field edits behind.
	kept, apierr := env.Ships.GetShipByID(ship.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch ship: %v", apierr)
	}
	if kept.Name != "Mriya" || kept.SpeedKnots != 20 {
		t.Fatalf("expected rejected update to persist nothing, got name %q speed %f", kept.Name, kept.SpeedKnots)
	}
	if kept.Status != entity.ShipStatusDocked {
		t.Fatalf("expected ship still docked, got %q", kept.Status)
	}
}

func TestDeleteShipWithCrewHistoryIsConflict(t *testing.T) {
	env := newTestEnv(t)

	ship := env.mustShip(t, &entity.Ship{Name: "Mriya", Type: "cargo", Status: "docked"})
	captain := env.mustPerson(t, "Olena Marchenko", "Captain")
	env.mustAssign(t, captain.ID, ship.ID)

	if apierr := env.Ships.DeleteShip(ship.ID); apierr == nil {
		t.Fatal("expected delete to be blocked by crew history")
	} else if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestDeleteShipWithCargoAboardIsConflict(t *testing.T) {
	env := newTestEnv(t)

	ship := env.mustShip(t, &entity.Ship{Name: "Mriya", Type: "cargo", Status: "loading"})

	_, apierr := env.Cargo.CreateCargo(&contract.CargoRequest{
		Name:   "Grain",
		Type:   "bulk",
		Status: "loaded",
		ShipID: ship.ID,
	})
	if apierr != nil {
		t.Fatalf("failed to seed cargo: %v", apierr)
	}

	if apierr := env.Ships.DeleteShip(ship.ID); apierr == nil {
		t.Fatal("expected delete to be blocked by cargo aboard")
	} else if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}
