package service

import (
	"math"
	"net/http"
	"strings"
	"testing"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"
)

func (e *testEnv) mustPort(t *testing.T, name string, lat, lon float64) *contract.PortResponse {
	t.Helper()
	port, apierr := e.Ports.CreatePort(&contract.PortRequest{Name: name, Region: "Test Sea", Lat: lat, Lon: lon})
	if apierr != nil {
		t.Fatalf("failed to seed port %q: %v", name, apierr)
	}
	return port
}

// crewedCargoShip seeds a docked cargo ship at the port with a captain and an
// engineer aboard, ready to depart.
func (e *testEnv) crewedCargoShip(t *testing.T, portID int64) *entity.Ship {
	t.Helper()

	ship := e.mustShip(t, &entity.Ship{
		Name:       "Chornomorets",
		Type:       "cargo",
		Status:     "docked",
		PortID:     portID,
		SpeedKnots: 20,
	})

	captain := e.mustPerson(t, "Olena Marchenko", "Captain")
	engineer := e.mustPerson(t, "Dmytro Bondar", "Engineer")
	e.mustAssign(t, captain.ID, ship.ID)
	e.mustAssign(t, engineer.ID, ship.ID)
	return ship
}

func TestDepartWithoutCaptainIsConflict(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Odesa", 46.48, 30.72)
	dest := env.mustPort(t, "Istanbul", 41.0, 28.97)
	ship := env.mustShip(t, &entity.Ship{
		Name: "Mriya", Type: "cargo", Status: "docked", PortID: origin.ID, SpeedKnots: 20,
	})

	engineer := env.mustPerson(t, "Dmytro Bondar", "Engineer")
	env.mustAssign(t, engineer.ID, ship.ID)

	_, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{DestinationPortID: dest.ID})
	if apierr == nil {
		t.Fatal("expected departure without captain to be blocked")
	}
	if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestDepartComputesVoyage(t *testing.T) {
	env := newTestEnv(t)

	// One degree of longitude on the equator is about 111.19 km; at 20 knots
	// that is almost exactly three hours.
	origin := env.mustPort(t, "Origin", 0, 0)
	dest := env.mustPort(t, "Destination", 0, 1)
	ship := env.crewedCargoShip(t, origin.ID)

	resp, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{
		DestinationPortID: dest.ID,
		DepartedAt:        "2025-06-01T00:00:00Z",
	})
	if apierr != nil {
		t.Fatalf("failed to depart: %v", apierr)
	}
	if resp.VoyageRef == "" {
		t.Fatal("expected a voyage reference")
	}

	got := resp.Ship
	if got.Status != entity.ShipStatusDeparted {
		t.Fatalf("expected status departed, got %q", got.Status)
	}
	if got.PortID != dest.ID || got.DestinationPortID != dest.ID {
		t.Fatalf("expected port and destination %d, got %d and %d", dest.ID, got.PortID, got.DestinationPortID)
	}
	if math.Abs(got.VoyageDistanceKm-111.19) > 0.5 {
		t.Fatalf("expected distance around 111.19 km, got %f", got.VoyageDistanceKm)
	}

	departed, ok := utils.ParseTime(got.DepartedAt)
	if !ok {
		t.Fatalf("unparseable departed_at %q", got.DepartedAt)
	}
	eta, ok := utils.ParseTime(got.ETA)
	if !ok {
		t.Fatalf("unparseable eta %q", got.ETA)
	}
	hours := eta.Sub(departed).Hours()
	if math.Abs(hours-3.0) > 0.05 {
		t.Fatalf("expected roughly 3h voyage, got %fh", hours)
	}

	records, apierr := env.Records.GetVoyages(ship.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch voyage records: %v", apierr)
	}
	if len(records) != 1 {
		t.Fatalf("expected one voyage record, got %d", len(records))
	}
	rec := records[0]
	if rec.Reference != resp.VoyageRef {
		t.Fatalf("expected record reference %q, got %q", resp.VoyageRef, rec.Reference)
	}
	if rec.FromPortID != origin.ID || rec.ToPortID != dest.ID {
		t.Fatalf("expected route %d -> %d, got %d -> %d", origin.ID, dest.ID, rec.FromPortID, rec.ToPortID)
	}
	if rec.ArrivedAt != "" {
		t.Fatalf("expected open record, got arrived_at %q", rec.ArrivedAt)
	}
}

func TestDepartCrewCheckRunsBeforeDestinationCheck(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Odesa", 46.48, 30.72)
	ship := env.mustShip(t, &entity.Ship{
		Name: "Mriya", Type: "cargo", Status: "docked", PortID: origin.ID, SpeedKnots: 20,
	})

	// Uncrewed ship, destination equals the current port: the crewing
	// precondition fires first.
	_, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{DestinationPortID: origin.ID})
	if apierr == nil {
		t.Fatal("expected departure to be blocked")
	}
	conflict, ok := apierr.(*apierror.APIError)
	if !ok {
		t.Fatalf("unexpected error type %T", apierr)
	}
	if !strings.Contains(conflict.Message, "crew") {
		t.Fatalf("expected the crew precondition to fail first, got %q", conflict.Message)
	}
}

func TestDepartToCurrentPortIsConflict(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Odesa", 46.48, 30.72)
	ship := env.crewedCargoShip(t, origin.ID)

	_, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{DestinationPortID: origin.ID})
	if apierr == nil {
		t.Fatal("expected departure to the current port to be blocked")
	}
	if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestDepartTwiceIsConflict(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Odesa", 46.48, 30.72)
	dest := env.mustPort(t, "Istanbul", 41.0, 28.97)
	ship := env.crewedCargoShip(t, origin.ID)

	if _, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{DestinationPortID: dest.ID}); apierr != nil {
		t.Fatalf("failed to depart: %v", apierr)
	}

	_, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{DestinationPortID: dest.ID})
	if apierr == nil {
		t.Fatal("expected second departure to be blocked")
	}
	if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestProcessArrivalsDocksOverdueShips(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Origin", 0, 0)
	dest := env.mustPort(t, "Destination", 0, 1)
	ship := env.crewedCargoShip(t, origin.ID)

	// Departed far enough in the past that the three hour voyage is over.
	if _, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{
		DestinationPortID: dest.ID,
		DepartedAt:        "2025-06-01T00:00:00Z",
	}); apierr != nil {
		t.Fatalf("failed to depart: %v", apierr)
	}

	now, _ := utils.ParseTime("2025-06-02T00:00:00Z")
	resp, apierr := env.Voyages.ProcessArrivals(now)
	if apierr != nil {
		t.Fatalf("failed to process arrivals: %v", apierr)
	}
	if resp.Processed != 1 {
		t.Fatalf("expected 1 processed arrival, got %d", resp.Processed)
	}

	docked, apierr := env.Ships.GetShipByID(ship.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch ship: %v", apierr)
	}
	if docked.Status != entity.ShipStatusDocked {
		t.Fatalf("expected status docked, got %q", docked.Status)
	}
	if docked.PortID != dest.ID {
		t.Fatalf("expected ship moored at %d, got %d", dest.ID, docked.PortID)
	}
	if docked.DepartedAt != "" || docked.ETA != "" || docked.DestinationPortID != 0 || docked.VoyageDistanceKm != 0 {
		t.Fatalf("expected voyage fields cleared, got %+v", docked)
	}

	records, apierr := env.Records.GetVoyages(ship.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch voyage records: %v", apierr)
	}
	if len(records) != 1 || records[0].ArrivedAt == "" {
		t.Fatalf("expected a closed voyage record, got %+v", records)
	}
	if records[0].ActualDurationHours != records[0].PlannedDurationHours {
		t.Fatalf("expected actual duration to match plan, got %f vs %f",
			records[0].ActualDurationHours, records[0].PlannedDurationHours)
	}

	// A second sweep finds nothing to do.
	resp, apierr = env.Voyages.ProcessArrivals(now)
	if apierr != nil {
		t.Fatalf("failed to process arrivals again: %v", apierr)
	}
	if resp.Processed != 0 {
		t.Fatalf("expected idempotent sweep, got %d processed", resp.Processed)
	}
}

func TestProcessArrivalsLeavesOngoingVoyages(t *testing.T) {
	env := newTestEnv(t)

	origin := env.mustPort(t, "Origin", 0, 0)
	dest := env.mustPort(t, "Destination", 0, 10)
	ship := env.crewedCargoShip(t, origin.ID)

	if _, apierr := env.Voyages.Depart(ship.ID, &contract.DepartRequest{
		DestinationPortID: dest.ID,
		DepartedAt:        "2025-06-01T00:00:00Z",
	}); apierr != nil {
		t.Fatalf("failed to depart: %v", apierr)
	}

	// One hour in: the 30h voyage is nowhere near done.
	now, _ := utils.ParseTime("2025-06-01T01:00:00Z")
	resp, apierr := env.Voyages.ProcessArrivals(now)
	if apierr != nil {
		t.Fatalf("failed to process arrivals: %v", apierr)
	}
	if resp.Processed != 0 {
		t.Fatalf("expected no arrivals, got %d", resp.Processed)
	}

	ongoing, apierr := env.Ships.GetShipByID(ship.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch ship: %v", apierr)
	}
	if ongoing.Status != entity.ShipStatusDeparted {
		t.Fatalf("expected ship still departed, got %q", ongoing.Status)
	}
}
