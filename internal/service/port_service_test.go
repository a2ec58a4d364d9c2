package service

import (
	"net/http"
	"testing"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
)

func TestPortRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	created := env.mustPort(t, "Odesa", 46.48, 30.72)

	fetched, apierr := env.Ports.GetPortByID(created.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch port: %v", apierr)
	}
	if fetched.Name != "Odesa" || fetched.Lat != 46.48 || fetched.Lon != 30.72 {
		t.Fatalf("round trip mismatch: %+v", fetched)
	}
}

func TestCreatePortRejectsBadCoordinates(t *testing.T) {
	env := newTestEnv(t)

	_, apierr := env.Ports.CreatePort(&contract.PortRequest{
		Name: "Nowhere", Region: "Void", Lat: 123.0, Lon: 30.0,
	})
	if apierr == nil {
		t.Fatal("expected out-of-range latitude to be rejected")
	}
	if apierr.Code() != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apierr.Code())
	}
}

func TestDeletePortWithShipsIsConflict(t *testing.T) {
	env := newTestEnv(t)

	port := env.mustPort(t, "Odesa", 46.48, 30.72)
	env.mustShip(t, &entity.Ship{Name: "Mriya", Type: "cargo", Status: "docked", PortID: port.ID})

	if apierr := env.Ports.DeletePort(port.ID); apierr == nil {
		t.Fatal("expected delete to be blocked by moored ship")
	} else if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestDeleteUnreferencedPortSucceeds(t *testing.T) {
	env := newTestEnv(t)

	port := env.mustPort(t, "Odesa", 46.48, 30.72)

	if apierr := env.Ports.DeletePort(port.ID); apierr != nil {
		t.Fatalf("failed to delete port: %v", apierr)
	}
	if _, apierr := env.Ports.GetPortByID(port.ID); apierr == nil {
		t.Fatal("expected port to be gone")
	} else if apierr.Code() != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apierr.Code())
	}
}
