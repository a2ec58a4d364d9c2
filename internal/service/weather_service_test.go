package service

import (
	"testing"

	"fleetcommander/internal/contract"
)

func TestGetLatestReturnsNewestReportPerPort(t *testing.T) {
	env := newTestEnv(t)

	odesa := env.mustPort(t, "Odesa", 46.48, 30.72)
	varna := env.mustPort(t, "Varna", 43.2, 27.9)

	reports := []*contract.WeatherRequest{
		{PortID: odesa.ID, RecordedAt: "2025-06-01T06:00:00Z", Conditions: "clear", TemperatureC: 18},
		{PortID: odesa.ID, RecordedAt: "2025-06-01T12:00:00Z", Conditions: "stormy", TemperatureC: 16},
		{PortID: varna.ID, RecordedAt: "2025-06-01T09:00:00Z", Conditions: "cloudy", TemperatureC: 21},
	}
	for _, req := range reports {
		if _, apierr := env.Weather.Record(req); apierr != nil {
			t.Fatalf("failed to record weather: %v", apierr)
		}
	}

	latest, apierr := env.Weather.GetLatest()
	if apierr != nil {
		t.Fatalf("failed to fetch latest weather: %v", apierr)
	}
	if len(latest) != 2 {
		t.Fatalf("expected one report per port, got %d", len(latest))
	}

	byPort := make(map[int64]*contract.WeatherResponse, len(latest))
	for _, r := range latest {
		byPort[r.PortID] = r
	}
	if byPort[odesa.ID] == nil || byPort[odesa.ID].Conditions != "stormy" {
		t.Fatalf("expected newest Odesa report to win, got %+v", byPort[odesa.ID])
	}
	if byPort[varna.ID] == nil || byPort[varna.ID].Conditions != "cloudy" {
		t.Fatalf("expected Varna report, got %+v", byPort[varna.ID])
	}
}

func TestRecordWeatherForMissingPortIs404(t *testing.T) {
	env := newTestEnv(t)

	_, apierr := env.Weather.Record(&contract.WeatherRequest{PortID: 42, Conditions: "clear"})
	if apierr == nil {
		t.Fatal("expected recording for a missing port to fail")
	}
}
