package navigation

import (
	"math"
	"testing"
	"time"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	pts := [][2]float64{{0, 0}, {46.4825, 30.7233}, {-33.86, 151.2}, {90, 0}}
	for _, p := range pts {
		if d := Haversine(p[0], p[1], p[0], p[1]); d != 0 {
			t.Fatalf("Haversine(%v, %v) to itself = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	cases := [][4]float64{
		{46.4825, 30.7233, 41.0082, 28.9784},
		{51.9, 4.4, 31.2, 121.5},
		{40.7, -74.0, 53.5, 9.9},
	}
	for _, c := range cases {
		ab := Haversine(c[0], c[1], c[2], c[3])
		ba := Haversine(c[2], c[3], c[0], c[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("asymmetric distance: %v vs %v for %v", ab, ba, c)
		}
	}
}

func TestHaversineOdesaIstanbul(t *testing.T) {
	d := Haversine(46.4825, 30.7233, 41.0082, 28.9784)
	if math.Abs(d-624.6) > 0.5 {
		t.Fatalf("Odesa-Istanbul distance = %.2f km, want ~624.6", d)
	}
}

func TestHaversineOneDegreeOfLongitudeAtEquator(t *testing.T) {
	d := Haversine(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.1 {
		t.Fatalf("1 degree at equator = %.3f km, want ~111.19", d)
	}
}

func TestTravelHours(t *testing.T) {
	hours, err := TravelHours(111.19, 20)
	if err != nil {
		t.Fatalf("TravelHours returned error: %v", err)
	}
	want := 111.19 / (20 * 1.852)
	if math.Abs(hours-want) > 1e-12 {
		t.Fatalf("TravelHours = %v, want %v", hours, want)
	}
}

func TestTravelHoursRejectsZeroSpeed(t *testing.T) {
	if _, err := TravelHours(100, 0); err != ErrZeroSpeed {
		t.Fatalf("expected ErrZeroSpeed, got %v", err)
	}
	if _, err := TravelHours(100, -5); err != ErrZeroSpeed {
		t.Fatalf("expected ErrZeroSpeed for negative speed, got %v", err)
	}
}

func TestETA(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := ETA(t0, 3)
	want := t0.Add(3 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("ETA = %v, want %v", got, want)
	}
}
