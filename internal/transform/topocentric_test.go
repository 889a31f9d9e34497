package transform

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lox-space/lox-go/internal/units"
)

func site(latDeg, lonDeg, altKm float64) Geodetic {
	return Geodetic{Latitude: units.Degrees(latDeg), Longitude: units.Degrees(lonDeg), Altitude: units.Kilometers(altKm)}
}

func TestObserverITRFMagnitude(t *testing.T) {
	// WGS-84 equatorial radius is 6378.137 km.
	if mag := r3.Norm(NewObserver(site(0, 0, 0)).ITRF()); math.Abs(mag-6378.137) > 1e-3 {
		t.Errorf("equatorial observer magnitude = %.4f km, want 6378.137 km", mag)
	}
	// Polar radius is 6356.752 km.
	if mag := r3.Norm(NewObserver(site(90, 0, 0)).ITRF()); math.Abs(mag-6356.7523) > 1e-3 {
		t.Errorf("polar observer magnitude = %.4f km, want 6356.752 km", mag)
	}
}

func TestObserverAltitude(t *testing.T) {
	mag0 := r3.Norm(NewObserver(site(0, 0, 0)).ITRF())
	mag100 := r3.Norm(NewObserver(site(0, 0, 0.1)).ITRF())
	if diff := mag100 - mag0; math.Abs(diff-0.1) > 1e-8 {
		t.Errorf("altitude difference = %.6f km, want 0.1 km", diff)
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	tests := []Geodetic{
		site(0, 0, 0),
		site(51.4779, -0.0015, 0.046),
		site(-33.87, 151.21, 400),
		site(89.9, 45, 35786),
		site(-45, -120, 800),
	}
	for _, g := range tests {
		got := ToGeodetic(g.ITRF())
		if d := math.Abs(got.Latitude.Deg() - g.Latitude.Deg()); d > 1e-9 {
			t.Errorf("%+v: latitude off by %g°", g, d)
		}
		if d := math.Abs(got.Longitude.Deg() - g.Longitude.Deg()); d > 1e-9 {
			t.Errorf("%+v: longitude off by %g°", g, d)
		}
		if d := math.Abs(got.Altitude.Km() - g.Altitude.Km()); d > 1e-6 {
			t.Errorf("%+v: altitude off by %g km", g, d)
		}
	}
}

func TestLookAnglesDirectlyOverhead(t *testing.T) {
	obs := NewObserver(site(0, 0, 0))
	sat := r3.Add(obs.ITRF(), r3.Vec{X: 400})

	// Receding straight up at 1 km/s.
	la := obs.LookAngles(sat, r3.Vec{X: 1})
	if math.Abs(la.Elevation.Deg()-90.0) > 0.1 {
		t.Errorf("overhead elevation = %.2f deg, want ~90", la.Elevation.Deg())
	}
	if math.Abs(la.Range.Km()-400.0) > 1e-9 {
		t.Errorf("overhead range = %.2f km, want 400", la.Range.Km())
	}
	if math.Abs(la.RangeRate.KPS()-1) > 1e-12 {
		t.Errorf("range rate = %g km/s, want 1", la.RangeRate.KPS())
	}
}

func TestLookAnglesAzimuthDirections(t *testing.T) {
	obs := NewObserver(site(0, 0, 0))
	tests := []struct {
		name   string
		target Geodetic
		want   float64
	}{
		{"north", site(10, 0, 400), 0},
		{"east", site(0, 10, 400), 90},
		{"south", site(-10, 0, 400), 180},
		{"west", site(0, -10, 400), 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			la := obs.LookAngles(tt.target.ITRF(), r3.Vec{})
			d := math.Abs(math.Remainder(la.Azimuth.Deg()-tt.want, 360))
			if d > 1 {
				t.Errorf("azimuth = %.2f deg, want near %v", la.Azimuth.Deg(), tt.want)
			}
			if la.Elevation.Deg() <= 0 || la.Elevation.Deg() >= 90 {
				t.Errorf("elevation = %.2f deg, want above the horizon", la.Elevation.Deg())
			}
		})
	}
}

func TestLookAnglesBelowHorizon(t *testing.T) {
	obs := NewObserver(site(0, 0, 0))
	la := obs.LookAngles(site(0, 90, 400).ITRF(), r3.Vec{})
	if la.Elevation.Deg() >= 0 {
		t.Errorf("elevation = %.2f deg, want below the horizon", la.Elevation.Deg())
	}
}
