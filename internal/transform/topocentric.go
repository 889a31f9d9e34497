// Package transform converts Earth-fixed (ITRF) positions to geodetic
// coordinates and to look angles from a ground observer on the WGS-84
// ellipsoid.
package transform

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lox-space/lox-go/internal/units"
)

// WGS-84 ellipsoid parameters.
const (
	wgs84A  = 6378.137              // semi-major axis (km)
	wgs84F  = 1.0 / 298.257223563   // flattening
	wgs84E2 = wgs84F * (2 - wgs84F) // first eccentricity squared
)

// Geodetic is a position on or above the WGS-84 ellipsoid.
type Geodetic struct {
	Latitude, Longitude units.Angle
	Altitude            units.Distance
}

// Observer is a ground station. Its Earth-fixed position is precomputed
// once so it can be reused across many satellite lookups.
type Observer struct {
	Geodetic
	itrf r3.Vec // km
}

// LookAngles holds azimuth, elevation, range and range rate from an
// observer to a satellite.
type LookAngles struct {
	Azimuth   units.Angle // 0 = North, clockwise
	Elevation units.Angle // 0 = horizon, 90° = zenith
	Range     units.Distance
	RangeRate units.Velocity // positive when receding
}

// NewObserver creates an Observer from geodetic coordinates.
func NewObserver(g Geodetic) Observer {
	return Observer{Geodetic: g, itrf: g.ITRF()}
}

// ITRF returns the Earth-fixed position in km.
func (g Geodetic) ITRF() r3.Vec {
	sinLat, cosLat := g.Latitude.SinCos()
	sinLon, cosLon := g.Longitude.SinCos()
	alt := g.Altitude.Km()

	// Radius of curvature in the prime vertical.
	n := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)

	return r3.Vec{
		X: (n + alt) * cosLat * cosLon,
		Y: (n + alt) * cosLat * sinLon,
		Z: (n*(1-wgs84E2) + alt) * sinLat,
	}
}

// ITRF returns the observer's Earth-fixed position in km.
func (o Observer) ITRF() r3.Vec { return o.itrf }

// ToGeodetic converts an Earth-fixed position in km to geodetic coordinates
// with Bowring's iteration, which converges in 2-3 steps for Earth orbits.
func ToGeodetic(pos r3.Vec) Geodetic {
	lon := math.Atan2(pos.Y, pos.X)
	p := math.Hypot(pos.X, pos.Y)

	lat := math.Atan2(pos.Z, p*(1-wgs84E2))
	for i := 0; i < 5; i++ {
		sinLat := math.Sin(lat)
		n := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)
		lat = math.Atan2(pos.Z+wgs84E2*n*sinLat, p)
	}

	sinLat, cosLat := math.Sincos(lat)
	n := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)

	var alt float64
	if math.Abs(cosLat) > 1e-10 {
		alt = p/cosLat - n
	} else {
		alt = math.Abs(pos.Z)/math.Abs(sinLat) - n*(1-wgs84E2)
	}

	return Geodetic{
		Latitude:  units.Radians(lat),
		Longitude: units.Radians(lon),
		Altitude:  units.Kilometers(alt),
	}
}

// LookAngles computes the look angles to a satellite at the Earth-fixed
// position pos (km) moving at vel (km/s), using the SEZ (South-East-Zenith)
// topocentric rotation per Vallado Section 4.4.
func (o Observer) LookAngles(pos, vel r3.Vec) LookAngles {
	rho := r3.Sub(pos, o.itrf)

	sinLat, cosLat := o.Latitude.SinCos()
	sinLon, cosLon := o.Longitude.SinCos()

	south := sinLat*cosLon*rho.X + sinLat*sinLon*rho.Y - cosLat*rho.Z
	east := -sinLon*rho.X + cosLon*rho.Y
	zenith := cosLat*cosLon*rho.X + cosLat*sinLon*rho.Y + sinLat*rho.Z

	rng := math.Sqrt(south*south + east*east + zenith*zenith)

	// In SEZ, North is the -South direction.
	az := math.Atan2(east, -south)
	if az < 0 {
		az += 2 * math.Pi
	}

	return LookAngles{
		Azimuth:   units.Radians(az),
		Elevation: units.Radians(math.Asin(zenith / rng)),
		Range:     units.Kilometers(rng),
		RangeRate: units.KilometersPerSecond(r3.Dot(rho, vel) / rng),
	}
}
