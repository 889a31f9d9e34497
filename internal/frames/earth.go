package frames

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lox-space/lox-go/internal/bodies"
	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/iers"
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/timescale"
)

// EarthRotationRate is the rate of the Earth rotation angle in rad/s.
const EarthRotationRate = 2 * math.Pi * 1.00273781191135448 / deltas.SecondsPerDay

// Provider supplies the Earth orientation parameters the terrestrial frames
// depend on.
type Provider interface {
	timescale.DeltaUT1Provider
	// PolarMotion returns the pole coordinates at a TT instant.
	PolarMotion(tt timescale.Time) (iers.Pole, error)
	// CIPCorrections returns the observed celestial pole offsets dX and dY
	// at a TT instant.
	CIPCorrections(tt timescale.Time) (iers.CIP, error)
}

// ICRFToCIRF returns the IAU 2006/2000A bias-precession-nutation rotation at
// t TT Julian centuries since J2000, with the celestial pole offsets
// corrections applied to the CIP. The iers series are defined on TDB; t is
// passed to them as TT since TDB - TT stays below 2 ms, which moves the
// pole by well under a microarcsecond.
func ICRFToCIRF(t float64, corrections iers.CIP) rotation.Rotation {
	cip := iers.CIP2006(t)
	s := iers.CIOLocator2006(t, cip)
	return rotation.New(cip.Add(corrections).CelestialToIntermediate(s))
}

// CIRFToTIRF returns the Earth rotation at ut1Days UT1 days since J2000.
func CIRFToTIRF(ut1Days float64) rotation.Rotation {
	era := iers.EarthRotationAngle(ut1Days)
	return rotation.WithAngularVelocity(rotation.RotZ(era.Rad()), r3.Vec{Z: EarthRotationRate})
}

// TIRFToITRF returns the polar-motion rotation at t TT Julian centuries.
func TIRFToITRF(t float64, pole iers.Pole) rotation.Rotation {
	return rotation.New(pole.Matrix(iers.TIOLocator(t)))
}

// ICRFToIAU returns the rotation into the IAU frame of b at t TDB seconds
// since J2000.
func ICRFToIAU(b bodies.Body, t float64) (rotation.Rotation, error) {
	el, err := b.RotationalElements(t)
	if err != nil {
		return rotation.Rotation{}, err
	}
	rates, err := b.RotationalElementRates(t)
	if err != nil {
		return rotation.Rotation{}, err
	}
	m := rotation.RotZ(math.Mod(el.RotationAngle, 2*math.Pi)).
		Mul(rotation.RotX(math.Pi/2 - el.Declination)).
		Mul(rotation.RotZ(el.RightAscension + math.Pi/2))
	w := r3.Vec{X: rates.RightAscension, Y: -rates.Declination, Z: rates.RotationAngle}
	return rotation.WithAngularVelocity(m, w), nil
}

// ICRFToTEME returns the rotation into the True Equator Mean Equinox frame
// of date at t TT Julian centuries, using the IAU 1976/1980 models.
func ICRFToTEME(t float64) rotation.Rotation {
	n := iers.Nutation1980(t)
	eps := iers.MeanObliquity1980(t)
	m := rotation.RotZ(iers.EquationOfEquinoxes1994(t).Rad()).
		Mul(n.Matrix(eps)).
		Mul(iers.BiasPrecession1976(t))
	return rotation.New(m)
}

// TEMEToITRF returns the rotation from TEME to the ITRF through the
// pseudo-Earth-fixed frame, using the IAU 1982 sidereal time at ut1Days and
// the 1996 polar-motion matrix.
func TEMEToITRF(ut1Days float64, pole iers.Pole) rotation.Rotation {
	gmst := iers.GMST1982(ut1Days)
	pef := rotation.WithAngularVelocity(rotation.RotZ(gmst.Rad()), r3.Vec{Z: EarthRotationRate})
	return pef.Compose(rotation.New(pole.Matrix1996()))
}

// ZeroEOP is a Provider that reports UT1 = TAI - 37 s, a zero pole and no
// CIP corrections. It stands in for a real dataset when the caller accepts
// errors of up to a second in UT1.
type ZeroEOP struct{}

var zeroEOPOffset = deltas.FromSeconds(-37)

func (ZeroEOP) DeltaUT1TAI(timescale.Time) (deltas.TimeDelta, error) { return zeroEOPOffset, nil }
func (ZeroEOP) DeltaTAIUT1(timescale.Time) (deltas.TimeDelta, error) {
	return zeroEOPOffset.Neg(), nil
}
func (ZeroEOP) PolarMotion(timescale.Time) (iers.Pole, error)   { return iers.Pole{}, nil }
func (ZeroEOP) CIPCorrections(timescale.Time) (iers.CIP, error) { return iers.CIP{}, nil }
