package iers

import (
	"math"

	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/units"
)

// CIP holds the X and Y coordinates of the Celestial Intermediate Pole in
// the GCRS, or corrections to them.
type CIP struct {
	X, Y float64
}

// CIPFromMatrix extracts the CIP coordinates from a bias-precession-nutation
// matrix.
func CIPFromMatrix(npb rotation.Matrix) CIP {
	return CIP{X: npb[2][0], Y: npb[2][1]}
}

// CIP2006 returns the CIP coordinates of the IAU 2006/2000A model at t TT
// Julian centuries since J2000.
func CIP2006(t float64) CIP {
	n := Nutation2006A(t)
	return CIPFromMatrix(fukushimaWilliams2006(t).matrix(n.DPsi, n.DEps))
}

// Add applies celestial pole offsets such as the observed dX and dY.
func (c CIP) Add(d CIP) CIP {
	return CIP{X: c.X + d.X, Y: c.Y + d.Y}
}

// CelestialToIntermediate returns the GCRS to CIRS matrix for the pole c and
// the CIO locator s.
func (c CIP) CelestialToIntermediate(s units.Angle) rotation.Matrix {
	r2 := c.X*c.X + c.Y*c.Y
	var e float64
	if r2 > 0 {
		e = math.Atan2(c.Y, c.X)
	}
	d := math.Atan(math.Sqrt(r2 / (1 - r2)))
	return rotation.RotZ(-(e + s.Rad())).
		Mul(rotation.RotY(d)).
		Mul(rotation.RotZ(e))
}
