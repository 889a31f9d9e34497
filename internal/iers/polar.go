package iers

import (
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/units"
)

// TIOLocator returns the TIO locator s' at t TT Julian centuries since J2000.
func TIOLocator(t float64) units.Angle {
	return units.Arcseconds(-47e-6 * t)
}

// Pole holds the coordinates of the CIP with respect to the ITRS.
type Pole struct {
	XP, YP units.Angle
}

func (p Pole) IsZero() bool { return p.XP == 0 && p.YP == 0 }

// Matrix1996 returns the IERS 1996 polar-motion matrix, without the TIO
// locator.
func (p Pole) Matrix1996() rotation.Matrix {
	if p.IsZero() {
		return rotation.Identity()
	}
	return rotation.RotY(-p.XP.Rad()).Mul(rotation.RotX(-p.YP.Rad()))
}

// Matrix returns the IERS 2003 polar-motion matrix, rotating from the TIRS to
// the ITRS, for the TIO locator sp.
func (p Pole) Matrix(sp units.Angle) rotation.Matrix {
	if p.IsZero() {
		return rotation.Identity()
	}
	return p.Matrix1996().Mul(rotation.RotZ(sp.Rad()))
}
