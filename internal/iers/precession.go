package iers

import (
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/units"
)

// MeanObliquity1980 returns the IAU 1980 mean obliquity of the ecliptic at
// t TT Julian centuries since J2000.
func MeanObliquity1980(t float64) units.Angle {
	return units.Arcseconds(poly(t, 84381.448, -46.8150, -0.00059, 0.001813))
}

// MeanObliquity2006 returns the IAU 2006 mean obliquity of the ecliptic.
func MeanObliquity2006(t float64) units.Angle {
	return units.Arcseconds(poly(t, 84381.406, -46.836769, -0.0001831, 0.00200340, -0.000000576, -0.0000000434))
}

// J2000 obliquity and frame-bias angles of the IAU 2000 model.
var (
	obliquityJ2000 = units.Arcseconds(84381.448)
	biasDPsi       = units.Arcseconds(-0.041775)
	biasDEps       = units.Arcseconds(-0.0068192)
	biasDRA0       = units.Arcseconds(-0.0146)
)

// FrameBias returns the matrix rotating from the GCRS to the mean J2000
// equator and equinox.
func FrameBias() rotation.Matrix {
	return rotation.RotX(-biasDEps.Rad()).
		Mul(rotation.RotY(obliquityJ2000.Sin() * biasDPsi.Rad())).
		Mul(rotation.RotZ(biasDRA0.Rad()))
}

// PrecessionCorrections2000 returns the IAU 2000 corrections to the
// precession rates in longitude and obliquity at t TT Julian centuries.
func PrecessionCorrections2000(t float64) (dpsipr, depspr units.Angle) {
	return units.Arcseconds(-0.29965 * t), units.Arcseconds(-0.02524 * t)
}

// BiasPrecession1976 returns the frame bias combined with the IAU 1976
// precession from J2000 to t TT Julian centuries.
func BiasPrecession1976(t float64) rotation.Matrix {
	return Precession1976(t).Mul(FrameBias())
}

// Precession1976 returns the IAU 1976 precession matrix from J2000 to t TT
// Julian centuries.
func Precession1976(t float64) rotation.Matrix {
	zeta := units.Arcseconds((2306.2181 + (0.30188+0.017998*t)*t) * t)
	z := units.Arcseconds((2306.2181 + (1.09468+0.018203*t)*t) * t)
	theta := units.Arcseconds((2004.3109 + (-0.42665-0.041833*t)*t) * t)
	return rotation.RotZ(-z.Rad()).
		Mul(rotation.RotY(theta.Rad())).
		Mul(rotation.RotZ(-zeta.Rad()))
}

// BiasPrecession2000 returns the IAU 2000 bias-precession matrix.
func BiasPrecession2000(t float64) rotation.Matrix {
	dpsipr, depspr := PrecessionCorrections2000(t)
	psia := units.Arcseconds(poly(t, 0, 5038.7784, -1.07259, -0.001147)) + dpsipr
	oma := obliquityJ2000 + units.Arcseconds(poly(t, 0, 0, 0.05127, -0.007726)) + depspr
	chia := units.Arcseconds(poly(t, 0, 10.5526, -2.38064, -0.001125))
	rp := rotation.RotZ(chia.Rad()).
		Mul(rotation.RotX(-oma.Rad())).
		Mul(rotation.RotZ(-psia.Rad())).
		Mul(rotation.RotX(obliquityJ2000.Rad()))
	return rp.Mul(FrameBias())
}

// fukushimaWilliams holds the Fukushima-Williams precession angles.
type fukushimaWilliams struct {
	gamb, phib, psib, epsa units.Angle
}

func fukushimaWilliams2006(t float64) fukushimaWilliams {
	return fukushimaWilliams{
		gamb: units.Arcseconds(poly(t, -0.052928, 10.556378, 0.4932044, -0.00031238, -0.000002788, 0.0000000260)),
		phib: units.Arcseconds(poly(t, 84381.412819, -46.811016, 0.0511268, 0.00053289, -0.000000440, -0.0000000176)),
		psib: units.Arcseconds(poly(t, -0.041775, 5038.481484, 1.5584175, -0.00018522, -0.000026452, -0.0000000148)),
		epsa: MeanObliquity2006(t),
	}
}

func (fw fukushimaWilliams) matrix(dpsi, deps units.Angle) rotation.Matrix {
	return rotation.RotX(-(fw.epsa + deps).Rad()).
		Mul(rotation.RotZ(-(fw.psib + dpsi).Rad())).
		Mul(rotation.RotX(fw.phib.Rad())).
		Mul(rotation.RotZ(fw.gamb.Rad()))
}

// BiasPrecession2006 returns the IAU 2006 bias-precession matrix at t TT
// Julian centuries.
func BiasPrecession2006(t float64) rotation.Matrix {
	return fukushimaWilliams2006(t).matrix(0, 0)
}
