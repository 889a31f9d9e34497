package iers

import (
	"math"

	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/units"
)

// Nutation holds the nutation in longitude and in obliquity.
type Nutation struct {
	DPsi units.Angle
	DEps units.Angle
}

// Add returns the component-wise sum of n and o.
func (n Nutation) Add(o Nutation) Nutation {
	return Nutation{DPsi: n.DPsi + o.DPsi, DEps: n.DEps + o.DEps}
}

// Matrix returns the nutation matrix for mean obliquity epsa, transforming
// from the mean to the true equator and equinox of date.
func (n Nutation) Matrix(epsa units.Angle) rotation.Matrix {
	return rotation.RotX(-(n.DEps + epsa).Rad()).
		Mul(rotation.RotZ(-n.DPsi.Rad())).
		Mul(rotation.RotX(epsa.Rad()))
}

type luniSolarTerm struct {
	l, lp, f, d, om float64

	sinPsi, sinPsiT, cosPsi float64
	cosEps, cosEpsT, sinEps float64
}

type nutation1980Term struct {
	l, lp, f, d, om float64

	sinPsi, sinPsiT float64
	cosEps, cosEpsT float64
}

// Fixed offsets standing in for the planetary terms of the 2000 models.
var (
	planetaryDPsi = units.Milliarcseconds(-0.135)
	planetaryDEps = units.Milliarcseconds(0.388)
)

func luniSolar(t float64, a delaunay) Nutation {
	var dpsi, deps float64
	for i := len(luniSolar2000) - 1; i >= 0; i-- {
		term := &luniSolar2000[i]
		arg := math.Mod(term.l*a[0]+term.lp*a[1]+term.f*a[2]+term.d*a[3]+term.om*a[4], 2*math.Pi)
		s, c := math.Sincos(arg)
		dpsi += (term.sinPsi+term.sinPsiT*t)*s + term.cosPsi*c
		deps += (term.cosEps+term.cosEpsT*t)*c + term.sinEps*s
	}
	return Nutation{
		DPsi: units.Microarcseconds(dpsi * 1e-1),
		DEps: units.Microarcseconds(deps * 1e-1),
	}
}

// Nutation2000B evaluates the truncated IAU 2000B model at t TDB Julian
// centuries since J2000.
func Nutation2000B(t float64) Nutation {
	n := luniSolar(t, delaunay2000B(t))
	return n.Add(Nutation{DPsi: planetaryDPsi, DEps: planetaryDEps})
}

// Nutation2000A evaluates the IAU 2000A model at t TDB Julian centuries
// since J2000 with the full-precision fundamental arguments.
//
// TODO: replace the 77-term luni-solar table and the mean planetary offset
// with the 678 luni-solar and 687 planetary terms of the complete series.
// Until then results agree with the complete model to about a
// milliarcsecond, not to the microarcsecond level.
func Nutation2000A(t float64) Nutation {
	n := luniSolar(t, delaunay2000A(t))
	return n.Add(Nutation{DPsi: planetaryDPsi, DEps: planetaryDEps})
}

// Nutation2006A is IAU 2000A adjusted for the IAU 2006 precession.
func Nutation2006A(t float64) Nutation {
	n := Nutation2000A(t)
	fj2 := -2.7774e-6 * t
	return Nutation{
		DPsi: n.DPsi + units.Angle((0.4697e-6+fj2)*n.DPsi.Rad()),
		DEps: n.DEps + units.Angle(fj2*n.DEps.Rad()),
	}
}

// Nutation1980 evaluates the IAU 1980 nutation series at t TDB Julian
// centuries since J2000.
func Nutation1980(t float64) Nutation {
	a := delaunay1980(t)
	var dpsi, deps float64
	for i := len(nutation1980Terms) - 1; i >= 0; i-- {
		term := &nutation1980Terms[i]
		arg := term.l*a[0] + term.lp*a[1] + term.f*a[2] + term.d*a[3] + term.om*a[4]
		s, c := math.Sincos(arg)
		dpsi += (term.sinPsi + term.sinPsiT*t) * s
		deps += (term.cosEps + term.cosEpsT*t) * c
	}
	return Nutation{
		DPsi: units.Milliarcseconds(dpsi * 1e-1),
		DEps: units.Milliarcseconds(deps * 1e-1),
	}
}

// delaunay1980 evaluates the 1980 fundamental arguments: an arcsecond
// polynomial plus a whole number of revolutions per century.
func delaunay1980(t float64) delaunay {
	arg := func(revs float64, c ...float64) float64 {
		a := units.Arcseconds(poly(t, c...)) + units.Angle(math.Mod(revs*t, 1)*2*math.Pi)
		return a.NormalizeTwoPi(0).Rad()
	}
	return delaunay{
		arg(1325, 485866.733, 715922.633, 31.31, 0.064),
		arg(99, 1287099.804, 1292581.224, -0.577, -0.012),
		arg(1342, 335778.877, 295263.137, -13.257, 0.011),
		arg(1236, 1072261.307, 1105601.328, -6.891, 0.019),
		arg(-5, 450160.280, -482890.539, 7.455, 0.008),
	}
}
