package iers

import (
	"math"

	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/units"
)

// EarthRotationAngle returns the IAU 2000 Earth rotation angle in [0, 2π)
// at ut1Days UT1 days since J2000.
func EarthRotationAngle(ut1Days float64) units.Angle {
	f := math.Mod(ut1Days, 1)
	if f < 0 {
		f++
	}
	return units.Angle(2 * math.Pi * (f + 0.7790572732640 + 0.00273781191135448*ut1Days)).ModTwoPi()
}

// GMST1982 returns the IAU 1982 Greenwich mean sidereal time.
func GMST1982(ut1Days float64) units.Angle {
	const (
		a = 24110.54841 - deltas.SecondsPerHalfDay
		b = 8640184.812866
		c = 0.093104
		d = -6.2e-6
	)
	t := ut1Days / deltas.DaysPerJulianCentury
	f := math.Mod(ut1Days, 1) * deltas.SecondsPerDay
	return units.FromHMS(0, 0, poly(t, a, b, c, d)+f).ModTwoPi()
}

// GMST2000 returns the IAU 2000 Greenwich mean sidereal time consistent with
// the Earth rotation angle at ut1Days and the precession at ttCenturies.
func GMST2000(ut1Days, ttCenturies float64) units.Angle {
	p := units.Arcseconds(poly(ttCenturies, 0.014506, 4612.15739966, 1.39667721, -0.00009344, 0.00001882))
	return (EarthRotationAngle(ut1Days) + p.ModTwoPi()).ModTwoPi()
}

// GMST2006 returns the IAU 2006 Greenwich mean sidereal time.
func GMST2006(ut1Days, ttCenturies float64) units.Angle {
	p := units.Arcseconds(poly(ttCenturies, 0.014506, 4612.156534, 1.3915817, -0.00000044, -0.000029956, -0.0000000368))
	return (EarthRotationAngle(ut1Days) + p.ModTwoPi()).ModTwoPi()
}

// EquationOfEquinoxes1994 returns the IAU 1994 equation of the equinoxes at
// t TDB Julian centuries since J2000.
func EquationOfEquinoxes1994(t float64) units.Angle {
	om := units.Arcseconds(poly(t, 450160.280, -482890.539, 7.455, 0.008))
	rev := math.Mod(-5*t, 1)
	if rev < 0 {
		rev++
	}
	om = (om + units.Angle(rev*2*math.Pi)).ModTwoPi()
	dpsi := Nutation1980(t).DPsi
	eps := MeanObliquity1980(t)
	return units.Angle(eps.Cos()*dpsi.Rad()) +
		units.Arcseconds(0.00264*math.Sin(om.Rad())+0.000063*math.Sin(2*om.Rad()))
}

// ComplementaryTerms returns the complementary terms of the equation of the
// equinoxes at t TT Julian centuries since J2000.
func ComplementaryTerms(t float64) units.Angle {
	args := cioArguments(t)
	return units.Arcseconds(sumTerms(equinoxTerms0[:], args) + sumTerms(equinoxTerms1[:], args)*t)
}

// EquationOfEquinoxes2000 returns the equation of the equinoxes for mean
// obliquity epsa and nutation in longitude dpsi.
func EquationOfEquinoxes2000(t float64, epsa, dpsi units.Angle) units.Angle {
	return units.Angle(epsa.Cos()*dpsi.Rad()) + ComplementaryTerms(t)
}

func equationOfEquinoxes2000(t float64, n Nutation) units.Angle {
	_, depspr := PrecessionCorrections2000(t)
	return EquationOfEquinoxes2000(t, MeanObliquity1980(t)+depspr, n.DPsi)
}

// EquationOfEquinoxes2000A uses the IAU 2000A nutation.
func EquationOfEquinoxes2000A(t float64) units.Angle {
	return equationOfEquinoxes2000(t, Nutation2000A(t))
}

// EquationOfEquinoxes2000B uses the IAU 2000B nutation.
func EquationOfEquinoxes2000B(t float64) units.Angle {
	return equationOfEquinoxes2000(t, Nutation2000B(t))
}

// EquationOfEquinoxes2006A uses the IAU 2006 obliquity and 2006A nutation.
func EquationOfEquinoxes2006A(t float64) units.Angle {
	return EquationOfEquinoxes2000(t, MeanObliquity2006(t), Nutation2006A(t).DPsi)
}

// GAST1994 returns the Greenwich apparent sidereal time consistent with the
// IAU 1976/1980 models.
func GAST1994(ut1Days, tdbCenturies float64) units.Angle {
	return (GMST1982(ut1Days) + EquationOfEquinoxes1994(tdbCenturies)).ModTwoPi()
}

func GAST2000A(ut1Days, ttCenturies float64) units.Angle {
	return (GMST2000(ut1Days, ttCenturies) + EquationOfEquinoxes2000A(ttCenturies)).ModTwoPi()
}

func GAST2000B(ut1Days, ttCenturies float64) units.Angle {
	return (GMST2000(ut1Days, ttCenturies) + EquationOfEquinoxes2000B(ttCenturies)).ModTwoPi()
}

func GAST2006A(ut1Days, ttCenturies float64) units.Angle {
	return (GMST2006(ut1Days, ttCenturies) + EquationOfEquinoxes2006A(ttCenturies)).ModTwoPi()
}
