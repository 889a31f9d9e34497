package iers

import (
	"math"

	"github.com/lox-space/lox-go/internal/units"
)

// Fundamental arguments of nutation theory as functions of TDB Julian
// centuries since J2000. Suffixes name the model the polynomial comes from:
// IERS Conventions 2003, MHB2000 and Simon et al. (1994).

// poly evaluates c[0] + c[1]·t + c[2]·t² + … by Horner's rule.
func poly(t float64, c ...float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*t + c[i]
	}
	return r
}

func arcsecSigned(asec float64) float64 {
	return units.ArcsecondsNormalizedSigned(asec).Rad()
}

func radSigned(rad float64) float64 { return math.Mod(rad, 2*math.Pi) }

// Delaunay arguments.

func lIERS03(t float64) float64 {
	return arcsecSigned(poly(t, 485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470))
}

func lpIERS03(t float64) float64 {
	return arcsecSigned(poly(t, 1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149))
}

func fIERS03(t float64) float64 {
	return arcsecSigned(poly(t, 335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417))
}

func dIERS03(t float64) float64 {
	return arcsecSigned(poly(t, 1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169))
}

func omegaIERS03(t float64) float64 {
	return arcsecSigned(poly(t, 450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939))
}

// Mean longitudes of Venus and the Earth and the general precession in
// longitude.

func venusIERS03(t float64) float64 { return radSigned(3.176146697 + 1021.3285546211*t) }
func earthIERS03(t float64) float64 { return radSigned(1.753470314 + 628.3075849991*t) }

func paIERS03(t float64) float64 { return poly(t, 0, 0.024381750, 0.00000538691) }

func dMHB2000LuniSolar(t float64) float64 {
	return arcsecSigned(poly(t, 1072260.70369, 1602961601.2090, -6.3706, 0.006593, -0.00003169))
}

func lpMHB2000(t float64) float64 {
	return arcsecSigned(poly(t, 1287104.79305, 129596581.0481, -0.5532, 0.000136, -0.00001149))
}

func lSimon1994(t float64) float64     { return arcsecSigned(poly(t, 485868.249036, 1717915923.2178)) }
func lpSimon1994(t float64) float64    { return arcsecSigned(poly(t, 1287104.79305, 129596581.0481)) }
func fSimon1994(t float64) float64     { return arcsecSigned(poly(t, 335779.526232, 1739527262.8478)) }
func dSimon1994(t float64) float64     { return arcsecSigned(poly(t, 1072260.70369, 1602961601.2090)) }
func omegaSimon1994(t float64) float64 { return arcsecSigned(poly(t, 450160.398036, -6962890.5431)) }

// delaunay holds the five luni-solar arguments l, l', F, D and Ω.
type delaunay [5]float64

func delaunay2000A(t float64) delaunay {
	return delaunay{lIERS03(t), lpMHB2000(t), fIERS03(t), dMHB2000LuniSolar(t), omegaIERS03(t)}
}

func delaunay2000B(t float64) delaunay {
	return delaunay{lSimon1994(t), lpSimon1994(t), fSimon1994(t), dSimon1994(t), omegaSimon1994(t)}
}

// cioArguments are the eight arguments of the CIO locator and
// equation-of-the-equinoxes series: l, l', F, D, Ω, LVe, LE, pA.
func cioArguments(t float64) [8]float64 {
	return [8]float64{
		lIERS03(t), lpIERS03(t), fIERS03(t), dIERS03(t), omegaIERS03(t),
		venusIERS03(t), earthIERS03(t), paIERS03(t),
	}
}
