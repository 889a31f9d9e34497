package bodies

import (
	"math"

	"github.com/lox-space/lox-go/internal/deltas"
)

const (
	secondsPerCentury = float64(deltas.SecondsPerJulianCentury)
	secondsPerDay     = float64(deltas.SecondsPerDay)
	deg               = math.Pi / 180
)

// Elements holds the right ascension and declination of a body's north pole
// and the rotation angle of its prime meridian, or their rates.
type Elements struct {
	RightAscension float64
	Declination    float64
	RotationAngle  float64
}

type elementKind int

const (
	rightAscension elementKind = iota
	declination
	rotationAngle
)

// dt is the time unit the polynomial coefficients of the element refer to.
func (k elementKind) dt() float64 {
	if k == rotationAngle {
		return secondsPerDay
	}
	return secondsPerCentury
}

// nutationPrecession holds the phase and rate of the angles that the
// trigonometric terms of a model are evaluated at. Rates are per Julian
// century.
type nutationPrecession struct {
	theta0 []float64
	theta1 []float64
}

// element is c0 + c1·t + c2·t² plus optional trigonometric terms, in radians.
// The terms are sines for right ascension and rotation angle and cosines for
// declination.
type element struct {
	c0, c1, c2 float64
	trig       []float64
}

func (e element) angle(kind elementKind, np nutationPrecession, t float64) float64 {
	dt := kind.dt()
	a := e.c0 + e.c1*t/dt + e.c2*t*t/(dt*dt)
	for i := len(e.trig) - 1; i >= 0; i-- {
		c := e.trig[i]
		if c == 0 {
			continue
		}
		theta := np.theta0[i] + np.theta1[i]*t/secondsPerCentury
		if kind == declination {
			a += c * math.Cos(theta)
		} else {
			a += c * math.Sin(theta)
		}
	}
	return a
}

func (e element) rate(kind elementKind, np nutationPrecession, t float64) float64 {
	dt := kind.dt()
	r := e.c1/dt + 2*e.c2*t/(dt*dt)
	for i := len(e.trig) - 1; i >= 0; i-- {
		c := e.trig[i]
		if c == 0 {
			continue
		}
		theta := np.theta0[i] + np.theta1[i]*t/secondsPerCentury
		w := c * np.theta1[i] / secondsPerCentury
		if kind == declination {
			r -= w * math.Sin(theta)
		} else {
			r += w * math.Cos(theta)
		}
	}
	return r
}

// model is the IAU rotational-element model of a body.
type model struct {
	np         nutationPrecession
	ra, dec, w element
}

func (m *model) elements(t float64) Elements {
	return Elements{
		RightAscension: m.ra.angle(rightAscension, m.np, t),
		Declination:    m.dec.angle(declination, m.np, t),
		RotationAngle:  m.w.angle(rotationAngle, m.np, t),
	}
}

func (m *model) rates(t float64) Elements {
	return Elements{
		RightAscension: m.ra.rate(rightAscension, m.np, t),
		Declination:    m.dec.rate(declination, m.np, t),
		RotationAngle:  m.w.rate(rotationAngle, m.np, t),
	}
}

// degrees builds an element from coefficients given in degrees.
func degrees(c0, c1, c2 float64, trig ...float64) element {
	e := element{c0: c0 * deg, c1: c1 * deg, c2: c2 * deg}
	if len(trig) > 0 {
		e.trig = make([]float64, len(trig))
		for i, c := range trig {
			e.trig[i] = c * deg
		}
	}
	return e
}

// dailyAngles builds nutation-precession angles from phases in degrees and
// rates in degrees per day.
func dailyAngles(phases, perDay []float64) nutationPrecession {
	np := nutationPrecession{
		theta0: make([]float64, len(phases)),
		theta1: make([]float64, len(perDay)),
	}
	for i := range phases {
		np.theta0[i] = phases[i] * deg
		np.theta1[i] = perDay[i] * deg * deltas.DaysPerJulianCentury
	}
	return np
}
