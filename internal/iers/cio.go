package iers

import (
	"math"

	"github.com/lox-space/lox-go/internal/units"
)

// cioTerm is one trigonometric term of the CIO locator or of the
// complementary terms of the equation of the equinoxes, with integer
// multipliers of the eight cioArguments and amplitudes in arcseconds.
type cioTerm struct {
	nfa  [8]float64
	s, c float64
}

func sumTerms(terms []cioTerm, args [8]float64) float64 {
	var sum float64
	for i := len(terms) - 1; i >= 0; i-- {
		var a float64
		for j, n := range terms[i].nfa {
			a += n * args[j]
		}
		s, c := math.Sincos(a)
		sum += terms[i].s*s + terms[i].c*c
	}
	return sum
}

// CIOLocator2006 returns the CIO locator s at t TDB Julian centuries since
// J2000 given the CIP coordinates at that date. TT may be used for t.
func CIOLocator2006(t float64, cip CIP) units.Angle {
	args := cioArguments(t)
	coeffs := cioPolynomial
	for k, terms := range [...][]cioTerm{cioTerms0[:], cioTerms1[:], cioTerms2[:], cioTerms3[:], cioTerms4[:]} {
		coeffs[k] += sumTerms(terms, args)
	}
	return units.Arcseconds(poly(t, coeffs[:]...)) - units.Angle(cip.X*cip.Y/2)
}
