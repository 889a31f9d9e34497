// Package eop loads IERS Earth orientation parameters and serves them as a
// UT1 and polar-motion provider for the time scale and frame packages.
package eop

import (
	"errors"
	"time"
)

// ErrNoData is returned when a dataset holds too few usable rows.
var ErrNoData = errors.New("no earth orientation data")

// Record is one daily row of an IERS finals file. Fields missing from the
// row are NaN.
type Record struct {
	MJD float64
	// XP and YP are the pole coordinates in arcseconds.
	XP, YP float64
	// UT1MinusUTC is in seconds.
	UT1MinusUTC float64
	// DX and DY are the celestial pole offsets in milliarcseconds.
	DX, DY float64
}

// MJDRange is the span of modified Julian dates covered by a dataset.
type MJDRange struct {
	First float64
	Last  float64
}

// Dataset is a parsed EOP file together with its provenance.
type Dataset struct {
	Source    string
	FetchedAt time.Time
	Range     MJDRange
	Rows      int
	Provider  *Provider
}
