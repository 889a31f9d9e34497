package deltas

import "math"

// Epoch is a reference epoch for Julian-date projections.
type Epoch int

const (
	J2000 Epoch = iota
	JulianEpoch
	ModifiedJulianEpoch
	J1950
)

// Unit is the unit of a Julian-date projection.
type Unit int

const (
	Seconds Unit = iota
	Days
	Centuries
)

// Offsets of the reference epochs from J2000 in seconds.
const (
	SecondsBetweenJDAndJ2000    int64 = 211813488000
	SecondsBetweenMJDAndJ2000   int64 = 4453444800
	SecondsBetweenJ1950AndJ2000 int64 = 1577880000

	// J2000JulianDate is the Julian date of the J2000 epoch.
	J2000JulianDate = 2451545.0
	// MJDOffset is JD - MJD.
	MJDOffset = 2400000.5
)

// Offset returns the seconds from e to J2000.
func (e Epoch) Offset() int64 {
	switch e {
	case JulianEpoch:
		return SecondsBetweenJDAndJ2000
	case ModifiedJulianEpoch:
		return SecondsBetweenMJDAndJ2000
	case J1950:
		return SecondsBetweenJ1950AndJ2000
	}
	return 0
}

// SecondsFromEpoch returns the whole seconds of d measured from epoch
// instead of J2000.
func (d TimeDelta) SecondsFromEpoch(epoch Epoch) int64 {
	return d.seconds + epoch.Offset()
}

// JulianDate projects d, taken as an offset from J2000, onto epoch in unit.
func (d TimeDelta) JulianDate(epoch Epoch, unit Unit) float64 {
	if d.nan {
		return math.NaN()
	}
	s := float64(d.SecondsFromEpoch(epoch)) + d.subsecond.Float64()
	switch unit {
	case Days:
		return s / SecondsPerDay
	case Centuries:
		return s / SecondsPerJulianCentury
	}
	return s
}

// TwoPartJulianDate splits the Julian date into whole days and the fraction
// of a day. The split is done on the integer seconds so no precision is lost
// to the large day count.
func (d TimeDelta) TwoPartJulianDate() (float64, float64) {
	if d.nan {
		return math.NaN(), math.NaN()
	}
	s := d.SecondsFromEpoch(JulianEpoch)
	days := floorDiv(s, SecondsPerDay)
	rem := s - days*SecondsPerDay
	return float64(days), (float64(rem) + d.subsecond.Float64()) / SecondsPerDay
}

func (d TimeDelta) SecondsSinceJ2000() float64 { return d.JulianDate(J2000, Seconds) }
func (d TimeDelta) DaysSinceJ2000() float64 { return d.JulianDate(J2000, Days) }
func (d TimeDelta) CenturiesSinceJ2000() float64 { return d.JulianDate(J2000, Centuries) }

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
