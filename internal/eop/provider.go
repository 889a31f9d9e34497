package eop

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/lox-space/lox-go/internal/calendar"
	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/iers"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/units"
	"github.com/lox-space/lox-go/internal/utc"
)

// series is a natural cubic spline over seconds since J2000, extended
// linearly beyond its end points.
type series struct {
	xs, ys []float64
	spline interp.NaturalCubic
}

func newSeries(xs, ys []float64) (*series, error) {
	if len(xs) < 3 {
		return nil, ErrNoData
	}
	s := &series{xs: xs, ys: ys}
	if err := s.spline.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fitting spline: %w", err)
	}
	return s, nil
}

func (s *series) first() float64 { return s.xs[0] }
func (s *series) last() float64  { return s.xs[len(s.xs)-1] }

func (s *series) contains(x float64) bool { return x >= s.first() && x <= s.last() }

// at interpolates the series at x and reports whether x lies in range.
func (s *series) at(x float64) (float64, bool) {
	n := len(s.xs)
	switch {
	case x < s.xs[0]:
		slope := (s.ys[1] - s.ys[0]) / (s.xs[1] - s.xs[0])
		return s.ys[0] + slope*(x-s.xs[0]), false
	case x > s.xs[n-1]:
		slope := (s.ys[n-1] - s.ys[n-2]) / (s.xs[n-1] - s.xs[n-2])
		return s.ys[n-1] + slope*(x-s.xs[n-1]), false
	}
	return s.spline.Predict(x), true
}

// Provider interpolates Earth orientation parameters. It implements
// timescale.DeltaUT1Provider and frames.Provider and is safe for concurrent
// use.
type Provider struct {
	deltaUT1TAI *series
	xp, yp      *series
	// dx and dy are nil when the dataset carries no celestial pole offsets.
	dx, dy *series
}

var (
	_ timescale.DeltaUT1Provider = (*Provider)(nil)
	_ frames.Provider            = (*Provider)(nil)
)

func secondsSinceJ2000(mjd float64) float64 {
	return mjd*deltas.SecondsPerDay - float64(deltas.SecondsBetweenMJDAndJ2000)
}

// NewProvider builds a provider from parsed records. UT1-UTC is converted to
// UT1-TAI with the leap seconds of ls, or the built-in table if ls is nil.
func NewProvider(records []Record, ls utc.LeapSecondsProvider) (*Provider, error) {
	if ls == nil {
		ls = utc.Builtin()
	}
	var ut1X, ut1Y, poleX, xp, yp, dX, dx, dy []float64
	for _, r := range records {
		t := secondsSinceJ2000(r.MJD)
		if !math.IsNaN(r.UT1MinusUTC) {
			taiMinusUTC, err := leapSeconds(r.MJD, ls)
			if err != nil {
				return nil, err
			}
			ut1X = append(ut1X, t)
			ut1Y = append(ut1Y, r.UT1MinusUTC-taiMinusUTC)
		}
		poleX = append(poleX, t)
		xp = append(xp, r.XP)
		yp = append(yp, r.YP)
		if !math.IsNaN(r.DX) && !math.IsNaN(r.DY) {
			dX = append(dX, t)
			dx = append(dx, r.DX)
			dy = append(dy, r.DY)
		}
	}

	p := &Provider{}
	var err error
	if p.deltaUT1TAI, err = newSeries(ut1X, ut1Y); err != nil {
		return nil, fmt.Errorf("UT1-UTC: %w", err)
	}
	if p.xp, err = newSeries(poleX, xp); err != nil {
		return nil, fmt.Errorf("x_pole: %w", err)
	}
	if p.yp, err = newSeries(poleX, yp); err != nil {
		return nil, fmt.Errorf("y_pole: %w", err)
	}
	if len(dX) > 0 {
		if p.dx, err = newSeries(dX, dx); err != nil {
			return nil, fmt.Errorf("dX: %w", err)
		}
		if p.dy, err = newSeries(dX, dy); err != nil {
			return nil, fmt.Errorf("dY: %w", err)
		}
	}
	return p, nil
}

// leapSeconds returns TAI-UTC in seconds at 0h UTC of the given date.
func leapSeconds(mjd float64, ls utc.LeapSecondsProvider) (float64, error) {
	date := calendar.DateFromSecondsSinceJ2000(int64(secondsSinceJ2000(math.Floor(mjd))))
	u, err := utc.New(date, calendar.TimeOfDay{}, ls)
	if err != nil {
		return 0, fmt.Errorf("EOP row MJD %v: %w", mjd, err)
	}
	d, ok := ls.DeltaUTCTAI(u)
	if !ok {
		return 0, fmt.Errorf("EOP row MJD %v: %w", mjd, utc.ErrUndefined)
	}
	return -d.ToDecimalSeconds(), nil
}

// Range returns the dates covered by the UT1 series.
func (p *Provider) Range() MJDRange {
	toMJD := func(s float64) float64 {
		return (s + float64(deltas.SecondsBetweenMJDAndJ2000)) / deltas.SecondsPerDay
	}
	return MJDRange{First: toMJD(p.deltaUT1TAI.first()), Last: toMJD(p.deltaUT1TAI.last())}
}

func (p *Provider) extrapolated(requested timescale.Time, v float64) *timescale.ExtrapolatedError {
	return &timescale.ExtrapolatedError{
		Requested: requested,
		First:     timescale.FromDelta(timescale.TAI, deltas.Float(p.deltaUT1TAI.first())),
		Last:      timescale.FromDelta(timescale.TAI, deltas.Float(p.deltaUT1TAI.last())),
		Value:     deltas.Float(v),
	}
}

func (p *Provider) DeltaUT1TAI(tai timescale.Time) (deltas.TimeDelta, error) {
	v, ok := p.deltaUT1TAI.at(tai.SecondsSinceJ2000())
	if !ok {
		return deltas.Float(v), p.extrapolated(tai, v)
	}
	return deltas.Float(v), nil
}

// DeltaTAIUT1 inverts the tabulated UT1-TAI by fixed-point iteration, since
// the table is indexed by TAI.
func (p *Provider) DeltaTAIUT1(ut1 timescale.Time) (deltas.TimeDelta, error) {
	s := ut1.SecondsSinceJ2000()
	v, _ := p.deltaUT1TAI.at(s)
	for i := 0; i < 2; i++ {
		v, _ = p.deltaUT1TAI.at(s - v)
	}
	if !p.deltaUT1TAI.contains(s - v) {
		return deltas.Float(-v), p.extrapolated(ut1, -v)
	}
	return deltas.Float(-v), nil
}

// PolarMotion returns the interpolated pole coordinates.
func (p *Provider) PolarMotion(tt timescale.Time) (iers.Pole, error) {
	s := tt.SecondsSinceJ2000()
	x, okx := p.xp.at(s)
	y, _ := p.yp.at(s)
	pole := iers.Pole{XP: units.Arcseconds(x), YP: units.Arcseconds(y)}
	if !okx {
		return pole, fmt.Errorf("%w: polar motion at %v", frames.ErrExtrapolated, tt.Date())
	}
	return pole, nil
}

// CIPCorrections returns the interpolated celestial pole offsets, or zero if
// the dataset has none.
func (p *Provider) CIPCorrections(tt timescale.Time) (iers.CIP, error) {
	if p.dx == nil {
		return iers.CIP{}, nil
	}
	s := tt.SecondsSinceJ2000()
	x, okx := p.dx.at(s)
	y, _ := p.dy.at(s)
	cip := iers.CIP{X: units.Milliarcseconds(x).Rad(), Y: units.Milliarcseconds(y).Rad()}
	if !okx {
		return cip, fmt.Errorf("%w: celestial pole offsets at %v", frames.ErrExtrapolated, tt.Date())
	}
	return cip, nil
}
