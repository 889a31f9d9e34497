package frames

import (
	"errors"
	"fmt"

	"github.com/lox-space/lox-go/internal/iers"
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/timescale"
)

// ErrEOPRequired is returned when a terrestrial frame is requested without
// an Earth orientation provider.
var ErrEOPRequired = errors.New("earth orientation parameters are required")

// ErrExtrapolated marks Earth orientation values that a Provider computed
// outside its tabulated range. Providers return the values together with an
// error wrapping it; Rotate uses them and passes the error on.
var ErrExtrapolated = errors.New("earth orientation parameters extrapolated")

// IsExtrapolation reports whether err is only an extrapolation warning, in
// which case the accompanying values are usable.
func IsExtrapolation(err error) bool {
	var ext *timescale.ExtrapolatedError
	return errors.As(err, &ext) || errors.Is(err, ErrExtrapolated)
}

// epoch evaluates the time arguments of the frame models once per Rotate
// call.
type epoch struct {
	t timescale.Time
	p Provider

	// warn keeps the first extrapolation error, which does not stop the
	// computation.
	warn error

	tt, tdb, ut1 *timescale.Time
}

func (e *epoch) convert(scale timescale.Scale, dst **timescale.Time) (timescale.Time, error) {
	if *dst != nil {
		return **dst, nil
	}
	var ut1 timescale.DeltaUT1Provider
	if e.p != nil {
		ut1 = e.p
	}
	out, err := e.t.To(scale, ut1)
	if err != nil {
		var ext *timescale.ExtrapolatedError
		if !errors.As(err, &ext) {
			if errors.Is(err, timescale.ErrMissingUT1Provider) {
				return timescale.Time{}, fmt.Errorf("%w: converting %v to %v", ErrEOPRequired, e.t.Scale(), scale)
			}
			return timescale.Time{}, err
		}
		e.warning(err)
	}
	*dst = &out
	return out, nil
}

func (e *epoch) ttCenturies() (float64, error) {
	tt, err := e.convert(timescale.TT, &e.tt)
	return tt.CenturiesSinceJ2000(), err
}

func (e *epoch) tdbSeconds() (float64, error) {
	tdb, err := e.convert(timescale.TDB, &e.tdb)
	return tdb.SecondsSinceJ2000(), err
}

func (e *epoch) ut1Days() (float64, error) {
	if e.p == nil {
		return 0, ErrEOPRequired
	}
	ut1, err := e.convert(timescale.UT1, &e.ut1)
	return ut1.DaysSinceJ2000(), err
}

func (e *epoch) pole() (iers.Pole, error) {
	if e.p == nil {
		return iers.Pole{}, ErrEOPRequired
	}
	tt, err := e.convert(timescale.TT, &e.tt)
	if err != nil {
		return iers.Pole{}, err
	}
	pole, err := e.p.PolarMotion(tt)
	if err != nil {
		if !errors.Is(err, ErrExtrapolated) {
			return iers.Pole{}, fmt.Errorf("polar motion: %w", err)
		}
		e.warning(err)
	}
	return pole, nil
}

func (e *epoch) corrections() (iers.CIP, error) {
	if e.p == nil {
		return iers.CIP{}, nil
	}
	tt, err := e.convert(timescale.TT, &e.tt)
	if err != nil {
		return iers.CIP{}, err
	}
	dxy, err := e.p.CIPCorrections(tt)
	if err != nil {
		if !errors.Is(err, ErrExtrapolated) {
			return iers.CIP{}, fmt.Errorf("celestial pole offsets: %w", err)
		}
		e.warning(err)
	}
	return dxy, nil
}

func (e *epoch) warning(err error) {
	if e.warn == nil {
		e.warn = err
	}
}

// Rotate returns the rotation that maps states in from to states in to at
// time t. p may be nil when neither frame is terrestrial; without it the
// celestial pole offsets are taken as zero.
//
// If UT1 or the pole was extrapolated the rotation is still returned together
// with the *timescale.ExtrapolatedError or an error wrapping ErrExtrapolated.
func Rotate(from, to Frame, t timescale.Time, p Provider) (rotation.Rotation, error) {
	if from == to {
		return rotation.IdentityRotation(), nil
	}
	e := &epoch{t: t, p: p}
	r, err := e.rotate(from, to)
	if err != nil {
		return rotation.Rotation{}, fmt.Errorf("rotating %v to %v: %w", from, to, err)
	}
	return r, e.warn
}

// chainLevel orders the frames of the CIO-based Earth rotation chain.
func chainLevel(f Frame) (int, bool) {
	switch f.kind {
	case icrf:
		return 0, true
	case cirf:
		return 1, true
	case tirf:
		return 2, true
	case itrf:
		return 3, true
	}
	return 0, false
}

func (e *epoch) rotate(from, to Frame) (rotation.Rotation, error) {
	lf, okf := chainLevel(from)
	lt, okt := chainLevel(to)
	switch {
	case okf && okt:
		if lf < lt {
			return e.chain(lf, lt)
		}
		r, err := e.chain(lt, lf)
		return r.Transpose(), err
	case from.kind == teme && to.kind == itrf:
		return e.temeToITRF()
	case from.kind == itrf && to.kind == teme:
		r, err := e.temeToITRF()
		return r.Transpose(), err
	}

	out, err := e.fromICRF(from)
	if err != nil {
		return rotation.Rotation{}, err
	}
	in, err := e.fromICRF(to)
	if err != nil {
		return rotation.Rotation{}, err
	}
	return out.Transpose().Compose(in), nil
}

// chain composes the steps of the Earth rotation chain from level lo up to
// level hi.
func (e *epoch) chain(lo, hi int) (rotation.Rotation, error) {
	r := rotation.IdentityRotation()
	for level := lo; level < hi; level++ {
		step, err := e.step(level)
		if err != nil {
			return rotation.Rotation{}, err
		}
		r = r.Compose(step)
	}
	return r, nil
}

func (e *epoch) step(level int) (rotation.Rotation, error) {
	switch level {
	case 0:
		tt, err := e.ttCenturies()
		if err != nil {
			return rotation.Rotation{}, err
		}
		dxy, err := e.corrections()
		if err != nil {
			return rotation.Rotation{}, err
		}
		return ICRFToCIRF(tt, dxy), nil
	case 1:
		d, err := e.ut1Days()
		if err != nil {
			return rotation.Rotation{}, err
		}
		return CIRFToTIRF(d), nil
	default:
		tt, err := e.ttCenturies()
		if err != nil {
			return rotation.Rotation{}, err
		}
		pole, err := e.pole()
		if err != nil {
			return rotation.Rotation{}, err
		}
		return TIRFToITRF(tt, pole), nil
	}
}

func (e *epoch) temeToITRF() (rotation.Rotation, error) {
	d, err := e.ut1Days()
	if err != nil {
		return rotation.Rotation{}, err
	}
	pole, err := e.pole()
	if err != nil {
		return rotation.Rotation{}, err
	}
	return TEMEToITRF(d, pole), nil
}

// fromICRF returns the rotation from the ICRF into f.
func (e *epoch) fromICRF(f Frame) (rotation.Rotation, error) {
	switch f.kind {
	case iau:
		t, err := e.tdbSeconds()
		if err != nil {
			return rotation.Rotation{}, err
		}
		return ICRFToIAU(f.body, t)
	case teme:
		t, err := e.ttCenturies()
		if err != nil {
			return rotation.Rotation{}, err
		}
		return ICRFToTEME(t), nil
	}
	level, _ := chainLevel(f)
	return e.chain(0, level)
}
