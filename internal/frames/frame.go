// Package frames identifies reference frames and computes the time-dependent
// rotations between them: the CIO-based chain ICRF → CIRF → TIRF → ITRF, the
// IAU body-fixed frames and the TEME frame of SGP4.
package frames

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox-space/lox-go/internal/bodies"
)

// ErrUnknownFrame is returned when a frame name cannot be resolved.
var ErrUnknownFrame = errors.New("unknown frame")

type kind uint8

const (
	icrf kind = iota
	cirf
	tirf
	itrf
	teme
	iau
)

// Frame is a reference frame. The zero value is the ICRF.
type Frame struct {
	kind kind
	body bodies.Body
}

var (
	ICRF = Frame{kind: icrf}
	CIRF = Frame{kind: cirf}
	TIRF = Frame{kind: tirf}
	ITRF = Frame{kind: itrf}
	TEME = Frame{kind: teme}
)

// IAU returns the IAU body-fixed frame of b. It fails for bodies without
// rotational elements.
func IAU(b bodies.Body) (Frame, error) {
	if !b.HasRotationalElements() {
		return Frame{}, fmt.Errorf("%w: no IAU frame for %s: %w", ErrUnknownFrame, b, bodies.ErrUndefinedRotationalElements)
	}
	return Frame{kind: iau, body: b}, nil
}

// MustIAU is IAU for bodies known to have rotational elements.
func MustIAU(b bodies.Body) Frame {
	f, err := IAU(b)
	if err != nil {
		panic(err)
	}
	return f
}

var fixedNames = map[string]Frame{
	"icrf": ICRF,
	"cirf": CIRF,
	"tirf": TIRF,
	"itrf": ITRF,
	"teme": TEME,
}

// Parse resolves a frame abbreviation such as "ICRF", "itrf" or
// "IAU_JUPITER".
func Parse(s string) (Frame, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if f, ok := fixedNames[key]; ok {
		return f, nil
	}
	prefix, origin, ok := strings.Cut(key, "_")
	if !ok || prefix != "iau" {
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownFrame, s)
	}
	b, err := bodies.Parse(origin)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownFrame, s)
	}
	f, err := IAU(b)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %q", ErrUnknownFrame, s)
	}
	return f, nil
}

// Body returns the origin of an IAU frame and false for other frames.
func (f Frame) Body() (bodies.Body, bool) {
	return f.body, f.kind == iau
}

func (f Frame) Name() string {
	switch f.kind {
	case icrf:
		return "International Celestial Reference Frame"
	case cirf:
		return "Celestial Intermediate Reference Frame"
	case tirf:
		return "Terrestrial Intermediate Reference Frame"
	case itrf:
		return "International Terrestrial Reference Frame"
	case teme:
		return "True Equator Mean Equinox"
	}
	name := f.body.Name()
	if f.body == bodies.Sun || f.body == bodies.Moon {
		return "IAU Body-Fixed Reference Frame for the " + name
	}
	return "IAU Body-Fixed Reference Frame for " + name
}

func (f Frame) Abbreviation() string {
	switch f.kind {
	case icrf:
		return "ICRF"
	case cirf:
		return "CIRF"
	case tirf:
		return "TIRF"
	case itrf:
		return "ITRF"
	case teme:
		return "TEME"
	}
	name := strings.NewReplacer(" ", "_", "-", "_").Replace(f.body.Name())
	return "IAU_" + strings.ToUpper(name)
}

func (f Frame) String() string { return f.Abbreviation() }

// IsRotating reports whether the frame rotates with respect to the ICRF.
func (f Frame) IsRotating() bool {
	switch f.kind {
	case tirf, itrf, iau:
		return true
	}
	return false
}

// IsQuasiInertial reports whether the frame may be used for integrating
// equations of motion without fictitious forces.
func (f Frame) IsQuasiInertial() bool { return f.kind == icrf }

// IsBodyFixed reports whether the frame is attached to a body's surface.
func (f Frame) IsBodyFixed() bool { return f.kind == iau || f.kind == itrf }

func (f Frame) MarshalText() ([]byte, error) { return []byte(f.Abbreviation()), nil }

func (f *Frame) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
