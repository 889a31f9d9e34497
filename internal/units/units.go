// Package units provides typed scalars for the physical quantities used across
// the time and frame packages. Each type stores a single float64 in SI base
// units (radians, meters, meters per second, hertz, decibels).
package units

import (
	"fmt"
	"math"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

const (
	// DegreesInCircle is the number of degrees in a full turn.
	DegreesInCircle = 360.0
	// ArcsecondsInCircle is the number of arcseconds in a full turn.
	ArcsecondsInCircle = DegreesInCircle * 60 * 60
	// RadiansInArcsecond converts arcseconds to radians.
	RadiansInArcsecond = 2 * math.Pi / ArcsecondsInCircle

	// AstronomicalUnit in meters.
	AstronomicalUnit = 1.495978707e11
	// SpeedOfLight in vacuum in m/s.
	SpeedOfLight = 299792458.0
)

// Angle is an angle in radians.
type Angle float64

// Common angles.
const (
	Zero    Angle = 0
	Pi      Angle = math.Pi
	Tau     Angle = 2 * math.Pi
	HalfPi  Angle = math.Pi / 2
	Quarter Angle = math.Pi / 4
)

// Radians returns an angle of rad radians.
func Radians(rad float64) Angle { return Angle(rad) }

// Degrees returns an angle of deg degrees.
func Degrees(deg float64) Angle { return Angle(deg * math.Pi / 180) }

// Arcseconds returns an angle of asec arcseconds.
func Arcseconds(asec float64) Angle { return Angle(asec * RadiansInArcsecond) }

// Milliarcseconds returns an angle of mas milliarcseconds.
func Milliarcseconds(mas float64) Angle { return Arcseconds(mas * 1e-3) }

// Microarcseconds returns an angle of uas microarcseconds.
func Microarcseconds(uas float64) Angle { return Arcseconds(uas * 1e-6) }

// ArcsecondsNormalized reduces asec modulo a full circle before conversion and
// returns the result in [0, 2π).
func ArcsecondsNormalized(asec float64) Angle {
	return ArcsecondsNormalizedSigned(asec).ModTwoPi()
}

// ArcsecondsNormalizedSigned reduces asec modulo a full circle before
// conversion, keeping the sign. The result lies in (-2π, 2π).
func ArcsecondsNormalizedSigned(asec float64) Angle {
	return Angle(math.Mod(asec, ArcsecondsInCircle) * RadiansInArcsecond)
}

// RadiansNormalizedSigned returns rad modulo 2π keeping the sign.
func RadiansNormalizedSigned(rad float64) Angle {
	return Angle(rad).ModTwoPiSigned()
}

// FromHMS converts an hour angle given as hours, minutes and seconds.
func FromHMS(hours int, minutes int, seconds float64) Angle {
	return Degrees(15 * (float64(hours) + float64(minutes)/60 + seconds/3600))
}

// FromUnit converts a soniakeys/unit angle.
func FromUnit(a unit.Angle) Angle { return Angle(a.Rad()) }

// Rad returns the angle in radians.
func (a Angle) Rad() float64 { return float64(a) }

// Deg returns the angle in degrees.
func (a Angle) Deg() float64 { return float64(a) * 180 / math.Pi }

// Arcsec returns the angle in arcseconds.
func (a Angle) Arcsec() float64 { return float64(a) / RadiansInArcsecond }

func (a Angle) Sin() float64 { return math.Sin(float64(a)) }
func (a Angle) Cos() float64 { return math.Cos(float64(a)) }
func (a Angle) Tan() float64 { return math.Tan(float64(a)) }

// SinCos returns the sine and cosine of the angle.
func (a Angle) SinCos() (float64, float64) { return math.Sincos(float64(a)) }

func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

// ModTwoPi normalizes the angle to [0, 2π).
func (a Angle) ModTwoPi() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// ModTwoPiSigned normalizes the angle to (-2π, 2π) keeping the sign.
func (a Angle) ModTwoPiSigned() Angle {
	return Angle(math.Mod(float64(a), 2*math.Pi))
}

// NormalizeTwoPi normalizes the angle to the interval [center-π, center+π).
func (a Angle) NormalizeTwoPi(center Angle) Angle {
	x := float64(a)
	return Angle(x - 2*math.Pi*math.Floor((x+math.Pi-float64(center))/(2*math.Pi)))
}

// Unit returns the angle as a soniakeys/unit angle.
func (a Angle) Unit() unit.Angle { return unit.Angle(a) }

// String formats the angle in sexagesimal degrees.
func (a Angle) String() string {
	return fmt.Sprint(sexa.FmtAngle(unit.Angle(a)))
}

// FormatRA formats a right ascension in sexagesimal hours.
func FormatRA(a Angle) string {
	return fmt.Sprint(sexa.FmtRA(unit.RA(a.ModTwoPi())))
}

// Distance is a length in meters.
type Distance float64

func Meters(m float64) Distance { return Distance(m) }
func Kilometers(km float64) Distance { return Distance(km * 1e3) }
func AstronomicalUnits(au float64) Distance { return Distance(au * AstronomicalUnit) }

func (d Distance) M() float64 { return float64(d) }
func (d Distance) Km() float64 { return float64(d) * 1e-3 }
func (d Distance) AU() float64 { return float64(d) / AstronomicalUnit }

func (d Distance) String() string { return fmt.Sprintf("%g km", d.Km()) }

// Velocity is a speed in meters per second.
type Velocity float64

func MetersPerSecond(v float64) Velocity { return Velocity(v) }
func KilometersPerSecond(v float64) Velocity { return Velocity(v * 1e3) }

func (v Velocity) MPS() float64 { return float64(v) }
func (v Velocity) KPS() float64 { return float64(v) * 1e-3 }

func (v Velocity) String() string { return fmt.Sprintf("%g km/s", v.KPS()) }

// Frequency in hertz.
type Frequency float64

func Hertz(f float64) Frequency { return Frequency(f) }
func Kilohertz(f float64) Frequency { return Frequency(f * 1e3) }
func Megahertz(f float64) Frequency { return Frequency(f * 1e6) }
func Gigahertz(f float64) Frequency { return Frequency(f * 1e9) }
func Terahertz(f float64) Frequency { return Frequency(f * 1e12) }

func (f Frequency) Hz() float64 { return float64(f) }
func (f Frequency) KHz() float64 { return float64(f) * 1e-3 }
func (f Frequency) MHz() float64 { return float64(f) * 1e-6 }
func (f Frequency) GHz() float64 { return float64(f) * 1e-9 }
func (f Frequency) THz() float64 { return float64(f) * 1e-12 }

// Wavelength returns the free-space wavelength.
func (f Frequency) Wavelength() Distance { return Distance(SpeedOfLight / float64(f)) }

func (f Frequency) String() string { return fmt.Sprintf("%g GHz", f.GHz()) }

// Band is an IEEE letter-code frequency band.
type Band string

const (
	BandHF  Band = "HF"
	BandVHF Band = "VHF"
	BandUHF Band = "UHF"
	BandL   Band = "L"
	BandS   Band = "S"
	BandC   Band = "C"
	BandX   Band = "X"
	BandKu  Band = "Ku"
	BandK   Band = "K"
	BandKa  Band = "Ka"
	BandV   Band = "V"
	BandW   Band = "W"
	BandG   Band = "G"
)

var bandEdges = []struct {
	upper float64
	band  Band
}{
	{30e6, BandHF},
	{300e6, BandVHF},
	{1e9, BandUHF},
	{2e9, BandL},
	{4e9, BandS},
	{8e9, BandC},
	{12e9, BandX},
	{18e9, BandKu},
	{27e9, BandK},
	{40e9, BandKa},
	{75e9, BandV},
	{110e9, BandW},
	{300e9, BandG},
}

// Band returns the IEEE band containing f. ok is false below 3 MHz and at or
// above 300 GHz.
func (f Frequency) Band() (b Band, ok bool) {
	if f < 3e6 {
		return "", false
	}
	for _, e := range bandEdges {
		if float64(f) < e.upper {
			return e.band, true
		}
	}
	return "", false
}

// Decibel is a logarithmic power ratio.
type Decibel float64

// DecibelFromLinear converts a linear power ratio.
func DecibelFromLinear(x float64) Decibel { return Decibel(10 * math.Log10(x)) }

// Linear returns the linear power ratio.
func (d Decibel) Linear() float64 { return math.Pow(10, float64(d)/10) }

func (d Decibel) String() string { return fmt.Sprintf("%g dB", float64(d)) }
