package units

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestAngleConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Angle
		want float64
	}{
		{"degrees", Degrees(90), math.Pi / 2},
		{"radians", Radians(math.Pi), math.Pi},
		{"arcseconds", Arcseconds(ArcsecondsInCircle), 2 * math.Pi},
		{"milliarcseconds", Milliarcseconds(1000), RadiansInArcsecond},
		{"microarcseconds", Microarcseconds(1e6), RadiansInArcsecond},
		{"hms", FromHMS(6, 0, 0), math.Pi / 2},
		{"soniakeys unit", FromUnit(unit.AngleFromDeg(180)), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := math.Abs(tt.got.Rad() - tt.want); diff > 1e-12 {
				t.Errorf("got %.15f rad, want %.15f rad", tt.got.Rad(), tt.want)
			}
		})
	}
}

func TestAngleNormalization(t *testing.T) {
	tests := []struct {
		name string
		got  Angle
		want float64
	}{
		{"mod two pi negative", Angle(-math.Pi / 2).ModTwoPi(), 3 * math.Pi / 2},
		{"mod two pi large", Angle(5 * math.Pi).ModTwoPi(), math.Pi},
		{"mod two pi signed", Angle(-5 * math.Pi / 2).ModTwoPiSigned(), -math.Pi / 2},
		{"normalize around zero", Angle(3 * math.Pi / 2).NormalizeTwoPi(Zero), -math.Pi / 2},
		{"normalize around pi", Angle(-math.Pi / 2).NormalizeTwoPi(Pi), 3 * math.Pi / 2},
		{"arcsec normalized signed", ArcsecondsNormalizedSigned(-ArcsecondsInCircle - 3600), -Degrees(1).Rad()},
		{"arcsec normalized", ArcsecondsNormalized(-3600), 2*math.Pi - Degrees(1).Rad()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := math.Abs(tt.got.Rad() - tt.want); diff > 1e-12 {
				t.Errorf("got %.15f rad, want %.15f rad", tt.got.Rad(), tt.want)
			}
		})
	}
}

func TestAngleFormatting(t *testing.T) {
	if s := Degrees(45.5).String(); s == "" {
		t.Error("empty sexagesimal angle")
	}
	if s := FormatRA(Degrees(-15)); s == "" {
		t.Error("empty sexagesimal right ascension")
	}
}

func TestDistanceAndVelocity(t *testing.T) {
	if got := Kilometers(1).M(); got != 1000 {
		t.Errorf("1 km = %v m, want 1000", got)
	}
	if got := AstronomicalUnits(1).M(); got != AstronomicalUnit {
		t.Errorf("1 AU = %v m, want %v", got, AstronomicalUnit)
	}
	if got := KilometersPerSecond(7.5).MPS(); got != 7500 {
		t.Errorf("7.5 km/s = %v m/s, want 7500", got)
	}
	if got := Kilometers(9).String(); got != "9 km" {
		t.Errorf("String() = %q, want %q", got, "9 km")
	}
}

func TestFrequencyBand(t *testing.T) {
	tests := []struct {
		f    Frequency
		want Band
		ok   bool
	}{
		{Megahertz(1), "", false},
		{Megahertz(10), BandHF, true},
		{Megahertz(145), BandVHF, true},
		{Megahertz(435), BandUHF, true},
		{Gigahertz(1.5), BandL, true},
		{Gigahertz(2.2), BandS, true},
		{Gigahertz(8.4), BandX, true},
		{Gigahertz(14), BandKu, true},
		{Gigahertz(32), BandKa, true},
		{Terahertz(1), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			got, ok := tt.f.Band()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Band() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFrequencyAccessors(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Hz", Megahertz(2245).Hz(), 2.245e9},
		{"kHz", Megahertz(2245).KHz(), 2.245e6},
		{"MHz", Megahertz(2245).MHz(), 2245},
		{"GHz", Megahertz(2245).GHz(), 2.245},
		{"THz", Megahertz(2245).THz(), 2.245e-3},
		{"kHz round trip", Kilohertz(1).KHz(), 1},
		{"THz round trip", Terahertz(1).THz(), 1},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-12*math.Abs(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestWavelength(t *testing.T) {
	got := Gigahertz(1).Wavelength().M()
	want := SpeedOfLight / 1e9
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("wavelength = %v m, want %v m", got, want)
	}
}

func TestDecibel(t *testing.T) {
	if got := DecibelFromLinear(100); math.Abs(float64(got)-20) > 1e-12 {
		t.Errorf("100x = %v, want 20 dB", got)
	}
	if got := Decibel(3).Linear(); math.Abs(got-1.9952623149688795) > 1e-12 {
		t.Errorf("3 dB = %v, want 1.995", got)
	}
}
