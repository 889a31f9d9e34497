package timescale

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vektra/tai64n"

	"github.com/lox-space/lox-go/internal/calendar"
	"github.com/lox-space/lox-go/internal/deltas"
)

type constantUT1 struct {
	offset deltas.TimeDelta
	err    error
}

func (c constantUT1) DeltaUT1TAI(Time) (deltas.TimeDelta, error) { return c.offset, c.err }
func (c constantUT1) DeltaTAIUT1(Time) (deltas.TimeDelta, error) { return c.offset.Neg(), c.err }

func isClose(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= math.Max(rtol*math.Max(math.Abs(a), math.Abs(b)), atol)
}

func mustParse(t *testing.T, scale Scale, iso string) Time {
	t.Helper()
	tm, err := Parse(scale, iso)
	if err != nil {
		t.Fatalf("Parse(%v, %q): %v", scale, iso, err)
	}
	return tm
}

func TestParseScale(t *testing.T) {
	for _, s := range Scales {
		got, err := ParseScale(s.String())
		if err != nil || got != s {
			t.Errorf("ParseScale(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, _ := ParseScale("tdb"); got != TDB {
		t.Errorf("lower case lookup = %v", got)
	}
	if _, err := ParseScale("UTC"); !errors.Is(err, ErrUnknownScale) {
		t.Errorf("UTC is not a continuous scale, err = %v", err)
	}
}

func TestOffsetsAgainstOrekit(t *testing.T) {
	const (
		defaultTol = 1e-7
		tcbTol     = 1e-4
	)
	tests := []struct {
		from, to Scale
		want     float64
		tol      float64
	}{
		{TAI, TAI, 0, defaultTol},
		{TAI, TCB, 55.66851419888016, tcbTol},
		{TAI, TCG, 33.239589335894145, defaultTol},
		{TAI, TDB, 32.183882324981056, defaultTol},
		{TAI, TT, 32.184, defaultTol},
		{TCB, TAI, -55.668513317090046, tcbTol},
		{TCB, TCG, -22.4289240199929, tcbTol},
		{TCB, TDB, -23.484631010747805, tcbTol},
		{TCB, TT, -23.484513317090048, tcbTol},
		{TCG, TAI, -33.23958931272851, defaultTol},
		{TCG, TCB, 22.428924359636042, tcbTol},
		{TCG, TDB, -1.0557069988766656, defaultTol},
		{TCG, TT, -1.0555893127285145, defaultTol},
		{TDB, TAI, -32.18388231420531, defaultTol},
		{TDB, TCB, 23.48463137488165, tcbTol},
		{TDB, TCG, 1.0557069992589518, defaultTol},
		{TDB, TT, 1.176857946845189e-4, defaultTol},
		{TT, TAI, -32.184, defaultTol},
		{TT, TCB, 23.484513689085105, tcbTol},
		{TT, TCG, 1.055589313464182, defaultTol},
		{TT, TDB, -1.1768579472004603e-4, defaultTol},
	}

	date, _ := calendar.NewDate(2024, 12, 30)
	tod, _ := calendar.TimeOfDayFromHMS(10, 27, 13.145)
	for _, tt := range tests {
		t.Run(tt.from.String()+"_"+tt.to.String(), func(t *testing.T) {
			tm, err := FromDateTime(tt.from, date, tod)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Offset(tt.from, tt.to, tm.Delta(), nil)
			if err != nil {
				t.Fatal(err)
			}
			if !isClose(got.ToDecimalSeconds(), tt.want, 1e-7, tt.tol) {
				t.Errorf("offset = %v, want %v", got.ToDecimalSeconds(), tt.want)
			}
		})
	}
}

func TestRoundTrips(t *testing.T) {
	times := []Time{
		J2000(TT),
		mustParse(t, TT, "1977-01-01T00:00:32.184"),
		mustParse(t, TT, "2024-12-30T10:27:13.145"),
		mustParse(t, TT, "2250-06-15T03:00:00.5"),
		mustParse(t, TT, "1800-01-01T00:00:00"),
	}
	for _, tm := range times {
		for _, via := range []Scale{TAI, TCG, TDB, TCB} {
			back := tm.MustTo(via).MustTo(TT)
			if d := math.Abs(back.Since(tm).ToDecimalSeconds()); d > 1e-9 {
				t.Errorf("%v via %v drifted by %v s", tm, via, d)
			}
		}
		for _, b := range Scales[:5] {
			for _, c := range Scales[:5] {
				direct := tm.MustTo(c)
				chained := tm.MustTo(b).MustTo(c)
				if d := math.Abs(chained.Since(direct).ToDecimalSeconds()); d > 1e-9 {
					t.Errorf("%v: via %v to %v differs from direct by %v s", tm, b, c, d)
				}
			}
		}
	}
}

func TestTAITTIsExact(t *testing.T) {
	tai := mustParse(t, TAI, "2000-01-01T11:59:27.816")
	if got := tai.ToTT(); !got.Equal(J2000(TT)) {
		t.Errorf("TAI 11:59:27.816 -> %v, want J2000 TT", got)
	}
	if got := J2000(TT).ToTAI(); !got.Equal(tai) {
		t.Errorf("J2000 TT -> %v, want %v", got, tai)
	}
}

func TestPath(t *testing.T) {
	got, err := Path(TCB, UT1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []Scale{TCB, TDB, TT, TAI, UT1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Path(TCB, UT1) = %v, want %v", got, want)
	}
	if got, _ := Path(TT, TT); len(got) != 1 {
		t.Errorf("Path(TT, TT) = %v", got)
	}
}

func TestUT1(t *testing.T) {
	p := constantUT1{offset: deltas.Float(-36.949521832072996)}
	tai := mustParse(t, TAI, "2024-12-30T10:27:13.145")

	ut1, err := tai.To(UT1, p)
	if err != nil {
		t.Fatal(err)
	}
	if got := ut1.Delta().Sub(tai.Delta()).ToDecimalSeconds(); math.Abs(got+36.949521832072996) > 1e-12 {
		t.Errorf("UT1 - TAI = %v", got)
	}
	back, err := ut1.To(TAI, p)
	if err != nil || !back.Equal(tai) {
		t.Errorf("UT1 round trip = %v, %v", back, err)
	}

	if _, err := tai.To(UT1, nil); !errors.Is(err, ErrMissingUT1Provider) {
		t.Errorf("missing provider err = %v", err)
	}
	if _, err := J2000(TDB).To(UT1, nil); !errors.Is(err, ErrMissingUT1Provider) {
		t.Errorf("missing provider on chained path err = %v", err)
	}
}

func TestUT1Extrapolated(t *testing.T) {
	ext := &ExtrapolatedError{Value: deltas.FromSeconds(-40)}
	p := constantUT1{offset: deltas.FromSeconds(-40), err: ext}
	tai := J2000(TAI)

	ut1, err := tai.To(UT1, p)
	var got *ExtrapolatedError
	if !errors.As(err, &got) {
		t.Fatalf("err = %v, want ExtrapolatedError", err)
	}
	if want := tai.Delta().Add(deltas.FromSeconds(-40)); !ut1.Delta().Equal(want) {
		t.Errorf("extrapolated result = %v", ut1)
	}

	hard := constantUT1{offset: deltas.NaN, err: errors.New("boom")}
	if _, err := tai.To(UT1, hard); err == nil || errors.As(err, &got) {
		t.Errorf("provider failure err = %v", err)
	}
}

func TestJulianDates(t *testing.T) {
	tt := J2000(TT)
	if jd := tt.JulianDate(deltas.JulianEpoch, deltas.Days); jd != 2451545.0 {
		t.Errorf("J2000 TT JD = %v", jd)
	}
	if c := tt.CenturiesSinceJ2000(); c != 0 {
		t.Errorf("J2000 TT centuries = %v", c)
	}
	if mjd := tt.JulianDate(deltas.ModifiedJulianEpoch, deltas.Days); mjd != 51544.5 {
		t.Errorf("J2000 TT MJD = %v", mjd)
	}

	fromJD, err := FromJulianDate(TT, 2451545.0, deltas.JulianEpoch)
	if err != nil || !fromJD.Equal(tt) {
		t.Errorf("FromJulianDate = %v, %v", fromJD, err)
	}
	fromMJD, err := FromJulianDate(TT, 51545.0, deltas.ModifiedJulianEpoch)
	if err != nil || fromMJD.Seconds() != 43200 {
		t.Errorf("FromJulianDate(MJD 51545) = %v, %v", fromMJD, err)
	}
	twoPart, err := FromTwoPartJulianDate(TT, 2451545.0, 0.25)
	if err != nil || twoPart.Seconds() != 21600 {
		t.Errorf("FromTwoPartJulianDate = %v, %v", twoPart, err)
	}
	jd1, jd2 := twoPart.TwoPartJulianDate()
	if jd1 != 2451545 || jd2 != 0.25 {
		t.Errorf("TwoPartJulianDate = %v, %v", jd1, jd2)
	}
}

func TestFormatAndParse(t *testing.T) {
	tests := []struct {
		scale Scale
		in    string
		want  string
	}{
		{TT, "2000-01-01T12:00:00", "2000-01-01T12:00:00.000 TT"},
		{TDB, "2024-12-30T10:27:13.145 TDB", "2024-12-30T10:27:13.145 TDB"},
		{TAI, "1999-12-31T23:59:59.999", "1999-12-31T23:59:59.999 TAI"},
		{TCB, "1958-01-01", "1958-01-01T00:00:00.000 TCB"},
		{TAI, "2016-12-31T23:59:59Z", "2016-12-31T23:59:59.000 TAI"},
	}
	for _, tt := range tests {
		got := mustParse(t, tt.scale, tt.in)
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got.String(), tt.want)
		}
		again, err := ParseWithScale(got.String())
		if err != nil || !again.Equal(got) {
			t.Errorf("ParseWithScale(%q) = %v, %v", got.String(), again, err)
		}
	}

	if got := mustParse(t, TT, "2000-01-01T12:00:00"); !got.Equal(J2000(TT)) {
		t.Errorf("noon 2000-01-01 is %v, want J2000", got.Delta())
	}
	if _, err := Parse(TAI, "2016-12-31T23:59:60"); !errors.Is(err, ErrLeapSecondOutsideUTC) {
		t.Errorf("leap second on TAI err = %v", err)
	}
	if _, err := Parse(TAI, "2000-01-01T00:00:00 TT"); !errors.Is(err, ErrUnknownScale) {
		t.Errorf("mismatched suffix err = %v", err)
	}
	if _, err := ParseWithScale("2000-01-01T00:00:00"); !errors.Is(err, ErrUnknownScale) {
		t.Errorf("missing suffix err = %v", err)
	}
}

func TestSeries(t *testing.T) {
	start := J2000(TAI)
	tests := []struct {
		name  string
		end   int64
		step  int64
		count int
	}{
		{"aligned", 10, 2, 6},
		{"unaligned", 10, 3, 4},
		{"single", 0, 1, 1},
		{"backwards", -10, -5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Series(start, start.Add(deltas.FromSeconds(tt.end)), deltas.FromSeconds(tt.step))
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.count {
				t.Fatalf("len = %d, want %d", len(got), tt.count)
			}
			if !got[0].Equal(start) {
				t.Errorf("first = %v", got[0])
			}
		})
	}

	if _, err := Series(start, start.Add(deltas.FromSeconds(10)), deltas.FromSeconds(-1)); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("wrong-direction step err = %v", err)
	}
	if _, err := Series(start, start, deltas.TimeDelta{}); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("zero step err = %v", err)
	}
	if _, err := Series(start, J2000(TT), deltas.FromSeconds(1)); !errors.Is(err, ErrScaleMismatch) {
		t.Errorf("mixed scales err = %v", err)
	}
}

func TestInterval(t *testing.T) {
	at := func(s int64) Time { return New(TAI, s, 0) }
	a := Interval{Start: at(0), End: at(10)}
	b := Interval{Start: at(5), End: at(20)}
	c := Interval{Start: at(11), End: at(12)}

	if a.Duration().Seconds() != 10 {
		t.Errorf("duration = %v", a.Duration())
	}
	if !a.Contains(at(10)) || a.Contains(at(11)) {
		t.Error("Contains is not closed on [0, 10]")
	}
	if got := a.Intersect(b); !got.Start.Equal(at(5)) || !got.End.Equal(at(10)) {
		t.Errorf("intersection = %v..%v", got.Start, got.End)
	}
	if !a.Overlaps(b) || a.Overlaps(c) {
		t.Error("Overlaps is wrong")
	}
	tt, err := a.To(TT, nil)
	if err != nil || tt.Duration().Seconds() != 10 {
		t.Errorf("interval in TT = %v, %v", tt, err)
	}
}

func TestTAI64N(t *testing.T) {
	label, err := J2000(TAI).ToTAI64N()
	if err != nil {
		t.Fatal(err)
	}
	if label.Seconds != 1<<62+946728000 || label.Nanoseconds != 0 {
		t.Errorf("J2000 label = %+v", label)
	}
	if got := TAI64NLabel(label); got != "@40000000386dec4000000000" {
		t.Errorf("label string = %q", got)
	}

	tm := mustParse(t, TT, "2024-12-30T10:27:13.145")
	label, err = tm.ToTAI64N()
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromTAI64N(label)
	if err != nil {
		t.Fatal(err)
	}
	if d := back.Since(tm.ToTAI()).ToDecimalSeconds(); math.Abs(d) > 1e-9 {
		t.Errorf("TAI64N round trip off by %v s", d)
	}

	// Labels before 1970 sit below 2^62.
	early := mustParse(t, TAI, "1958-01-01T00:00:00.25")
	label, err = early.ToTAI64N()
	if err != nil {
		t.Fatal(err)
	}
	if got := TAI64NLabel(label); got != "@3fffffffe96da1800ee6b280" {
		t.Errorf("1958 label = %q", got)
	}
	back, err = FromTAI64N(label)
	if err != nil || back.Seconds() != early.Seconds() || back.Subsecond() != early.Subsecond() {
		t.Errorf("1958 round trip = %v, %v", back, err)
	}

	if _, err := FromTAI64N(tai64n.TAI64N{Seconds: 1 << 63}); !errors.Is(err, ErrTAI64NRange) {
		t.Errorf("label beyond 2^63 err = %v", err)
	}

	if _, err := J2000(UT1).ToTAI64N(); !errors.Is(err, ErrMissingUT1Provider) {
		t.Errorf("UT1 label err = %v", err)
	}
}
