// Command diag cross-checks time, Earth rotation and propagation values
// against Meeus and go-satellite and prints pass predictions for a sample of a TLE catalogue.
//
// Usage: diag [catalogue.tle]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/joshuaferrara/go-satellite"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/iers"
	"github.com/lox-space/lox-go/internal/passes"
	"github.com/lox-space/lox-go/internal/propagation"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/tle"
	"github.com/lox-space/lox-go/internal/transform"
	"github.com/lox-space/lox-go/internal/units"
	"github.com/lox-space/lox-go/internal/utc"
)

const sampleCatalogue = `ISS (ZARYA)
1 25544U 98067A   25045.18032407  .00016717  00000+0  30099-3 0  9993
2 25544  51.6412 193.5765 0003457 126.2851 233.8519 15.49874301495058
`

type zeroSource struct{}

func (zeroSource) Current() frames.Provider { return frames.ZeroEOP{} }

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	entries, err := loadCatalogue(os.Args[1:], logger)
	if err != nil {
		fmt.Println("ERROR reading TLE catalogue:", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d TLE entries\n", len(entries))
	fmt.Printf("First entry: %s (NORAD %d) epoch %s\n", entries[0].Name, entries[0].NORADID, entries[0].Epoch)

	if err := crossCheck(entries[0]); err != nil {
		fmt.Println("ERROR cross-checking against go-satellite:", err)
		os.Exit(1)
	}

	subset := entries[:min(5, len(entries))]
	// Denver, starting at the first epoch so the sample TLE stays fresh.
	obs := transform.NewObserver(transform.Geodetic{
		Latitude:  units.Degrees(39.7392),
		Longitude: units.Degrees(-104.9903),
		Altitude:  units.Meters(1609),
	})
	start := entries[0].Epoch
	fmt.Printf("Prediction start: %s\n", start)

	predictor := passes.NewPredictor(zeroSource{}, nil, 4, logger)
	res, err := predictor.Predict(context.Background(), passes.Request{
		Observer:     obs,
		Entries:      subset,
		Start:        start,
		Horizon:      72 * time.Hour,
		MinElevation: units.Degrees(1),
		MaxPasses:    10,
	})
	if err != nil {
		fmt.Println("ERROR predicting passes:", err)
		os.Exit(1)
	}

	totalPasses := 0
	for _, sat := range res.Satellites {
		if sat.Err != nil {
			fmt.Printf("  NORAD %d: ERROR %v\n", sat.NORADID, sat.Err)
			continue
		}
		fmt.Printf("  NORAD %d: %d passes\n", sat.NORADID, len(sat.Passes))
		totalPasses += len(sat.Passes)
		for j, p := range sat.Passes {
			fmt.Printf("    pass %d: rise=%s maxEl=%.1f° dur=%.0fs\n",
				j, p.Rise, p.MaxElevation.Deg(), p.Duration.Seconds())
		}
	}
	fmt.Printf("Total passes: %d\n", totalPasses)
}

func loadCatalogue(args []string, logger *slog.Logger) ([]tle.TLEEntry, error) {
	if len(args) == 0 {
		return tle.Parse(strings.NewReader(sampleCatalogue), logger)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := tle.Parse(f, logger)
	if err == nil && len(entries) == 0 {
		err = fmt.Errorf("%s holds no TLE entries", args[0])
	}
	return entries, err
}

// crossCheck propagates e at its epoch, rotates the state to ITRF without
// polar motion and compares it with go-satellite's GMST rotation.
func crossCheck(e tle.TLEEntry) error {
	prop, err := propagation.NewSGP4Propagator(e.Line1, e.Line2, e.NORADID)
	if err != nil {
		return err
	}
	// SGP4 runs on whole seconds.
	at := utc.FromGoTime(e.Epoch.GoTime().Truncate(time.Second))
	pos, vel, err := prop.Propagate(at)
	if err != nil {
		return err
	}
	tai, err := at.ToTAI(nil)
	if err != nil {
		return err
	}
	rot, err := frames.Rotate(frames.TEME, frames.ITRF, tai, frames.ZeroEOP{})
	if err != nil && !frames.IsExtrapolation(err) {
		return err
	}
	itrf, _ := rot.ApplyState(pos, vel)
	compareMeeus(at, tai)

	g := at.GoTime()
	gmst := satellite.GSTimeFromDate(g.Year(), int(g.Month()), g.Day(), g.Hour(), g.Minute(), g.Second())
	ref := satellite.ECIToECEF(satellite.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}, gmst)

	diff := math.Sqrt(sq(itrf.X-ref.X) + sq(itrf.Y-ref.Y) + sq(itrf.Z-ref.Z))
	geo := transform.ToGeodetic(itrf)
	fmt.Printf("ITRF at %s: [%.3f %.3f %.3f] km\n", at, itrf.X, itrf.Y, itrf.Z)
	fmt.Printf("go-satellite:  [%.3f %.3f %.3f] km, difference %.3f m\n", ref.X, ref.Y, ref.Z, diff*1000)
	fmt.Printf("Sub-satellite point: lat=%s lon=%s alt=%.1f km\n",
		geo.Latitude, geo.Longitude, geo.Altitude.Km())
	return nil
}

// compareMeeus prints Julian date, mean sidereal time and IAU 1980 nutation
// at u next to the Meeus values. UT1 is taken equal to UTC.
func compareMeeus(u utc.UTC, tai timescale.Time) {
	d, tod := u.Date(), u.TimeOfDay()
	jd := d.JulianDate(deltas.JulianEpoch, deltas.Days) +
		float64(tod.SecondOfDay())/deltas.SecondsPerDay
	refJD := julian.TimeToJD(u.GoTime())
	fmt.Printf("JD (UTC):      %.8f meeus %.8f\n", jd, refJD)

	gmst := iers.GMST1982(jd - 2451545.0)
	refGMST := units.Angle(sidereal.Mean(refJD).Rad())
	fmt.Printf("GMST IAU 1982: %s meeus %s, difference %.3g rad\n",
		gmst.ModTwoPi(), refGMST.ModTwoPi(), (gmst - refGMST).NormalizeTwoPi(0).Rad())

	tt := tai.ToTT()
	n := iers.Nutation1980(tt.CenturiesSinceJ2000())
	dpsi, deps := nutation.Nutation(tt.JulianDate(deltas.JulianEpoch, deltas.Days))
	fmt.Printf("Nutation 1980: dpsi %.4f\" meeus %.4f\", deps %.4f\" meeus %.4f\"\n",
		n.DPsi.Arcsec(), units.Angle(dpsi.Rad()).Arcsec(), n.DEps.Arcsec(), units.Angle(deps.Rad()).Arcsec())
}

func sq(x float64) float64 { return x * x }
