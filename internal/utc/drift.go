package utc

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox-space/lox-go/internal/deltas"
)

// Between 1960 and 1972 UTC was steered by frequency offsets. TAI - UTC in
// each interval is offset + (MJD - driftEpoch) * rate seconds.
var (
	driftIntervalStart = [...]float64{36934, 37300, 37512, 37665, 38334, 38395, 38486, 38639, 38761, 38820, 38942, 39004, 39126, 39887}
	driftOffsets       = [...]float64{1.417818, 1.422818, 1.372818, 1.845858, 1.945858, 3.240130, 3.340130, 3.440130, 3.540130, 3.640130, 3.740130, 3.840130, 4.313170, 4.213170}
	driftEpochs        = [...]float64{37300, 37300, 37300, 37665, 37665, 38761, 38761, 38761, 38761, 38761, 38761, 38761, 39126, 39126}
	driftRates         = [...]float64{0.0012960, 0.0012960, 0.0012960, 0.0011232, 0.0011232, 0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0025920, 0.0025920}
)

const (
	// MJD of 1960-01-01, the earliest UTC reading with a defined offset.
	firstUTCMJD = 36934
	// MJD of 1972-01-01, from which the leap-second table applies.
	leapSecondEraMJD = 41317
)

func mjd(secondsSinceJ2000 float64) float64 {
	return (secondsSinceJ2000 + float64(deltas.SecondsBetweenMJDAndJ2000)) / deltas.SecondsPerDay
}

func driftInterval(mjd float64) (int, error) {
	if mjd < firstUTCMJD {
		return 0, fmt.Errorf("%w: MJD %.1f", ErrUndefined, mjd)
	}
	day := math.Floor(mjd)
	return sort.Search(len(driftIntervalStart), func(i int) bool { return driftIntervalStart[i] > day }) - 1, nil
}

// driftTAIMinusUTC evaluates TAI - UTC at a UTC MJD in the drift era.
func driftTAIMinusUTC(utcMJD float64) (float64, error) {
	i, err := driftInterval(utcMJD)
	if err != nil {
		return 0, err
	}
	return driftOffsets[i] + (utcMJD-driftEpochs[i])*driftRates[i], nil
}

// driftTAIMinusUTCAtTAI evaluates TAI - UTC at a TAI MJD in the drift era by
// re-expressing the rate per TAI day.
func driftTAIMinusUTCAtTAI(taiMJD float64) (float64, error) {
	i, err := driftInterval(taiMJD)
	if err != nil {
		return 0, err
	}
	rateUTC := driftRates[i] / deltas.SecondsPerDay
	rateTAI := rateUTC / (1 + rateUTC) * deltas.SecondsPerDay
	dt := taiMJD - driftEpochs[i] - driftOffsets[i]/deltas.SecondsPerDay
	return driftOffsets[i] + dt*rateTAI, nil
}
