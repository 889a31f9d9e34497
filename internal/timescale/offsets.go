package timescale

import (
	"math"

	"github.com/lox-space/lox-go/internal/deltas"
)

// Offset between TAI and TT in seconds.
const TTMinusTAI = 32.184

// IAU 2000 Resolution B1.9 and IAU 2006 Resolution B3 defining constants.
const (
	LG   = 6.969290134e-10
	LB   = 1.550519768e-8
	TDB0 = -6.55e-5

	invLG = LG / (1 - LG)
	invLB = LB / (1 - LB)
)

// 1977-01-01T00:00:00 TAI expressed in TT seconds since J2000.
const j77TT = -7.25803167816e8

const (
	tt0   = -725803200.0 + TTMinusTAI
	tcb77 = TDB0 + LB*tt0
)

var ttMinusTAI = deltas.New(32, 184_000_000_000_000_000)

func offsetTAIToTT(deltas.TimeDelta) deltas.TimeDelta { return ttMinusTAI }
func offsetTTToTAI(deltas.TimeDelta) deltas.TimeDelta { return ttMinusTAI.Neg() }

func offsetTTToTCG(dt deltas.TimeDelta) deltas.TimeDelta {
	return deltas.Float(invLG * (dt.ToDecimalSeconds() - j77TT))
}

func offsetTCGToTT(dt deltas.TimeDelta) deltas.TimeDelta {
	return deltas.Float(-LG * (dt.ToDecimalSeconds() - j77TT))
}

func offsetTDBToTCB(dt deltas.TimeDelta) deltas.TimeDelta {
	return deltas.Float(-tcb77/(1-LB) + invLB*dt.ToDecimalSeconds())
}

func offsetTCBToTDB(dt deltas.TimeDelta) deltas.TimeDelta {
	return deltas.Float(tcb77 - LB*dt.ToDecimalSeconds())
}

// Leading term of the Fairhead & Bretagnon (1990) series written in Kepler
// form, with g the Earth's mean anomaly. Good to about 30 µs.
const (
	tdbK  = 1.657e-3
	tdbEB = 1.671e-2
	tdbM0 = 6.239996
	tdbM1 = 1.99096871e-7
)

// tdbMinusTT evaluates TDB - TT for tt in TT seconds since J2000.
func tdbMinusTT(tt float64) float64 {
	g := tdbM0 + tdbM1*tt
	return tdbK * math.Sin(g+tdbEB*math.Sin(g))
}

func offsetTTToTDB(dt deltas.TimeDelta) deltas.TimeDelta {
	return deltas.Float(tdbMinusTT(dt.ToDecimalSeconds()))
}

// The periodic term varies slowly so a fixed-point iteration from the TDB
// reading converges after two refinements.
func offsetTDBToTT(dt deltas.TimeDelta) deltas.TimeDelta {
	tdb := dt.ToDecimalSeconds()
	offset := 0.0
	for i := 0; i < 3; i++ {
		offset = -tdbMinusTT(tdb + offset)
	}
	return deltas.Float(offset)
}
