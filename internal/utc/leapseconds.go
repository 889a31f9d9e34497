package utc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox-space/lox-go/internal/calendar"
	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/timescale"
)

// LeapSecondsProvider supplies TAI - UTC for instants from 1972 onwards.
// The boolean results are false before the first table entry.
type LeapSecondsProvider interface {
	// DeltaTAIUTC returns TAI - UTC at a TAI instant.
	DeltaTAIUTC(tai timescale.Time) (deltas.TimeDelta, bool)
	// DeltaUTCTAI returns UTC - TAI at a UTC instant.
	DeltaUTCTAI(utc UTC) (deltas.TimeDelta, bool)
	// IsLeapSecond reports whether tai falls inside an inserted leap second.
	IsLeapSecond(tai timescale.Time) bool
	// IsLeapSecondDate reports whether date ends with 23:59:60.
	IsLeapSecondDate(date calendar.Date) bool
}

// ErrInvalidTable is returned for malformed leap-second tables.
var ErrInvalidTable = errors.New("invalid leap-second table")

// Table is an immutable leap-second table. It is safe for concurrent use.
type Table struct {
	epochsUTC   []int64
	epochsTAI   []int64
	leapSeconds []int64
}

var builtinEpochsUTC = []int64{
	-883656000, -867931200, -852033600, -820497600, -788961600, -757425600, -725803200, -694267200,
	-662731200, -631195200, -583934400, -552398400, -520862400, -457704000, -378734400, -315576000,
	-284040000, -236779200, -205243200, -173707200, -126273600, -79012800, -31579200, 189345600,
	284040000, 394372800, 488980800, 536500800,
}

var builtin = mustTable(builtinEpochsUTC, []int64{
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23,
	24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37,
})

// Builtin returns the table compiled into the binary, current up to the leap
// second at the end of 2016.
func Builtin() *Table { return builtin }

func mustTable(epochsUTC, leapSeconds []int64) *Table {
	t, err := NewTable(epochsUTC, leapSeconds)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable builds a table from the UTC midnights (seconds since J2000) at
// which TAI - UTC changed and the new values. The first entry establishes
// the initial offset; every later entry must add exactly one second.
func NewTable(epochsUTC, leapSeconds []int64) (*Table, error) {
	if len(epochsUTC) == 0 || len(epochsUTC) != len(leapSeconds) {
		return nil, fmt.Errorf("%w: %d epochs for %d values", ErrInvalidTable, len(epochsUTC), len(leapSeconds))
	}
	t := &Table{
		epochsUTC:   append([]int64(nil), epochsUTC...),
		epochsTAI:   make([]int64, len(epochsUTC)),
		leapSeconds: append([]int64(nil), leapSeconds...),
	}
	t.epochsTAI[0] = epochsUTC[0] + leapSeconds[0]
	for i := 1; i < len(epochsUTC); i++ {
		if epochsUTC[i] <= epochsUTC[i-1] || leapSeconds[i] != leapSeconds[i-1]+1 {
			return nil, fmt.Errorf("%w: entry %d does not add one second after %d", ErrInvalidTable, i, i-1)
		}
		// TAI reading of the inserted 23:59:60.
		t.epochsTAI[i] = epochsUTC[i] + leapSeconds[i] - 1
	}
	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.epochsUTC) }

// Latest returns the last tabulated value of TAI - UTC.
func (t *Table) Latest() int64 { return t.leapSeconds[len(t.leapSeconds)-1] }

// TAIMinusUTCAtUTC returns the tabulated offset in effect at a UTC reading
// given as seconds since J2000.
func (t *Table) TAIMinusUTCAtUTC(seconds int64) (int64, bool) {
	return lookup(t.epochsUTC, t.leapSeconds, seconds)
}

// TAIMinusUTCAtTAI returns the tabulated offset in effect at a TAI reading
// given as seconds since J2000.
func (t *Table) TAIMinusUTCAtTAI(seconds int64) (int64, bool) {
	return lookup(t.epochsTAI, t.leapSeconds, seconds)
}

func lookup(epochs, values []int64, s int64) (int64, bool) {
	if s < epochs[0] {
		return 0, false
	}
	i := sort.Search(len(epochs), func(i int) bool { return epochs[i] > s }) - 1
	return values[i], true
}

func (t *Table) DeltaTAIUTC(tai timescale.Time) (deltas.TimeDelta, bool) {
	ls, ok := t.TAIMinusUTCAtTAI(tai.Seconds())
	if !ok {
		return deltas.TimeDelta{}, false
	}
	return deltas.FromSeconds(ls), true
}

func (t *Table) DeltaUTCTAI(u UTC) (deltas.TimeDelta, bool) {
	ls, ok := t.TAIMinusUTCAtUTC(u.secondsSinceJ2000())
	if !ok {
		return deltas.TimeDelta{}, false
	}
	if u.tod.IsLeapSecond() {
		ls--
	}
	return deltas.FromSeconds(-ls), true
}

func (t *Table) IsLeapSecond(tai timescale.Time) bool {
	s := tai.Seconds()
	i := sort.Search(len(t.epochsTAI), func(i int) bool { return t.epochsTAI[i] >= s })
	return i > 0 && i < len(t.epochsTAI) && t.epochsTAI[i] == s
}

func (t *Table) IsLeapSecondDate(date calendar.Date) bool {
	next := date.AddDays(1).SecondsSinceJ2000()
	i := sort.Search(len(t.epochsUTC), func(i int) bool { return t.epochsUTC[i] >= next })
	return i > 0 && i < len(t.epochsUTC) && t.epochsUTC[i] == next
}
