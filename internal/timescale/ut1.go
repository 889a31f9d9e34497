package timescale

import (
	"errors"
	"fmt"

	"github.com/lox-space/lox-go/internal/deltas"
)

// ErrMissingUT1Provider is returned when a conversion touches UT1 and no
// provider was supplied.
var ErrMissingUT1Provider = errors.New("a UT1-TAI provider is required")

// DeltaUT1Provider supplies the difference between UT1 and TAI.
type DeltaUT1Provider interface {
	// DeltaUT1TAI returns UT1 - TAI at a TAI instant.
	DeltaUT1TAI(tai Time) (deltas.TimeDelta, error)
	// DeltaTAIUT1 returns TAI - UT1 at a UT1 instant.
	DeltaTAIUT1(ut1 Time) (deltas.TimeDelta, error)
}

// ExtrapolatedError reports a request outside the provider's tabulated
// window. Value holds the extrapolated offset, which is unlikely to be
// accurate.
type ExtrapolatedError struct {
	Requested Time
	First     Time
	Last      Time
	Value     deltas.TimeDelta
}

func (e *ExtrapolatedError) Error() string {
	return fmt.Sprintf("UT1-TAI is only available between %v and %v; value for %v was extrapolated",
		e.First.Date(), e.Last.Date(), e.Requested.Date())
}
