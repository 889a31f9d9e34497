package propagation

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/utc"
)

// State is a satellite state at one instant.
type State struct {
	Time     utc.UTC
	Position r3.Vec // km
	Velocity r3.Vec // km/s
}

// Ephemeris is a time-ordered sequence of states of one satellite.
type Ephemeris struct {
	NORADID int
	Name    string
	Frame   frames.Frame
	States  []State
	// Warning is the first Earth orientation extrapolation warning met while
	// rotating the states, or nil.
	Warning error
}

// SatelliteState is one satellite's state within a Snapshot.
type SatelliteState struct {
	NORADID  int
	Name     string
	Position r3.Vec // km
	Velocity r3.Vec // km/s
}

// Snapshot holds the states of a catalogue at a single instant.
type Snapshot struct {
	Time       utc.UTC
	Frame      frames.Frame
	Satellites []SatelliteState
	Failed     int
	Warning    error
}

// Config holds propagation configuration loaded from environment variables.
type Config struct {
	Workers int // Worker pool size (default: runtime.NumCPU())
	// MaxStates bounds the number of states of a single request.
	MaxStates int
}
