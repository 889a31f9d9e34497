// Package bodies identifies solar-system origins by NAIF ID and provides the
// IAU rotational elements of those that have a body-fixed frame.
package bodies

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrUnknownOrigin is returned when a name or ID matches no known origin.
	ErrUnknownOrigin = errors.New("unknown origin")
	// ErrUndefinedRotationalElements is returned for origins without a
	// rotational model, such as barycenters and most minor moons.
	ErrUndefinedRotationalElements = errors.New("undefined rotational elements")
)

// NAIFID is a NAIF SPICE integer body code.
type NAIFID int

func (id NAIFID) String() string { return strconv.Itoa(int(id)) }

// Body is a solar-system origin. The zero value is the solar system
// barycenter.
type Body struct {
	id NAIFID
}

// Well-known origins.
var (
	SolarSystemBarycenter = Body{0}
	Sun                   = Body{10}
	Mercury               = Body{199}
	Venus                 = Body{299}
	Earth                 = Body{399}
	Moon                  = Body{301}
	Mars                  = Body{499}
	Jupiter               = Body{599}
	Saturn                = Body{699}
	Uranus                = Body{799}
	Neptune               = Body{899}
	Pluto                 = Body{999}
)

type entry struct {
	name  string
	model *model
}

var registry = map[NAIFID]entry{
	0:   {name: "Solar System Barycenter"},
	1:   {name: "Mercury Barycenter"},
	2:   {name: "Venus Barycenter"},
	3:   {name: "Earth Barycenter"},
	4:   {name: "Mars Barycenter"},
	5:   {name: "Jupiter Barycenter"},
	6:   {name: "Saturn Barycenter"},
	7:   {name: "Uranus Barycenter"},
	8:   {name: "Neptune Barycenter"},
	9:   {name: "Pluto Barycenter"},
	10:  {name: "Sun", model: sunModel},
	199: {name: "Mercury", model: mercuryModel},
	299: {name: "Venus", model: venusModel},
	399: {name: "Earth", model: earthModel},
	301: {name: "Moon", model: moonModel},
	401: {name: "Phobos"},
	402: {name: "Deimos"},
	499: {name: "Mars", model: marsModel},
	501: {name: "Io"},
	502: {name: "Europa"},
	503: {name: "Ganymede"},
	504: {name: "Callisto"},
	599: {name: "Jupiter", model: jupiterModel},
	601: {name: "Mimas"},
	602: {name: "Enceladus"},
	606: {name: "Titan"},
	699: {name: "Saturn", model: saturnModel},
	701: {name: "Ariel"},
	717: {name: "Sycorax"},
	799: {name: "Uranus", model: uranusModel},
	801: {name: "Triton"},
	899: {name: "Neptune", model: neptuneModel},
	901: {name: "Charon"},
	999: {name: "Pluto", model: plutoModel},
}

var (
	byName  map[string]NAIFID
	aliases = map[string]NAIFID{"ssb": 0, "luna": 301, "sol": 10}
)

func init() {
	byName = make(map[string]NAIFID, len(registry)+len(aliases))
	for id, e := range registry {
		byName[strings.ToLower(e.name)] = id
	}
	for alias, id := range aliases {
		byName[alias] = id
	}
}

// Lookup returns the origin with the given NAIF ID.
func Lookup(id NAIFID) (Body, error) {
	if _, ok := registry[id]; !ok {
		return Body{}, fmt.Errorf("%w: NAIF ID %d", ErrUnknownOrigin, id)
	}
	return Body{id}, nil
}

// Parse resolves a body name, case-insensitively, or a numeric NAIF ID.
// Underscores and hyphens in names are read as spaces.
func Parse(s string) (Body, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if id, err := strconv.Atoi(key); err == nil {
		return Lookup(NAIFID(id))
	}
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	if id, ok := byName[key]; ok {
		return Body{id}, nil
	}
	return Body{}, fmt.Errorf("%w: %q", ErrUnknownOrigin, s)
}

// All returns every registered origin ordered by NAIF ID.
func All() []Body {
	out := make([]Body, 0, len(registry))
	for id := range registry {
		out = append(out, Body{id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (b Body) ID() NAIFID     { return b.id }
func (b Body) Name() string   { return registry[b.id].name }
func (b Body) String() string { return b.Name() }

// HasRotationalElements reports whether b has a body-fixed IAU frame.
func (b Body) HasRotationalElements() bool { return registry[b.id].model != nil }

// RotationalElements evaluates the pole right ascension, declination and
// prime-meridian angle in radians at t TDB seconds since J2000.
func (b Body) RotationalElements(t float64) (Elements, error) {
	m := registry[b.id].model
	if m == nil {
		return Elements{}, fmt.Errorf("%w for %s", ErrUndefinedRotationalElements, b.Name())
	}
	return m.elements(t), nil
}

// RotationalElementRates returns the time derivatives of the rotational
// elements in radians per second.
func (b Body) RotationalElementRates(t float64) (Elements, error) {
	m := registry[b.id].model
	if m == nil {
		return Elements{}, fmt.Errorf("%w for %s", ErrUndefinedRotationalElements, b.Name())
	}
	return m.rates(t), nil
}
