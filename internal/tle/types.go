// Package tle reads NORAD two-line element sets.
package tle

import "github.com/lox-space/lox-go/internal/utc"

// TLEEntry represents a single satellite's two-line element set.
type TLEEntry struct {
	NORADID int
	Name    string
	Epoch   utc.UTC
	Line1   string
	Line2   string
}

// EpochRange is the earliest and latest epoch of a catalogue.
type EpochRange struct {
	Min utc.UTC
	Max utc.UTC
}

// Epochs returns the epoch range of entries. ok is false for an empty slice.
func Epochs(entries []TLEEntry) (r EpochRange, ok bool) {
	for i, e := range entries {
		if i == 0 {
			r = EpochRange{Min: e.Epoch, Max: e.Epoch}
			continue
		}
		if e.Epoch.GoTime().Before(r.Min.GoTime()) {
			r.Min = e.Epoch
		}
		if e.Epoch.GoTime().After(r.Max.GoTime()) {
			r.Max = e.Epoch
		}
	}
	return r, len(entries) > 0
}
