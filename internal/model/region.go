// Package model contains the VRAM regions and the transfer and sync events
// collected by one analysis run.
package model

import "fmt"

// Interval is a half-open VRAM address range [Start, End).
type Interval struct {
	Start uint32
	End   uint32
}

// Len returns the number of bytes covered by the interval.
func (i Interval) Len() uint32 {
	if i.End < i.Start {
		return 0
	}
	return i.End - i.Start
}

// Overlaps returns whether both intervals share at least one address.
// Touching intervals like [0,8) and [8,16) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.End > other.Start && other.End > i.Start
}

// Intersect returns the shared part of both intervals.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	if !i.Overlaps(other) {
		return Interval{}, false
	}
	return Interval{
		Start: max(i.Start, other.Start),
		End:   min(i.End, other.End),
	}, true
}

// String returns the interval using inclusive hex bounds as used in SNES documentation.
func (i Interval) String() string {
	if i.Len() == 0 {
		return fmt.Sprintf("$%04X (empty)", i.Start)
	}
	return fmt.Sprintf("$%04X-$%04X", i.Start, i.End-1)
}

// Location is the source position of a scanned entity.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Region is a declared VRAM area like a background tilemap.
type Region struct {
	Interval
	Location

	Name  string
	Layer int // 1-based background layer, 0 if not a background
}

// Overlaps returns whether the two regions share at least one VRAM address.
func Overlaps(a, b Region) bool {
	return a.Interval.Overlaps(b.Interval)
}

// OverlapRange returns the shared address range of both regions.
func OverlapRange(a, b Region) (Interval, bool) {
	return a.Interval.Intersect(b.Interval)
}
