package model

import "fmt"

// EventKind identifies an entry of the merged event timeline.
type EventKind int

// Event kinds of the timeline.
const (
	TransferEvent EventKind = iota + 1
	SyncEvent
)

func (k EventKind) String() string {
	switch k {
	case TransferEvent:
		return "transfer"
	case SyncEvent:
		return "sync"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Transfer is a DMA copy into VRAM found at a call site.
type Transfer struct {
	Location

	Routine  string // called transfer routine, e.g. dmaCopyVram
	Function string // enclosing function, empty if unknown
	Dest     uint32
	Size     uint32
	Resolved bool // destination and size were read from literals

	seq int
}

// Destination returns the written VRAM range.
func (t Transfer) Destination() Interval {
	return Interval{Start: t.Dest, End: t.Dest + t.Size}
}

// Sync is a call waiting for the next vertical blank.
type Sync struct {
	Location

	Routine  string
	Function string

	seq int
}

// Event is one entry of the merged transfer and sync timeline.
// Exactly one of Transfer and Sync is set, matching Kind.
type Event struct {
	Kind     EventKind
	Transfer *Transfer
	Sync     *Sync
}

// Location returns the source position of the event.
func (e Event) Location() Location {
	if e.Kind == TransferEvent {
		return e.Transfer.Location
	}
	return e.Sync.Location
}

// Function returns the enclosing function of the event.
func (e Event) Function() string {
	if e.Kind == TransferEvent {
		return e.Transfer.Function
	}
	return e.Sync.Function
}

// Seq returns the discovery order of the event within its run.
func (e Event) Seq() int {
	if e.Kind == TransferEvent {
		return e.Transfer.seq
	}
	return e.Sync.seq
}

// Label returns a short description like "main:10 dmaCopyVram $0000+$0800".
func (e Event) Label() string {
	loc := e.Location()
	fn := e.Function()
	if fn == "" {
		fn = loc.File
	}
	if e.Kind == SyncEvent {
		return fmt.Sprintf("%s:%d %s", fn, loc.Line, e.Sync.Routine)
	}
	t := e.Transfer
	if !t.Resolved {
		return fmt.Sprintf("%s:%d %s ?", fn, loc.Line, t.Routine)
	}
	return fmt.Sprintf("%s:%d %s $%04X+$%04X", fn, loc.Line, t.Routine, t.Dest, t.Size)
}
