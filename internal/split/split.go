// Package split detects VRAM transfers of one function that are split by a
// vertical blank wait. The hardware can display VRAM between both transfers,
// which shows a partially updated picture when the destinations overlap.
package split

import (
	"fmt"
	"sort"

	"github.com/retroenv/vramcheck/internal/model"
	"github.com/retroenv/vramcheck/internal/scanner"
)

// Options control which transfers take part in the detection.
type Options struct {
	// AllRoutines includes every transfer routine instead of only dmaCopyVram.
	// Routines with different argument semantics like dmaCopyVramBank then
	// produce more findings that need manual review.
	AllRoutines bool
}

// Finding is a transfer, vertical blank wait and transfer sequence of one function.
type Finding struct {
	First    model.Transfer
	Sync     model.Sync
	Second   model.Transfer
	Function string

	// RegionsOverlap is set if the destination ranges of both transfers overlap.
	// It is always false for transfers without a known destination.
	RegionsOverlap bool
	Message        string
}

// Timeline merges the transfers and syncs of a run into one sequence ordered
// by file scan order and line. Events on the same line keep their discovery order.
func Timeline(run *model.Run) []model.Event {
	events := make([]model.Event, 0, len(run.Transfers)+len(run.Syncs))
	for i := range run.Transfers {
		transfer := run.Transfers[i]
		events = append(events, model.Event{Kind: model.TransferEvent, Transfer: &transfer})
	}
	for i := range run.Syncs {
		sync := run.Syncs[i]
		events = append(events, model.Event{Kind: model.SyncEvent, Sync: &sync})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Location(), events[j].Location()
		if fa, fb := run.FileIndex(a.File), run.FileIndex(b.File); fa != fb {
			return fa < fb
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return events[i].Seq() < events[j].Seq()
	})
	return events
}

// Detect slides a window of three events over the timeline and returns a
// finding for every transfer, sync, transfer sequence inside one function.
// Events without an enclosing function never match.
func Detect(timeline []model.Event, opts Options) []Finding {
	var findings []Finding

	for i := 0; i+2 < len(timeline); i++ {
		first, sync, second := timeline[i], timeline[i+1], timeline[i+2]
		if first.Kind != model.TransferEvent || sync.Kind != model.SyncEvent || second.Kind != model.TransferEvent {
			continue
		}
		if !sameFunction(first, sync, second) {
			continue
		}
		if !opts.AllRoutines && (first.Transfer.Routine != scanner.TransferRoutine ||
			second.Transfer.Routine != scanner.TransferRoutine) {
			continue
		}

		findings = append(findings, newFinding(*first.Transfer, *sync.Sync, *second.Transfer))
	}

	return findings
}

func sameFunction(events ...model.Event) bool {
	function := events[0].Function()
	file := events[0].Location().File
	if function == "" {
		return false
	}
	for _, e := range events[1:] {
		if e.Function() != function || e.Location().File != file {
			return false
		}
	}
	return true
}

func newFinding(first model.Transfer, sync model.Sync, second model.Transfer) Finding {
	overlap := first.Resolved && second.Resolved &&
		first.Destination().Overlaps(second.Destination())

	msg := fmt.Sprintf("%s:%d: %s() splits VRAM transfers across %s: line %d writes %s, line %d waits, line %d writes %s",
		first.File, first.Line, first.Function, sync.Routine,
		first.Line, destination(first), sync.Line, second.Line, destination(second))

	return Finding{
		First:          first,
		Sync:           sync,
		Second:         second,
		Function:       first.Function,
		RegionsOverlap: overlap,
		Message:        msg,
	}
}

func destination(t model.Transfer) string {
	if !t.Resolved {
		return "an unknown range"
	}
	return t.Destination().String()
}
