package scanner

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/retroenv/vramcheck/internal/model"
)

// Routine names recognized in C sources.
const (
	TransferRoutine     = "dmaCopyVram"
	BankTransferRoutine = "dmaCopyVramBank"
	SyncRoutine         = "WaitForVBlank"
	mapRoutine          = "bgSetMapPtr"
)

var (
	// bgSetMapPtr(bg, vramAddr, mapSize)
	mapPointerCall = regexp.MustCompile(`\b` + mapRoutine +
		`\s*\(\s*([0-9]+)\s*,\s*` + numberPattern + `\s*,\s*([A-Za-z_]\w*)\s*\)`)

	// dmaCopyVram(source, vramAddr, size)
	transferCall = regexp.MustCompile(`\b(` + TransferRoutine + `)` +
		`\s*\(\s*[^,]+,\s*` + numberPattern + `\s*,\s*` + numberPattern + `\s*\)`)

	// dmaCopyVramBank(source, bank, vramAddr, size)
	bankTransferCall = regexp.MustCompile(`\b(` + BankTransferRoutine + `)` +
		`\s*\(\s*[^,]+,\s*[^,]+,\s*` + numberPattern + `\s*,\s*` + numberPattern + `\s*\)`)

	// WaitForVBlank()
	syncCall = regexp.MustCompile(`\b(` + SyncRoutine + `)\s*\(\s*\)`)
)

// cParser recognizes entities in C sources and attributes them to the
// enclosing function.
type cParser struct {
	stripper codeStripper
	tracker  functionTracker
}

func (p *cParser) parseLine(text string) []found {
	code := p.stripper.strip(text)
	function := p.tracker.feed(code)

	var items []found

	for _, m := range mapPointerCall.FindAllStringSubmatchIndex(code, -1) {
		if region, ok := newMapRegion(code[m[2]:m[3]], code[m[4]:m[5]], code[m[6]:m[7]]); ok {
			items = append(items, found{column: m[0] + 1, region: region})
		}
	}

	for _, pattern := range []*regexp.Regexp{transferCall, bankTransferCall} {
		for _, m := range pattern.FindAllStringSubmatchIndex(code, -1) {
			dest, okDest := parseNumber(code[m[4]:m[5]])
			size, okSize := parseNumber(code[m[6]:m[7]])
			if !okDest || !okSize {
				continue
			}
			items = append(items, found{
				column: m[0] + 1,
				transfer: &model.Transfer{
					Routine:  code[m[2]:m[3]],
					Function: function,
					Dest:     dest,
					Size:     size,
					Resolved: true,
				},
			})
		}
	}

	for _, m := range syncCall.FindAllStringSubmatchIndex(code, -1) {
		items = append(items, found{
			column: m[0] + 1,
			sync: &model.Sync{
				Routine:  code[m[2]:m[3]],
				Function: function,
			},
		})
	}

	return items
}

// newMapRegion creates the tilemap region of a bgSetMapPtr call.
func newMapRegion(bg, address, size string) (*model.Region, bool) {
	layer, err := strconv.Atoi(bg)
	if err != nil {
		return nil, false
	}
	start, ok := parseNumber(address)
	if !ok {
		return nil, false
	}

	return &model.Region{
		Name:     fmt.Sprintf("BG%d tilemap", layer+1),
		Layer:    layer + 1,
		Interval: model.Interval{Start: start, End: start + mapSize(size)},
	}, true
}
