// Package scanner extracts VRAM region declarations, VRAM transfers and
// vertical blank waits from C and 65816 assembly source files.
//
// The scanner works line by line on lexical patterns. It does not parse the
// language, so values computed at runtime and calls spread over several lines
// are not recognized.
package scanner

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/retroenv/vramcheck/internal/model"
)

// Dialect is a supported source language.
type Dialect string

// Supported dialects.
const (
	C        Dialect = "c"
	Assembly Dialect = "asm"
)

// ErrUnsupportedDialect is returned for a dialect without a line parser.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// Stats counts the entities found in one scanned file.
type Stats struct {
	Regions   int
	Transfers int
	Syncs     int
}

// lineParser is implemented by the dialect specific parsers.
// A parser is created per file and may keep state between lines.
type lineParser interface {
	parseLine(text string) []found
}

// found is a single entity recognized on a line. Exactly one pointer is set.
type found struct {
	column   int
	region   *model.Region
	transfer *model.Transfer
	sync     *model.Sync
}

func newLineParser(dialect Dialect) (lineParser, error) {
	switch dialect {
	case C:
		return &cParser{}, nil
	case Assembly:
		return &asmParser{}, nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedDialect, dialect)
	}
}

// Scan extracts all entities of the source file and appends them to the run.
func Scan(run *model.Run, path string, dialect Dialect, src []byte) (Stats, error) {
	parser, err := newLineParser(dialect)
	if err != nil {
		return Stats{}, err
	}
	run.AddFile(path)

	var stats Stats
	lines := strings.Split(string(src), "\n")
	for i, text := range lines {
		items := parser.parseLine(strings.TrimSuffix(text, "\r"))
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].column < items[b].column
		})

		loc := model.Location{File: path, Line: i + 1}
		for _, item := range items {
			loc.Column = item.column
			switch {
			case item.region != nil:
				item.region.Location = loc
				run.AddRegion(*item.region)
				stats.Regions++
			case item.transfer != nil:
				item.transfer.Location = loc
				run.AddTransfer(*item.transfer)
				stats.Transfers++
			case item.sync != nil:
				item.sync.Location = loc
				run.AddSync(*item.sync)
				stats.Syncs++
			}
		}
	}
	return stats, nil
}
