package scanner

import (
	"regexp"
	"strings"

	"github.com/retroenv/vramcheck/internal/model"
)

var (
	asmTransferReference = regexp.MustCompile(`\b` + TransferRoutine + `\b(\s*:)?`)

	// jsl WaitForVBlank or jsr WaitForVBlank, optionally with a size suffix like jsl.l
	asmSyncCall = regexp.MustCompile(`(?i:\bjs[lr](?:\.[lw])?)\s+(` + SyncRoutine + `)\b`)
)

// asmParser recognizes transfers and syncs in 65816 assembly sources.
// Register contents are not tracked, so transfers have no known destination
// and no function is attributed to any event.
type asmParser struct{}

func (p *asmParser) parseLine(text string) []found {
	code := stripAsmComment(text)
	trimmed := strings.TrimSpace(code)
	if trimmed == "" || strings.HasPrefix(trimmed, ".") {
		return nil // directives like .export dmaCopyVram
	}

	var items []found

	if m := asmTransferReference.FindStringSubmatchIndex(code); m != nil && m[2] < 0 {
		items = append(items, found{
			column:   m[0] + 1,
			transfer: &model.Transfer{Routine: TransferRoutine},
		})
	}

	if m := asmSyncCall.FindStringSubmatchIndex(code); m != nil {
		items = append(items, found{
			column: m[0] + 1,
			sync:   &model.Sync{Routine: code[m[2]:m[3]]},
		})
	}

	return items
}
