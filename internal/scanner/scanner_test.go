package scanner

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/vramcheck/internal/model"
)

const breakoutSource = `#include <snes.h>

extern u8 blockmap[], backmap[];

void setupBackgrounds(void) {
    bgSetMapPtr(0, 0x0000, BG_MAP_32x32);
    bgSetMapPtr(2, 0x0400, SC_64x32);
    bgSetMapPtr(1, 2048, UNKNOWN_SIZE);
}

int main(void)
{
    dmaCopyVram((u8 *)blockmap, 0x0000, 0x800);
    WaitForVBlank();
    dmaCopyVram((u8 *)backmap, 0x0400, 0x800u);
    // dmaCopyVram(blockmap, 0x2000, 0x800);
    dmaCopyVram(tiles, 0x1000, tiles_end - tiles);
    dmaCopyVramBank(tiles, 2, 0x3000, 512);
    return 0;
}

void vblank(void) { WaitForVBlank(); dmaCopyVram(a, 0x10, 0x20); }
WaitForVBlank();
`

func TestScanC(t *testing.T) {
	run := model.NewRun()
	stats, err := Scan(run, "main.c", C, []byte(breakoutSource))
	assert.NoError(t, err)
	assert.Equal(t, Stats{Regions: 3, Transfers: 4, Syncs: 3}, stats)

	assert.Len(t, run.Regions, 3)
	bg1 := run.Regions[0]
	assert.Equal(t, "BG1 tilemap", bg1.Name)
	assert.Equal(t, 1, bg1.Layer)
	assert.Equal(t, model.Interval{Start: 0x0000, End: 0x0800}, bg1.Interval)
	assert.Equal(t, "main.c", bg1.File)
	assert.Equal(t, 6, bg1.Line)

	bg3 := run.Regions[1]
	assert.Equal(t, "BG3 tilemap", bg3.Name)
	assert.Equal(t, model.Interval{Start: 0x0400, End: 0x1400}, bg3.Interval)

	bg2 := run.Regions[2]
	assert.Equal(t, model.Interval{Start: 2048, End: 2048 + defaultMapSize}, bg2.Interval)

	first := run.Transfers[0]
	assert.Equal(t, TransferRoutine, first.Routine)
	assert.Equal(t, "main", first.Function)
	assert.Equal(t, uint32(0x0000), first.Dest)
	assert.Equal(t, uint32(0x0800), first.Size)
	assert.True(t, first.Resolved)
	assert.Equal(t, 13, first.Line)

	second := run.Transfers[1]
	assert.Equal(t, uint32(0x0400), second.Dest)
	assert.Equal(t, uint32(0x0800), second.Size)
	assert.Equal(t, 15, second.Line)

	bank := run.Transfers[2]
	assert.Equal(t, BankTransferRoutine, bank.Routine)
	assert.Equal(t, uint32(0x3000), bank.Dest)
	assert.Equal(t, uint32(512), bank.Size)

	assert.Equal(t, "main", run.Syncs[0].Function)
	assert.Equal(t, 14, run.Syncs[0].Line)

	// single line function: sync before transfer by column
	assert.Equal(t, "vblank", run.Syncs[1].Function)
	oneLiner := run.Transfers[3]
	assert.Equal(t, "vblank", oneLiner.Function)
	assert.True(t, run.Syncs[1].Column < oneLiner.Column)

	assert.Equal(t, "", run.Syncs[2].Function)
}

const asmSource = `.export main
.import dmaCopyVram, WaitForVBlank

dmaCopyVram:
    rtl

main:
    jsl dmaCopyVram      ; copy tiles
    jsl WaitForVBlank
    JSR.w WaitForVBlank
    ; jsl WaitForVBlank
    jml WaitForVBlank
    jsl dmaCopyVram
`

func TestScanAssembly(t *testing.T) {
	run := model.NewRun()
	stats, err := Scan(run, "main.asm", Assembly, []byte(asmSource))
	assert.NoError(t, err)
	assert.Equal(t, Stats{Transfers: 2, Syncs: 2}, stats)

	for _, transfer := range run.Transfers {
		assert.False(t, transfer.Resolved)
		assert.Equal(t, uint32(0), transfer.Dest)
		assert.Equal(t, uint32(0), transfer.Size)
		assert.Equal(t, "", transfer.Function)
	}
	assert.Equal(t, 8, run.Transfers[0].Line)
	assert.Equal(t, 13, run.Transfers[1].Line)
	assert.Equal(t, 9, run.Syncs[0].Line)
	assert.Equal(t, 10, run.Syncs[1].Line)
	assert.Equal(t, "", run.Syncs[0].Function)
}

func TestScanAccumulatesFiles(t *testing.T) {
	run := model.NewRun()
	_, err := Scan(run, "a.c", C, []byte("void a(void) {\n WaitForVBlank();\n}\n"))
	assert.NoError(t, err)
	_, err = Scan(run, "b.asm", Assembly, []byte(" jsl WaitForVBlank\n"))
	assert.NoError(t, err)

	assert.Equal(t, []string{"a.c", "b.asm"}, run.Files)
	assert.Len(t, run.Syncs, 2)
}

func TestScanUnsupportedDialect(t *testing.T) {
	run := model.NewRun()
	_, err := Scan(run, "a.py", Dialect("py"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedDialect))
	assert.Len(t, run.Files, 0)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
		ok    bool
	}{
		{"0x0800", 0x0800, true},
		{"0X1F", 0x1F, true},
		{"2048", 2048, true},
		{"0400", 400, true},
		{"0x800u", 0x800, true},
		{"1536UL", 1536, true},
		{"0x", 0, false},
		{"99999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapSize(t *testing.T) {
	assert.Equal(t, uint32(0x0800), mapSize("BG_MAP_32x32"))
	assert.Equal(t, uint32(0x2000), mapSize("SC_64x64"))
	assert.Equal(t, uint32(defaultMapSize), mapSize("BG_MAP_128x128"))
}
