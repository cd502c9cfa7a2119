package scanner

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCodeStripper(t *testing.T) {
	var s codeStripper

	assert.Equal(t, "x = 1;"+strings.Repeat(" ", 6), s.strip("x = 1; // {}"))
	assert.Equal(t, `print("   ");`, s.strip(`print("a}b");`))
	assert.Equal(t, `c = ' ';`, s.strip(`c = '{';`))
	assert.Equal(t, `s = "     ";`, s.strip(`s = "\"{\"";`))

	// block comment spanning lines
	assert.Equal(t, "a;"+strings.Repeat(" ", 9), s.strip("a; /* WaitF"))
	assert.True(t, s.inBlockComment)
	assert.Equal(t, strings.Repeat(" ", 17)+"b;", s.strip("orVBlank(); } */ b;"))
	assert.False(t, s.inBlockComment)

	// a single slash is division
	assert.Equal(t, "x = a / b;", s.strip("x = a / b;"))
	assert.Equal(t, "x = a /", s.strip("x = a /"))
}

func TestStripAsmComment(t *testing.T) {
	assert.Equal(t, "    jsl WaitForVBlank"+strings.Repeat(" ", 4), stripAsmComment("    jsl WaitForVBlank ; x"))
	assert.Equal(t, `    .db " "`+strings.Repeat(" ", 7), stripAsmComment(`    .db ";" ; data`))
	assert.Equal(t, strings.Repeat(" ", 17), stripAsmComment("; jsl dmaCopyVram"))
}
