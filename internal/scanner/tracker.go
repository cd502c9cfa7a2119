package scanner

import (
	"regexp"
	"strings"
)

// functionDefinition matches the first line of a C function definition: an
// optional storage class, a return type keyword, the function name and a
// parameter list that is not followed by a semicolon.
var functionDefinition = regexp.MustCompile(
	`^\s*(?:(?:static|inline|extern)\s+)*(?:const\s+)?` +
		`(?:void|int|char|short|long|unsigned|signed|bool|u8|u16|u32|s8|s16|s32)` +
		`(?:\s+(?:int|char|short|long))*` +
		`[\s*]+([A-Za-z_]\w*)\s*\([^;{}]*\)\s*(?:\{.*)?$`)

type functionState int

const (
	outsideFunction functionState = iota
	awaitingBody                  // definition seen, opening brace not yet
	insideFunction
)

// functionTracker follows which function a line of C code belongs to by
// counting braces. It expects lines without comments and string contents.
//
// Definitions spanning several lines are not recognized and unbalanced
// braces from preprocessor branches can end a function early.
type functionTracker struct {
	state functionState
	name  string
	depth int
}

// feed advances the tracker by one line and returns the name of the function
// the line belongs to, or an empty string if it is outside of any function.
// The definition line and the line closing the body belong to the function.
func (t *functionTracker) feed(code string) string {
	opens := strings.Count(code, "{")
	closes := strings.Count(code, "}")

	if m := functionDefinition.FindStringSubmatch(code); m != nil {
		t.name = m[1]
		t.depth = opens - closes
		switch {
		case opens == 0:
			t.state = awaitingBody
		case t.depth > 0:
			t.state = insideFunction
		default:
			t.reset() // body opened and closed on the same line
		}
		return m[1]
	}

	switch t.state {
	case awaitingBody:
		if opens == 0 {
			if strings.TrimSpace(code) != "" {
				t.reset() // not followed by a body
			}
			return ""
		}
		name := t.name
		t.depth += opens - closes
		if t.depth > 0 {
			t.state = insideFunction
		} else {
			t.reset()
		}
		return name

	case insideFunction:
		name := t.name
		t.depth += opens - closes
		if t.depth <= 0 {
			t.reset()
		}
		return name

	default:
		return ""
	}
}

func (t *functionTracker) reset() {
	t.state = outsideFunction
	t.name = ""
	t.depth = 0
}
