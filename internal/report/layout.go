package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/retroenv/vramcheck/internal/model"
)

const (
	vramSize     = 0x10000
	layoutWidth  = 64
	layoutBorder = layoutWidth + 14
)

// Layout renders the declared regions as a bar over the 64KB VRAM space with
// one character per 1KB. Every region is drawn with its layer number or the
// first letter of its name, columns used by several regions show an X.
func Layout(regions []model.Region) string {
	cells := []byte(strings.Repeat(".", layoutWidth))

	for _, r := range regions {
		if r.Len() == 0 || r.Start >= vramSize {
			continue
		}
		first := int(uint64(r.Start) * layoutWidth / vramSize)
		last := int(uint64(r.End-1) * layoutWidth / vramSize)
		last = min(last, layoutWidth-1)

		label := regionLabel(r)
		for i := first; i <= last; i++ {
			if cells[i] == '.' {
				cells[i] = label
			} else {
				cells[i] = 'X'
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("VRAM layout (1KB per char):\n")
	sb.WriteString(strings.Repeat("=", layoutBorder) + "\n")
	fmt.Fprintf(&sb, "$0000 |%s| $FFFF\n", cells)
	sb.WriteString(strings.Repeat("=", layoutBorder) + "\n")
	return sb.String()
}

// WriteLayout writes the VRAM layout of the regions.
func WriteLayout(w io.Writer, regions []model.Region) error {
	if _, err := io.WriteString(w, Layout(regions)); err != nil {
		return fmt.Errorf("writing layout: %w", err)
	}
	return nil
}

func regionLabel(r model.Region) byte {
	if r.Layer > 0 && r.Layer < 10 {
		return strconv.Itoa(r.Layer)[0]
	}
	for _, c := range r.Name {
		if c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
			return byte(unicode.ToUpper(c))
		}
	}
	return '#'
}
