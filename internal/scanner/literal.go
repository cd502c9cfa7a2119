package scanner

import (
	"strconv"
	"strings"
)

// mapSizes maps the tilemap size constants of bgSetMapPtr to their VRAM size in bytes.
var mapSizes = map[string]uint32{
	"BG_MAP_32x32": 0x0800,
	"BG_MAP_64x32": 0x1000,
	"BG_MAP_32x64": 0x1000,
	"BG_MAP_64x64": 0x2000,
	"SC_32x32":     0x0800,
	"SC_64x32":     0x1000,
	"SC_32x64":     0x1000,
	"SC_64x64":     0x2000,
}

// defaultMapSize is used for unknown size constants, the smallest map size.
const defaultMapSize = 0x0800

// mapSize returns the size in bytes of a tilemap size constant.
func mapSize(name string) uint32 {
	if size, ok := mapSizes[name]; ok {
		return size
	}
	return defaultMapSize
}

// numberPattern matches a hexadecimal or decimal integer literal with an optional C suffix.
const numberPattern = `(0[xX][0-9a-fA-F]+|[0-9]+)[uUlL]*`

// parseNumber parses a literal matched by numberPattern. A leading zero does
// not select octal, the SNES sources only use hex and decimal values.
func parseNumber(s string) (uint32, bool) {
	s = strings.TrimRight(s, "uUlL")

	base := 10
	if len(s) > 2 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		s = s[2:]
		base = 16
	}

	value, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false
	}
	return uint32(value), true
}
