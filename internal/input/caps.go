package input

import (
	"fmt"
	"sort"
	"strings"
)

// bitsSet returns the indices of the set bits in a kernel bitmap.
func bitsSet(bitmap []byte) []uint16 {
	var out []uint16
	for i, b := range bitmap {
		if b == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				out = append(out, uint16(i*8+bit))
			}
		}
	}
	return out
}

// Has reports whether the device reports code for event type typ.
func (c Capabilities) Has(typ, code uint16) bool {
	for _, cc := range c[typ] {
		if cc == code {
			return true
		}
	}
	return false
}

var typeNames = map[uint16]string{
	EvSyn: "EV_SYN",
	EvKey: "EV_KEY",
	EvRel: "EV_REL",
	EvAbs: "EV_ABS",
}

// String formats the capabilities sorted by event type, e.g. "EV_ABS[0 1 53 54]".
func (c Capabilities) String() string {
	typesSorted := make([]int, 0, len(c))
	for typ := range c {
		typesSorted = append(typesSorted, int(typ))
	}
	sort.Ints(typesSorted)

	parts := make([]string, 0, len(typesSorted))
	for _, typ := range typesSorted {
		name, ok := typeNames[uint16(typ)]
		if !ok {
			name = fmt.Sprintf("EV_%#02x", typ)
		}
		parts = append(parts, fmt.Sprintf("%s%v", name, c[uint16(typ)]))
	}
	return strings.Join(parts, " ")
}
