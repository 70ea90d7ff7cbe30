package types

import (
	"strconv"
	"strings"
)

// ParseName resolves a canonical type name such as "int8" or "uint24" into a
// descriptor. Aliases are not handled here.
func ParseName(name string) (Descriptor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	unsigned := false
	switch {
	case strings.HasPrefix(name, "uint"):
		unsigned = true
		name = name[len("uint"):]
	case strings.HasPrefix(name, "int"):
		name = name[len("int"):]
	default:
		return Descriptor{}, false
	}
	if name == "" || name[0] == '+' || name[0] == '-' {
		return Descriptor{}, false
	}
	bits, err := strconv.ParseUint(name, 10, 32)
	if err != nil {
		return Descriptor{}, false
	}
	d := Make(Width(bits), unsigned)
	if d.Validate() != nil {
		return Descriptor{}, false
	}
	return d, true
}
