package hd

import (
	"strconv"
	"strings"
)

// DefaultPath is the conventional Cosmos account path (coin type 118,
// account 0, external chain, address index 0).
const DefaultPath = "m/44'/118'/0'/0/0"

// ParsePath parses a derivation path of the form "m/44'/118'/0'/0/0" into
// child indices. The leading "m" (or "M") is optional, hardened components
// are marked with a trailing "'" or "h", and each component must be below
// 2^31. A bare "m" parses to an empty index list.
func ParsePath(path string) ([]uint32, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, ErrInvalidPath.Wrap("empty path")
	}

	parts := strings.Split(trimmed, "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}

	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		component := part
		hardened := false
		switch {
		case strings.HasSuffix(component, "'"), strings.HasSuffix(component, "h"), strings.HasSuffix(component, "H"):
			hardened = true
			component = component[:len(component)-1]
		}

		index, err := strconv.ParseUint(component, 10, 32)
		if err != nil || index >= uint64(HardenedKeyStart) {
			return nil, ErrInvalidPath.Wrapf("component %q in %q", part, path)
		}
		if hardened {
			index += uint64(HardenedKeyStart)
		}
		indices = append(indices, uint32(index))
	}
	return indices, nil
}

// FormatPath renders child indices back into the canonical "m/..." notation,
// using "'" for hardened components. It is the inverse of ParsePath up to
// hardened-marker and leading-"m" spelling.
func FormatPath(indices []uint32) string {
	var b strings.Builder
	b.WriteByte('m')
	for _, index := range indices {
		b.WriteByte('/')
		if index >= HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedKeyStart), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return b.String()
}
