package mem

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// For capacity
const (
	_  = iota
	KB = 1 << (10 * iota)
	MB
	GB
	TB
)

var sizeUnits = []struct {
	suffix string
	unit   uint64
}{
	{"kib", KB},
	{"mib", MB},
	{"gib", GB},
	{"tib", TB},
	{"kb", KB},
	{"mb", MB},
	{"gb", GB},
	{"tb", TB},
	{"k", KB},
	{"m", MB},
	{"g", GB},
	{"t", TB},
	{"b", 1},
}

// ParseByteSize parses a memory size string such as "512MB", "32kB" or
// "1GiB". Decimal-looking units are binary multiples, so "1kB" is 1024 bytes.
// A bare number is a byte count.
func ParseByteSize(s string) (uint64, error) {
	str := strings.ToLower(strings.TrimSpace(s))

	unit := uint64(1)
	for _, u := range sizeUnits {
		if strings.HasSuffix(str, u.suffix) {
			str = strings.TrimSuffix(str, u.suffix)
			unit = u.unit

			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	bytes := v * float64(unit)
	if v <= 0 || bytes >= math.MaxUint64 || bytes != math.Trunc(bytes) {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	return uint64(bytes), nil
}

// FormatByteSize prints a byte count using the largest binary unit that
// divides it.
func FormatByteSize(size uint64) string {
	switch {
	case size == 0:
		return "0B"
	case size%TB == 0:
		return fmt.Sprintf("%dTB", size/TB)
	case size%GB == 0:
		return fmt.Sprintf("%dGB", size/GB)
	case size%MB == 0:
		return fmt.Sprintf("%dMB", size/MB)
	case size%KB == 0:
		return fmt.Sprintf("%dkB", size/KB)
	default:
		return fmt.Sprintf("%dB", size)
	}
}
