package sim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// VTimeInSec defines the time in the simulated space in the unit of second
type VTimeInSec float64

// Defines the unit of time
const (
	Sec VTimeInSec = 1
	MS  VTimeInSec = 1e-3
	US  VTimeInSec = 1e-6
	NS  VTimeInSec = 1e-9
	PS  VTimeInSec = 1e-12
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

func (f Freq) String() string {
	switch {
	case f >= GHz && math.Mod(float64(f), float64(GHz)) == 0:
		return fmt.Sprintf("%gGHz", float64(f/GHz))
	case f >= MHz && math.Mod(float64(f), float64(MHz)) == 0:
		return fmt.Sprintf("%gMHz", float64(f/MHz))
	case f >= KHz && math.Mod(float64(f), float64(KHz)) == 0:
		return fmt.Sprintf("%gkHz", float64(f/KHz))
	default:
		return fmt.Sprintf("%gHz", float64(f))
	}
}

func (t VTimeInSec) String() string {
	switch {
	case t == 0:
		return "0s"
	case t < NS:
		return fmt.Sprintf("%gps", math.Round(float64(t/PS)*1e3)/1e3)
	case t < US:
		return fmt.Sprintf("%gns", math.Round(float64(t/NS)*1e3)/1e3)
	case t < MS:
		return fmt.Sprintf("%gus", math.Round(float64(t/US)*1e3)/1e3)
	case t < Sec:
		return fmt.Sprintf("%gms", math.Round(float64(t/MS)*1e3)/1e3)
	default:
		return fmt.Sprintf("%gs", float64(t))
	}
}

var freqUnits = []struct {
	suffix string
	unit   Freq
}{
	{"ghz", GHz},
	{"mhz", MHz},
	{"khz", KHz},
	{"hz", Hz},
}

// ParseFreq parses a frequency string such as "2GHz" or "800MHz". A bare
// number is taken as Hz.
func ParseFreq(s string) (Freq, error) {
	str := strings.ToLower(strings.TrimSpace(s))

	unit := Hz
	for _, u := range freqUnits {
		if strings.HasSuffix(str, u.suffix) {
			str = strings.TrimSuffix(str, u.suffix)
			unit = u.unit

			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid frequency %q", s)
	}

	return Freq(v) * unit, nil
}

var timeUnits = []struct {
	suffix string
	unit   VTimeInSec
}{
	{"ps", PS},
	{"ns", NS},
	{"us", US},
	{"ms", MS},
	{"s", Sec},
}

// ParseTime parses a duration string such as "50ns" or "1us". A bare number
// is taken as seconds.
func ParseTime(s string) (VTimeInSec, error) {
	str := strings.ToLower(strings.TrimSpace(s))

	unit := Sec
	for _, u := range timeUnits {
		if strings.HasSuffix(str, u.suffix) {
			str = strings.TrimSuffix(str, u.suffix)
			unit = u.unit

			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil || v < 0 || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	return VTimeInSec(v) * unit, nil
}
