package filesize

import (
	"fmt"
	"strings"
)

const defaultPattern = "%.1f"

// SelectDenomination picks the denomination that keeps the formatted value
// below the system base. It saturates at the largest unit and never fails.
func SelectDenomination(byteCount uint64, system UnitSystem) Denomination {
	candidates := system.denominations()
	for _, candidate := range candidates {
		if float64(byteCount)/float64(candidate.ScaleFactor) < system.base() {
			return candidate
		}
	}
	return candidates[len(candidates)-1]
}

// FormatSize renders byteCount with one decimal place, an abbreviated unit
// label and the decimal unit system.
func FormatSize(byteCount uint64) string {
	return FormatSizeSystem(defaultPattern, byteCount, Decimal, true)
}

// FormatSizeSystem renders byteCount in the denomination SelectDenomination
// picks for the given system.
func FormatSizeSystem(pattern string, byteCount uint64, system UnitSystem, abbreviated bool) string {
	return FormatSizeIn(pattern, byteCount, SelectDenomination(byteCount, system), abbreviated)
}

// FormatSizeIn renders byteCount in an explicit denomination. The pattern is
// a printf-style float conversion, e.g. "%.1f". The long unit name is
// pluralized unless the rendered number is exactly "1"; the rendered string
// decides, so a value rounding to "1" stays singular.
func FormatSizeIn(pattern string, byteCount uint64, denomination Denomination, abbreviated bool) string {
	value := float64(byteCount) / float64(denomination.ScaleFactor)
	rendered := strings.TrimSpace(fmt.Sprintf(pattern, value))

	if abbreviated {
		return rendered + " " + denomination.Abbreviation
	}

	label := denomination.Name
	if rendered != "1" {
		label += "s"
	}
	return rendered + " " + label
}
