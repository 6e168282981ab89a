package filesize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrNoFilesizePattern = errors.New("no filesize pattern found")

// scanTokens lists every unit token the parser recognizes. Longer tokens
// come first: Go regexp alternation is leftmost-first, and "b" would
// otherwise win against the tail of "kilobyte".
var scanTokens = []string{
	"kilobyte", "kibibyte",
	"megabyte", "mebibyte",
	"gigabyte", "gibibyte",
	"terabyte", "tebibyte",
	"byte",
	"kb", "kib",
	"mb", "mib",
	"gb", "gib",
	"tb", "tib",
	"b",
}

var sizePattern = regexp.MustCompile(`(\d*\.\d+|\d+)\s*(` + strings.Join(scanTokens, "|") + `)`)

// ParseSize extracts the leftmost "number + unit" expression from text and
// returns it as a byte count. Fractional results truncate toward zero.
func ParseSize(text string) (uint64, error) {
	match := sizePattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return 0, fmt.Errorf("%w in %q", ErrNoFilesizePattern, text)
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w in %q", ErrNoFilesizePattern, text)
	}

	denomination, err := ResolveDenomination(match[2])
	if err != nil {
		return 0, err
	}

	return uint64(value * float64(denomination.ScaleFactor)), nil
}
