package filesize

import (
	"errors"
	"fmt"
	"strings"
)

// Denomination is a named file-size unit with its scale factor in bytes.
type Denomination struct {
	ScaleFactor  uint64
	Abbreviation string
	Name         string
}

var (
	Byte     = Denomination{ScaleFactor: 1, Abbreviation: "B", Name: "Byte"}
	Kilobyte = Denomination{ScaleFactor: 1000, Abbreviation: "KB", Name: "Kilobyte"}
	Megabyte = Denomination{ScaleFactor: 1000 * 1000, Abbreviation: "MB", Name: "Megabyte"}
	Gigabyte = Denomination{ScaleFactor: 1000 * 1000 * 1000, Abbreviation: "GB", Name: "Gigabyte"}
	Terabyte = Denomination{ScaleFactor: 1000 * 1000 * 1000 * 1000, Abbreviation: "TB", Name: "Terabyte"}
	Kibibyte = Denomination{ScaleFactor: 1024, Abbreviation: "KiB", Name: "Kibibyte"}
	Mebibyte = Denomination{ScaleFactor: 1024 * 1024, Abbreviation: "MiB", Name: "Mebibyte"}
	Gibibyte = Denomination{ScaleFactor: 1024 * 1024 * 1024, Abbreviation: "GiB", Name: "Gibibyte"}
	Tebibyte = Denomination{ScaleFactor: 1024 * 1024 * 1024 * 1024, Abbreviation: "TiB", Name: "Tebibyte"}
)

// Denominations holds every recognized denomination in canonical order.
// Resolution takes the first prefix match, so the order is observable
// behavior, not just presentation.
var Denominations = []Denomination{
	Byte, Kilobyte, Megabyte, Gigabyte, Terabyte,
	Kibibyte, Mebibyte, Gibibyte, Tebibyte,
}

type UnitSystem int

const (
	Decimal UnitSystem = iota
	Binary
)

func (s UnitSystem) String() string {
	if s == Binary {
		return "Binary"
	}
	return "Decimal"
}

func (s UnitSystem) base() float64 {
	if s == Binary {
		return 1024
	}
	return 1000
}

func (s UnitSystem) denominations() []Denomination {
	if s == Binary {
		return []Denomination{Byte, Kibibyte, Mebibyte, Gibibyte, Tebibyte}
	}
	return []Denomination{Byte, Kilobyte, Megabyte, Gigabyte, Terabyte}
}

var ErrUnresolvableDenomination = errors.New("unresolvable denomination")

// ResolveDenomination maps a free-form unit token to a Denomination.
// Matching is case-insensitive and prefix-based, so plural forms such as
// "kilobytes" resolve through their singular name.
func ResolveDenomination(token string) (Denomination, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	for _, denomination := range Denominations {
		if strings.HasPrefix(normalized, strings.ToLower(denomination.Abbreviation)) ||
			strings.HasPrefix(normalized, strings.ToLower(denomination.Name)) {
			return denomination, nil
		}
	}
	return Denomination{}, fmt.Errorf("%w: %q", ErrUnresolvableDenomination, token)
}
