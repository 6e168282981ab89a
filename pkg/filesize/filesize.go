package filesize

import (
	"github.com/autobrr/go-filesize/internal/filesize"
)

// Types
type Denomination = filesize.Denomination
type UnitSystem = filesize.UnitSystem

// Constants
const (
	Decimal = filesize.Decimal
	Binary  = filesize.Binary
)

// Denominations
var (
	Byte     = filesize.Byte
	Kilobyte = filesize.Kilobyte
	Megabyte = filesize.Megabyte
	Gigabyte = filesize.Gigabyte
	Terabyte = filesize.Terabyte
	Kibibyte = filesize.Kibibyte
	Mebibyte = filesize.Mebibyte
	Gibibyte = filesize.Gibibyte
	Tebibyte = filesize.Tebibyte

	Denominations = filesize.Denominations
)

// Errors
var (
	ErrUnresolvableDenomination = filesize.ErrUnresolvableDenomination
	ErrNoFilesizePattern        = filesize.ErrNoFilesizePattern
)

// Functions
func ParseSize(text string) (uint64, error) {
	return filesize.ParseSize(text)
}

func ResolveDenomination(token string) (Denomination, error) {
	return filesize.ResolveDenomination(token)
}

func SelectDenomination(byteCount uint64, system UnitSystem) Denomination {
	return filesize.SelectDenomination(byteCount, system)
}

func FormatSize(byteCount uint64) string {
	return filesize.FormatSize(byteCount)
}

func FormatSizeSystem(pattern string, byteCount uint64, system UnitSystem, abbreviated bool) string {
	return filesize.FormatSizeSystem(pattern, byteCount, system, abbreviated)
}

func FormatSizeIn(pattern string, byteCount uint64, denomination Denomination, abbreviated bool) string {
	return filesize.FormatSizeIn(pattern, byteCount, denomination, abbreviated)
}

func FormatVersion(version string) string {
	return filesize.FormatVersion(version)
}

func SetAppVersion(version string) {
	filesize.SetAppVersion(version)
}
