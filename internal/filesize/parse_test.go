package filesize

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  uint64
	}{
		{name: "single byte", input: "1 b", want: 1},
		{name: "kilobytes", input: "2 kb", want: 2000},
		{name: "kibibytes", input: "1 kib", want: 1024},
		{name: "fractional megabytes", input: "0.5 mb", want: 500_000},
		{name: "fraction truncates to zero", input: "0.25 bytes", want: 0},
		{name: "no whitespace", input: "25gb", want: 25_000_000_000},
		{name: "fractional tebibytes", input: "0.125 tib", want: 137_438_953_472},
		{name: "upper case", input: "2MB", want: 2_000_000},
		{name: "full name", input: "45 gigabytes", want: 45_000_000_000},
		{name: "singular full name", input: "3 terabyte", want: 3_000_000_000_000},
		{name: "embedded in text", input: "the backup is 3.5 gb today", want: 3_500_000_000},
		{name: "leftmost match wins", input: "1 kb then 2 mb", want: 1000},
		{name: "zero", input: "0 b", want: 0},
		{name: "leading dotless fraction", input: ".5 kb", want: 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSize(tc.input)
			if err != nil {
				t.Fatalf("ParseSize(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseSize(%q)=%d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, input := range []string{"", "not a filesize", "92874", "mb", "one kilobyte"} {
		_, err := ParseSize(input)
		if !errors.Is(err, ErrNoFilesizePattern) {
			t.Fatalf("ParseSize(%q) err=%v, want ErrNoFilesizePattern", input, err)
		}
	}
}

// Every token the scanner can produce must survive resolution, otherwise a
// resolver error could escape from ParseSize.
func TestScanTokensResolve(t *testing.T) {
	for _, token := range scanTokens {
		if _, err := ResolveDenomination(token); err != nil {
			t.Fatalf("scan token %q does not resolve: %v", token, err)
		}
	}
}

func TestScanTokenPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  uint64
	}{
		{input: "1 kilobyte", want: 1000},
		{input: "1 kibibyte", want: 1024},
		{input: "1 byte", want: 1},
		{input: "1 kib", want: 1024},
		{input: "1 kb", want: 1000},
	}

	for _, tc := range cases {
		got, err := ParseSize(tc.input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSize(%q)=%d, want %d", tc.input, got, tc.want)
		}
	}
}
