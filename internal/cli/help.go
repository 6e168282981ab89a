package cli

import (
	"fmt"
	"io"
)

func Help(program string, stdout io.Writer) {
	Version(stdout)
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] Size1 [Size2...]\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Sizes are expressions like \"45 gigabytes\", \"2MB\", \"0.5 kib\" or a bare byte count.")
	fmt.Fprintln(stdout, "Each size is printed as a raw byte count, or human-readable with --format.")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Options:")
	fmt.Fprintln(stdout, "--Help, -h")
	fmt.Fprintln(stdout, "                    Display this help and exit")
	fmt.Fprintln(stdout, "--Version")
	fmt.Fprintln(stdout, "                    Display version information and exit")
	fmt.Fprintln(stdout, "--Format, -f")
	fmt.Fprintln(stdout, "                    Print human-readable sizes instead of byte counts")
	fmt.Fprintln(stdout, "--Binary, -b")
	fmt.Fprintln(stdout, "                    Use binary units (KiB, MiB, ...) when formatting")
	fmt.Fprintln(stdout, "--Long, -l")
	fmt.Fprintln(stdout, "                    Use full unit names (Kilobytes, ...) instead of abbreviations")
	fmt.Fprintln(stdout, "--Pattern=...")
	fmt.Fprintf(stdout, "                    printf-style float pattern for the number (default %%.1f)\n")
	fmt.Fprintln(stdout, "--Unit=...")
	fmt.Fprintln(stdout, "                    Force a denomination (e.g. --Unit=KiB) instead of auto-selecting")
	fmt.Fprintln(stdout, "--Output=TEXT|JSON")
	fmt.Fprintln(stdout, "                    Select output format")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "completion           Generate the autocompletion script for the specified shell")
	fmt.Fprintln(stdout, "help                 Help about any command")
	fmt.Fprintln(stdout, "version              Print go-filesize version information")
	fmt.Fprintln(stdout, "update               Update filesize to latest version (release builds only)")
}

func HelpNothing(program string, stdout io.Writer) {
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] Size1 [Size2...]\"\n", program)
	fmt.Fprintf(stdout, "\"%s --help\" for displaying more information\n", program)
}

func HelpPattern(program string, stdout io.Writer) {
	fmt.Fprintln(stdout, "--Pattern=...  Select the numeric format")
	fmt.Fprintf(stdout, "Usage: \"%s --Format --Pattern=%%.2f 92874\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintf(stdout, "The pattern is a single printf-style float conversion, e.g. %%.0f or %%.2f.\n")
}

func Usage(program string, stdout io.Writer) int {
	HelpNothing(program, stdout)
	return exitError
}
