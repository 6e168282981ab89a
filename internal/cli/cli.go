package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/autobrr/go-filesize/internal/filesize"
)

const (
	exitOK    = 0
	exitError = 1
)

type Options struct {
	Humanize bool
	Binary   bool
	Long     bool
	Pattern  string
	Unit     string
	Output   string
}

type Result struct {
	Input     string
	ByteCount uint64
	Rendered  string
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return exitError
	}

	program := programName(args[0])
	opts := Options{Pattern: "%.1f"}
	expressions := make([]string, 0)

	for i := 1; i < len(args); i++ {
		original := args[i]
		normalized := normalizeArg(original)

		switch {
		case normalized == "--format" || normalized == "-f":
			opts.Humanize = true
		case normalized == "--binary" || normalized == "-b":
			opts.Binary = true
		case normalized == "--long" || normalized == "-l":
			opts.Long = true
		case normalized == "--help" || normalized == "-h":
			Help(program, stdout)
			return exitOK
		case normalized == "--version":
			Version(stdout)
			return exitOK
		case strings.HasPrefix(normalized, "--pattern"):
			if value, ok := valueAfterEqual(original); ok {
				opts.Pattern = value
			} else {
				HelpPattern(program, stdout)
				return exitError
			}
		case strings.HasPrefix(normalized, "--unit"):
			if value, ok := valueAfterEqual(original); ok {
				opts.Unit = value
				opts.Humanize = true
			}
		case strings.HasPrefix(normalized, "--output"):
			if value, ok := valueAfterEqual(original); ok {
				opts.Output = value
			}
		case strings.HasPrefix(normalized, "--"):
			if normalized == "--" {
				continue
			}
			fmt.Fprintf(stderr, "unknown option: %s\n", original)
			return exitError
		default:
			expressions = append(expressions, original)
		}
	}

	if len(expressions) == 0 {
		return Usage(program, stdout)
	}

	output, okCount, err := runCore(opts, expressions, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	if output != "" {
		fmt.Fprint(stdout, output)
	}

	if okCount == len(expressions) {
		return exitOK
	}

	return exitError
}

func runCore(opts Options, expressions []string, stderr io.Writer) (string, int, error) {
	if opts.Output != "" && !strings.EqualFold(opts.Output, "Text") && !strings.EqualFold(opts.Output, "JSON") {
		return "", 0, fmt.Errorf("output format not implemented: %s", opts.Output)
	}

	var unit filesize.Denomination
	haveUnit := opts.Unit != ""
	if haveUnit {
		resolved, err := filesize.ResolveDenomination(opts.Unit)
		if err != nil {
			return "", 0, err
		}
		unit = resolved
	}

	system := filesize.Decimal
	if opts.Binary {
		system = filesize.Binary
	}

	results := make([]Result, 0, len(expressions))
	for _, expression := range expressions {
		byteCount, err := parseExpression(expression)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			continue
		}

		rendered := strconv.FormatUint(byteCount, 10)
		if opts.Humanize {
			if haveUnit {
				rendered = filesize.FormatSizeIn(opts.Pattern, byteCount, unit, !opts.Long)
			} else {
				rendered = filesize.FormatSizeSystem(opts.Pattern, byteCount, system, !opts.Long)
			}
		}

		results = append(results, Result{Input: expression, ByteCount: byteCount, Rendered: rendered})
	}

	if strings.EqualFold(opts.Output, "JSON") {
		return RenderJSON(results), len(results), nil
	}
	return RenderText(results), len(results), nil
}

// parseExpression accepts either a bare byte count or any expression the
// size parser understands.
func parseExpression(expression string) (uint64, error) {
	if byteCount, err := strconv.ParseUint(strings.TrimSpace(expression), 10, 64); err == nil {
		return byteCount, nil
	}
	return filesize.ParseSize(expression)
}

func programName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func normalizeArg(arg string) string {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		eq = len(arg)
	}

	lower := strings.ToLower(arg[:eq])
	return lower + arg[eq:]
}

func valueAfterEqual(arg string) (string, bool) {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		return "", false
	}
	return arg[eq+1:], true
}
