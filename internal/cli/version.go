package cli

import (
	"fmt"
	"io"

	"github.com/autobrr/go-filesize/internal/filesize"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "go-filesize, %s\n", filesize.FormatVersion(appVersion))
}
