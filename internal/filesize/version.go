package filesize

import "strings"

const (
	AppName = "go-filesize"
	AppURL  = "https://github.com/autobrr/go-filesize"
)

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

func FormatVersion(version string) string {
	if version == "" {
		version = AppVersion
	}
	return "v" + strings.TrimPrefix(version, "v")
}
