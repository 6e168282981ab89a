package filesize_test

import (
	"testing"

	"github.com/autobrr/go-filesize/pkg/filesize"
)

func TestProxyAPI(t *testing.T) {
	// Smoke test to ensure the proxy can be imported and types are consistent
	var _ filesize.Denomination
	var _ filesize.UnitSystem = filesize.Decimal

	bytes, err := filesize.ParseSize("2 kb")
	if err != nil {
		t.Fatalf("ParseSize returned error: %v", err)
	}
	if bytes != 2000 {
		t.Fatalf("ParseSize(\"2 kb\")=%d, want 2000", bytes)
	}
	if got := filesize.FormatSize(bytes); got != "2.0 KB" {
		t.Fatalf("FormatSize(2000)=%q, want \"2.0 KB\"", got)
	}
}
