package version_test

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/ironsmile/coverlookup/src/version"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	version.Print(&buf)

	out := buf.String()
	if !strings.Contains(out, "coverlookup "+version.Version) {
		t.Errorf("version missing from output: %s", out)
	}
	if !strings.Contains(out, runtime.Version()) {
		t.Errorf("go version missing from output: %s", out)
	}
}
