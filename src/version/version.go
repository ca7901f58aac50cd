/*
Package version provides version information and utilities.
*/
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of coverlookup. It is set during building
// with -ldflags "-X github.com/ironsmile/coverlookup/src/version.Version=...".
var Version = "dev-unreleased"

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "coverlookup %s\n", Version)
	fmt.Fprintf(out, "Build with %s\n", runtime.Version())
}
