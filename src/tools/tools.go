//go:build tools

// Package tools pins the versions of the programs run by `go generate`. It is
// never built into the binary.
package tools

import (
	// Imported anonymously so that `go mod` keeps track of them.
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
