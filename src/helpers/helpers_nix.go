//go:build !windows

package helpers

// ProjectDir is the name of the coverlookup directory in the user's config
// directory.
const ProjectDir = "coverlookup"
