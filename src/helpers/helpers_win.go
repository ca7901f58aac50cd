//go:build windows

package helpers

// ProjectDir is the name of the coverlookup directory in %AppData%.
const ProjectDir = "CoverLookup"
