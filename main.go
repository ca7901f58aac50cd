// Command coverlookup finds album cover art using MusicBrainz and the Cover Art
// Archive.
//
// This file is only here to make installing with go install easier.
// At the moment I don't see any other way to stash my source in the src directory
// instead of dumping it in the project root.
package main

import "github.com/ironsmile/coverlookup/src"

func main() {
	src.Main()
}
