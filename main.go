// A command line client for the MusicBrainz music encyclopedia.
//
// This file is only here to make installing with go install easier.
// The source is in the src directory instead of being dumped in the project root.
package main

import (
	"github.com/ironsmile/brainz/src"
)

func main() {
	src.Main()
}
