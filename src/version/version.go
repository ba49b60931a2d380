/*
Package version provides version information and utilities.
*/
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of brainz. It is set during building.
var Version = "dev-unreleased"

// Name is the name of the program as it introduces itself to MusicBrainz.
const Name = "brainz"

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "brainz MusicBrainz client %s\n", Version)
	fmt.Fprintf(out, "Build with %s\n", runtime.Version())
}
