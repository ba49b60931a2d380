package src

import (
	"context"
	"errors"
	"strings"

	"github.com/ironsmile/brainz/src/art"
	"github.com/ironsmile/brainz/src/library"
	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/ironsmile/brainz/src/scaler"
)

// Process exit statuses.
const (
	exitOK                 = 0
	exitFailure            = 1
	exitUsage              = 2
	exitNotFound           = 3
	exitTransport          = 4
	exitServiceUnavailable = 5
	exitRequestFailed      = 6
	exitMalformedResponse  = 7
	exitInterrupted        = 130
)

// usageError is a problem with the command line itself.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

// exitCode returns the process exit status for `err`. Every kind of failure has
// its own status so that scripts could tell them apart.
func exitCode(err error) int {
	var usageErr usageError

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.As(err, &usageErr), errors.Is(err, musicbrainz.ErrInvalidQuery),
		errors.Is(err, scaler.ErrInvalidWidth):
		return exitUsage
	case errors.Is(err, musicbrainz.ErrNotFound), errors.Is(err, art.ErrImageNotFound):
		return exitNotFound
	case errors.Is(err, musicbrainz.ErrTransport):
		return exitTransport
	case errors.Is(err, musicbrainz.ErrServiceUnavailable):
		return exitServiceUnavailable
	case errors.Is(err, musicbrainz.ErrRequestFailed):
		return exitRequestFailed
	case errors.Is(err, musicbrainz.ErrMalformedResponse):
		return exitMalformedResponse
	case isCobraUsageError(err):
		return exitUsage
	default:
		return exitFailure
	}
}

// isCobraUsageError recognizes the errors cobra returns for unknown commands and
// flags. cobra has no error types for them.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// describeError returns a prefix for the error message which tells the user what
// kind of failure happened.
func describeError(err error) string {
	switch exitCode(err) {
	case exitInterrupted:
		return "Interrupted"
	case exitTransport:
		return "Could not reach MusicBrainz"
	case exitServiceUnavailable:
		return "MusicBrainz is unavailable, try again later"
	case exitNotFound:
		return "Not found"
	case exitUsage:
		return "Invalid arguments"
	}

	if errors.Is(err, library.ErrNoTags) {
		return "Cannot identify file"
	}
	return "Error"
}
