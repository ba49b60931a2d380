package library

import (
	"errors"
	"fmt"
)

// ErrNoTags is returned when a media file has no metadata tags which could be read.
var ErrNoTags = errors.New("no tags found")

// ErrorNotSupported is returned for files which are not in one of the supported
// media formats.
type ErrorNotSupported struct {
	path string
}

// implements error interface
func (err ErrorNotSupported) Error() string {
	return fmt.Sprintf("%s is not a supported media file", err.path)
}
