// Package helpers contains few helpers functions which are used throughout the project.
package helpers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
)

// ProjectUserPath returns the directory in the user's home where the brainz
// configuration and logs are stored by default.
func ProjectUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding the home directory: %w", err)
	}

	return filepath.Join(home, BrainzDir), nil
}

// AbsolutePath returns `path` if it is absolute. Otherwise it is joined to `root`.
func AbsolutePath(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// SetLogsFile sets the output of the standard logger to the file at `logFilePath`.
// The file and its directory are created when missing. Logs are appended to it.
func SetLogsFile(fs afero.Fs, logFilePath string) error {
	if err := fs.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	logFile, err := fs.OpenFile(
		logFilePath,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0640,
	)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(logFile)
	return nil
}

// The patterns for track numbers in file names, in the order they are tried.
// Every pattern has the track number as its first submatch.
var trackNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^#\d+_(\d{1,3})_`),
	regexp.MustCompile(`^(\d{1,3})[\s.\-_)]+\S`),
	regexp.MustCompile(` - (\d{1,3}) - `),
	regexp.MustCompile(` - (\d{1,3})_`),
	regexp.MustCompile(`\((\d{1,3})\)`),
	regexp.MustCompile(`\[(\d{1,3})\]`),
	regexp.MustCompile(`-(\d{1,3})-`),
}

// GuessTrackNumber tries to find the track number in the file name of `path`.
// Zero is returned when no number could be found with high confidence.
func GuessTrackNumber(path string) int {
	name := filepath.Base(path)
	name = name[:len(name)-len(filepath.Ext(name))]

	for _, pattern := range trackNumberPatterns {
		match := pattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}

		num, err := strconv.Atoi(match[1])
		if err != nil {
			return 0
		}
		return num
	}

	return 0
}
