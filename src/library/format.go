package library

import (
	"path/filepath"
	"strings"
)

// supportedFormats are the file extensions for which tags could be read.
var supportedFormats = map[string]struct{}{
	"mp3":  {},
	"m4a":  {},
	"m4b":  {},
	"m4p":  {},
	"alac": {},
	"flac": {},
	"ogg":  {},
	"oga":  {},
	"dsf":  {},
}

func mediaFormatFromFileName(path string) string {
	format := strings.TrimLeft(filepath.Ext(path), ".")
	return strings.ToLower(format)
}

// IsSupportedFormat returns true when `path` looks like a media file which tags
// could be read from, judging by its extension.
func IsSupportedFormat(path string) bool {
	_, ok := supportedFormats[mediaFormatFromFileName(path)]
	return ok
}
