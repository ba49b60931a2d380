package art

import (
	"errors"

	"github.com/ironsmile/brainz/src/gate"
	cca "gopkg.in/mineo/gocaa.v1"
)

// ErrImageNotFound is returned by GetFrontImage when the release has no front
// cover in the Cover Art Archive.
var ErrImageNotFound = errors.New("image not found")

// The image sizes the Cover Art Archive has for every image. They are arguments to
// GetFrontImage and not widths in pixels.
const (
	SizeSmall    = cca.ImageSize250
	SizeLarge    = cca.ImageSize500
	SizeHuge     = cca.ImageSize1200
	SizeOriginal = cca.ImageSizeOriginal
)

// Client gets front covers from the Cover Art Archive. It shares the request
// pacing of the musicbrainz.Client by acquiring the same gate before every request.
// It is safe for concurrent use.
type Client struct {
	gate      *gate.Gate
	caaClient CAAClient
}

// NewClient returns fully configured Client. The `useragent` is used for representing
// itself when contacting the Cover Art Archive, the same way as with MusicBrainz.
func NewClient(useragent string, g *gate.Gate) *Client {
	return &Client{
		gate:      g,
		caaClient: cca.NewCAAClient(useragent),
	}
}

// SizeFor returns the smallest Cover Art Archive image size which is at least
// `width` pixels wide. Zero or negative width means the original image.
func SizeFor(width int) int {
	switch {
	case width <= 0:
		return SizeOriginal
	case width <= 250:
		return SizeSmall
	case width <= 500:
		return SizeLarge
	case width <= 1200:
		return SizeHuge
	default:
		return SizeOriginal
	}
}
