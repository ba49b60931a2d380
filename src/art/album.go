package art

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ironsmile/brainz/src/musicbrainz"
	cca "gopkg.in/mineo/gocaa.v1"
)

// Image is a cover image.
type Image struct {
	Data     []byte
	Mimetype string
}

// GetFrontImage returns the front cover of the release with ID `releaseMBID` in
// `size`. The size is one of the Size* constants, see SizeFor.
//
// Failures are classified the same way as the ones of musicbrainz.Client. With the
// exception of a missing image which is ErrImageNotFound.
func (c *Client) GetFrontImage(
	ctx context.Context,
	releaseMBID string,
	size int,
) (*Image, error) {
	if !musicbrainz.IsMBID(releaseMBID) {
		return nil, fmt.Errorf("%w: %q is not a valid release MBID",
			musicbrainz.ErrInvalidQuery, releaseMBID)
	}

	if err := c.gate.Acquire(ctx); err != nil {
		return nil, err
	}

	img, err := c.getReleaseFront(releaseMBID, size)
	if err == nil {
		log.Printf("Downloaded front image for release %s\n", releaseMBID)
		return &Image{Data: img.Data, Mimetype: img.Mimetype}, nil
	}

	var httpErr cca.HTTPError
	if !errors.As(err, &httpErr) {
		return nil, musicbrainz.TransportError("", err)
	}

	if httpErr.StatusCode == http.StatusNotFound {
		return nil, ErrImageNotFound
	}

	var caaURL string
	if httpErr.URL != nil {
		caaURL = httpErr.URL.String()
	}

	return nil, musicbrainz.StatusError(httpErr.StatusCode, caaURL, "")
}

// getReleaseFront calls the CAAClient. The gocaa client dereferences the missing
// response on connection errors, so panics are turned into errors here.
func (c *Client) getReleaseFront(
	releaseMBID string,
	size int,
) (img cca.CoverArtImage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Cover Art Archive request failed: %v", r)
		}
	}()

	return c.caaClient.GetReleaseFront(cca.StringToUUID(releaseMBID), size)
}
