package art_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/ironsmile/brainz/src/art"
	"github.com/ironsmile/brainz/src/art/artfakes"
	"github.com/ironsmile/brainz/src/assert"
	"github.com/ironsmile/brainz/src/gate"
	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/pborman/uuid"
	caa "gopkg.in/mineo/gocaa.v1"
)

const (
	testAgent    = "brainz-testing/1.0 (testing@example.com)"
	okComputerID = "0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29"
	noImageID    = "6518fd52-58bf-44a3-8150-00e7c3ffcae5"
)

// TestClientGetFrontImage checks the golden path for getting a front cover image
// for a release.
func TestClientGetFrontImage(t *testing.T) {
	releaseImage := []byte("image contents")

	c := art.NewClient(testAgent, gate.New(0))
	caaClient := &artfakes.FakeCAAClient{
		GetReleaseFrontStub: func(mbid uuid.UUID, size int) (caa.CoverArtImage, error) {
			if !uuid.Equal(mbid, caa.StringToUUID(okComputerID)) {
				return caa.CoverArtImage{}, caa.HTTPError{
					StatusCode: http.StatusNotFound,
					URL:        &url.URL{},
				}
			}

			imgCopy := make([]byte, len(releaseImage))
			copy(imgCopy, releaseImage)

			return caa.CoverArtImage{
				Data:     imgCopy,
				Mimetype: "image/jpeg",
			}, nil
		},
	}
	c.SetCAAClient(caaClient)

	img, err := c.GetFrontImage(context.Background(), okComputerID, art.SizeLarge)
	assert.NilErr(t, err)

	if !bytes.Equal(releaseImage, img.Data) {
		t.Errorf(
			"release image was not the same, expected `%s` but got `%s`",
			releaseImage,
			img.Data,
		)
	}
	assert.Equal(t, "image/jpeg", img.Mimetype)

	if caaClient.GetReleaseFrontCallCount() != 1 {
		t.Fatalf(
			"expected 1 call to the CoverArt image server but got %d",
			caaClient.GetReleaseFrontCallCount(),
		)
	}

	_, size := caaClient.GetReleaseFrontArgsForCall(0)
	assert.Equal(t, art.SizeLarge, size)

	_, err = c.GetFrontImage(context.Background(), noImageID, art.SizeLarge)
	assert.ErrorIs(t, err, art.ErrImageNotFound)
}

// TestClientGetFrontImageErrors checks that the Cover Art Archive failures are
// classified the same way as the MusicBrainz ones.
func TestClientGetFrontImageErrors(t *testing.T) {
	tests := []struct {
		desc     string
		caaError error
		expected error
	}{
		{
			desc: "not found",
			caaError: caa.HTTPError{
				StatusCode: http.StatusNotFound,
				URL:        &url.URL{Host: "coverartarchive.org"},
			},
			expected: art.ErrImageNotFound,
		},
		{
			desc: "service unavailable",
			caaError: caa.HTTPError{
				StatusCode: http.StatusServiceUnavailable,
				URL:        &url.URL{Host: "coverartarchive.org"},
			},
			expected: musicbrainz.ErrServiceUnavailable,
		},
		{
			desc: "bad gateway",
			caaError: caa.HTTPError{
				StatusCode: http.StatusBadGateway,
			},
			expected: musicbrainz.ErrRequestFailed,
		},
		{
			desc:     "connection error",
			caaError: errors.New("connection refused"),
			expected: musicbrainz.ErrTransport,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			c := art.NewClient(testAgent, gate.New(0))
			caaClient := &artfakes.FakeCAAClient{}
			caaClient.GetReleaseFrontReturns(caa.CoverArtImage{}, test.caaError)
			c.SetCAAClient(caaClient)

			_, err := c.GetFrontImage(context.Background(), okComputerID, art.SizeSmall)
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

// TestClientGetFrontImagePanic makes sure that a panicking Cover Art Archive client
// is reported as a transport error.
func TestClientGetFrontImagePanic(t *testing.T) {
	c := art.NewClient(testAgent, gate.New(0))
	c.SetCAAClient(&artfakes.FakeCAAClient{
		GetReleaseFrontStub: func(uuid.UUID, int) (caa.CoverArtImage, error) {
			var resp *http.Response
			return caa.CoverArtImage{}, errors.New(resp.Status)
		},
	})

	_, err := c.GetFrontImage(context.Background(), okComputerID, art.SizeSmall)
	assert.ErrorIs(t, err, musicbrainz.ErrTransport)
}

// TestClientGetFrontImageInvalidMBID checks that nothing is requested for invalid
// release IDs.
func TestClientGetFrontImageInvalidMBID(t *testing.T) {
	c := art.NewClient(testAgent, gate.New(0))
	caaClient := &artfakes.FakeCAAClient{}
	c.SetCAAClient(caaClient)

	for _, mbid := range []string{"", "OK Computer", "z74b1b7f-71a5-4011-9441-d0b5e4122711"} {
		_, err := c.GetFrontImage(context.Background(), mbid, art.SizeSmall)
		assert.ErrorIs(t, err, musicbrainz.ErrInvalidQuery)
	}

	assert.Equal(t, 0, caaClient.GetReleaseFrontCallCount())
}

// TestClientGetFrontImageUsesTheGate checks that requests to the Cover Art Archive
// are paced by the gate.
func TestClientGetFrontImageUsesTheGate(t *testing.T) {
	const interval = 30 * time.Millisecond

	g := gate.New(interval)
	c := art.NewClient(testAgent, g)
	caaClient := &artfakes.FakeCAAClient{}
	caaClient.GetReleaseFrontReturns(caa.CoverArtImage{Data: []byte("img")}, nil)
	c.SetCAAClient(caaClient)

	ctx := context.Background()
	_, err := c.GetFrontImage(ctx, okComputerID, art.SizeSmall)
	assert.NilErr(t, err)
	first := g.Last()

	_, err = c.GetFrontImage(ctx, okComputerID, art.SizeSmall)
	assert.NilErr(t, err)

	if elapsed := g.Last().Sub(first); elapsed < interval {
		t.Errorf("requests were only %s apart", elapsed)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = c.GetFrontImage(cancelled, okComputerID, art.SizeSmall)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, caaClient.GetReleaseFrontCallCount())
}

func TestSizeFor(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{-1, art.SizeOriginal},
		{0, art.SizeOriginal},
		{1, art.SizeSmall},
		{250, art.SizeSmall},
		{251, art.SizeLarge},
		{500, art.SizeLarge},
		{800, art.SizeHuge},
		{1200, art.SizeHuge},
		{1201, art.SizeOriginal},
	}

	for _, test := range tests {
		if found := art.SizeFor(test.width); found != test.expected {
			t.Errorf("width %d: expected size %d but got %d",
				test.width, test.expected, found)
		}
	}
}
