package musicbrainz

import (
	"context"
	"net/url"
)

// Lookup fetches the entity of `kind` with ID `mbid` and decodes it into `v`.
// `includes` ask for additional information to be included in the response.
//
// When the MBID does not exist an error for which errors.Is(err, ErrNotFound) holds is
// returned.
func (c *Client) Lookup(
	ctx context.Context,
	kind Kind,
	mbid string,
	includes []Include,
	v any,
) error {
	if err := kind.check(); err != nil {
		return err
	}

	if err := checkMBID(kind, mbid); err != nil {
		return err
	}

	params := url.Values{}
	if inc := joinIncludes(includes); inc != "" {
		params.Set("inc", inc)
	}

	return c.get(ctx, string(kind)+"/"+url.PathEscape(mbid), params, v)
}

// LookupArtist returns the artist with ID `mbid`.
func (c *Client) LookupArtist(
	ctx context.Context,
	mbid string,
	includes ...Include,
) (*Artist, error) {
	var artist Artist
	if err := c.Lookup(ctx, KindArtist, mbid, includes, &artist); err != nil {
		return nil, err
	}

	artist.setDefaults()
	return &artist, nil
}

// LookupRelease returns the release with ID `mbid`.
func (c *Client) LookupRelease(
	ctx context.Context,
	mbid string,
	includes ...Include,
) (*Release, error) {
	var release Release
	if err := c.Lookup(ctx, KindRelease, mbid, includes, &release); err != nil {
		return nil, err
	}

	release.setDefaults()
	return &release, nil
}

// LookupRecording returns the recording with ID `mbid`.
func (c *Client) LookupRecording(
	ctx context.Context,
	mbid string,
	includes ...Include,
) (*Recording, error) {
	var recording Recording
	if err := c.Lookup(ctx, KindRecording, mbid, includes, &recording); err != nil {
		return nil, err
	}

	recording.setDefaults()
	return &recording, nil
}

// LookupLabel returns the label with ID `mbid`.
func (c *Client) LookupLabel(
	ctx context.Context,
	mbid string,
	includes ...Include,
) (*Label, error) {
	var label Label
	if err := c.Lookup(ctx, KindLabel, mbid, includes, &label); err != nil {
		return nil, err
	}

	label.setDefaults()
	return &label, nil
}
