package musicbrainz

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// ReleaseTypes are the values accepted for ReleaseFilter.Type.
var ReleaseTypes = []string{"album", "single", "ep", "broadcast", "other"}

// ReleaseStatuses are the values accepted for ReleaseFilter.Status.
var ReleaseStatuses = []string{"official", "promotion", "bootleg", "pseudo-release"}

// ReleaseFilter narrows down browsed releases. Empty fields do not filter anything.
type ReleaseFilter struct {
	// Type is the primary type of the release group, for example "album".
	Type string

	// Status is the release status, for example "official".
	Status string
}

// Validate returns an ErrInvalidQuery error when the filter has unknown values.
func (f ReleaseFilter) Validate() error {
	if f.Type != "" && !oneOf(f.Type, ReleaseTypes) {
		return invalidQuery("unknown release type %q, expected one of %s",
			f.Type, strings.Join(ReleaseTypes, ", "))
	}
	if f.Status != "" && !oneOf(f.Status, ReleaseStatuses) {
		return invalidQuery("unknown release status %q, expected one of %s",
			f.Status, strings.Join(ReleaseStatuses, ", "))
	}
	return nil
}

func (f ReleaseFilter) apply(params url.Values) {
	if f.Type != "" {
		params.Set("type", f.Type)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
}

// BrowseReleases returns a single page of the releases by the artist with ID
// `artistMBID`. The page has at most `limit` releases, with limit clamped like
// in Search. The total number of releases matching the filter is in the Count field
// of the returned page.
func (c *Client) BrowseReleases(
	ctx context.Context,
	artistMBID string,
	filter ReleaseFilter,
	limit int,
) (*ReleasePage, error) {
	return c.browseReleases(ctx, KindArtist, artistMBID, filter, limit)
}

// BrowseLabelReleases is like BrowseReleases but for releases issued on the label
// with ID `labelMBID`.
func (c *Client) BrowseLabelReleases(
	ctx context.Context,
	labelMBID string,
	filter ReleaseFilter,
	limit int,
) (*ReleasePage, error) {
	return c.browseReleases(ctx, KindLabel, labelMBID, filter, limit)
}

func (c *Client) browseReleases(
	ctx context.Context,
	parent Kind,
	parentMBID string,
	filter ReleaseFilter,
	limit int,
) (*ReleasePage, error) {
	if err := checkMBID(parent, parentMBID); err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	limit = ClampLimit(limit)
	params := url.Values{}
	params.Set(string(parent), parentMBID)
	params.Set("limit", strconv.Itoa(limit))
	filter.apply(params)

	var page ReleasePage
	if err := c.get(ctx, string(KindRelease), params, &page); err != nil {
		return nil, err
	}

	if len(page.Releases) > limit {
		page.Releases = page.Releases[:limit]
	}

	page.Releases = nonNil(page.Releases)
	for i := range page.Releases {
		page.Releases[i].setDefaults()
	}

	if page.Count < len(page.Releases) {
		page.Count = len(page.Releases)
	}

	return &page, nil
}

func oneOf(val string, allowed []string) bool {
	for _, a := range allowed {
		if val == a {
			return true
		}
	}
	return false
}
