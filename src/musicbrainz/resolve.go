package musicbrainz

import (
	"context"
	"fmt"
	"strings"
)

// ResolveIdentifier converts `query` into an MBID of an entity of `kind`.
//
// When the query already is an MBID it is returned as is and no request is made.
// Otherwise it is used as a search query and the ID of the best match is returned.
// An error matching ErrNotFound is returned when nothing matches.
func (c *Client) ResolveIdentifier(
	ctx context.Context,
	kind Kind,
	query string,
) (string, error) {
	if err := kind.check(); err != nil {
		return "", err
	}

	if IsMBID(query) {
		return query, nil
	}

	if LooksLikeMBID(query) {
		return "", invalidQuery("%q looks like an MBID but is not a valid one", query)
	}

	return c.resolveBySearch(ctx, kind, query, fmt.Sprintf("%s %q", kind, query))
}

// ResolveRelease is like ResolveIdentifier for releases but narrows the search down
// to releases by `artist` when it is not empty.
func (c *Client) ResolveRelease(
	ctx context.Context,
	query string,
	artist string,
) (string, error) {
	if strings.TrimSpace(artist) == "" {
		return c.ResolveIdentifier(ctx, KindRelease, query)
	}

	if IsMBID(query) {
		return query, nil
	}

	if LooksLikeMBID(query) {
		return "", invalidQuery("%q looks like an MBID but is not a valid one", query)
	}

	if strings.TrimSpace(query) == "" {
		return "", invalidQuery("empty release search query")
	}

	searchQuery := fmt.Sprintf("release:%s AND artist:%s",
		quoteTerm(query),
		quoteTerm(artist),
	)
	what := fmt.Sprintf("release %q by %q", query, artist)

	return c.resolveBySearch(ctx, KindRelease, searchQuery, what)
}

func (c *Client) resolveBySearch(
	ctx context.Context,
	kind Kind,
	query string,
	what string,
) (string, error) {
	candidates, err := c.Search(ctx, kind, query, 1)
	if err != nil {
		return "", err
	}

	if len(candidates) < 1 {
		return "", &Error{
			Kind: ErrNotFound,
			msg:  fmt.Sprintf("%s did not match anything", what),
		}
	}

	return candidates[0].ID, nil
}
