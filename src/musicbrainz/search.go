package musicbrainz

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// searchResponse is the union of the search responses for all supported entity
// kinds. Only the list for the requested kind is populated.
type searchResponse struct {
	Count      int               `json:"count"`
	Artists    []searchCandidate `json:"artists"`
	Releases   []searchCandidate `json:"releases"`
	Recordings []searchCandidate `json:"recordings"`
	Labels     []searchCandidate `json:"labels"`
}

// searchCandidate has the fields of search results we are interested in. Artists
// and labels have names while releases and recordings have titles.
type searchCandidate struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Score          int    `json:"score"`
	Type           string `json:"type"`
	Country        string `json:"country"`
	Disambiguation string `json:"disambiguation"`
}

func (r *searchResponse) list(kind Kind) []searchCandidate {
	switch kind {
	case KindArtist:
		return r.Artists
	case KindRelease:
		return r.Releases
	case KindRecording:
		return r.Recordings
	case KindLabel:
		return r.Labels
	}
	return nil
}

// Search finds entities of `kind` matching `query`. The query is a free text or
// a Lucene query as described in https://musicbrainz.org/doc/MusicBrainz_API/Search.
//
// The results are in the order returned by the web service which is the best match
// first. At most `limit` results are returned. Limit is silently clamped into the
// range supported by the web service, see ClampLimit.
func (c *Client) Search(
	ctx context.Context,
	kind Kind,
	query string,
	limit int,
) ([]Candidate, error) {
	if err := kind.check(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return nil, invalidQuery("empty %s search query", kind)
	}

	limit = ClampLimit(limit)
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))

	var resp searchResponse
	if err := c.get(ctx, string(kind), params, &resp); err != nil {
		return nil, err
	}

	found := resp.list(kind)
	if len(found) > limit {
		found = found[:limit]
	}

	candidates := make([]Candidate, 0, len(found))
	for _, sc := range found {
		name := sc.Name
		if name == "" {
			name = sc.Title
		}

		candidates = append(candidates, Candidate{
			ID:             sc.ID,
			Name:           name,
			Score:          sc.Score,
			Type:           sc.Type,
			Country:        sc.Country,
			Disambiguation: sc.Disambiguation,
		})
	}

	return candidates, nil
}

// SearchByTag finds entities of `kind` which are tagged with `tag`.
func (c *Client) SearchByTag(
	ctx context.Context,
	kind Kind,
	tag string,
	limit int,
) ([]Candidate, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, invalidQuery("empty tag")
	}

	return c.Search(ctx, kind, "tag:"+quoteTerm(tag), limit)
}

// quoteTerm returns `term` as a quoted Lucene phrase.
func quoteTerm(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `"`, `\"`)
	return `"` + term + `"`
}
