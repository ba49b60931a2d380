/*
Package musicbrainz is a client for the MusicBrainz JSON web service.

It supports the three kinds of requests the web service knows about:

 * search: finding entities matching a free text (Lucene) query
 * lookup: getting a single entity by its MusicBrainz ID (MBID)
 * browse: listing entities linked to another entity, such as the releases of an artist

On top of those it can resolve a name into an MBID by taking the best search match.

Every request goes through a gate.Gate first so that the client never exceeds the
rate limit of the web service. Failures are classified into a small set of error kinds
which callers should check with errors.Is:

 * ErrTransport: the service could not be reached at all
 * ErrServiceUnavailable: the service is overloaded or throttling us
 * ErrNotFound: there is no such entity
 * ErrRequestFailed: the service rejected the request for some other reason
 * ErrMalformedResponse: the service answered with something which is not JSON we understand
 * ErrInvalidQuery: the request was not sent since its arguments were invalid

API documentation: https://musicbrainz.org/doc/MusicBrainz_API
*/
package musicbrainz
