/*
Package art is responsible for getting cover art for releases over the internet.

Images come from the Cover Art Archive, which is keyed by MusicBrainz release IDs. So
finding the artwork for an album is done in two steps: first the album name is resolved
to a release ID with the musicbrainz package, then this ID is used for asking the
Cover Art Archive for the front cover.

 * Cover Art Archive: https://musicbrainz.org/doc/Cover_Art_Archive/API
*/
package art
