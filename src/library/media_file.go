package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhowden/tag"
	"github.com/dhowden/tag/mbz"
	"github.com/ironsmile/brainz/src/helpers"
	"github.com/spf13/afero"
)

// MediaFile is the metadata found in the tags of a single media file.
type MediaFile struct {
	Path        string
	Format      string
	Artist      string
	AlbumArtist string
	Album       string
	Title       string
	Track       int
	Year        int

	// MusicBrainz identifiers as written by taggers such as Picard. Any of them
	// may be empty.
	ArtistID       string
	ReleaseID      string
	ReleaseGroupID string
	RecordingID    string
}

// ReadMediaFile reads the tags of the media file at `path` in `fs`. ErrNoTags is
// returned when the file has no tags in any of the known formats. Files without a
// track number tag get one guessed from their name.
func ReadMediaFile(fs afero.Fs, path string) (*MediaFile, error) {
	fh, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, ErrorNotSupported{path: path}
	}

	md, err := tag.ReadFrom(fh)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTags)
	} else if err != nil {
		return nil, fmt.Errorf("reading tags of %s: %w", path, err)
	}

	return fromMetadata(path, md), nil
}

func fromMetadata(path string, md tag.Metadata) *MediaFile {
	track, _ := md.Track()
	if track <= 0 {
		track = helpers.GuessTrackNumber(path)
	}

	mf := &MediaFile{
		Path:        path,
		Format:      string(md.Format()),
		Artist:      strings.TrimSpace(md.Artist()),
		AlbumArtist: strings.TrimSpace(md.AlbumArtist()),
		Album:       strings.TrimSpace(md.Album()),
		Title:       strings.TrimSpace(md.Title()),
		Track:       track,
		Year:        md.Year(),
	}

	ids := mbz.Extract(md)
	mf.ArtistID = firstID(ids[mbz.Artist])
	mf.ReleaseID = firstID(ids[mbz.Album])
	mf.ReleaseGroupID = firstID(ids[mbz.ReleaseGroup])
	mf.RecordingID = firstID(ids[mbz.Recording])

	return mf
}

// ReleaseArtist returns the artist of the whole release. That is the album artist
// when set and the track artist otherwise.
func (mf *MediaFile) ReleaseArtist() string {
	if mf.AlbumArtist != "" {
		return mf.AlbumArtist
	}
	return mf.Artist
}

// firstID returns the first of possibly many IDs in a tag. Multi-artist tracks have
// their artist IDs separated by slashes or semicolons.
func firstID(val string) string {
	if i := strings.IndexAny(val, "/;"); i >= 0 {
		val = val[:i]
	}
	return strings.TrimSpace(val)
}
