package src

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ironsmile/brainz/src/library"
	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/ironsmile/brainz/src/render"
	"github.com/spf13/cobra"
)

func (a *app) identifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <file|directory>...",
		Short: "Identify the artist and album of local audio files",
		Long: `Identify the artist and album of local audio files by their tags.

MusicBrainz IDs written by taggers such as Picard are used when present. Otherwise
the artist and album names are searched for. Directories are searched for audio
files and every album in them is identified once.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			albums, err := a.readAlbums(args)
			if err != nil {
				return err
			}

			var firstErr error
			for _, mf := range albums {
				err := a.identify(cmd.Context(), mf)
				if errors.Is(err, context.Canceled) {
					return err
				}
				if err != nil {
					a.progress("%s: %s", mf.Path, err)
					if firstErr == nil {
						firstErr = err
					}
				}
			}

			return firstErr
		},
	}
}

// readAlbums reads the tags of all media files in `paths` and returns one file for
// every album found.
func (a *app) readAlbums(paths []string) ([]*library.MediaFile, error) {
	var (
		albums  []*library.MediaFile
		seen    = make(map[string]struct{})
		lastErr error
	)

	for _, path := range paths {
		files, err := library.FindMedia(a.fs, path)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			mf, err := library.ReadMediaFile(a.fs, file)
			if err != nil {
				log.Printf("Skipping %s: %s\n", file, err)
				lastErr = err
				continue
			}

			key := library.AlbumKey(mf)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			albums = append(albums, mf)
		}
	}

	if len(albums) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, fmt.Errorf("no audio files found in %v", paths)
	}

	return albums, nil
}

// identify finds the artist, the release and the recording of a single file and
// writes what was found.
func (a *app) identify(ctx context.Context, mf *library.MediaFile) error {
	render.MediaFile(a.stdout, mf)

	artistID := mf.ArtistID
	if artistID == "" && mf.ReleaseArtist() != "" {
		a.progress("Searching for artist '%s'...", mf.ReleaseArtist())

		var err error
		artistID, err = a.mb.ResolveIdentifier(ctx, musicbrainz.KindArtist, mf.ReleaseArtist())
		if err != nil {
			return err
		}
	}

	if artistID != "" {
		artist, err := a.mb.LookupArtist(ctx, artistID, musicbrainz.IncTags, musicbrainz.IncGenres)
		if err != nil {
			return err
		}
		render.ArtistInfo(a.stdout, artist)
	}

	releaseID := mf.ReleaseID
	if releaseID == "" && mf.Album != "" {
		a.progress("Searching for album '%s'...", mf.Album)

		var err error
		releaseID, err = a.mb.ResolveRelease(ctx, mf.Album, mf.ReleaseArtist())
		if err != nil {
			return err
		}
	}

	if releaseID != "" {
		release, err := a.mb.LookupRelease(
			ctx,
			releaseID,
			musicbrainz.IncArtistCredits,
			musicbrainz.IncLabels,
			musicbrainz.IncTags,
		)
		if err != nil {
			return err
		}
		render.AlbumInfo(a.stdout, release)
	}

	if mf.RecordingID != "" {
		recording, err := a.mb.LookupRecording(
			ctx,
			mf.RecordingID,
			musicbrainz.IncArtistCredits,
			musicbrainz.IncISRCs,
		)
		if err != nil {
			return err
		}
		render.RecordingInfo(a.stdout, recording)
	}

	if artistID == "" && releaseID == "" {
		return fmt.Errorf("%s: %w", mf.Path, library.ErrNoTags)
	}

	return nil
}
