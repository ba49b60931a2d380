package src

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ironsmile/brainz/src/art"
	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/ironsmile/brainz/src/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// resolveRelease finds the release MBID for `query` narrowed down by `artist`.
func (a *app) resolveRelease(ctx context.Context, query, artist string) (string, error) {
	a.progress("Searching for '%s'...", query)
	return a.mb.ResolveRelease(ctx, query, artist)
}

func (a *app) albumInfoCommand() *cobra.Command {
	var artist string

	cmd := &cobra.Command{
		Use:   "album-info <name|mbid>",
		Short: "Display detailed information about an album",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mbid, err := a.resolveRelease(ctx, strings.Join(args, " "), artist)
			if err != nil {
				return err
			}

			release, err := a.mb.LookupRelease(
				ctx,
				mbid,
				musicbrainz.IncArtistCredits,
				musicbrainz.IncLabels,
				musicbrainz.IncTags,
				musicbrainz.IncGenres,
			)
			if err != nil {
				return err
			}

			render.AlbumInfo(a.stdout, release)
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "artist name to narrow the search")
	return cmd
}

func (a *app) albumTracksCommand() *cobra.Command {
	var artist string

	cmd := &cobra.Command{
		Use:   "album-tracks <name|mbid>",
		Short: "Show the track list of an album",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mbid, err := a.resolveRelease(ctx, strings.Join(args, " "), artist)
			if err != nil {
				return err
			}

			release, err := a.mb.LookupRelease(
				ctx,
				mbid,
				musicbrainz.IncRecordings,
				musicbrainz.IncArtistCredits,
			)
			if err != nil {
				return err
			}

			render.AlbumTracks(a.stdout, release)
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "artist name to narrow the search")
	return cmd
}

func (a *app) albumArtCommand() *cobra.Command {
	var (
		artist string
		width  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "album-art <name|mbid>",
		Short: "Download the front cover of an album",
		Long: `Download the front cover of an album from the Cover Art Archive.

The image is stored in <mbid>.jpg unless --output is given. Use "-" for writing
it to the standard output. With --width the image is scaled down to at most that
many pixels wide and is always a JPEG.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if width < 0 {
				return usageError{err: fmt.Errorf("--width must not be negative, got %d", width)}
			}

			mbid, err := a.resolveRelease(ctx, strings.Join(args, " "), artist)
			if err != nil {
				return err
			}

			a.progress("Downloading front cover of %s...", mbid)
			img, err := a.art.GetFrontImage(ctx, mbid, art.SizeFor(width))
			if err != nil {
				return err
			}

			data := img.Data
			ext := imageExtension(img.Mimetype)
			if width > 0 {
				data, err = a.imageScaler(ctx).Scale(ctx, bytes.NewReader(img.Data), width)
				if err != nil {
					return fmt.Errorf("scaling cover: %w", err)
				}
				ext = ".jpg"
			}

			if output == "-" {
				_, err := a.stdout.Write(data)
				return err
			}

			if output == "" {
				output = mbid + ext
			}

			if err := afero.WriteFile(a.fs, output, data, 0644); err != nil {
				return fmt.Errorf("storing cover: %w", err)
			}

			fmt.Fprintf(a.stdout, "Front cover stored in %s (%d bytes)\n", output, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "artist name to narrow the search")
	cmd.Flags().IntVar(&width, "width", 0, "scale the image down to this width in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file for storing the image")

	return cmd
}

// imageExtension returns the file extension for an image with `mimetype`.
func imageExtension(mimetype string) string {
	switch mimetype {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
