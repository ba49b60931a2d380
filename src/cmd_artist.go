package src

import (
	"fmt"
	"strings"

	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/ironsmile/brainz/src/render"
	"github.com/spf13/cobra"
)

const defaultReleasesLimit = 25

func (a *app) artistInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "artist-info <name|mbid>",
		Short: "Display detailed information about an artist",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")

			a.progress("Searching for '%s'...", query)
			mbid, err := a.mb.ResolveIdentifier(ctx, musicbrainz.KindArtist, query)
			if err != nil {
				return err
			}

			artist, err := a.mb.LookupArtist(
				ctx,
				mbid,
				musicbrainz.IncTags,
				musicbrainz.IncGenres,
				musicbrainz.IncAliases,
			)
			if err != nil {
				return err
			}

			render.ArtistInfo(a.stdout, artist)
			return nil
		},
	}
}

func (a *app) artistReleasesCommand() *cobra.Command {
	var (
		limit  int
		filter musicbrainz.ReleaseFilter
	)

	cmd := &cobra.Command{
		Use:   "artist-releases <name|mbid>",
		Short: "List the releases of an artist",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Limit(defaultReleasesLimit)
			}

			if err := filter.Validate(); err != nil {
				return err
			}

			a.progress("Searching for '%s'...", query)
			mbid, err := a.mb.ResolveIdentifier(ctx, musicbrainz.KindArtist, query)
			if err != nil {
				return err
			}

			artist, err := a.mb.LookupArtist(ctx, mbid)
			if err != nil {
				return err
			}
			a.progress("Found: %s", artist.Name)

			a.progress("Fetching releases...")
			page, err := a.mb.BrowseReleases(ctx, mbid, filter, limit)
			if err != nil {
				return err
			}

			render.ReleaseList(a.stdout, "Releases by "+artist.Name, artist.Name, page)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultReleasesLimit, "maximum number of releases")
	cmd.Flags().StringVar(&filter.Type, "type", "", fmt.Sprintf(
		"filter by release type (%s)", strings.Join(musicbrainz.ReleaseTypes, ", ")))
	cmd.Flags().StringVar(&filter.Status, "status", "", fmt.Sprintf(
		"filter by release status (%s)", strings.Join(musicbrainz.ReleaseStatuses, ", ")))

	return cmd
}
