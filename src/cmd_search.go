package src

import (
	"fmt"
	"strings"

	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/ironsmile/brainz/src/render"
	"github.com/spf13/cobra"
)

const (
	defaultSearchLimit = 10
	defaultTagLimit    = 25
)

func kindsList() string {
	kinds := make([]string, 0, len(musicbrainz.Kinds))
	for _, kind := range musicbrainz.Kinds {
		kinds = append(kinds, string(kind))
	}
	return strings.Join(kinds, ", ")
}

func (a *app) searchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <kind> <query>",
		Short: "Search for artists, releases, recordings or labels",
		Long: fmt.Sprintf(`Search for entities of a kind. The kind is one of %s.

The query is free text or a Lucene query as described in
https://musicbrainz.org/doc/MusicBrainz_API/Search. Results are listed best match
first.`, kindsList()),
		Args: usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := musicbrainz.ParseKind(args[0])
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Limit(defaultSearchLimit)
			}

			candidates, err := a.mb.Search(cmd.Context(), kind, query, limit)
			if err != nil {
				return err
			}

			render.Candidates(a.stdout, kind, query, candidates)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultSearchLimit, "maximum number of results")
	return cmd
}

func (a *app) tagCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tag <kind> <tag>",
		Short: "Find artists, releases, recordings or labels with a tag",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := musicbrainz.ParseKind(args[0])
			if err != nil {
				return err
			}
			tag := strings.Join(args[1:], " ")

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Limit(defaultTagLimit)
			}

			candidates, err := a.mb.SearchByTag(cmd.Context(), kind, tag, limit)
			if err != nil {
				return err
			}

			render.Candidates(a.stdout, kind, "tag:"+tag, candidates)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultTagLimit, "maximum number of results")
	return cmd
}

func (a *app) labelReleasesCommand() *cobra.Command {
	var (
		limit  int
		filter musicbrainz.ReleaseFilter
	)

	cmd := &cobra.Command{
		Use:   "label-releases <name|mbid>",
		Short: "List the releases issued on a label",
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
			mbid, err := a.mb.ResolveIdentifier(ctx, musicbrainz.KindLabel, query)
			if err != nil {
				return err
			}

			label, err := a.mb.LookupLabel(ctx, mbid)
			if err != nil {
				return err
			}
			a.progress("Found: %s", label.Name)

			page, err := a.mb.BrowseLabelReleases(ctx, mbid, filter, limit)
			if err != nil {
				return err
			}

			render.ReleaseList(a.stdout, "Releases on "+label.Name, label.Name, page)
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
