// Package render writes MusicBrainz records as human readable text. Headings are
// coloured when the output is a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ironsmile/brainz/src/library"
	"github.com/ironsmile/brainz/src/musicbrainz"
)

const (
	ruleWidth = 60
	maxTags   = 10
	maxLabels = 3
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	ruleColor  = color.New(color.FgHiBlack)
	labelColor = color.New(color.Bold)
	dimColor   = color.New(color.FgHiBlack)
)

// FormatDuration formats a duration in milliseconds as minutes and seconds, for
// example "4:45". Zero and negative durations are "0:00".
func FormatDuration(milliseconds int) string {
	if milliseconds <= 0 {
		return "0:00"
	}

	seconds := milliseconds / 1000
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatList joins at most `maxItems` of `items` with commas. When there are more
// items the result ends with ", ...". Empty list is "None".
func FormatList(items []string, maxItems int) string {
	if len(items) == 0 {
		return "None"
	}

	if len(items) <= maxItems {
		return strings.Join(items, ", ")
	}

	return strings.Join(items[:maxItems], ", ") + ", ..."
}

// Heading writes `title` between two horizontal rules. Every line of `subtitles`
// is written under the title.
func Heading(w io.Writer, title string, subtitles ...string) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(w)
	ruleColor.Fprintln(w, rule)
	titleColor.Fprintln(w, title)
	for _, sub := range subtitles {
		fmt.Fprintln(w, sub)
	}
	ruleColor.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// field writes a single "Key: value" line with the values of all fields lined up.
func field(w io.Writer, key, value string) {
	labelColor.Fprintf(w, "%-11s", key+":")
	fmt.Fprintln(w, value)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func tagNames(tags []musicbrainz.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func genreNames(genres []musicbrainz.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}

func creditNames(credits []musicbrainz.ArtistCredit) string {
	if len(credits) == 0 {
		return "Unknown"
	}
	return musicbrainz.CreditedName(credits)
}

// ActivePeriod describes a life span, for example "1985 - present".
func ActivePeriod(span musicbrainz.LifeSpan) string {
	if span.Begin == "" && span.End == "" && !span.Ended {
		return ""
	}

	begin := span.Begin
	if begin == "" {
		begin = "?"
	}

	if !span.Ended {
		return begin + " - present"
	}

	end := span.End
	if end == "" {
		end = "?"
	}
	return begin + " - " + end
}

// ArtistInfo writes the details of an artist.
func ArtistInfo(w io.Writer, artist *musicbrainz.Artist) {
	Heading(w, orUnknown(artist.Name))

	field(w, "MBID", artist.ID)
	field(w, "Type", orUnknown(artist.Type))
	field(w, "Country", orUnknown(artist.Country))
	if active := ActivePeriod(artist.LifeSpan); active != "" {
		field(w, "Active", active)
	}
	if artist.Disambiguation != "" {
		field(w, "Note", artist.Disambiguation)
	}

	if len(artist.Tags) > 0 || len(artist.Genres) > 0 {
		fmt.Fprintln(w)
	}
	if len(artist.Tags) > 0 {
		field(w, "Tags", FormatList(tagNames(artist.Tags), maxTags))
	}
	if len(artist.Genres) > 0 {
		field(w, "Genres", FormatList(genreNames(artist.Genres), maxTags))
	}

	fmt.Fprintln(w)
}

// ReleaseList writes a page of releases under a heading with `title`. `owner` is
// the name of the artist or label the releases belong to.
func ReleaseList(w io.Writer, title, owner string, page *musicbrainz.ReleasePage) {
	if len(page.Releases) == 0 {
		fmt.Fprintf(w, "\nNo releases found for %s.\n", owner)
		return
	}

	Heading(w, title)
	fmt.Fprintf(w, "Showing %d of %d total releases\n\n", len(page.Releases), page.Count)

	for i, release := range page.Releases {
		date := release.Date
		if date == "" {
			date = "Unknown date"
		}

		titleColor.Fprintf(w, "%3d. ", i+1)
		fmt.Fprintln(w, orUnknown(release.Title))
		fmt.Fprintf(w, "      %s | %s\n", date, orUnknown(release.Status))
		dimColor.Fprintf(w, "      MBID: %s\n", release.ID)
		fmt.Fprintln(w)
	}
}

// AlbumInfo writes the details of a release.
func AlbumInfo(w io.Writer, release *musicbrainz.Release) {
	Heading(w, orUnknown(release.Title))

	field(w, "MBID", release.ID)
	if len(release.ArtistCredit) > 0 {
		field(w, "Artist", creditNames(release.ArtistCredit))
	}
	field(w, "Date", orUnknown(release.Date))
	field(w, "Status", orUnknown(release.Status))
	field(w, "Country", orUnknown(release.Country))
	if labels := release.Labels(); len(labels) > 0 {
		field(w, "Labels", FormatList(labels, maxLabels))
	}
	if release.Barcode != "" {
		field(w, "Barcode", release.Barcode)
	}

	if len(release.Tags) > 0 {
		fmt.Fprintln(w)
		field(w, "Tags", FormatList(tagNames(release.Tags), maxTags))
	}

	fmt.Fprintln(w)
}

// AlbumTracks writes the track list of every medium of a release.
func AlbumTracks(w io.Writer, release *musicbrainz.Release) {
	Heading(w, orUnknown(release.Title), "by "+creditNames(release.ArtistCredit))

	if len(release.Media) == 0 {
		fmt.Fprintln(w, "No track information available.")
		return
	}

	for _, medium := range release.Media {
		format := medium.Format
		if format == "" {
			format = "Medium"
		}
		position := medium.Position
		if position == 0 {
			position = 1
		}

		labelColor.Fprintf(w, "%s %d (%d tracks):\n\n", format, position, medium.TrackCount)

		for _, track := range medium.Tracks {
			duration := "?"
			if track.Length > 0 {
				duration = FormatDuration(track.Length)
			}

			fmt.Fprintf(w, "  %2d. %s (%s)\n", track.Position, orUnknown(track.Title), duration)
		}

		fmt.Fprintln(w)
	}
}

// Candidates writes search results in the order they were returned.
func Candidates(w io.Writer, kind musicbrainz.Kind, query string, candidates []musicbrainz.Candidate) {
	if len(candidates) == 0 {
		fmt.Fprintf(w, "\nNo %s found for %q.\n", kind, query)
		return
	}

	Heading(w, fmt.Sprintf("%s results for %q", capitalize(string(kind)), query))

	for i, candidate := range candidates {
		titleColor.Fprintf(w, "%3d. ", i+1)
		fmt.Fprint(w, candidate.String())
		dimColor.Fprintf(w, " [score %d]\n", candidate.Score)

		var details []string
		if candidate.Type != "" {
			details = append(details, candidate.Type)
		}
		if candidate.Country != "" {
			details = append(details, candidate.Country)
		}
		if len(details) > 0 {
			fmt.Fprintf(w, "      %s\n", strings.Join(details, " | "))
		}

		dimColor.Fprintf(w, "      MBID: %s\n", candidate.ID)
		fmt.Fprintln(w)
	}
}

// MediaFile writes what was found in the tags of a local file.
func MediaFile(w io.Writer, mf *library.MediaFile) {
	Heading(w, mf.Path)

	field(w, "Title", orUnknown(mf.Title))
	field(w, "Artist", orUnknown(mf.Artist))
	field(w, "Album", orUnknown(mf.Album))
	if mf.Track > 0 {
		field(w, "Track", fmt.Sprint(mf.Track))
	}
	if mf.ReleaseID != "" {
		field(w, "Release", mf.ReleaseID)
	}
	if mf.ArtistID != "" {
		field(w, "Artist ID", mf.ArtistID)
	}
	if mf.RecordingID != "" {
		field(w, "Recording", mf.RecordingID)
	}
}

// RecordingInfo writes the details of a recording.
func RecordingInfo(w io.Writer, recording *musicbrainz.Recording) {
	Heading(w, orUnknown(recording.Title), "by "+creditNames(recording.ArtistCredit))

	field(w, "MBID", recording.ID)
	if recording.Length > 0 {
		field(w, "Length", FormatDuration(recording.Length))
	}
	if recording.Disambiguation != "" {
		field(w, "Note", recording.Disambiguation)
	}
	if len(recording.ISRCs) > 0 {
		field(w, "ISRC", FormatList(recording.ISRCs, maxLabels))
	}

	fmt.Fprintln(w)
}
