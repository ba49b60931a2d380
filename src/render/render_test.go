package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ironsmile/brainz/src/assert"
	"github.com/ironsmile/brainz/src/library"
	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/ironsmile/brainz/src/render"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms       int
		expected string
	}{
		{285000, "4:45"},
		{383000, "6:23"},
		{61000, "1:01"},
		{5000, "0:05"},
		{999, "0:00"},
		{3600000, "60:00"},
		{0, "0:00"},
		{-1000, "0:00"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, render.FormatDuration(test.ms), "duration %d", test.ms)
	}
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "rock, pop, jazz", render.FormatList([]string{"rock", "pop", "jazz"}, 5))
	assert.Equal(t, "a, b, c, d, e, ...",
		render.FormatList([]string{"a", "b", "c", "d", "e", "f", "g"}, 5))
	assert.Equal(t, "a, b", render.FormatList([]string{"a", "b"}, 2))
	assert.Equal(t, "None", render.FormatList(nil, 5))
	assert.Equal(t, "None", render.FormatList([]string{}, 5))
}

func TestActivePeriod(t *testing.T) {
	tests := []struct {
		span     musicbrainz.LifeSpan
		expected string
	}{
		{musicbrainz.LifeSpan{Begin: "1985"}, "1985 - present"},
		{musicbrainz.LifeSpan{Begin: "1960", End: "1970-04-10", Ended: true}, "1960 - 1970-04-10"},
		{musicbrainz.LifeSpan{Ended: true}, "? - ?"},
		{musicbrainz.LifeSpan{}, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, render.ActivePeriod(test.span))
	}
}

func TestArtistInfo(t *testing.T) {
	var buf bytes.Buffer
	render.ArtistInfo(&buf, &musicbrainz.Artist{
		ID:             "a74b1b7f-71a5-4011-9441-d0b5e4122711",
		Name:           "Radiohead",
		Type:           "Group",
		Country:        "GB",
		Disambiguation: "English rock band",
		LifeSpan:       musicbrainz.LifeSpan{Begin: "1985"},
		Tags: []musicbrainz.Tag{
			{Name: "rock"}, {Name: "alternative rock"},
		},
		Genres: []musicbrainz.Genre{},
	})

	out := buf.String()
	for _, expected := range []string{
		"Radiohead\n",
		"a74b1b7f-71a5-4011-9441-d0b5e4122711",
		"Group",
		"GB",
		"1985 - present",
		"English rock band",
		"rock, alternative rock",
	} {
		assert.Contains(t, out, expected)
	}

	if strings.Contains(out, "Genres") {
		t.Errorf("empty genres should not be printed:\n%s", out)
	}
}

// TestArtistInfoMissingFields makes sure absent optional fields are printed as
// unknown instead of failing.
func TestArtistInfoMissingFields(t *testing.T) {
	var buf bytes.Buffer
	render.ArtistInfo(&buf, &musicbrainz.Artist{ID: "a74b1b7f-71a5-4011-9441-d0b5e4122711"})

	out := buf.String()
	assert.Contains(t, out, "Type:      Unknown")
	assert.Contains(t, out, "Country:   Unknown")
	if strings.Contains(out, "Active") {
		t.Errorf("missing life span should not be printed:\n%s", out)
	}
}

func TestReleaseList(t *testing.T) {
	var buf bytes.Buffer
	render.ReleaseList(&buf, "Releases by Radiohead", "Radiohead", &musicbrainz.ReleasePage{
		Count: 150,
		Releases: []musicbrainz.Release{
			{ID: "0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29", Title: "OK Computer",
				Date: "1997-05-21", Status: "Official"},
			{ID: "6518fd52-58bf-44a3-8150-00e7c3ffcae5", Title: "Kid A"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Showing 2 of 150 total releases")
	assert.Contains(t, out, "  1. OK Computer\n")
	assert.Contains(t, out, "1997-05-21 | Official")
	assert.Contains(t, out, "  2. Kid A\n")
	assert.Contains(t, out, "Unknown date | Unknown")
	assert.Contains(t, out, "MBID: 6518fd52-58bf-44a3-8150-00e7c3ffcae5")

	buf.Reset()
	render.ReleaseList(&buf, "Releases by Nobody", "Nobody", &musicbrainz.ReleasePage{})
	assert.Contains(t, buf.String(), "No releases found for Nobody.")
}

func TestAlbumInfo(t *testing.T) {
	var buf bytes.Buffer
	render.AlbumInfo(&buf, &musicbrainz.Release{
		ID:    "0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29",
		Title: "OK Computer",
		ArtistCredit: []musicbrainz.ArtistCredit{
			{Name: "Radiohead"},
		},
		Date:    "1997-05-21",
		Status:  "Official",
		Barcode: "724385522925",
		LabelInfo: []musicbrainz.LabelInfo{
			{Label: musicbrainz.LabelRef{Name: "Parlophone"}},
			{Label: musicbrainz.LabelRef{Name: "Capitol"}},
			{Label: musicbrainz.LabelRef{Name: "EMI"}},
			{Label: musicbrainz.LabelRef{Name: "XL"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Artist:    Radiohead")
	assert.Contains(t, out, "Country:   Unknown")
	assert.Contains(t, out, "Labels:    Parlophone, Capitol, EMI, ...")
	assert.Contains(t, out, "Barcode:   724385522925")
	if strings.Contains(out, "Tags") {
		t.Errorf("missing tags should not be printed:\n%s", out)
	}

	buf.Reset()
	render.AlbumInfo(&buf, &musicbrainz.Release{ID: "0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29"})
	if strings.Contains(buf.String(), "Labels") {
		t.Errorf("release without labels should not print labels:\n%s", buf.String())
	}
}

func TestAlbumTracks(t *testing.T) {
	var buf bytes.Buffer
	render.AlbumTracks(&buf, &musicbrainz.Release{
		Title: "The Wall",
		ArtistCredit: []musicbrainz.ArtistCredit{
			{Name: "Pink Floyd"},
		},
		Media: []musicbrainz.Medium{
			{
				Position:   1,
				Format:     "CD",
				TrackCount: 2,
				Tracks: []musicbrainz.Track{
					{Position: 1, Title: "In the Flesh?", Length: 199000},
					{Position: 2, Title: "The Thin Ice", Length: 0},
				},
			},
			{
				Position:   2,
				TrackCount: 1,
				Tracks: []musicbrainz.Track{
					{Position: 1, Title: "Hey You", Length: 280000},
				},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "by Pink Floyd")
	assert.Contains(t, out, "CD 1 (2 tracks):")
	assert.Contains(t, out, "   1. In the Flesh? (3:19)")
	assert.Contains(t, out, "   2. The Thin Ice (?)")
	assert.Contains(t, out, "Medium 2 (1 tracks):")
	assert.Contains(t, out, "   1. Hey You (4:40)")

	buf.Reset()
	render.AlbumTracks(&buf, &musicbrainz.Release{Title: "Empty"})
	assert.Contains(t, buf.String(), "No track information available.")
}

func TestCandidates(t *testing.T) {
	var buf bytes.Buffer
	render.Candidates(&buf, musicbrainz.KindArtist, "nirvana", []musicbrainz.Candidate{
		{ID: "5b11f4ce-a62d-471e-81fc-a69a8278c7da", Name: "Nirvana", Score: 100,
			Type: "Group", Country: "US", Disambiguation: "90s US grunge band"},
		{ID: "9282c8b4-ca0b-4c6b-b7e3-4f7762dfc4d6", Name: "Nirvana", Score: 95},
	})

	out := buf.String()
	assert.Contains(t, out, `Artist results for "nirvana"`)
	assert.Contains(t, out, "  1. Nirvana (90s US grunge band) [score 100]")
	assert.Contains(t, out, "Group | US")
	assert.Contains(t, out, "  2. Nirvana [score 95]")

	first := strings.Index(out, "5b11f4ce-a62d-471e-81fc-a69a8278c7da")
	second := strings.Index(out, "9282c8b4-ca0b-4c6b-b7e3-4f7762dfc4d6")
	if first < 0 || second < first {
		t.Errorf("candidates were not printed in order:\n%s", out)
	}

	buf.Reset()
	render.Candidates(&buf, musicbrainz.KindLabel, "nothing", nil)
	assert.Contains(t, buf.String(), `No label found for "nothing".`)
}

func TestMediaFile(t *testing.T) {
	var buf bytes.Buffer
	render.MediaFile(&buf, &library.MediaFile{
		Path:      "/music/02.mp3",
		Title:     "Paranoid Android",
		Artist:    "Radiohead",
		Track:     2,
		ReleaseID: "0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29",
	})

	out := buf.String()
	assert.Contains(t, out, "/music/02.mp3")
	assert.Contains(t, out, "Title:     Paranoid Android")
	assert.Contains(t, out, "Album:     Unknown")
	assert.Contains(t, out, "Track:     2")
	assert.Contains(t, out, "Release:   0b6b4ba0-d36f-47bd-b4ea-6a5b91842d29")
	if strings.Contains(out, "Recording") {
		t.Errorf("missing recording ID should not be printed:\n%s", out)
	}
}

func TestRecordingInfo(t *testing.T) {
	var buf bytes.Buffer
	render.RecordingInfo(&buf, &musicbrainz.Recording{
		ID:     "8a8e2ae5-3f4c-4cb0-92b1-3a5bd6d5da0b",
		Title:  "Paranoid Android",
		Length: 387000,
		ArtistCredit: []musicbrainz.ArtistCredit{
			{Name: "Radiohead"},
		},
		ISRCs: []string{"GBAYE9700148"},
	})

	out := buf.String()
	assert.Contains(t, out, "by Radiohead")
	assert.Contains(t, out, "Length:    6:27")
	assert.Contains(t, out, "ISRC:      GBAYE9700148")
}
