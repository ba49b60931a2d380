package musicbrainz

import (
	"fmt"
	"strings"
)

// Kind is a type of a MusicBrainz entity. Its value is the name used for this entity
// in the web service paths.
type Kind string

// The entity kinds supported by the Client.
const (
	KindArtist    Kind = "artist"
	KindRelease   Kind = "release"
	KindRecording Kind = "recording"
	KindLabel     Kind = "label"
)

// Kinds lists all supported entity kinds.
var Kinds = []Kind{KindArtist, KindRelease, KindRecording, KindLabel}

// ParseKind converts `s` into a Kind. It returns an ErrInvalidQuery error for unknown
// kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if err := k.check(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) check() error {
	for _, known := range Kinds {
		if k == known {
			return nil
		}
	}
	return invalidQuery("unsupported entity kind %q", string(k))
}

// Include is a value for the `inc` argument of lookup requests. It asks the web
// service to include additional information in the response.
type Include string

// Some of the includes supported by the web service. Not all of them are valid for
// every entity kind.
const (
	IncAliases       Include = "aliases"
	IncArtistCredits Include = "artist-credits"
	IncGenres        Include = "genres"
	IncISRCs         Include = "isrcs"
	IncLabels        Include = "labels"
	IncRecordings    Include = "recordings"
	IncReleaseGroups Include = "release-groups"
	IncReleases      Include = "releases"
	IncTags          Include = "tags"
	IncURLRels       Include = "url-rels"
)

func joinIncludes(includes []Include) string {
	parts := make([]string, 0, len(includes))
	for _, inc := range includes {
		if inc == "" {
			continue
		}
		parts = append(parts, string(inc))
	}
	return strings.Join(parts, "+")
}

// Candidate is a single search result.
type Candidate struct {
	ID             string
	Name           string
	Score          int
	Type           string
	Country        string
	Disambiguation string
}

// String implements fmt.Stringer.
func (c Candidate) String() string {
	if c.Disambiguation != "" {
		return fmt.Sprintf("%s (%s)", c.Name, c.Disambiguation)
	}
	return c.Name
}

// LifeSpan is the period during which an artist or a label was active.
type LifeSpan struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
	Ended bool   `json:"ended"`
}

// Tag is a folksonomy tag attached to an entity.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Genre is a curated tag.
type Genre struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Alias is an alternative name of an entity.
type Alias struct {
	Name     string `json:"name"`
	SortName string `json:"sort-name"`
	Locale   string `json:"locale"`
	Type     string `json:"type"`
	Primary  bool   `json:"primary"`
}

// Artist is a MusicBrainz artist record.
type Artist struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SortName       string   `json:"sort-name"`
	Type           string   `json:"type"`
	Country        string   `json:"country"`
	Disambiguation string   `json:"disambiguation"`
	LifeSpan       LifeSpan `json:"life-span"`
	Tags           []Tag    `json:"tags"`
	Genres         []Genre  `json:"genres"`
	Aliases        []Alias  `json:"aliases"`
}

func (a *Artist) setDefaults() {
	a.Tags = nonNil(a.Tags)
	a.Genres = nonNil(a.Genres)
	a.Aliases = nonNil(a.Aliases)
}

// ArtistRef is the short form of an artist found in other records.
type ArtistRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SortName string `json:"sort-name"`
}

// ArtistCredit is one of the artists credited for a release or a recording.
type ArtistCredit struct {
	Name       string    `json:"name"`
	JoinPhrase string    `json:"joinphrase"`
	Artist     ArtistRef `json:"artist"`
}

// CreditedName joins artist credits the way they should be displayed, for example
// "Simon & Garfunkel".
func CreditedName(credits []ArtistCredit) string {
	var b strings.Builder
	for _, credit := range credits {
		name := credit.Name
		if name == "" {
			name = credit.Artist.Name
		}
		b.WriteString(name)
		b.WriteString(credit.JoinPhrase)
	}
	return b.String()
}

// LabelRef is the short form of a label found in other records.
type LabelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LabelInfo is a label a release was issued on together with its catalog number.
type LabelInfo struct {
	CatalogNumber string   `json:"catalog-number"`
	Label         LabelRef `json:"label"`
}

// Track is a track of a medium.
type Track struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	Number   string `json:"number"`
	Title    string `json:"title"`

	// Length is the duration of the track in milliseconds. Zero when unknown.
	Length int `json:"length"`
}

// Medium is a disc, cassette, vinyl and so on.
type Medium struct {
	Position   int     `json:"position"`
	Format     string  `json:"format"`
	Title      string  `json:"title"`
	TrackCount int     `json:"track-count"`
	Tracks     []Track `json:"tracks"`
}

// ReleaseGroup is the short form of a release group found in releases.
type ReleaseGroup struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PrimaryType string `json:"primary-type"`
}

// Release is a MusicBrainz release record. This is what is usually called an album.
type Release struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Status         string         `json:"status"`
	Date           string         `json:"date"`
	Country        string         `json:"country"`
	Barcode        string         `json:"barcode"`
	Disambiguation string         `json:"disambiguation"`
	ArtistCredit   []ArtistCredit `json:"artist-credit"`
	LabelInfo      []LabelInfo    `json:"label-info"`
	Media          []Medium       `json:"media"`
	Tags           []Tag          `json:"tags"`
	Genres         []Genre        `json:"genres"`
	ReleaseGroup   ReleaseGroup   `json:"release-group"`
}

// Labels returns the names of the labels this release was issued on.
func (r *Release) Labels() []string {
	names := make([]string, 0, len(r.LabelInfo))
	for _, li := range r.LabelInfo {
		names = append(names, li.Label.Name)
	}
	return names
}

func (r *Release) setDefaults() {
	r.ArtistCredit = nonNil(r.ArtistCredit)
	r.LabelInfo = nonNil(r.LabelInfo)
	r.Media = nonNil(r.Media)
	r.Tags = nonNil(r.Tags)
	r.Genres = nonNil(r.Genres)

	for i := range r.Media {
		r.Media[i].Tracks = nonNil(r.Media[i].Tracks)
	}
}

// Recording is a MusicBrainz recording record. A song, more or less.
type Recording struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Disambiguation string         `json:"disambiguation"`
	Length         int            `json:"length"`
	ArtistCredit   []ArtistCredit `json:"artist-credit"`
	Releases       []Release      `json:"releases"`
	ISRCs          []string       `json:"isrcs"`
	Tags           []Tag          `json:"tags"`
	Genres         []Genre        `json:"genres"`
}

func (r *Recording) setDefaults() {
	r.ArtistCredit = nonNil(r.ArtistCredit)
	r.Releases = nonNil(r.Releases)
	r.ISRCs = nonNil(r.ISRCs)
	r.Tags = nonNil(r.Tags)
	r.Genres = nonNil(r.Genres)

	for i := range r.Releases {
		r.Releases[i].setDefaults()
	}
}

// Label is a MusicBrainz label record.
type Label struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Country        string   `json:"country"`
	Disambiguation string   `json:"disambiguation"`
	LabelCode      int      `json:"label-code"`
	LifeSpan       LifeSpan `json:"life-span"`
	Tags           []Tag    `json:"tags"`
	Genres         []Genre  `json:"genres"`
	Aliases        []Alias  `json:"aliases"`
}

func (l *Label) setDefaults() {
	l.Tags = nonNil(l.Tags)
	l.Genres = nonNil(l.Genres)
	l.Aliases = nonNil(l.Aliases)
}

// ReleasePage is a single page of releases returned by browsing.
type ReleasePage struct {
	// Count is the number of releases available in total. It may be larger than
	// the length of Releases.
	Count    int       `json:"release-count"`
	Offset   int       `json:"release-offset"`
	Releases []Release `json:"releases"`
}

// nonNil makes sure absent lists in decoded records are empty instead of nil.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
