// Package artwork defines the normalized artwork record handed to the
// delivery engine by the scraping and upload collaborators.
package artwork

import (
	"fmt"
	"strings"
)

// MediaKind discriminates the record union.
type MediaKind string

const (
	MediaMovie      MediaKind = "movie"
	MediaShow       MediaKind = "show"
	MediaCollection MediaKind = "collection"
	MediaUnknown    MediaKind = "unknown"
)

// Kind is the presentation role of an image.
type Kind string

const (
	KindPoster           Kind = "poster"
	KindBackground       Kind = "background"
	KindShowCover        Kind = "show_cover"
	KindSeasonCover      Kind = "season_cover"
	KindTitleCard        Kind = "title_card"
	KindCollectionPoster Kind = "collection_poster"
)

// AllKinds lists every artwork kind in display order.
var AllKinds = []Kind{
	KindTitleCard,
	KindBackground,
	KindSeasonCover,
	KindShowCover,
	KindPoster,
	KindCollectionPoster,
}

// ParseKind converts a filter or record type name to a Kind.
// "movie_poster" is accepted as the catalog spelling of KindPoster.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	switch k := Kind(name); k {
	case KindPoster, KindBackground, KindShowCover, KindSeasonCover, KindTitleCard, KindCollectionPoster:
		return k, nil
	case "movie_poster":
		return KindPoster, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Label returns the human name used in outcome messages.
func (k Kind) Label() string {
	switch k {
	case KindPoster, KindCollectionPoster:
		return "Poster"
	case KindBackground:
		return "Background"
	case KindShowCover:
		return "Show cover"
	case KindSeasonCover:
		return "Season cover"
	case KindTitleCard:
		return "Title card"
	default:
		return string(k)
	}
}

// Source identifies the catalog or upload origin of a record.
type Source string

const (
	SourceThePosterDB Source = "theposterdb"
	SourceMediux      Source = "mediux"
	SourceUpload      Source = "upload"
)

// DisplayName returns the catalog name as shown to users.
func (s Source) DisplayName() string {
	switch s {
	case SourceThePosterDB:
		return "ThePosterDB"
	case SourceMediux:
		return "MediUX"
	case SourceUpload:
		return "Upload"
	default:
		return string(s)
	}
}

// Locator points at the image content: a remote URL, or a local file
// with a precomputed checksum.
type Locator struct {
	URL      string
	Path     string
	Checksum string
}

// IsFile reports whether the content is a local file.
func (l Locator) IsFile() bool {
	return l.Path != ""
}

func (l Locator) String() string {
	if l.IsFile() {
		return l.Path
	}
	return l.URL
}

// Meta holds the fields shared by every record variant.
type Meta struct {
	Title   string
	Year    int // 0 when unknown
	Kind    Kind
	Source  Source
	ID      string
	Author  string
	Locator Locator
	TMDBID  *int64 // resolution hint, nil when the catalog did not provide one
}

// Record is the closed set of artwork records. The concrete types are
// *Movie, *Show, *Collection and *Unknown.
type Record interface {
	Media() MediaKind
	Base() *Meta
	Validate() error
	record()
}

// Movie is artwork for a single film.
type Movie struct {
	Meta
}

// Show is artwork for a series, one of its seasons, or one of its episodes.
type Show struct {
	Meta
	Season  SeasonRef
	Episode EpisodeRef
}

// Collection is artwork for a movie collection.
type Collection struct {
	Meta
}

// Unknown carries records whose media type could not be determined.
type Unknown struct {
	Meta
	RawMedia string
}

func (*Movie) Media() MediaKind      { return MediaMovie }
func (*Show) Media() MediaKind       { return MediaShow }
func (*Collection) Media() MediaKind { return MediaCollection }
func (*Unknown) Media() MediaKind    { return MediaUnknown }

func (m *Movie) Base() *Meta      { return &m.Meta }
func (s *Show) Base() *Meta       { return &s.Meta }
func (c *Collection) Base() *Meta { return &c.Meta }
func (u *Unknown) Base() *Meta    { return &u.Meta }

func (*Movie) record()      {}
func (*Show) record()       {}
func (*Collection) record() {}
func (*Unknown) record()    {}

func (m *Meta) validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrMissingTitle
	}
	if m.Locator.URL == "" && m.Locator.Path == "" {
		return ErrMissingLocator
	}
	if m.Locator.IsFile() && m.Locator.Checksum == "" {
		return fmt.Errorf("%w: %s", ErrMissingChecksum, m.Locator.Path)
	}
	return nil
}

// Validate checks that a movie record can be processed.
func (m *Movie) Validate() error {
	if err := m.Meta.validate(); err != nil {
		return err
	}
	if m.Kind != KindPoster && m.Kind != KindBackground {
		return fmt.Errorf("%w: %s for movie", ErrInvalidKind, m.Kind)
	}
	return nil
}

// Validate checks that a collection record can be processed.
func (c *Collection) Validate() error {
	if err := c.Meta.validate(); err != nil {
		return err
	}
	if c.Kind != KindCollectionPoster && c.Kind != KindBackground {
		return fmt.Errorf("%w: %s for collection", ErrInvalidKind, c.Kind)
	}
	return nil
}

// Validate checks the show addressing invariant: show-level records never
// carry an episode, and season/episode numbers are non-negative.
func (s *Show) Validate() error {
	if err := s.Meta.validate(); err != nil {
		return err
	}
	switch {
	case s.Season.IsNumber():
		if s.Season.Number() < 0 {
			return fmt.Errorf("%w: season %d", ErrInvalidAddress, s.Season.Number())
		}
		if s.Episode.IsNumber() && s.Episode.Number() < 0 {
			return fmt.Errorf("%w: episode %d", ErrInvalidAddress, s.Episode.Number())
		}
	default:
		if !s.Episode.IsNone() {
			return fmt.Errorf("%w: episode %s without season number", ErrInvalidAddress, s.Episode)
		}
	}
	if want := s.ImpliedKind(); s.Kind != "" && s.Kind != want {
		return fmt.Errorf("%w: %s addressed as %s", ErrInvalidKind, s.Kind, want)
	}
	return nil
}

// Validate always fails: the media type is not known.
func (u *Unknown) Validate() error {
	return fmt.Errorf("%w: %q", ErrUnknownMedia, u.RawMedia)
}

// ImpliedKind returns the artwork kind selected by the season/episode
// addressing of a show record.
func (s *Show) ImpliedKind() Kind {
	switch {
	case s.Season.IsCover(), s.Season.IsNone():
		return KindShowCover
	case s.Season.IsBackdrop():
		return KindBackground
	case s.Episode.IsNumber():
		return KindTitleCard
	default:
		return KindSeasonCover
	}
}
