// Package library describes the media library the delivery engine resolves
// artwork against, and the capabilities it needs from it.
package library

//go:generate mockgen -destination=mocks/mock_library.go -package=mocks . Library,MarkerStore,Uploader,Server

import (
	"context"
	"strconv"
	"strings"

	"github.com/vmunix/postarr/internal/artwork"
)

// ItemType is the kind of a library entity.
type ItemType string

const (
	TypeMovie      ItemType = "movie"
	TypeShow       ItemType = "show"
	TypeSeason     ItemType = "season"
	TypeEpisode    ItemType = "episode"
	TypeCollection ItemType = "collection"
)

// Section is a library section (a Plex "library").
type Section struct {
	Key       string
	Title     string
	Type      ItemType // movie or show
	Locations []string
}

// Item is a library entity: a movie, show, season, episode or collection.
type Item struct {
	RatingKey    string
	Type         ItemType
	Title        string
	Year         int
	Index        int // season or episode number
	ParentIndex  int // season number of an episode
	SectionKey   string
	SectionTitle string
	GUIDs        []string // e.g. tmdb://949
	Path         string   // first media file, when the server reports one
}

// HasGUID reports whether the item carries the given external GUID.
func (i Item) HasGUID(guid string) bool {
	for _, g := range i.GUIDs {
		if strings.EqualFold(g, guid) {
			return true
		}
	}
	return false
}

// TMDBGUID formats a TMDB id as a library GUID.
func TMDBGUID(id int64) string {
	return "tmdb://" + strconv.FormatInt(id, 10)
}

// Library is read access to the library's catalog.
type Library interface {
	// Sections lists every library section.
	Sections(ctx context.Context) ([]Section, error)
	// Search returns items of the given type in a section whose title
	// matches the query as the server interprets it.
	Search(ctx context.Context, section Section, title string, typ ItemType) ([]Item, error)
	// FindByGUID returns items in a section carrying an external GUID.
	FindByGUID(ctx context.Context, section Section, guid string, typ ItemType) ([]Item, error)
	// Collections lists the collections of a section.
	Collections(ctx context.Context, section Section) ([]Item, error)
	// Children lists the seasons of a show or the episodes of a season.
	Children(ctx context.Context, item Item) ([]Item, error)
	// MediaPath returns the path of the first media file below an item.
	MediaPath(ctx context.Context, item Item) (string, error)
}

// MarkerStore edits the free-form labels of an item. Fingerprint markers
// live in labels.
type MarkerStore interface {
	Labels(ctx context.Context, item Item) ([]string, error)
	AddLabel(ctx context.Context, item Item, label string) error
	RemoveLabel(ctx context.Context, item Item, label string) error
}

// Uploader assigns artwork to an item.
type Uploader interface {
	UploadPoster(ctx context.Context, item Item, loc artwork.Locator) error
	UploadArt(ctx context.Context, item Item, loc artwork.Locator) error
}

// Server is a connected media server: the library, its markers and
// artwork uploads, plus the checks a run performs before it starts.
type Server interface {
	Library
	MarkerStore
	Uploader
	// Ping verifies the server is reachable and accepts the credentials.
	Ping(ctx context.Context) error
	// SectionsByName resolves configured section titles of one type. Every
	// name must exist.
	SectionsByName(ctx context.Context, names []string, typ ItemType) ([]Section, error)
}
