package resolve

import (
	"errors"
	"fmt"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/library"
)

// ErrNotFound matches every *NotFoundError.
var ErrNotFound = errors.New("not available on Plex")

// NotFoundError reports that no configured section contains the record's
// movie, show or collection.
type NotFoundError struct {
	Media       artwork.MediaKind
	Description string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s | %s not available on Plex", e.Description, mediaName(e.Media))
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func mediaName(m artwork.MediaKind) string {
	switch m {
	case artwork.MediaMovie:
		return "Movie"
	case artwork.MediaShow:
		return "Show"
	case artwork.MediaCollection:
		return "Collection"
	default:
		return "Media"
	}
}

// Target is one delivery destination for a record.
type Target struct {
	// Item is the library entity receiving the artwork. It is the zero
	// Item when Staged is set.
	Item    library.Item
	Library string // section title
	Kind    artwork.Kind
	// FileName is the asset file name without extension: poster,
	// background, Season01 or S01E03.
	FileName    string
	Description string

	// MediaPath is a media file of the movie or show, used to locate the
	// asset folder. Only resolved for filesystem delivery.
	MediaPath string
	// Folder is the asset folder name of a collection.
	Folder string

	// Staged marks a season, episode or collection that is not in the
	// library yet but is delivered ahead of time.
	Staged bool
	// Unavailable names the missing season or episode when the slot is
	// absent and staging does not apply.
	Unavailable string
	// Err is a lookup failure confined to this target.
	Err error
}

// Label is the artwork name used in messages.
func (t Target) Label() string {
	return t.Kind.Label()
}
