// Package fingerprint identifies delivered artwork by content and decides
// whether a target already carries it.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vmunix/postarr/internal/artwork"
)

// Prefix namespaces markers by artwork slot. A target carries at most one
// marker per prefix.
type Prefix string

const (
	PrefixBackground Prefix = "BID:"
	PrefixCover      Prefix = "CID:"
	PrefixPoster     Prefix = "PID:"
	PrefixSeason     Prefix = "SID:"
	PrefixEpisode    Prefix = "EID:"
)

// ErrNoContent indicates a record without a URL or checksum to hash.
var ErrNoContent = errors.New("no content to fingerprint")

var md5Hex = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)

// PrefixFor returns the marker prefix of an artwork kind.
func PrefixFor(k artwork.Kind) Prefix {
	switch k {
	case artwork.KindBackground:
		return PrefixBackground
	case artwork.KindShowCover:
		return PrefixCover
	case artwork.KindSeasonCover:
		return PrefixSeason
	case artwork.KindTitleCard:
		return PrefixEpisode
	default:
		return PrefixPoster
	}
}

// Fingerprint is a marker value: prefix plus 32 hex characters.
type Fingerprint struct {
	Prefix Prefix
	Hash   string
}

func (f Fingerprint) String() string {
	return string(f.Prefix) + f.Hash
}

// Matches reports whether a label belongs to the same slot.
func (f Fingerprint) Matches(label string) bool {
	return strings.HasPrefix(label, string(f.Prefix))
}

// Compute fingerprints a record for the slot of the given kind. Local
// files use their checksum; remote content uses the MD5 of its URL without
// the cache-buster parameter so refetches keep the same identity.
func Compute(rec artwork.Record, kind artwork.Kind) (Fingerprint, error) {
	loc := rec.Base().Locator
	fp := Fingerprint{Prefix: PrefixFor(kind)}

	switch {
	case loc.IsFile():
		if loc.Checksum == "" {
			return Fingerprint{}, fmt.Errorf("%w: %s", ErrNoContent, loc.Path)
		}
		if md5Hex.MatchString(loc.Checksum) {
			fp.Hash = strings.ToLower(loc.Checksum)
		} else {
			fp.Hash = sum(loc.Checksum)
		}
	case loc.URL != "":
		fp.Hash = sum(StripCacheBuster(loc.URL))
	default:
		return Fingerprint{}, ErrNoContent
	}
	return fp, nil
}

// StripCacheBuster removes the _cb query parameter from a URL and keeps
// every other parameter in its original order.
func StripCacheBuster(u string) string {
	base, query, ok := strings.Cut(u, "?")
	if !ok {
		// Some catalogs append the buster without a query separator.
		if i := strings.Index(u, "&_cb="); i >= 0 {
			return u[:i]
		}
		return u
	}

	params := strings.Split(query, "&")
	kept := make([]string, 0, len(params))
	for _, p := range params {
		if p == "_cb" || strings.HasPrefix(p, "_cb=") {
			continue
		}
		kept = append(kept, p)
	}
	switch {
	case len(kept) == len(params):
		return u
	case len(kept) == 0:
		return base
	default:
		return base + "?" + strings.Join(kept, "&")
	}
}

func sum(s string) string {
	h := md5.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}
