package artwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Season sentinels as spelled by the catalogs.
const (
	SeasonCoverName    = "Cover"
	SeasonBackdropName = "Backdrop"
	EpisodeCoverName   = "Cover"
	SpecialsName       = "Specials"
)

type refKind uint8

const (
	refNone refKind = iota
	refNumber
	refCover
	refBackdrop
)

// SeasonRef addresses a show record: a season number, the show cover,
// the show backdrop, or nothing.
type SeasonRef struct {
	kind refKind
	n    int
}

// SeasonNumber addresses season n. Season 0 is the specials season.
func SeasonNumber(n int) SeasonRef { return SeasonRef{kind: refNumber, n: n} }

// SeasonCover addresses the show-level cover.
func SeasonCover() SeasonRef { return SeasonRef{kind: refCover} }

// SeasonBackdrop addresses the show-level background.
func SeasonBackdrop() SeasonRef { return SeasonRef{kind: refBackdrop} }

// NoSeason is the zero SeasonRef.
func NoSeason() SeasonRef { return SeasonRef{} }

func (s SeasonRef) IsNumber() bool   { return s.kind == refNumber }
func (s SeasonRef) IsCover() bool    { return s.kind == refCover }
func (s SeasonRef) IsBackdrop() bool { return s.kind == refBackdrop }
func (s SeasonRef) IsNone() bool     { return s.kind == refNone }

// IsSpecials reports whether the ref addresses season 0.
func (s SeasonRef) IsSpecials() bool { return s.kind == refNumber && s.n == 0 }

// Number returns the season number, or -1 when the ref is not a number.
func (s SeasonRef) Number() int {
	if s.kind != refNumber {
		return -1
	}
	return s.n
}

// Name returns "Season 01" or "Specials" for numbered seasons.
func (s SeasonRef) Name() string {
	if s.IsSpecials() {
		return SpecialsName
	}
	return fmt.Sprintf("Season %02d", s.n)
}

func (s SeasonRef) String() string {
	switch s.kind {
	case refNumber:
		return strconv.Itoa(s.n)
	case refCover:
		return SeasonCoverName
	case refBackdrop:
		return SeasonBackdropName
	default:
		return "none"
	}
}

// MarshalJSON encodes numbers as JSON numbers, sentinels as strings and
// the empty ref as null.
func (s SeasonRef) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case refNumber:
		return json.Marshal(s.n)
	case refCover:
		return json.Marshal(SeasonCoverName)
	case refBackdrop:
		return json.Marshal(SeasonBackdropName)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a numeric string, "Cover", "Backdrop" or null.
func (s *SeasonRef) UnmarshalJSON(data []byte) error {
	raw, isNull, err := decodeRef(data)
	if err != nil {
		return fmt.Errorf("season: %w", err)
	}
	if isNull {
		*s = NoSeason()
		return nil
	}
	switch {
	case strings.EqualFold(raw, SeasonCoverName):
		*s = SeasonCover()
	case strings.EqualFold(raw, SeasonBackdropName):
		*s = SeasonBackdrop()
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: season %q", ErrInvalidAddress, raw)
		}
		*s = SeasonNumber(n)
	}
	return nil
}

// EpisodeRef addresses an episode number, the season cover, or nothing.
type EpisodeRef struct {
	kind refKind
	n    int
}

// EpisodeNumber addresses episode n.
func EpisodeNumber(n int) EpisodeRef { return EpisodeRef{kind: refNumber, n: n} }

// EpisodeCover addresses the season cover explicitly.
func EpisodeCover() EpisodeRef { return EpisodeRef{kind: refCover} }

// NoEpisode is the zero EpisodeRef.
func NoEpisode() EpisodeRef { return EpisodeRef{} }

func (e EpisodeRef) IsNumber() bool { return e.kind == refNumber }
func (e EpisodeRef) IsCover() bool  { return e.kind == refCover }
func (e EpisodeRef) IsNone() bool   { return e.kind == refNone }

// Number returns the episode number, or -1 when the ref is not a number.
func (e EpisodeRef) Number() int {
	if e.kind != refNumber {
		return -1
	}
	return e.n
}

func (e EpisodeRef) String() string {
	switch e.kind {
	case refNumber:
		return strconv.Itoa(e.n)
	case refCover:
		return EpisodeCoverName
	default:
		return "none"
	}
}

// MarshalJSON mirrors SeasonRef.MarshalJSON.
func (e EpisodeRef) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case refNumber:
		return json.Marshal(e.n)
	case refCover:
		return json.Marshal(EpisodeCoverName)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a numeric string, "Cover" or null.
func (e *EpisodeRef) UnmarshalJSON(data []byte) error {
	raw, isNull, err := decodeRef(data)
	if err != nil {
		return fmt.Errorf("episode: %w", err)
	}
	if isNull {
		*e = NoEpisode()
		return nil
	}
	if strings.EqualFold(raw, EpisodeCoverName) {
		*e = EpisodeCover()
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: episode %q", ErrInvalidAddress, raw)
	}
	*e = EpisodeNumber(n)
	return nil
}

// decodeRef returns the textual form of a JSON number or string.
func decodeRef(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", true, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s == "", nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", false, err
	}
	return n.String(), false, nil
}
