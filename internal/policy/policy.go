// Package policy decides whether an artwork record is eligible for delivery.
package policy

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/vmunix/postarr/internal/artwork"
)

// Verdict is the outcome of an admission check.
type Verdict int

const (
	Admit Verdict = iota
	RejectByFilter
	RejectByExclusion
)

func (v Verdict) String() string {
	switch v {
	case Admit:
		return "admit"
	case RejectByFilter:
		return "filtered"
	case RejectByExclusion:
		return "excluded"
	default:
		return "unknown"
	}
}

// Decision is a Verdict plus the reason shown to the user. For filter
// rejections the reason is "request" when the run's own filters rejected
// the record, or the source name when the source default list did.
type Decision struct {
	Verdict Verdict
	Reason  string
}

// Defaults maps a source to the artwork kinds it delivers when a run has
// no explicit filters. An empty list allows every kind.
type Defaults map[artwork.Source][]artwork.Kind

// For returns the allow-list of src. Sources without an entry of their
// own, such as local uploads, share the MediUX list.
func (d Defaults) For(src artwork.Source) []artwork.Kind {
	if kinds, ok := d[src]; ok {
		return kinds
	}
	if src == artwork.SourceThePosterDB {
		return nil
	}
	return d[artwork.SourceMediux]
}

// episodeCode matches season/episode exclusion tokens such as S01 or s01e03.
var episodeCode = regexp.MustCompile(`^[Ss](\d{1,3})(?:[Ee](\d{1,4}))?$`)

type seasonPattern struct {
	season  int
	episode int // -1 for the whole season
}

// Policy is the per-run filter and exclusion configuration. A Policy may
// be shared by concurrent runs; Filters and Exclude must not change after
// first use.
type Policy struct {
	Filters []artwork.Kind
	Exclude []string

	once     sync.Once
	ids      map[string]struct{}
	patterns []seasonPattern
}

// New builds a Policy from filter names and exclusion tokens. Unknown
// filter names are reported together.
func New(filters, exclude []string) (*Policy, error) {
	p := &Policy{Exclude: exclude}

	var invalid []string
	for _, f := range filters {
		k, err := artwork.ParseKind(f)
		if err != nil {
			invalid = append(invalid, f)
			continue
		}
		if !slices.Contains(p.Filters, k) {
			p.Filters = append(p.Filters, k)
		}
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilter, strings.Join(invalid, ", "))
	}

	p.once.Do(p.compile)
	return p, nil
}

func (p *Policy) compile() {
	p.ids = make(map[string]struct{}, len(p.Exclude))
	for _, tok := range p.Exclude {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if m := episodeCode.FindStringSubmatch(tok); m != nil {
			season, _ := strconv.Atoi(m[1])
			episode := -1
			if m[2] != "" {
				episode, _ = strconv.Atoi(m[2])
			}
			p.patterns = append(p.patterns, seasonPattern{season: season, episode: episode})
			continue
		}
		p.ids[tok] = struct{}{}
	}
}

// Admit applies exclusion and then the allow-lists. Exclusion always wins.
func (p *Policy) Admit(rec artwork.Record, defaults Defaults) Decision {
	if p.Excluded(rec) {
		return Decision{Verdict: RejectByExclusion, Reason: "excluded"}
	}

	m := rec.Base()
	if len(p.Filters) > 0 {
		if slices.Contains(p.Filters, m.Kind) {
			return Decision{Verdict: Admit}
		}
		return Decision{Verdict: RejectByFilter, Reason: "request"}
	}

	allowed := defaults.For(m.Source)
	if len(allowed) == 0 || slices.Contains(allowed, m.Kind) {
		return Decision{Verdict: Admit}
	}
	return Decision{Verdict: RejectByFilter, Reason: string(m.Source)}
}

// Excluded reports whether rec matches an excluded identifier or, for
// show records, a season/episode code. A season-only code covers the
// season cover and every episode of that season.
func (p *Policy) Excluded(rec artwork.Record) bool {
	p.once.Do(p.compile)
	if _, ok := p.ids[rec.Base().ID]; ok {
		return true
	}

	show, ok := rec.(*artwork.Show)
	if !ok || !show.Season.IsNumber() {
		return false
	}
	for _, pat := range p.patterns {
		if pat.season != show.Season.Number() {
			continue
		}
		if pat.episode < 0 {
			return true
		}
		if show.Episode.IsNumber() && show.Episode.Number() == pat.episode {
			return true
		}
	}
	return false
}

// ValidateYear checks a year override.
func ValidateYear(year int) error {
	if year == 0 {
		return nil
	}
	if year < 1900 || year > 2100 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return nil
}

var (
	// ErrInvalidFilter indicates a filter name that is not an artwork kind.
	ErrInvalidFilter = errors.New("invalid filter type")

	// ErrInvalidYear indicates a year override outside 1900-2100.
	ErrInvalidYear = errors.New("year must be between 1900-2100")
)
