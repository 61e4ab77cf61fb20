package sink

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/vmunix/postarr/internal/artwork"
)

// DefaultIntervals is the minimum spacing between remote fetches per
// catalog source.
var DefaultIntervals = map[artwork.Source]time.Duration{
	artwork.SourceThePosterDB: 6 * time.Second,
}

// Limits spaces out fetches of remote content per source. One Limits is
// shared by every run of a process so concurrent runs respect the same
// budget.
type Limits struct {
	limiters map[artwork.Source]*rate.Limiter
}

// NewLimits creates a limiter per source. Non-positive intervals disable
// limiting for that source.
func NewLimits(intervals map[artwork.Source]time.Duration) *Limits {
	l := &Limits{limiters: make(map[artwork.Source]*rate.Limiter, len(intervals))}
	for src, d := range intervals {
		if d <= 0 {
			continue
		}
		l.limiters[src] = rate.NewLimiter(rate.Every(d), 1)
	}
	return l
}

// Wait blocks until the record's source may be fetched again. Local files
// are never limited.
func (l *Limits) Wait(ctx context.Context, rec artwork.Record) error {
	if l == nil {
		return nil
	}
	m := rec.Base()
	if m.Locator.IsFile() || m.Locator.URL == "" {
		return nil
	}
	lim, ok := l.limiters[m.Source]
	if !ok {
		return nil
	}
	return lim.Wait(ctx)
}
