// Package sink delivers resolved artwork to its destination: the media
// server itself, or a local asset directory tree read by other tools.
package sink

import (
	"context"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/outcome"
	"github.com/vmunix/postarr/internal/resolve"
)

// Sink delivers one record to one target. Every failure is reported in
// the returned Outcome; Deliver never aborts a run.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, t resolve.Target, rec artwork.Record) outcome.Outcome
}

func result(status outcome.Status, t resolve.Target, rec artwork.Record, format string, args ...any) outcome.Outcome {
	o := outcome.New(status, format, args...).In(t.Library)
	o.Title = rec.Base().Title
	return o
}
