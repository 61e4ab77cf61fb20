package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/fingerprint"
	"github.com/vmunix/postarr/internal/library"
	"github.com/vmunix/postarr/internal/outcome"
	"github.com/vmunix/postarr/internal/resolve"
)

// Remote uploads artwork to the media server and keeps fingerprint
// markers on the receiving items.
type Remote struct {
	uploader library.Uploader
	tracker  *fingerprint.Tracker
	limits   *Limits
	log      *slog.Logger
}

var _ Sink = (*Remote)(nil)

// NewRemote creates a Remote sink. limits may be nil.
func NewRemote(uploader library.Uploader, tracker *fingerprint.Tracker, limits *Limits, logger *slog.Logger) *Remote {
	if logger == nil {
		logger = slog.Default()
	}
	return &Remote{
		uploader: uploader,
		tracker:  tracker,
		limits:   limits,
		log:      logger.With("component", "remote-sink"),
	}
}

// Name identifies the sink in logs and history.
func (r *Remote) Name() string { return "plex" }

// Deliver uploads rec to t.Item unless the item already carries it.
func (r *Remote) Deliver(ctx context.Context, t resolve.Target, rec artwork.Record) outcome.Outcome {
	if t.Staged || t.Item.RatingKey == "" {
		return r.failed(t, rec, ErrNotInLibrary)
	}

	fp, err := fingerprint.Compute(rec, t.Kind)
	if err != nil {
		return r.failed(t, rec, err)
	}
	plan, err := r.tracker.Decide(ctx, t.Item, fp)
	if err != nil {
		return r.failed(t, rec, err)
	}
	if plan.Decision == fingerprint.Skip {
		return result(outcome.Unchanged, t, rec, "%s | %s unchanged in %s", t.Description, t.Label(), t.Library)
	}

	if err := r.tracker.ResetOverlay(ctx, t.Item, plan); err != nil {
		return r.failed(t, rec, err)
	}
	if err := r.limits.Wait(ctx, rec); err != nil {
		return r.failed(t, rec, err)
	}
	if err := r.upload(ctx, t.Item, fp.Prefix, rec.Base().Locator); err != nil {
		return r.failed(t, rec, err)
	}
	if err := r.tracker.Commit(ctx, t.Item, plan); err != nil {
		r.log.Warn("marker not recorded", "item", t.Item.RatingKey, "kind", t.Kind, "error", err)
		return result(outcome.Failed, t, rec, "%s | %s uploaded to %s, marker not recorded - More info: %v", t.Description, t.Label(), t.Library, err)
	}

	r.log.Info("artwork uploaded", "item", t.Item.RatingKey, "kind", t.Kind, "decision", plan.Decision, "forced", plan.Forced)
	switch {
	case plan.Forced:
		return result(outcome.Replaced, t, rec, "%s | %s forced update in %s", t.Description, t.Label(), t.Library)
	case plan.Decision == fingerprint.Replace:
		return result(outcome.Replaced, t, rec, "%s | %s replaced in %s", t.Description, t.Label(), t.Library)
	default:
		return result(outcome.Delivered, t, rec, "%s | %s updated in %s", t.Description, t.Label(), t.Library)
	}
}

func (r *Remote) upload(ctx context.Context, item library.Item, prefix fingerprint.Prefix, loc artwork.Locator) error {
	var err error
	if prefix == fingerprint.PrefixBackground {
		err = r.uploader.UploadArt(ctx, item, loc)
	} else {
		err = r.uploader.UploadPoster(ctx, item, loc)
	}
	if err != nil {
		return fmt.Errorf("upload %s: %w", loc, err)
	}
	return nil
}

func (r *Remote) failed(t resolve.Target, rec artwork.Record, err error) outcome.Outcome {
	r.log.Warn("delivery failed", "library", t.Library, "kind", t.Kind, "error", err)
	return result(outcome.Failed, t, rec, "%s | failed to update %s in %s - More info: %v", t.Description, t.Label(), t.Library, err)
}
