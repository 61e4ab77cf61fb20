package fingerprint

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vmunix/postarr/internal/library"
)

// OverlayLabel is the label an overlay tool uses to mark items whose
// poster it has composited.
const OverlayLabel = "Overlay"

// Decision is the idempotency verdict for one target.
type Decision int

const (
	Create Decision = iota
	Replace
	Skip
)

func (d Decision) String() string {
	switch d {
	case Create:
		return "create"
	case Replace:
		return "replace"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// Plan is a Decision plus what Commit has to clean up.
type Plan struct {
	Decision    Decision
	Fingerprint Fingerprint
	// Forced is set when the marker matched but delivery was forced.
	Forced bool
	// Stale lists same-slot markers to remove after delivery.
	Stale []string
	// current reports the new fingerprint is already on the target.
	current bool
	labels  []string
}

// Options controls marker tracking.
type Options struct {
	// Track writes markers after delivery. With tracking off every marker
	// of the slot is removed instead.
	Track bool
	// Force delivers even when the marker matches.
	Force bool
	// ResetOverlay clears OverlayLabel before delivery.
	ResetOverlay bool
}

// Tracker reads and writes fingerprint markers through a MarkerStore.
// Concurrent runs touching the same item are last-write-wins.
type Tracker struct {
	store library.MarkerStore
	opts  Options
	log   *slog.Logger
}

// NewTracker creates a Tracker.
func NewTracker(store library.MarkerStore, opts Options, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{store: store, opts: opts, log: logger.With("component", "tracker")}
}

// Decide compares fp with the markers on item.
func (t *Tracker) Decide(ctx context.Context, item library.Item, fp Fingerprint) (*Plan, error) {
	labels, err := t.store.Labels(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("read markers: %w", err)
	}

	p := &Plan{Fingerprint: fp, labels: labels}
	var sameSlot bool
	for _, l := range labels {
		if !fp.Matches(l) {
			continue
		}
		sameSlot = true
		if l == fp.String() && t.opts.Track {
			p.current = true
			continue
		}
		p.Stale = append(p.Stale, l)
	}

	switch {
	case p.current && !t.opts.Force:
		p.Decision = Skip
	case p.current:
		p.Decision = Replace
		p.Forced = true
	case sameSlot:
		p.Decision = Replace
	default:
		p.Decision = Create
	}

	t.log.Debug("fingerprint decision", "item", item.RatingKey, "fingerprint", fp.String(), "decision", p.Decision)
	return p, nil
}

// ResetOverlay removes the overlay label before a delivery when configured.
func (t *Tracker) ResetOverlay(ctx context.Context, item library.Item, p *Plan) error {
	if !t.opts.ResetOverlay || !slices.Contains(p.labels, OverlayLabel) {
		return nil
	}
	if err := t.store.RemoveLabel(ctx, item, OverlayLabel); err != nil {
		return fmt.Errorf("reset overlay: %w", err)
	}
	return nil
}

// Commit records a successful delivery: superseded markers are removed
// and, when tracking, the new marker is written.
func (t *Tracker) Commit(ctx context.Context, item library.Item, p *Plan) error {
	for _, l := range p.Stale {
		if err := t.store.RemoveLabel(ctx, item, l); err != nil {
			return fmt.Errorf("remove marker %s: %w", l, err)
		}
	}
	if !t.opts.Track || p.current {
		return nil
	}
	if err := t.store.AddLabel(ctx, item, p.Fingerprint.String()); err != nil {
		return fmt.Errorf("write marker: %w", err)
	}
	return nil
}
