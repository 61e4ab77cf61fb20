// Package orchestrator runs a batch of artwork records through admission,
// resolution and delivery, reporting one outcome per target.
package orchestrator

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/fingerprint"
	"github.com/vmunix/postarr/internal/library"
	"github.com/vmunix/postarr/internal/outcome"
	"github.com/vmunix/postarr/internal/policy"
	"github.com/vmunix/postarr/internal/resolve"
	"github.com/vmunix/postarr/internal/sink"
)

// SinkKind selects where a run delivers artwork.
type SinkKind string

const (
	SinkPlex       SinkKind = "plex"
	SinkFilesystem SinkKind = "filesystem"
)

// ParseSinkKind validates a sink name. The empty name selects SinkPlex.
func ParseSinkKind(s string) (SinkKind, error) {
	switch k := SinkKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SinkPlex, nil
	case SinkPlex, SinkFilesystem:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSink, s)
	}
}

// Assets configures the filesystem sink.
type Assets struct {
	BaseDir          string
	TempDir          string
	Stage            bool
	StageSpecials    bool
	StageCollections bool
	LibraryPaths     map[string]string
}

// Config is the process-wide configuration shared by every run.
type Config struct {
	MovieLibraries []string
	ShowLibraries  []string
	Defaults       policy.Defaults
	Track          bool
	ResetOverlay   bool
	Assets         Assets
}

// Options are the per-run switches.
type Options struct {
	Force        bool
	Stage        bool
	Temp         bool
	YearOverride int
	Sink         SinkKind
}

// Request is one batch of records to deliver.
type Request struct {
	Records []artwork.Record
	Policy  *policy.Policy
	Options Options
	// Reporter, when set, receives every outcome as it is produced.
	Reporter func(outcome.Outcome)
}

// Orchestrator drives runs against one media server. Runs may execute
// concurrently; they share the server connection and the rate limits.
type Orchestrator struct {
	server library.Server
	cfg    Config
	limits *sink.Limits
	log    *slog.Logger
}

// New creates an Orchestrator. limits may be nil.
func New(server library.Server, cfg Config, limits *sink.Limits, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		server: server,
		cfg:    cfg,
		limits: limits,
		log:    logger.With("component", "orchestrator"),
	}
}

// Run processes req.Records in the order collections, movies, shows. Only
// run-start checks return an error; everything after that is reported as
// outcomes. A cancelled context stops the run between records and returns
// the partial summary with the context error.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*outcome.Summary, error) {
	summary := outcome.NewSummary()

	if err := policy.ValidateYear(req.Options.YearOverride); err != nil {
		return summary, err
	}
	if req.Policy == nil {
		pol, err := policy.New(nil, nil)
		if err != nil {
			return summary, err
		}
		req.Policy = pol
	}
	if req.Options.Sink == "" {
		req.Options.Sink = SinkPlex
	}
	dst, err := o.newSink(req.Options)
	if err != nil {
		return summary, err
	}

	if err := o.server.Ping(ctx); err != nil {
		return summary, err
	}
	movies, err := o.sections(ctx, o.cfg.MovieLibraries, library.TypeMovie)
	if err != nil {
		return summary, err
	}
	shows, err := o.sections(ctx, o.cfg.ShowLibraries, library.TypeShow)
	if err != nil {
		return summary, err
	}

	resolver := resolve.New(o.server, movies, shows, resolve.Options{
		Stage:            o.cfg.Assets.Stage || req.Options.Stage,
		StageSpecials:    o.cfg.Assets.StageSpecials,
		StageCollections: o.cfg.Assets.StageCollections,
		Filesystem:       req.Options.Sink == SinkFilesystem,
		YearOverride:     req.Options.YearOverride,
	}, o.log)

	emit := func(out outcome.Outcome) {
		summary.Add(out)
		if req.Reporter != nil {
			req.Reporter(out)
		}
	}

	o.log.Info("run started", "records", len(req.Records), "sink", dst.Name(), "force", req.Options.Force)
	for _, rec := range ordered(req.Records) {
		if err := ctx.Err(); err != nil {
			o.log.Warn("run cancelled", "processed", summary.Processed)
			return summary, err
		}
		summary.Record()
		o.process(ctx, rec, req.Policy, resolver, dst, emit)
	}
	o.log.Info("run finished", "processed", summary.Processed, "updated", summary.Updated)
	return summary, nil
}

func (o *Orchestrator) newSink(opts Options) (sink.Sink, error) {
	switch opts.Sink {
	case SinkFilesystem:
		base := o.cfg.Assets.BaseDir
		if opts.Temp {
			base = o.cfg.Assets.TempDir
		}
		if base == "" {
			return nil, ErrNoAssetDir
		}
		return sink.NewFilesystem(sink.FilesystemOptions{
			BaseDir:      base,
			LibraryPaths: o.cfg.Assets.LibraryPaths,
			Force:        opts.Force,
		}, o.limits, o.log), nil
	case SinkPlex:
		tracker := fingerprint.NewTracker(o.server, fingerprint.Options{
			Track:        o.cfg.Track,
			Force:        opts.Force,
			ResetOverlay: o.cfg.ResetOverlay,
		}, o.log)
		return sink.NewRemote(o.server, tracker, o.limits, o.log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, opts.Sink)
	}
}

func (o *Orchestrator) sections(ctx context.Context, names []string, typ library.ItemType) ([]library.Section, error) {
	if len(names) == 0 {
		return nil, nil
	}
	secs, err := o.server.SectionsByName(ctx, names, typ)
	if err != nil {
		return nil, fmt.Errorf("resolve %s libraries: %w", typ, err)
	}
	return secs, nil
}

func (o *Orchestrator) process(ctx context.Context, rec artwork.Record, pol *policy.Policy, resolver *resolve.Resolver, dst sink.Sink, emit func(outcome.Outcome)) {
	m := rec.Base()
	desc := artwork.Describe(rec)
	label := m.Kind.Label()

	if err := rec.Validate(); err != nil {
		emit(report(outcome.Failed, rec, "", "%s | invalid record - More info: %v", desc, err))
		return
	}

	switch d := pol.Admit(rec, o.cfg.Defaults); d.Verdict {
	case policy.RejectByFilter:
		emit(report(outcome.Filtered, rec, "", "%s | %s filtered by %s", desc, label, d.Reason))
		return
	case policy.RejectByExclusion:
		emit(report(outcome.Excluded, rec, "", "%s | %s excluded", desc, label))
		return
	}

	targets, err := resolver.Resolve(ctx, rec)
	var notFound *resolve.NotFoundError
	switch {
	case errors.As(err, &notFound):
		emit(report(outcome.NotFound, rec, "", "%s", notFound.Error()))
		return
	case err != nil:
		emit(report(outcome.Failed, rec, "", "%s | failed to update %s - More info: %v", desc, label, err))
		return
	}

	for _, t := range targets {
		switch {
		case t.Unavailable != "":
			emit(report(outcome.NotAvailable, rec, t.Library, "%s | %s not available in %s", slotless(t.Description, rec), t.Unavailable, t.Library))
		case t.Err != nil:
			emit(report(outcome.Failed, rec, t.Library, "%s | failed to update %s in %s - More info: %v", t.Description, t.Label(), t.Library, t.Err))
		default:
			emit(dst.Deliver(ctx, t, rec))
		}
	}
}

func report(status outcome.Status, rec artwork.Record, lib, format string, args ...any) outcome.Outcome {
	out := outcome.New(status, format, args...).In(lib)
	out.Title = rec.Base().Title
	return out
}

// slotless drops the season and episode part of a show description.
func slotless(desc string, rec artwork.Record) string {
	show, ok := rec.(*artwork.Show)
	if !ok {
		return desc
	}
	if before, _, found := strings.Cut(desc, " : "+show.Season.Name()); found {
		return before
	}
	return desc
}

func mediaRank(m artwork.MediaKind) int {
	switch m {
	case artwork.MediaCollection:
		return 0
	case artwork.MediaMovie:
		return 1
	case artwork.MediaShow:
		return 2
	default:
		return 3
	}
}

// ordered returns records sorted by media kind, keeping input order within
// a kind.
func ordered(records []artwork.Record) []artwork.Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b artwork.Record) int {
		return cmp.Compare(mediaRank(a.Media()), mediaRank(b.Media()))
	})
	return out
}
