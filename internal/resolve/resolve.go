// Package resolve maps artwork records to the library entities that should
// receive them.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/library"
	"github.com/vmunix/postarr/pkg/title"
)

// Options controls availability rules for a run.
type Options struct {
	// Stage allows seasons and episodes that are not in the library yet.
	// It only has an effect together with Filesystem.
	Stage bool
	// StageSpecials allows a missing specials season with Filesystem.
	StageSpecials bool
	// StageCollections stages missing collections into every movie
	// section with Filesystem.
	StageCollections bool
	// Filesystem resolves media paths for the asset-directory sink.
	Filesystem bool
	// YearOverride replaces the record year for lookups when non-zero.
	YearOverride int
}

func (o Options) staging() bool {
	return o.Filesystem && o.Stage
}

// Resolver resolves records against configured movie and show sections.
type Resolver struct {
	lib    library.Library
	movies []library.Section
	shows  []library.Section
	opts   Options
	cache  *childCache
	log    *slog.Logger
}

// New creates a Resolver.
func New(lib library.Library, movies, shows []library.Section, opts Options, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		lib:    lib,
		movies: movies,
		shows:  shows,
		opts:   opts,
		cache:  newChildCache(childrenTTL),
		log:    logger.With("component", "resolver"),
	}
}

// Resolve returns the targets for a record. A *NotFoundError is returned
// when no section has the record's movie, show or collection.
func (r *Resolver) Resolve(ctx context.Context, rec artwork.Record) ([]Target, error) {
	switch rec := rec.(type) {
	case *artwork.Collection:
		return r.resolveCollection(ctx, rec)
	case *artwork.Movie:
		return r.resolveMovie(ctx, rec)
	case *artwork.Show:
		return r.resolveShow(ctx, rec)
	case *artwork.Unknown:
		return nil, rec.Validate()
	default:
		return nil, fmt.Errorf("%w: %T", artwork.ErrUnknownMedia, rec)
	}
}

func (r *Resolver) year(m *artwork.Meta) int {
	if r.opts.YearOverride > 0 {
		return r.opts.YearOverride
	}
	return m.Year
}

func (r *Resolver) resolveCollection(ctx context.Context, rec *artwork.Collection) ([]Target, error) {
	fileName := "poster"
	if rec.Kind == artwork.KindBackground {
		fileName = "background"
	}

	found, lookupErr := r.findCollections(ctx, rec.Title)
	if len(found) == 0 {
		if stripped := title.StripCollectionSuffix(rec.Title); stripped != rec.Title {
			var err error
			found, err = r.findCollections(ctx, stripped)
			lookupErr = errors.Join(lookupErr, err)
		}
	}

	var targets []Target
	for _, item := range found {
		targets = append(targets, Target{
			Item:        item,
			Library:     item.SectionTitle,
			Kind:        rec.Kind,
			FileName:    fileName,
			Folder:      item.Title,
			Description: artwork.DescribeAs(rec, item.Title, 0),
		})
	}
	if len(targets) > 0 {
		return targets, nil
	}

	if r.opts.Filesystem && r.opts.StageCollections && lookupErr == nil {
		for _, sec := range r.movies {
			targets = append(targets, Target{
				Library:     sec.Title,
				Kind:        rec.Kind,
				FileName:    fileName,
				Folder:      rec.Title,
				Description: artwork.Describe(rec),
				Staged:      true,
			})
		}
		r.log.Debug("staging collection", "title", rec.Title, "sections", len(targets))
		return targets, nil
	}

	if lookupErr != nil {
		return nil, fmt.Errorf("find collection %q: %w", rec.Title, lookupErr)
	}
	return nil, &NotFoundError{Media: artwork.MediaCollection, Description: artwork.Describe(rec)}
}

// findCollections returns the collections titled name in every movie
// section. Errors from individual sections are collected and do not stop
// the lookup in the others.
func (r *Resolver) findCollections(ctx context.Context, name string) ([]library.Item, error) {
	var (
		found []library.Item
		errs  []error
	)
	for _, sec := range r.movies {
		colls, err := r.lib.Collections(ctx, sec)
		if err != nil {
			r.log.Debug("collection lookup failed", "section", sec.Title, "error", err)
			errs = append(errs, err)
			continue
		}
		for _, c := range colls {
			if strings.EqualFold(strings.TrimSpace(c.Title), name) {
				found = append(found, c)
				r.log.Debug("collection found", "title", name, "section", sec.Title)
			}
		}
	}
	return found, errors.Join(errs...)
}

func (r *Resolver) resolveMovie(ctx context.Context, rec *artwork.Movie) ([]Target, error) {
	year := r.year(&rec.Meta)
	fileName := "poster"
	if rec.Kind == artwork.KindBackground {
		fileName = "background"
	}

	items, err := r.findAll(ctx, r.movies, rec.Meta, year, library.TypeMovie)
	if len(items) == 0 {
		if err != nil {
			return nil, fmt.Errorf("find movie %q: %w", rec.Title, err)
		}
		return nil, &NotFoundError{Media: artwork.MediaMovie, Description: artwork.DescribeAs(rec, rec.Title, year)}
	}

	targets := make([]Target, 0, len(items))
	for _, item := range items {
		t := Target{
			Item:        item,
			Library:     item.SectionTitle,
			Kind:        rec.Kind,
			FileName:    fileName,
			Description: artwork.DescribeAs(rec, title.StripYear(item.Title), pick(item.Year, year)),
		}
		if r.opts.Filesystem {
			t.MediaPath, t.Err = r.lib.MediaPath(ctx, item)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// findAll looks the record up in every section: by TMDB GUID when the
// record carries one, then by title and year. At most one item is taken
// per section.
func (r *Resolver) findAll(ctx context.Context, sections []library.Section, m artwork.Meta, year int, typ library.ItemType) ([]library.Item, error) {
	var (
		found []library.Item
		errs  []error
	)
	for _, sec := range sections {
		item, err := r.findIn(ctx, sec, m, year, typ)
		if err != nil {
			r.log.Debug("lookup failed", "section", sec.Title, "title", m.Title, "error", err)
			errs = append(errs, err)
			continue
		}
		if item != nil {
			r.log.Debug("found", "title", m.Title, "as", item.Title, "year", item.Year, "section", sec.Title)
			found = append(found, *item)
		}
	}
	return found, errors.Join(errs...)
}

func (r *Resolver) findIn(ctx context.Context, sec library.Section, m artwork.Meta, year int, typ library.ItemType) (*library.Item, error) {
	if m.TMDBID != nil {
		items, err := r.lib.FindByGUID(ctx, sec, library.TMDBGUID(*m.TMDBID), typ)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			return &items[0], nil
		}
	}

	items, err := r.lib.Search(ctx, sec, m.Title, typ)
	if err != nil {
		return nil, err
	}

	var fuzzy *library.Item
	for i := range items {
		if !title.Matches(m.Title, year, items[i].Title, items[i].Year) {
			continue
		}
		if _, conf := title.Compare(m.Title, items[i].Title); conf == title.ConfidenceExact {
			return &items[i], nil
		}
		if fuzzy == nil {
			fuzzy = &items[i]
		}
	}
	return fuzzy, nil
}

func (r *Resolver) resolveShow(ctx context.Context, rec *artwork.Show) ([]Target, error) {
	year := r.year(&rec.Meta)

	shows, err := r.findAll(ctx, r.shows, rec.Meta, year, library.TypeShow)
	if len(shows) == 0 {
		if err != nil {
			return nil, fmt.Errorf("find show %q: %w", rec.Title, err)
		}
		return nil, &NotFoundError{Media: artwork.MediaShow, Description: artwork.DescribeAs(rec, rec.Title, year)}
	}

	targets := make([]Target, 0, len(shows))
	for _, show := range shows {
		t := Target{
			Library:     show.SectionTitle,
			Kind:        rec.ImpliedKind(),
			Description: artwork.DescribeAs(rec, title.StripYear(show.Title), pick(show.Year, year)),
		}
		if r.opts.Filesystem {
			t.MediaPath, t.Err = r.lib.MediaPath(ctx, show)
			if t.Err != nil {
				targets = append(targets, t)
				continue
			}
		}
		r.showSlot(ctx, rec, show, &t)
		targets = append(targets, t)
	}
	return targets, nil
}

// showSlot fills in the entity and file name addressed by the record's
// season and episode, applying the availability rules.
func (r *Resolver) showSlot(ctx context.Context, rec *artwork.Show, show library.Item, t *Target) {
	switch t.Kind {
	case artwork.KindShowCover:
		t.Item, t.FileName = show, "poster"
		return
	case artwork.KindBackground:
		t.Item, t.FileName = show, "background"
		return
	}

	n := rec.Season.Number()
	season, err := r.child(ctx, show, n)
	if err != nil {
		t.Err = err
		return
	}
	if !r.seasonAvailable(season != nil, rec.Season.IsSpecials()) {
		t.Unavailable = rec.Season.Name()
		return
	}

	if t.Kind == artwork.KindSeasonCover {
		t.FileName = fmt.Sprintf("Season%02d", n)
		if season != nil {
			t.Item = *season
		} else {
			t.Staged = true
		}
		return
	}

	e := rec.Episode.Number()
	t.FileName = fmt.Sprintf("S%02dE%02d", n, e)
	var episode *library.Item
	if season != nil {
		episode, err = r.child(ctx, *season, e)
		if err != nil {
			t.Err = err
			return
		}
	}
	switch {
	case episode != nil:
		t.Item = *episode
	case r.opts.staging():
		t.Staged = true
	default:
		t.Unavailable = rec.SlotName()
	}
}

// seasonAvailable applies the season rule: the season exists, or staging
// covers it. Specials are only staged when StageSpecials is set.
func (r *Resolver) seasonAvailable(exists, specials bool) bool {
	switch {
	case exists:
		return true
	case specials:
		return r.opts.Filesystem && r.opts.StageSpecials
	default:
		return r.opts.staging()
	}
}

// child returns the child of parent with the given index, or nil.
func (r *Resolver) child(ctx context.Context, parent library.Item, index int) (*library.Item, error) {
	children, ok := r.cache.get(parent.RatingKey)
	if !ok {
		var err error
		children, err = r.lib.Children(ctx, parent)
		if err != nil {
			return nil, fmt.Errorf("list children of %s: %w", parent.Title, err)
		}
		r.cache.set(parent.RatingKey, children)
	}
	for i := range children {
		if children[i].Index == index {
			return &children[i], nil
		}
	}
	return nil, nil
}

func pick(libraryYear, recordYear int) int {
	if libraryYear > 0 {
		return libraryYear
	}
	return recordYear
}
