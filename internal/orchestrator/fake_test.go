package orchestrator_test

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/library"
)

// fakeServer is an in-memory library.Server.
type fakeServer struct {
	mu       sync.Mutex
	sections []library.Section
	items    []library.Item
	children map[string][]library.Item
	paths    map[string]string
	labels   map[string][]string
	uploads  []string
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		sections: []library.Section{
			{Key: "1", Title: "Movies", Type: library.TypeMovie},
			{Key: "2", Title: "TV Shows", Type: library.TypeShow},
		},
		children: map[string][]library.Item{},
		paths:    map[string]string{},
		labels:   map[string][]string{},
	}
}

func (f *fakeServer) add(item library.Item, path string) library.Item {
	for _, s := range f.sections {
		if s.Key == item.SectionKey {
			item.SectionTitle = s.Title
		}
	}
	f.items = append(f.items, item)
	if path != "" {
		f.paths[item.RatingKey] = path
	}
	return item
}

func (f *fakeServer) Ping(context.Context) error { return nil }

func (f *fakeServer) SectionsByName(_ context.Context, names []string, typ library.ItemType) ([]library.Section, error) {
	var out []library.Section
	for _, n := range names {
		i := slices.IndexFunc(f.sections, func(s library.Section) bool {
			return strings.EqualFold(s.Title, n) && s.Type == typ
		})
		if i < 0 {
			return nil, fmt.Errorf("library not found: %s", n)
		}
		out = append(out, f.sections[i])
	}
	return out, nil
}

func (f *fakeServer) Sections(context.Context) ([]library.Section, error) {
	return f.sections, nil
}

func (f *fakeServer) Search(_ context.Context, sec library.Section, title string, typ library.ItemType) ([]library.Item, error) {
	var out []library.Item
	for _, it := range f.items {
		if it.SectionKey == sec.Key && it.Type == typ && strings.Contains(strings.ToLower(it.Title), strings.ToLower(title)) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeServer) FindByGUID(_ context.Context, sec library.Section, guid string, typ library.ItemType) ([]library.Item, error) {
	var out []library.Item
	for _, it := range f.items {
		if it.SectionKey == sec.Key && it.Type == typ && it.HasGUID(guid) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeServer) Collections(_ context.Context, sec library.Section) ([]library.Item, error) {
	var out []library.Item
	for _, it := range f.items {
		if it.SectionKey == sec.Key && it.Type == library.TypeCollection {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeServer) Children(_ context.Context, item library.Item) ([]library.Item, error) {
	return f.children[item.RatingKey], nil
}

func (f *fakeServer) MediaPath(_ context.Context, item library.Item) (string, error) {
	p, ok := f.paths[item.RatingKey]
	if !ok {
		return "", fmt.Errorf("no media file for %s", item.RatingKey)
	}
	return p, nil
}

func (f *fakeServer) Labels(_ context.Context, item library.Item) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.labels[item.RatingKey]), nil
}

func (f *fakeServer) AddLabel(_ context.Context, item library.Item, label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !slices.Contains(f.labels[item.RatingKey], label) {
		f.labels[item.RatingKey] = append(f.labels[item.RatingKey], label)
	}
	return nil
}

func (f *fakeServer) RemoveLabel(_ context.Context, item library.Item, label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labels[item.RatingKey] = slices.DeleteFunc(f.labels[item.RatingKey], func(l string) bool { return l == label })
	return nil
}

func (f *fakeServer) UploadPoster(_ context.Context, item library.Item, loc artwork.Locator) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, "poster:"+item.RatingKey+":"+loc.String())
	return nil
}

func (f *fakeServer) UploadArt(_ context.Context, item library.Item, loc artwork.Locator) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, "art:"+item.RatingKey+":"+loc.String())
	return nil
}
