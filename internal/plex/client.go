// Package plex implements the library interfaces against the Plex Media
// Server HTTP API.
package plex

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmunix/postarr/internal/library"
)

// Client interacts with the Plex Media Server API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new Plex client.
func New(baseURL, token string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		log:     logger.With("component", "plex"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ library.Library     = (*Client)(nil)
	_ library.MarkerStore = (*Client)(nil)
	_ library.Uploader    = (*Client)(nil)
	_ library.Server      = (*Client)(nil)
)

// Identity holds Plex server identity information.
type Identity struct {
	Name    string
	Version string
}

// Identity returns the server name and version. It is the run-start
// reachability check.
func (c *Client) Identity(ctx context.Context) (*Identity, error) {
	var result identityResponse
	if err := c.get(ctx, "/", nil, &result); err != nil {
		return nil, err
	}
	return &Identity{
		Name:    result.FriendlyName,
		Version: result.Version,
	}, nil
}

// Ping checks the server is reachable and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	id, err := c.Identity(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	c.log.Debug("server reachable", "name", id.Name, "version", id.Version)
	return nil
}

// Sections returns all library sections.
func (c *Client) Sections(ctx context.Context) ([]library.Section, error) {
	var result sectionsResponse
	if err := c.get(ctx, "/library/sections", nil, &result); err != nil {
		return nil, err
	}

	sections := make([]library.Section, len(result.Sections))
	for i, s := range result.Sections {
		locs := make([]string, len(s.Locations))
		for j, l := range s.Locations {
			locs[j] = l.Path
		}
		sections[i] = library.Section{
			Key:       s.Key,
			Title:     s.Title,
			Type:      library.ItemType(s.Type),
			Locations: locs,
		}
	}
	return sections, nil
}

// SectionsByName resolves configured library names (case-insensitive) to
// sections of the given type. Every name must exist.
func (c *Client) SectionsByName(ctx context.Context, names []string, typ library.ItemType) ([]library.Section, error) {
	all, err := c.Sections(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sections: %w", err)
	}

	var (
		found   []library.Section
		missing []string
	)
	for _, name := range names {
		var match *library.Section
		for i := range all {
			if strings.EqualFold(all[i].Title, name) && all[i].Type == typ {
				match = &all[i]
				break
			}
		}
		if match == nil {
			missing = append(missing, name)
			continue
		}
		found = append(found, *match)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s library %s", ErrLibraryNotFound, typ, strings.Join(missing, ", "))
	}

	c.log.Debug("sections resolved", "type", typ, "count", len(found))
	return found, nil
}

// Search returns items of a type in a section whose title contains the
// query, as Plex's title filter matches.
func (c *Client) Search(ctx context.Context, section library.Section, title string, typ library.ItemType) ([]library.Item, error) {
	q := url.Values{}
	q.Set("type", typeNumber(typ))
	q.Set("title", title)
	q.Set("includeGuids", "1")

	var result itemsResponse
	if err := c.get(ctx, "/library/sections/"+section.Key+"/all", q, &result); err != nil {
		return nil, fmt.Errorf("search %q in %s: %w", title, section.Title, err)
	}
	return result.items(section), nil
}

// FindByGUID returns the items of a section carrying an external GUID such
// as tmdb://949. Plex has no server-side GUID filter, so the section is
// listed with GUIDs included and filtered here.
func (c *Client) FindByGUID(ctx context.Context, section library.Section, guid string, typ library.ItemType) ([]library.Item, error) {
	q := url.Values{}
	q.Set("type", typeNumber(typ))
	q.Set("includeGuids", "1")

	var result itemsResponse
	if err := c.get(ctx, "/library/sections/"+section.Key+"/all", q, &result); err != nil {
		return nil, fmt.Errorf("list %s: %w", section.Title, err)
	}

	var matches []library.Item
	for _, item := range result.items(section) {
		if item.HasGUID(guid) {
			matches = append(matches, item)
		}
	}
	c.log.Debug("guid lookup", "section", section.Title, "guid", guid, "matches", len(matches))
	return matches, nil
}

// Collections lists the collections of a section.
func (c *Client) Collections(ctx context.Context, section library.Section) ([]library.Item, error) {
	var result itemsResponse
	if err := c.get(ctx, "/library/sections/"+section.Key+"/collections", nil, &result); err != nil {
		return nil, fmt.Errorf("collections of %s: %w", section.Title, err)
	}
	items := result.items(section)
	for i := range items {
		items[i].Type = library.TypeCollection
	}
	return items, nil
}

// Children lists the seasons of a show or the episodes of a season.
func (c *Client) Children(ctx context.Context, item library.Item) ([]library.Item, error) {
	var result itemsResponse
	if err := c.get(ctx, "/library/metadata/"+item.RatingKey+"/children", nil, &result); err != nil {
		return nil, fmt.Errorf("children of %s: %w", item.Title, err)
	}
	return result.items(library.Section{Key: item.SectionKey, Title: item.SectionTitle}), nil
}

// MediaPath returns the file of the first media part below an item. Shows
// and seasons use their first episode.
func (c *Client) MediaPath(ctx context.Context, item library.Item) (string, error) {
	if item.Path != "" {
		return item.Path, nil
	}

	path := "/library/metadata/" + item.RatingKey
	if item.Type == library.TypeShow || item.Type == library.TypeSeason {
		path += "/allLeaves"
	}

	var result itemsResponse
	if err := c.get(ctx, path, nil, &result); err != nil {
		return "", fmt.Errorf("media of %s: %w", item.Title, err)
	}
	for _, v := range result.all() {
		if f := v.file(); f != "" {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoMedia, item.Title)
}

// get performs an authenticated GET and decodes the XML response.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, library.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	c.log.Debug("plex request", "path", path, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// send performs an authenticated write request with an optional body.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s failed with status: %d", method, path, resp.StatusCode)
	}
	return nil
}

// typeNumber maps an item type to Plex's numeric search type.
func typeNumber(t library.ItemType) string {
	switch t {
	case library.TypeMovie:
		return "1"
	case library.TypeShow:
		return "2"
	case library.TypeSeason:
		return "3"
	case library.TypeEpisode:
		return "4"
	case library.TypeCollection:
		return "18"
	default:
		return ""
	}
}
