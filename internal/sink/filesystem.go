package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/outcome"
	"github.com/vmunix/postarr/internal/resolve"
)

const fetchTimeout = 5 * time.Second

// imageExts maps the image types the sink saves to their extension.
var imageExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/avif": ".avif",
}

// existingExts are the asset extensions checked before writing. It covers
// every extension extensionFor and the local-file path can produce.
var existingExts = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".avif"}

// Catalog CDNs reject requests without a browser-like fingerprint.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Accept-Encoding": "identity",
	"Connection":      "keep-alive",
}

// FilesystemOptions configures a Filesystem sink.
type FilesystemOptions struct {
	// BaseDir is the asset root.
	BaseDir string
	// LibraryPaths maps library section titles to directory names under
	// BaseDir. Unmapped libraries use their title.
	LibraryPaths map[string]string
	// Force replaces existing assets.
	Force bool
	// HTTPClient overrides the download client.
	HTTPClient *http.Client
}

// Filesystem writes artwork into an asset directory tree laid out as
// <base>/<library>/<folder>/<file><ext>.
type Filesystem struct {
	opts   FilesystemOptions
	client *http.Client
	limits *Limits
	log    *slog.Logger
}

var _ Sink = (*Filesystem)(nil)

// NewFilesystem creates a Filesystem sink. limits may be nil.
func NewFilesystem(opts FilesystemOptions, limits *Limits, logger *slog.Logger) *Filesystem {
	if logger == nil {
		logger = slog.Default()
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Filesystem{
		opts:   opts,
		client: client,
		limits: limits,
		log:    logger.With("component", "fs-sink"),
	}
}

// Name identifies the sink in logs and history.
func (f *Filesystem) Name() string { return "filesystem" }

// Deliver writes rec into the asset folder of t.
func (f *Filesystem) Deliver(ctx context.Context, t resolve.Target, rec artwork.Record) outcome.Outcome {
	dir, err := f.dir(t, rec)
	if err != nil {
		f.log.Warn("invalid asset path", "library", t.Library, "media_path", t.MediaPath, "error", err)
		return result(outcome.Failed, t, rec, "%s | Error saving %s (invalid path): '%s'", t.Description, t.Label(), dir)
	}

	existing := findExisting(dir, t.FileName)
	if len(existing) > 0 && !f.opts.Force {
		return result(outcome.Unchanged, t, rec, "%s | %s skipped (already exists) for %s", t.Description, t.Label(), t.Library)
	}

	if err := f.limits.Wait(ctx, rec); err != nil {
		return f.failed(t, rec, err)
	}
	path, err := f.write(ctx, dir, t.FileName, rec.Base().Locator, existing)
	if err != nil {
		return f.failed(t, rec, err)
	}

	f.log.Info("asset saved", "path", path, "replaced", len(existing) > 0)
	if len(existing) > 0 {
		return result(outcome.Replaced, t, rec, "%s | %s replaced at '%s' in %s", t.Description, t.Label(), path, t.Library)
	}
	return result(outcome.Delivered, t, rec, "%s | %s saved at '%s' in %s", t.Description, t.Label(), path, t.Library)
}

// dir returns the asset folder of t. On error the returned string is the
// best-effort path for the message.
func (f *Filesystem) dir(t resolve.Target, rec artwork.Record) (string, error) {
	folder := SanitizeFolder(t.Folder)
	if t.Folder == "" {
		folder = AssetFolder(t.MediaPath, rec.Media() == artwork.MediaShow)
	}
	if folder == "" {
		return t.MediaPath, ErrNoFolder
	}

	libDir := t.Library
	if mapped, ok := f.opts.LibraryPaths[t.Library]; ok && mapped != "" {
		libDir = mapped
	}
	dir := filepath.Join(f.opts.BaseDir, SanitizeFolder(libDir), folder)
	if err := validatePath(dir, f.opts.BaseDir); err != nil {
		return dir, err
	}
	return dir, nil
}

func findExisting(dir, name string) []string {
	var found []string
	for _, ext := range existingExts {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	return found
}

// write stores the content next to a temporary name, removes superseded
// assets, and renames it into place.
func (f *Filesystem) write(ctx context.Context, dir, name string, loc artwork.Locator, existing []string) (string, error) {
	body, ext, err := f.open(ctx, loc)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".postarr-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("write content: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close: %w", err)
	}

	for _, old := range existing {
		if err := os.Remove(old); err != nil && !errors.Is(err, os.ErrNotExist) {
			cleanup()
			return "", fmt.Errorf("remove %s: %w", old, err)
		}
	}

	dst := filepath.Join(dir, name+ext)
	if err := os.Rename(tmpName, dst); err != nil {
		cleanup()
		return "", fmt.Errorf("rename: %w", err)
	}
	return dst, nil
}

// open returns the content and the extension it should be saved with.
func (f *Filesystem) open(ctx context.Context, loc artwork.Locator) (io.ReadCloser, string, error) {
	if loc.IsFile() {
		file, err := os.Open(loc.Path)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", loc.Path, err)
		}
		ext := strings.ToLower(filepath.Ext(loc.Path))
		if !slices.Contains(existingExts, ext) {
			ext = ".jpg"
		}
		return file, ext, nil
	}
	if loc.URL == "" {
		return nil, "", fmt.Errorf("%w: no URL", ErrFetch)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, "", fmt.Errorf("%w: unexpected status: %d", ErrFetch, resp.StatusCode)
	}
	return resp.Body, extensionFor(resp.Header.Get("Content-Type")), nil
}

func extensionFor(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".jpg"
	}
	if ext, ok := imageExts[strings.ToLower(mt)]; ok {
		return ext
	}
	return ".jpg"
}

func (f *Filesystem) failed(t resolve.Target, rec artwork.Record, err error) outcome.Outcome {
	f.log.Warn("save failed", "library", t.Library, "kind", t.Kind, "error", err)
	return result(outcome.Failed, t, rec, "%s | Error saving %s: %v", t.Description, t.Label(), err)
}
