package plex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/library"
)

// Labels returns the labels currently set on an item.
func (c *Client) Labels(ctx context.Context, item library.Item) ([]string, error) {
	var result itemsResponse
	if err := c.get(ctx, "/library/metadata/"+item.RatingKey, nil, &result); err != nil {
		return nil, fmt.Errorf("labels of %s: %w", item.Title, err)
	}

	var labels []string
	for _, x := range result.all() {
		for _, l := range x.Labels {
			labels = append(labels, l.Tag)
		}
	}
	return labels, nil
}

// AddLabel adds a label to an item. The full label list is resent because
// indexed tag edits replace the existing set.
func (c *Client) AddLabel(ctx context.Context, item library.Item, label string) error {
	existing, err := c.Labels(ctx, item)
	if err != nil {
		return err
	}
	for _, l := range existing {
		if l == label {
			return nil
		}
	}

	q, err := editQuery(item)
	if err != nil {
		return err
	}
	for i, l := range append(existing, label) {
		q.Set("label["+strconv.Itoa(i)+"].tag.tag", l)
	}
	q.Set("label.locked", "1")

	if err := c.send(ctx, http.MethodPut, "/library/sections/"+item.SectionKey+"/all", q, nil); err != nil {
		return fmt.Errorf("add label %s to %s: %w", label, item.Title, err)
	}
	c.log.Debug("label added", "item", item.RatingKey, "label", label)
	return nil
}

// RemoveLabel removes a label from an item.
func (c *Client) RemoveLabel(ctx context.Context, item library.Item, label string) error {
	q, err := editQuery(item)
	if err != nil {
		return err
	}
	q.Set("label[].tag.tag-", label)

	if err := c.send(ctx, http.MethodPut, "/library/sections/"+item.SectionKey+"/all", q, nil); err != nil {
		return fmt.Errorf("remove label %s from %s: %w", label, item.Title, err)
	}
	c.log.Debug("label removed", "item", item.RatingKey, "label", label)
	return nil
}

func editQuery(item library.Item) (url.Values, error) {
	typ := typeNumber(item.Type)
	if typ == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, item.Type)
	}
	q := url.Values{}
	q.Set("type", typ)
	q.Set("id", item.RatingKey)
	return q, nil
}

// UploadPoster sets the poster (or season cover / title card) of an item.
func (c *Client) UploadPoster(ctx context.Context, item library.Item, loc artwork.Locator) error {
	return c.upload(ctx, item, "posters", loc)
}

// UploadArt sets the background of an item.
func (c *Client) UploadArt(ctx context.Context, item library.Item, loc artwork.Locator) error {
	return c.upload(ctx, item, "arts", loc)
}

// upload posts either the image URL for the server to fetch, or the raw
// bytes of a local file.
func (c *Client) upload(ctx context.Context, item library.Item, slot string, loc artwork.Locator) error {
	path := "/library/metadata/" + item.RatingKey + "/" + slot

	if !loc.IsFile() {
		q := url.Values{}
		q.Set("url", loc.URL)
		if err := c.send(ctx, http.MethodPost, path, q, nil); err != nil {
			return fmt.Errorf("upload %s: %w", slot, err)
		}
		c.log.Debug("artwork uploaded", "item", item.RatingKey, "slot", slot, "url", loc.URL)
		return nil
	}

	f, err := os.Open(loc.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", loc.Path, err)
	}
	defer func() { _ = f.Close() }()

	if err := c.send(ctx, http.MethodPost, path, nil, f); err != nil {
		return fmt.Errorf("upload %s: %w", slot, err)
	}
	c.log.Debug("artwork uploaded", "item", item.RatingKey, "slot", slot, "file", loc.Path)
	return nil
}
