package artwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// jsonRecord is the wire form produced by the scraping collaborators.
type jsonRecord struct {
	Media    string     `json:"media"`
	Title    string     `json:"title"`
	Year     int        `json:"year"`
	Season   SeasonRef  `json:"season"`
	Episode  EpisodeRef `json:"episode"`
	Type     string     `json:"type"`
	Source   string     `json:"source"`
	ID       string     `json:"id"`
	Author   string     `json:"author"`
	URL      string     `json:"url"`
	Path     string     `json:"path"`
	Checksum string     `json:"checksum"`
	TMDBID   *int64     `json:"tmdb_id"`
}

// DecodeJSON reads a single record object or an array of records.
// Records with an unrecognized media type decode to *Unknown so that they
// are reported rather than dropped.
func DecodeJSON(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raw []jsonRecord
	if data[0] == '[' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
	} else {
		var one jsonRecord
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		raw = []jsonRecord{one}
	}

	records := make([]Record, 0, len(raw))
	for i, jr := range raw {
		rec, err := jr.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, jr.Title, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (jr jsonRecord) toRecord() (Record, error) {
	meta := Meta{
		Title:  strings.TrimSpace(jr.Title),
		Year:   jr.Year,
		Source: Source(strings.ToLower(jr.Source)),
		ID:     jr.ID,
		Author: jr.Author,
		Locator: Locator{
			URL:      jr.URL,
			Path:     jr.Path,
			Checksum: jr.Checksum,
		},
		TMDBID: jr.TMDBID,
	}
	if jr.Type != "" {
		k, err := ParseKind(jr.Type)
		if err != nil {
			return nil, err
		}
		meta.Kind = k
	}

	switch strings.ToLower(jr.Media) {
	case "movie":
		if meta.Kind == "" {
			meta.Kind = KindPoster
		}
		return &Movie{Meta: meta}, nil
	case "collection":
		switch meta.Kind {
		case "", KindPoster:
			meta.Kind = KindCollectionPoster
		}
		return &Collection{Meta: meta}, nil
	case "show", "tv":
		s := &Show{Meta: meta, Season: jr.Season, Episode: jr.Episode}
		// Show artwork is classified by its addressing; catalogs label
		// everything "poster".
		s.Kind = s.ImpliedKind()
		return s, nil
	default:
		return &Unknown{Meta: meta, RawMedia: jr.Media}, nil
	}
}
