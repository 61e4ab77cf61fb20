package plex

import (
	"encoding/xml"

	"github.com/vmunix/postarr/internal/library"
)

// identityResponse is the XML response from the root endpoint.
type identityResponse struct {
	XMLName      xml.Name `xml:"MediaContainer"`
	FriendlyName string   `xml:"friendlyName,attr"`
	Version      string   `xml:"version,attr"`
}

type sectionXML struct {
	Key       string `xml:"key,attr"`
	Title     string `xml:"title,attr"`
	Type      string `xml:"type,attr"`
	Locations []struct {
		Path string `xml:"path,attr"`
	} `xml:"Location"`
}

// sectionsResponse is the XML response from /library/sections.
type sectionsResponse struct {
	XMLName  xml.Name     `xml:"MediaContainer"`
	Sections []sectionXML `xml:"Directory"`
}

// itemXML is a <Video> or <Directory> element.
type itemXML struct {
	RatingKey           string `xml:"ratingKey,attr"`
	Type                string `xml:"type,attr"`
	Title               string `xml:"title,attr"`
	Year                int    `xml:"year,attr"`
	Index               int    `xml:"index,attr"`
	ParentIndex         int    `xml:"parentIndex,attr"`
	LibrarySectionID    string `xml:"librarySectionID,attr"`
	LibrarySectionTitle string `xml:"librarySectionTitle,attr"`
	GUIDs               []struct {
		ID string `xml:"id,attr"`
	} `xml:"Guid"`
	Labels []struct {
		Tag string `xml:"tag,attr"`
	} `xml:"Label"`
	Media []struct {
		Part []struct {
			File string `xml:"file,attr"`
		} `xml:"Part"`
	} `xml:"Media"`
}

func (x itemXML) file() string {
	if len(x.Media) > 0 && len(x.Media[0].Part) > 0 {
		return x.Media[0].Part[0].File
	}
	return ""
}

// itemsResponse is a MediaContainer of metadata items.
type itemsResponse struct {
	XMLName             xml.Name  `xml:"MediaContainer"`
	LibrarySectionID    string    `xml:"librarySectionID,attr"`
	LibrarySectionTitle string    `xml:"librarySectionTitle,attr"`
	Videos              []itemXML `xml:"Video"`     // movies, episodes
	Directories         []itemXML `xml:"Directory"` // shows, seasons, collections
}

func (r itemsResponse) all() []itemXML {
	all := make([]itemXML, 0, len(r.Videos)+len(r.Directories))
	all = append(all, r.Videos...)
	return append(all, r.Directories...)
}

// items converts the container to library items. Section attributes on
// an element win over the container's, which win over the fallback.
func (r itemsResponse) items(fallback library.Section) []library.Item {
	all := r.all()
	items := make([]library.Item, 0, len(all))
	for _, x := range all {
		item := library.Item{
			RatingKey:    x.RatingKey,
			Type:         library.ItemType(x.Type),
			Title:        x.Title,
			Year:         x.Year,
			Index:        x.Index,
			ParentIndex:  x.ParentIndex,
			SectionKey:   firstNonEmpty(x.LibrarySectionID, r.LibrarySectionID, fallback.Key),
			SectionTitle: firstNonEmpty(x.LibrarySectionTitle, r.LibrarySectionTitle, fallback.Title),
			Path:         x.file(),
		}
		for _, g := range x.GUIDs {
			item.GUIDs = append(item.GUIDs, g.ID)
		}
		items = append(items, item)
	}
	return items
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
