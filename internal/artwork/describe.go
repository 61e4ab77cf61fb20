package artwork

import (
	"fmt"
	"strings"
)

// Describe returns the human description of a record used as the subject
// of every outcome message, e.g. "Example Show (2020) : alice : Season 01, Episode 03".
func Describe(rec Record) string {
	m := rec.Base()
	return DescribeAs(rec, m.Title, m.Year)
}

// DescribeAs is Describe with the title and year replaced by the values
// known to the library.
func DescribeAs(rec Record, title string, year int) string {
	m := rec.Base()

	var b strings.Builder
	b.WriteString(title)
	if _, ok := rec.(*Collection); !ok && year > 0 {
		fmt.Fprintf(&b, " (%d)", year)
	}
	if m.Author != "" {
		b.WriteString(" : ")
		b.WriteString(m.Author)
	}

	if s, ok := rec.(*Show); ok && s.Season.IsNumber() {
		b.WriteString(" : ")
		b.WriteString(s.Season.Name())
		if s.Episode.IsNumber() {
			fmt.Fprintf(&b, ", Episode %02d", s.Episode.Number())
		}
	}
	return b.String()
}

// SlotName returns the part of a show record that may be missing from the
// library: "Season 01", "Specials" or "Season 01, Episode 03".
func (s *Show) SlotName() string {
	if !s.Season.IsNumber() {
		return ""
	}
	if s.Episode.IsNumber() {
		return fmt.Sprintf("%s, Episode %02d", s.Season.Name(), s.Episode.Number())
	}
	return s.Season.Name()
}
