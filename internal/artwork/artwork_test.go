package artwork

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"poster", KindPoster},
		{"movie_poster", KindPoster},
		{"Title_Card", KindTitleCard},
		{"collection poster", KindCollectionPoster},
		{" background ", KindBackground},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("banner")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestShow_ImpliedKind(t *testing.T) {
	tests := []struct {
		name    string
		season  SeasonRef
		episode EpisodeRef
		want    Kind
	}{
		{"cover", SeasonCover(), NoEpisode(), KindShowCover},
		{"none", NoSeason(), NoEpisode(), KindShowCover},
		{"backdrop", SeasonBackdrop(), NoEpisode(), KindBackground},
		{"season", SeasonNumber(1), NoEpisode(), KindSeasonCover},
		{"season explicit cover", SeasonNumber(2), EpisodeCover(), KindSeasonCover},
		{"episode", SeasonNumber(1), EpisodeNumber(3), KindTitleCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Show{Season: tt.season, Episode: tt.episode}
			assert.Equal(t, tt.want, s.ImpliedKind())
		})
	}
}

func TestShow_Validate(t *testing.T) {
	base := Meta{Title: "Example Show", Locator: Locator{URL: "https://example.com/a.jpg"}}

	ok := &Show{Meta: base, Season: SeasonNumber(1), Episode: EpisodeNumber(3)}
	require.NoError(t, ok.Validate())

	mixed := &Show{Meta: base, Season: SeasonCover(), Episode: EpisodeNumber(3)}
	assert.ErrorIs(t, mixed.Validate(), ErrInvalidAddress)

	negative := &Show{Meta: base, Season: SeasonNumber(-1)}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidAddress)

	wrongKind := &Show{Meta: base, Season: SeasonBackdrop()}
	wrongKind.Kind = KindTitleCard
	assert.ErrorIs(t, wrongKind.Validate(), ErrInvalidKind)
}

func TestMeta_Validate(t *testing.T) {
	m := &Movie{Meta: Meta{Title: "  ", Kind: KindPoster, Locator: Locator{URL: "u"}}}
	assert.ErrorIs(t, m.Validate(), ErrMissingTitle)

	m = &Movie{Meta: Meta{Title: "Heat", Kind: KindPoster}}
	assert.ErrorIs(t, m.Validate(), ErrMissingLocator)

	m = &Movie{Meta: Meta{Title: "Heat", Kind: KindPoster, Locator: Locator{Path: "/tmp/p.jpg"}}}
	assert.ErrorIs(t, m.Validate(), ErrMissingChecksum)

	m = &Movie{Meta: Meta{Title: "Heat", Kind: KindSeasonCover, Locator: Locator{URL: "u"}}}
	assert.ErrorIs(t, m.Validate(), ErrInvalidKind)

	u := &Unknown{RawMedia: "music"}
	assert.ErrorIs(t, u.Validate(), ErrUnknownMedia)
}

func TestSeasonRef_JSON(t *testing.T) {
	var s SeasonRef
	require.NoError(t, json.Unmarshal([]byte(`3`), &s))
	assert.Equal(t, 3, s.Number())

	require.NoError(t, json.Unmarshal([]byte(`"Backdrop"`), &s))
	assert.True(t, s.IsBackdrop())

	require.NoError(t, json.Unmarshal([]byte(`"cover"`), &s))
	assert.True(t, s.IsCover())

	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.True(t, s.IsNone())

	assert.ErrorIs(t, json.Unmarshal([]byte(`"finale"`), &s), ErrInvalidAddress)

	out, err := json.Marshal(SeasonNumber(0))
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))
	assert.True(t, SeasonNumber(0).IsSpecials())
	assert.Equal(t, "Specials", SeasonNumber(0).Name())
	assert.Equal(t, "Season 04", SeasonNumber(4).Name())
}

func TestDescribe(t *testing.T) {
	show := &Show{
		Meta:    Meta{Title: "Example Show", Year: 2020, Author: "alice"},
		Season:  SeasonNumber(1),
		Episode: EpisodeNumber(3),
	}
	assert.Equal(t, "Example Show (2020) : alice : Season 01, Episode 03", Describe(show))
	assert.Equal(t, "Exemple (2021) : alice : Season 01, Episode 03", DescribeAs(show, "Exemple", 2021))
	assert.Equal(t, "Season 01, Episode 03", show.SlotName())

	specials := &Show{Meta: Meta{Title: "Example Show", Year: 2020}, Season: SeasonNumber(0)}
	assert.Equal(t, "Example Show (2020) : Specials", Describe(specials))

	coll := &Collection{Meta: Meta{Title: "Example Collection", Year: 1999, Author: "bob"}}
	assert.Equal(t, "Example Collection : bob", Describe(coll))

	movie := &Movie{Meta: Meta{Title: "Heat", Year: 1995, Author: "bob"}}
	assert.Equal(t, "Heat (1995) : bob", Describe(movie))
}

func TestDecodeJSON(t *testing.T) {
	input := `[
  {"media": "show", "title": "Example Show", "year": 2020, "season": 1, "episode": 3,
   "type": "poster", "source": "mediux", "id": "abc123", "url": "https://example.com/e.jpg"},
  {"media": "collection", "title": "Example Collection", "type": "poster",
   "source": "theposterdb", "id": "9", "url": "https://example.com/c.jpg"},
  {"media": "movie", "title": "Heat", "year": 1995, "type": "background", "tmdb_id": 949,
   "source": "upload", "id": "Upload", "path": "/tmp/heat.png", "checksum": "d41d8cd98f00b204e9800998ecf8427e"},
  {"media": "music", "title": "Kind of Blue", "url": "https://example.com/k.jpg"}
]`
	records, err := DecodeJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 4)

	show, ok := records[0].(*Show)
	require.True(t, ok)
	assert.Equal(t, KindTitleCard, show.Kind)
	assert.Equal(t, 3, show.Episode.Number())
	require.NoError(t, show.Validate())

	coll, ok := records[1].(*Collection)
	require.True(t, ok)
	assert.Equal(t, KindCollectionPoster, coll.Kind)

	movie, ok := records[2].(*Movie)
	require.True(t, ok)
	assert.Equal(t, KindBackground, movie.Kind)
	assert.True(t, movie.Locator.IsFile())
	require.NotNil(t, movie.TMDBID)
	assert.Equal(t, int64(949), *movie.TMDBID)

	assert.Equal(t, MediaUnknown, records[3].Media())
}

func TestDecodeJSON_SingleObject(t *testing.T) {
	records, err := DecodeJSON(strings.NewReader(`{"media":"show","title":"X","season":"Backdrop","url":"u"}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, KindBackground, records[0].Base().Kind)

	_, err = DecodeJSON(strings.NewReader(`{"media":"movie","title":"X","type":"banner"}`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}
