package orchestrator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/library"
	"github.com/vmunix/postarr/internal/library/mocks"
	"github.com/vmunix/postarr/internal/orchestrator"
	"github.com/vmunix/postarr/internal/outcome"
	"github.com/vmunix/postarr/internal/policy"
)

const posterURL = "https://images.example.com/p/1.jpg"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() orchestrator.Config {
	return orchestrator.Config{
		MovieLibraries: []string{"Movies"},
		ShowLibraries:  []string{"TV Shows"},
		Track:          true,
	}
}

// seededServer holds Heat, Alien Collection and Example Show with one
// episode of season 1.
func seededServer() *fakeServer {
	srv := newFakeServer()
	srv.add(library.Item{RatingKey: "10", Type: library.TypeMovie, Title: "Heat", Year: 1995, SectionKey: "1"}, "/movies/Heat (1995)/Heat.mkv")
	srv.add(library.Item{RatingKey: "30", Type: library.TypeCollection, Title: "Alien Collection", SectionKey: "1"}, "")
	srv.add(library.Item{RatingKey: "20", Type: library.TypeShow, Title: "Example Show", Year: 2020, SectionKey: "2"}, "/tv/Example Show/Season 01/S01E01.mkv")
	srv.children["20"] = []library.Item{{RatingKey: "21", Type: library.TypeSeason, Title: "Season 1", Index: 1, SectionKey: "2"}}
	srv.children["21"] = []library.Item{{RatingKey: "22", Type: library.TypeEpisode, Title: "Pilot", Index: 1, ParentIndex: 1, SectionKey: "2"}}
	return srv
}

func heat() *artwork.Movie {
	return &artwork.Movie{Meta: artwork.Meta{
		Title: "Heat", Year: 1995, Kind: artwork.KindPoster, Source: artwork.SourceMediux,
		Locator: artwork.Locator{URL: posterURL},
	}}
}

func episode(n int) *artwork.Show {
	s := &artwork.Show{
		Meta: artwork.Meta{
			Title: "Example Show", Year: 2020, Source: artwork.SourceMediux,
			Locator: artwork.Locator{URL: posterURL + "?ep"},
		},
		Season:  artwork.SeasonNumber(1),
		Episode: artwork.EpisodeNumber(n),
	}
	s.Kind = s.ImpliedKind()
	return s
}

func alien() *artwork.Collection {
	return &artwork.Collection{Meta: artwork.Meta{
		Title: "Alien Collection", Kind: artwork.KindCollectionPoster, Source: artwork.SourceMediux,
		Locator: artwork.Locator{URL: posterURL + "?c"},
	}}
}

func collect(outs *[]outcome.Outcome) func(outcome.Outcome) {
	return func(o outcome.Outcome) { *outs = append(*outs, o) }
}

func TestRun_DeliversOnceThenUnchanged(t *testing.T) {
	srv := seededServer()
	o := orchestrator.New(srv, testConfig(), nil, testLogger())

	var outs []outcome.Outcome
	summary, err := o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{heat()},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, "✅ Heat (1995) | Poster updated in Movies", outs[0].String())
	assert.Equal(t, "✔️ Finished processing. 1 records processed, 1 assets updated.", summary.Line())
	assert.Equal(t, []string{"poster:10:" + posterURL}, srv.uploads)
	assert.Equal(t, []string{"PID:ee9b8005b80ca570f5453072e2af7635"}, srv.labels["10"])

	outs = nil
	summary, err = o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{heat()},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, outcome.Unchanged, outs[0].Status)
	assert.Equal(t, 0, summary.Updated)
	assert.Len(t, srv.uploads, 1, "no second upload")

	outs = nil
	_, err = o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{heat()},
		Options:  orchestrator.Options{Force: true},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	assert.Equal(t, outcome.Replaced, outs[0].Status)
	assert.Len(t, srv.uploads, 2)
}

func TestRun_Ordering(t *testing.T) {
	srv := seededServer()
	o := orchestrator.New(srv, testConfig(), nil, testLogger())
	unknown := &artwork.Unknown{Meta: artwork.Meta{Title: "Mystery", Locator: artwork.Locator{URL: posterURL}}, RawMedia: "podcast"}

	var outs []outcome.Outcome
	summary, err := o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{episode(1), unknown, heat(), alien()},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	require.Len(t, outs, 4)

	var titles []string
	for _, out := range outs {
		titles = append(titles, out.Title)
	}
	assert.Equal(t, []string{"Alien Collection", "Heat", "Example Show", "Mystery"}, titles)
	assert.Equal(t, outcome.Failed, outs[3].Status)
	assert.Equal(t, 4, summary.Processed)
	assert.Equal(t, 3, summary.Updated)
	assert.Contains(t, srv.uploads, "poster:22:"+posterURL+"?ep")
	assert.Contains(t, srv.uploads, "poster:30:"+posterURL+"?c")
}

func TestRun_FiltersAndExclusions(t *testing.T) {
	srv := seededServer()
	cfg := testConfig()
	cfg.Defaults = policy.Defaults{artwork.SourceMediux: {artwork.KindBackground, artwork.KindTitleCard}}
	o := orchestrator.New(srv, cfg, nil, testLogger())

	byRequest, err := policy.New([]string{"background"}, nil)
	require.NoError(t, err)
	excluding, err := policy.New(nil, []string{"S01"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		policy *policy.Policy
		rec    artwork.Record
		want   string
	}{
		{"run filter", byRequest, heat(), "⏩ Heat (1995) | Poster filtered by request"},
		{"source default", nil, heat(), "⏩ Heat (1995) | Poster filtered by mediux"},
		{"season exclusion", excluding, episode(1), "⏩ Example Show (2020) : Season 01, Episode 01 | Title card excluded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var outs []outcome.Outcome
			_, err := o.Run(context.Background(), orchestrator.Request{
				Records:  []artwork.Record{tt.rec},
				Policy:   tt.policy,
				Reporter: collect(&outs),
			})
			require.NoError(t, err)
			require.Len(t, outs, 1)
			assert.Equal(t, tt.want, outs[0].String())
		})
	}
	assert.Empty(t, srv.uploads)
}

func TestRun_NotFoundAndNotAvailable(t *testing.T) {
	srv := seededServer()
	o := orchestrator.New(srv, testConfig(), nil, testLogger())
	missing := heat()
	missing.Title, missing.Year = "Nope", 2001

	var outs []outcome.Outcome
	summary, err := o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{missing, episode(3)},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, "⚠️ Nope (2001) | Movie not available on Plex", outs[0].String())
	assert.Equal(t, "⚠️ Example Show (2020) | Season 01, Episode 03 not available in TV Shows", outs[1].String())
	assert.Equal(t, 0, summary.Updated)
	assert.Empty(t, srv.uploads)
}

func TestRun_FilesystemStaging(t *testing.T) {
	img := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg"))
	}))
	defer img.Close()

	srv := seededServer()
	cfg := testConfig()
	cfg.Assets = orchestrator.Assets{BaseDir: t.TempDir(), TempDir: t.TempDir()}
	o := orchestrator.New(srv, cfg, nil, testLogger())

	rec := episode(3)
	rec.Locator = artwork.Locator{URL: img.URL + "/e3.jpg"}

	var outs []outcome.Outcome
	_, err := o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{rec},
		Options:  orchestrator.Options{Sink: orchestrator.SinkFilesystem},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, outcome.NotAvailable, outs[0].Status, "no staging without the stage switch")

	outs = nil
	_, err = o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{rec},
		Options:  orchestrator.Options{Sink: orchestrator.SinkFilesystem, Stage: true},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	require.Equal(t, outcome.Delivered, outs[0].Status, outs[0].Message)
	assert.FileExists(t, filepath.Join(cfg.Assets.BaseDir, "TV Shows", "Example Show", "S01E03.jpg"))

	movie := heat()
	movie.Locator = artwork.Locator{URL: img.URL + "/p.jpg"}
	outs = nil
	_, err = o.Run(context.Background(), orchestrator.Request{
		Records:  []artwork.Record{movie},
		Options:  orchestrator.Options{Sink: orchestrator.SinkFilesystem, Temp: true},
		Reporter: collect(&outs),
	})
	require.NoError(t, err)
	require.Equal(t, outcome.Delivered, outs[0].Status, outs[0].Message)
	assert.FileExists(t, filepath.Join(cfg.Assets.TempDir, "Movies", "Heat (1995)", "poster.jpg"))
	assert.Empty(t, srv.uploads, "filesystem runs never upload")
}

func TestRun_StartChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockServer(ctrl)
	o := orchestrator.New(server, testConfig(), nil, testLogger())
	reporter := func(outcome.Outcome) { t.Fatal("no outcome expected") }

	server.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	_, err := o.Run(context.Background(), orchestrator.Request{Records: []artwork.Record{heat()}, Reporter: reporter})
	require.Error(t, err)

	server.EXPECT().Ping(gomock.Any()).Return(nil)
	server.EXPECT().SectionsByName(gomock.Any(), []string{"Movies"}, library.TypeMovie).Return(nil, errors.New("library not found: Movies"))
	_, err = o.Run(context.Background(), orchestrator.Request{Records: []artwork.Record{heat()}, Reporter: reporter})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve movie libraries")
}

func TestRun_InvalidOptions(t *testing.T) {
	o := orchestrator.New(seededServer(), testConfig(), nil, testLogger())

	_, err := o.Run(context.Background(), orchestrator.Request{Options: orchestrator.Options{YearOverride: 1800}})
	assert.ErrorIs(t, err, policy.ErrInvalidYear)

	_, err = o.Run(context.Background(), orchestrator.Request{Options: orchestrator.Options{Sink: "ftp"}})
	assert.ErrorIs(t, err, orchestrator.ErrUnknownSink)

	_, err = o.Run(context.Background(), orchestrator.Request{Options: orchestrator.Options{Sink: orchestrator.SinkFilesystem}})
	assert.ErrorIs(t, err, orchestrator.ErrNoAssetDir)
}

func TestRun_Cancelled(t *testing.T) {
	o := orchestrator.New(seededServer(), testConfig(), nil, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := o.Run(ctx, orchestrator.Request{Records: []artwork.Record{heat()}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Processed)
}

func TestParseSinkKind(t *testing.T) {
	k, err := orchestrator.ParseSinkKind("")
	require.NoError(t, err)
	assert.Equal(t, orchestrator.SinkPlex, k)

	k, err = orchestrator.ParseSinkKind("Filesystem")
	require.NoError(t, err)
	assert.Equal(t, orchestrator.SinkFilesystem, k)

	_, err = orchestrator.ParseSinkKind("s3")
	assert.ErrorIs(t, err, orchestrator.ErrUnknownSink)
}
