package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/bgraf/gopro2gpx/gpxdoc"
	"github.com/bgraf/gopro2gpx/option"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImporter map[string]int

func (s stubImporter) Import(path string) (*geotrack.Track, error) {
	n, ok := s[path]
	if !ok {
		return nil, errors.New("cannot import " + path)
	}

	samples := make([]geotrack.Sample, n)
	for i := range samples {
		samples[i] = geotrack.Sample{Lat: float64(i), Lon: float64(i) / 2, Ele: 10, Epoch: 1_600_000_000 + float64(i)}
	}

	track := geotrack.NewTrack(filepath.Base(path))
	track.Load(option.Some(samples))
	return track, nil
}

func newTestSession(t *testing.T) *Session {
	t.Helper()

	s := New(zerolog.Nop())
	_, err := s.Import(stubImporter{"a.mp4": 4, "b.mp4": 100}, "a.mp4", "b.mp4")
	require.NoError(t, err)

	return s
}

func TestImport(t *testing.T) {
	s := newTestSession(t)

	require.Equal(t, 2, s.Len())
	entries := s.Entries()
	assert.Equal(t, "a.mp4", entries[0].Source)
	assert.Equal(t, 4, entries[0].Track.Len())
	assert.Equal(t, 100, entries[1].Track.Len())
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, entries[0].Track.Color)
	assert.Equal(t, 0, entries[0].Waypoints.Len())
}

func TestImportFailureAddsNothing(t *testing.T) {
	s := New(zerolog.Nop())

	_, err := s.Import(stubImporter{"a.mp4": 4}, "a.mp4", "broken.mp4")
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestSelect(t *testing.T) {
	s := newTestSession(t)

	e, err := s.Select(1)
	require.NoError(t, err)
	assert.Equal(t, "b.mp4", e.Source)

	for _, i := range []int{-1, 2} {
		_, err := s.Select(i)
		assert.ErrorIs(t, err, ErrNoTrackSelected)
	}

	found, ok := s.Find(e.ID)
	assert.True(t, ok)
	assert.Same(t, e, found)
}

func TestEditWithoutSelection(t *testing.T) {
	s := newTestSession(t)

	assert.ErrorIs(t, s.DeletePoints(-1, 0), ErrNoTrackSelected)
	_, err := s.InsertWaypoint(5, 0, "x")
	assert.ErrorIs(t, err, ErrNoTrackSelected)
	assert.ErrorIs(t, s.Reduce(-1, "2"), ErrNoTrackSelected)
	assert.ErrorIs(t, s.Remove(9), ErrNoTrackSelected)

	assert.Equal(t, 4, s.Entries()[0].Track.Len())
	assert.Equal(t, 0, s.Entries()[0].Waypoints.Len())
}

func TestDeletePoints(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.DeletePoints(0, 1, 2))
	assert.Equal(t, 2, s.Entries()[0].Track.Len())

	assert.ErrorIs(t, s.DeletePoints(0, 7), geotrack.ErrIndexOutOfRange)
}

func TestInsertWaypoint(t *testing.T) {
	s := newTestSession(t)

	w, err := s.InsertWaypoint(0, 2, "Viewpoint")
	require.NoError(t, err)
	assert.Equal(t, "Viewpoint", w.Name)
	assert.Equal(t, 2.0, w.Point.Lat)
	assert.Equal(t, []geotrack.Waypoint{w}, s.Entries()[0].Waypoints.Waypoints)

	_, err = s.InsertWaypoint(0, 40, "Nowhere")
	assert.ErrorIs(t, err, geotrack.ErrIndexOutOfRange)
}

func TestInsertWaypointAtTime(t *testing.T) {
	s := newTestSession(t)

	at := geotrack.EpochTime(1_600_000_002).Add(300 * time.Millisecond)
	w, diff, err := s.InsertWaypointAtTime(0, at, "Lunch")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w.Point.Lat)
	assert.Equal(t, 300*time.Millisecond, diff)
	assert.Equal(t, 1, s.Entries()[0].Waypoints.Len())

	_, _, err = s.InsertWaypointAtTime(0, geotrack.EpochTime(1_600_000_000), "")
	require.NoError(t, err)

	empty := New(zerolog.Nop())
	empty.Add("none.mp4", geotrack.NewTrack("none.mp4"))
	_, _, err = empty.InsertWaypointAtTime(0, at, "x")
	assert.ErrorIs(t, err, geotrack.ErrIndexOutOfRange)

	_, _, err = s.InsertWaypointAtTime(3, at, "x")
	assert.ErrorIs(t, err, ErrNoTrackSelected)
}

func TestReduce(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Reduce(1, "10"))
	assert.InDelta(t, 10, s.Entries()[1].Track.Len(), 1)

	for _, input := range []string{"ten", "-5", ""} {
		err := s.Reduce(1, input)
		assert.ErrorIs(t, err, geotrack.ErrInvalidReductionTarget)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Remove(0))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "b.mp4", s.Entries()[0].Source)

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestRegion(t *testing.T) {
	s := newTestSession(t)

	r := s.Region(1)
	assert.Equal(t, geotrack.Coordinate{Lat: 49.5, Lon: 24.75}, r.Center)
	assert.Equal(t, 99.0, r.LatSpan)

	assert.Equal(t, geotrack.Region{}, New(zerolog.Nop()).Region(1.1))
}

func TestExport(t *testing.T) {
	s := newTestSession(t)
	_, err := s.InsertWaypoint(0, 1, "first")
	require.NoError(t, err)
	_, err = s.InsertWaypoint(1, 50, "second")
	require.NoError(t, err)

	author := gpxdoc.Author{Name: "Jane", Link: "https://example.org", LinkText: "home"}
	doc, err := s.Export(ExportOptions{
		Name:             "Holiday",
		Author:           author,
		TrackName:        "All clips",
		TrackComment:     "c",
		TrackDescription: "d",
	})
	require.NoError(t, err)

	assert.Equal(t, "Holiday", doc.Name)
	assert.Equal(t, author, doc.Author)
	assert.Equal(t, "All clips", doc.TrackName)
	assert.Equal(t, "c", doc.TrackComment)
	assert.Equal(t, "d", doc.TrackDescription)
	assert.Equal(t, 104, doc.Track.Len())

	require.Equal(t, 2, doc.Waypoints.Len())
	assert.Equal(t, "first", doc.Waypoints.Waypoints[0].Name)
	assert.Equal(t, "second", doc.Waypoints.Waypoints[1].Name)

	// The document holds copies.
	require.NoError(t, s.DeletePoints(0, 0))
	assert.Equal(t, 104, doc.Track.Len())
}

func TestExportReduce(t *testing.T) {
	s := newTestSession(t)

	doc, err := s.Export(ExportOptions{Name: "x", Reduce: " 52 "})
	require.NoError(t, err)
	assert.InDelta(t, 52, doc.Track.Len(), 1)
	assert.Equal(t, 4, s.Entries()[0].Track.Len(), "sources are not reduced")

	_, err = s.Export(ExportOptions{Name: "x", Reduce: "lots"})
	assert.ErrorIs(t, err, geotrack.ErrInvalidReductionTarget)
}

func TestSaveLoad(t *testing.T) {
	s := newTestSession(t)
	_, err := s.InsertWaypoint(1, 3, "Bridge")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, s.Len(), loaded.Len())

	for i, want := range s.Entries() {
		got := loaded.Entries()[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Source, got.Source)
		assert.Equal(t, want.Track.Name, got.Track.Name)
		assert.Equal(t, want.Track.Color, got.Track.Color)
		assert.Equal(t, want.Track.Points(), got.Track.Points())
		assert.Equal(t, want.Waypoints.Waypoints, got.Waypoints.Waypoints)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "none.yaml"), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 7\nentries: []\n"), 0o644))

	_, err := Load(path, zerolog.Nop())
	assert.Error(t, err)
}

func TestSaveLoadPointWithoutTime(t *testing.T) {
	s := New(zerolog.Nop())
	s.Add("untimed.gpx", geotrack.NewTrack("untimed.gpx", geotrack.GeoPoint{Lat: 1, Lon: 2, Ele: 3}))

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path, zerolog.Nop())
	require.NoError(t, err)

	p, err := loaded.Entries()[0].Track.At(0)
	require.NoError(t, err)
	assert.True(t, p.Time.IsZero())
	assert.Equal(t, 3.0, p.Ele)
}

func TestSaveCreatesDirectory(t *testing.T) {
	s := newTestSession(t)

	path := filepath.Join(t.TempDir(), "trips", "2020", "session.yaml")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, s.Len(), loaded.Len())
}
