package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/bgraf/gopro2gpx/gpxdoc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNoTrackSelected is returned by edit operations that do not refer to an
// existing track. No state is changed in that case.
var ErrNoTrackSelected = errors.New("no track selected")

// TrackImporter turns a file into a track.
type TrackImporter interface {
	Import(path string) (*geotrack.Track, error)
}

// Entry pairs an imported track with the waypoints placed on it.
type Entry struct {
	ID        uuid.UUID
	Source    string
	Track     *geotrack.Track
	Waypoints *geotrack.WaypointSet
}

// Session is the ordered working set of imported tracks.
type Session struct {
	entries []*Entry
	logger  zerolog.Logger
}

func New(logger zerolog.Logger) *Session {
	return &Session{logger: logger}
}

// Add appends a track with an empty waypoint set. Tracks without a color get
// a random one.
func (s *Session) Add(source string, track *geotrack.Track) *Entry {
	if track.Color == "" {
		track.Color = randomTrackColor()
	}

	entry := &Entry{
		ID:        uuid.New(),
		Source:    source,
		Track:     track,
		Waypoints: &geotrack.WaypointSet{},
	}
	s.entries = append(s.entries, entry)

	return entry
}

// Import imports all files and adds them in the given order. If any file
// fails, no track is added.
func (s *Session) Import(im TrackImporter, paths ...string) ([]*Entry, error) {
	tracks := make([]*geotrack.Track, len(paths))
	for i, path := range paths {
		track, err := im.Import(path)
		if err != nil {
			return nil, err
		}
		tracks[i] = track
	}

	added := make([]*Entry, len(paths))
	for i, track := range tracks {
		added[i] = s.Add(paths[i], track)
		s.logger.Info().
			Str("file", paths[i]).
			Int("points", track.Len()).
			Msg("track added")
	}

	return added, nil
}

func (s *Session) Entries() []*Entry {
	return append([]*Entry(nil), s.entries...)
}

func (s *Session) Len() int {
	return len(s.entries)
}

func (s *Session) Clear() {
	s.entries = nil
}

// Select returns the entry at index i.
func (s *Session) Select(i int) (*Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return nil, fmt.Errorf("%w: index %d of %d tracks", ErrNoTrackSelected, i, len(s.entries))
	}

	return s.entries[i], nil
}

func (s *Session) Find(id uuid.UUID) (*Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}

	return nil, false
}

// Remove drops the entry at index i.
func (s *Session) Remove(i int) error {
	if _, err := s.Select(i); err != nil {
		return err
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// DeletePoints removes points from the track at index i.
func (s *Session) DeletePoints(i int, indices ...int) error {
	entry, err := s.Select(i)
	if err != nil {
		return err
	}

	return entry.Track.DeletePoints(indices...)
}

// InsertWaypoint adds a named waypoint at the position of a track point.
func (s *Session) InsertWaypoint(i, pointIndex int, name string) (geotrack.Waypoint, error) {
	entry, err := s.Select(i)
	if err != nil {
		return geotrack.Waypoint{}, err
	}

	w, err := entry.Track.WaypointAt(pointIndex, name)
	if err != nil {
		return geotrack.Waypoint{}, err
	}

	entry.Waypoints.Add(w)
	return w, nil
}

// InsertWaypointAtTime adds a named waypoint at the track point recorded
// closest to t. The time difference to that point is returned.
func (s *Session) InsertWaypointAtTime(i int, t time.Time, name string) (geotrack.Waypoint, time.Duration, error) {
	entry, err := s.Select(i)
	if err != nil {
		return geotrack.Waypoint{}, 0, err
	}

	pointIndex, diff := entry.Track.ClosestPointInTime(t)
	w, err := s.InsertWaypoint(i, pointIndex, name)
	if err != nil {
		return geotrack.Waypoint{}, 0, err
	}

	return w, diff, nil
}

// Reduce reduces the track at index i to the point count given in input.
func (s *Session) Reduce(i int, input string) error {
	entry, err := s.Select(i)
	if err != nil {
		return err
	}

	n, err := geotrack.ParseReductionTarget(input)
	if err != nil {
		return err
	}

	before := entry.Track.Len()
	if err := entry.Track.ReduceSelf(n); err != nil {
		return err
	}

	s.logger.Debug().
		Str("track", entry.Track.Name).
		Int("before", before).
		Int("after", entry.Track.Len()).
		Msg("track reduced")

	return nil
}

// Region returns the map region spanning all tracks.
func (s *Session) Region(padding float64) geotrack.Region {
	all := geotrack.NewTrack("all")
	for _, e := range s.entries {
		all.Combine(e.Track)
	}

	return all.Region(padding)
}

type ExportOptions struct {
	Name   string
	Author gpxdoc.Author

	TrackName        string
	TrackComment     string
	TrackDescription string

	// Reduce is the raw reduction target. Empty disables reduction.
	Reduce string
}

// Export combines all tracks and waypoints into a new document.
func (s *Session) Export(opts ExportOptions) (*gpxdoc.Document, error) {
	var (
		tracks = make([]*geotrack.Track, len(s.entries))
		sets   = make([]*geotrack.WaypointSet, len(s.entries))
	)
	for i, e := range s.entries {
		tracks[i] = e.Track
		sets[i] = e.Waypoints
	}

	doc := gpxdoc.New(opts.Name, opts.Author, tracks, sets)
	doc.TrackName = opts.TrackName
	doc.TrackComment = opts.TrackComment
	doc.TrackDescription = opts.TrackDescription

	if reduce := strings.TrimSpace(opts.Reduce); reduce != "" {
		n, err := geotrack.ParseReductionTarget(reduce)
		if err != nil {
			return nil, err
		}

		if err := doc.Track.ReduceSelf(n); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Int("tracks", len(tracks)).
		Int("points", doc.Track.Len()).
		Int("waypoints", doc.Waypoints.Len()).
		Msg("document prepared")

	return doc, nil
}
