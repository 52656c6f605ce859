package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bgraf/gopro2gpx/filesystem"
	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

const fileVersion = 1

type sessionFile struct {
	Version int         `yaml:"version"`
	Entries []entryFile `yaml:"entries"`
}

type entryFile struct {
	ID        string         `yaml:"id"`
	Source    string         `yaml:"source"`
	Name      string         `yaml:"name"`
	Color     string         `yaml:"color,omitempty"`
	Points    []pointFile    `yaml:"points"`
	Waypoints []waypointFile `yaml:"waypoints,omitempty"`
}

type pointFile struct {
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	Ele  float64 `yaml:"ele"`
	Time string  `yaml:"time,omitempty"`
}

type waypointFile struct {
	Name  string    `yaml:"name"`
	Point pointFile `yaml:"point,flow"`
}

func toPointFile(p geotrack.GeoPoint) pointFile {
	pf := pointFile{Lat: p.Lat, Lon: p.Lon, Ele: p.Ele}
	if !p.Time.IsZero() {
		pf.Time = p.Time.UTC().Format(time.RFC3339Nano)
	}
	return pf
}

func (p pointFile) geoPoint() (geotrack.GeoPoint, error) {
	if p.Time == "" {
		return geotrack.GeoPoint{Lat: p.Lat, Lon: p.Lon, Ele: p.Ele}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, p.Time)
	if err != nil {
		return geotrack.GeoPoint{}, fmt.Errorf("parse point time: %w", err)
	}

	return geotrack.GeoPoint{Lat: p.Lat, Lon: p.Lon, Ele: p.Ele, Time: t.UTC()}, nil
}

// Save writes the session to path as YAML.
func (s *Session) Save(path string) error {
	out := sessionFile{Version: fileVersion}

	for _, e := range s.entries {
		ef := entryFile{
			ID:     e.ID.String(),
			Source: e.Source,
			Name:   e.Track.Name,
			Color:  e.Track.Color,
		}

		for _, p := range e.Track.Points() {
			ef.Points = append(ef.Points, toPointFile(p))
		}

		for _, w := range e.Waypoints.Waypoints {
			ef.Waypoints = append(ef.Waypoints, waypointFile{Name: w.Name, Point: toPointFile(w.Point)})
		}

		out.Entries = append(out.Entries, ef)
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if err := filesystem.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Load reads a session from path. A missing file yields an empty session.
func Load(path string, logger zerolog.Logger) (*Session, error) {
	s := New(logger)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var in sessionFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode session '%s': %w", path, err)
	}

	if in.Version != fileVersion {
		return nil, fmt.Errorf("unsupported session version %d in '%s'", in.Version, path)
	}

	for _, ef := range in.Entries {
		id, err := uuid.Parse(ef.ID)
		if err != nil {
			return nil, fmt.Errorf("entry '%s': %w", ef.Name, err)
		}

		points := make([]geotrack.GeoPoint, 0, len(ef.Points))
		for _, pf := range ef.Points {
			p, err := pf.geoPoint()
			if err != nil {
				return nil, fmt.Errorf("entry '%s': %w", ef.Name, err)
			}
			points = append(points, p)
		}

		waypoints := &geotrack.WaypointSet{}
		for _, wf := range ef.Waypoints {
			p, err := wf.Point.geoPoint()
			if err != nil {
				return nil, fmt.Errorf("entry '%s': %w", ef.Name, err)
			}
			waypoints.Add(geotrack.Waypoint{Point: p, Name: wf.Name})
		}

		track := geotrack.NewTrack(ef.Name, points...)
		track.Color = ef.Color

		s.entries = append(s.entries, &Entry{
			ID:        id,
			Source:    ef.Source,
			Track:     track,
			Waypoints: waypoints,
		})
	}

	return s, nil
}
