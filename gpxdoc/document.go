package gpxdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/bgraf/gopro2gpx/filesystem"
	"github.com/bgraf/gopro2gpx/geotrack"
)

const (
	Creator = "gopro2gpx"
	Version = "1.1"
)

// ErrWriteFailed wraps every failure to store a serialized document.
var ErrWriteFailed = errors.New("write GPX file")

var timeNow = time.Now

// Author is the metadata identifying who produced a document. It is supplied
// by the caller, usually from the persisted configuration.
type Author struct {
	Name     string
	Link     string
	LinkText string
}

// Document is the export payload: one track, one set of waypoints and the
// metadata describing them.
type Document struct {
	Name   string
	Author Author

	TrackName        string
	TrackComment     string
	TrackDescription string

	Track     *geotrack.Track
	Waypoints *geotrack.WaypointSet
}

// New builds a document from copies of the given tracks and waypoint sets,
// concatenated in the order supplied. Later changes to the sources do not
// affect the document.
func New(name string, author Author, tracks []*geotrack.Track, sets []*geotrack.WaypointSet) *Document {
	track := geotrack.NewTrack(name)
	track.Combine(tracks...)

	waypoints := &geotrack.WaypointSet{}
	waypoints.Combine(sets...)

	return &Document{
		Name:      name,
		Author:    author,
		TrackName: name,
		Track:     track,
		Waypoints: waypoints,
	}
}

func (d *Document) xmlTree() gpxXML {
	now := timeNow().UTC().Truncate(time.Second)

	g := gpxXML{
		Version:  Version,
		Creator:  Creator,
		XMLNS:    namespace,
		XMLNSXSI: xsiNamespace,
		XSI:      schemaLocation,
		Metadata: metadataXML{
			Name:   d.Name,
			Author: personXML{Name: d.Author.Name},
			Time:   formatTime(now),
		},
	}

	if d.Author.Link != "" {
		g.Metadata.Link = &linkXML{Href: d.Author.Link, Text: d.Author.LinkText}
	}

	if d.Waypoints != nil {
		for _, w := range d.Waypoints.Waypoints {
			p := newPointXML(w.Point)
			p.Name = w.Name
			g.Waypoints = append(g.Waypoints, p)
		}
	}

	segment := trackSegXML{}
	if d.Track != nil {
		for _, point := range d.Track.Points() {
			segment.Points = append(segment.Points, newPointXML(point))
		}
	}

	g.Tracks = []trackXML{{
		Name:        d.TrackName,
		Comment:     d.TrackComment,
		Description: d.TrackDescription,
		Segments:    []trackSegXML{segment},
	}}

	return g
}

// Serialize renders the document as GPX 1.1 XML. Coordinates and
// elevations use the shortest decimal form that parses back exactly.
func (d *Document) Serialize() ([]byte, error) {
	data, err := xml.MarshalIndent(d.xmlTree(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize GPX: %w", err)
	}

	return append([]byte(xml.Header), data...), nil
}

// WriteFile serializes the document to path. The file is replaced
// atomically; on failure no partial file remains.
func (d *Document) WriteFile(path string) error {
	data, err := d.Serialize()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err := filesystem.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrWriteFailed, path, err)
	}

	return nil
}
