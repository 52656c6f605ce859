package gpxdoc

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/bgraf/gopro2gpx/geotrack"
)

const (
	namespace      = "http://www.topografix.com/GPX/1/1"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = namespace + " http://www.topografix.com/GPX/1/1/gpx.xsd"
)

// gpxXML is the written document tree. Coordinates are kept as preformatted
// strings so that every value round-trips exactly.
type gpxXML struct {
	XMLName  xml.Name `xml:"gpx"`
	Version  string   `xml:"version,attr"`
	Creator  string   `xml:"creator,attr"`
	XMLNS    string   `xml:"xmlns,attr"`
	XMLNSXSI string   `xml:"xmlns:xsi,attr"`
	XSI      string   `xml:"xsi:schemaLocation,attr"`

	Metadata  metadataXML `xml:"metadata"`
	Waypoints []pointXML  `xml:"wpt"`
	Tracks    []trackXML  `xml:"trk"`
}

type metadataXML struct {
	Name   string    `xml:"name"`
	Author personXML `xml:"author"`
	Link   *linkXML  `xml:"link,omitempty"`
	Time   string    `xml:"time"`
}

type personXML struct {
	Name string `xml:"name"`
}

type linkXML struct {
	Href string `xml:"href,attr"`
	Text string `xml:"text,omitempty"`
}

type pointXML struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Ele  string `xml:"ele"`
	Time string `xml:"time,omitempty"`
	Name string `xml:"name,omitempty"`
}

type trackXML struct {
	Name        string        `xml:"name"`
	Comment     string        `xml:"cmt,omitempty"`
	Description string        `xml:"desc,omitempty"`
	Segments    []trackSegXML `xml:"trkseg"`
}

type trackSegXML struct {
	Points []pointXML `xml:"trkpt"`
}

// formatFloat writes the shortest decimal that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatTime writes t in UTC. Points without a timestamp get no <time>.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func newPointXML(p geotrack.GeoPoint) pointXML {
	return pointXML{
		Lat:  formatFloat(p.Lat),
		Lon:  formatFloat(p.Lon),
		Ele:  formatFloat(p.Ele),
		Time: formatTime(p.Time),
	}
}
