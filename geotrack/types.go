package geotrack

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// GeoPoint is a single timestamped sample of a recorded path. Values are
// taken over from the extraction as they are.
type GeoPoint struct {
	Lat, Lon float64
	Ele      float64
	Time     time.Time
}

func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

// Coordinate returns the point's position without elevation and time.
func (p GeoPoint) Coordinate() Coordinate {
	return Coordinate{Lat: p.Lat, Lon: p.Lon}
}

func (p GeoPoint) squaredDistanceTo(c Coordinate) float64 {
	dLat := c.Lat - p.Lat
	dLon := c.Lon - p.Lon
	return dLat*dLat + dLon*dLon
}

type Coordinate struct {
	Lat, Lon float64
}

// ParseCoordinate parses "lat,lon" in decimal degrees.
func ParseCoordinate(s string) (Coordinate, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("invalid coordinate '%s', expected lat,lon", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("invalid latitude '%s'", latStr)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil || lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("invalid longitude '%s'", lonStr)
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}

// Sample is one raw record as delivered by a telemetry extractor. Epoch is
// measured in seconds since 1970-01-01 UTC and may carry a fraction. A NaN
// epoch marks a sample without timestamp.
type Sample struct {
	Lat, Lon, Ele float64
	Epoch         float64
}

// Point converts the sample into a GeoPoint with a UTC timestamp.
func (s Sample) Point() GeoPoint {
	return GeoPoint{
		Lat:  s.Lat,
		Lon:  s.Lon,
		Ele:  s.Ele,
		Time: EpochTime(s.Epoch),
	}
}

// EpochTime converts fractional POSIX seconds into a UTC time. NaN and
// infinite values yield the zero time.
func EpochTime(epoch float64) time.Time {
	if math.IsNaN(epoch) || math.IsInf(epoch, 0) {
		return time.Time{}
	}

	sec, frac := math.Modf(epoch)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}

// Region describes a map viewport: the center of a track's extent and the
// latitude/longitude spans around it.
type Region struct {
	Center  Coordinate
	LatSpan float64
	LonSpan float64
}

// TimeEpoch is the inverse of EpochTime. The zero time yields NaN.
func TimeEpoch(t time.Time) float64 {
	if t.IsZero() {
		return math.NaN()
	}
	return float64(t.UnixNano()) / 1e9
}
