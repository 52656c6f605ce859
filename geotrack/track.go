package geotrack

import (
	"fmt"
	"time"

	"github.com/bgraf/gopro2gpx/option"
	"github.com/jftuga/geodist"
)

// Track is an ordered sequence of points. The order is the recording order
// and defines the path geometry; duplicate points are allowed.
type Track struct {
	Name string
	// Color is a hex color string used by map viewers only.
	Color string

	points []GeoPoint
}

func NewTrack(name string, points ...GeoPoint) *Track {
	return &Track{Name: name, points: append([]GeoPoint(nil), points...)}
}

// Load appends one point per sample, in input order. An absent sample
// buffer is treated like an empty one.
func (t *Track) Load(samples option.Option[[]Sample]) {
	if samples.IsNone() {
		return
	}

	for _, s := range samples.Get() {
		t.points = append(t.points, s.Point())
	}
}

// Combine appends the points of the given tracks in the order supplied.
// Each track's own order is preserved; nil tracks are skipped.
func (t *Track) Combine(tracks ...*Track) {
	for _, other := range tracks {
		if other == nil {
			continue
		}
		t.points = append(t.points, other.points...)
	}
}

// Clone returns a deep copy of the track.
func (t *Track) Clone() *Track {
	return &Track{
		Name:   t.Name,
		Color:  t.Color,
		points: append([]GeoPoint(nil), t.points...),
	}
}

func (t *Track) Len() int {
	return len(t.points)
}

// Points returns a copy of the track's points.
func (t *Track) Points() []GeoPoint {
	return append([]GeoPoint(nil), t.points...)
}

func (t *Track) At(i int) (GeoPoint, error) {
	if i < 0 || i >= len(t.points) {
		return GeoPoint{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(t.points))
	}
	return t.points[i], nil
}

// Start and End return the timestamps of the first and last point. Both are
// the zero time for an empty track.
func (t *Track) Start() time.Time {
	if len(t.points) == 0 {
		return time.Time{}
	}
	return t.points[0].Time
}

func (t *Track) End() time.Time {
	if len(t.points) == 0 {
		return time.Time{}
	}
	return t.points[len(t.points)-1].Time
}

// The extent queries return 0.0 for an empty track.

func (t *Track) MaxLatitude() float64 {
	return t.extent(func(p GeoPoint) float64 { return p.Lat }, func(a, b float64) bool { return a > b })
}

func (t *Track) MinLatitude() float64 {
	return t.extent(func(p GeoPoint) float64 { return p.Lat }, func(a, b float64) bool { return a < b })
}

func (t *Track) MaxLongitude() float64 {
	return t.extent(func(p GeoPoint) float64 { return p.Lon }, func(a, b float64) bool { return a > b })
}

func (t *Track) MinLongitude() float64 {
	return t.extent(func(p GeoPoint) float64 { return p.Lon }, func(a, b float64) bool { return a < b })
}

func (t *Track) extent(value func(GeoPoint) float64, better func(a, b float64) bool) float64 {
	if len(t.points) == 0 {
		return 0.0
	}

	best := value(t.points[0])
	for _, p := range t.points[1:] {
		if v := value(p); better(v, best) {
			best = v
		}
	}

	return best
}

// Region returns the center of the track's extent with both spans scaled by
// padding. An empty track yields a zero region.
func (t *Track) Region(padding float64) Region {
	maxLat, minLat := t.MaxLatitude(), t.MinLatitude()
	maxLon, minLon := t.MaxLongitude(), t.MinLongitude()

	return Region{
		Center:  Coordinate{Lat: (maxLat + minLat) / 2, Lon: (maxLon + minLon) / 2},
		LatSpan: (maxLat - minLat) * padding,
		LonSpan: (maxLon - minLon) * padding,
	}
}

// ClosestPointTo returns the index of the point nearest to c in the flat
// (lat, lon) plane. The first point wins on ties; an empty track yields 0.
func (t *Track) ClosestPointTo(c Coordinate) int {
	best := 0
	for i := 1; i < len(t.points); i++ {
		if t.points[i].squaredDistanceTo(c) < t.points[best].squaredDistanceTo(c) {
			best = i
		}
	}

	return best
}

// ClosestPointInTime returns the index of the point recorded closest to
// target and the absolute time difference. An empty track yields index 0
// and the maximum duration.
func (t *Track) ClosestPointInTime(target time.Time) (int, time.Duration) {
	absDuration := func(d time.Duration) time.Duration {
		if d < 0 {
			return -d
		}
		return d
	}

	durBest := time.Duration(1 << 62)
	iBest := 0
	for i := 0; i < len(t.points); i++ {
		durI := absDuration(target.Sub(t.points[i].Time))
		if durI < durBest {
			durBest = durI
			iBest = i
		}
	}

	return iBest, durBest
}

// DeletePoints removes the points at the given indices. Indices may be given
// in any order and more than once. If any index is out of range nothing is
// removed.
func (t *Track) DeletePoints(indices ...int) error {
	if len(indices) == 0 {
		return nil
	}

	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(t.points) {
			return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(t.points))
		}
		drop[i] = struct{}{}
	}

	kept := make([]GeoPoint, 0, len(t.points)-len(drop))
	for i, p := range t.points {
		if _, ok := drop[i]; !ok {
			kept = append(kept, p)
		}
	}
	t.points = kept

	return nil
}

// WaypointAt creates a named waypoint from a copy of point i.
func (t *Track) WaypointAt(i int, name string) (Waypoint, error) {
	p, err := t.At(i)
	if err != nil {
		return Waypoint{}, err
	}

	return Waypoint{Point: p, Name: name}, nil
}

// Length returns the haversine length of the path in kilometers.
func (t *Track) Length() float64 {
	total := 0.0
	for i := 1; i < len(t.points); i++ {
		from := geodist.Coord{Lat: t.points[i-1].Lat, Lon: t.points[i-1].Lon}
		to := geodist.Coord{Lat: t.points[i].Lat, Lon: t.points[i].Lon}
		_, dkm := geodist.HaversineDistance(from, to)
		total += dkm
	}

	return total
}
