package geotrack

// Waypoint is a named point of interest. It is independent of any track's
// point sequence.
type Waypoint struct {
	Point GeoPoint
	Name  string
}

// WaypointSet is an ordered collection of waypoints, usually one set per
// imported track.
type WaypointSet struct {
	Waypoints []Waypoint
}

func (s *WaypointSet) Add(w Waypoint) {
	s.Waypoints = append(s.Waypoints, w)
}

func (s *WaypointSet) Len() int {
	return len(s.Waypoints)
}

// Combine appends the waypoints of the given sets in the order supplied.
func (s *WaypointSet) Combine(sets ...*WaypointSet) {
	for _, other := range sets {
		if other == nil {
			continue
		}
		s.Waypoints = append(s.Waypoints, other.Waypoints...)
	}
}

// Clone returns a deep copy of the set.
func (s *WaypointSet) Clone() *WaypointSet {
	return &WaypointSet{Waypoints: append([]Waypoint(nil), s.Waypoints...)}
}
