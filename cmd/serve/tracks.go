package serve

import (
	"net/http"
	"time"

	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type regionView struct {
	Center  geotrack.GeoPoint `json:"center"`
	LatSpan float64           `json:"latSpan"`
	LonSpan float64           `json:"lonSpan"`
}

func newRegionView(r geotrack.Region) regionView {
	return regionView{
		Center:  geotrack.GeoPoint{Lat: r.Center.Lat, Lon: r.Center.Lon},
		LatSpan: r.LatSpan,
		LonSpan: r.LonSpan,
	}
}

type trackSummary struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	Points    int        `json:"points"`
	Waypoints int        `json:"waypoints"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Length    float64    `json:"lengthKm"`
	Region    regionView `json:"region"`
}

type waypointView struct {
	Name  string            `json:"name"`
	Point geotrack.GeoPoint `json:"latLng"`
}

func (api *serveAPI) summarize(e *session.Entry) trackSummary {
	return trackSummary{
		ID:        e.ID,
		Name:      e.Track.Name,
		Color:     e.Track.Color,
		Points:    e.Track.Len(),
		Waypoints: e.Waypoints.Len(),
		Start:     e.Track.Start(),
		End:       e.Track.End(),
		Length:    e.Track.Length(),
		Region:    newRegionView(e.Track.Region(api.padding)),
	}
}

func (api *serveAPI) ServeTracks(c *gin.Context) {
	s, ok := api.session(c)
	if !ok {
		return
	}

	c.JSON(
		http.StatusOK,
		lo.Map(s.Entries(), func(e *session.Entry, _ int) trackSummary {
			return api.summarize(e)
		}),
	)
}

func (api *serveAPI) ServeTrack(c *gin.Context) {
	entry, ok := api.entry(c)
	if !ok {
		return
	}

	c.JSON(
		http.StatusOK,
		gin.H{
			"summary": api.summarize(entry),
			"track":   entry.Track.Points(),
			"waypoints": lo.Map(entry.Waypoints.Waypoints, func(w geotrack.Waypoint, _ int) waypointView {
				return waypointView{Name: w.Name, Point: w.Point}
			}),
		},
	)
}

// ServeClosest answers the index of the track point nearest to the
// coordinate given by the lat and lon query parameters.
func (api *serveAPI) ServeClosest(c *gin.Context) {
	coord, err := geotrack.ParseCoordinate(c.Query("lat") + "," + c.Query("lon"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	entry, ok := api.entry(c)
	if !ok {
		return
	}

	i := entry.Track.ClosestPointTo(coord)
	p, err := entry.Track.At(i)
	if err != nil {
		c.String(http.StatusNotFound, "track has no points")
		return
	}

	c.JSON(
		http.StatusOK,
		gin.H{
			"index":  i,
			"latLng": p,
			"time":   p.Time,
			"ele":    p.Ele,
		},
	)
}

func (api *serveAPI) ServeRegion(c *gin.Context) {
	s, ok := api.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newRegionView(s.Region(api.padding)))
}

func (api *serveAPI) session(c *gin.Context) (*session.Session, bool) {
	s, err := api.load()
	if err != nil {
		_ = c.Error(err)
		api.logger.Error().Err(err).Msg("load session")
		c.String(http.StatusInternalServerError, "error during session loading")
		return nil, false
	}

	return s, true
}

func (api *serveAPI) entry(c *gin.Context) (*session.Entry, bool) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return nil, false
	}

	s, ok := api.session(c)
	if !ok {
		return nil, false
	}

	entry, ok := s.Find(guid)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return nil, false
	}

	return entry, true
}
