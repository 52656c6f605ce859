package serve

import (
	"net/http"

	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/bgraf/gopro2gpx/gpxdoc"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/gin-gonic/gin"
)

const gpxContentType = "application/gpx+xml"

// ServeGPX exports the whole session as one GPX document.
func (api *serveAPI) ServeGPX(c *gin.Context) {
	s, ok := api.session(c)
	if !ok {
		return
	}

	name := c.DefaultQuery("name", "session")
	doc, err := s.Export(session.ExportOptions{
		Name:      name,
		Author:    api.author,
		TrackName: name,
		Reduce:    c.Query("reduce"),
	})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	api.writeGPX(c, doc)
}

// ServeTrackGPX exports a single track with its waypoints.
func (api *serveAPI) ServeTrackGPX(c *gin.Context) {
	entry, ok := api.entry(c)
	if !ok {
		return
	}

	doc := gpxdoc.New(
		entry.Track.Name,
		api.author,
		[]*geotrack.Track{entry.Track},
		[]*geotrack.WaypointSet{entry.Waypoints},
	)

	api.writeGPX(c, doc)
}

func (api *serveAPI) writeGPX(c *gin.Context, doc *gpxdoc.Document) {
	data, err := doc.Serialize()
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during GPX writing")
		return
	}

	c.Data(http.StatusOK, gpxContentType, data)
}
