package serve

import (
	"github.com/bgraf/gopro2gpx/config"
	"github.com/bgraf/gopro2gpx/gpxdoc"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	address, _ := cmd.Flags().GetString("address")
	if address == "" {
		address = config.ServeAddress()
	}

	sessionFile := config.SessionFile()
	load := func() (*session.Session, error) {
		return session.Load(sessionFile, log.Logger)
	}

	if log.Logger.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	api := newServeAPI(load, config.Author(), log.Logger)
	r := api.router()

	log.Info().
		Str("address", address).
		Str("session", sessionFile).
		Msg("serving session")

	return r.Run(address)
}

type serveAPI struct {
	load    func() (*session.Session, error)
	author  gpxdoc.Author
	padding float64
	logger  zerolog.Logger
}

// newServeAPI creates the API. The session is reloaded on every request, so
// edits made by other commands show up without a restart.
func newServeAPI(load func() (*session.Session, error), author gpxdoc.Author, logger zerolog.Logger) *serveAPI {
	return &serveAPI{
		load:    load,
		author:  author,
		padding: config.DefaultRegionPadding(),
		logger:  logger,
	}
}

func (api *serveAPI) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), api.requestLogger())

	r.GET("/tracks", api.ServeTracks)
	r.GET("/tracks/:GUID", api.ServeTrack)
	r.GET("/tracks/:GUID/closest", api.ServeClosest)
	r.GET("/tracks/:GUID/gpx", api.ServeTrackGPX)
	r.GET("/region", api.ServeRegion)
	r.GET("/gpx", api.ServeGPX)

	return r
}

func (api *serveAPI) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		api.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}
