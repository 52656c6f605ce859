package telemetry

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bgraf/gopro2gpx/config"
	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var ErrUnknownExtension = errors.New("unknown track extension")

// Importer turns files into tracks, choosing an extractor by file extension.
type Importer struct {
	extractors map[string]Extractor
	logger     zerolog.Logger
}

// NewImporter returns an importer that handles video files with video and
// GPX and NMEA logs with the built-in extractors.
func NewImporter(video Extractor, logger zerolog.Logger) *Importer {
	im := &Importer{
		extractors: make(map[string]Extractor),
		logger:     logger,
	}

	for _, ext := range config.VideoExtensions() {
		im.Register(ext, video)
	}
	for _, ext := range config.GPXExtensions() {
		im.Register(ext, GPXExtractor{})
	}
	for _, ext := range config.NMEAExtensions() {
		im.Register(ext, NMEAExtractor{})
	}

	return im
}

// Register sets the extractor used for files with the given extension.
func (im *Importer) Register(ext string, e Extractor) {
	im.extractors[strings.ToLower(ext)] = e
}

// Extensions lists the registered file extensions in sorted order.
func (im *Importer) Extensions() []string {
	exts := lo.Keys(im.extractors)
	sort.Strings(exts)
	return exts
}

// Import extracts the telemetry of the file at path. A file without
// telemetry yields an empty track.
func (im *Importer) Import(path string) (*geotrack.Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	extractor, ok := im.extractors[ext]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownExtension, ext)
	}

	samples, err := extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract '%s': %w", path, err)
	}

	track := geotrack.NewTrack(filepath.Base(path))
	track.Load(samples)

	if samples.IsSome() {
		im.logger.Debug().
			Str("file", path).
			Int("samples", len(samples.Get())).
			Msg("imported track")
	} else {
		im.logger.Warn().Str("file", path).Msg("no telemetry found")
	}

	return track, nil
}
