package telemetry

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/bgraf/gopro2gpx/option"
	"github.com/tkrajina/gpxgo/gpx"
)

// Extractor reads raw GPS samples from a file. Returning None means the file
// carries no telemetry, which is not an error.
type Extractor interface {
	Extract(filePath string) (option.Option[[]geotrack.Sample], error)
}

// CommandExtractor runs an external program that decodes the telemetry of a
// video container. The program receives the file path as its last argument
// and prints one sample per line: latitude, longitude, elevation and POSIX
// seconds, separated by whitespace or commas. Blank lines and lines starting
// with '#' are ignored.
type CommandExtractor struct {
	Command string
	Args    []string
}

func (e CommandExtractor) Extract(filePath string) (option.Option[[]geotrack.Sample], error) {
	none := option.None[[]geotrack.Sample]()

	if e.Command == "" {
		return none, fmt.Errorf("no extractor command configured")
	}

	name, err := exec.LookPath(e.Command)
	if err != nil {
		return none, fmt.Errorf("lookup extractor: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.Command(name, append(append([]string{}, e.Args...), filePath)...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return none, fmt.Errorf("run extractor on '%s': %w: %s", filePath, err, strings.TrimSpace(stderr.String()))
	}

	samples, err := parseSampleLines(bytes.NewReader(out))
	if err != nil {
		return none, fmt.Errorf("extractor output for '%s': %w", filePath, err)
	}

	return option.NonEmpty(samples), nil
}

func parseSampleLines(r io.Reader) ([]geotrack.Sample, error) {
	var samples []geotrack.Sample

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 fields, got %d", lineNo, len(fields))
		}

		var values [4]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			values[i] = v
		}

		samples = append(samples, geotrack.Sample{
			Lat:   values[0],
			Lon:   values[1],
			Ele:   values[2],
			Epoch: values[3],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

// NMEAExtractor reads RMC sentences with an active status. Elevation is
// taken from the GGA sentence of the same fix, matched by time of day. An
// RMC without such a partner uses the most recent GGA before it.
type NMEAExtractor struct{}

func (NMEAExtractor) Extract(filePath string) (option.Option[[]geotrack.Sample], error) {
	none := option.None[[]geotrack.Sample]()

	f, err := os.Open(filePath)
	if err != nil {
		return none, err
	}

	defer f.Close()

	var sentences []nmea.Sentence

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return none, err
		}
		sentences = append(sentences, sentence)
	}

	if err := scanner.Err(); err != nil {
		return none, err
	}

	return option.NonEmpty(nmeaSamples(sentences)), nil
}

func nmeaSamples(sentences []nmea.Sentence) []geotrack.Sample {
	altitudes := make(map[nmea.Time]float64)
	for _, sentence := range sentences {
		if gga, ok := sentence.(nmea.GGA); ok {
			altitudes[gga.Time] = gga.Altitude
		}
	}

	var (
		samples   []geotrack.Sample
		elevation float64
	)

	for _, sentence := range sentences {
		switch v := sentence.(type) {
		case nmea.GGA:
			elevation = v.Altitude

		case nmea.RMC:
			// We're only interested in "ACTIVE" status messages.
			if v.Validity != nmea.ValidRMC {
				continue
			}

			ele := elevation
			if alt, ok := altitudes[v.Time]; ok {
				ele = alt
			}

			// Two digit years are taken to be in this century.
			date := time.Date(
				2000+v.Date.YY, time.Month(v.Date.MM), v.Date.DD,
				v.Time.Hour, v.Time.Minute, v.Time.Second,
				v.Time.Millisecond*int(time.Millisecond), time.UTC,
			)

			samples = append(samples, geotrack.Sample{
				Lat:   v.Latitude,
				Lon:   v.Longitude,
				Ele:   ele,
				Epoch: float64(date.UnixNano()) / 1e9,
			})
		}
	}

	return samples
}

// GPXExtractor reads the points of all track segments of a GPX file.
type GPXExtractor struct{}

func (GPXExtractor) Extract(filePath string) (option.Option[[]geotrack.Sample], error) {
	gpxData, err := gpx.ParseFile(filePath)
	if err != nil {
		return option.None[[]geotrack.Sample](), fmt.Errorf("read GPX file: %w", err)
	}

	var samples []geotrack.Sample
	for _, track := range gpxData.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				samples = append(samples, geotrack.Sample{
					Lat:   p.Latitude,
					Lon:   p.Longitude,
					Ele:   p.Elevation.Value(),
					Epoch: geotrack.TimeEpoch(p.Timestamp),
				})
			}
		}
	}

	return option.NonEmpty(samples), nil
}
