package cmd

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoTerminal = errors.New("not a terminal")

// scriptedAsk answers prompts from answers in order and fails once they run
// out.
func scriptedAsk(t *testing.T, answers ...interface{}) {
	t.Helper()

	asked := 0
	askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		if asked >= len(answers) {
			return errNoTerminal
		}
		answer := answers[asked]
		asked++

		switch r := response.(type) {
		case *string:
			*r = answer.(string)
		case *int:
			*r = answer.(int)
		default:
			t.Fatalf("unexpected response type %T", response)
		}
		return nil
	}
	t.Cleanup(func() { askOne = survey.AskOne })
}

func editSession() *session.Session {
	points := make([]geotrack.GeoPoint, 10)
	for i := range points {
		points[i] = geotrack.GeoPoint{Lat: float64(i), Lon: float64(i)}
	}

	s := session.New(zerolog.Nop())
	s.Add("a.mp4", geotrack.NewTrack("a.mp4", points...))
	return s
}

func TestEditInteractiveStopsOnPromptFailure(t *testing.T) {
	s := editSession()
	scriptedAsk(t)

	err := editInteractive(s, 0)
	assert.ErrorIs(t, err, errNoTerminal)
}

func TestEditInteractiveStopsOnFailedTrackPrompt(t *testing.T) {
	s := editSession()
	scriptedAsk(t)

	err := editInteractive(s, -1)
	assert.ErrorIs(t, err, errNoTerminal)
}

func TestEditInteractiveStopsOnFailedInputPrompt(t *testing.T) {
	s := editSession()
	scriptedAsk(t, actionDelete)

	err := editInteractive(s, 0)
	assert.ErrorIs(t, err, errNoTerminal)
	assert.Equal(t, 10, s.Entries()[0].Track.Len())
}

func TestEditInteractiveActions(t *testing.T) {
	s := editSession()
	scriptedAsk(t,
		actionDelete, "0-1",
		actionWaypoint, "0", "Start",
		actionDelete, "0-999999999",
		actionDone,
	)

	require.NoError(t, editInteractive(s, 0))

	e := s.Entries()[0]
	assert.Equal(t, 8, e.Track.Len())
	require.Equal(t, 1, e.Waypoints.Len())
	assert.Equal(t, "Start", e.Waypoints.Waypoints[0].Name)
	assert.Equal(t, 2.0, e.Waypoints.Waypoints[0].Point.Lat)
}

func TestEditInteractiveWithoutSelection(t *testing.T) {
	s := editSession()
	scriptedAsk(t, actionReduce, actionSelect, 0, actionReduce, "5", actionDone)

	require.NoError(t, editInteractive(s, 3))
	assert.InDelta(t, 5, s.Entries()[0].Track.Len(), 1)
}
