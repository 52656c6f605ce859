package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/gopro2gpx/geotrack"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/bgraf/gopro2gpx/util/dates"
	"github.com/bgraf/gopro2gpx/util/slices"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [INDEX]",
	Short: "Edit a track of the session",
	Long: `Edit a track of the session.

Without edit flags an interactive prompt is started. With flags, the edits
are applied in the order delete, waypoint, waypoint-time, reduce and the
session is saved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("delete", "", "Delete points, e.g. 1,4-6,9")
	editCmd.Flags().StringArray("waypoint", nil, "Insert waypoint at a point, e.g. 12=Summit")
	editCmd.Flags().StringArray("waypoint-time", nil, "Insert waypoint at the point closest in time, e.g. 2020-09-13T12:30:00Z=Lunch")
	editCmd.Flags().String("reduce", "", "Reduce the track to about this many points")
	editCmd.Flags().String("closest", "", "Print the point closest to lat,lon")
}

const (
	actionShow     = "Show points"
	actionClosest  = "Find closest point"
	actionDelete   = "Delete points"
	actionWaypoint = "Insert waypoint"
	actionReduce   = "Reduce"
	actionSelect   = "Select other track"
	actionDone     = "Save and quit"
)

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	if s.Len() == 0 {
		return fmt.Errorf("session is empty, import a track first")
	}

	selected := -1
	if len(args) == 1 {
		selected, err = parseTrackIndex(args[0])
		if err != nil {
			return err
		}
	}

	if anyChanged(cmd, "delete", "waypoint", "waypoint-time", "reduce", "closest") {
		if err := applyEditFlags(cmd, s, selected); err != nil {
			return err
		}
		return saveSession(s)
	}

	if err := editInteractive(s, selected); err != nil {
		return err
	}

	if err := saveSession(s); err != nil {
		return err
	}

	fmt.Println("Session saved.")
	return nil
}

// askOne is replaced in tests.
var askOne = survey.AskOne

// editInteractive runs the action menu until the user saves. A failing
// prompt ends the loop with its error.
func editInteractive(s *session.Session, selected int) error {
	if selected < 0 {
		var err error
		if selected, err = promptTrack(s); err != nil {
			return err
		}
	}

	for {
		action := ""
		prompt := survey.Select{
			Message: "Action",
			Options: []string{
				actionShow,
				actionClosest,
				actionDelete,
				actionWaypoint,
				actionReduce,
				actionSelect,
				actionDone,
			},
		}
		err := askOne(&prompt, &action)
		exitOnInterrupt(err)
		if err != nil {
			return err
		}

		if action == actionDone {
			return nil
		}

		err = runEditAction(s, &selected, action)
		var promptErr *promptError
		switch {
		case errors.As(err, &promptErr):
			return promptErr.err
		case errors.Is(err, session.ErrNoTrackSelected):
			log.Warn().Msg("no track selected")
		case err != nil:
			log.Error().Err(err).Msg(action)
		}
	}
}

// promptError marks a failed prompt, as opposed to invalid input.
type promptError struct {
	err error
}

func (e *promptError) Error() string { return "prompt: " + e.err.Error() }

func (e *promptError) Unwrap() error { return e.err }

func runEditAction(s *session.Session, selected *int, action string) error {
	switch action {
	case actionSelect:
		i, err := promptTrack(s)
		if err != nil {
			return err
		}
		*selected = i
		return nil

	case actionShow:
		e, err := s.Select(*selected)
		if err != nil {
			return err
		}
		printPoints(e)
		return nil

	case actionClosest:
		e, err := s.Select(*selected)
		if err != nil {
			return err
		}
		input, err := promptString("Coordinate (lat,lon)", "")
		if err != nil {
			return err
		}
		c, err := geotrack.ParseCoordinate(input)
		if err != nil {
			return err
		}
		printClosest(e.Track, c)
		return nil

	case actionDelete:
		e, err := s.Select(*selected)
		if err != nil {
			return err
		}
		input, err := promptString("Points (e.g. 1,4-6)", "")
		if err != nil {
			return err
		}
		indices, err := slices.ParseIndexList(input, e.Track.Len())
		if err != nil {
			return err
		}
		return s.DeletePoints(*selected, indices...)

	case actionWaypoint:
		if _, err := s.Select(*selected); err != nil {
			return err
		}
		input, err := promptString("Point", "")
		if err != nil {
			return err
		}
		i, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return fmt.Errorf("invalid point index: %w", err)
		}
		name, err := promptString("Name", "")
		if err != nil {
			return err
		}
		w, err := s.InsertWaypoint(*selected, i, name)
		if err != nil {
			return err
		}
		fmt.Printf("Waypoint '%s' at %.6f, %.6f\n", w.Name, w.Point.Lat, w.Point.Lon)
		return nil

	case actionReduce:
		e, err := s.Select(*selected)
		if err != nil {
			return err
		}
		input, err := promptString(fmt.Sprintf("Target point count (now %d)", e.Track.Len()), "")
		if err != nil {
			return err
		}
		if err := s.Reduce(*selected, input); err != nil {
			return err
		}
		fmt.Printf("Track holds %d points.\n", e.Track.Len())
		return nil
	}

	return fmt.Errorf("unknown action '%s'", action)
}

func applyEditFlags(cmd *cobra.Command, s *session.Session, selected int) error {
	e, err := s.Select(selected)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("closest"); v != "" {
		c, err := geotrack.ParseCoordinate(v)
		if err != nil {
			return err
		}
		printClosest(e.Track, c)
	}

	if v, _ := cmd.Flags().GetString("delete"); v != "" {
		indices, err := slices.ParseIndexList(v, e.Track.Len())
		if err != nil {
			return err
		}
		if err := s.DeletePoints(selected, indices...); err != nil {
			return err
		}
	}

	waypoints, _ := cmd.Flags().GetStringArray("waypoint")
	for _, v := range waypoints {
		index, name, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("invalid waypoint '%s', expected INDEX=NAME", v)
		}
		i, err := strconv.Atoi(strings.TrimSpace(index))
		if err != nil {
			return fmt.Errorf("invalid waypoint index '%s'", index)
		}
		if _, err := s.InsertWaypoint(selected, i, strings.TrimSpace(name)); err != nil {
			return err
		}
	}

	timed, _ := cmd.Flags().GetStringArray("waypoint-time")
	for _, v := range timed {
		at, name, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("invalid waypoint '%s', expected TIME=NAME", v)
		}
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(at))
		if err != nil {
			return fmt.Errorf("invalid waypoint time '%s': %w", at, err)
		}
		w, diff, err := s.InsertWaypointAtTime(selected, t, strings.TrimSpace(name))
		if err != nil {
			return err
		}
		log.Info().
			Str("name", w.Name).
			Dur("offset", diff).
			Msg("waypoint placed at closest point in time")
	}

	if cmd.Flags().Changed("reduce") {
		v, _ := cmd.Flags().GetString("reduce")
		if err := s.Reduce(selected, v); err != nil {
			return err
		}
	}

	return nil
}

func promptTrack(s *session.Session) (int, error) {
	options := make([]string, s.Len())
	for i, e := range s.Entries() {
		options[i] = fmt.Sprintf("%d: %s (%d points)", i, e.Track.Name, e.Track.Len())
	}

	selected := 0
	prompt := survey.Select{
		Message: "Track",
		Options: options,
	}
	err := askOne(&prompt, &selected)
	exitOnInterrupt(err)
	if err != nil {
		return 0, &promptError{err: err}
	}

	return selected, nil
}

func promptString(message, def string) (string, error) {
	answer := ""
	prompt := survey.Input{
		Message: message,
		Default: def,
	}
	err := askOne(&prompt, &answer)
	exitOnInterrupt(err)
	if err != nil {
		return "", &promptError{err: err}
	}

	return answer, nil
}

func printPoints(e *session.Entry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tTIME\tLAT\tLON\tELE\t")
	for i, p := range e.Track.Points() {
		fmt.Fprintf(w, "%d\t%s\t%.6f\t%.6f\t%.1f\t\n", i, dates.TimeOfDay(p.Time), p.Lat, p.Lon, p.Ele)
	}
	w.Flush()

	for _, wp := range e.Waypoints.Waypoints {
		fmt.Printf("Waypoint '%s' at %.6f, %.6f\n", wp.Name, wp.Point.Lat, wp.Point.Lon)
	}
}

func printClosest(track *geotrack.Track, c geotrack.Coordinate) {
	i := track.ClosestPointTo(c)
	p, err := track.At(i)
	if err != nil {
		fmt.Println("Track has no points.")
		return
	}

	fmt.Printf("Point %d at %.6f, %.6f (%s)\n", i, p.Lat, p.Lon, dates.TimeOfDay(p.Time))
}

func parseTrackIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid track index '%s'", s)
	}
	return i, nil
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
