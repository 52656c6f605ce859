package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bgraf/gopro2gpx/config"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/bgraf/gopro2gpx/util/dates"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tracks of the session",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	if s.Len() == 0 {
		fmt.Println("Session is empty.")
		return nil
	}

	printEntries(s)
	return nil
}

func printEntries(s *session.Session) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tPOINTS\tWAYPOINTS\tSTART\tEND\tKM\tLAT\tLON")

	locale := config.DisplayLocale()
	for i, e := range s.Entries() {
		t := e.Track

		start, end := "-", "-"
		if t.Len() > 0 {
			start = dates.Localized(t.Start(), "Mon 2. Jan 2006 15:04:05", locale)
			end = dates.TimeOfDay(t.End())
		}

		fmt.Fprintf(
			w,
			"%d\t%s\t%d\t%d\t%s\t%s\t%.2f\t%.5f..%.5f\t%.5f..%.5f\n",
			i,
			t.Name,
			t.Len(),
			e.Waypoints.Len(),
			start,
			end,
			t.Length(),
			t.MinLatitude(), t.MaxLatitude(),
			t.MinLongitude(), t.MaxLongitude(),
		)
	}

	w.Flush()
}
