package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear [INDEX]",
	Short: "Remove one track or all tracks from the session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		i, err := parseTrackIndex(args[0])
		if err != nil {
			return err
		}

		if err := s.Remove(i); err != nil {
			return err
		}
	} else {
		s.Clear()
	}

	if err := saveSession(s); err != nil {
		return err
	}

	fmt.Printf("Session holds %d track(s).\n", s.Len())
	return nil
}
