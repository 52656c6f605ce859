package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bgraf/gopro2gpx/config"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export OUTPUT.gpx",
	Short: "Combine all tracks of the session into one GPX file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("name", "n", "", "Document name (default is the output file name)")
	exportCmd.Flags().String("track-name", "", "Name of the combined track (default is the document name)")
	exportCmd.Flags().String("comment", "", "Track comment")
	exportCmd.Flags().String("description", "", "Track description")
	exportCmd.Flags().StringP("reduce", "r", "", "Reduce the combined track to about this many points")
}

func runExport(cmd *cobra.Command, args []string) error {
	output := args[0]

	s, err := loadSession()
	if err != nil {
		return err
	}

	if s.Len() == 0 {
		log.Warn().Msg("session is empty, exporting an empty track")
	}

	opts := session.ExportOptions{
		Author: config.Author(),
		Reduce: config.ExportReduce(),
	}

	opts.Name, _ = cmd.Flags().GetString("name")
	if opts.Name == "" {
		opts.Name = strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	}

	opts.TrackName, _ = cmd.Flags().GetString("track-name")
	if opts.TrackName == "" {
		opts.TrackName = opts.Name
	}

	opts.TrackComment, _ = cmd.Flags().GetString("comment")
	opts.TrackDescription, _ = cmd.Flags().GetString("description")

	if cmd.Flags().Changed("reduce") {
		opts.Reduce, _ = cmd.Flags().GetString("reduce")
	}

	doc, err := s.Export(opts)
	if err != nil {
		return err
	}

	if err := doc.WriteFile(output); err != nil {
		return err
	}

	fmt.Printf(
		"Wrote %d points and %d waypoints to '%s'.\n",
		doc.Track.Len(),
		doc.Waypoints.Len(),
		output,
	)

	return nil
}
