package cmd

import (
	"fmt"

	"github.com/bgraf/gopro2gpx/filesystem"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import FILE|DIRECTORY...",
	Short: "Import GPS tracks from videos, GPX or NMEA files into the session",
	Long: `Import GPS tracks from videos, GPX or NMEA files into the session.

Directories are scanned for files of known types, in name order.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	importer := newImporter()

	paths, err := filesystem.GatherFiles(args, importer.Extensions())
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return fmt.Errorf("no importable files found")
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	added, err := s.Import(importer, paths...)
	if err != nil {
		return err
	}

	if err := saveSession(s); err != nil {
		return err
	}

	fmt.Printf("Imported %d track(s), session holds %d.\n", len(added), s.Len())

	return nil
}
