package cmd

import (
	"github.com/bgraf/gopro2gpx/cmd/serve"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session's tracks as JSON and GPX for map viewers",
	Args:  cobra.NoArgs,
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP(
		"address",
		"a",
		"",
		"Listen address (default from serve.address)",
	)
}
