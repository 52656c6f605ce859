package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bgraf/gopro2gpx/config"
	"github.com/bgraf/gopro2gpx/session"
	"github.com/bgraf/gopro2gpx/telemetry"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "gopro2gpx",
	Short:         "Extract GPS tracks from GoPro videos and export them as GPX",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	var err error

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gopro2gpx.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.PersistentFlags().StringP("session", "s", "", "Session file holding the imported tracks")
	err = viper.BindPFlag(
		config.KeySessionFile,
		rootCmd.PersistentFlags().Lookup("session"),
	)
	if err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// A .env file in the working directory may provide GOPRO2GPX_* variables.
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gopro2gpx" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(config.DefaultConfigName())
	}

	viper.SetEnvPrefix("gopro2gpx")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // GOPRO2GPX_SESSION_FILE
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// defaultConfigPath is where settings are written when no config file was
// found.
func defaultConfigPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}

	home, err := homedir.Expand("~/" + config.DefaultConfigName() + ".yaml")
	if err != nil {
		return "", err
	}

	return home, nil
}

func newImporter() *telemetry.Importer {
	video := telemetry.CommandExtractor{
		Command: config.ExtractorCommand(),
		Args:    config.ExtractorArgs(),
	}

	return telemetry.NewImporter(video, log.Logger)
}

func loadSession() (*session.Session, error) {
	return session.Load(config.SessionFile(), log.Logger)
}

func saveSession(s *session.Session) error {
	return s.Save(config.SessionFile())
}
