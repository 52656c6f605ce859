package config

import (
	"fmt"

	"github.com/bgraf/gopro2gpx/gpxdoc"
	"github.com/spf13/viper"
)

var (
	KeyAuthorName     = "author.name"
	KeyAuthorLink     = "author.link"
	KeyAuthorLinkText = "author.link_text"

	KeySessionFile = "session.file"

	KeyExtractorCommand = "extractor.command"
	KeyExtractorArgs    = "extractor.args"

	KeyExportReduce = "export.reduce"

	KeyServeAddress = "serve.address"

	KeyDisplayLocale = "display.locale"
)

func init() {
	viper.SetDefault(KeySessionFile, DefaultSessionFile())
	viper.SetDefault(KeyExtractorCommand, DefaultExtractorCommand())
	viper.SetDefault(KeyServeAddress, ":8000")
	viper.SetDefault(KeyDisplayLocale, "en_US")
}

// Author returns the author metadata stamped into exported documents.
func Author() gpxdoc.Author {
	return gpxdoc.Author{
		Name:     viper.GetString(KeyAuthorName),
		Link:     viper.GetString(KeyAuthorLink),
		LinkText: viper.GetString(KeyAuthorLinkText),
	}
}

// SaveAuthor stores the author metadata in the configuration file so that it
// is available in later sessions. If no configuration file is in use, the
// file at fallbackPath is written.
func SaveAuthor(author gpxdoc.Author, fallbackPath string) (string, error) {
	viper.Set(KeyAuthorName, author.Name)
	viper.Set(KeyAuthorLink, author.Link)
	viper.Set(KeyAuthorLinkText, author.LinkText)

	path := viper.ConfigFileUsed()
	if path == "" {
		path = fallbackPath
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}

func SessionFile() string {
	return viper.GetString(KeySessionFile)
}

func ExtractorCommand() string {
	return viper.GetString(KeyExtractorCommand)
}

func ExtractorArgs() []string {
	return viper.GetStringSlice(KeyExtractorArgs)
}

// ExportReduce returns the configured reduction target in its raw form. An
// empty string disables reduction.
func ExportReduce() string {
	return viper.GetString(KeyExportReduce)
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

func DisplayLocale() string {
	return viper.GetString(KeyDisplayLocale)
}

func DefaultSessionFile() string {
	return ".gopro2gpx-session.yaml"
}

func DefaultExtractorCommand() string {
	return "gopro2samples"
}

func DefaultConfigName() string {
	return ".gopro2gpx"
}

// DefaultRegionPadding scales a track's extent when framing it on a map.
func DefaultRegionPadding() float64 {
	return 1.1
}

func VideoExtensions() []string {
	return []string{".mp4"}
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".log", ".txt"}
}
