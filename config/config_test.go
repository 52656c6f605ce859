package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bgraf/gopro2gpx/gpxdoc"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, ".gopro2gpx-session.yaml", SessionFile())
	assert.Equal(t, "gopro2samples", ExtractorCommand())
	assert.Equal(t, ":8000", ServeAddress())
	assert.Equal(t, "en_US", DisplayLocale())
	assert.Equal(t, "", ExportReduce())
	assert.Empty(t, ExtractorArgs())
}

func TestSaveAuthor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	author := gpxdoc.Author{Name: "Jane", Link: "https://example.org", LinkText: "Jane's page"}

	written, err := SaveAuthor(author, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)
	assert.Equal(t, author, Author())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "link_text")

	other := viper.New()
	other.SetConfigFile(path)
	require.NoError(t, other.ReadInConfig())
	assert.Equal(t, "Jane", other.GetString(KeyAuthorName))
	assert.Equal(t, "https://example.org", other.GetString(KeyAuthorLink))
}
