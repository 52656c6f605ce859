package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gpx")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.True(t, IsFile(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestWriteFileAtomicMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.gpx")

	err := WriteFileAtomic(path, []byte("data"), 0o644)
	assert.Error(t, err)
	assert.False(t, IsFile(path))
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, CreateDirectoryIfNotExists(dir))
	require.NoError(t, CreateDirectoryIfNotExists(dir))

	assert.False(t, IsFile(dir))
	assert.Equal(t, dir, Abs(dir))
}

func TestGatherFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"GH020001.MP4", "GH010001.MP4", "notes.md", "track.gpx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.mp4"), 0o755))

	explicit := filepath.Join(dir, "notes.md")

	paths, err := GatherFiles([]string{dir, explicit, filepath.Join(dir, "GH010001.MP4")}, []string{".mp4", ".gpx"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "GH010001.MP4"),
		filepath.Join(dir, "GH020001.MP4"),
		filepath.Join(dir, "track.gpx"),
		explicit,
	}, paths)
}

func TestGatherFilesMissing(t *testing.T) {
	_, err := GatherFiles([]string{filepath.Join(t.TempDir(), "none")}, []string{".mp4"})
	assert.Error(t, err)
}
