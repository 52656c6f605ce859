package tools

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEditorFromConfig(t *testing.T) {
	viper.Set(KeyEditor, "sh")
	t.Cleanup(func() { viper.Set(KeyEditor, nil) })

	path, err := LookupEditor()
	require.NoError(t, err)
	assert.Contains(t, path, "sh")
}

func TestLookupEditorUnset(t *testing.T) {
	t.Setenv("EDITOR", "")

	_, err := LookupEditor()
	assert.ErrorIs(t, err, ErrNoEditor)
}
