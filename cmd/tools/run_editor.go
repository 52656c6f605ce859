package tools

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/viper"
)

// KeyEditor names the configured editor. If it is not set, the environment
// variable EDITOR is used.
const KeyEditor = "tools.editor"

var ErrNoEditor = errors.New("no editor configured and EDITOR not set")

// RunEditor runs the user's editor on the given file and waits for it to
// exit.
func RunEditor(file string) error {
	editorName, err := LookupEditor()
	if err != nil {
		return err
	}

	cmd := exec.Command(editorName, file)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// LookupEditor resolves the editor executable.
func LookupEditor() (string, error) {
	if viper.IsSet(KeyEditor) {
		return exec.LookPath(viper.GetString(KeyEditor))
	}

	editor, ok := os.LookupEnv("EDITOR")
	if !ok || editor == "" {
		return "", ErrNoEditor
	}

	return exec.LookPath(editor)
}
