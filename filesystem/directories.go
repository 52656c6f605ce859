package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

func IsFile(path string) bool {
	fs, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fs.Mode().IsRegular()
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place. On failure no file is left at path and an existing file is
// left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temporary file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}

	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temporary file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}
