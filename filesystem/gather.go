package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// GatherFiles expands roots into absolute file paths. Files are taken as
// given. Directories contribute their direct children whose extension is in
// extensions, ordered by name so that chaptered recordings stay in sequence.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		switch {
		case fi.Mode().IsRegular():
			paths = append(paths, Abs(root))

		case fi.IsDir():
			files, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			var found []string
			for _, f := range files {
				ext := strings.ToLower(filepath.Ext(f.Name()))
				if !f.Type().IsRegular() || !lo.Contains(extensions, ext) {
					continue
				}
				found = append(found, Abs(filepath.Join(root, f.Name())))
			}
			sort.Strings(found)

			paths = append(paths, found...)

		default:
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return lo.Uniq(paths), nil
}
