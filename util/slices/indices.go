package slices

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseIndexList parses a comma separated list of indices and inclusive
// ranges, e.g. "1,4-6,9". Every index must lie in [0, count). The result is
// sorted and free of duplicates.
func ParseIndexList(s string, count int) ([]int, error) {
	var indices []int

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		from, to, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("invalid index '%s'", part)
		}

		last := first
		if isRange {
			last, err = strconv.Atoi(strings.TrimSpace(to))
			if err != nil || last < first {
				return nil, fmt.Errorf("invalid range '%s'", part)
			}
		}

		if first < 0 || last >= count {
			return nil, fmt.Errorf("index '%s' out of range, %d points", part, count)
		}

		for i := first; i <= last; i++ {
			indices = append(indices, i)
		}
	}

	indices = lo.Uniq(indices)
	sort.Ints(indices)

	return indices, nil
}
