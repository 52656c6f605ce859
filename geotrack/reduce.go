package geotrack

import (
	"fmt"
	"strconv"
	"strings"
)

// Reduce returns a new track with approximately n points, removing points
// at evenly spaced positions. If the track holds n points or fewer an
// identical copy is returned. The receiver is never modified.
//
// Removal positions are found by accumulating a floating point step, so the
// result may differ from n by one point.
func (t *Track) Reduce(n int) (*Track, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidReductionTarget, n)
	}

	m := len(t.points)
	if m <= n {
		return t.Clone(), nil
	}

	removeCount := m - n
	step := float64(m) / float64(removeCount)
	threshold := step

	reduced := &Track{
		Name:   t.Name,
		Color:  t.Color,
		points: make([]GeoPoint, 0, n+1),
	}
	for i, p := range t.points {
		if float64(i+1) >= threshold {
			threshold += step
			continue
		}
		reduced.points = append(reduced.points, p)
	}

	return reduced, nil
}

// ReduceSelf replaces the track's points with the result of Reduce.
func (t *Track) ReduceSelf(n int) error {
	reduced, err := t.Reduce(n)
	if err != nil {
		return err
	}

	t.points = reduced.points
	return nil
}

// ParseReductionTarget parses a user supplied point count.
func ParseReductionTarget(s string) (int, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not a number", ErrInvalidReductionTarget, s)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidReductionTarget, n)
	}

	return n, nil
}
