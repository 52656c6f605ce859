package session

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// randomTrackColor returns a fully saturated, bright color of random hue.
func randomTrackColor() string {
	return colorful.Hsv(rand.Float64()*360, 1, 1).Hex()
}
