package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDay(t *testing.T) {
	ts := time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC)
	assert.Equal(t, "12:26:40", TimeOfDay(ts))
	assert.Equal(t, "12:26:40", TimeOfDay(ts.In(time.FixedZone("X", 3600))))
}

func TestLocalized(t *testing.T) {
	ts := time.Date(2020, 3, 13, 12, 26, 40, 0, time.UTC)

	assert.Equal(t, "13. März 2020", Localized(ts, "2. January 2006", "de_DE"))
	assert.Equal(t, "13 March 2020", Localized(ts, "2 January 2006", "en_US"))
}
