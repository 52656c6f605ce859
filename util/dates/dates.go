package dates

import (
	"time"

	"github.com/goodsign/monday"
)

// TimeOfDay formats t as HH:MM:SS in UTC.
func TimeOfDay(t time.Time) string {
	return t.UTC().Format("15:04:05")
}

// Localized formats t in UTC with layout using the month and day names of
// locale, e.g. "de_DE".
func Localized(t time.Time, layout, locale string) string {
	return monday.Format(t.UTC(), layout, monday.Locale(locale))
}
