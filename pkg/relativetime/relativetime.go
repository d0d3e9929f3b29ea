// Package relativetime renders timestamps as Vietnamese relative-age
// strings for listing views.
package relativetime

import (
	"fmt"
	"time"
)

const week = 7 * 24 * time.Hour

// Format maps a timestamp to a human-readable age relative to now.
// Anything older than a week falls back to the absolute date.
func Format(t time.Time, now time.Time) string {

	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "Vừa xong"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d phút trước", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d giờ trước", int(elapsed.Hours()))
	case elapsed < week:
		return fmt.Sprintf("%d ngày trước", int(elapsed.Hours()/24))
	default:
		return t.Format("02/01/2006")
	}
}
