package core

import (
	"fmt"
	"time"
)

// WeekOf returns the ISO year-week identifier for a point in time, e.g.
// "2025-W35". Goals compare week identifiers by equality only, so the
// exact shape matters less than it being stable across the year boundary.
func WeekOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeekOfDate is WeekOf for a wire-format calendar date. A malformed date
// yields the week of the zero time.
func WeekOfDate(d Date) string {
	return WeekOf(d.Time())
}
