// Package timefmt holds pure display derivations for stored time-of-day
// values ("HH:MM" on a 24-hour clock). Nothing here touches storage.
package timefmt

import (
	"fmt"
	"time"
)

const layout = "15:04"

// TimeLabel renders a stored time-of-day value on a 12-hour clock with
// AM/PM, e.g. "13:05" -> "1:05 PM". Unparseable values render empty.
func TimeLabel(value string) string {
	t, err := time.Parse(layout, value)
	if err != nil {
		return ""
	}
	return t.Format("3:04 PM")
}

// DurationLabel renders the elapsed interval between a start and end
// time-of-day on the same nominal day: minutes when under one hour
// ("30min"), otherwise hours to one decimal place ("2.5h"). Empty when no
// end time is present or either value is unparseable.
func DurationLabel(start, end string) string {
	if end == "" {
		return ""
	}
	from, err := time.Parse(layout, start)
	if err != nil {
		return ""
	}
	to, err := time.Parse(layout, end)
	if err != nil {
		return ""
	}
	minutes := int(to.Sub(from).Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	return fmt.Sprintf("%.1fh", float64(minutes)/60)
}
