// Package clock formats the label shown on the clock tab.
package clock

import "time"

// Layout is the 24-hour, zero-padded label layout
const Layout = "15:04:05"

// Format returns t as HH:MM:SS in local time
func Format(t time.Time) string {
	return t.In(time.Local).Format(Layout)
}
