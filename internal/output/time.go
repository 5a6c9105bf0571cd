package output

import "time"

const postTimeLayout = "Mon, Jan 2 3:04 PM"

// FormatPostTime renders a scheduled time in loc. Zero times fall back to raw.
func FormatPostTime(t time.Time, raw string, loc *time.Location) string {
	if t.IsZero() {
		if raw == "" {
			return "-"
		}

		return raw
	}

	if loc == nil {
		loc = time.Local
	}

	return t.In(loc).Format(postTimeLayout)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
