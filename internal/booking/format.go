package booking

import "time"

// FormatDate renders a 2006-01-02 form date as "Jan 2, 2006". Unparseable
// input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// FormatTime renders a 24-hour 15:04 form time as "3:04 PM". Unparseable
// input is returned unchanged.
func FormatTime(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}
