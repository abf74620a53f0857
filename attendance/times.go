package attendance

import "time"

// Dates are YYYY-MM-DD and times are HH:MM or HH:MM:SS, all local wall
// clock. No timezone conversion happens anywhere: the scanning device's
// clock decides, same as the source UI.
const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timeShortLayout = "15:04"
)

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// normalizeTime expands HH:MM to HH:MM:00 and rejects anything that is not
// a time of day.
func normalizeTime(s string) (string, bool) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t.Format(timeLayout), true
	}
	if t, err := time.Parse(timeShortLayout, s); err == nil {
		return t.Format(timeLayout), true
	}
	return "", false
}

// secondsOfDay converts a normalized or short time string to seconds since
// midnight for comparison.
func secondsOfDay(s string) (int, bool) {
	norm, ok := normalizeTime(s)
	if !ok {
		return 0, false
	}
	t, _ := time.Parse(timeLayout, norm)
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
}
