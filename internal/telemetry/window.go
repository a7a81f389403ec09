package telemetry

import "time"

const (
	// DateLayout is the only accepted form of the day parameter.
	DateLayout = "2006-01-02"

	// WindowLayout renders window bounds at second granularity in UTC.
	WindowLayout = "2006-01-02T15:04:05Z"
)

// Window is a closed [Start, End] interval in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns <date>T00:00:00Z through <date>T23:59:59Z.  time.Parse
// rejects out-of-range days (2024-02-30) and unpadded fields (2024-1-5).
func DayWindow(date string) (Window, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return Window{}, errInvalidDate
	}
	return Window{
		Start: day,
		End:   day.Add(24*time.Hour - time.Second),
	}, nil
}

// WeekWindow returns the ISO week containing now: Monday 00:00:00Z through
// Sunday 23:59:59Z.
func WeekWindow(now time.Time) Window {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// time.Weekday counts from Sunday; ISO weeks start on Monday.
	sinceMonday := (int(midnight.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -sinceMonday)

	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-time.Second),
	}
}

// Today returns the UTC calendar date of now in DateLayout.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
