package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrEndBeforeStart is returned whenever the departure instant is not strictly
// later than the arrival instant. Callers must block submission on it.
var ErrEndBeforeStart = errors.New("end must be after start")

const dateLayout = "2006-01-02"

// CombineDateHour builds an instant from a calendar day and a whole-hour slot
// (0 through 23), keeping the day's location untouched.
func CombineDateHour(date string, hour int) (time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("hour %d out of range", hour)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()), nil
}

// BilledHours returns the billed duration between two instants: the ceiling of
// the elapsed time in hours, never less than one.
func BilledHours(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, ErrEndBeforeStart
	}
	ms := end.Sub(start).Milliseconds()
	const msPerHour = int64(time.Hour / time.Millisecond)
	hours := int(ms / msPerHour)
	if ms%msPerHour != 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return hours, nil
}

// Quote computes the billed duration and total price for a stay. Price is the
// duration times the hourly rate in whole dinars, no further rounding.
func Quote(start, end time.Time, pricePerHour int) (hours, total int, err error) {
	hours, err = BilledHours(start, end)
	if err != nil {
		return 0, 0, err
	}
	return hours, hours * pricePerHour, nil
}
