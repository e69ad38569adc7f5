// Package schedule holds the pure time-slot arithmetic used by room and
// class bookings. Clock values are "HH:MM" strings on a single day and all
// intervals are half-open: [start, end).
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerHour = 60

// Interval is a booked range of a day, end exclusive.
type Interval struct {
	Start string
	End   string
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", value, err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", value, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", value)
	}

	return hour*minutesPerHour + minute, nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Back-to-back intervals do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// Conflicts reports whether the candidate [start,end) overlaps any existing
// interval. Malformed existing entries are skipped rather than blocking the
// whole day.
func Conflicts(start, end string, existing []Interval) (bool, error) {
	s, err := ParseClock(start)
	if err != nil {
		return false, err
	}

	e, err := ParseClock(end)
	if err != nil {
		return false, err
	}

	if e <= s {
		return false, fmt.Errorf("interval end %q not after start %q", end, start)
	}

	for _, iv := range existing {
		bs, err := ParseClock(iv.Start)
		if err != nil {
			continue
		}

		be, err := ParseClock(iv.End)
		if err != nil {
			continue
		}

		if Overlaps(s, e, bs, be) {
			return true, nil
		}
	}

	return false, nil
}

// Slots lists every bookable boundary of the day from openHour:00 to
// closeHour:00 inclusive, stepped by stepMinutes.
func Slots(openHour, closeHour, stepMinutes int) []string {
	if stepMinutes <= 0 || closeHour < openHour {
		return nil
	}

	open := openHour * minutesPerHour
	closing := closeHour * minutesPerHour

	slots := make([]string, 0, (closing-open)/stepMinutes+1)
	for minute := open; minute <= closing; minute += stepMinutes {
		slots = append(slots, FormatClock(minute))
	}

	return slots
}

// AvailableStarts filters slots down to those usable as a booking start: a
// slot inside an existing interval (start inclusive, end exclusive) is taken.
func AvailableStarts(slots []string, existing []Interval) []string {
	available := make([]string, 0, len(slots))

	for _, slot := range slots {
		minute, err := ParseClock(slot)
		if err != nil {
			continue
		}

		taken := false

		for _, iv := range existing {
			bs, err := ParseClock(iv.Start)
			if err != nil {
				continue
			}

			be, err := ParseClock(iv.End)
			if err != nil {
				continue
			}

			if bs <= minute && minute < be {
				taken = true

				break
			}
		}

		if !taken {
			available = append(available, slot)
		}
	}

	return available
}

// AvailableEnds filters slots down to valid booking ends for the chosen
// start: only slots after the start whose whole span [start, slot) stays
// clear of every existing interval. Ends past the first booked interval are
// blocked, since the booking would have to run through it.
func AvailableEnds(slots []string, chosenStart string, existing []Interval) []string {
	startMinute, err := ParseClock(chosenStart)
	if err != nil {
		return nil
	}

	available := make([]string, 0, len(slots))

	for _, slot := range slots {
		minute, err := ParseClock(slot)
		if err != nil || minute <= startMinute {
			continue
		}

		blocked := false

		for _, iv := range existing {
			bs, err := ParseClock(iv.Start)
			if err != nil {
				continue
			}

			be, err := ParseClock(iv.End)
			if err != nil {
				continue
			}

			if Overlaps(startMinute, minute, bs, be) {
				blocked = true

				break
			}
		}

		if !blocked {
			available = append(available, slot)
		}
	}

	return available
}

// DerivedEnd computes the end clock for a fixed-duration booking.
func DerivedEnd(start string, durationMinutes int) (string, error) {
	startMinute, err := ParseClock(start)
	if err != nil {
		return "", err
	}

	if durationMinutes <= 0 {
		return "", fmt.Errorf("duration %d is not positive", durationMinutes)
	}

	end := startMinute + durationMinutes
	if end >= 24*minutesPerHour {
		return "", fmt.Errorf("end of interval starting %q exceeds the day", start)
	}

	return FormatClock(end), nil
}

// Hours returns the length of [start,end) in hours, e.g. 1.5.
func Hours(start, end string) (float64, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}

	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	if e <= s {
		return 0, fmt.Errorf("interval end %q not after start %q", end, start)
	}

	return float64(e-s) / minutesPerHour, nil
}
