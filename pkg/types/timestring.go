package types

import (
	"fmt"
	"time"
)

// MinutesPerDay число минут в сутках; "24:00" - sentinel конца дня
const MinutesPerDay = 24 * 60

// TimeString represents a wall-clock time of day in "HH:MM" format.
// Valid values range from "00:00" to "24:00" inclusive; "24:00" is the
// end-of-day sentinel and is only meaningful as the end of a range.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (seconds are dropped)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", fmt.Errorf("minutes out of range: %d", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate checks that the value is a well-formed "HH:MM" within 00:00..24:00
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// Minutes returns minutes since midnight. Panics-free variant of minutes():
// invalid values report -1, callers are expected to validate at the boundary.
func (t TimeString) Minutes() int {
	m, err := t.minutes()
	if err != nil {
		return -1
	}
	return m
}

func (t TimeString) minutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}

	hh, ok1 := atoi2(s[0], s[1])
	mm, ok2 := atoi2(s[3], s[4])
	if !ok1 || !ok2 {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}

	if mm > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	if hh > 24 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("time %q is out of range 00:00..24:00", s)
	}

	return hh*60 + mm, nil
}

func atoi2(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// IsBefore returns true if t is strictly before other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly after other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns a new TimeString shifted forward by the given number
// of minutes. Returns an error if the result leaves the 00:00..24:00 range.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base, err := t.minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(base + minutes)
}

// At combines the time of day with a calendar date in the given location.
// The end-of-day sentinel maps to 00:00 of the following day.
func (t TimeString) At(date time.Time, loc *time.Location) time.Time {
	m := t.Minutes()
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(m) * time.Minute)
}

func (t TimeString) String() string {
	return string(t)
}
