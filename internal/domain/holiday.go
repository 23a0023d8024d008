package domain

import (
	"fmt"
	"time"
)

// HolidayFrequency determines which occurrences of a weekday a rule marks
type HolidayFrequency string

const (
	// FrequencyWeekly marks every occurrence of the weekday in a month
	FrequencyWeekly HolidayFrequency = "weekly"
	// FrequencyNth1..FrequencyNth5 mark only the N-th occurrence,
	// counted from the 1st of the month
	FrequencyNth1 HolidayFrequency = "nth_1"
	FrequencyNth2 HolidayFrequency = "nth_2"
	FrequencyNth3 HolidayFrequency = "nth_3"
	FrequencyNth4 HolidayFrequency = "nth_4"
	FrequencyNth5 HolidayFrequency = "nth_5"
)

// IsValid returns true for one of the known frequencies
func (f HolidayFrequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyNth1, FrequencyNth2, FrequencyNth3, FrequencyNth4, FrequencyNth5:
		return true
	}
	return false
}

// Nth returns the 1-based occurrence number for nth_N frequencies,
// or 0 for the weekly frequency
func (f HolidayFrequency) Nth() int {
	switch f {
	case FrequencyNth1:
		return 1
	case FrequencyNth2:
		return 2
	case FrequencyNth3:
		return 3
	case FrequencyNth4:
		return 4
	case FrequencyNth5:
		return 5
	}
	return 0
}

// HolidayRule is a recurring closure rule: a weekday plus a frequency
type HolidayRule struct {
	Weekday   time.Weekday
	Frequency HolidayFrequency
}

// weekdayKeys canonical wire/storage keys for weekdays
var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

// WeekdayKey returns the canonical short key ("mon".."sun") for a weekday
func WeekdayKey(w time.Weekday) string {
	return weekdayKeys[w]
}

// ParseWeekdayKey parses a canonical short weekday key
func ParseWeekdayKey(key string) (time.Weekday, error) {
	for w, k := range weekdayKeys {
		if k == key {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday key %q", key)
}

// Weekdays lists all weekdays in Monday-first order, the order the
// admin UI and wire format use
var Weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}
