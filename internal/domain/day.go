package domain

import "time"

// DayStatus represents the operating status of one calendar day of a resource
type DayStatus string

const (
	// DayStatusOpen - regular working day
	DayStatusOpen DayStatus = "open"
	// DayStatusUnavailable - resource does not work this day
	DayStatusUnavailable DayStatus = "unavailable"
	// DayStatusRegularHoliday - closed by a recurring holiday rule
	DayStatusRegularHoliday DayStatus = "regular_holiday"
	// DayStatusTemporaryOpen - one-off opening, overrides a holiday
	DayStatusTemporaryOpen DayStatus = "temporary_open"
	// DayStatusTemporaryClosed - one-off closure of a normally open day
	DayStatusTemporaryClosed DayStatus = "temporary_closed"
)

// IsValid returns true for one of the five known statuses
func (s DayStatus) IsValid() bool {
	switch s {
	case DayStatusOpen, DayStatusUnavailable, DayStatusRegularHoliday,
		DayStatusTemporaryOpen, DayStatusTemporaryClosed:
		return true
	}
	return false
}

// IsClosed returns true for the closed status variants.
// This is the single source of truth for the "closed" predicate:
// a closed day never exposes slots, whatever was configured.
func (s DayStatus) IsClosed() bool {
	switch s {
	case DayStatusUnavailable, DayStatusRegularHoliday, DayStatusTemporaryClosed:
		return true
	}
	return false
}

// IsOpen returns true for the open status variants
func (s DayStatus) IsOpen() bool {
	return s == DayStatusOpen || s == DayStatusTemporaryOpen
}

// DayEntry is the resolved operating plan of one calendar day:
// a status plus the open time ranges. Invariant: closed status => empty Slots.
type DayEntry struct {
	Status DayStatus
	Slots  []TimeRange
}

// Normalize enforces the day-entry invariant on data read from any boundary:
// unknown statuses degrade to unavailable, slot ranges are sanitized, and a
// closed status always drops its slots
func (e DayEntry) Normalize() DayEntry {
	if !e.Status.IsValid() {
		return DayEntry{Status: DayStatusUnavailable}
	}
	if e.Status.IsClosed() {
		return DayEntry{Status: e.Status}
	}
	return DayEntry{Status: e.Status, Slots: SanitizeTimeRanges(e.Slots)}
}

// WeekdayTemplate maps a weekday to the entry a resource normally uses on
// that weekday. Derived from a month snapshot, never persisted.
type WeekdayTemplate map[time.Weekday]DayEntry
