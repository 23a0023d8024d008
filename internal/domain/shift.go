package domain

import "time"

// ResourceMonthShift holds the explicit per-day overrides of one resource
// for one calendar month. Days is sparse: a day absent from the map has no
// override and falls back to the weekday default template.
type ResourceMonthShift struct {
	CompanyID  int64
	ResourceID int64
	Year       int
	Month      time.Month
	Days       map[int]DayEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Entry returns the explicit entry for a day of month, if present
func (s *ResourceMonthShift) Entry(day int) (DayEntry, bool) {
	if s == nil || s.Days == nil {
		return DayEntry{}, false
	}
	e, ok := s.Days[day]
	return e, ok
}

// Normalize applies the day-entry invariant to every explicit day
func (s *ResourceMonthShift) Normalize() {
	if s == nil {
		return
	}
	for day, entry := range s.Days {
		s.Days[day] = entry.Normalize()
	}
}
