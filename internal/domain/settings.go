package domain

import "time"

// WeekdayHours is the per-weekday override of the provider business hours.
// UseCustom=false means "this weekday uses the basic hours".
type WeekdayHours struct {
	UseCustom bool
	Ranges    []TimeRange
}

// BusinessHours are the provider-wide opening hours: a basic set of ranges
// plus optional per-weekday overrides
type BusinessHours struct {
	Basic  []TimeRange
	Weekly map[time.Weekday]WeekdayHours
}

// ForWeekday resolves the effective opening ranges for a weekday
func (h BusinessHours) ForWeekday(w time.Weekday) []TimeRange {
	if wh, ok := h.Weekly[w]; ok && wh.UseCustom {
		return wh.Ranges
	}
	return h.Basic
}

// Sanitize returns a copy with every range list sanitized
func (h BusinessHours) Sanitize() BusinessHours {
	out := BusinessHours{
		Basic:  SanitizeTimeRanges(h.Basic),
		Weekly: make(map[time.Weekday]WeekdayHours, len(h.Weekly)),
	}
	for w, wh := range h.Weekly {
		out.Weekly[w] = WeekdayHours{
			UseCustom: wh.UseCustom,
			Ranges:    SanitizeTimeRanges(wh.Ranges),
		}
	}
	return out
}

// CompanySettings is the provider-level scheduling configuration
type CompanySettings struct {
	ID              int64
	CompanyID       int64
	SlotStepMinutes int
	Timezone        string
	Hours           BusinessHours
	HolidayRules    []HolidayRule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location loads the provider timezone, falling back to the default
func (s *CompanySettings) Location() (*time.Location, error) {
	tz := s.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}
