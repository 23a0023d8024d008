package domain

// Default configuration values
const (
	DefaultSlotStepMinutes = 15
	DefaultTimezone        = "UTC"
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 240

	MinCalendarYear = 2000
	MaxCalendarYear = 2100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses bookings in these statuses no longer occupy their slot
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByCompany,
	StatusNoShow,
}
