package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusInProgress         BookingStatus = "in_progress"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingStatus = "cancelled_by_company"
	StatusNoShow             BookingStatus = "no_show"
)

// Booking is the read model of an existing reservation. This service never
// creates or mutates bookings; it only reads them to exclude occupied time.
// BufferMinutes is denormalized from the offering at creation time so the
// conflict check does not depend on the catalog.
type Booking struct {
	ID              int64
	CompanyID       int64
	ResourceID      int64
	ServiceID       int64
	UserID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	BufferMinutes   int
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByCompany &&
		b.Status != StatusNoShow
}

// StartMinutes returns the booking start as minutes since midnight
func (b *Booking) StartMinutes() int {
	return b.StartTime.Minutes()
}

// BlockedUntilMinutes returns the minute the resource becomes free again:
// service end plus the post-service buffer
func (b *Booking) BlockedUntilMinutes() int {
	return b.StartMinutes() + b.DurationMinutes + b.BufferMinutes
}

// BookingsFilter filter for reading bookings of a company
type BookingsFilter struct {
	CompanyID       int64
	ResourceIDs     []int64    // empty = all resources
	StartDate       *time.Time // inclusive
	EndDate         *time.Time // inclusive
	IncludeInactive bool
}
