package domain

import "time"

// BookableSlot is one concrete bookable start time for one resource.
// EndAt is when the resource becomes free again (service end plus buffer);
// ServiceEndAt is when the customer-visible service actually finishes.
type BookableSlot struct {
	ResourceID   int64
	StartAt      time.Time
	ServiceEndAt time.Time
	EndAt        time.Time
}

// DaySummary is the month-view verdict for one calendar day
type DaySummary struct {
	Status            DayStatus
	HasAvailableSlots bool
}
