package domain

import "time"

// DayRestriction limits which days of week an offering may be booked on
type DayRestriction string

const (
	RestrictionNone    DayRestriction = "none"
	RestrictionWeekday DayRestriction = "weekday"
	RestrictionWeekend DayRestriction = "weekend"
)

// IsValid returns true for one of the known restrictions
func (r DayRestriction) IsValid() bool {
	switch r {
	case RestrictionNone, RestrictionWeekday, RestrictionWeekend:
		return true
	}
	return false
}

// Allows reports whether the restriction permits booking on the weekday
func (r DayRestriction) Allows(w time.Weekday) bool {
	weekend := w == time.Saturday || w == time.Sunday
	switch r {
	case RestrictionWeekday:
		return !weekend
	case RestrictionWeekend:
		return weekend
	}
	return true
}

// ServiceOffering is the bookable service definition the catalog provides.
// EligibleResourceIDs empty means any resource of the company may perform it.
type ServiceOffering struct {
	ID                       int64
	CompanyID                int64
	Name                     string
	DurationMinutes          int
	BufferAfterMinutes       int
	ReservationDeadlineHours int
	EligibleResourceIDs      []int64
	DayRestriction           DayRestriction
}

// AnyResource returns true if the offering has no eligible-resource list
func (o *ServiceOffering) AnyResource() bool {
	return len(o.EligibleResourceIDs) == 0
}

// ResourceEligible reports whether a resource may perform this offering
func (o *ServiceOffering) ResourceEligible(resourceID int64) bool {
	if o.AnyResource() {
		return true
	}
	for _, id := range o.EligibleResourceIDs {
		if id == resourceID {
			return true
		}
	}
	return false
}
