package get_daily_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest проверяет запрос и возвращает распарсенную дату
func validateRequest(req *GetDailySlotsRequest) (time.Time, error) {
	if req.CompanyID <= 0 {
		return time.Time{}, fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return time.Time{}, fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.ResourceID != nil && *req.ResourceID <= 0 {
		return time.Time{}, fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidInput, req.Date)
	}
	if date.Year() < domain.MinCalendarYear || date.Year() > domain.MaxCalendarYear {
		return time.Time{}, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}

	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return time.Time{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.Timezone)
		}
	}

	return date, nil
}
