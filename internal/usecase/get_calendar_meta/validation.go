package get_calendar_meta

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func validateRequest(req *GetCalendarMetaRequest) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.ResourceID != nil && *req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}
	if req.Year < domain.MinCalendarYear || req.Year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.Timezone)
		}
	}

	return nil
}
