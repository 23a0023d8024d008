package update_resource_shift

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/shifts/models"
)

type ShiftsService interface {
	UpsertMonth(ctx context.Context, companyID, resourceID int64, year int, month time.Month, req *models.UpdateMonthRequest) (*models.MonthGridResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
