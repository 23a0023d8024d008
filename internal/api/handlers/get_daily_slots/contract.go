package get_daily_slots

import (
	"context"

	getDailySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_daily_slots"
)

type GetDailySlotsUseCase interface {
	Execute(ctx context.Context, req *getDailySlots.GetDailySlotsRequest) (*getDailySlots.GetDailySlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
