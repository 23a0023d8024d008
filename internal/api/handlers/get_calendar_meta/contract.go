package get_calendar_meta

import (
	"context"

	getCalendarMeta "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar_meta"
)

type GetCalendarMetaUseCase interface {
	Execute(ctx context.Context, req *getCalendarMeta.GetCalendarMetaRequest) (*getCalendarMeta.GetCalendarMetaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
