package get_daily_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
)

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*catalogservice.Company, error)
	GetService(ctx context.Context, companyID, serviceID int64) (*catalogservice.Service, error)
}

// SettingsRepository интерфейс репозитория настроек компании
type SettingsRepository interface {
	GetByCompany(ctx context.Context, companyID int64) (*domain.CompanySettings, error)
}

// ShiftRepository интерфейс репозитория месячных смен ресурсов
type ShiftRepository interface {
	GetMonthForResources(ctx context.Context, companyID int64, resourceIDs []int64, year int, month time.Month) (map[int64]*domain.ResourceMonthShift, error)
}

// BookingRepository интерфейс read-only репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityCache интерфейс короткоживущего кэша ответов о доступности
type AvailabilityCache interface {
	DailySlotsKey(companyID, serviceID, resourceID int64, date, timezone string, now time.Time) string
	GetJSON(ctx context.Context, key string, out interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на основе системных часов
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
