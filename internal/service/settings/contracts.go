package settings

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
)

// SettingsRepository интерфейс репозитория настроек компании
type SettingsRepository interface {
	GetByCompany(ctx context.Context, companyID int64) (*domain.CompanySettings, error)
	Upsert(ctx context.Context, settings *domain.CompanySettings) (*domain.CompanySettings, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*catalogservice.Company, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
