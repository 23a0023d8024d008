package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	catalogClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

// Service сервис настроек расписания компании
type Service struct {
	settingsRepo  SettingsRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetByCompany получает настройки компании.
// Публичный метод - доступен всем
func (s *Service) GetByCompany(ctx context.Context, companyID int64) (*models.SettingsResponse, error) {
	s.logger.Info("GetByCompany: fetching settings for company=%d", companyID)

	settings, err := s.settingsRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("GetByCompany: no settings for company=%d", companyID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetByCompany: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetByCompany - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCompany: successfully fetched settings id=%d", settings.ID)
	return models.FromDomainSettings(settings), nil
}

// Update обновляет настройки компании.
// Доступно только менеджерам компании. Поддерживает частичное обновление.
// Часы работы и правила выходных перезаписываются в одной транзакции.
func (s *Service) Update(ctx context.Context, companyID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for company=%d by user=%d", companyID, req.UserID)

	// 1. Получаем компанию для проверки прав доступа
	company, err := s.catalogClient.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCompanyNotFound) {
			s.logger.Warn("Update: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Update: failed to get company id=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер компании)
	if !company.IsManager(req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of company=%d", req.UserID, companyID)
		return nil, ErrAccessDenied
	}

	// 3. Загружаем существующие настройки или стартуем с дефолтных
	settings, err := s.settingsRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: repository error for company=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		settings = defaultSettings(companyID, company.Timezone)
	}

	// 4. Применяем частичное обновление
	if err := req.ApplyToSettings(settings); err != nil {
		s.logger.Warn("Update: invalid payload for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Валидируем результат
	if err := s.validateSettings(settings); err != nil {
		s.logger.Warn("Update: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	// Инвариант на границе записи: интервалы часов работы канонизируются
	settings.Hours = settings.Hours.Sanitize()

	// 6. Сохраняем всё в одной транзакции (настройки + часы + правила)
	var updated *domain.CompanySettings
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.settingsRepo.Upsert(txCtx, settings)
		return txErr
	})
	if err != nil {
		s.logger.Error("Update: failed to save settings for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Update - save settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings id=%d for company=%d", updated.ID, companyID)
	return models.FromDomainSettings(updated), nil
}

func (s *Service) validateSettings(settings *domain.CompanySettings) error {
	if settings.SlotStepMinutes < domain.MinSlotStepMinutes || settings.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if settings.Timezone != "" {
		if _, err := time.LoadLocation(settings.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, settings.Timezone)
		}
	}

	return nil
}

// defaultSettings стартовые настройки компании, когда в БД ещё ничего нет
func defaultSettings(companyID int64, companyTimezone string) *domain.CompanySettings {
	tz := companyTimezone
	if tz == "" {
		tz = domain.DefaultTimezone
	}
	return &domain.CompanySettings{
		CompanyID:       companyID,
		SlotStepMinutes: domain.DefaultSlotStepMinutes,
		Timezone:        tz,
		Hours:           domain.BusinessHours{Weekly: map[time.Weekday]domain.WeekdayHours{}},
	}
}
