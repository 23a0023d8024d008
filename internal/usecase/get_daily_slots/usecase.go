package get_daily_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	catalogClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// Usecase сценарий получения доступных слотов на день
type Usecase struct {
	catalogClient CatalogServiceClient
	settingsRepo  SettingsRepository
	shiftRepo     ShiftRepository
	bookingRepo   BookingRepository
	cache         AvailabilityCache // nil, если кэширование выключено
	timeProvider  TimeProvider
	logger        Logger
}

// New создает новый экземпляр usecase
func New(
	catalogClient CatalogServiceClient,
	settingsRepo SettingsRepository,
	shiftRepo ShiftRepository,
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		catalogClient: catalogClient,
		settingsRepo:  settingsRepo,
		shiftRepo:     shiftRepo,
		bookingRepo:   bookingRepo,
		cache:         cache,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute вычисляет доступные слоты компании на один день.
//
// Бизнес-логика:
// 1. Валидация запроса
// 2. Получение компании и услуги из CatalogService
// 3. Определение часового пояса и допустимых ресурсов
// 4. Попытка отдать ответ из кэша
// 5. Загрузка смен и бронирований одним снапшотом
// 6. Чистый расчёт слотов движком доступности
//
// Непригодный ресурс или ограничение услуги по дням недели - успешный
// пустой результат, а не ошибка.
func (u *Usecase) Execute(ctx context.Context, req *GetDailySlotsRequest) (*GetDailySlotsResponse, error) {
	date, err := validateRequest(req)
	if err != nil {
		u.logger.Warn("Execute: validation failed: %v", err)
		return nil, err
	}

	u.logger.Info("Execute: daily slots company=%d service=%d date=%s", req.CompanyID, req.ServiceID, req.Date)

	company, err := u.catalogClient.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCompanyNotFound) {
			u.logger.Warn("Execute: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		u.logger.Error("Execute: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	service, err := u.catalogClient.GetService(ctx, req.CompanyID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			u.logger.Warn("Execute: service id=%d not found in company=%d", req.ServiceID, req.CompanyID)
			return nil, ErrServiceNotFound
		}
		u.logger.Error("Execute: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Явно запрошенный ресурс обязан существовать в компании
	if req.ResourceID != nil && !company.HasResource(*req.ResourceID) {
		u.logger.Warn("Execute: resource id=%d not found in company=%d", *req.ResourceID, req.CompanyID)
		return nil, ErrResourceNotFound
	}

	settings, err := u.loadSettings(ctx, req.CompanyID, company.Timezone)
	if err != nil {
		return nil, err
	}

	loc, tzName := u.resolveLocation(req.Timezone, settings.Timezone)
	offering := u.toDomainOffering(service)
	resourceIDs := eligibleResources(company, offering, req.ResourceID)

	resp := &GetDailySlotsResponse{
		CompanyID: req.CompanyID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Timezone:  tzName,
		Slots:     []SlotPayload{},
	}

	// Непригодный ресурс - успешный пустой ответ
	if len(resourceIDs) == 0 {
		u.logger.Info("Execute: no eligible resources for service=%d, returning empty result", req.ServiceID)
		return resp, nil
	}

	now := u.timeProvider.Now()

	var cacheKey string
	if u.cache != nil {
		var requestedResource int64
		if req.ResourceID != nil {
			requestedResource = *req.ResourceID
		}
		cacheKey = u.cache.DailySlotsKey(req.CompanyID, req.ServiceID, requestedResource, req.Date, tzName, now)

		var cached GetDailySlotsResponse
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			// Кэш не критичен для корректности: деградируем до расчёта
			u.logger.Warn("Execute: cache lookup failed: %v", err)
		} else if hit {
			u.logger.Info("Execute: cache hit for key=%s", cacheKey)
			return &cached, nil
		}
	}

	localDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	shifts, err := u.shiftRepo.GetMonthForResources(ctx, req.CompanyID, resourceIDs, localDate.Year(), localDate.Month())
	if err != nil {
		u.logger.Error("Execute: failed to load shifts: %v", err)
		return nil, fmt.Errorf("%w: failed to load shifts: %v", ErrInternal, err)
	}

	// Бронирования всего дня одним запросом: один снапшот стора на расчёт
	dayUTC := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	bookings, err := u.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		CompanyID:   req.CompanyID,
		ResourceIDs: resourceIDs,
		StartDate:   &dayUTC,
		EndDate:     &dayUTC,
	})
	if err != nil {
		u.logger.Error("Execute: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	slots, err := availability.DaySlots(availability.DayInputs{
		Offering:     offering,
		ResourceIDs:  resourceIDs,
		Date:         localDate,
		Location:     loc,
		Now:          now,
		StepMinutes:  settings.SlotStepMinutes,
		Hours:        settings.Hours,
		HolidayRules: settings.HolidayRules,
		Shifts:       shifts,
		Bookings:     bookings,
	})
	if err != nil {
		u.logger.Error("Execute: slot calculation failed: %v", err)
		return nil, fmt.Errorf("%w: slot calculation failed: %v", ErrInternal, err)
	}

	resp.Slots = slotsToPayload(slots)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, resp); err != nil {
			u.logger.Warn("Execute: failed to store response in cache: %v", err)
		}
	}

	u.logger.Info("Execute: calculated %d slots for company=%d service=%d date=%s",
		len(resp.Slots), req.CompanyID, req.ServiceID, req.Date)
	return resp, nil
}

// loadSettings загружает настройки компании, подставляя дефолтные при их отсутствии
func (u *Usecase) loadSettings(ctx context.Context, companyID int64, companyTimezone string) (*domain.CompanySettings, error) {
	settings, err := u.settingsRepo.GetByCompany(ctx, companyID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		u.logger.Error("loadSettings: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	tz := companyTimezone
	if tz == "" {
		tz = domain.DefaultTimezone
	}
	return &domain.CompanySettings{
		CompanyID:       companyID,
		SlotStepMinutes: domain.DefaultSlotStepMinutes,
		Timezone:        tz,
	}, nil
}

// resolveLocation выбирает часовой пояс: запрос > настройки > UTC.
// Невалидный пояс из настроек деградирует в UTC с предупреждением,
// а не роняет запрос.
func (u *Usecase) resolveLocation(requested, fromSettings string) (*time.Location, string) {
	for _, tz := range []string{requested, fromSettings} {
		if tz == "" {
			continue
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			u.logger.Warn("resolveLocation: unknown timezone %q, falling back", tz)
			continue
		}
		return loc, tz
	}
	return time.UTC, domain.DefaultTimezone
}

// toDomainOffering конвертирует услугу каталога в доменную модель.
// Неизвестное ограничение по дням самовосстанавливается в "none".
func (u *Usecase) toDomainOffering(s *catalogClient.Service) *domain.ServiceOffering {
	restriction := domain.DayRestriction(s.DayRestriction)
	if !restriction.IsValid() {
		u.logger.Warn("toDomainOffering: unknown day restriction %q for service=%d, treating as none", s.DayRestriction, s.ID)
		restriction = domain.RestrictionNone
	}

	return &domain.ServiceOffering{
		ID:                       s.ID,
		CompanyID:                s.CompanyID,
		Name:                     s.Name,
		DurationMinutes:          s.DurationMinutes,
		BufferAfterMinutes:       s.BufferAfterMinutes,
		ReservationDeadlineHours: s.ReservationDeadlineHours,
		EligibleResourceIDs:      s.EligibleResourceIDs,
		DayRestriction:           restriction,
	}
}

// eligibleResources возвращает активные ресурсы компании, пригодные для
// услуги. При явно запрошенном ресурсе список сужается до него одного.
func eligibleResources(company *catalogClient.Company, offering *domain.ServiceOffering, requested *int64) []int64 {
	out := make([]int64, 0, len(company.Resources))
	for _, r := range company.Resources {
		if !r.IsActive {
			continue
		}
		if requested != nil && r.ID != *requested {
			continue
		}
		if !offering.ResourceEligible(r.ID) {
			continue
		}
		out = append(out, r.ID)
	}
	return out
}
