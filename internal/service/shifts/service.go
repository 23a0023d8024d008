package shifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	catalogClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/shifts/models"
)

// Service сервис месячных смен ресурсов
type Service struct {
	shiftRepo     ShiftRepository
	settingsRepo  SettingsRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(
	shiftRepo ShiftRepository,
	settingsRepo SettingsRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		shiftRepo:     shiftRepo,
		settingsRepo:  settingsRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetMonthGrid строит полную сетку месяца для ресурса: каждый день получает
// итоговый статус и интервалы с учётом явных переопределений, шаблона дня
// недели и правил выходных. Дни без переопределения помечаются isExplicit=false.
// Доступно только менеджерам компании.
func (s *Service) GetMonthGrid(ctx context.Context, userID, companyID, resourceID int64, year int, month time.Month) (*models.MonthGridResponse, error) {
	s.logger.Info("GetMonthGrid: company=%d resource=%d %04d-%02d by user=%d", companyID, resourceID, year, month, userID)

	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	company, err := s.authorizeManager(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	if !company.HasResource(resourceID) {
		s.logger.Warn("GetMonthGrid: resource id=%d not found in company=%d", resourceID, companyID)
		return nil, ErrResourceNotFound
	}

	settings, err := s.loadSettings(ctx, companyID, company.Timezone)
	if err != nil {
		return nil, err
	}

	shift, err := s.shiftRepo.GetMonth(ctx, companyID, resourceID, year, month)
	if err != nil {
		s.logger.Error("GetMonthGrid: failed to load shift: %v", err)
		return nil, fmt.Errorf("%w: GetMonthGrid - load shift: %v", ErrInternal, err)
	}

	holidays, err := availability.HolidaySet(settings.HolidayRules, year, month)
	if err != nil {
		s.logger.Error("GetMonthGrid: failed to compute holidays: %v", err)
		return nil, fmt.Errorf("%w: GetMonthGrid - compute holidays: %v", ErrInternal, err)
	}

	tmpl := availability.BuildWeekdayTemplate(shift, settings.Hours)

	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	grid := &models.MonthGridResponse{
		CompanyID:  companyID,
		ResourceID: resourceID,
		Year:       year,
		Month:      int(month),
		Days:       make([]models.DayPayload, 0, lastDay),
	}

	for day := 1; day <= lastDay; day++ {
		weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		entry := availability.ResolveDay(day, weekday, shift, tmpl, holidays)
		_, explicit := shift.Entry(day)

		grid.Days = append(grid.Days, models.DayPayload{
			Day:        day,
			Status:     string(entry.Status),
			TimeSlots:  models.RangesToPayload(entry.Slots),
			IsExplicit: explicit,
			IsHoliday:  holidays[day],
		})
	}

	s.logger.Info("GetMonthGrid: built grid with %d days for resource=%d", lastDay, resourceID)
	return grid, nil
}

// UpsertMonth перезаписывает явные переопределения дней ресурса за месяц.
// Смена сохраняется целиком в одной сериализуемой транзакции.
// Доступно только менеджерам компании.
func (s *Service) UpsertMonth(ctx context.Context, companyID, resourceID int64, year int, month time.Month, req *models.UpdateMonthRequest) (*models.MonthGridResponse, error) {
	s.logger.Info("UpsertMonth: company=%d resource=%d %04d-%02d by user=%d", companyID, resourceID, year, month, req.UserID)

	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	company, err := s.authorizeManager(ctx, req.UserID, companyID)
	if err != nil {
		return nil, err
	}
	if !company.HasResource(resourceID) {
		s.logger.Warn("UpsertMonth: resource id=%d not found in company=%d", resourceID, companyID)
		return nil, ErrResourceNotFound
	}

	shift, err := req.ToDomainShift(companyID, resourceID, year, month)
	if err != nil {
		s.logger.Warn("UpsertMonth: invalid payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Инвариант на границе записи: закрытые дни теряют интервалы,
	// кривые интервалы отбрасываются
	shift.Normalize()

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.shiftRepo.UpsertMonth(txCtx, shift)
	})
	if err != nil {
		s.logger.Error("UpsertMonth: failed to save shift: %v", err)
		return nil, fmt.Errorf("%w: UpsertMonth - save shift: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertMonth: saved %d explicit days for resource=%d", len(shift.Days), resourceID)

	// Возвращаем актуальную сетку, чтобы клиент сразу видел итоговые статусы
	return s.GetMonthGrid(ctx, req.UserID, companyID, resourceID, year, month)
}

// authorizeManager проверяет существование компании и права менеджера
func (s *Service) authorizeManager(ctx context.Context, userID, companyID int64) (*catalogClient.Company, error) {
	company, err := s.catalogClient.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCompanyNotFound) {
			s.logger.Warn("authorizeManager: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("authorizeManager: failed to get company id=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	if !company.IsManager(userID) {
		s.logger.Warn("authorizeManager: user=%d is not a manager of company=%d", userID, companyID)
		return nil, ErrAccessDenied
	}

	return company, nil
}

// loadSettings загружает настройки компании, подставляя дефолтные при их отсутствии
func (s *Service) loadSettings(ctx context.Context, companyID int64, companyTimezone string) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.GetByCompany(ctx, companyID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("loadSettings: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: loadSettings - repository error: %v", ErrInternal, err)
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

func validateYearMonth(year int, month time.Month) error {
	if year < domain.MinCalendarYear || year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	return nil
}
