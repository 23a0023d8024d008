package get_company_settings

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

// GetDefaultSettingsResponse возвращает дефолтные настройки компании,
// когда в БД ещё ничего не сохранено
func GetDefaultSettingsResponse(companyID int64) *models.SettingsResponse {
	return &models.SettingsResponse{
		ID:              0, // 0 означает, что это не из БД
		CompanyID:       companyID,
		SlotStepMinutes: domain.DefaultSlotStepMinutes,
		Timezone:        domain.DefaultTimezone,
		BasicHours:      []models.TimeRangePayload{},
		WeeklyHours:     map[string]models.WeekdayHoursPayload{},
		HolidayRules:    []models.HolidayRulePayload{},
	}
}
