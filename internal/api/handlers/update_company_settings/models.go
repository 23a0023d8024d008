package update_company_settings

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

// UpdateCompanySettingsRequest HTTP request model.
// Все поля опциональны: nil-поле остаётся без изменений.
type UpdateCompanySettingsRequest struct {
	SlotStepMinutes *int                                   `json:"slotStepMinutes,omitempty"`
	Timezone        *string                                `json:"timezone,omitempty"`
	BasicHours      *[]models.TimeRangePayload             `json:"basicHours,omitempty"`
	WeeklyHours     *map[string]models.WeekdayHoursPayload `json:"weeklyHours,omitempty"`
	HolidayRules    *[]models.HolidayRulePayload           `json:"holidayRules,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCompanySettingsRequest) ToServiceRequest(userID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:          userID,
		SlotStepMinutes: r.SlotStepMinutes,
		Timezone:        r.Timezone,
		BasicHours:      r.BasicHours,
		WeeklyHours:     r.WeeklyHours,
		HolidayRules:    r.HolidayRules,
	}
}
