package update_resource_shift

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/shifts/models"
)

// UpdateResourceShiftRequest HTTP request model: список явных
// переопределений дней месяца
type UpdateResourceShiftRequest struct {
	Days []models.UpdateDayPayload `json:"days"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateResourceShiftRequest) ToServiceRequest(userID int64) *models.UpdateMonthRequest {
	return &models.UpdateMonthRequest{
		UserID: userID,
		Days:   r.Days,
	}
}
