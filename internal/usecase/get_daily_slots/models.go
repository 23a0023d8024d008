package get_daily_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// GetDailySlotsRequest запрос доступных слотов на один день
type GetDailySlotsRequest struct {
	CompanyID  int64
	ServiceID  int64
	ResourceID *int64 // nil = любой допустимый ресурс компании
	Date       string // YYYY-MM-DD
	Timezone   string // опциональное переопределение часового пояса
}

// SlotPayload один доступный для бронирования слот.
// endAt включает буфер после услуги, serviceEndAt - нет.
type SlotPayload struct {
	ResourceID   int64     `json:"resourceId"`
	StartAt      time.Time `json:"startAt"`
	ServiceEndAt time.Time `json:"serviceEndAt"`
	EndAt        time.Time `json:"endAt"`
}

// GetDailySlotsResponse модель ответа со слотами на день.
// Пустой список слотов - успешный ответ.
type GetDailySlotsResponse struct {
	CompanyID int64         `json:"companyId"`
	ServiceID int64         `json:"serviceId"`
	Date      string        `json:"date"`
	Timezone  string        `json:"timezone"`
	Slots     []SlotPayload `json:"slots"`
}

func slotsToPayload(slots []domain.BookableSlot) []SlotPayload {
	out := make([]SlotPayload, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotPayload{
			ResourceID:   s.ResourceID,
			StartAt:      s.StartAt,
			ServiceEndAt: s.ServiceEndAt,
			EndAt:        s.EndAt,
		})
	}
	return out
}
