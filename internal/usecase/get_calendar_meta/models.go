package get_calendar_meta

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// GetCalendarMetaRequest запрос помесячной сводки доступности
type GetCalendarMetaRequest struct {
	CompanyID  int64
	ServiceID  int64
	ResourceID *int64 // nil = общая сводка по компании
	Year       int
	Month      int
	Timezone   string // опциональное переопределение часового пояса
}

// DayMetaPayload сводка одного дня месяца
type DayMetaPayload struct {
	Day               int    `json:"day"`
	Status            string `json:"status"`
	HasAvailableSlots bool   `json:"hasAvailableSlots"`
}

// GetCalendarMetaResponse модель ответа с помесячной сводкой.
// Дни упорядочены по возрастанию.
type GetCalendarMetaResponse struct {
	CompanyID int64            `json:"companyId"`
	ServiceID int64            `json:"serviceId"`
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Timezone  string           `json:"timezone"`
	Days      []DayMetaPayload `json:"days"`
}

func summaryToPayload(summary map[int]domain.DaySummary, totalDays int) []DayMetaPayload {
	out := make([]DayMetaPayload, 0, totalDays)
	for day := 1; day <= totalDays; day++ {
		s := summary[day]
		out = append(out, DayMetaPayload{
			Day:               day,
			Status:            string(s.Status),
			HasAvailableSlots: s.HasAvailableSlots,
		})
	}
	return out
}
