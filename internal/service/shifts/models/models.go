package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// TimeRangePayload интервал времени в формате "HH:MM"
type TimeRangePayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayPayload один день месячной сетки смены.
// isExplicit=true означает сохранённое переопределение,
// false - день вычислен из шаблона дня недели.
type DayPayload struct {
	Day        int                `json:"day"`
	Status     string             `json:"status"`
	TimeSlots  []TimeRangePayload `json:"timeSlots"`
	IsExplicit bool               `json:"isExplicit"`
	IsHoliday  bool               `json:"isHoliday"`
}

// MonthGridResponse полная сетка месяца для редактирования смены ресурса
type MonthGridResponse struct {
	CompanyID  int64        `json:"companyId"`
	ResourceID int64        `json:"resourceId"`
	Year       int          `json:"year"`
	Month      int          `json:"month"`
	Days       []DayPayload `json:"days"`
}

// UpdateDayPayload явное переопределение одного дня при сохранении смены
type UpdateDayPayload struct {
	Day       int                `json:"day"`
	Status    string             `json:"status"`
	TimeSlots []TimeRangePayload `json:"timeSlots"`
}

// UpdateMonthRequest запрос на перезапись смены ресурса за месяц.
// Передаются только явные переопределения: день, которого нет в списке,
// вернётся к шаблонному поведению.
type UpdateMonthRequest struct {
	UserID int64
	Days   []UpdateDayPayload `json:"days"`
}

// ToDomainShift конвертирует запрос в доменную месячную смену
func (r *UpdateMonthRequest) ToDomainShift(companyID, resourceID int64, year int, month time.Month) (*domain.ResourceMonthShift, error) {
	shift := &domain.ResourceMonthShift{
		CompanyID:  companyID,
		ResourceID: resourceID,
		Year:       year,
		Month:      month,
		Days:       make(map[int]domain.DayEntry, len(r.Days)),
	}

	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	for _, payload := range r.Days {
		if payload.Day < 1 || payload.Day > lastDay {
			return nil, fmt.Errorf("day %d is out of range for %04d-%02d", payload.Day, year, month)
		}
		if _, ok := shift.Days[payload.Day]; ok {
			return nil, fmt.Errorf("duplicate day %d", payload.Day)
		}

		status := domain.DayStatus(payload.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("unknown day status %q", payload.Status)
		}

		slots, err := payloadToRanges(payload.TimeSlots)
		if err != nil {
			return nil, err
		}

		shift.Days[payload.Day] = domain.DayEntry{Status: status, Slots: slots}
	}

	return shift, nil
}

func payloadToRanges(payload []TimeRangePayload) ([]domain.TimeRange, error) {
	out := make([]domain.TimeRange, 0, len(payload))
	for _, p := range payload {
		start, err := types.NewTimeStringFromString(p.Start)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(p.End)
		if err != nil {
			return nil, err
		}
		rng := domain.TimeRange{Start: start, End: end}
		if !rng.IsValid() {
			return nil, fmt.Errorf("invalid time range %s-%s", p.Start, p.End)
		}
		out = append(out, rng)
	}
	return out, nil
}

// RangesToPayload конвертирует доменные интервалы в модель ответа
func RangesToPayload(ranges []domain.TimeRange) []TimeRangePayload {
	out := make([]TimeRangePayload, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, TimeRangePayload{Start: r.Start.String(), End: r.End.String()})
	}
	return out
}
