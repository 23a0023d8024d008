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

// WeekdayHoursPayload часы работы одного дня недели.
// useCustom=false означает "использовать базовые часы".
type WeekdayHoursPayload struct {
	UseCustom bool               `json:"useCustom"`
	TimeSlots []TimeRangePayload `json:"timeSlots"`
}

// HolidayRulePayload правило регулярного выходного
type HolidayRulePayload struct {
	Weekday   string `json:"weekday"`   // mon..sun
	Frequency string `json:"frequency"` // weekly | nth_1..nth_5
}

// SettingsResponse модель ответа с настройками компании
type SettingsResponse struct {
	ID              int64                          `json:"id"`
	CompanyID       int64                          `json:"companyId"`
	SlotStepMinutes int                            `json:"slotStepMinutes"`
	Timezone        string                         `json:"timezone"`
	BasicHours      []TimeRangePayload             `json:"basicHours"`
	WeeklyHours     map[string]WeekdayHoursPayload `json:"weeklyHours"`
	HolidayRules    []HolidayRulePayload           `json:"holidayRules"`
	CreatedAt       time.Time                      `json:"createdAt"`
	UpdatedAt       time.Time                      `json:"updatedAt"`
}

// UpdateSettingsRequest запрос на обновление настроек компании.
// Поддерживает частичное обновление: nil-поле остаётся без изменений.
type UpdateSettingsRequest struct {
	UserID          int64
	SlotStepMinutes *int
	Timezone        *string
	BasicHours      *[]TimeRangePayload
	WeeklyHours     *map[string]WeekdayHoursPayload
	HolidayRules    *[]HolidayRulePayload
}

// FromDomainSettings конвертирует доменные настройки в модель ответа
func FromDomainSettings(s *domain.CompanySettings) *SettingsResponse {
	resp := &SettingsResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		SlotStepMinutes: s.SlotStepMinutes,
		Timezone:        s.Timezone,
		BasicHours:      rangesToPayload(s.Hours.Basic),
		WeeklyHours:     make(map[string]WeekdayHoursPayload, len(s.Hours.Weekly)),
		HolidayRules:    make([]HolidayRulePayload, 0, len(s.HolidayRules)),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	for _, weekday := range domain.Weekdays {
		wh, ok := s.Hours.Weekly[weekday]
		if !ok {
			continue
		}
		resp.WeeklyHours[domain.WeekdayKey(weekday)] = WeekdayHoursPayload{
			UseCustom: wh.UseCustom,
			TimeSlots: rangesToPayload(wh.Ranges),
		}
	}

	for _, rule := range s.HolidayRules {
		resp.HolidayRules = append(resp.HolidayRules, HolidayRulePayload{
			Weekday:   domain.WeekdayKey(rule.Weekday),
			Frequency: string(rule.Frequency),
		})
	}

	return resp
}

// ApplyToSettings применяет частичное обновление к доменным настройкам
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.CompanySettings) error {
	if r.SlotStepMinutes != nil {
		s.SlotStepMinutes = *r.SlotStepMinutes
	}
	if r.Timezone != nil {
		s.Timezone = *r.Timezone
	}

	if r.BasicHours != nil {
		ranges, err := payloadToRanges(*r.BasicHours)
		if err != nil {
			return err
		}
		s.Hours.Basic = ranges
	}

	if r.WeeklyHours != nil {
		weekly := make(map[time.Weekday]domain.WeekdayHours, len(*r.WeeklyHours))
		for key, payload := range *r.WeeklyHours {
			weekday, err := domain.ParseWeekdayKey(key)
			if err != nil {
				return err
			}
			ranges, err := payloadToRanges(payload.TimeSlots)
			if err != nil {
				return err
			}
			weekly[weekday] = domain.WeekdayHours{UseCustom: payload.UseCustom, Ranges: ranges}
		}
		s.Hours.Weekly = weekly
	}

	if r.HolidayRules != nil {
		rules := make([]domain.HolidayRule, 0, len(*r.HolidayRules))
		for _, payload := range *r.HolidayRules {
			weekday, err := domain.ParseWeekdayKey(payload.Weekday)
			if err != nil {
				return err
			}
			frequency := domain.HolidayFrequency(payload.Frequency)
			if !frequency.IsValid() {
				return fmt.Errorf("unknown holiday frequency %q", payload.Frequency)
			}
			rules = append(rules, domain.HolidayRule{Weekday: weekday, Frequency: frequency})
		}
		s.HolidayRules = rules
	}

	return nil
}

func rangesToPayload(ranges []domain.TimeRange) []TimeRangePayload {
	out := make([]TimeRangePayload, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, TimeRangePayload{Start: r.Start.String(), End: r.End.String()})
	}
	return out
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
