package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// DayInputs снапшот всех данных, необходимых для расчёта слотов одного дня.
// Движок не ходит в хранилища: usecase загружает данные заранее и передаёт
// их сюда, поэтому расчёт чистый и безопасен при конкурентных запросах.
type DayInputs struct {
	Offering    *domain.ServiceOffering
	ResourceIDs []int64 // уже отфильтрованные допустимые ресурсы

	Date     time.Time // любой момент целевого дня
	Location *time.Location
	Now      time.Time

	StepMinutes  int
	Hours        domain.BusinessHours
	HolidayRules []domain.HolidayRule
	Shifts       map[int64]*domain.ResourceMonthShift // по ресурсам, месяц Date
	Bookings     []*domain.Booking
}

// MonthInputs снапшот данных для месячной сводки
type MonthInputs struct {
	Offering    *domain.ServiceOffering
	ResourceID  *int64  // запрошенный ресурс; nil = общая сводка провайдера
	ResourceIDs []int64 // допустимые ресурсы для расчёта наличия слотов

	Year     int
	Month    time.Month
	Location *time.Location
	Now      time.Time

	StepMinutes  int
	Hours        domain.BusinessHours
	HolidayRules []domain.HolidayRule
	Shifts       map[int64]*domain.ResourceMonthShift
	Bookings     []*domain.Booking
}

// DaySlots вычисляет упорядоченный список доступных для бронирования слотов
// на один день. Пустой результат - успешный ответ: ограничение по дням
// недели, выходной, дедлайн или полная занятость ошибками не являются.
func DaySlots(in DayInputs) ([]domain.BookableSlot, error) {
	if err := validateOffering(in.Offering); err != nil {
		return nil, err
	}

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	date := midnight(in.Date, loc)

	// Ограничение услуги по дням недели - успешный пустой результат
	if !in.Offering.DayRestriction.Allows(date.Weekday()) {
		return []domain.BookableSlot{}, nil
	}

	holidays, err := HolidaySet(in.HolidayRules, date.Year(), date.Month())
	if err != nil {
		return nil, err
	}

	templates := buildTemplates(in.ResourceIDs, in.Shifts, in.Hours)

	slots := generateForDay(dayParams{
		offering:  in.Offering,
		resources: sortedCopy(in.ResourceIDs),
		date:      date,
		loc:       loc,
		deadline:  deadlineFor(in.Now, in.Offering),
		step:      normalizeStep(in.StepMinutes),
		shifts:    in.Shifts,
		templates: templates,
		holidays:  holidays,
		bookings:  groupActiveBookings(in.Bookings, date),
	})

	return slots, nil
}

// MonthSummary строит помесячную сводку: статус каждого дня плюс признак
// наличия хотя бы одного доступного слота. Дни строго раньше "сегодня"
// в часовом поясе запроса всегда отмечаются как недоступные.
func MonthSummary(in MonthInputs) (map[int]domain.DaySummary, error) {
	if err := validateOffering(in.Offering); err != nil {
		return nil, err
	}

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	holidays, err := HolidaySet(in.HolidayRules, in.Year, in.Month)
	if err != nil {
		return nil, err
	}

	// Статус дня показываем по запрошенному ресурсу; без ресурса -
	// по шаблону провайдера как общий ориентир доступности
	var statusShift *domain.ResourceMonthShift
	if in.ResourceID != nil {
		statusShift = in.Shifts[*in.ResourceID]
	}
	statusTmpl := BuildWeekdayTemplate(statusShift, in.Hours)

	templates := buildTemplates(in.ResourceIDs, in.Shifts, in.Hours)
	resources := sortedCopy(in.ResourceIDs)
	deadline := deadlineFor(in.Now, in.Offering)
	step := normalizeStep(in.StepMinutes)
	today := midnight(in.Now.In(loc), loc)

	summary := make(map[int]domain.DaySummary)
	total := daysInMonth(in.Year, in.Month)

	for day := 1; day <= total; day++ {
		date := time.Date(in.Year, in.Month, day, 0, 0, 0, 0, loc)
		entry := ResolveDay(day, date.Weekday(), statusShift, statusTmpl, holidays)

		result := domain.DaySummary{Status: entry.Status}

		// В прошлом ничего не бронируется, какой бы шаблон ни был
		pastDay := date.Before(today)

		if !pastDay && !entry.Status.IsClosed() && in.Offering.DayRestriction.Allows(date.Weekday()) {
			slots := generateForDay(dayParams{
				offering:  in.Offering,
				resources: resources,
				date:      date,
				loc:       loc,
				deadline:  deadline,
				step:      step,
				shifts:    in.Shifts,
				templates: templates,
				holidays:  holidays,
				bookings:  groupActiveBookings(in.Bookings, date),
			})
			result.HasAvailableSlots = len(slots) > 0
		}

		summary[day] = result
	}

	return summary, nil
}

// dayParams предрасчитанные параметры генерации слотов одного дня
type dayParams struct {
	offering  *domain.ServiceOffering
	resources []int64
	date      time.Time // полночь в loc
	loc       *time.Location
	deadline  time.Time
	step      int
	shifts    map[int64]*domain.ResourceMonthShift
	templates map[int64]domain.WeekdayTemplate
	holidays  map[int]bool
	bookings  map[int64][]*domain.Booking
}

// generateForDay генерирует слоты-кандидаты по всем ресурсам дня и
// фильтрует их по дедлайну и конфликтам с бронированиями.
// Результат упорядочен по времени начала, затем по ID ресурса.
func generateForDay(p dayParams) []domain.BookableSlot {
	duration := p.offering.DurationMinutes
	buffer := p.offering.BufferAfterMinutes
	day := p.date.Day()
	weekday := p.date.Weekday()

	slots := make([]domain.BookableSlot, 0)

	for _, resourceID := range p.resources {
		shift := p.shifts[resourceID]
		entry := ResolveDay(day, weekday, shift, p.templates[resourceID], p.holidays)
		if entry.Status.IsClosed() {
			continue
		}

		resourceBookings := p.bookings[resourceID]
		seen := make(map[int]bool)

		for _, rng := range entry.Slots {
			rangeEnd := rng.End.Minutes()

			for startMin := rng.Start.Minutes(); startMin+duration <= rangeEnd; startMin += p.step {
				// Интервалы дня могут перекрываться - кандидат
				// с одинаковым началом генерируем один раз
				if seen[startMin] {
					continue
				}
				seen[startMin] = true

				serviceEndMin := startMin + duration
				blockedEndMin := serviceEndMin + buffer

				startAt := p.date.Add(time.Duration(startMin) * time.Minute)

				// Дедлайн бронирования отсчитывается от "сейчас",
				// а не от полуночи дня бронирования
				if startAt.Before(p.deadline) {
					continue
				}

				if hasConflict(startMin, blockedEndMin, resourceBookings) {
					continue
				}

				slots = append(slots, domain.BookableSlot{
					ResourceID:   resourceID,
					StartAt:      startAt,
					ServiceEndAt: p.date.Add(time.Duration(serviceEndMin) * time.Minute),
					EndAt:        p.date.Add(time.Duration(blockedEndMin) * time.Minute),
				})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].StartAt.Equal(slots[j].StartAt) {
			return slots[i].StartAt.Before(slots[j].StartAt)
		}
		return slots[i].ResourceID < slots[j].ResourceID
	})

	return slots
}

func validateOffering(offering *domain.ServiceOffering) error {
	if offering == nil {
		return fmt.Errorf("%w: offering is nil", ErrInvalidOffering)
	}
	if offering.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidOffering, offering.DurationMinutes)
	}
	if offering.BufferAfterMinutes < 0 {
		return fmt.Errorf("%w: negative buffer %d", ErrInvalidOffering, offering.BufferAfterMinutes)
	}
	if offering.ReservationDeadlineHours < 0 {
		return fmt.Errorf("%w: negative reservation deadline %d", ErrInvalidOffering, offering.ReservationDeadlineHours)
	}
	return nil
}

func buildTemplates(
	resourceIDs []int64,
	shifts map[int64]*domain.ResourceMonthShift,
	hours domain.BusinessHours,
) map[int64]domain.WeekdayTemplate {
	templates := make(map[int64]domain.WeekdayTemplate, len(resourceIDs))
	for _, id := range resourceIDs {
		templates[id] = BuildWeekdayTemplate(shifts[id], hours)
	}
	return templates
}

func deadlineFor(now time.Time, offering *domain.ServiceOffering) time.Time {
	return now.Add(time.Duration(offering.ReservationDeadlineHours) * time.Hour)
}

func normalizeStep(step int) int {
	if step <= 0 {
		return domain.DefaultSlotStepMinutes
	}
	return step
}

func sortedCopy(ids []int64) []int64 {
	out := make([]int64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// midnight обнуляет время, оставляя календарную дату в указанном поясе
func midnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
