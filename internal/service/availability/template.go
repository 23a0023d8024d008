package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BuildWeekdayTemplate выводит "обычный" график ресурса по дням недели
// из снапшота его месяца. Для каждого дня недели берётся самый ранний
// явный открытый день с непустыми интервалами; если таких нет -
// часы работы провайдера (weekly-переопределение при useCustom, иначе basic).
//
// Это чистая функция от снапшота: шаблон никогда не хранится и не
// мутируется между запросами.
func BuildWeekdayTemplate(shift *domain.ResourceMonthShift, hours domain.BusinessHours) domain.WeekdayTemplate {
	tmpl := make(domain.WeekdayTemplate, len(domain.Weekdays))
	for _, w := range domain.Weekdays {
		tmpl[w] = domain.DayEntry{
			Status: domain.DayStatusOpen,
			Slots:  domain.SanitizeTimeRanges(hours.ForWeekday(w)),
		}
	}

	if shift == nil || len(shift.Days) == 0 {
		return tmpl
	}

	days := make([]int, 0, len(shift.Days))
	for day := range shift.Days {
		days = append(days, day)
	}
	sort.Ints(days)

	derived := make(map[time.Weekday]bool, len(domain.Weekdays))
	for _, day := range days {
		entry := shift.Days[day].Normalize()
		if !entry.Status.IsOpen() || len(entry.Slots) == 0 {
			continue
		}

		weekday := time.Date(shift.Year, shift.Month, day, 0, 0, 0, 0, time.UTC).Weekday()
		if derived[weekday] {
			continue
		}

		// Шаблон описывает обычный день, поэтому статус всегда open,
		// даже если источником было разовое temporary_open
		tmpl[weekday] = domain.DayEntry{Status: domain.DayStatusOpen, Slots: entry.Slots}
		derived[weekday] = true
	}

	return tmpl
}

// ResolveDay вычисляет итоговый DayEntry одного календарного дня,
// послойно совмещая источники:
//  1. явное переопределение дня в месяце ресурса;
//  2. иначе - шаблон дня недели (уже содержащий fallback на часы провайдера);
//  3. open с пустыми интервалами наследует интервалы шаблона;
//  4. правило выходного дня: temporary_closed канонизируется в
//     regular_holiday, выходной подавляет всё кроме явного temporary_open;
//  5. закрытый статус всегда обнуляет интервалы.
func ResolveDay(
	day int,
	weekday time.Weekday,
	shift *domain.ResourceMonthShift,
	tmpl domain.WeekdayTemplate,
	holidays map[int]bool,
) domain.DayEntry {
	entry, explicit := shift.Entry(day)
	if explicit {
		entry = entry.Normalize()
	} else {
		entry = tmpl[weekday]
	}

	// "Open без настроенных интервалов" означает "наследуй шаблон",
	// а не "закрыто"
	if entry.Status == domain.DayStatusOpen && len(entry.Slots) == 0 {
		if t := tmpl[weekday]; len(t.Slots) > 0 {
			entry.Slots = t.Slots
		}
	}

	if holidays[day] {
		switch entry.Status {
		case domain.DayStatusTemporaryOpen:
			// Явное разовое открытие сильнее правила выходного
		case domain.DayStatusUnavailable:
			// Уже закрыт более конкретным статусом - не переписываем
		default:
			entry.Status = domain.DayStatusRegularHoliday
		}
	}

	// Инвариант: закрытый день не несёт интервалов
	if entry.Status.IsClosed() {
		entry.Slots = nil
	}

	return entry
}
