package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// HolidaySet вычисляет множество дней месяца, закрытых повторяющимися
// правилами выходных. Weekly-правило отмечает каждое вхождение дня недели,
// nth_N - только N-е вхождение, считая с 1-го числа. Счётчик вхождений
// ведётся отдельно для каждого дня недели и обнуляется на границе месяца.
func HolidaySet(rules []domain.HolidayRule, year int, month time.Month) (map[int]bool, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	for _, rule := range rules {
		if !rule.Frequency.IsValid() {
			return nil, fmt.Errorf("%w: frequency %q", ErrInvalidHolidayRule, rule.Frequency)
		}
	}

	holidays := make(map[int]bool)
	if len(rules) == 0 {
		return holidays, nil
	}

	// Счётчик того, сколько раз каждый день недели уже встретился в месяце
	occurrences := make(map[time.Weekday]int, 7)

	total := daysInMonth(year, month)
	for day := 1; day <= total; day++ {
		weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		occurrences[weekday]++

		for _, rule := range rules {
			if rule.Weekday != weekday {
				continue
			}
			if rule.Frequency == domain.FrequencyWeekly || rule.Frequency.Nth() == occurrences[weekday] {
				holidays[day] = true
				break
			}
		}
	}

	return holidays, nil
}

// daysInMonth возвращает число дней в месяце (нормализация time.Date:
// нулевой день следующего месяца - последний день текущего)
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
