package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// hasConflict проверяет, пересекается ли кандидат [startMin, blockedEndMin)
// с каким-либо из бронирований ресурса. Блок бронирования - от его начала
// до конца услуги плюс буфер. Сравнение полуинтервалов строгое:
// соприкасающиеся границы пересечением НЕ считаются.
//
// Примеры:
//   - кандидат 11:30-12:30, бронирование 11:00-11:30 (буфер 0) → нет конфликта
//   - кандидат 11:30-12:30, бронирование 11:00-11:20 + буфер 15 (до 11:35) → конфликт
func hasConflict(startMin, blockedEndMin int, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.StartMinutes() < blockedEndMin && booking.BlockedUntilMinutes() > startMin {
			return true
		}
	}
	return false
}

// groupActiveBookings раскладывает активные бронирования указанной даты
// по ресурсам. Неактивные (отменённые, no-show) слот не занимают.
func groupActiveBookings(bookings []*domain.Booking, date time.Time) map[int64][]*domain.Booking {
	grouped := make(map[int64][]*domain.Booking)
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if !sameDay(booking.BookingDate, date) {
			continue
		}
		grouped[booking.ResourceID] = append(grouped[booking.ResourceID], booking)
	}
	return grouped
}

// sameDay проверяет, что две даты относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
