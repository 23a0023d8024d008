package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func testOffering(duration, buffer, deadlineHours int) *domain.ServiceOffering {
	return &domain.ServiceOffering{
		ID:                       1,
		CompanyID:                1,
		Name:                     "Стрижка",
		DurationMinutes:          duration,
		BufferAfterMinutes:       buffer,
		ReservationDeadlineHours: deadlineHours,
		DayRestriction:           domain.RestrictionNone,
	}
}

func dayInputs(offering *domain.ServiceOffering, date time.Time) DayInputs {
	return DayInputs{
		Offering:    offering,
		ResourceIDs: []int64{10},
		Date:        date,
		Location:    time.UTC,
		Now:         time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC),
		StepMinutes: 30,
		Hours:       domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}},
	}
}

// Час работы 09:00-18:00, услуга 60 минут, шаг 30: слоты 09:00..17:00
func TestDaySlots_BasicGrid(t *testing.T) {
	offering := testOffering(60, 0, 0)
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC) // среда

	slots, err := DaySlots(dayInputs(offering, date))
	require.NoError(t, err)

	require.Len(t, slots, 17)
	assert.Equal(t, date.Add(9*time.Hour), slots[0].StartAt)
	assert.Equal(t, date.Add(10*time.Hour), slots[0].ServiceEndAt)
	assert.Equal(t, date.Add(10*time.Hour), slots[0].EndAt) // буфер 0
	assert.Equal(t, date.Add(17*time.Hour), slots[16].StartAt)
	assert.Equal(t, int64(10), slots[0].ResourceID)
}

func TestDaySlots_BufferExtendsEndAt(t *testing.T) {
	offering := testOffering(60, 15, 0)
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	slots, err := DaySlots(dayInputs(offering, date))
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// endAt включает буфер, serviceEndAt - нет
	assert.Equal(t, date.Add(10*time.Hour), slots[0].ServiceEndAt)
	assert.Equal(t, date.Add(10*time.Hour+15*time.Minute), slots[0].EndAt)

	// Буфер может выходить за границу интервала: последний слот 17:00
	assert.Equal(t, date.Add(17*time.Hour), slots[len(slots)-1].StartAt)
}

// Еженедельный выходной по вторникам: день пуст
func TestDaySlots_WeeklyHoliday(t *testing.T) {
	offering := testOffering(60, 0, 0)
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC) // вторник

	in := dayInputs(offering, date)
	in.HolidayRules = []domain.HolidayRule{{Weekday: time.Tuesday, Frequency: domain.FrequencyWeekly}}

	slots, err := DaySlots(in)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// Разовое открытие 08:00-10:00 сильнее правила выходного
func TestDaySlots_TemporaryOpenOverridesHoliday(t *testing.T) {
	offering := testOffering(60, 0, 0)
	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC) // воскресенье

	in := dayInputs(offering, date)
	in.HolidayRules = []domain.HolidayRule{{Weekday: time.Sunday, Frequency: domain.FrequencyWeekly}}
	in.StepMinutes = 60
	in.Shifts = map[int64]*domain.ResourceMonthShift{
		10: monthShift(2026, time.March, map[int]domain.DayEntry{
			15: {Status: domain.DayStatusTemporaryOpen, Slots: []domain.TimeRange{tr("08:00", "10:00")}},
		}),
	}

	slots, err := DaySlots(in)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, date.Add(8*time.Hour), slots[0].StartAt)
	assert.Equal(t, date.Add(9*time.Hour), slots[1].StartAt)
}

// Бронирование 10:00-11:00 с буфером 15 блокирует [10:00, 11:15)
func TestDaySlots_BookingConflict(t *testing.T) {
	offering := testOffering(30, 0, 0)
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	in := dayInputs(offering, date)
	in.StepMinutes = 15
	in.Hours = domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "12:00")}}
	in.Bookings = []*domain.Booking{
		booking(10, date, "10:00", 60, 15, domain.StatusConfirmed),
	}

	slots, err := DaySlots(in)
	require.NoError(t, err)

	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartAt.Format("15:04"))
	}

	// 09:30 заканчивается ровно в 10:00 - граница блока, не конфликт;
	// 11:15 начинается ровно на конце блока
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "11:15", "11:30"}, starts)
}

func TestDaySlots_CancelledBookingFreesSlot(t *testing.T) {
	offering := testOffering(30, 0, 0)
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	in := dayInputs(offering, date)
	in.StepMinutes = 15
	in.Hours = domain.BusinessHours{Basic: []domain.TimeRange{tr("10:00", "11:00")}}
	in.Bookings = []*domain.Booking{
		booking(10, date, "10:00", 60, 0, domain.StatusCancelledByUser),
	}

	slots, err := DaySlots(in)
	require.NoError(t, err)
	assert.Len(t, slots, 3) // 10:00, 10:15, 10:30
}

func TestDaySlots_ReservationDeadline(t *testing.T) {
	offering := testOffering(60, 0, 24)
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	in := dayInputs(offering, date)
	// "Сейчас" за 22 часа до открытия: дедлайн 24ч отрезает начало дня
	in.Now = time.Date(2026, time.March, 3, 11, 0, 0, 0, time.UTC)

	slots, err := DaySlots(in)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	// Первый доступный слот - не раньше now+24h (2026-03-04 11:00)
	deadline := in.Now.Add(24 * time.Hour)
	for _, s := range slots {
		assert.False(t, s.StartAt.Before(deadline))
	}
	assert.Equal(t, date.Add(11*time.Hour), slots[0].StartAt)
}

func TestDaySlots_DayRestriction(t *testing.T) {
	offering := testOffering(60, 0, 0)
	offering.DayRestriction = domain.RestrictionWeekday

	saturday := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	slots, err := DaySlots(dayInputs(offering, saturday))
	require.NoError(t, err)
	assert.Empty(t, slots) // успешный пустой результат, не ошибка

	wednesday := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	slots, err = DaySlots(dayInputs(offering, wednesday))
	require.NoError(t, err)
	assert.NotEmpty(t, slots)
}

func TestDaySlots_MultipleResourcesOrdering(t *testing.T) {
	offering := testOffering(60, 0, 0)
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	in := dayInputs(offering, date)
	in.ResourceIDs = []int64{20, 10}
	in.StepMinutes = 60
	in.Hours = domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "11:00")}}

	slots, err := DaySlots(in)
	require.NoError(t, err)

	// Сортировка: по времени начала, затем по ID ресурса
	require.Len(t, slots, 4)
	assert.Equal(t, int64(10), slots[0].ResourceID)
	assert.Equal(t, int64(20), slots[1].ResourceID)
	assert.True(t, slots[1].StartAt.Before(slots[2].StartAt))
}

func TestDaySlots_Deterministic(t *testing.T) {
	offering := testOffering(45, 10, 2)
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	in := dayInputs(offering, date)
	in.Bookings = []*domain.Booking{
		booking(10, date, "11:00", 45, 10, domain.StatusConfirmed),
	}

	first, err := DaySlots(in)
	require.NoError(t, err)
	second, err := DaySlots(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDaySlots_InvalidOffering(t *testing.T) {
	date := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	_, err := DaySlots(dayInputs(testOffering(0, 0, 0), date))
	assert.ErrorIs(t, err, ErrInvalidOffering)

	_, err = DaySlots(dayInputs(nil, date))
	assert.ErrorIs(t, err, ErrInvalidOffering)
}

func TestMonthSummary_StatusesAndSlots(t *testing.T) {
	offering := testOffering(60, 0, 0)

	resourceID := int64(10)
	in := MonthInputs{
		Offering:     offering,
		ResourceID:   &resourceID,
		ResourceIDs:  []int64{10},
		Year:         2026,
		Month:        time.March,
		Location:     time.UTC,
		Now:          time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC),
		StepMinutes:  30,
		Hours:        domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}},
		HolidayRules: []domain.HolidayRule{{Weekday: time.Tuesday, Frequency: domain.FrequencyWeekly}},
	}

	summary, err := MonthSummary(in)
	require.NoError(t, err)
	require.Len(t, summary, 31)

	// Вторники (10, 17, ...) закрыты правилом выходного
	assert.Equal(t, domain.DayStatusRegularHoliday, summary[10].Status)
	assert.False(t, summary[10].HasAvailableSlots)
	assert.Equal(t, domain.DayStatusRegularHoliday, summary[17].Status)

	// Прошедшие дни без слотов, статус при этом честный
	assert.Equal(t, domain.DayStatusOpen, summary[4].Status)
	assert.False(t, summary[4].HasAvailableSlots)

	// Будущие открытые дни со слотами
	assert.Equal(t, domain.DayStatusOpen, summary[11].Status)
	assert.True(t, summary[11].HasAvailableSlots)
}

func TestMonthSummary_PastAndRestrictedDays(t *testing.T) {
	offering := testOffering(60, 0, 0)
	offering.DayRestriction = domain.RestrictionWeekend

	in := MonthInputs{
		Offering:    offering,
		ResourceIDs: []int64{10},
		Year:        2026,
		Month:       time.March,
		Location:    time.UTC,
		Now:         time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		StepMinutes: 30,
		Hours:       domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}},
	}

	summary, err := MonthSummary(in)
	require.NoError(t, err)

	// Будни недоступны для записи из-за ограничения услуги
	assert.False(t, summary[4].HasAvailableSlots) // среда
	// Выходные доступны
	assert.True(t, summary[7].HasAvailableSlots)  // суббота
	assert.True(t, summary[15].HasAvailableSlots) // воскресенье
}
