package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func tr(start, end string) domain.TimeRange {
	return domain.TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func monthShift(year int, month time.Month, days map[int]domain.DayEntry) *domain.ResourceMonthShift {
	return &domain.ResourceMonthShift{
		CompanyID:  1,
		ResourceID: 10,
		Year:       year,
		Month:      month,
		Days:       days,
	}
}

func TestBuildWeekdayTemplate_FallsBackToBusinessHours(t *testing.T) {
	hours := domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}}

	tmpl := BuildWeekdayTemplate(nil, hours)

	for _, w := range domain.Weekdays {
		assert.Equal(t, domain.DayStatusOpen, tmpl[w].Status)
		assert.Equal(t, []domain.TimeRange{tr("09:00", "18:00")}, tmpl[w].Slots)
	}
}

func TestBuildWeekdayTemplate_UsesWeeklyOverride(t *testing.T) {
	hours := domain.BusinessHours{
		Basic: []domain.TimeRange{tr("09:00", "18:00")},
		Weekly: map[time.Weekday]domain.WeekdayHours{
			time.Saturday: {UseCustom: true, Ranges: []domain.TimeRange{tr("10:00", "14:00")}},
			time.Sunday:   {UseCustom: true}, // custom with no ranges = closed hours
		},
	}

	tmpl := BuildWeekdayTemplate(nil, hours)

	assert.Equal(t, []domain.TimeRange{tr("10:00", "14:00")}, tmpl[time.Saturday].Slots)
	assert.Empty(t, tmpl[time.Sunday].Slots)
	assert.Equal(t, []domain.TimeRange{tr("09:00", "18:00")}, tmpl[time.Monday].Slots)
}

func TestBuildWeekdayTemplate_EarliestExplicitOpenDayWins(t *testing.T) {
	// March 2026: the 2nd and the 9th are both Mondays
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		2: {Status: domain.DayStatusOpen, Slots: []domain.TimeRange{tr("08:00", "16:00")}},
		9: {Status: domain.DayStatusOpen, Slots: []domain.TimeRange{tr("12:00", "20:00")}},
	})
	hours := domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}}

	tmpl := BuildWeekdayTemplate(shift, hours)

	assert.Equal(t, []domain.TimeRange{tr("08:00", "16:00")}, tmpl[time.Monday].Slots)
	// Other weekdays keep the provider hours
	assert.Equal(t, []domain.TimeRange{tr("09:00", "18:00")}, tmpl[time.Tuesday].Slots)
}

func TestBuildWeekdayTemplate_IgnoresClosedAndEmptyDays(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		2: {Status: domain.DayStatusUnavailable},
		9: {Status: domain.DayStatusOpen}, // open but no explicit ranges
	})
	hours := domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}}

	tmpl := BuildWeekdayTemplate(shift, hours)

	// Neither day contributes; Monday keeps the provider hours
	assert.Equal(t, []domain.TimeRange{tr("09:00", "18:00")}, tmpl[time.Monday].Slots)
	assert.Equal(t, domain.DayStatusOpen, tmpl[time.Monday].Status)
}

func TestBuildWeekdayTemplate_TemporaryOpenContributesAsOpen(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		2: {Status: domain.DayStatusTemporaryOpen, Slots: []domain.TimeRange{tr("08:00", "10:00")}},
	})

	tmpl := BuildWeekdayTemplate(shift, domain.BusinessHours{})

	assert.Equal(t, domain.DayStatusOpen, tmpl[time.Monday].Status)
	assert.Equal(t, []domain.TimeRange{tr("08:00", "10:00")}, tmpl[time.Monday].Slots)
}

func TestResolveDay_ExplicitOverrideWins(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		4: {Status: domain.DayStatusUnavailable},
	})
	tmpl := BuildWeekdayTemplate(nil, domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}})

	entry := ResolveDay(4, time.Wednesday, shift, tmpl, nil)

	assert.Equal(t, domain.DayStatusUnavailable, entry.Status)
	assert.Empty(t, entry.Slots)
}

func TestResolveDay_OpenWithEmptySlotsInheritsTemplate(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		4: {Status: domain.DayStatusOpen},
	})
	tmpl := BuildWeekdayTemplate(nil, domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}})

	entry := ResolveDay(4, time.Wednesday, shift, tmpl, nil)

	assert.Equal(t, domain.DayStatusOpen, entry.Status)
	assert.Equal(t, []domain.TimeRange{tr("09:00", "18:00")}, entry.Slots)
}

func TestResolveDay_HolidaySuppressesOpenDay(t *testing.T) {
	tmpl := BuildWeekdayTemplate(nil, domain.BusinessHours{Basic: []domain.TimeRange{tr("09:00", "18:00")}})

	entry := ResolveDay(10, time.Tuesday, nil, tmpl, map[int]bool{10: true})

	assert.Equal(t, domain.DayStatusRegularHoliday, entry.Status)
	assert.Empty(t, entry.Slots)
}

func TestResolveDay_TemporaryOpenBeatsHoliday(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		15: {Status: domain.DayStatusTemporaryOpen, Slots: []domain.TimeRange{tr("08:00", "10:00")}},
	})
	tmpl := BuildWeekdayTemplate(nil, domain.BusinessHours{})

	entry := ResolveDay(15, time.Sunday, shift, tmpl, map[int]bool{15: true})

	assert.Equal(t, domain.DayStatusTemporaryOpen, entry.Status)
	assert.Equal(t, []domain.TimeRange{tr("08:00", "10:00")}, entry.Slots)
}

func TestResolveDay_TemporaryClosedCanonicalizedOnHoliday(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		15: {Status: domain.DayStatusTemporaryClosed},
	})
	tmpl := BuildWeekdayTemplate(nil, domain.BusinessHours{})

	entry := ResolveDay(15, time.Sunday, shift, tmpl, map[int]bool{15: true})

	assert.Equal(t, domain.DayStatusRegularHoliday, entry.Status)
	assert.Empty(t, entry.Slots)
}

func TestResolveDay_UnavailableKeptOnHoliday(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		15: {Status: domain.DayStatusUnavailable},
	})
	tmpl := BuildWeekdayTemplate(nil, domain.BusinessHours{})

	entry := ResolveDay(15, time.Sunday, shift, tmpl, map[int]bool{15: true})

	assert.Equal(t, domain.DayStatusUnavailable, entry.Status)
}

func TestResolveDay_ClosedStatusNeverCarriesSlots(t *testing.T) {
	shift := monthShift(2026, time.March, map[int]domain.DayEntry{
		4: {Status: domain.DayStatusTemporaryClosed, Slots: []domain.TimeRange{tr("09:00", "12:00")}},
	})
	tmpl := BuildWeekdayTemplate(nil, domain.BusinessHours{})

	entry := ResolveDay(4, time.Wednesday, shift, tmpl, nil)

	assert.True(t, entry.Status.IsClosed())
	assert.Empty(t, entry.Slots)
}
