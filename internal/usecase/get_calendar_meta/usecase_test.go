package get_calendar_meta

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	catalogClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	company    *catalogClient.Company
	companyErr error
	service    *catalogClient.Service
	serviceErr error
}

func (f *fakeCatalog) GetCompany(ctx context.Context, companyID int64) (*catalogClient.Company, error) {
	return f.company, f.companyErr
}

func (f *fakeCatalog) GetService(ctx context.Context, companyID, serviceID int64) (*catalogClient.Service, error) {
	return f.service, f.serviceErr
}

type fakeSettingsRepo struct {
	settings *domain.CompanySettings
	err      error
}

func (f *fakeSettingsRepo) GetByCompany(ctx context.Context, companyID int64) (*domain.CompanySettings, error) {
	return f.settings, f.err
}

type fakeShiftRepo struct {
	shifts map[int64]*domain.ResourceMonthShift
}

func (f *fakeShiftRepo) GetMonthForResources(ctx context.Context, companyID int64, resourceIDs []int64, year int, month time.Month) (map[int64]*domain.ResourceMonthShift, error) {
	if f.shifts == nil {
		return map[int64]*domain.ResourceMonthShift{}, nil
	}
	return f.shifts, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testCompany() *catalogClient.Company {
	return &catalogClient.Company{
		ID:       1,
		Timezone: "UTC",
		Resources: []catalogClient.Resource{
			{ID: 10, IsActive: true},
		},
	}
}

func testService() *catalogClient.Service {
	return &catalogClient.Service{
		ID:              2,
		CompanyID:       1,
		DurationMinutes: 60,
		DayRestriction:  "none",
	}
}

func testSettings() *domain.CompanySettings {
	return &domain.CompanySettings{
		ID:              1,
		CompanyID:       1,
		SlotStepMinutes: 30,
		Timezone:        "UTC",
		Hours: domain.BusinessHours{
			Basic: []domain.TimeRange{{Start: types.TimeString("09:00"), End: types.TimeString("18:00")}},
		},
		HolidayRules: []domain.HolidayRule{
			{Weekday: time.Tuesday, Frequency: domain.FrequencyWeekly},
		},
	}
}

func newTestUsecase(catalog *fakeCatalog, bookings *fakeBookingRepo) *Usecase {
	return New(
		catalog,
		&fakeSettingsRepo{settings: testSettings()},
		&fakeShiftRepo{},
		bookings,
		nil,
		fixedClock{now: time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestExecute_MonthSummary(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUsecase(&fakeCatalog{company: testCompany(), service: testService()}, bookingRepo)

	resp, err := uc.Execute(context.Background(), &GetCalendarMetaRequest{
		CompanyID: 1,
		ServiceID: 2,
		Year:      2026,
		Month:     3,
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 31)
	assert.Equal(t, 1, resp.Days[0].Day)

	// Вторник 10 марта закрыт правилом выходного
	assert.Equal(t, string(domain.DayStatusRegularHoliday), resp.Days[9].Status)
	assert.False(t, resp.Days[9].HasAvailableSlots)

	// Прошедший день 4 марта открыт по статусу, но без слотов
	assert.Equal(t, string(domain.DayStatusOpen), resp.Days[3].Status)
	assert.False(t, resp.Days[3].HasAvailableSlots)

	// Будущий рабочий день 11 марта со слотами
	assert.True(t, resp.Days[10].HasAvailableSlots)

	// Бронирования месяца читаются одним запросом за весь период
	require.NotNil(t, bookingRepo.filter.StartDate)
	require.NotNil(t, bookingRepo.filter.EndDate)
	assert.Equal(t, 1, bookingRepo.filter.StartDate.Day())
	assert.Equal(t, 31, bookingRepo.filter.EndDate.Day())
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUsecase(&fakeCatalog{company: testCompany(), service: testService()}, &fakeBookingRepo{})

	cases := []GetCalendarMetaRequest{
		{CompanyID: 0, ServiceID: 2, Year: 2026, Month: 3},
		{CompanyID: 1, ServiceID: 2, Year: 1999, Month: 3},
		{CompanyID: 1, ServiceID: 2, Year: 2101, Month: 3},
		{CompanyID: 1, ServiceID: 2, Year: 2026, Month: 0},
		{CompanyID: 1, ServiceID: 2, Year: 2026, Month: 13},
		{CompanyID: 1, ServiceID: 2, Year: 2026, Month: 3, Timezone: "Mars/Olympus"},
	}

	for _, req := range cases {
		_, err := uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_CompanyNotFound(t *testing.T) {
	uc := newTestUsecase(&fakeCatalog{companyErr: catalogClient.ErrCompanyNotFound}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &GetCalendarMetaRequest{CompanyID: 1, ServiceID: 2, Year: 2026, Month: 3})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

// Услуга без пригодных ресурсов: весь месяц недоступен, но ответ успешный
func TestExecute_NoEligibleResources(t *testing.T) {
	service := testService()
	service.EligibleResourceIDs = []int64{999}

	uc := newTestUsecase(&fakeCatalog{company: testCompany(), service: service}, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &GetCalendarMetaRequest{CompanyID: 1, ServiceID: 2, Year: 2026, Month: 3})
	require.NoError(t, err)
	require.Len(t, resp.Days, 31)
	for _, day := range resp.Days {
		assert.Equal(t, string(domain.DayStatusUnavailable), day.Status)
		assert.False(t, day.HasAvailableSlots)
	}
}
