package get_daily_slots

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
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
	calls  int
}

func (f *fakeShiftRepo) GetMonthForResources(ctx context.Context, companyID int64, resourceIDs []int64, year int, month time.Month) (map[int64]*domain.ResourceMonthShift, error) {
	f.calls++
	if f.shifts == nil {
		return map[int64]*domain.ResourceMonthShift{}, nil
	}
	return f.shifts, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCache struct {
	store map[string][]byte
	hits  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) DailySlotsKey(companyID, serviceID, resourceID int64, date, timezone string, now time.Time) string {
	return date + "|" + timezone
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, ok := f.store[key]
	if !ok {
		return false, nil
	}
	f.hits++
	return true, json.Unmarshal(data, out)
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testCompany() *catalogClient.Company {
	return &catalogClient.Company{
		ID:         1,
		Name:       "Салон",
		Timezone:   "UTC",
		ManagerIDs: []int64{100},
		Resources: []catalogClient.Resource{
			{ID: 10, Name: "Мастер А", IsActive: true},
			{ID: 20, Name: "Мастер Б", IsActive: false},
		},
	}
}

func testService() *catalogClient.Service {
	return &catalogClient.Service{
		ID:              2,
		CompanyID:       1,
		Name:            "Стрижка",
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
	}
}

func newTestUsecase(catalog *fakeCatalog, settings *fakeSettingsRepo, shifts *fakeShiftRepo, cache AvailabilityCache) *Usecase {
	return New(
		catalog,
		settings,
		shifts,
		&fakeBookingRepo{},
		cache,
		fixedClock{now: time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	uc := newTestUsecase(
		&fakeCatalog{company: testCompany(), service: testService()},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeShiftRepo{},
		nil,
	)

	resp, err := uc.Execute(context.Background(), &GetDailySlotsRequest{
		CompanyID: 1,
		ServiceID: 2,
		Date:      "2026-03-04",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", resp.Date)
	assert.Equal(t, "UTC", resp.Timezone)
	// 09:00..17:00 шагом 30 минут
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, int64(10), resp.Slots[0].ResourceID)
	assert.Equal(t, time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC), resp.Slots[0].StartAt)
}

func TestExecute_CompanyNotFound(t *testing.T) {
	uc := newTestUsecase(
		&fakeCatalog{companyErr: catalogClient.ErrCompanyNotFound},
		&fakeSettingsRepo{},
		&fakeShiftRepo{},
		nil,
	)

	_, err := uc.Execute(context.Background(), &GetDailySlotsRequest{CompanyID: 1, ServiceID: 2, Date: "2026-03-04"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUsecase(
		&fakeCatalog{company: testCompany(), serviceErr: catalogClient.ErrServiceNotFound},
		&fakeSettingsRepo{},
		&fakeShiftRepo{},
		nil,
	)

	_, err := uc.Execute(context.Background(), &GetDailySlotsRequest{CompanyID: 1, ServiceID: 2, Date: "2026-03-04"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UnknownResource(t *testing.T) {
	uc := newTestUsecase(
		&fakeCatalog{company: testCompany(), service: testService()},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeShiftRepo{},
		nil,
	)

	unknown := int64(999)
	_, err := uc.Execute(context.Background(), &GetDailySlotsRequest{
		CompanyID: 1, ServiceID: 2, Date: "2026-03-04", ResourceID: &unknown,
	})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

// Непригодный ресурс - успешный пустой ответ, не ошибка
func TestExecute_IneligibleResourceEmptyResult(t *testing.T) {
	service := testService()
	service.EligibleResourceIDs = []int64{999}

	uc := newTestUsecase(
		&fakeCatalog{company: testCompany(), service: service},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeShiftRepo{},
		nil,
	)

	resp, err := uc.Execute(context.Background(), &GetDailySlotsRequest{CompanyID: 1, ServiceID: 2, Date: "2026-03-04"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveResourceSkipped(t *testing.T) {
	inactive := int64(20)
	uc := newTestUsecase(
		&fakeCatalog{company: testCompany(), service: testService()},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeShiftRepo{},
		nil,
	)

	resp, err := uc.Execute(context.Background(), &GetDailySlotsRequest{
		CompanyID: 1, ServiceID: 2, Date: "2026-03-04", ResourceID: &inactive,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newTestUsecase(
		&fakeCatalog{company: testCompany(), service: testService()},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeShiftRepo{},
		nil,
	)

	_, err := uc.Execute(context.Background(), &GetDailySlotsRequest{CompanyID: 1, ServiceID: 2, Date: "04.03.2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CacheHitSkipsStores(t *testing.T) {
	cache := newFakeCache()
	shiftRepo := &fakeShiftRepo{}

	uc := newTestUsecase(
		&fakeCatalog{company: testCompany(), service: testService()},
		&fakeSettingsRepo{settings: testSettings()},
		shiftRepo,
		cache,
	)

	req := &GetDailySlotsRequest{CompanyID: 1, ServiceID: 2, Date: "2026-03-04"}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, shiftRepo.calls)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Второй запрос отдан из кэша без похода в хранилище
	assert.Equal(t, 1, shiftRepo.calls)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first.Slots, second.Slots)
}

// Настройки ещё не сохранены: usecase работает с дефолтными
func TestExecute_MissingSettingsDefaults(t *testing.T) {
	uc := New(
		&fakeCatalog{company: testCompany(), service: testService()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		&fakeShiftRepo{},
		&fakeBookingRepo{},
		nil,
		fixedClock{now: time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &GetDailySlotsRequest{CompanyID: 1, ServiceID: 2, Date: "2026-03-04"})
	require.NoError(t, err)
	// Часы работы не настроены - слотов нет, но это успешный ответ
	assert.Empty(t, resp.Slots)
}
