package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestHolidaySet_Weekly(t *testing.T) {
	rules := []domain.HolidayRule{
		{Weekday: time.Tuesday, Frequency: domain.FrequencyWeekly},
	}

	// March 2026: Tuesdays are 3, 10, 17, 24, 31
	holidays, err := HolidaySet(rules, 2026, time.March)
	require.NoError(t, err)

	assert.Equal(t, map[int]bool{3: true, 10: true, 17: true, 24: true, 31: true}, holidays)
}

func TestHolidaySet_NthOccurrence(t *testing.T) {
	rules := []domain.HolidayRule{
		{Weekday: time.Sunday, Frequency: domain.FrequencyNth2},
	}

	// March 2026: Sundays are 1, 8, 15, 22, 29; only the 2nd one counts
	holidays, err := HolidaySet(rules, 2026, time.March)
	require.NoError(t, err)

	assert.Equal(t, map[int]bool{8: true}, holidays)
}

func TestHolidaySet_CounterRestartsEachMonth(t *testing.T) {
	rules := []domain.HolidayRule{
		{Weekday: time.Monday, Frequency: domain.FrequencyNth1},
	}

	march, err := HolidaySet(rules, 2026, time.March)
	require.NoError(t, err)
	april, err := HolidaySet(rules, 2026, time.April)
	require.NoError(t, err)

	// First Monday of March 2026 is the 2nd, of April the 6th
	assert.Equal(t, map[int]bool{2: true}, march)
	assert.Equal(t, map[int]bool{6: true}, april)
}

func TestHolidaySet_MultipleRulesUnion(t *testing.T) {
	rules := []domain.HolidayRule{
		{Weekday: time.Saturday, Frequency: domain.FrequencyWeekly},
		{Weekday: time.Monday, Frequency: domain.FrequencyNth3},
	}

	holidays, err := HolidaySet(rules, 2026, time.March)
	require.NoError(t, err)

	// Saturdays: 7, 14, 21, 28; third Monday is the 16th
	assert.Equal(t, map[int]bool{7: true, 14: true, 21: true, 28: true, 16: true}, holidays)
}

func TestHolidaySet_FifthOccurrenceMayNotExist(t *testing.T) {
	rules := []domain.HolidayRule{
		{Weekday: time.Friday, Frequency: domain.FrequencyNth5},
	}

	// February 2026 has only four Fridays
	holidays, err := HolidaySet(rules, 2026, time.February)
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestHolidaySet_Validation(t *testing.T) {
	_, err := HolidaySet(nil, 2026, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = HolidaySet([]domain.HolidayRule{
		{Weekday: time.Monday, Frequency: domain.HolidayFrequency("fortnightly")},
	}, 2026, time.March)
	assert.ErrorIs(t, err, ErrInvalidHolidayRule)
}

func TestHolidaySet_NoRules(t *testing.T) {
	holidays, err := HolidaySet(nil, 2026, time.March)
	require.NoError(t, err)
	assert.Empty(t, holidays)
}
