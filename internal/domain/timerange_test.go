package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func tr(start, end string) TimeRange {
	return TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestTimeRange_IsValid(t *testing.T) {
	assert.True(t, tr("09:00", "18:00").IsValid())
	assert.True(t, tr("00:00", "24:00").IsValid())

	assert.False(t, tr("18:00", "09:00").IsValid())
	assert.False(t, tr("09:00", "09:00").IsValid())
	assert.False(t, tr("garbage", "18:00").IsValid())
	assert.False(t, tr("09:00", "25:00").IsValid())
}

func TestTimeRange_Overlaps(t *testing.T) {
	assert.True(t, tr("09:00", "12:00").Overlaps(tr("11:00", "14:00")))
	assert.True(t, tr("09:00", "12:00").Overlaps(tr("10:00", "11:00")))

	// Touching endpoints do not overlap (half-open semantics)
	assert.False(t, tr("09:00", "12:00").Overlaps(tr("12:00", "14:00")))
	assert.False(t, tr("12:00", "14:00").Overlaps(tr("09:00", "12:00")))
	assert.False(t, tr("09:00", "10:00").Overlaps(tr("11:00", "12:00")))
}

func TestTimeRange_Contains(t *testing.T) {
	outer := tr("09:00", "18:00")
	assert.True(t, outer.Contains(tr("09:00", "18:00")))
	assert.True(t, outer.Contains(tr("10:00", "11:00")))
	assert.False(t, outer.Contains(tr("08:00", "10:00")))
	assert.False(t, outer.Contains(tr("17:00", "19:00")))
}

func TestSanitizeTimeRanges(t *testing.T) {
	raw := []TimeRange{
		tr("14:00", "18:00"),
		tr("18:00", "09:00"), // inverted, dropped
		tr("09:00", "12:00"),
		tr("09:00", "12:00"), // exact duplicate, dropped
		tr("bad", "12:00"),   // malformed, dropped
	}

	out := SanitizeTimeRanges(raw)

	assert.Equal(t, []TimeRange{tr("09:00", "12:00"), tr("14:00", "18:00")}, out)
}

func TestSanitizeTimeRanges_KeepsOverlapping(t *testing.T) {
	// Overlapping ranges are kept as-is, not merged
	raw := []TimeRange{tr("09:00", "12:00"), tr("11:00", "14:00")}
	out := SanitizeTimeRanges(raw)
	assert.Len(t, out, 2)
}

func TestDayEntry_Normalize(t *testing.T) {
	// Unknown status degrades to unavailable
	e := DayEntry{Status: DayStatus("bogus"), Slots: []TimeRange{tr("09:00", "12:00")}}
	assert.Equal(t, DayEntry{Status: DayStatusUnavailable}, e.Normalize())

	// Closed status drops slots
	e = DayEntry{Status: DayStatusRegularHoliday, Slots: []TimeRange{tr("09:00", "12:00")}}
	assert.Empty(t, e.Normalize().Slots)
	assert.Equal(t, DayStatusRegularHoliday, e.Normalize().Status)

	// Open status keeps sanitized slots
	e = DayEntry{Status: DayStatusOpen, Slots: []TimeRange{tr("18:00", "09:00"), tr("09:00", "12:00")}}
	norm := e.Normalize()
	assert.Equal(t, []TimeRange{tr("09:00", "12:00")}, norm.Slots)
}
