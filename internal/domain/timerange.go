package domain

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// TimeRange represents a contiguous interval of wall-clock time within one day.
// Start must be strictly before End; End may be the "24:00" end-of-day sentinel.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid returns true if both endpoints parse as HH:MM within 00:00..24:00
// and End is strictly after Start. Zero-length ranges are invalid.
func (r TimeRange) IsValid() bool {
	if r.Start.Validate() != nil || r.End.Validate() != nil {
		return false
	}
	return r.End.IsAfter(r.Start)
}

// Overlaps reports whether two ranges share any time.
// Half-open semantics: ranges that only touch at an endpoint do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && r.End.IsAfter(other.Start)
}

// Contains reports whether other lies entirely within r
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.IsBefore(r.Start) && !other.End.IsAfter(r.End)
}

// DurationMinutes returns the length of the range in minutes
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// SanitizeTimeRanges validates raw ranges, silently drops malformed entries
// and exact duplicates, and returns the survivors sorted ascending by start
// (then end). Adjacent or overlapping ranges are NOT merged; a single
// malformed range must never make the whole day unusable.
func SanitizeTimeRanges(raw []TimeRange) []TimeRange {
	out := make([]TimeRange, 0, len(raw))
	for _, r := range raw {
		if r.IsValid() {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start.IsBefore(out[j].Start)
		}
		return out[i].End.IsBefore(out[j].End)
	})

	deduped := out[:0]
	for i, r := range out {
		if i > 0 && r == out[i-1] {
			continue
		}
		deduped = append(deduped, r)
	}

	return deduped
}
