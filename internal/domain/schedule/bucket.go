package schedule

import (
	"errors"
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

var (
	ErrUnknownStatus = errors.New("unknown slot status")
	ErrMalformedDate = errors.New("malformed slot date")
)

// zone-less layouts are read as wall-clock time in the calendar location
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseSlotTime reads a slot date. Offsets are honoured and converted to loc.
func ParseSlotTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

// BucketByDay groups slots by the local calendar day of their date. Buckets keep
// input order; days without slots are absent. The first unparseable date aborts
// the grouping.
func BucketByDay(slots []Slot, loc *time.Location) (map[string][]Slot, error) {
	buckets := make(map[string][]Slot)
	for _, s := range slots {
		t, err := ParseSlotTime(s.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", s.ID, err)
		}
		day := t.Format(DayLayout)
		buckets[day] = append(buckets[day], s)
	}
	return buckets, nil
}
