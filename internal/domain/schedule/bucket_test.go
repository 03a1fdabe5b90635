//go:build unit

package schedule_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"hotel-front/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(id int64, date string) schedule.Slot {
	return schedule.Slot{ID: id, ServiceID: 1, Title: "Massage", Date: date, Duration: 60, Status: schedule.StatusAvailable}
}

func TestBucketByDay(t *testing.T) {
	t.Run("same-day slots share a bucket, midnight starts a new one", func(t *testing.T) {
		slots := []schedule.Slot{
			slot(1, "2025-09-08T08:30"),
			slot(2, "2025-09-08T12:00"),
			slot(3, "2025-09-09T00:00"),
		}

		got, err := schedule.BucketByDay(slots, time.UTC)
		require.NoError(t, err)

		want := map[string][]schedule.Slot{
			"2025-09-08": {slots[0], slots[1]},
			"2025-09-09": {slots[2]},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("buckets mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input yields an empty map", func(t *testing.T) {
		got, err := schedule.BucketByDay(nil, time.UTC)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("bucket order follows input order, not time order", func(t *testing.T) {
		slots := []schedule.Slot{
			slot(1, "2025-09-08T18:00"),
			slot(2, "2025-09-08T08:00"),
		}
		got, err := schedule.BucketByDay(slots, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, ids(got["2025-09-08"]))
	})

	t.Run("offset dates use the calendar's local day", func(t *testing.T) {
		warsaw, err := time.LoadLocation("Europe/Warsaw")
		require.NoError(t, err)

		slots := []schedule.Slot{slot(1, "2025-09-08T23:30:00Z")}
		got, err := schedule.BucketByDay(slots, warsaw)
		require.NoError(t, err)

		assert.Contains(t, got, "2025-09-09")
		assert.NotContains(t, got, "2025-09-08")
	})

	t.Run("accepted layouts", func(t *testing.T) {
		for _, date := range []string{
			"2025-09-08T08:30",
			"2025-09-08T08:30:00",
			"2025-09-08 08:30:00",
			"2025-09-08T08:30:00+00:00",
			"2025-09-08T08:30:00.123Z",
		} {
			got, err := schedule.BucketByDay([]schedule.Slot{slot(1, date)}, time.UTC)
			require.NoError(t, err, date)
			assert.Contains(t, got, "2025-09-08", date)
		}
	})

	t.Run("malformed date fails instead of being coerced", func(t *testing.T) {
		slots := []schedule.Slot{
			slot(1, "2025-09-08T08:30"),
			slot(7, "08/09/2025 8:30"),
		}
		got, err := schedule.BucketByDay(slots, time.UTC)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, schedule.ErrMalformedDate)
		assert.Contains(t, err.Error(), "slot 7")
	})
}

// Every slot lands in exactly one bucket keyed by its day, and concatenating
// buckets keeps the relative order of same-day slots.
func TestBucketByDayIsStableAndTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)

	for round := 0; round < 50; round++ {
		n := rng.Intn(40)
		slots := make([]schedule.Slot, n)
		for i := range slots {
			at := base.Add(time.Duration(rng.Intn(7*24*60)) * time.Minute)
			slots[i] = slot(int64(i+1), at.Format("2006-01-02T15:04"))
		}

		buckets, err := schedule.BucketByDay(slots, time.UTC)
		require.NoError(t, err)

		total := 0
		for day, bucket := range buckets {
			require.NotEmpty(t, bucket, "empty bucket for %s", day)
			total += len(bucket)
			for i, s := range bucket {
				assert.Equal(t, day, s.Date[:10])
				if i > 0 {
					assert.Less(t, indexOf(slots, bucket[i-1].ID), indexOf(slots, s.ID), "order broken in %s", day)
				}
			}
		}
		assert.Equal(t, n, total, fmt.Sprintf("round %d", round))
	}
}

func TestFilterByStatus(t *testing.T) {
	a := slot(1, "2025-09-08T08:30")
	b := slot(2, "2025-09-08T09:30")
	b.Status = schedule.StatusActive
	c := slot(3, "2025-09-08T10:30")
	c.Status = schedule.StatusCanceled
	slots := []schedule.Slot{a, b, c}

	assert.Equal(t, slots, schedule.FilterByStatus(slots))
	assert.Equal(t, []int64{2, 3}, ids(schedule.FilterByStatus(slots, schedule.StatusActive, schedule.StatusCanceled)))
	assert.Empty(t, schedule.FilterByStatus(slots, schedule.StatusCompleted))
	assert.True(t, b.IsBooked())
	assert.False(t, a.IsBooked())
}

func TestSlotStatusJSON(t *testing.T) {
	var s schedule.Slot
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"date":"2025-09-08T08:30","status":"REQUESTED","guestName":"Anna"}`), &s))
	assert.Equal(t, schedule.StatusRequested, s.Status)
	require.NotNil(t, s.GuestName)
	assert.Equal(t, "Anna", *s.GuestName)

	err := json.Unmarshal([]byte(`{"id":1,"status":"PENDING"}`), &s)
	assert.ErrorIs(t, err, schedule.ErrUnknownStatus)
}

func ids(slots []schedule.Slot) []int64 {
	out := make([]int64, len(slots))
	for i, s := range slots {
		out[i] = s.ID
	}
	return out
}

func indexOf(slots []schedule.Slot, id int64) int {
	return slices.IndexFunc(slots, func(s schedule.Slot) bool { return s.ID == id })
}
