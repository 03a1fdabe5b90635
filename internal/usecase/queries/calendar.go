package queries

import (
	"context"
	"time"

	"hotel-front/internal/domain/schedule"
	"hotel-front/internal/pkg/clock"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/shared"
)

var ErrInvalidDay = errs.New("invalid day")

// WeekView is one service's calendar week. Days lists all seven day keys in
// order; Slots only has entries for days with at least one slot.
type WeekView struct {
	ServiceID int64
	Start     string
	End       string
	Days      []string
	Slots     map[string][]schedule.Slot
}

type CalendarQueries interface {
	// Week returns the slots of the week containing day (YYYY-MM-DD, empty
	// for today), optionally narrowed to the given statuses.
	Week(ctx context.Context, sess shared.Session, serviceID int64, day string, statuses []schedule.SlotStatus) (*WeekView, error)
}

type calendarQueriesImpl struct {
	gateway SlotGateway
	clock   clock.Clock
	loc     *time.Location
}

func NewCalendarQueries(gateway SlotGateway, clk clock.Clock, loc *time.Location) CalendarQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarQueriesImpl{gateway: gateway, clock: clk, loc: loc}
}

func (q *calendarQueriesImpl) Week(ctx context.Context, sess shared.Session, serviceID int64, day string, statuses []schedule.SlotStatus) (*WeekView, error) {
	ref := clock.Today(q.clock, q.loc)
	if day != "" {
		parsed, err := time.ParseInLocation(schedule.DayLayout, day, q.loc)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "day %q", day), ErrInvalidDay)
		}
		ref = parsed
	}

	week := schedule.WeekOf(ref, q.loc)
	from := week.Start().Format(schedule.DayLayout)
	to := week.End().Format(schedule.DayLayout)

	slots, err := q.gateway.ServiceSlots(ctx, sess.AccessToken, serviceID, from, to)
	if err != nil {
		return nil, shared.MapUpstreamError(err)
	}

	buckets, err := schedule.BucketByDay(schedule.FilterByStatus(slots, statuses...), q.loc)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUpstreamFailure)
	}

	days := week.Days()
	inWeek := make(map[string][]schedule.Slot, len(buckets))
	for _, d := range days {
		if b, ok := buckets[d]; ok {
			inWeek[d] = b
		}
	}

	return &WeekView{
		ServiceID: serviceID,
		Start:     from,
		End:       to,
		Days:      days,
		Slots:     inWeek,
	}, nil
}
