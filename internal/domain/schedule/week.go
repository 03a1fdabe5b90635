package schedule

import "time"

// Week is the Monday-start week shown by the calendar.
type Week struct {
	start time.Time
}

// WeekOf returns the week containing day, evaluated in loc.
func WeekOf(day time.Time, loc *time.Location) Week {
	d := day.In(loc)
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	offset := (int(midnight.Weekday()) + 6) % 7 // Monday = 0
	return Week{start: midnight.AddDate(0, 0, -offset)}
}

func (w Week) Start() time.Time { return w.start }

// End is the exclusive upper bound: next Monday at midnight.
func (w Week) End() time.Time { return w.start.AddDate(0, 0, 7) }

// Days lists the seven day keys, Monday first.
func (w Week) Days() []string {
	days := make([]string, 7)
	for i := range days {
		days[i] = w.start.AddDate(0, 0, i).Format(DayLayout)
	}
	return days
}

func (w Week) Next() Week     { return Week{start: w.start.AddDate(0, 0, 7)} }
func (w Week) Previous() Week { return Week{start: w.start.AddDate(0, 0, -7)} }
