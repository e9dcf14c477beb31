package window

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrMissingTimezone   = errors.New("window has no timezone")
)

// Window is an inclusive aggregation date range. Loc is the display
// timezone every calendar-day bucket is computed in; a Window built by
// hand without one is rejected by the store adapters.
type Window struct {
	Start time.Time
	End   time.Time
	Loc   *time.Location
}

// Validate reports whether the window carries a timezone. Adapters
// call it before touching the store so a zero-value Window fails fast
// instead of silently bucketing days in the wrong zone.
func (w Window) Validate() error {
	if w.Loc == nil {
		return ErrMissingTimezone
	}
	return nil
}

// Normalizer turns date-only strings from the dashboard into
// timezone-aware window bounds, clamping anything at or before the
// historical floor to the floor instant. The floor carries a
// time-of-day: data before it is known to be garbage from the first
// deploy, including part of the floor day itself.
type Normalizer struct {
	loc   *time.Location
	floor time.Time
}

func NewNormalizer(loc *time.Location, floor time.Time) *Normalizer {
	return &Normalizer{loc: loc, floor: floor.In(loc)}
}

// Normalize parses two "YYYY-MM-DD" strings into a Window. The start
// bound is start-of-day local, the end bound 23:59:59.999999 local,
// unless the date is on or before the floor day, in which case the
// bound is the floor instant itself.
func (n *Normalizer) Normalize(startStr, endStr string) (Window, error) {
	startDay, err := time.ParseInLocation("2006-01-02", startStr, n.loc)
	if err != nil {
		return Window{}, ErrInvalidDateFormat
	}
	endDay, err := time.ParseInLocation("2006-01-02", endStr, n.loc)
	if err != nil {
		return Window{}, ErrInvalidDateFormat
	}

	floorDay := time.Date(n.floor.Year(), n.floor.Month(), n.floor.Day(), 0, 0, 0, 0, n.loc)

	var start time.Time
	if !startDay.After(floorDay) {
		start = n.floor
	} else {
		start = startDay
	}

	var end time.Time
	if !endDay.After(floorDay) {
		end = n.floor
	} else {
		end = time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 999999000, n.loc)
	}

	return Window{Start: start, End: end, Loc: n.loc}, nil
}
