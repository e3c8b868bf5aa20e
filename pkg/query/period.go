package query

import (
	"fmt"
	"time"

	"github.com/amirasaad/txrecords/pkg/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// Period is the half-open instant interval [From, Until) covering whole UTC days.
type Period struct {
	From  time.Time
	Until time.Time
}

// NewPeriod covers every instant of the calendar days start through end,
// both inclusive. Only the UTC date part of each argument is used.
func NewPeriod(start, end time.Time) (Period, error) {
	from := Day(start)
	last := Day(end)
	if last.Before(from) {
		return Period{}, fmt.Errorf("%w: start date %s is after end date %s",
			domain.ErrValidation, from.Format(DateLayout), last.Format(DateLayout))
	}
	return Period{From: from, Until: last.AddDate(0, 0, 1)}, nil
}

// ParsePeriod parses two YYYY-MM-DD dates into a Period.
func ParsePeriod(start, end string) (Period, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Period{}, fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Period{}, fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, end)
	}
	return NewPeriod(s, e)
}

// Day truncates t to midnight of its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
