// Package period resolves reporting parameters into absolute time windows.
package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned for out-of-range months and unknown period tokens.
var ErrInvalidPeriod = errors.New("invalid period")

// DefaultRollingDays is used when a "<N>d" period cannot be parsed.
const DefaultRollingDays = 30

// IST is the fixed UTC+5:30 zone used by named period tokens.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Window is a half-open [Start, End) time range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Calendar is a resolved calendar window with the year and month it was built from.
// Month is zero for a whole-year window.
type Calendar struct {
	Window
	Year  int
	Month int
}

// Resolver converts request parameters into windows relative to its clock.
type Resolver struct {
	clock Clock
}

// NewResolver creates a Resolver. A nil clock falls back to SystemClock.
func NewResolver(clock Clock) *Resolver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{clock: clock}
}

// Now returns the resolver clock's time in UTC.
func (r *Resolver) Now() time.Time {
	return r.clock.Now().UTC()
}

// RollingDays resolves "<N>d" to [now-N days, now). Unparsable values use
// DefaultRollingDays. "0d" is the empty window at now.
func (r *Resolver) RollingDays(period string) Window {
	days, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(period), "d"))
	if err != nil {
		days = DefaultRollingDays
	}
	now := r.Now()
	return Window{Start: now.AddDate(0, 0, -days), End: now}
}

// Calendar resolves a calendar month or year. Year 0 means the current UTC year,
// month 0 means the whole year.
func (r *Resolver) Calendar(year, month int) (Calendar, error) {
	if year == 0 {
		year = r.Now().Year()
	}
	if month != 0 && (month < 1 || month > 12) {
		return Calendar{}, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidPeriod)
	}
	if month == 0 {
		return Calendar{Window: yearWindow(year), Year: year}, nil
	}
	return Calendar{Window: monthWindow(year, month), Year: year, Month: month}, nil
}

// Today resolves the current UTC calendar day.
func (r *Resolver) Today() Window {
	now := r.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// LastMonth resolves the previous calendar month, rolling over to December of
// the previous year in January.
func (r *Resolver) LastMonth() Calendar {
	now := r.Now()
	year, month := now.Year(), int(now.Month())-1
	if month == 0 {
		year, month = year-1, 12
	}
	return Calendar{Window: monthWindow(year, month), Year: year, Month: month}
}

// LastYear resolves the previous calendar year.
func (r *Resolver) LastYear() Calendar {
	year := r.Now().Year() - 1
	return Calendar{Window: yearWindow(year), Year: year}
}

// Named resolves the period tokens 1d, 7d, 30d, 6m and 1y. The 1d token is
// the current IST calendar day, the others are rolling windows ending now.
func (r *Resolver) Named(token string) (Window, error) {
	now := r.clock.Now().In(IST)
	var days int
	switch token {
	case "1d":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, IST)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil
	case "7d":
		days = 7
	case "30d":
		days = 30
	case "6m":
		days = 180
	case "1y":
		days = 365
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, token)
	}
	return Window{Start: now.AddDate(0, 0, -days), End: now}, nil
}

// DaysIn returns the number of days of a calendar month.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func monthWindow(year, month int) Window {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

func yearWindow(year int) Window {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}
