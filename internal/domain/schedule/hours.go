package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrIncompleteWeek  = errors.New("operating hours must cover all seven weekdays")
	ErrInvalidClock    = errors.New("invalid clock time, expected HH:MM")
	ErrInvertedHours   = errors.New("opening time must be before closing time")
	ErrDuplicateDay    = errors.New("duplicate weekday in operating hours")
	ErrMisorderedWeek  = errors.New("operating hours must be ordered Sunday through Saturday")
)

// DayHours is the operating window for a single weekday.
// Start and End are zero-padded 24-hour "HH:MM" labels; both are ignored
// when IsOpen is false.
type DayHours struct {
	Weekday time.Weekday `json:"dayOfWeek"`
	IsOpen  bool         `json:"isOpen"`
	Start   string       `json:"startTime"`
	End     string       `json:"endTime"`
}

// WeekSchedule holds exactly one DayHours per weekday, indexed by
// time.Weekday (0=Sunday .. 6=Saturday).
type WeekSchedule [7]DayHours

// DefaultWeekSchedule is used when no operating hours have been configured:
// weekdays 09:00-18:00, weekend closed.
func DefaultWeekSchedule() WeekSchedule {
	var week WeekSchedule
	for d := time.Sunday; d <= time.Saturday; d++ {
		entry := DayHours{Weekday: d}
		if d != time.Sunday && d != time.Saturday {
			entry.IsOpen = true
			entry.Start = "09:00"
			entry.End = "18:00"
		}
		week[d] = entry
	}
	return week
}

func (w WeekSchedule) Validate() error {
	seen := [7]bool{}
	for i, day := range w {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			return fmt.Errorf("day %d: weekday out of range: %w", i, ErrIncompleteWeek)
		}
		if seen[day.Weekday] {
			return fmt.Errorf("%s: %w", day.Weekday, ErrDuplicateDay)
		}
		seen[day.Weekday] = true
		if int(day.Weekday) != i {
			return fmt.Errorf("index %d holds %s: %w", i, day.Weekday, ErrMisorderedWeek)
		}
		if !day.IsOpen {
			continue
		}
		start, err := ParseClock(day.Start)
		if err != nil {
			return fmt.Errorf("%s start: %w", day.Weekday, err)
		}
		end, err := ParseClock(day.End)
		if err != nil {
			return fmt.Errorf("%s end: %w", day.Weekday, err)
		}
		if !start.Before(end) {
			return fmt.Errorf("%s: %w", day.Weekday, ErrInvertedHours)
		}
	}
	return nil
}

// ForDay returns the entry matching the weekday of t.
func (w WeekSchedule) ForDay(t time.Time) DayHours {
	return w[t.Weekday()]
}

// ClockTime is a minute-precision time of day, detached from any date.
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || len(s) != 5 || s[2] != ':' {
		return ClockTime{}, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func (c ClockTime) Before(other ClockTime) bool {
	if c.Hour != other.Hour {
		return c.Hour < other.Hour
	}
	return c.Minute < other.Minute
}

// On anchors the clock time to the calendar day of t, in t's location.
func (c ClockTime) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
