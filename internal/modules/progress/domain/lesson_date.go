package domain

import (
	"fmt"
	"time"

	apperrors "rightsdaily/internal/platform/errors"
)

const dateLayout = "2006-01-02"

// LessonDate is a calendar day without time of day or zone.
type LessonDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewLessonDate(year int, month time.Month, day int) (LessonDate, error) {
	if month < time.January || month > time.December {
		return LessonDate{}, fmt.Errorf("%w: month %d", apperrors.ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return LessonDate{}, fmt.Errorf("%w: day %d of %04d-%02d", apperrors.ErrInvalidDate, day, year, month)
	}
	return LessonDate{Year: year, Month: month, Day: day}, nil
}

// LessonDateOf takes the wall-clock date of t in t's own location.
func LessonDateOf(t time.Time) LessonDate {
	y, m, d := t.Date()
	return LessonDate{Year: y, Month: m, Day: d}
}

func ParseLessonDate(raw string) (LessonDate, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return LessonDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, raw)
	}
	return LessonDateOf(t), nil
}

func (d LessonDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthKey buckets a date by calendar month, e.g. "2024-01".
func (d LessonDate) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

func (d LessonDate) IsZero() bool {
	return d == LessonDate{}
}

func (d LessonDate) Compare(other LessonDate) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d LessonDate) Before(other LessonDate) bool { return d.Compare(other) < 0 }
func (d LessonDate) After(other LessonDate) bool  { return d.Compare(other) > 0 }

// DaysSince returns the signed number of calendar days from other to d.
func (d LessonDate) DaysSince(other LessonDate) int {
	return int(d.utc().Sub(other.utc()).Hours() / 24)
}

func (d LessonDate) AddDays(n int) LessonDate {
	return LessonDateOf(d.utc().AddDate(0, 0, n))
}

func (d LessonDate) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
