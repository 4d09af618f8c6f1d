package domain_test

import (
	"errors"
	"testing"
	"time"

	"rightsdaily/internal/modules/progress/domain"
	apperrors "rightsdaily/internal/platform/errors"
)

func mustDate(t *testing.T, raw string) domain.LessonDate {
	t.Helper()
	d, err := domain.ParseLessonDate(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	return d
}

func TestParseLessonDateRoundTrip(t *testing.T) {
	t.Parallel()
	d := mustDate(t, "2024-01-05")
	if d.Year != 2024 || d.Month != time.January || d.Day != 5 {
		t.Fatalf("unexpected date %+v", d)
	}
	if d.String() != "2024-01-05" {
		t.Fatalf("expected zero-padded string, got %s", d.String())
	}
	if d.MonthKey() != "2024-01" {
		t.Fatalf("unexpected month key %s", d.MonthKey())
	}
}

func TestParseLessonDateRejectsMalformed(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "2024-1-5", "2024-02-30", "05/01/2024", "2024-13-01"} {
		if _, err := domain.ParseLessonDate(raw); !errors.Is(err, apperrors.ErrInvalidDate) {
			t.Fatalf("expected invalid date for %q, got %v", raw, err)
		}
	}
}

func TestNewLessonDateValidatesRange(t *testing.T) {
	t.Parallel()
	if _, err := domain.NewLessonDate(2024, time.February, 29); err != nil {
		t.Fatalf("leap day should be valid: %v", err)
	}
	if _, err := domain.NewLessonDate(2023, time.February, 29); err == nil {
		t.Fatalf("29 feb 2023 should fail")
	}
	if _, err := domain.NewLessonDate(2024, 0, 1); err == nil {
		t.Fatalf("month 0 should fail")
	}
}

func TestDaysSinceAcrossBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		today, last string
		want        int
	}{
		{"2024-01-06", "2024-01-05", 1},
		{"2024-01-05", "2024-01-05", 0},
		{"2024-03-01", "2024-02-28", 2},
		{"2025-01-01", "2024-12-31", 1},
		{"2024-01-04", "2024-01-05", -1},
		{"2024-03-31", "2024-03-30", 1},
	}
	for _, tc := range cases {
		if got := mustDate(t, tc.today).DaysSince(mustDate(t, tc.last)); got != tc.want {
			t.Fatalf("%s - %s: expected %d, got %d", tc.today, tc.last, tc.want, got)
		}
	}
}

func TestCompareAndAddDays(t *testing.T) {
	t.Parallel()
	a := mustDate(t, "2024-12-31")
	b := a.AddDays(1)
	if b.String() != "2025-01-01" {
		t.Fatalf("unexpected next day %s", b)
	}
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Fatalf("ordering broken for %s and %s", a, b)
	}
}

func TestLessonDateOfUsesWallClock(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := domain.LessonDateOf(time.Date(2024, 1, 6, 1, 0, 0, 0, loc))
	if d.String() != "2024-01-06" {
		t.Fatalf("expected local wall-clock date, got %s", d)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	if domain.DaysInMonth(2024, time.February) != 29 || domain.DaysInMonth(2023, time.February) != 28 {
		t.Fatalf("february lengths are wrong")
	}
	if domain.DaysInMonth(2024, time.January) != 31 || domain.DaysInMonth(2024, time.April) != 30 {
		t.Fatalf("month lengths are wrong")
	}
}
