package domain

import (
	"sort"
	"time"
)

type JournalLesson struct {
	Date   LessonDate
	Title  string
	Reward bool
}

type JournalMonth struct {
	Year       int
	Month      time.Month
	Completion MonthCompletion
	Lessons    []JournalLesson
}

// Journal groups completed lessons by month, oldest first. Titles are
// optional; a date without one is listed by date alone.
func Journal(p Progress, titles map[LessonDate]string) []JournalMonth {
	dates := Dedupe(p.CompletedLessons)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var months []JournalMonth
	for _, d := range dates {
		if n := len(months); n == 0 || months[n-1].Year != d.Year || months[n-1].Month != d.Month {
			months = append(months, JournalMonth{
				Year:       d.Year,
				Month:      d.Month,
				Completion: CompletionForMonth(d.Month, d.Year, p.CompletedLessons),
			})
		}
		last := &months[len(months)-1]
		last.Lessons = append(last.Lessons, JournalLesson{Date: d, Title: titles[d], Reward: p.HasReward(d)})
	}
	return months
}
