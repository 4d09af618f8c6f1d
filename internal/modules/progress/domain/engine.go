package domain

import "time"

// MonthCompletionThreshold is the share of a month's days that must hold a
// completed lesson for the month to count as completed.
const MonthCompletionThreshold = 0.80

// ReconcileStreakOnOpen applies an app open on today. Opening twice on the
// same day is a no-op; a gap of more than one day, or a clock that moved
// backwards, restarts the streak at 1.
func ReconcileStreakOnOpen(p Progress, today LessonDate) Progress {
	next := p.Clone()
	if next.LastActiveDate == nil {
		next.CurrentStreak = 1
		next.LastActiveDate = &today
		return next
	}
	switch diff := today.DaysSince(*next.LastActiveDate); {
	case diff == 0:
		return next
	case diff == 1:
		next.CurrentStreak++
	default:
		next.CurrentStreak = 1
	}
	next.LastActiveDate = &today
	return next
}

// CompleteLesson records a completed lesson. article is nil when no lesson is
// scheduled for date. Streak fields are left alone.
func CompleteLesson(p Progress, date LessonDate, article *ArticleInfo) Progress {
	next := p.Clone()
	if !next.HasCompleted(date) {
		next.CompletedLessons = append(next.CompletedLessons, date)
	}
	if article != nil && article.RewardDay && !next.HasReward(date) {
		next.EarnedRewards = append(next.EarnedRewards, date)
	}
	next.CurrentLevel = DeriveLevel(next.CompletedLessons, next.EarnedRewards)
	return next
}

// CompletedMonths counts months holding at least one completed lesson and at
// least one earned reward.
func CompletedMonths(completed, rewards []LessonDate) int {
	withLessons := monthBuckets(completed)
	withRewards := monthBuckets(rewards)
	n := 0
	for month := range withLessons {
		if _, ok := withRewards[month]; ok {
			n++
		}
	}
	return n
}

func DeriveLevel(completed, rewards []LessonDate) int {
	return max(1, CompletedMonths(completed, rewards)+1)
}

type MonthCompletion struct {
	Completed int
	Days      int
	Ratio     float64
}

func (m MonthCompletion) Done() bool {
	return m.Ratio >= MonthCompletionThreshold
}

// CompletionForMonth counts completed days of (year, month). Days without a
// scheduled lesson still count towards the denominator.
func CompletionForMonth(month time.Month, year int, completed []LessonDate) MonthCompletion {
	days := DaysInMonth(year, month)
	seen := make(map[int]struct{}, days)
	for _, d := range completed {
		if d.Year == year && d.Month == month {
			seen[d.Day] = struct{}{}
		}
	}
	return MonthCompletion{
		Completed: len(seen),
		Days:      days,
		Ratio:     float64(len(seen)) / float64(days),
	}
}

func IsMonthCompleted(month time.Month, year int, completed []LessonDate) bool {
	return CompletionForMonth(month, year, completed).Done()
}

func StatsOf(p Progress) Stats {
	return Stats{
		Completed: len(p.CompletedLessons),
		Streak:    p.CurrentStreak,
		Level:     p.CurrentLevel,
	}
}

func monthBuckets(dates []LessonDate) map[string]struct{} {
	out := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		out[d.MonthKey()] = struct{}{}
	}
	return out
}
