package domain

// ArticleInfo is the part of a scheduled article the engine cares about.
type ArticleInfo struct {
	Title     string
	RewardDay bool
}

// Progress is the single durable record of a learner's history.
// CurrentLevel is a cache of DeriveLevel and is recomputed on every completion.
type Progress struct {
	CompletedLessons []LessonDate
	EarnedRewards    []LessonDate
	LastActiveDate   *LessonDate
	CurrentStreak    int
	CurrentLevel     int
}

type Stats struct {
	Completed int
	Streak    int
	Level     int
}

func DefaultProgress() Progress {
	return Progress{
		CompletedLessons: []LessonDate{},
		EarnedRewards:    []LessonDate{},
		LastActiveDate:   nil,
		CurrentStreak:    0,
		CurrentLevel:     1,
	}
}

func (p Progress) Clone() Progress {
	out := Progress{
		CompletedLessons: append([]LessonDate{}, p.CompletedLessons...),
		EarnedRewards:    append([]LessonDate{}, p.EarnedRewards...),
		CurrentStreak:    p.CurrentStreak,
		CurrentLevel:     p.CurrentLevel,
	}
	if p.LastActiveDate != nil {
		last := *p.LastActiveDate
		out.LastActiveDate = &last
	}
	return out
}

func (p Progress) HasCompleted(date LessonDate) bool {
	return contains(p.CompletedLessons, date)
}

func (p Progress) HasReward(date LessonDate) bool {
	return contains(p.EarnedRewards, date)
}

// Equal compares field by field; set order matters because storage preserves it.
func (p Progress) Equal(other Progress) bool {
	if p.CurrentStreak != other.CurrentStreak || p.CurrentLevel != other.CurrentLevel {
		return false
	}
	if (p.LastActiveDate == nil) != (other.LastActiveDate == nil) {
		return false
	}
	if p.LastActiveDate != nil && *p.LastActiveDate != *other.LastActiveDate {
		return false
	}
	return equalDates(p.CompletedLessons, other.CompletedLessons) && equalDates(p.EarnedRewards, other.EarnedRewards)
}

// Dedupe drops repeated dates while keeping first-seen order.
func Dedupe(dates []LessonDate) []LessonDate {
	seen := make(map[LessonDate]struct{}, len(dates))
	out := make([]LessonDate, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

func contains(dates []LessonDate, date LessonDate) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func equalDates(a, b []LessonDate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
