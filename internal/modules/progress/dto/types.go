package dto

type CompleteLessonInput struct {
	// Date is YYYY-MM-DD; empty means today.
	Date string
}

type CompleteLessonOutput struct {
	Date          string
	AlreadyDone   bool
	Scheduled     bool
	RewardEarned  bool
	LevelBefore   int
	LevelAfter    int
	CompletedDays int
}

// LessonDateOutput is a validated lesson date; Date is YYYY-MM-DD.
type LessonDateOutput struct {
	Date  string
	Year  int
	Month int
	Day   int
}

type MonthInput struct {
	Month int
	Year  int
}

type MonthStatusOutput struct {
	Month         int
	Year          int
	CompletedDays int
	DaysInMonth   int
	Ratio         float64
	Completed     bool
	QuizState     string
}

type CalendarDay struct {
	Date         string
	Day          int
	Completed    bool
	RewardEarned bool
	Today        bool
}

type CalendarOutput struct {
	Month int
	Year  int
	// Offset is the weekday of the first day, Sunday = 0.
	Offset int
	Days   []CalendarDay
}

type StatsOutput struct {
	Completed      int
	Streak         int
	Level          int
	LastActiveDate string
}

type ExportJournalInput struct {
	// Path is the note to write; empty means the configured default.
	Path string
}

type ExportJournalOutput struct {
	Path    string
	Months  int
	Lessons int
}
