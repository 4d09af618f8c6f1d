package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	progressout "rightsdaily/internal/modules/progress/adapter/out"
	"rightsdaily/internal/modules/progress/domain"
	"rightsdaily/internal/modules/progress/dto"
	progressin "rightsdaily/internal/modules/progress/port/in"
	"rightsdaily/internal/modules/progress/service"
	"rightsdaily/internal/modules/progress/usecase"
	apperrors "rightsdaily/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(days int) { f.now = f.now.AddDate(0, 0, days) }

type fakeContent struct {
	rewardDays map[string]bool
	quizMonths map[int]bool
}

func (f fakeContent) ArticleFor(_ context.Context, date domain.LessonDate) (domain.ArticleInfo, bool, error) {
	reward, ok := f.rewardDays[date.String()]
	return domain.ArticleInfo{Title: "Lesson " + date.String(), RewardDay: reward}, ok, nil
}

func (f fakeContent) HasQuizFor(_ context.Context, month int) (bool, error) {
	return f.quizMonths[month], nil
}

func newInteractor(t *testing.T, clk *fakeClock, statePath string) progressin.Usecase {
	t.Helper()
	content := fakeContent{
		rewardDays: map[string]bool{"2024-01-29": false, "2024-01-30": true, "2024-02-01": false},
		quizMonths: map[int]bool{1: true},
	}
	store := progressout.NewKVProgressStore(progressout.NewFileStorage(statePath), nil)
	journal := progressout.NewMarkdownJournal(filepath.Join(filepath.Dir(statePath), "journal.md"), clk)
	return usecase.NewInteractor(service.NewProgressService(clk, store, content, nil), journal)
}

func TestStreakAcrossRestarts(t *testing.T) {
	t.Parallel()
	state := filepath.Join(t.TempDir(), ".rightsdaily")
	clk := &fakeClock{now: time.Date(2024, 1, 5, 7, 0, 0, 0, time.Local)}
	ctx := context.Background()

	stats, err := newInteractor(t, clk, state).Open(ctx)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if stats.Streak != 1 || stats.LastActiveDate != "2024-01-05" {
		t.Fatalf("unexpected first open %+v", stats)
	}

	clk.advance(1)
	stats, err = newInteractor(t, clk, state).Open(ctx)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if stats.Streak != 2 {
		t.Fatalf("expected streak 2 after consecutive day, got %d", stats.Streak)
	}
	stats, err = newInteractor(t, clk, state).Open(ctx)
	if err != nil {
		t.Fatalf("same-day reopen: %v", err)
	}
	if stats.Streak != 2 {
		t.Fatalf("same-day reopen must not change streak, got %d", stats.Streak)
	}

	clk.advance(3)
	stats, err = newInteractor(t, clk, state).Open(ctx)
	if err != nil {
		t.Fatalf("open after gap: %v", err)
	}
	if stats.Streak != 1 || stats.LastActiveDate != "2024-01-09" {
		t.Fatalf("expected streak reset on 2024-01-09, got %+v", stats)
	}
}

func TestCompleteLessonRewardAndLevel(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2024, 1, 30, 18, 0, 0, 0, time.Local)}
	uc := newInteractor(t, clk, t.TempDir())
	ctx := context.Background()

	out, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{})
	if err != nil {
		t.Fatalf("complete today: %v", err)
	}
	if out.Date != "2024-01-30" || !out.Scheduled || !out.RewardEarned || out.LevelBefore != 1 || out.LevelAfter != 2 {
		t.Fatalf("unexpected completion %+v", out)
	}
	again, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{Date: "2024-01-30"})
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if !again.AlreadyDone || again.RewardEarned || again.LevelAfter != 2 || again.CompletedDays != 1 {
		t.Fatalf("unexpected repeat completion %+v", again)
	}
	done, err := uc.IsLessonCompleted(ctx, "2024-01-30")
	if err != nil || !done {
		t.Fatalf("expected 2024-01-30 completed, got %v %v", done, err)
	}
	done, err = uc.IsLessonCompleted(ctx, "2024-01-29")
	if err != nil || done {
		t.Fatalf("expected 2024-01-29 not completed, got %v %v", done, err)
	}
	stats, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Completed != 1 || stats.Level != 2 || stats.Streak != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestCompleteLessonRejectsBadDate(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, &fakeClock{now: time.Now()}, t.TempDir())
	if _, err := uc.CompleteLesson(context.Background(), dto.CompleteLessonInput{Date: "30/01/2024"}); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if _, err := uc.IsLessonCompleted(context.Background(), "2024-02-31"); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
}

func TestResolveDateUsesAppClock(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2024, 3, 9, 23, 59, 0, 0, time.Local)}
	uc := newInteractor(t, clk, filepath.Join(t.TempDir(), ".rightsdaily"))
	ctx := context.Background()

	today, err := uc.ResolveDate(ctx, "")
	if err != nil {
		t.Fatalf("resolve today: %v", err)
	}
	if today.Date != "2024-03-09" || today.Month != 3 || today.Day != 9 || today.Year != 2024 {
		t.Fatalf("unexpected today %+v", today)
	}
	explicit, err := uc.ResolveDate(ctx, " 2024-12-10 ")
	if err != nil || explicit.Date != "2024-12-10" || explicit.Month != 12 || explicit.Day != 10 {
		t.Fatalf("unexpected explicit date %+v %v", explicit, err)
	}
	if _, err := uc.ResolveDate(ctx, "2024-02-30"); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
}

func TestMonthStatusDefaultsToCurrentMonth(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2024, 1, 31, 9, 0, 0, 0, time.Local)}
	uc := newInteractor(t, clk, t.TempDir())
	ctx := context.Background()
	for d := 1; d <= 25; d++ {
		date := domain.LessonDate{Year: 2024, Month: time.January, Day: d}
		if _, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{Date: date.String()}); err != nil {
			t.Fatalf("complete %s: %v", date, err)
		}
	}
	status, err := uc.MonthStatus(ctx, dto.MonthInput{})
	if err != nil {
		t.Fatalf("month status: %v", err)
	}
	if status.Month != 1 || status.Year != 2024 || status.CompletedDays != 25 || status.DaysInMonth != 31 {
		t.Fatalf("unexpected status %+v", status)
	}
	if !status.Completed || status.QuizState != "available" {
		t.Fatalf("expected completed month with available quiz, got %+v", status)
	}
	feb, err := uc.MonthStatus(ctx, dto.MonthInput{Month: 2, Year: 2024})
	if err != nil {
		t.Fatalf("february status: %v", err)
	}
	if feb.Completed || feb.QuizState != "coming-soon" {
		t.Fatalf("unexpected february status %+v", feb)
	}
}

func TestCalendarMarksCompletedRewardAndToday(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2024, 1, 30, 9, 0, 0, 0, time.Local)}
	uc := newInteractor(t, clk, t.TempDir())
	ctx := context.Background()
	if _, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{Date: "2024-01-29"}); err != nil {
		t.Fatalf("complete 29th: %v", err)
	}
	if _, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{Date: "2024-01-30"}); err != nil {
		t.Fatalf("complete 30th: %v", err)
	}
	cal, err := uc.Calendar(ctx, dto.MonthInput{Month: 1, Year: 2024})
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(cal.Days) != 31 || cal.Offset != 1 {
		t.Fatalf("january 2024 starts on a monday with 31 days, got offset %d days %d", cal.Offset, len(cal.Days))
	}
	d29, d30 := cal.Days[28], cal.Days[29]
	if !d29.Completed || d29.RewardEarned {
		t.Fatalf("unexpected 29th %+v", d29)
	}
	if !d30.Completed || !d30.RewardEarned || !d30.Today {
		t.Fatalf("unexpected 30th %+v", d30)
	}
	if _, err := uc.Calendar(ctx, dto.MonthInput{Month: 14, Year: 2024}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResetAfterCompletions(t *testing.T) {
	t.Parallel()
	state := t.TempDir()
	clk := &fakeClock{now: time.Date(2024, 1, 30, 9, 0, 0, 0, time.Local)}
	uc := newInteractor(t, clk, state)
	ctx := context.Background()
	if _, err := uc.Open(ctx); err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, d := range []string{"2024-01-29", "2024-01-30", "2024-02-01"} {
		if _, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{Date: d}); err != nil {
			t.Fatalf("complete %s: %v", d, err)
		}
	}
	stats, err := uc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	want := dto.StatsOutput{Completed: 0, Streak: 0, Level: 1}
	if stats != want {
		t.Fatalf("unexpected stats after reset %+v", stats)
	}
	reloaded, err := newInteractor(t, clk, state).Stats(ctx)
	if err != nil {
		t.Fatalf("stats after restart: %v", err)
	}
	if reloaded != want {
		t.Fatalf("reset was not persisted, got %+v", reloaded)
	}
}

func TestExportJournalWritesCompletedLessons(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := &fakeClock{now: time.Date(2024, 1, 30, 9, 0, 0, 0, time.Local)}
	uc := newInteractor(t, clk, filepath.Join(dir, ".rightsdaily"))
	ctx := context.Background()

	if _, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := uc.CompleteLesson(ctx, dto.CompleteLessonInput{Date: "2024-01-15"}); err != nil {
		t.Fatalf("complete unscheduled: %v", err)
	}
	out, err := uc.ExportJournal(ctx, dto.ExportJournalInput{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Path != filepath.Join(dir, "journal.md") || out.Months != 1 || out.Lessons != 2 {
		t.Fatalf("unexpected export: %+v", out)
	}
	raw, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	note := string(raw)
	for _, want := range []string{"completed_lessons: 2", "- [x] 2024-01-15\n", "- [x] 2024-01-30 Lesson 2024-01-30 (reward)"} {
		if !strings.Contains(note, want) {
			t.Fatalf("journal missing %q:\n%s", want, note)
		}
	}
}
